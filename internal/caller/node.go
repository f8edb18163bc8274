package caller

import (
	"context"
	"net/url"
	"time"

	"github.com/dipdup-io/starknet-events/internal/events"
	"github.com/dipdup-net/go-lib/config"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// MethodGetEvents -
const MethodGetEvents = "starknet_getEvents"

// NodeRpcCaller - receives events from StarkNet node over JSON-RPC
type NodeRpcCaller struct {
	client  *rpc.Client
	limiter *rate.Limiter
	timeout time.Duration
}

// NewNodeRpcCaller -
func NewNodeRpcCaller(ctx context.Context, cfg config.DataSource) (*NodeRpcCaller, error) {
	timeout := time.Second * 10
	if cfg.Timeout > 0 {
		timeout = time.Second * time.Duration(cfg.Timeout)
	}

	if _, err := url.ParseRequestURI(cfg.URL); err != nil {
		return nil, errors.Wrapf(err, "invalid node url: %s", cfg.URL)
	}

	client, err := rpc.DialContext(ctx, cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "dial node")
	}

	nrc := &NodeRpcCaller{
		client:  client,
		timeout: timeout,
	}
	if cfg.RequestsPerSecond > 0 {
		nrc.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), int(cfg.RequestsPerSecond))
	}
	return nrc, nil
}

// GetEvents - requests one page of events matching filter
func (nrc *NodeRpcCaller) GetEvents(ctx context.Context, filter EventFilter) (events.Page, error) {
	if nrc.limiter != nil {
		if err := nrc.limiter.Wait(ctx); err != nil {
			return events.Page{}, err
		}
	}

	reqCtx, cancelReq := context.WithTimeout(ctx, nrc.timeout)
	defer cancelReq()

	var page events.Page
	if err := nrc.client.CallContext(reqCtx, &page, MethodGetEvents, filter); err != nil {
		return events.Page{}, errors.Wrap(err, MethodGetEvents)
	}
	return page, nil
}

// Close -
func (nrc *NodeRpcCaller) Close() error {
	nrc.client.Close()
	return nil
}
