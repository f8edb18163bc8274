package caller

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dipdup-io/starknet-events/internal/events"
	"github.com/dipdup-io/starknet-go-api/pkg/data"
	"github.com/dipdup-net/go-lib/config"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

const testContract data.Felt = "0x2cf721c0387704095d6b2205b46e17d7768fa55c2f1a1087425b877b72937db"

type starknetService struct {
	page    events.Page
	err     error
	filters []map[string]any
}

func (s *starknetService) GetEvents(filter map[string]any) (*events.Page, error) {
	s.filters = append(s.filters, filter)
	if s.err != nil {
		return nil, s.err
	}
	return &s.page, nil
}

func newTestSelectors(t *testing.T) events.Selectors {
	t.Helper()
	s, err := events.NewSelectors(events.DefaultOrderSelector, events.DefaultDepositSelector, events.DefaultWithdrawalSelector)
	require.NoError(t, err)
	return s
}

func newTestNode(t *testing.T, service *starknetService) string {
	t.Helper()

	server := rpc.NewServer()
	require.NoError(t, server.RegisterName("starknet", service))

	httpServer := httptest.NewServer(server)
	t.Cleanup(func() {
		httpServer.Close()
		server.Stop()
	})
	return httpServer.URL
}

func TestNodeRpcCaller_GetEvents(t *testing.T) {
	service := &starknetService{
		page: events.Page{
			Events: []events.Event{
				{
					FromAddress:     testContract,
					Keys:            []data.Felt{events.DefaultOrderSelector},
					Data:            []data.Felt{},
					BlockNumber:     64540,
					TransactionHash: "0x1",
				}, {
					FromAddress:     testContract,
					Keys:            []data.Felt{events.DefaultDepositSelector, "0x5"},
					Data:            []data.Felt{"0x2", "0x3"},
					BlockNumber:     64541,
					TransactionHash: "0x2",
				},
			},
			ContinuationToken: "64541-2",
		},
	}
	url := newTestNode(t, service)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	nrc, err := NewNodeRpcCaller(ctx, config.DataSource{URL: url, Timeout: 5})
	require.NoError(t, err)
	defer nrc.Close()

	filter := NewFilter(64539, testContract, newTestSelectors(t), 0)
	page, err := nrc.GetEvents(ctx, filter)
	require.NoError(t, err)
	require.Equal(t, service.page, page)
	require.True(t, page.HasMore())

	require.Len(t, service.filters, 1)
	raw, err := json.Marshal(service.filters[0])
	require.NoError(t, err)
	require.JSONEq(t, `{
		"from_block": {"block_number": 64539},
		"to_block": "latest",
		"address": "0x2cf721c0387704095d6b2205b46e17d7768fa55c2f1a1087425b877b72937db",
		"keys": [[
			"0x3427759bfd3b941f14e687e129519da3c9b0046c5b9aaa290bb1dede63753b3",
			"0xee02d31cafad9001fbdc4dd5cf4957e152a372530316a7d856401e4c5d74bd",
			"0x2021e2242f6c652ae824bc1428ee0fe7e8771a27295b9450792445dc456e37d"
		]],
		"chunk_size": 100
	}`, string(raw))
}

func TestNodeRpcCaller_GetEventsEmpty(t *testing.T) {
	service := &starknetService{
		page: events.Page{Events: []events.Event{}},
	}
	url := newTestNode(t, service)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	nrc, err := NewNodeRpcCaller(ctx, config.DataSource{URL: url, RequestsPerSecond: 10})
	require.NoError(t, err)
	defer nrc.Close()

	page, err := nrc.GetEvents(ctx, NewFilter(0, testContract, newTestSelectors(t), 10))
	require.NoError(t, err)
	require.Empty(t, page.Events)
	require.False(t, page.HasMore())
	require.EqualValues(t, 10, service.filters[0]["chunk_size"])
}

func TestNodeRpcCaller_GetEventsError(t *testing.T) {
	service := &starknetService{
		err: errors.New("block not found"),
	}
	url := newTestNode(t, service)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	nrc, err := NewNodeRpcCaller(ctx, config.DataSource{URL: url})
	require.NoError(t, err)
	defer nrc.Close()

	_, err = nrc.GetEvents(ctx, NewFilter(0, testContract, newTestSelectors(t), 0))
	require.Error(t, err)
	require.Contains(t, err.Error(), "block not found")
}

func TestNewNodeRpcCaller_InvalidURL(t *testing.T) {
	_, err := NewNodeRpcCaller(context.Background(), config.DataSource{URL: "not a url"})
	require.Error(t, err)
}
