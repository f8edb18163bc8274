package main

import (
	"context"
	"math"

	"github.com/dipdup-io/starknet-events/internal/caller"
	"github.com/dipdup-io/starknet-events/internal/events"
	"github.com/dipdup-io/starknet-events/internal/felt"
	"github.com/dipdup-io/starknet-events/internal/storage"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// errors
var (
	ErrBlockNumberOverflow = errors.New("block number overflows BIGINT")
)

// State - stage of the indexer run
type State int

// states
const (
	StateStart State = iota
	StateFetched
	StateDispatched
	StateReported
	StateDone
)

// String -
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateFetched:
		return "fetched"
	case StateDispatched:
		return "dispatched"
	case StateReported:
		return "reported"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Tables - destination tables
type Tables struct {
	Orders      storage.IOrder
	Deposits    storage.IDeposit
	Withdrawals storage.IWithdrawal
}

// Summary - counters of the run
type Summary struct {
	Fetched     int
	Orders      int
	Deposits    int
	Withdrawals int
	Unknown     int
	HasMore     bool
}

// Inserted - total count of written rows
func (s Summary) Inserted() int {
	return s.Orders + s.Deposits + s.Withdrawals
}

// Indexer - fetches one page of contract events and writes them to tables by selector
type Indexer struct {
	caller    caller.Caller
	selectors events.Selectors
	filter    caller.EventFilter
	fromBlock uint64
	tables    Tables
	state     State
}

// NewIndexer -
func NewIndexer(cfg IndexerConfig, c caller.Caller, tables Tables) (*Indexer, error) {
	contract, err := cfg.Contract()
	if err != nil {
		return nil, err
	}
	selectors, err := cfg.Selectors.Build()
	if err != nil {
		return nil, errors.Wrap(err, "selectors")
	}

	return &Indexer{
		caller:    c,
		selectors: selectors,
		filter:    caller.NewFilter(cfg.FromBlock, contract, selectors, cfg.ChunkSize),
		fromBlock: cfg.FromBlock,
		tables:    tables,
		state:     StateStart,
	}, nil
}

// State -
func (indexer *Indexer) State() State {
	return indexer.state
}

// Run - processes single page of events. Fetch error is logged and isn't returned.
// Any insert error stops processing and is returned.
func (indexer *Indexer) Run(ctx context.Context) (Summary, error) {
	var summary Summary
	indexer.setState(StateStart)

	log.Info().
		Uint64("from_block", indexer.fromBlock).
		Str("contract", indexer.filter.Address.String()).
		Uint64("chunk_size", indexer.filter.ChunkSize).
		Msg("receiving events...")

	page, err := indexer.caller.GetEvents(ctx, indexer.filter)
	if err != nil {
		log.Err(err).Msg("failed to fetch events")
		indexer.setState(StateReported)
		indexer.setState(StateDone)
		return summary, nil
	}
	indexer.setState(StateFetched)

	summary.Fetched = len(page.Events)
	summary.HasMore = page.HasMore()
	if summary.HasMore {
		log.Info().
			Str("continuation_token", page.ContinuationToken).
			Msg("more events are available, only the first page is processed")
	}

	for i := range page.Events {
		variant, err := indexer.dispatch(ctx, page.Events[i])
		if err != nil {
			return summary, err
		}
		indexer.setState(StateDispatched)

		switch variant {
		case events.VariantOrder:
			summary.Orders++
		case events.VariantDeposit:
			summary.Deposits++
		case events.VariantWithdrawal:
			summary.Withdrawals++
		default:
			summary.Unknown++
		}
	}

	indexer.setState(StateDone)
	return summary, nil
}

func (indexer *Indexer) setState(state State) {
	if indexer.state == state {
		return
	}
	log.Debug().Stringer("from", indexer.state).Stringer("to", state).Msg("state changed")
	indexer.state = state
}

func (indexer *Indexer) dispatch(ctx context.Context, event events.Event) (events.Variant, error) {
	log.Debug().
		Uint64("block", event.BlockNumber).
		Str("tx", event.TransactionHash.String()).
		Int("keys", len(event.Keys)).
		Int("data", len(event.Data)).
		Msg("event found")

	blockNumber, err := widen(event.BlockNumber)
	if err != nil {
		return events.VariantUnknown, err
	}

	txHash, err := felt.Encode(event.TransactionHash)
	if err != nil {
		return events.VariantUnknown, errors.Wrap(err, "transaction hash")
	}

	variant, key := indexer.selectors.Classify(event)

	var table storage.IProjection
	switch variant {
	case events.VariantOrder:
		table = indexer.tables.Orders
	case events.VariantDeposit:
		table = indexer.tables.Deposits
	case events.VariantWithdrawal:
		table = indexer.tables.Withdrawals
	default:
		indexer.reportUnknown(event)
		return variant, nil
	}

	if err := table.Insert(ctx, blockNumber, txHash, key); err != nil {
		return variant, err
	}

	log.Info().
		Int64("block", blockNumber).
		Str("tx", txHash).
		Stringer("variant", variant).
		Str("table", variant.Table()).
		Msg("event saved")
	return variant, nil
}

func (indexer *Indexer) reportUnknown(event events.Event) {
	raw, err := json.Marshal(event)
	if err != nil {
		log.Warn().Str("tx", event.TransactionHash.String()).Msg("unknown event type")
		return
	}
	log.Warn().RawJSON("event", raw).Msg("unknown event type")
}

func widen(blockNumber uint64) (int64, error) {
	if blockNumber > math.MaxInt64 {
		return 0, errors.Wrapf(ErrBlockNumberOverflow, "%d", blockNumber)
	}
	return int64(blockNumber), nil
}
