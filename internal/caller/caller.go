package caller

import (
	"context"

	"github.com/dipdup-io/starknet-events/internal/events"
)

// Caller - source of contract events
type Caller interface {
	GetEvents(ctx context.Context, filter EventFilter) (events.Page, error)
}
