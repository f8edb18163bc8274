package caller

import (
	"github.com/dipdup-io/starknet-events/internal/events"
	"github.com/dipdup-io/starknet-go-api/pkg/data"
)

// DefaultChunkSize - events page size requested from node
const DefaultChunkSize = 100

// EventFilter - params of starknet_getEvents
type EventFilter struct {
	FromBlock         *data.BlockID `json:"from_block,omitempty"`
	ToBlock           *data.BlockID `json:"to_block,omitempty"`
	Address           data.Felt     `json:"address,omitempty"`
	Keys              [][]data.Felt `json:"keys,omitempty"`
	ChunkSize         uint64        `json:"chunk_size"`
	ContinuationToken string        `json:"continuation_token,omitempty"`
}

// NewFilter - filter of events emitted by contract starting from block `from` up to the latest block
// with leading key equal to any of selectors.
func NewFilter(from uint64, address data.Felt, selectors events.Selectors, chunkSize uint64) EventFilter {
	if chunkSize == 0 {
		chunkSize = DefaultChunkSize
	}
	return EventFilter{
		FromBlock: &data.BlockID{Number: &from},
		ToBlock:   &data.BlockID{String: data.Latest},
		Address:   address,
		Keys:      selectors.Keys(),
		ChunkSize: chunkSize,
	}
}
