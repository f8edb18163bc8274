package events

import (
	"github.com/dipdup-io/starknet-go-api/pkg/data"
)

// Event - emitted event as returned by starknet_getEvents
type Event struct {
	FromAddress     data.Felt   `json:"from_address"`
	Keys            []data.Felt `json:"keys"`
	Data            []data.Felt `json:"data"`
	BlockHash       data.Felt   `json:"block_hash,omitempty"`
	BlockNumber     uint64      `json:"block_number"`
	TransactionHash data.Felt   `json:"transaction_hash"`
}

// Selector - returns leading key of event. It's false if event has no keys.
func (e Event) Selector() (data.Felt, bool) {
	if len(e.Keys) == 0 {
		return "", false
	}
	return e.Keys[0], true
}

// Page - one page of events
type Page struct {
	Events            []Event `json:"events"`
	ContinuationToken string  `json:"continuation_token,omitempty"`
}

// HasMore - provider has more events after this page
func (p Page) HasMore() bool {
	return p.ContinuationToken != ""
}
