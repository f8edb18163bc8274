package events

import (
	"github.com/dipdup-io/starknet-events/internal/felt"
	"github.com/dipdup-io/starknet-go-api/pkg/data"
	"github.com/pkg/errors"
)

// ErrDuplicateSelector -
var ErrDuplicateSelector = errors.New("selectors must be distinct")

// default selectors of the exchange contract
const (
	DefaultOrderSelector      data.Felt = "0x03427759bfd3b941f14e687e129519da3c9b0046c5b9aaa290bb1dede63753b3"
	DefaultDepositSelector    data.Felt = "0x00ee02d31cafad9001fbdc4dd5cf4957e152a372530316a7d856401e4c5d74bd"
	DefaultWithdrawalSelector data.Felt = "0x02021e2242f6c652ae824bc1428ee0fe7e8771a27295b9450792445dc456e37d"
)

// Selectors - set of accepted event selectors. Selectors are stored in encoded form.
type Selectors struct {
	order      string
	deposit    string
	withdrawal string
	keys       []data.Felt
}

// NewSelectors - validates selectors and builds the set
func NewSelectors(order, deposit, withdrawal data.Felt) (Selectors, error) {
	var (
		s   Selectors
		err error
	)
	if s.order, err = felt.Encode(order); err != nil {
		return s, errors.Wrap(err, "order selector")
	}
	if s.deposit, err = felt.Encode(deposit); err != nil {
		return s, errors.Wrap(err, "deposit selector")
	}
	if s.withdrawal, err = felt.Encode(withdrawal); err != nil {
		return s, errors.Wrap(err, "withdrawal selector")
	}
	if s.order == s.deposit || s.order == s.withdrawal || s.deposit == s.withdrawal {
		return s, ErrDuplicateSelector
	}

	s.keys = make([]data.Felt, 0, 3)
	for _, encoded := range []string{s.order, s.deposit, s.withdrawal} {
		key, err := felt.Decode(encoded)
		if err != nil {
			return s, err
		}
		s.keys = append(s.keys, key)
	}
	return s, nil
}

// Classify - maps leading event key to variant. Other keys are ignored.
// Returns encoded leading key which is empty if event has no valid leading key.
func (s Selectors) Classify(event Event) (Variant, string) {
	selector, ok := event.Selector()
	if !ok {
		return VariantUnknown, ""
	}
	encoded, err := felt.Encode(selector)
	if err != nil {
		return VariantUnknown, ""
	}
	return s.ClassifyKey(encoded), encoded
}

// ClassifyKey - same as Classify but receives already encoded selector
func (s Selectors) ClassifyKey(key string) Variant {
	switch key {
	case "":
		return VariantUnknown
	case s.order:
		return VariantOrder
	case s.deposit:
		return VariantDeposit
	case s.withdrawal:
		return VariantWithdrawal
	default:
		return VariantUnknown
	}
}

// Keys - keys filter matching any of selectors at position 0. Selectors are in canonical 0x-prefixed form.
func (s Selectors) Keys() [][]data.Felt {
	keys := make([]data.Felt, len(s.keys))
	copy(keys, s.keys)
	return [][]data.Felt{keys}
}
