package events

// Variant - kind of indexed event
type Variant int

// variants
const (
	VariantUnknown Variant = iota
	VariantOrder
	VariantDeposit
	VariantWithdrawal
)

// String -
func (v Variant) String() string {
	switch v {
	case VariantOrder:
		return "order"
	case VariantDeposit:
		return "deposit"
	case VariantWithdrawal:
		return "withdrawal"
	default:
		return "unknown"
	}
}

// Table - name of the table rows of the variant are stored in
func (v Variant) Table() string {
	switch v {
	case VariantOrder:
		return "orders"
	case VariantDeposit:
		return "deposits"
	case VariantWithdrawal:
		return "withdrawals"
	default:
		return ""
	}
}
