package storage

import (
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// IOrder -
type IOrder interface {
	IProjection
}

// Order -
type Order struct {
	bun.BaseModel `bun:"table:orders" comment:"Table contains created orders"`

	BlockNumber                  int64            `bun:"block_number,notnull" comment:"Block number of the event"`
	TransactionHash              string           `bun:"transaction_hash,type:text,notnull" comment:"Transaction hash (64 hex chars)"`
	Key                          string           `bun:"key,type:text,notnull" comment:"Event selector (64 hex chars)"`
	OrderType                    *string          `bun:"order_type,type:text"`
	DecreasePositionSwapType     *string          `bun:"decrease_position_swap_type,type:text"`
	Account                      *string          `bun:"account,type:text"`
	Receiver                     *string          `bun:"receiver,type:text"`
	CallbackContract             *string          `bun:"callback_contract,type:text"`
	UiFeeReceiver                *string          `bun:"ui_fee_receiver,type:text"`
	Market                       *string          `bun:"market,type:text"`
	InitialCollateralToken       *string          `bun:"initial_collateral_token,type:text"`
	SwapPath                     *string          `bun:"swap_path,type:text"`
	SizeDeltaUsd                 *decimal.Decimal `bun:"size_delta_usd,type:numeric"`
	InitialCollateralDeltaAmount *decimal.Decimal `bun:"initial_collateral_delta_amount,type:numeric"`
	TriggerPrice                 *decimal.Decimal `bun:"trigger_price,type:numeric"`
	AcceptablePrice              *decimal.Decimal `bun:"acceptable_price,type:numeric"`
	ExecutionFee                 *decimal.Decimal `bun:"execution_fee,type:numeric"`
	CallbackGasLimit             *decimal.Decimal `bun:"callback_gas_limit,type:numeric"`
	MinOutputAmount              *decimal.Decimal `bun:"min_output_amount,type:numeric"`
	UpdatedAtBlock               *int64           `bun:"updated_at_block"`
	IsLong                       *bool            `bun:"is_long"`
	IsFrozen                     *bool            `bun:"is_frozen"`
}

// TableName -
func (Order) TableName() string {
	return "orders"
}

// OrderColumns - column order of orders table
var OrderColumns = []string{
	ColumnBlockNumber, ColumnTransactionHash, ColumnKey, "order_type", "decrease_position_swap_type", "account",
	"receiver", "callback_contract", "ui_fee_receiver", "market", "initial_collateral_token", "swap_path",
	"size_delta_usd", "initial_collateral_delta_amount", "trigger_price", "acceptable_price",
	"execution_fee", "callback_gas_limit", "min_output_amount", "updated_at_block", "is_long", "is_frozen",
}
