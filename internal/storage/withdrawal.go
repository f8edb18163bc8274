package storage

import (
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// IWithdrawal -
type IWithdrawal interface {
	IProjection
}

// Withdrawal -
type Withdrawal struct {
	bun.BaseModel `bun:"table:withdrawals" comment:"Table contains created withdrawals"`

	BlockNumber         int64            `bun:"block_number,notnull" comment:"Block number of the event"`
	TransactionHash     string           `bun:"transaction_hash,type:text,notnull" comment:"Transaction hash (64 hex chars)"`
	Key                 string           `bun:"key,type:text,notnull" comment:"Event selector (64 hex chars)"`
	Account             *string          `bun:"account,type:text"`
	Receiver            *string          `bun:"receiver,type:text"`
	CallbackContract    *string          `bun:"callback_contract,type:text"`
	Market              *string          `bun:"market,type:text"`
	LongTokenSwapPath   *string          `bun:"long_token_swap_path,type:text"`
	ShortTokenSwapPath  *string          `bun:"short_token_swap_path,type:text"`
	MarketTokenAmount   *decimal.Decimal `bun:"market_token_amount,type:numeric"`
	MinLongTokenAmount  *decimal.Decimal `bun:"min_long_token_amount,type:numeric"`
	MinShortTokenAmount *decimal.Decimal `bun:"min_short_token_amount,type:numeric"`
	UpdatedAtBlock      *int64           `bun:"updated_at_block"`
	ExecutionFee        *decimal.Decimal `bun:"execution_fee,type:numeric"`
	CallbackGasLimit    *decimal.Decimal `bun:"callback_gas_limit,type:numeric"`
}

// TableName -
func (Withdrawal) TableName() string {
	return "withdrawals"
}

// WithdrawalColumns - column order of withdrawals table
var WithdrawalColumns = []string{
	ColumnBlockNumber, ColumnTransactionHash, ColumnKey, "account", "receiver", "callback_contract",
	"market", "long_token_swap_path", "short_token_swap_path", "market_token_amount",
	"min_long_token_amount", "min_short_token_amount", "updated_at_block", "execution_fee",
	"callback_gas_limit",
}
