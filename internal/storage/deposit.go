package storage

import (
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// IDeposit -
type IDeposit interface {
	IProjection
}

// Deposit -
type Deposit struct {
	bun.BaseModel `bun:"table:deposits" comment:"Table contains created deposits"`

	BlockNumber             int64            `bun:"block_number,notnull" comment:"Block number of the event"`
	TransactionHash         string           `bun:"transaction_hash,type:text,notnull" comment:"Transaction hash (64 hex chars)"`
	Key                     string           `bun:"key,type:text,notnull" comment:"Event selector (64 hex chars)"`
	Account                 *string          `bun:"account,type:text"`
	Receiver                *string          `bun:"receiver,type:text"`
	CallbackContract        *string          `bun:"callback_contract,type:text"`
	Market                  *string          `bun:"market,type:text"`
	InitialLongToken        *string          `bun:"initial_long_token,type:text"`
	InitialShortToken       *string          `bun:"initial_short_token,type:text"`
	LongTokenSwapPath       *string          `bun:"long_token_swap_path,type:text"`
	ShortTokenSwapPath      *string          `bun:"short_token_swap_path,type:text"`
	InitialLongTokenAmount  *decimal.Decimal `bun:"initial_long_token_amount,type:numeric"`
	InitialShortTokenAmount *decimal.Decimal `bun:"initial_short_token_amount,type:numeric"`
	MinMarketTokens         *decimal.Decimal `bun:"min_market_tokens,type:numeric"`
	UpdatedAtBlock          *int64           `bun:"updated_at_block"`
	ExecutionFee            *decimal.Decimal `bun:"execution_fee,type:numeric"`
	CallbackGasLimit        *decimal.Decimal `bun:"callback_gas_limit,type:numeric"`
}

// TableName -
func (Deposit) TableName() string {
	return "deposits"
}

// DepositColumns - column order of deposits table
var DepositColumns = []string{
	ColumnBlockNumber, ColumnTransactionHash, ColumnKey, "account", "receiver", "callback_contract",
	"market", "initial_long_token", "initial_short_token", "long_token_swap_path", "short_token_swap_path",
	"initial_long_token_amount", "initial_short_token_amount", "min_market_tokens", "updated_at_block",
	"execution_fee", "callback_gas_limit",
}
