package storage

import "context"

// prefix columns filled by indexer. All other columns are reserved for payload decoder and stay NULL.
const (
	ColumnBlockNumber     = "block_number"
	ColumnTransactionHash = "transaction_hash"
	ColumnKey             = "key"
)

// ProjectionColumns -
var ProjectionColumns = []string{
	ColumnBlockNumber,
	ColumnTransactionHash,
	ColumnKey,
}

// IProjection - table receiving event projections
type IProjection interface {
	Insert(ctx context.Context, blockNumber int64, transactionHash, key string) error
}
