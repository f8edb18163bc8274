package postgres

import (
	"context"
	"strings"

	models "github.com/dipdup-io/starknet-events/internal/storage"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

// Projection - table receiving the (block_number, transaction_hash, key) prefix of an event.
// Every other column is explicitly set to NULL.
type Projection struct {
	db    bun.IConn
	table string
	query string
}

// NewProjection -
func NewProjection(db bun.IConn, table string, columns []string) *Projection {
	return &Projection{
		db:    db,
		table: table,
		query: insertQuery(table, columns),
	}
}

// Insert -
func (p *Projection) Insert(ctx context.Context, blockNumber int64, transactionHash, key string) error {
	if _, err := p.db.ExecContext(ctx, p.query, blockNumber, transactionHash, key); err != nil {
		return errors.Wrapf(err, "insert into %s", p.table)
	}
	return nil
}

func insertQuery(table string, columns []string) string {
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(table)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(columns, ", "))
	sb.WriteString(") VALUES (")
	for i := range columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		if i < len(models.ProjectionColumns) {
			sb.WriteByte('?')
		} else {
			sb.WriteString("NULL")
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

// Orders -
type Orders struct {
	*Projection
}

// NewOrders -
func NewOrders(db bun.IConn) *Orders {
	return &Orders{
		Projection: NewProjection(db, models.Order{}.TableName(), models.OrderColumns),
	}
}

// Deposits -
type Deposits struct {
	*Projection
}

// NewDeposits -
func NewDeposits(db bun.IConn) *Deposits {
	return &Deposits{
		Projection: NewProjection(db, models.Deposit{}.TableName(), models.DepositColumns),
	}
}

// Withdrawals -
type Withdrawals struct {
	*Projection
}

// NewWithdrawals -
func NewWithdrawals(db bun.IConn) *Withdrawals {
	return &Withdrawals{
		Projection: NewProjection(db, models.Withdrawal{}.TableName(), models.WithdrawalColumns),
	}
}
