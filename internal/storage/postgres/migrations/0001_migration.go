package migrations

import (
	"context"
	"database/sql"

	models "github.com/dipdup-io/starknet-events/internal/storage"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
)

type projectionIndex struct {
	model  any
	table  string
	column string
}

func (idx projectionIndex) name() string {
	return idx.table + "_" + idx.column + "_idx"
}

func projectionIndexes() []projectionIndex {
	tables := []struct {
		model any
		table string
	}{
		{(*models.Order)(nil), models.Order{}.TableName()},
		{(*models.Deposit)(nil), models.Deposit{}.TableName()},
		{(*models.Withdrawal)(nil), models.Withdrawal{}.TableName()},
	}

	indexes := make([]projectionIndex, 0, len(tables)*2)
	for _, t := range tables {
		for _, column := range []string{models.ColumnBlockNumber, models.ColumnTransactionHash} {
			indexes = append(indexes, projectionIndex{t.model, t.table, column})
		}
	}
	return indexes
}

func init() {
	DbMigrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Info().Msg("creating indexes...")
		return db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
			for _, idx := range projectionIndexes() {
				if _, err := tx.NewCreateIndex().
					IfNotExists().
					Model(idx.model).
					Index(idx.name()).
					Column(idx.column).
					Exec(ctx); err != nil {
					return err
				}
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		return db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
			for _, idx := range projectionIndexes() {
				if _, err := tx.NewDropIndex().
					IfExists().
					Index(idx.name()).
					Exec(ctx); err != nil {
					return err
				}
			}
			return nil
		})
	})
}
