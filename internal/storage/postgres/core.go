package postgres

import (
	"context"

	models "github.com/dipdup-io/starknet-events/internal/storage"
	"github.com/dipdup-io/starknet-events/internal/storage/postgres/migrations"
	"github.com/dipdup-net/go-lib/config"
	"github.com/dipdup-net/go-lib/database"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun/migrate"
)

// Config -
type Config struct {
	URL        string `envconfig:"DATABASE_URL" required:"true" yaml:"-" validate:"required"`
	InitSchema bool   `yaml:"init_schema" ignored:"true"`
}

// Storage -
type Storage struct {
	conn *database.Bun

	Orders      models.IOrder
	Deposits    models.IDeposit
	Withdrawals models.IWithdrawal
}

// Create - connects to database by URL. Tables are expected to exist unless InitSchema is set.
// Connection isn't retried: unreachable database is a fatal error.
func Create(ctx context.Context, cfg Config) (Storage, error) {
	if cfg.URL == "" {
		return Storage{}, errors.New("empty database url")
	}

	conn := database.NewBun()
	if err := conn.Connect(ctx, config.Database{
		Kind: config.DBKindPostgres,
		Path: cfg.URL,
	}); err != nil {
		return Storage{}, errors.Wrap(err, "open database")
	}

	if err := conn.DB().PingContext(ctx); err != nil {
		_ = conn.Close()
		return Storage{}, errors.Wrap(err, "database connection")
	}

	if cfg.InitSchema {
		if err := initDatabase(ctx, conn); err != nil {
			_ = conn.Close()
			return Storage{}, errors.Wrap(err, "init database")
		}
	}

	return Storage{
		conn:        conn,
		Orders:      NewOrders(conn.DB()),
		Deposits:    NewDeposits(conn.DB()),
		Withdrawals: NewWithdrawals(conn.DB()),
	}, nil
}

// Close -
func (s Storage) Close() error {
	return s.conn.Close()
}

func initDatabase(ctx context.Context, conn *database.Bun) error {
	log.Info().Msg("creating tables...")
	for _, data := range models.Models {
		if _, err := conn.DB().NewCreateTable().IfNotExists().Model(data).Exec(ctx); err != nil {
			return errors.Wrapf(err, "create table %T", data)
		}
	}

	data := make([]any, len(models.Models))
	for i := range models.Models {
		data[i] = models.Models[i]
	}
	if err := database.MakeComments(ctx, conn, data...); err != nil {
		return errors.Wrap(err, "make comments")
	}

	return applyMigrations(ctx, conn)
}

func applyMigrations(ctx context.Context, conn *database.Bun) error {
	migrator := migrate.NewMigrator(conn.DB(), migrations.DbMigrations)
	if err := migrator.Init(ctx); err != nil {
		return err
	}
	group, err := migrator.Migrate(ctx)
	if err != nil {
		return err
	}
	if !group.IsZero() {
		log.Info().Str("group", group.String()).Msg("migrations applied")
	}
	return nil
}
