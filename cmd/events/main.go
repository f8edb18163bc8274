package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/dipdup-io/starknet-events/internal/caller"
	"github.com/dipdup-io/starknet-events/internal/storage/postgres"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string

	rootCmd = &cobra.Command{
		Use:           "events",
		Short:         "DipDup indexer of exchange events for Starknet",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context())
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file (built-in defaults are used if empty)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "overrides log level from config")
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		short := file
		for i := len(file) - 1; i > 0; i-- {
			if file[i] == '/' {
				short = file[i+1:]
				break
			}
		}
		file = short
		return file + ":" + strconv.Itoa(line)
	}
	log.Logger = log.Logger.With().Caller().Logger()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Err(err).Msg("events indexer")
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := setLogLevel(cfg.LogLevel); err != nil {
		return err
	}

	pg, err := postgres.Create(ctx, cfg.Database)
	if err != nil {
		return errors.Wrap(err, "database creation")
	}
	defer func() {
		if err := pg.Close(); err != nil {
			log.Err(err).Msg("closing database connection")
		}
	}()

	node, err := caller.NewNodeRpcCaller(ctx, cfg.DataSource)
	if err != nil {
		return errors.Wrap(err, "create node client")
	}
	defer node.Close()

	indexer, err := NewIndexer(cfg.Indexer, node, Tables{
		Orders:      pg.Orders,
		Deposits:    pg.Deposits,
		Withdrawals: pg.Withdrawals,
	})
	if err != nil {
		return errors.Wrap(err, "create indexer")
	}

	summary, err := indexer.Run(ctx)
	if err != nil {
		return err
	}

	log.Info().
		Int("fetched", summary.Fetched).
		Int("orders", summary.Orders).
		Int("deposits", summary.Deposits).
		Int("withdrawals", summary.Withdrawals).
		Int("unknown", summary.Unknown).
		Int("inserted", summary.Inserted()).
		Bool("has_more", summary.HasMore).
		Stringer("state", indexer.State()).
		Msg("done")
	return nil
}

func setLogLevel(level string) error {
	if level == "" {
		level = zerolog.LevelInfoValue
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "parsing log level")
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
