package main

import (
	"strings"

	"github.com/dipdup-io/starknet-events/internal/events"
	"github.com/dipdup-io/starknet-events/internal/felt"
	"github.com/dipdup-io/starknet-events/internal/storage/postgres"
	"github.com/dipdup-io/starknet-go-api/pkg/data"
	"github.com/dipdup-io/starknet-go-api/pkg/encoding"
	"github.com/dipdup-net/go-lib/config"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// defaults
const (
	DefaultProviderURL     = "https://ancient-skilled-asphalt.strk-sepolia.quiknode.pro/ab96caa503ba84b2f1631ccf7db3f15380314ed7"
	DefaultContractAddress = "0x2cf721c0387704095d6b2205b46e17d7768fa55c2f1a1087425b877b72937db"
	DefaultFromBlock       = 64539
	DefaultChunkSize       = 100
	DefaultTimeout         = 30
	datasourceKind         = "starknet_rpc"
)

// Config -
type Config struct {
	LogLevel   string            `yaml:"log_level" validate:"omitempty,oneof=debug trace info warn error fatal panic"`
	DataSource config.DataSource `yaml:"datasource"`
	Indexer    IndexerConfig     `yaml:"indexer"`
	Database   postgres.Config   `yaml:"database"`
}

// IndexerConfig -
type IndexerConfig struct {
	ContractAddress string          `yaml:"contract_address" validate:"required"`
	FromBlock       uint64          `yaml:"from_block" validate:"min=0"`
	ChunkSize       uint64          `yaml:"chunk_size" validate:"min=1"`
	Selectors       SelectorsConfig `yaml:"selectors"`
}

// SelectorsConfig - each value is either 0x-prefixed selector or event name
type SelectorsConfig struct {
	Order      string `yaml:"order" validate:"required"`
	Deposit    string `yaml:"deposit" validate:"required"`
	Withdrawal string `yaml:"withdrawal" validate:"required"`
}

// Substitute -
func (c *Config) Substitute() error {
	c.DataSource.URL = strings.TrimSpace(c.DataSource.URL)
	c.Indexer.ContractAddress = strings.TrimSpace(c.Indexer.ContractAddress)
	return nil
}

// DefaultConfig - configuration used when no file is passed
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		DataSource: config.DataSource{
			Kind:    datasourceKind,
			URL:     DefaultProviderURL,
			Timeout: DefaultTimeout,
		},
		Indexer: IndexerConfig{
			ContractAddress: DefaultContractAddress,
			FromBlock:       DefaultFromBlock,
			ChunkSize:       DefaultChunkSize,
			Selectors: SelectorsConfig{
				Order:      string(events.DefaultOrderSelector),
				Deposit:    string(events.DefaultDepositSelector),
				Withdrawal: string(events.DefaultWithdrawalSelector),
			},
		},
	}
}

// Load - reads config file over defaults and DATABASE_URL from environment
func Load(filename string) (Config, error) {
	cfg := DefaultConfig()
	if err := envconfig.Process("", &cfg.Database); err != nil {
		return cfg, errors.Wrap(err, "environment")
	}

	if filename != "" {
		if err := config.Parse(filename, &cfg); err != nil {
			return cfg, errors.Wrap(err, "parse config")
		}
	}

	if err := cfg.Substitute(); err != nil {
		return cfg, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return cfg, errors.Wrap(err, "validate config")
	}
	return cfg, nil
}

// Contract - contract address as felt
func (c IndexerConfig) Contract() (data.Felt, error) {
	if !felt.IsValid(data.Felt(c.ContractAddress)) {
		return "", errors.Wrapf(felt.ErrInvalidFelt, "contract address: %s", c.ContractAddress)
	}
	return felt.Decode(c.ContractAddress)
}

// Build - resolves selectors
func (s SelectorsConfig) Build() (events.Selectors, error) {
	order, err := resolveSelector(s.Order)
	if err != nil {
		return events.Selectors{}, errors.Wrap(err, "order")
	}
	deposit, err := resolveSelector(s.Deposit)
	if err != nil {
		return events.Selectors{}, errors.Wrap(err, "deposit")
	}
	withdrawal, err := resolveSelector(s.Withdrawal)
	if err != nil {
		return events.Selectors{}, errors.Wrap(err, "withdrawal")
	}
	return events.NewSelectors(order, deposit, withdrawal)
}

func resolveSelector(value string) (data.Felt, error) {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "0x") || strings.HasPrefix(value, "0X") {
		if !felt.IsValid(data.Felt(value)) {
			return "", errors.Wrapf(felt.ErrInvalidFelt, "selector: %s", value)
		}
		return data.Felt(value), nil
	}
	if value == "" {
		return "", errors.New("empty selector")
	}
	return felt.Decode(encoding.GetSelectorFromName(value))
}
