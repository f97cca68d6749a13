package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Network   NetworkConfig   `mapstructure:"network"`
	Contracts ContractsConfig `mapstructure:"contracts"`
	Wallet    WalletConfig    `mapstructure:"wallet"`
	Ledger    LedgerConfig    `mapstructure:"ledger"`
	Retry     RetryConfig     `mapstructure:"retry"`
	Store     StoreConfig     `mapstructure:"store"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Notify    NotifyConfig    `mapstructure:"notify"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// NetworkConfig points at the StarkNet network the remote backend talks to.
type NetworkConfig struct {
	ChainID     string `mapstructure:"chain_id"`
	RPCURL      string `mapstructure:"rpc_url"`
	ExplorerURL string `mapstructure:"explorer_url"`
}

// ContractsConfig holds deployed contract addresses. Empty or zero addresses
// mean "not deployed" and block the remote backend from initializing.
type ContractsConfig struct {
	Points   string `mapstructure:"points"`
	Identity string `mapstructure:"identity"`
	Store    string `mapstructure:"store"`
}

// WalletConfig configures the wallet bridge that signs and submits invokes.
type WalletConfig struct {
	BridgeURL    string        `mapstructure:"bridge_url"`
	BridgeSecret string        `mapstructure:"bridge_secret"`
	AppName      string        `mapstructure:"app_name"`
	TokenTTL     time.Duration `mapstructure:"token_ttl"`
}

type LedgerConfig struct {
	DemoMode             bool          `mapstructure:"demo_mode"`
	PinSimulated         bool          `mapstructure:"pin_simulated"`
	SimulatedLatency     time.Duration `mapstructure:"simulated_latency"`
	SimulatedMintLatency time.Duration `mapstructure:"simulated_mint_latency"`
	CheckInReward        string        `mapstructure:"checkin_reward"`
	HistoryCap           int           `mapstructure:"history_cap"`
}

// RetryConfig holds the per-operation retry budgets of the remote backend.
type RetryConfig struct {
	ConfirmAttempts int           `mapstructure:"confirm_attempts"`
	ConfirmDelay    time.Duration `mapstructure:"confirm_delay"`
	ReadAttempts    int           `mapstructure:"read_attempts"`
	ReadBaseDelay   time.Duration `mapstructure:"read_base_delay"`
	WaitTimeout     time.Duration `mapstructure:"wait_timeout"`
	PollInterval    time.Duration `mapstructure:"poll_interval"`
}

// StoreConfig selects the key-value store behind local state.
type StoreConfig struct {
	Driver string `mapstructure:"driver"` // bolt, leveldb, redis, postgres, memory
	Path   string `mapstructure:"path"`   // bolt file or leveldb directory
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// ConfirmBudget is the longest a confirmed write can block: every attempt may
// spend the full node wait, with ConfirmDelay between attempts.
func (r RetryConfig) ConfirmBudget() time.Duration {
	attempts := r.ConfirmAttempts
	if attempts < 1 {
		attempts = 1
	}
	return time.Duration(attempts)*r.WaitTimeout + time.Duration(attempts-1)*r.ConfirmDelay
}

// NotifyConfig configures where user-facing status messages are published.
type NotifyConfig struct {
	RedisChannel string `mapstructure:"redis_channel"` // empty = log only
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CPL_ (Campus Points Ledger).
// Nested keys use underscore: CPL_CONTRACTS_POINTS, CPL_STORE_DRIVER, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("network.chain_id", "sepolia")
	v.SetDefault("network.rpc_url", "https://starknet-sepolia.public.blastapi.io")
	v.SetDefault("network.explorer_url", "https://sepolia.voyager.online")
	v.SetDefault("contracts.points", "")
	v.SetDefault("contracts.identity", "")
	v.SetDefault("contracts.store", "0x0")
	v.SetDefault("wallet.bridge_url", "http://127.0.0.1:5050/rpc")
	v.SetDefault("wallet.bridge_secret", "")
	v.SetDefault("wallet.app_name", "campus-ledger")
	v.SetDefault("wallet.token_ttl", "1m")
	v.SetDefault("ledger.demo_mode", true)
	v.SetDefault("ledger.pin_simulated", true)
	v.SetDefault("ledger.simulated_latency", "1500ms")
	v.SetDefault("ledger.simulated_mint_latency", "2s")
	v.SetDefault("ledger.checkin_reward", "10")
	v.SetDefault("ledger.history_cap", 50)
	v.SetDefault("retry.confirm_attempts", 5)
	v.SetDefault("retry.confirm_delay", "5s")
	v.SetDefault("retry.read_attempts", 3)
	v.SetDefault("retry.read_base_delay", "1s")
	v.SetDefault("retry.wait_timeout", "2m")
	v.SetDefault("retry.poll_interval", "2s")
	v.SetDefault("store.driver", "bolt")
	v.SetDefault("store.path", "campus-ledger.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "campus_ledger")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 5)
	v.SetDefault("database.min_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "campus:")
	v.SetDefault("notify.redis_channel", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: CPL_CONTRACTS_POINTS -> contracts.points
	v.SetEnvPrefix("CPL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
