// Package app assembles the ledger services from configuration. Both the
// HTTP server and the CLI build their object graph through New.
package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"campus-ledger/config"
	"campus-ledger/internal/adapter/notify"
	"campus-ledger/internal/adapter/starknet"
	boltStorage "campus-ledger/internal/adapter/storage/bolt"
	"campus-ledger/internal/adapter/storage/fallback"
	levelStorage "campus-ledger/internal/adapter/storage/leveldb"
	"campus-ledger/internal/adapter/storage/memory"
	pgStorage "campus-ledger/internal/adapter/storage/postgres"
	redisStorage "campus-ledger/internal/adapter/storage/redis"
	"campus-ledger/internal/core/domain"
	"campus-ledger/internal/core/ports"
	"campus-ledger/internal/service"
	"campus-ledger/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// App is the wired ledger client with its supporting infrastructure.
type App struct {
	Ledger         *service.LedgerClient
	Connection     *service.ConnectionManager
	Modes          *service.ModeController
	HealthCheckers []ports.HealthChecker

	closers []io.Closer
	log     zerolog.Logger
}

// New builds every component described by cfg. The returned App owns the
// opened stores and clients; call Close when done.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (_ *App, err error) {
	a := &App{log: log}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	var rdb *goredis.Client
	redisClient := func() (*goredis.Client, error) {
		if rdb != nil {
			return rdb, nil
		}
		c, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			return nil, err
		}
		rdb = c
		a.closers = append(a.closers, c)
		return c, nil
	}

	primary, err := a.openStore(ctx, cfg, redisClient)
	if err != nil {
		return nil, err
	}
	store := fallback.NewStore(primary, logger.Component(log, "state"))

	notifier, err := buildNotifier(cfg.Notify, redisClient, log)
	if err != nil {
		return nil, err
	}

	reward, err := domain.ParseAmount(cfg.Ledger.CheckInReward)
	if err != nil {
		return nil, fmt.Errorf("ledger.checkin_reward: %w", err)
	}

	modes, err := service.NewModeController(ctx, store, notifier, service.ModeOptions{
		DefaultSimulated: cfg.Ledger.DemoMode,
		PinSimulated:     cfg.Ledger.PinSimulated,
	}, logger.Component(log, "mode"))
	if err != nil {
		return nil, err
	}

	tokens := starknet.NewBridgeTokens(cfg.Wallet.BridgeSecret, cfg.Wallet.TokenTTL, cfg.Wallet.AppName)
	nodeRPC := starknet.NewRPCClient(cfg.Network.RPCURL, &http.Client{Timeout: 30 * time.Second})
	bridgeRPC := starknet.NewRPCClient(cfg.Wallet.BridgeURL, starknet.WithBearer(&http.Client{Timeout: 5 * time.Minute}, tokens))
	a.closers = append(a.closers, nodeRPC, bridgeRPC)

	node := starknet.NewNode(nodeRPC, cfg.Retry.PollInterval, cfg.Retry.WaitTimeout, logger.Component(log, "starknet"))
	bridge := starknet.NewBridge(bridgeRPC, node, cfg.Wallet.AppName, logger.Component(log, "wallet"))
	a.HealthCheckers = append(a.HealthCheckers, node)

	local := service.NewLocalLedger(store, service.LocalLedgerConfig{
		Reward:      reward,
		Latency:     cfg.Ledger.SimulatedLatency,
		MintLatency: cfg.Ledger.SimulatedMintLatency,
		HistoryCap:  cfg.Ledger.HistoryCap,
	}, log)

	remoteCfg := service.RemoteLedgerConfig{
		PointsAddress:   cfg.Contracts.Points,
		IdentityAddress: cfg.Contracts.Identity,
		ConfirmPolicy:   service.Backoff{Attempts: cfg.Retry.ConfirmAttempts, Delay: cfg.Retry.ConfirmDelay, Factor: 1},
		ReadPolicy:      service.Backoff{Attempts: cfg.Retry.ReadAttempts, Delay: cfg.Retry.ReadBaseDelay, Factor: 2},
	}
	remote := func() ports.LedgerBackend {
		return service.NewRemoteLedger(remoteCfg, log)
	}

	ledger := service.NewLedgerClient(modes, local, remote, store, notifier, service.LedgerClientConfig{
		StoreAddress: cfg.Contracts.Store,
		ExplorerURL:  cfg.Network.ExplorerURL,
		Reward:       reward,
		HistoryCap:   cfg.Ledger.HistoryCap,
	}, logger.Component(log, "ledger"))

	conn := service.NewConnectionManager(bridge, store, modes, logger.Component(log, "connection"))
	conn.OnSessionChange(func(session *ports.Session) {
		if err := ledger.Initialize(session); err != nil && session != nil {
			log.Warn().Err(err).Str("address", session.Address).Msg("Remote ledger not ready for session")
		}
	})

	a.Ledger = ledger
	a.Connection = conn
	a.Modes = modes
	return a, nil
}

// openStore opens the primary state store selected by store.driver.
func (a *App) openStore(ctx context.Context, cfg *config.Config, redisClient func() (*goredis.Client, error)) (ports.StateStore, error) {
	switch cfg.Store.Driver {
	case "bolt", "":
		s, err := boltStorage.Open(cfg.Store.Path, a.log)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, s)
		a.HealthCheckers = append(a.HealthCheckers, s)
		return s, nil
	case "leveldb":
		s, err := levelStorage.Open(cfg.Store.Path, a.log)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, s)
		a.HealthCheckers = append(a.HealthCheckers, s)
		return s, nil
	case "redis":
		client, err := redisClient()
		if err != nil {
			return nil, err
		}
		s := redisStorage.NewStateStore(client, redisStorage.KeyPrefix(cfg.Redis))
		a.HealthCheckers = append(a.HealthCheckers, s)
		return s, nil
	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg.Database, a.log)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, closerFunc(pool.Close))
		if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
			return nil, err
		}
		s := pgStorage.NewStateStore(pool)
		a.HealthCheckers = append(a.HealthCheckers, s)
		return s, nil
	case "memory":
		s := memory.NewStateStore()
		a.HealthCheckers = append(a.HealthCheckers, s)
		return s, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

func buildNotifier(cfg config.NotifyConfig, redisClient func() (*goredis.Client, error), log zerolog.Logger) (ports.Notifier, error) {
	logNotifier := notify.NewLogNotifier(logger.Component(log, "notify"))
	if cfg.RedisChannel == "" {
		return logNotifier, nil
	}
	client, err := redisClient()
	if err != nil {
		return nil, fmt.Errorf("notify.redis_channel: %w", err)
	}
	return notify.Multi{logNotifier, notify.NewRedisNotifier(client, cfg.RedisChannel, log)}, nil
}

// Close releases stores and clients in reverse opening order.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.log.Warn().Err(err).Msg("Close failed")
		}
	}
	a.closers = nil
}

type closerFunc func()

func (f closerFunc) Close() error {
	f()
	return nil
}
