package service

import (
	"context"
	"strings"
	"sync"

	"campus-ledger/internal/core/domain"
	"campus-ledger/internal/core/ports"

	"github.com/rs/zerolog"
)

// SessionListener is told about every session change. A nil session means
// the wallet was disconnected.
type SessionListener func(session *ports.Session)

// ConnectionManager implements ports.ConnectionService. It is the only writer
// of the live session.
type ConnectionManager struct {
	mu        sync.RWMutex
	session   *ports.Session
	listeners []SessionListener

	provider ports.WalletProvider
	store    ports.StateStore
	modes    ports.ModeService
	log      zerolog.Logger
}

var _ ports.ConnectionService = (*ConnectionManager)(nil)

// NewConnectionManager creates a new ConnectionManager.
func NewConnectionManager(
	provider ports.WalletProvider,
	store ports.StateStore,
	modes ports.ModeService,
	log zerolog.Logger,
) *ConnectionManager {
	return &ConnectionManager{
		provider: provider,
		store:    store,
		modes:    modes,
		log:      log,
	}
}

// OnSessionChange registers fn to run after every connect or disconnect.
func (m *ConnectionManager) OnSessionChange(fn SessionListener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Session returns the live session or nil.
func (m *ConnectionManager) Session() *ports.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// Connect requests account access from the wallet. A silent connect never
// prompts and returns (nil, nil) without touching state when nothing is
// pre-authorized.
func (m *ConnectionManager) Connect(ctx context.Context, silent bool) (*ports.Session, error) {
	account, err := m.provider.Connect(ctx, silent)
	if err != nil {
		m.log.Warn().Err(err).Bool("silent", silent).Msg("wallet connect failed")
		m.setSession(nil)
		return nil, classifyConnectError(err)
	}
	if account == nil {
		m.log.Debug().Msg("no pre-authorized wallet account")
		return nil, nil
	}

	session := &ports.Session{Address: account.Address(), Account: account}
	m.setSession(session)

	if !silent {
		if err := m.modes.SetMode(ctx, domain.ModeRemote); err != nil {
			m.log.Error().Err(err).Msg("failed to switch to live mode after connect")
		}
		if err := m.store.Set(ctx, domain.KeyWalletConnected, "true"); err != nil {
			m.log.Error().Err(err).Msg("failed to persist wallet connected flag")
		}
	}

	m.log.Info().
		Str("address", domain.ShortAddress(session.Address)).
		Bool("silent", silent).
		Msg("wallet connected")
	return session, nil
}

// Disconnect tears down the wallet session. The session is cleared even when
// the provider fails.
func (m *ConnectionManager) Disconnect(ctx context.Context) {
	if err := m.provider.Disconnect(ctx); err != nil {
		m.log.Warn().Err(err).Msg("wallet disconnect failed")
	}
	if err := m.store.Delete(ctx, domain.KeyWalletConnected); err != nil {
		m.log.Warn().Err(err).Msg("failed to clear wallet connected flag")
	}
	if m.Session() != nil {
		m.log.Info().Msg("wallet disconnected")
	}
	m.setSession(nil)
}

// AutoReconnect restores a previous session silently. Failures are logged
// only and the connected flag is kept so a later explicit connect can retry.
func (m *ConnectionManager) AutoReconnect(ctx context.Context) {
	flag, ok, err := m.store.Get(ctx, domain.KeyWalletConnected)
	if err != nil {
		m.log.Warn().Err(err).Msg("failed to read wallet connected flag")
		return
	}
	if !ok || !strings.EqualFold(flag, "true") {
		return
	}
	if _, err := m.Connect(ctx, true); err != nil {
		m.log.Warn().Err(err).Msg("auto-reconnect failed")
	}
}

func (m *ConnectionManager) setSession(session *ports.Session) {
	m.mu.Lock()
	prev := m.session
	m.session = session
	listeners := append([]SessionListener(nil), m.listeners...)
	m.mu.Unlock()

	if prev == nil && session == nil {
		return
	}
	for _, fn := range listeners {
		fn(session)
	}
}
