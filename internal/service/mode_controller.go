package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"campus-ledger/internal/core/domain"
	"campus-ledger/internal/core/ports"
	"campus-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	msgDemoModeEnabled = "Demo mode enabled. Blockchain calls are now simulated."
	msgLiveModeEnabled = "Live mode enabled. Transactions will be sent to StarkNet."
)

// ModeOptions configures startup mode resolution.
type ModeOptions struct {
	// DefaultSimulated is used when nothing is persisted yet.
	DefaultSimulated bool
	// PinSimulated forces SIMULATED at startup regardless of the persisted
	// value. An explicit SetMode afterwards is still honored.
	PinSimulated bool
}

// ModeController implements ports.ModeService. It is the single source of
// truth for which ledger backend is active.
type ModeController struct {
	mu       sync.RWMutex
	mode     domain.Mode
	store    ports.StateStore
	notifier ports.Notifier
	log      zerolog.Logger
}

var _ ports.ModeService = (*ModeController)(nil)

// NewModeController loads the persisted mode and applies the startup guard.
func NewModeController(ctx context.Context, store ports.StateStore, notifier ports.Notifier, opts ModeOptions, log zerolog.Logger) (*ModeController, error) {
	c := &ModeController{
		mode:     domain.ModeRemote,
		store:    store,
		notifier: notifier,
		log:      log,
	}
	if opts.DefaultSimulated {
		c.mode = domain.ModeSimulated
	}

	raw, ok, err := store.Get(ctx, domain.KeyDemoMode)
	if err != nil {
		return nil, fmt.Errorf("loading mode: %w", err)
	}
	if ok {
		if simulated, perr := strconv.ParseBool(raw); perr == nil {
			c.mode = modeFromFlag(simulated)
		} else {
			log.Warn().Str("value", raw).Msg("ignoring malformed persisted mode")
		}
	}

	if opts.PinSimulated && c.mode != domain.ModeSimulated {
		log.Info().Str("persisted", string(c.mode)).Msg("startup guard pins mode to SIMULATED")
		c.mode = domain.ModeSimulated
	}
	if opts.PinSimulated || !ok {
		if err := c.persist(ctx, c.mode); err != nil {
			return nil, err
		}
	}

	log.Info().Str("mode", string(c.mode)).Msg("ledger mode resolved")
	return c, nil
}

func (c *ModeController) Mode() domain.Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// SetMode persists the new mode immediately and announces a change.
func (c *ModeController) SetMode(ctx context.Context, mode domain.Mode) error {
	if mode != domain.ModeSimulated && mode != domain.ModeRemote {
		return apperror.Validation(fmt.Sprintf("unknown mode %q", mode))
	}

	c.mu.Lock()
	prev := c.mode
	if err := c.persist(ctx, mode); err != nil {
		c.mu.Unlock()
		return apperror.InternalError(err)
	}
	c.mode = mode
	c.mu.Unlock()

	if prev == mode {
		return nil
	}

	c.log.Info().Str("from", string(prev)).Str("to", string(mode)).Msg("ledger mode changed")
	if mode.IsSimulated() {
		c.notifier.Notify(ctx, domain.SeverityInfo, msgDemoModeEnabled)
	} else {
		c.notifier.Notify(ctx, domain.SeverityInfo, msgLiveModeEnabled)
	}
	return nil
}

func (c *ModeController) persist(ctx context.Context, mode domain.Mode) error {
	if err := c.store.Set(ctx, domain.KeyDemoMode, strconv.FormatBool(mode.IsSimulated())); err != nil {
		return fmt.Errorf("persisting mode: %w", err)
	}
	return nil
}

func modeFromFlag(simulated bool) domain.Mode {
	if simulated {
		return domain.ModeSimulated
	}
	return domain.ModeRemote
}
