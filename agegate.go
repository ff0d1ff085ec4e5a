// Package agegate is the client SDK for the age verification gate: it
// combines locally cached state, device fingerprinting and backend calls,
// interleaved with embedded web UI steps, to resolve a user's
// age-appropriate access level.
package agegate

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/privsafe/agegate-go/internal/analytics"
	"github.com/privsafe/agegate-go/internal/fingerprint"
	"github.com/privsafe/agegate-go/internal/gate"
	"github.com/privsafe/agegate-go/internal/settings"
	"github.com/privsafe/agegate-go/internal/store"
	"github.com/privsafe/agegate-go/internal/types"
)

// Client is the public entry point. One Client serves any number of
// concurrent gate evaluations; the only shared mutable state is the record
// store and the fingerprint cache.
type Client struct {
	cfg               Config
	serviceIdentifier string
	http              *http.Client
	log               zerolog.Logger

	kv        store.KV
	ownedKV   *store.Badger // closed with the client when we opened it
	storage   *store.Storage
	presenter gate.Presenter
	camera    gate.CameraPermission
	events    *analytics.Dispatcher
	orch      *gate.Orchestrator

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for the given service identifier. Configuration
// comes from the environment (see Config); options override it.
func New(serviceIdentifier string, opts ...Option) *Client {
	if serviceIdentifier == "" {
		panic("serviceIdentifier cannot be empty")
	}
	cfg, err := LoadConfig()
	if err != nil {
		panic(err)
	}

	c := &Client{
		cfg:               cfg,
		serviceIdentifier: serviceIdentifier,
		http:              &http.Client{Timeout: cfg.HTTPTimeout},
		log:               zerolog.Nop(),
		presenter:         gate.NoPresenter{},
		camera:            gate.GrantedCamera{},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	if c.kv == nil {
		c.kv = c.openDefaultKV()
	}
	c.storage = store.New(c.kv, c.cfg.Env, c.log)

	if c.events == nil {
		eventsCfg, err := analytics.LoadConfig()
		if err != nil {
			eventsCfg = analytics.Config{}
		}
		c.events = analytics.NewDispatcher(eventsCfg, c.http, c.cfg.HelperURL, c.log)
	}

	fp := fingerprint.New(c.http, c.cfg.AuthURL, c.storage, c.log)
	settingsHolder := settings.New(c.http, c.cfg.AgeGateURL, c.serviceIdentifier)
	c.orch = gate.New(c.http, gate.Endpoints{
		AgeGateURL: c.cfg.AgeGateURL,
		HelperURL:  c.cfg.HelperURL,
		PublicURL:  c.cfg.PublicURL,
	}, c.serviceIdentifier, c.storage, fp, settingsHolder, c.presenter, c.camera, c.events, c.log)

	return c
}

// openDefaultKV opens the configured badger store, or falls back to memory.
// Storage trouble degrades the SDK to per-process state; it never fails
// construction.
func (c *Client) openDefaultKV() store.KV {
	if c.cfg.StorePath == "" {
		return store.NewMemory()
	}
	badgerKV, err := store.OpenBadger(c.cfg.StorePath)
	if err != nil {
		c.log.Warn().Err(err).Str("path", c.cfg.StorePath).Msg("durable store unavailable, using in-memory state")
		return store.NewMemory()
	}
	c.ownedKV = badgerKV
	return badgerKV
}

// Close stops the background dispatcher and releases the durable store if
// the client opened it. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.events != nil {
		c.events.Stop()
	}
	if c.ownedKV != nil {
		return c.ownedKV.Close()
	}
	return nil
}

// GetStatus looks up the current age-gate status for an identifier or
// nickname. It never opens the interactive UI; any gateway failure yields an
// Undefined event echoing the inputs.
func (c *Client) GetStatus(ctx context.Context, userIdentifier, nickname string) (AgeGateEvent, error) {
	if err := ctx.Err(); err != nil {
		return AgeGateEvent{}, err
	}
	event := c.orch.StatusEvent(ctx, userIdentifier, nickname)
	c.storage.StoreInfoFromEvent(&event)
	recordEvaluation("status", event.Status)
	return event, nil
}

// Run evaluates the gate from birth-date input, driving the interactive UI
// step when the backend requires consent or verification. A nil event means
// the evaluation was inconclusive.
func (c *Client) Run(ctx context.Context, data CheckAgeData) (*AgeGateEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateCheckAge(data); err != nil {
		return nil, err
	}
	event, err := c.orch.RunByBirthDate(ctx, data)
	if err != nil {
		return nil, err
	}
	c.storage.StoreInfoFromEvent(event)
	recordOptionalEvaluation("run", event)
	return event, nil
}

// Recheck re-evaluates an existing age-gate record with fresh birth-date
// input. Without a locally known record it resolves to nil, never reaching
// the backend.
func (c *Client) Recheck(ctx context.Context, data CheckAgeData) (*AgeGateEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateCheckAge(data); err != nil {
		return nil, err
	}
	event, err := c.orch.RecheckByBirthDate(ctx, data)
	if err != nil {
		return nil, err
	}
	c.storage.StoreInfoFromEvent(event)
	recordOptionalEvaluation("recheck", event)
	return event, nil
}

// LinkUser merges an application user identifier into an age-gate record.
// Linking an agId unknown locally emits a diagnostic warning but proceeds.
func (c *Client) LinkUser(ctx context.Context, userIdentifier, agID, nickname string) (AgeGateEvent, error) {
	if err := ctx.Err(); err != nil {
		return AgeGateEvent{}, err
	}
	if err := types.ValidateIDPresent(userIdentifier, "userIdentifier"); err != nil {
		return AgeGateEvent{}, err
	}
	if err := types.ValidateIDPresent(agID, "agId"); err != nil {
		return AgeGateEvent{}, err
	}
	event := c.orch.LinkUser(ctx, userIdentifier, agID, nickname)
	c.storage.StoreInfoFromEvent(&event)
	recordEvaluation("link_user", event.Status)
	return event, nil
}

// ShowIdentifier presents the read-only page with the stored age-gate
// identifier for support flows.
func (c *Client) ShowIdentifier(ctx context.Context, userIdentifier, nickname string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.orch.ShowIdentifier(ctx, userIdentifier, nickname)
}
