// Package settings lazily fetches and caches the per-service age-gate
// configuration. Concurrent callers awaiting the first fetch share one
// in-flight request.
package settings

import (
	"context"
	"net/http"
	"sync"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/singleflight"

	"github.com/privsafe/agegate-go/internal/api"
	sdkerrors "github.com/privsafe/agegate-go/internal/errors"
	"github.com/privsafe/agegate-go/internal/types"
)

// Holder caches AgeServiceSettings after the first successful fetch. Settings
// are static per service so the cache has no expiry.
type Holder struct {
	http              *http.Client
	baseURL           string
	serviceIdentifier string

	group singleflight.Group

	mu     sync.RWMutex
	cached *types.AgeServiceSettings
}

// New constructs a Holder; nothing is fetched until Get is called.
func New(httpClient *http.Client, baseURL, serviceIdentifier string) *Holder {
	return &Holder{http: httpClient, baseURL: baseURL, serviceIdentifier: serviceIdentifier}
}

// Get returns the cached settings, fetching them on first use. Recoverable
// fetch failures are retried briefly with exponential backoff before giving
// up; an error here fails the caller's interactive path.
func (h *Holder) Get(ctx context.Context) (*types.AgeServiceSettings, error) {
	h.mu.RLock()
	cached := h.cached
	h.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	v, err, _ := h.group.Do("settings", func() (any, error) {
		h.mu.RLock()
		cached := h.cached
		h.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		var fetched *types.AgeServiceSettings
		exp := backoff.NewExponentialBackOff()
		exp.InitialInterval = 200 * time.Millisecond
		exp.MaxElapsedTime = 5 * time.Second
		err := backoff.Retry(func() error {
			s, err := api.FetchSettings(ctx, h.http, h.baseURL, h.serviceIdentifier)
			if err != nil {
				if sdkerrors.IsIrrecoverable(err) {
					return backoff.Permanent(err)
				}
				return err
			}
			fetched = s
			return nil
		}, backoff.WithContext(exp, ctx))
		if err != nil {
			return nil, err
		}

		h.mu.Lock()
		h.cached = fetched
		h.mu.Unlock()
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*types.AgeServiceSettings), nil
}
