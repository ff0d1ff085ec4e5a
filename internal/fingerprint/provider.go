// Package fingerprint obtains the stable per-device anonymous identifier the
// age-gate backend keys anonymous records on.
package fingerprint

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/privsafe/agegate-go/internal/api"
	"github.com/privsafe/agegate-go/internal/store"
)

// ErrUnavailable means no fingerprint could be obtained; gate evaluations
// must treat the overall result as inconclusive and never reach the backend
// without one.
var ErrUnavailable = errors.New("device fingerprint unavailable")

// Provider returns the cached fingerprint id or generates one through the
// backend, caching it on success. Concurrent first calls share a single
// in-flight generation.
type Provider struct {
	http        *http.Client
	authBaseURL string
	storage     *store.Storage
	log         zerolog.Logger

	group singleflight.Group
}

// New constructs a Provider over the given storage and auth endpoint.
func New(httpClient *http.Client, authBaseURL string, storage *store.Storage, log zerolog.Logger) *Provider {
	return &Provider{http: httpClient, authBaseURL: authBaseURL, storage: storage, log: log}
}

// GetFpID returns the device fingerprint identifier, generating and caching
// it on first use. Failure surfaces as ErrUnavailable.
func (p *Provider) GetFpID(ctx context.Context) (string, error) {
	if id, ok := p.storage.FpID(); ok {
		return id, nil
	}
	v, err, _ := p.group.Do("fpid", func() (any, error) {
		// Re-check under the flight: a racer may have cached it already.
		if id, ok := p.storage.FpID(); ok {
			return id, nil
		}
		fp := Collect()
		resp, err := api.GenerateFingerprint(ctx, p.http, p.authBaseURL, fp)
		if err != nil {
			return "", err
		}
		p.storage.SetFpID(resp.ID)
		return resp.ID, nil
	})
	if err != nil {
		p.log.Debug().Err(err).Msg("fingerprint generation failed")
		return "", ErrUnavailable
	}
	return v.(string), nil
}
