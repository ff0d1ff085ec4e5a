package agegate

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// agegate.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/privsafe/agegate-go/internal/gate"
	"github.com/privsafe/agegate-go/internal/store"
)

// Option configures a Client during construction in New.
// Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments: dumps include full
// request and response bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithLogger sets the structured logger used across the SDK. The default
// discards all output.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = log
		return nil
	}
}

// WithEnv overrides the storage environment scope ("sandbox"/"production").
func WithEnv(env string) Option {
	return func(c *Client) error {
		if env != "sandbox" && env != "production" {
			return fmt.Errorf("env must be sandbox or production, got %q", env)
		}
		c.cfg.Env = env
		return nil
	}
}

// WithBaseURLs overrides the backend endpoints, e.g. to point a sandbox
// build at staging infrastructure. Empty fields keep their configured value.
func WithBaseURLs(ageGateURL, authURL, helperURL, publicURL string) Option {
	return func(c *Client) error {
		if ageGateURL != "" {
			c.cfg.AgeGateURL = ageGateURL
		}
		if authURL != "" {
			c.cfg.AuthURL = authURL
		}
		if helperURL != "" {
			c.cfg.HelperURL = helperURL
		}
		if publicURL != "" {
			c.cfg.PublicURL = publicURL
		}
		return nil
	}
}

// WithKV substitutes the host application's secure key-value storage for the
// SDK's default store.
func WithKV(kv store.KV) Option {
	return func(c *Client) error {
		if kv == nil {
			return fmt.Errorf("kv must not be nil")
		}
		c.kv = kv
		return nil
	}
}

// WithPresenter installs the host's embedded web-view driver. Without one,
// every interactive step closes immediately without a result.
func WithPresenter(p gate.Presenter) Option {
	return func(c *Client) error {
		if p == nil {
			return fmt.Errorf("presenter must not be nil")
		}
		c.presenter = p
		return nil
	}
}

// WithCameraPermission installs the host's camera permission prompt, used
// before the age-estimation fallback. The result never blocks the flow.
func WithCameraPermission(p gate.CameraPermission) Option {
	return func(c *Client) error {
		if p == nil {
			return fmt.Errorf("camera permission must not be nil")
		}
		c.camera = p
		return nil
	}
}
