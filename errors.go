package agegate

import (
	sdkerrors "github.com/privsafe/agegate-go/internal/errors"
	"github.com/privsafe/agegate-go/internal/fingerprint"
)

// ErrFingerprintUnavailable is the hard precondition failure for any
// status or birth-date call: no evaluation reaches the backend without a
// device fingerprint.
var ErrFingerprintUnavailable = fingerprint.ErrUnavailable

// IsEstimationRequired reports whether err is the backend's signal that
// camera-based age estimation must be attempted. The SDK handles this branch
// internally; the predicate is exported for hosts that wrap the gateway.
func IsEstimationRequired(err error) bool { return sdkerrors.IsEstimationRequired(err) }
