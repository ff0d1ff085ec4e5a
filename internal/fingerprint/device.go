package fingerprint

import (
	"os"
	"runtime"

	"github.com/google/uuid"

	"github.com/privsafe/agegate-go/internal/types"
)

// fpVersion tags the payload shape so the backend can evolve its matcher.
const fpVersion = "1"

// Collect builds the anonymous device payload submitted on first use. The
// random device id makes the payload unique per install; stability comes from
// the server-assigned identifier we cache afterwards.
func Collect() types.DeviceFingerprint {
	hostname, _ := os.Hostname()
	return types.DeviceFingerprint{
		FpVersion: fpVersion,
		DeviceID:  uuid.NewString(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Hostname:  hostname,
	}
}
