package analytics

import (
	"encoding/json"

	"github.com/privsafe/agegate-go/internal/types"
)

// TrackLinkWarning submits the "agId not found locally" desync warning.
func (d *Dispatcher) TrackLinkWarning(serviceIdentifier string, warning types.AgeGateLinkWarning) {
	raw, err := json.Marshal(warning)
	if err != nil {
		return
	}
	d.Submit(types.AnalyticEvent{ServiceIdentifier: serviceIdentifier, Data: string(raw)})
}

// errorReport is the payload shape for failed gateway calls.
type errorReport struct {
	ErrorMessage string `json:"errorMessage"`
	ErrorCode    int    `json:"errorCode,omitempty"`
}

// TrackError submits a best-effort report of a failed gateway call.
func (d *Dispatcher) TrackError(serviceIdentifier, message string, code int) {
	raw, err := json.Marshal(errorReport{ErrorMessage: message, ErrorCode: code})
	if err != nil {
		return
	}
	d.Submit(types.AnalyticEvent{ServiceIdentifier: serviceIdentifier, Data: string(raw)})
}
