package types

import "encoding/json"

// ------------------------------
// Core Domain Entities
// ------------------------------

// AgeGateStatus is the caller-facing lifecycle state of an age-gate evaluation.
// Pending is the only non-terminal member; it means an interactive step
// (consent, identity verification or age verification) must still resolve.
type AgeGateStatus string

const (
	StatusUndefined        AgeGateStatus = "Undefined"
	StatusAllowed          AgeGateStatus = "Allowed"
	StatusBlocked          AgeGateStatus = "Blocked"
	StatusPending          AgeGateStatus = "Pending"
	StatusIdentityVerified AgeGateStatus = "IdentityVerified"
	StatusAgeVerified      AgeGateStatus = "AgeVerified"
)

// UnmarshalJSON maps unrecognised wire codes to StatusUndefined instead of
// carrying arbitrary strings into the state machine.
func (s *AgeGateStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch AgeGateStatus(raw) {
	case StatusAllowed, StatusBlocked, StatusPending, StatusIdentityVerified, StatusAgeVerified:
		*s = AgeGateStatus(raw)
	default:
		*s = StatusUndefined
	}
	return nil
}

// IsTerminal reports whether the status ends a single evaluation.
func (s AgeGateStatus) IsTerminal() bool { return s != StatusPending }

// AgeGateAction is the backend-declared next action for an age-gate record.
type AgeGateAction string

const (
	ActionUndefined      AgeGateAction = ""
	ActionAllow          AgeGateAction = "Allow"
	ActionBlock          AgeGateAction = "Block"
	ActionConsent        AgeGateAction = "Consent"
	ActionVerify         AgeGateAction = "Verify"
	ActionIdentityVerify AgeGateAction = "IdentityVerify"
	ActionAgeVerify      AgeGateAction = "AgeVerify"
)

// UnmarshalJSON collapses unknown action codes to ActionUndefined so a newer
// backend cannot push the client into an unmodelled branch.
func (a *AgeGateAction) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch AgeGateAction(raw) {
	case ActionAllow, ActionBlock, ActionConsent, ActionVerify, ActionIdentityVerify, ActionAgeVerify:
		*a = AgeGateAction(raw)
	default:
		*a = ActionUndefined
	}
	return nil
}

// RecheckAction distinguishes the camera-based age-estimation fallback flows
// from ordinary interactive resolution. It never crosses the wire.
type RecheckAction string

const (
	AgeEstimationRequired        RecheckAction = "AgeEstimationRequired"
	AgeEstimationRecheckRequired RecheckAction = "AgeEstimationRecheckRequired"
)

// AgeRange is the backend's coarse age bracket for a resolved record.
type AgeRange struct {
	Start        int    `json:"start"`
	End          int    `json:"end"`
	Jurisdiction string `json:"jurisdiction,omitempty"`
}

// AgeGateEvent is the outcome of one gate evaluation. Immutable value; the
// orchestrator produces it, callers consume it, and the agId-bearing subset is
// folded into durable storage.
type AgeGateEvent struct {
	Status         AgeGateStatus `json:"status"`
	UserIdentifier string        `json:"userIdentifier,omitempty"`
	Nickname       string        `json:"nickname,omitempty"`
	AgID           string        `json:"agId,omitempty"`
	AgeRange       *AgeRange     `json:"ageRange,omitempty"`
	CountryCode    string        `json:"countryCode,omitempty"`
}

// AgeGateStoredEntity is a persisted identity↔age-gate linkage. Dedup is by
// full tuple equality, not by AgID alone: the same AgID may legitimately
// appear under several identifiers, and lookups scan for the first match.
type AgeGateStoredEntity struct {
	UserIdentifier string `json:"userIdentifier,omitempty"`
	Nickname       string `json:"nickname,omitempty"`
	AgID           string `json:"agId"`
}

// AgeServiceSettings is the per-service configuration fetched from the
// backend; it rides inside the state token handed to the interactive step.
type AgeServiceSettings struct {
	IsGeoAPIOn                bool   `json:"isGeoApiOn"`
	IsAllowSelectCountry      bool   `json:"isAllowSelectCountry"`
	IsProvideUserID           bool   `json:"isProvideUserId"`
	IsShowStatusUI            bool   `json:"isShowStatusUi"`
	IsMultiUserOn             bool   `json:"isMultiUserOn"`
	PollAgeGateStatusInterval int    `json:"poolAgeGateStatusInterval,omitempty"`
	VerificationAPIKey        string `json:"verificationApiKey,omitempty"`
	P2SiteID                  int    `json:"p2SiteId,omitempty"`
	LogoURL                   string `json:"logoUrl,omitempty"`
	CustomerSupportEmail      string `json:"customerSupportEmail,omitempty"`
}

// AgeState combines a previously stored agId with freshly fetched service
// settings. Computed per invocation, never persisted.
type AgeState struct {
	AgID     string             `json:"agId,omitempty"`
	Settings AgeServiceSettings `json:"settings"`
}

// DeviceFingerprint is the anonymous device payload submitted once per
// device+environment to obtain a stable fingerprint identifier.
type DeviceFingerprint struct {
	FpVersion string `json:"fpVersion"`
	DeviceID  string `json:"deviceId"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	Hostname  string `json:"hostname,omitempty"`
}
