package types

// ------------------------------
// Response Types
// ------------------------------

// AgeGateStatusResponse is returned by the status and link-user endpoints.
type AgeGateStatusResponse struct {
	Status      AgeGateStatus `json:"status"`
	AgID        string        `json:"agId,omitempty"`
	ExtUserID   string        `json:"extUserId,omitempty"`
	AgeRange    *AgeRange     `json:"ageRange,omitempty"`
	CountryCode string        `json:"countryCode,omitempty"`
}

// AgeGateActionResponse is returned by the birthdate and recheck endpoints.
type AgeGateActionResponse struct {
	Action      AgeGateAction `json:"action"`
	AgID        string        `json:"agId,omitempty"`
	ExtUserID   string        `json:"extUserId,omitempty"`
	AgeRange    *AgeRange     `json:"ageRange,omitempty"`
	CountryCode string        `json:"countryCode,omitempty"`
}

// DeviceFingerprintResponse carries the server-assigned fingerprint id.
type DeviceFingerprintResponse struct {
	ID string `json:"id"`
}

// TmpStorageID acknowledges a temporary-storage put.
type TmpStorageID struct {
	ID string `json:"id"`
}
