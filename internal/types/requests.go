package types

// ------------------------------
// Request Types
// ------------------------------

// CheckAgeData is the caller-supplied input to a birth-date evaluation.
// Exactly the precision supplied is forwarded; the SDK never infers one
// precision level from another.
type CheckAgeData struct {
	UserIdentifier    string `json:"userIdentifier,omitempty"`
	Nickname          string `json:"nickname,omitempty"`
	CountryCode       string `json:"countryCode,omitempty"`
	BirthDateYYYYMMDD string `json:"birthDateYYYYMMDD,omitempty"`
	BirthDateYYYYMM   string `json:"birthDateYYYYMM,omitempty"`
	BirthDateYYYY     string `json:"birthDateYYYY,omitempty"`
	Age               int    `json:"age,omitempty"`
}

// StatusRecord is the body of a status lookup.
type StatusRecord struct {
	ServiceIdentifier string `json:"serviceIdentifier"`
	FpID              string `json:"fpId"`
	AgID              string `json:"agId,omitempty"`
	ExtUserID         string `json:"extUserId,omitempty"`
}

// FpStatusRecord is the body of a birth-date submission for a device that may
// not yet have an age-gate record.
type FpStatusRecord struct {
	ServiceIdentifier string `json:"serviceIdentifier"`
	FpID              string `json:"fpId"`
	BirthDate         string `json:"birthDate,omitempty"`
	BirthDateYYYYMM   string `json:"birthDateYYYYMM,omitempty"`
	BirthDateYYYY     string `json:"birthDateYYYY,omitempty"`
	Age               int    `json:"age,omitempty"`
	ExtUserID         string `json:"extUserId,omitempty"`
	CountryCode       string `json:"countryCode,omitempty"`
}

// RecheckStatusRecord is the body of a recheck submission. Rechecks always
// target an existing age-gate record, so AgID is required.
type RecheckStatusRecord struct {
	ServiceIdentifier string `json:"serviceIdentifier"`
	AgID              string `json:"agId"`
	BirthDate         string `json:"birthDate,omitempty"`
	BirthDateYYYYMM   string `json:"birthDateYYYYMM,omitempty"`
	BirthDateYYYY     string `json:"birthDateYYYY,omitempty"`
	Age               int    `json:"age,omitempty"`
	CountryCode       string `json:"countryCode,omitempty"`
}

// LinkUserStatusRecord merges an application user identifier into an
// anonymous age-gate record.
type LinkUserStatusRecord struct {
	ServiceIdentifier string `json:"serviceIdentifier"`
	AgID              string `json:"agId"`
	ExtUserID         string `json:"extUserId"`
}

// CheckAgeStoreData is the opaque state token handed to the interactive step
// through temporary storage.
type CheckAgeStoreData struct {
	ServiceIdentifier string       `json:"serviceIdentifier"`
	State             AgeState     `json:"state"`
	Data              CheckAgeData `json:"data"`
	RedirectURL       string       `json:"redirectUrl,omitempty"`
}

// TmpStorageValue is the payload exchanged with the helper temporary storage.
type TmpStorageValue struct {
	Data string `json:"data"`
	TTL  int    `json:"ttl,omitempty"`
}

// AnalyticEvent is a best-effort diagnostic report to the helper service.
type AnalyticEvent struct {
	ServiceIdentifier string `json:"serviceIdentifier"`
	Data              string `json:"data"`
}

// AgeGateLinkWarning is emitted when a link call targets an agId that was
// never seen locally, a signal of storage desync rather than an error.
type AgeGateLinkWarning struct {
	Description  string                `json:"description"`
	AgIDEntities []AgeGateStoredEntity `json:"agIdEntities"`
}
