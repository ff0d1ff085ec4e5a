package agegate

import "github.com/privsafe/agegate-go/internal/types"

// Public type aliases so SDK consumers can import only the agegate package.
type (
	// Inputs
	CheckAgeData = types.CheckAgeData

	// Domain entities
	AgeGateEvent        = types.AgeGateEvent
	AgeGateStatus       = types.AgeGateStatus
	AgeGateAction       = types.AgeGateAction
	AgeRange            = types.AgeRange
	AgeGateStoredEntity = types.AgeGateStoredEntity
	AgeServiceSettings  = types.AgeServiceSettings
)

// Status values, re-exported for callers switching on evaluation outcomes.
const (
	StatusUndefined        = types.StatusUndefined
	StatusAllowed          = types.StatusAllowed
	StatusBlocked          = types.StatusBlocked
	StatusPending          = types.StatusPending
	StatusIdentityVerified = types.StatusIdentityVerified
	StatusAgeVerified      = types.StatusAgeVerified
)
