package gate

import "github.com/privsafe/agegate-go/internal/types"

// Target pages for the interactive step. The exact strings are part of the
// embedded UI's routing contract; which category of page to open is decided
// here.
const (
	PageDOB                  = "dob"
	PageVerification         = "verification"
	PageAgeEstimation        = "request-age-estimation"
	PageAgeEstimationRecheck = "request-age-estimation-recheck"
	PageIdentifier           = "age-gate-identifier"
)

// ActionToStatus is the total translation from backend-declared actions to
// lifecycle states. Consent and the verification actions all surface as
// Pending; the distinction only matters for interactive routing.
func ActionToStatus(action types.AgeGateAction) types.AgeGateStatus {
	switch action {
	case types.ActionAllow:
		return types.StatusAllowed
	case types.ActionBlock:
		return types.StatusBlocked
	case types.ActionConsent, types.ActionVerify, types.ActionIdentityVerify, types.ActionAgeVerify:
		return types.StatusPending
	default:
		return types.StatusUndefined
	}
}

// requiresInteractiveStep reports whether the backend action needs the
// embedded UI to resolve before an evaluation can terminate.
func requiresInteractiveStep(action types.AgeGateAction) bool {
	switch action {
	case types.ActionConsent, types.ActionIdentityVerify, types.ActionAgeVerify:
		return true
	default:
		return false
	}
}

// StatusTargetPage resolves which interactive page to open. A recheck flag
// takes precedence over the previous status; the estimation flows route to
// their own pages. With no prior status the birth-date entry page is the
// default.
func StatusTargetPage(prevStatus *types.AgeGateStatus, recheck *types.RecheckAction) string {
	if recheck != nil {
		switch *recheck {
		case types.AgeEstimationRecheckRequired:
			return PageAgeEstimationRecheck
		default:
			return PageAgeEstimation
		}
	}
	if prevStatus != nil && *prevStatus == types.StatusPending {
		return PageVerification
	}
	return PageDOB
}
