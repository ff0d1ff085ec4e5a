// Package gate implements the age-gate orchestration state machine: given
// prior stored results and server responses it decides which step runs next
// (skip, ask birth date, present the embedded UI, recheck, link identity) and
// reconciles outcomes into the durable record store.
package gate

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/privsafe/agegate-go/internal/analytics"
	"github.com/privsafe/agegate-go/internal/api"
	sdkerrors "github.com/privsafe/agegate-go/internal/errors"
	"github.com/privsafe/agegate-go/internal/settings"
	"github.com/privsafe/agegate-go/internal/store"
	"github.com/privsafe/agegate-go/internal/types"
)

// FingerprintProvider yields the stable per-device anonymous identifier.
type FingerprintProvider interface {
	GetFpID(ctx context.Context) (string, error)
}

// Endpoints are the backend base URLs one orchestrator talks to.
type Endpoints struct {
	AgeGateURL string // status/birthdate/recheck/link-user/settings
	HelperURL  string // temporary storage and analytics
	PublicURL  string // embedded UI origin, used for redirect targets
}

// Orchestrator runs gate evaluations. Each method is one logical flow of
// control; independent evaluations may run concurrently, sharing only the
// record store and the fingerprint cache.
type Orchestrator struct {
	http              *http.Client
	endpoints         Endpoints
	serviceIdentifier string

	storage   *store.Storage
	fp        FingerprintProvider
	settings  *settings.Holder
	presenter Presenter
	camera    CameraPermission
	events    *analytics.Dispatcher // nil disables diagnostics
	log       zerolog.Logger
}

// New wires an Orchestrator from its collaborators.
func New(httpClient *http.Client, endpoints Endpoints, serviceIdentifier string,
	storage *store.Storage, fp FingerprintProvider, settingsHolder *settings.Holder,
	presenter Presenter, camera CameraPermission, events *analytics.Dispatcher,
	log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		http:              httpClient,
		endpoints:         endpoints,
		serviceIdentifier: serviceIdentifier,
		storage:           storage,
		fp:                fp,
		settings:          settingsHolder,
		presenter:         presenter,
		camera:            camera,
		events:            events,
		log:               log,
	}
}

// ProcessStatus issues one status lookup and translates the response. It
// fails soft: without a fingerprint, or on any gateway failure, the result is
// an Undefined event echoing the identifiers back unresolved.
func (o *Orchestrator) ProcessStatus(ctx context.Context, userIdentifier, nickname, agID string) types.AgeGateEvent {
	undefined := types.AgeGateEvent{
		Status:         types.StatusUndefined,
		UserIdentifier: userIdentifier,
		Nickname:       nickname,
		AgID:           agID,
	}

	fpID, err := o.fp.GetFpID(ctx)
	if err != nil {
		return undefined
	}

	record := types.StatusRecord{
		ServiceIdentifier: o.serviceIdentifier,
		FpID:              fpID,
		AgID:              agID,
		ExtUserID:         userIdentifier,
	}
	resp, err := api.ProcessStatus(ctx, o.http, o.endpoints.AgeGateURL, record)
	if err != nil {
		o.trackError("process status", err)
		return undefined
	}
	if resp == nil {
		return undefined
	}

	event := types.AgeGateEvent{
		Status:         resp.Status,
		UserIdentifier: resp.ExtUserID,
		Nickname:       nickname,
		AgID:           resp.AgID,
		AgeRange:       resp.AgeRange,
		CountryCode:    resp.CountryCode,
	}
	if event.AgID == "" {
		event.AgID = agID
	}
	return event
}

// StatusEvent is the status() entry point: it resolves a stored agId for the
// identifier (falling back to nickname) before the lookup. When no agId is
// known and a nickname is present, the lookup is issued by nickname alone
// with a blank user identifier, matching the backend's resolution order.
func (o *Orchestrator) StatusEvent(ctx context.Context, userIdentifier, nickname string) types.AgeGateEvent {
	agID := o.storage.StoredAgeGateID(userIdentifier, nickname)
	if agID == "" && nickname != "" {
		return o.ProcessStatus(ctx, "", nickname, "")
	}
	return o.ProcessStatus(ctx, userIdentifier, nickname, agID)
}

// RunByBirthDate evaluates the gate from caller-supplied birth-date input.
// A nil event means the evaluation was inconclusive.
func (o *Orchestrator) RunByBirthDate(ctx context.Context, data types.CheckAgeData) (*types.AgeGateEvent, error) {
	fpID, err := o.fp.GetFpID(ctx)
	if err != nil {
		return nil, nil
	}
	record := types.FpStatusRecord{
		ServiceIdentifier: o.serviceIdentifier,
		FpID:              fpID,
		BirthDate:         data.BirthDateYYYYMMDD,
		BirthDateYYYYMM:   data.BirthDateYYYYMM,
		BirthDateYYYY:     data.BirthDateYYYY,
		Age:               data.Age,
		ExtUserID:         data.UserIdentifier,
		CountryCode:       data.CountryCode,
	}
	resp, err := api.ProcessBirthDate(ctx, o.http, o.endpoints.AgeGateURL, record)
	return o.resolveAgeAction(ctx, data, resp, err, types.AgeEstimationRequired)
}

// RecheckByBirthDate re-evaluates an existing record. A recheck cannot create
// a record, so a missing stored agId resolves to nil without reaching the
// gateway.
func (o *Orchestrator) RecheckByBirthDate(ctx context.Context, data types.CheckAgeData) (*types.AgeGateEvent, error) {
	agID := o.storage.StoredAgeGateID(data.UserIdentifier, data.Nickname)
	if agID == "" {
		return nil, nil
	}
	record := types.RecheckStatusRecord{
		ServiceIdentifier: o.serviceIdentifier,
		AgID:              agID,
		BirthDate:         data.BirthDateYYYYMMDD,
		BirthDateYYYYMM:   data.BirthDateYYYYMM,
		BirthDateYYYY:     data.BirthDateYYYY,
		Age:               data.Age,
		CountryCode:       data.CountryCode,
	}
	resp, err := api.ProcessRecheck(ctx, o.http, o.endpoints.AgeGateURL, record)
	return o.resolveAgeAction(ctx, data, resp, err, types.AgeEstimationRecheckRequired)
}

// resolveAgeAction is the shared tail of the birthdate and recheck flows:
// translate the action, branch into interactive resolution when required, and
// route the estimation-required signal to its fallback page.
func (o *Orchestrator) resolveAgeAction(ctx context.Context, data types.CheckAgeData,
	resp *types.AgeGateActionResponse, err error, estimation types.RecheckAction) (*types.AgeGateEvent, error) {
	if err != nil {
		if sdkerrors.IsEstimationRequired(err) {
			// Best-effort; grant or deny, the estimation page is shown either
			// way and handles a missing camera itself.
			_ = o.camera.CheckCameraPermission(ctx)
			return o.runAgeGate(ctx, data, nil, &estimation)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		o.trackError("process age action", err)
		return nil, nil
	}
	if resp == nil {
		return nil, nil
	}

	event := types.AgeGateEvent{
		Status:         ActionToStatus(resp.Action),
		UserIdentifier: resp.ExtUserID,
		Nickname:       data.Nickname,
		AgID:           resp.AgID,
		AgeRange:       resp.AgeRange,
		CountryCode:    resp.CountryCode,
	}
	if !requiresInteractiveStep(resp.Action) {
		return &event, nil
	}
	return o.runAgeGate(ctx, data, &event, nil)
}

// LinkUser merges an application user identifier into an age-gate record. An
// agId never seen locally raises a desync warning through analytics but
// never blocks the call; a gateway failure resolves to an Undefined event
// echoing the inputs.
func (o *Orchestrator) LinkUser(ctx context.Context, userIdentifier, agID, nickname string) types.AgeGateEvent {
	entities := o.storage.StoredEntities()
	known := false
	for _, ent := range entities {
		if ent.AgID == agID {
			known = true
			break
		}
	}
	if !known && o.events != nil {
		o.events.TrackLinkWarning(o.serviceIdentifier, types.AgeGateLinkWarning{
			Description:  "Age Gate Id wasn't found in the store during Age Gate 'link user' call",
			AgIDEntities: entities,
		})
	}

	record := types.LinkUserStatusRecord{
		ServiceIdentifier: o.serviceIdentifier,
		AgID:              agID,
		ExtUserID:         userIdentifier,
	}
	resp, err := api.ProcessLinkUser(ctx, o.http, o.endpoints.AgeGateURL, record)
	if err != nil {
		o.trackError("link user", err)
	}
	if err != nil || resp == nil {
		return types.AgeGateEvent{
			Status:         types.StatusUndefined,
			UserIdentifier: userIdentifier,
			Nickname:       nickname,
			AgID:           agID,
		}
	}

	event := types.AgeGateEvent{
		Status:         resp.Status,
		UserIdentifier: resp.ExtUserID,
		Nickname:       nickname,
		AgID:           resp.AgID,
		AgeRange:       resp.AgeRange,
		CountryCode:    resp.CountryCode,
	}
	if event.AgID == "" {
		event.AgID = agID
	}
	return event
}

func (o *Orchestrator) trackError(operation string, err error) {
	o.log.Debug().Err(err).Str("operation", operation).Msg("gateway call failed")
	if o.events == nil {
		return
	}
	code := 0
	var classified *sdkerrors.ClassifiedError
	if errors.As(err, &classified) {
		code = classified.StatusCode
	}
	o.events.TrackError(o.serviceIdentifier, err.Error(), code)
}
