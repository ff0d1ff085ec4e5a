package gate

import (
	"context"
	"fmt"

	"github.com/privsafe/agegate-go/internal/api"
	"github.com/privsafe/agegate-go/internal/types"
)

// ageGateState combines the stored agId (if any) with the fetched service
// settings. Settings failure fails the whole interactive path.
func (o *Orchestrator) ageGateState(ctx context.Context, userIdentifier, nickname string) (*types.AgeState, error) {
	agID := o.storage.StoredAgeGateID(userIdentifier, nickname)
	svcSettings, err := o.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &types.AgeState{AgID: agID, Settings: *svcSettings}, nil
}

// runAgeGate drives one interactive resolution: serialize the state token,
// present the embedded UI, resolve its terminal events, and perform at most
// one follow-up status call. It never recurses further than that follow-up,
// whatever the follow-up returns.
func (o *Orchestrator) runAgeGate(ctx context.Context, data types.CheckAgeData,
	prevEvent *types.AgeGateEvent, recheck *types.RecheckAction) (*types.AgeGateEvent, error) {

	state, err := o.ageGateState(ctx, data.UserIdentifier, data.Nickname)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		o.log.Debug().Err(err).Msg("settings unavailable, skipping interactive step")
		return nil, nil
	}

	token := types.CheckAgeStoreData{
		ServiceIdentifier: o.serviceIdentifier,
		State:             *state,
		Data:              data,
		RedirectURL:       fmt.Sprintf("%s/index.html#/age-gate-loading", o.endpoints.PublicURL),
	}
	stateID, err := api.PutTmpObject(ctx, o.http, o.endpoints.HelperURL, token)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		o.trackError("tmp storage put", err)
		return nil, nil
	}

	var prevStatus *types.AgeGateStatus
	if prevEvent != nil {
		prevStatus = &prevEvent.Status
	}
	prompt := Prompt{
		StateID:     stateID,
		TargetPage:  StatusTargetPage(prevStatus, recheck),
		RedirectURL: token.RedirectURL,
	}

	// Dismiss exactly once, whatever the step produced.
	defer o.presenter.Dismiss(ctx)

	resultID, err := o.presenter.Present(ctx, prompt)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		o.log.Debug().Err(err).Msg("interactive step failed")
		return nil, nil
	}
	if resultID == "" {
		// Closed without a result.
		return nil, nil
	}

	var events []types.AgeGateEvent
	if err := api.GetTmpObject(ctx, o.http, o.endpoints.HelperURL, resultID, &events); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		o.trackError("tmp storage get", err)
		return nil, nil
	}
	if len(events) == 0 {
		return nil, nil
	}

	// The first terminal event decides. A verified outcome refines into one
	// follow-up status call keyed by the event's identity and the original
	// nickname; the follow-up's result is final as-is.
	event := events[0]
	if event.Status == types.StatusIdentityVerified || event.Status == types.StatusAgeVerified {
		refined := o.ProcessStatus(ctx, event.UserIdentifier, data.Nickname, event.AgID)
		return &refined, nil
	}
	return &event, nil
}

// ShowIdentifier presents the read-only page displaying the stored age-gate
// identifier. Fire-and-forget: the step produces no events.
func (o *Orchestrator) ShowIdentifier(ctx context.Context, userIdentifier, nickname string) error {
	state, err := o.ageGateState(ctx, userIdentifier, nickname)
	if err != nil {
		return err
	}
	token := types.CheckAgeStoreData{
		ServiceIdentifier: o.serviceIdentifier,
		State:             *state,
		Data:              types.CheckAgeData{UserIdentifier: userIdentifier, Nickname: nickname},
	}
	stateID, err := api.PutTmpObject(ctx, o.http, o.endpoints.HelperURL, token)
	if err != nil {
		return err
	}
	defer o.presenter.Dismiss(ctx)
	_, err = o.presenter.Present(ctx, Prompt{StateID: stateID, TargetPage: PageIdentifier})
	return err
}
