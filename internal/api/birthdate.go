package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	sdkerrors "github.com/privsafe/agegate-go/internal/errors"
	"github.com/privsafe/agegate-go/internal/types"
)

// ProcessBirthDate submits a birth date (at whatever precision the caller
// supplied) for a device identified by fingerprint. On HTTP 500 carrying the
// age-estimation error code it returns *errors.EstimationRequiredError, which
// the orchestrator treats as a branch, not a failure.
func ProcessBirthDate(ctx context.Context, httpClient *http.Client, baseURL string, record types.FpStatusRecord) (*types.AgeGateActionResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(record.FpID, "fpId"); err != nil {
		return nil, err
	}
	return submitAgeRecord(ctx, httpClient, http.MethodPost, fmt.Sprintf("%s/birthdate", baseURL), record, "process birthdate")
}

// ProcessRecheck re-evaluates an existing age-gate record with fresh
// birth-date input. Shares the age-estimation error semantics of
// ProcessBirthDate.
func ProcessRecheck(ctx context.Context, httpClient *http.Client, baseURL string, record types.RecheckStatusRecord) (*types.AgeGateActionResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(record.AgID, "agId"); err != nil {
		return nil, err
	}
	return submitAgeRecord(ctx, httpClient, http.MethodPut, fmt.Sprintf("%s/recheck", baseURL), record, "process recheck")
}

func submitAgeRecord(ctx context.Context, httpClient *http.Client, method, url string, record any, operation string) (*types.AgeGateActionResponse, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, sdkerrors.NewNetworkError(operation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !validEmptyResponse(resp.StatusCode) {
		if estErr := estimationRequired(resp); estErr != nil {
			return nil, estErr
		}
		return nil, sdkerrors.NewHTTPError(resp.StatusCode, "", operation)
	}
	var out types.AgeGateActionResponse
	ok, err := decodeBody(resp.Body, &out)
	if err != nil || !ok {
		return nil, err
	}
	return &out, nil
}

// estimationRequired inspects an HTTP 500 body for the distinguished
// age-estimation error code. Any other 500, or an undecodable body, is an
// ordinary failure.
func estimationRequired(resp *http.Response) *sdkerrors.EstimationRequiredError {
	if resp.StatusCode != http.StatusInternalServerError {
		return nil
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return nil
	}
	var serverErr sdkerrors.EstimationRequiredError
	if err := json.Unmarshal(raw, &serverErr); err != nil {
		return nil
	}
	if serverErr.Code != sdkerrors.AgeEstimationErrorCode {
		return nil
	}
	return &serverErr
}
