package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	sdkerrors "github.com/privsafe/agegate-go/internal/errors"
	"github.com/privsafe/agegate-go/internal/types"
)

// ProcessStatus looks up the current age-gate status for a device, an
// existing record, or a linked application user. A nil response with nil
// error means the backend answered with a valid empty body.
func ProcessStatus(ctx context.Context, httpClient *http.Client, baseURL string, record types.StatusRecord) (*types.AgeGateStatusResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(record.FpID, "fpId"); err != nil {
		return nil, err
	}
	body, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/status", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, sdkerrors.NewNetworkError("process status", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !validEmptyResponse(resp.StatusCode) {
		return nil, readError(resp, "process status")
	}
	var out types.AgeGateStatusResponse
	ok, err := decodeBody(resp.Body, &out)
	if err != nil || !ok {
		return nil, err
	}
	return &out, nil
}
