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

// ProcessLinkUser merges an application user identifier into an anonymous
// age-gate record.
func ProcessLinkUser(ctx context.Context, httpClient *http.Client, baseURL string, record types.LinkUserStatusRecord) (*types.AgeGateStatusResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(record.AgID, "agId"); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(record.ExtUserID, "extUserId"); err != nil {
		return nil, err
	}
	body, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/link-user", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, sdkerrors.NewNetworkError("link user", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !validEmptyResponse(resp.StatusCode) {
		return nil, readError(resp, "link user")
	}
	var out types.AgeGateStatusResponse
	ok, err := decodeBody(resp.Body, &out)
	if err != nil || !ok {
		return nil, err
	}
	return &out, nil
}
