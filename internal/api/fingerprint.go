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

// GenerateFingerprint submits a device fingerprint payload and returns the
// server-assigned stable identifier.
func GenerateFingerprint(ctx context.Context, httpClient *http.Client, authBaseURL string, fp types.DeviceFingerprint) (*types.DeviceFingerprintResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(fp)
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/fp", authBaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, sdkerrors.NewNetworkError("generate fingerprint", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, readError(resp, "generate fingerprint")
	}
	var out types.DeviceFingerprintResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, fmt.Errorf("generate fingerprint: empty id in response")
	}
	return &out, nil
}
