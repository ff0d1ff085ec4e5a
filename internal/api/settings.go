package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	sdkerrors "github.com/privsafe/agegate-go/internal/errors"
	"github.com/privsafe/agegate-go/internal/types"
)

// FetchSettings retrieves the per-service age-gate configuration.
func FetchSettings(ctx context.Context, httpClient *http.Client, baseURL, serviceIdentifier string) (*types.AgeServiceSettings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(serviceIdentifier, "serviceIdentifier"); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/settings?service_identifier=%s", baseURL, url.QueryEscape(serviceIdentifier))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, sdkerrors.NewNetworkError("fetch settings", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, readError(resp, "fetch settings")
	}
	var out types.AgeServiceSettings
	if _, err := decodeBody(resp.Body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
