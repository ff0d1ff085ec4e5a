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

// SendAnalyticEvent posts a diagnostic event to the helper service. Callers
// treat delivery as best-effort; the returned error only feeds retry logic.
func SendAnalyticEvent(ctx context.Context, httpClient *http.Client, helperURL string, event types.AnalyticEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/metrics", helperURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return sdkerrors.NewNetworkError("send analytic event", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !validEmptyResponse(resp.StatusCode) {
		return readError(resp, "send analytic event")
	}
	return nil
}
