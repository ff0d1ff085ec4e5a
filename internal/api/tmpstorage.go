package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	sdkerrors "github.com/privsafe/agegate-go/internal/errors"
	"github.com/privsafe/agegate-go/internal/types"
)

// The helper service's temporary storage bridges the SDK and the embedded
// web UI: the SDK puts the opaque state token, the UI puts the terminal
// event batch, and each side fetches by correlation id.

// GetTmpValue fetches a raw temporary-storage value by key.
func GetTmpValue(ctx context.Context, httpClient *http.Client, helperURL, key string) (*types.TmpStorageValue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(key, "key"); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/storage/%s", helperURL, url.PathEscape(key))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, sdkerrors.NewNetworkError("tmp storage get", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, readError(resp, "tmp storage get")
	}
	var out types.TmpStorageValue
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PutTmpValue stores a raw value and returns its correlation id.
func PutTmpValue(ctx context.Context, httpClient *http.Client, helperURL, value string, ttl int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	body, err := json.Marshal(types.TmpStorageValue{Data: value, TTL: ttl})
	if err != nil {
		return "", err
	}
	u := fmt.Sprintf("%s/storage/put", helperURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return "", sdkerrors.NewNetworkError("tmp storage put", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", readError(resp, "tmp storage put")
	}
	var out types.TmpStorageID
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// PutTmpObject JSON-encodes value into temporary storage and returns its
// correlation id.
func PutTmpObject(ctx context.Context, httpClient *http.Client, helperURL string, value any) (string, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return PutTmpValue(ctx, httpClient, helperURL, string(raw), 0)
}

// GetTmpObject fetches a temporary-storage value and decodes its JSON payload
// into out. A missing or malformed payload reports an error; callers decide
// whether that means "closed without result".
func GetTmpObject(ctx context.Context, httpClient *http.Client, helperURL, key string, out any) error {
	value, err := GetTmpValue(ctx, httpClient, helperURL, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(value.Data), out)
}
