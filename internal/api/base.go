// Package api holds the stateless request/response functions against the
// age-verification backend. Each function takes a context, an *http.Client
// and a base URL; orchestration state lives with the caller.
package api

import (
	"encoding/json"
	"io"
	"net/http"

	sdkerrors "github.com/privsafe/agegate-go/internal/errors"
)

// HTTPClient interface for dependency injection in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// validEmptyResponse reports whether the status code is a success that is
// allowed to carry an empty body (the backend answers 204/205 on idempotent
// repeats).
func validEmptyResponse(statusCode int) bool {
	switch statusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusResetContent:
		return true
	default:
		return false
	}
}

// decodeBody decodes a JSON body into out, tolerating the valid-empty case:
// an empty body on a success code leaves out untouched and returns (false, nil).
func decodeBody(body io.Reader, out any) (bool, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return false, err
	}
	if len(raw) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

// readError drains the response body and wraps the status into a classified
// error for the given operation.
func readError(resp *http.Response, operation string) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return sdkerrors.NewHTTPError(resp.StatusCode, string(raw), operation)
}
