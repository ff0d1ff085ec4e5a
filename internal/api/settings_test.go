package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/privsafe/agegate-go/internal/types"
)

func TestFetchSettings_Success(t *testing.T) {
	t.Parallel()
	want := types.AgeServiceSettings{IsGeoAPIOn: true, P2SiteID: 42}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/settings" || r.URL.Query().Get("service_identifier") != "svc" {
			t.Errorf("unexpected request %s", r.URL.String())
		}
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()
	got, err := FetchSettings(context.Background(), srv.Client(), srv.URL, "svc")
	if err != nil || got == nil || !got.IsGeoAPIOn || got.P2SiteID != 42 {
		t.Fatalf("FetchSettings unexpected: got=%+v err=%v", got, err)
	}
}

func TestGenerateFingerprint_EmptyID(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(types.DeviceFingerprintResponse{})
	}))
	defer srv.Close()
	if _, err := GenerateFingerprint(context.Background(), srv.Client(), srv.URL, types.DeviceFingerprint{}); err == nil {
		t.Fatal("expected error for empty fingerprint id")
	}
}

func TestGenerateFingerprint_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/fp" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(types.DeviceFingerprintResponse{ID: "fp-9"})
	}))
	defer srv.Close()
	got, err := GenerateFingerprint(context.Background(), srv.Client(), srv.URL, types.DeviceFingerprint{FpVersion: "1"})
	if err != nil || got == nil || got.ID != "fp-9" {
		t.Fatalf("GenerateFingerprint unexpected: got=%+v err=%v", got, err)
	}
}
