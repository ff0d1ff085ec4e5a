package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/privsafe/agegate-go/internal/types"
)

func TestProcessLinkUser_Success(t *testing.T) {
	t.Parallel()
	want := types.AgeGateStatusResponse{Status: types.StatusIdentityVerified, AgID: "ag-1", ExtUserID: "u1"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/link-user" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var record types.LinkUserStatusRecord
		_ = json.NewDecoder(r.Body).Decode(&record)
		if record.AgID != "ag-1" || record.ExtUserID != "u1" {
			t.Errorf("unexpected record %+v", record)
		}
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()
	got, err := ProcessLinkUser(context.Background(), srv.Client(), srv.URL, types.LinkUserStatusRecord{ServiceIdentifier: "svc", AgID: "ag-1", ExtUserID: "u1"})
	if err != nil || got == nil || got.Status != types.StatusIdentityVerified {
		t.Fatalf("ProcessLinkUser unexpected: got=%+v err=%v", got, err)
	}
}

func TestProcessLinkUser_MissingIDs(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	if _, err := ProcessLinkUser(context.Background(), srv.Client(), srv.URL, types.LinkUserStatusRecord{ExtUserID: "u1"}); err == nil {
		t.Fatal("expected validation error for missing agId")
	}
	if _, err := ProcessLinkUser(context.Background(), srv.Client(), srv.URL, types.LinkUserStatusRecord{AgID: "ag-1"}); err == nil {
		t.Fatal("expected validation error for missing extUserId")
	}
}
