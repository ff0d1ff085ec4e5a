package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/privsafe/agegate-go/internal/types"
)

func TestTmpStorage_PutAndGetObject(t *testing.T) {
	t.Parallel()
	var stored string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/storage/put":
			var v types.TmpStorageValue
			_ = json.NewDecoder(r.Body).Decode(&v)
			stored = v.Data
			_ = json.NewEncoder(w).Encode(types.TmpStorageID{ID: "corr-1"})
		case r.Method == http.MethodGet && r.URL.Path == "/storage/corr-1":
			_ = json.NewEncoder(w).Encode(types.TmpStorageValue{Data: stored})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	in := []types.AgeGateEvent{{Status: types.StatusAllowed, AgID: "ag-1"}}
	id, err := PutTmpObject(context.Background(), srv.Client(), srv.URL, in)
	if err != nil || id != "corr-1" {
		t.Fatalf("PutTmpObject unexpected: id=%q err=%v", id, err)
	}

	var out []types.AgeGateEvent
	if err := GetTmpObject(context.Background(), srv.Client(), srv.URL, id, &out); err != nil {
		t.Fatalf("GetTmpObject error: %v", err)
	}
	if len(out) != 1 || out[0].AgID != "ag-1" {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestGetTmpValue_NotFound(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	if _, err := GetTmpValue(context.Background(), srv.Client(), srv.URL, "missing"); err == nil {
		t.Fatal("expected error for missing key")
	}
}
