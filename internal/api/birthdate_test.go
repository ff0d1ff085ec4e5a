package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	sdkerrors "github.com/privsafe/agegate-go/internal/errors"
	"github.com/privsafe/agegate-go/internal/types"
)

func TestProcessBirthDate_Success(t *testing.T) {
	t.Parallel()
	want := types.AgeGateActionResponse{Action: types.ActionAllow, AgID: "ag-1"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/birthdate" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()
	got, err := ProcessBirthDate(context.Background(), srv.Client(), srv.URL, types.FpStatusRecord{FpID: "fp-1", BirthDate: "2012-05-17"})
	if err != nil || got == nil || got.Action != types.ActionAllow {
		t.Fatalf("ProcessBirthDate unexpected: got=%+v err=%v", got, err)
	}
}

func TestProcessBirthDate_EstimationRequired(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"code":561,"msg":"age estimation needed"}`))
	}))
	defer srv.Close()
	_, err := ProcessBirthDate(context.Background(), srv.Client(), srv.URL, types.FpStatusRecord{FpID: "fp-1"})
	if !sdkerrors.IsEstimationRequired(err) {
		t.Fatalf("expected estimation-required signal, got %v", err)
	}
}

func TestProcessBirthDate_Ordinary500IsNotEstimation(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"code":500,"msg":"boom"}`))
	}))
	defer srv.Close()
	_, err := ProcessBirthDate(context.Background(), srv.Client(), srv.URL, types.FpStatusRecord{FpID: "fp-1"})
	if err == nil || sdkerrors.IsEstimationRequired(err) {
		t.Fatalf("expected ordinary failure, got %v", err)
	}
}

func TestProcessRecheck_EstimationRequired(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/recheck" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"code":561}`))
	}))
	defer srv.Close()
	_, err := ProcessRecheck(context.Background(), srv.Client(), srv.URL, types.RecheckStatusRecord{AgID: "ag-1"})
	if !sdkerrors.IsEstimationRequired(err) {
		t.Fatalf("expected estimation-required signal, got %v", err)
	}
}

func TestProcessRecheck_MissingAgID(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	if _, err := ProcessRecheck(context.Background(), srv.Client(), srv.URL, types.RecheckStatusRecord{}); err == nil {
		t.Fatal("expected validation error for missing agId")
	}
}
