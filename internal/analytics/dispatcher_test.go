package analytics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/privsafe/agegate-go/internal/types"
)

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timeout waiting for %s", msg)
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	t.Parallel()
	var got atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var e types.AnalyticEvent
		_ = json.NewDecoder(r.Body).Decode(&e)
		got.Store(e)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	d := NewDispatcher(Config{}, srv.Client(), srv.URL, zerolog.Nop())
	defer d.Stop()
	d.Submit(types.AnalyticEvent{ServiceIdentifier: "svc", Data: "hello"})

	waitFor(t, func() bool { return got.Load() != nil }, "event delivery")
	if e := got.Load().(types.AnalyticEvent); e.Data != "hello" || e.ServiceIdentifier != "svc" {
		t.Fatalf("unexpected event: %+v", e)
	}
}

func TestDispatcher_StopDrainsQueue(t *testing.T) {
	t.Parallel()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	d := NewDispatcher(Config{QueueSize: 16}, srv.Client(), srv.URL, zerolog.Nop())
	for i := 0; i < 5; i++ {
		d.Submit(types.AnalyticEvent{ServiceIdentifier: "svc"})
	}
	d.Stop() // blocks until the queue is drained
	if n := atomic.LoadInt32(&calls); n != 5 {
		t.Fatalf("delivered = %d, want 5", n)
	}
}

func TestDispatcher_SubmitAfterStopIsDropped(t *testing.T) {
	t.Parallel()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	d := NewDispatcher(Config{}, srv.Client(), srv.URL, zerolog.Nop())
	d.Stop()
	d.Submit(types.AnalyticEvent{ServiceIdentifier: "svc"})
	time.Sleep(50 * time.Millisecond)
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Fatalf("delivery calls after stop = %d, want 0", n)
	}
}

func TestDispatcher_RetriesRecoverableFailures(t *testing.T) {
	t.Parallel()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := NewDispatcher(Config{BaseBackoff: 5 * time.Millisecond, MaxAttempts: 5}, srv.Client(), srv.URL, zerolog.Nop())
	defer d.Stop()
	d.Submit(types.AnalyticEvent{ServiceIdentifier: "svc"})

	waitFor(t, func() bool { return atomic.LoadInt32(&calls) >= 3 }, "retries")
}

func TestDispatcher_IrrecoverableFailsFast(t *testing.T) {
	t.Parallel()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	d := NewDispatcher(Config{BaseBackoff: 5 * time.Millisecond, MaxAttempts: 5}, srv.Client(), srv.URL, zerolog.Nop())
	defer d.Stop()
	d.Submit(types.AnalyticEvent{ServiceIdentifier: "svc"})

	waitFor(t, func() bool { return atomic.LoadInt32(&calls) >= 1 }, "first attempt")
	time.Sleep(50 * time.Millisecond)
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("delivery attempts = %d, want 1 (no retry on 400)", n)
	}
}

func TestDispatcher_StopIsIdempotent(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()
	d := NewDispatcher(Config{}, srv.Client(), srv.URL, zerolog.Nop())
	d.Stop()
	d.Stop()
}
