package settings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/privsafe/agegate-go/internal/types"
)

func TestGet_FetchesOnceAndCaches(t *testing.T) {
	t.Parallel()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_ = json.NewEncoder(w).Encode(types.AgeServiceSettings{IsProvideUserID: true})
	}))
	defer srv.Close()

	h := New(srv.Client(), srv.URL, "svc")
	for i := 0; i < 3; i++ {
		got, err := h.Get(context.Background())
		if err != nil || got == nil || !got.IsProvideUserID {
			t.Fatalf("Get unexpected: got=%+v err=%v", got, err)
		}
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("fetch calls = %d, want 1", n)
	}
}

func TestGet_ConcurrentCallersShareOneFetch(t *testing.T) {
	t.Parallel()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_ = json.NewEncoder(w).Encode(types.AgeServiceSettings{})
	}))
	defer srv.Close()

	h := New(srv.Client(), srv.URL, "svc")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := h.Get(context.Background()); err != nil {
				t.Errorf("Get: %v", err)
			}
		}()
	}
	wg.Wait()
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("fetch calls = %d, want 1", n)
	}
}

func TestGet_IrrecoverableFailsFast(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	h := New(srv.Client(), srv.URL, "svc")
	if _, err := h.Get(context.Background()); err == nil {
		t.Fatal("expected error for 404 settings")
	}
}
