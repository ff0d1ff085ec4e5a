package store

import "testing"

func TestBadger_RoundTrip(t *testing.T) {
	kv, err := OpenBadger(t.TempDir())
	if err != nil {
		t.Skipf("badger unavailable: %v", err)
	}
	defer func() { _ = kv.Close() }()

	if _, ok, err := kv.Get("missing"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}
	if err := kv.Set("k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, ok, err := kv.Get("k"); err != nil || !ok || v != "v1" {
		t.Fatalf("get: v=%q ok=%v err=%v", v, ok, err)
	}
	if err := kv.Set("k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if v, _, _ := kv.Get("k"); v != "v2" {
		t.Fatalf("overwrite read: %q", v)
	}
}
