package store

import "testing"

func TestMemoryRoundTrip(t *testing.T) {
	kv := NewMemory()

	if _, ok, err := kv.Get("storefront/cart"); err != nil || ok {
		t.Fatalf("expected empty store, got ok=%v err=%v", ok, err)
	}

	if err := kv.Set("storefront/cart", `[{"id":"p1"}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := kv.Get("storefront/cart")
	if err != nil || !ok {
		t.Fatalf("get after set: ok=%v err=%v", ok, err)
	}
	if v != `[{"id":"p1"}]` {
		t.Fatalf("unexpected value %q", v)
	}

	if err := kv.Set("storefront/cart", "[]"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, _, _ = kv.Get("storefront/cart")
	if v != "[]" {
		t.Fatalf("expected overwrite to win, got %q", v)
	}
}

func TestMemoryDeleteIsIdempotent(t *testing.T) {
	kv := NewMemory()
	if err := kv.Delete("storefront/session"); err != nil {
		t.Fatalf("delete absent key: %v", err)
	}
	if err := kv.Set("storefront/session", "x"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Delete("storefront/session"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := kv.Get("storefront/session"); ok {
		t.Fatalf("expected key gone after delete")
	}
}
