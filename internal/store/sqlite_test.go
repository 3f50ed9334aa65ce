package store

import "testing"

func TestSQLiteRoundTrip(t *testing.T) {
	kv, err := OpenSQLite(":memory:", nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer kv.Close()

	if _, ok, err := kv.Get("storefront/wishlist"); err != nil || ok {
		t.Fatalf("expected empty store, got ok=%v err=%v", ok, err)
	}
	if err := kv.Set("storefront/wishlist", "[]"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set("storefront/wishlist", `["p1"]`); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	v, ok, err := kv.Get("storefront/wishlist")
	if err != nil || !ok || v != `["p1"]` {
		t.Fatalf("get: v=%q ok=%v err=%v", v, ok, err)
	}
	if err := kv.Delete("storefront/wishlist"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := kv.Get("storefront/wishlist"); ok {
		t.Fatalf("expected key gone after delete")
	}
	if err := kv.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
