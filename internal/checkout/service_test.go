package checkout

import (
	"errors"
	"testing"
)

type stubCart struct {
	items    int
	price    float64
	cleared  bool
	clearErr error
}

func (s *stubCart) TotalItems() int     { return s.items }
func (s *stubCart) TotalPrice() float64 { return s.price }

func (s *stubCart) Clear() error {
	s.cleared = true
	s.items = 0
	s.price = 0
	return s.clearErr
}

func TestApplyCoupon(t *testing.T) {
	svc := New(&stubCart{}, nil)

	if err := svc.ApplyCoupon("bogus"); !errors.Is(err, ErrInvalidCoupon) {
		t.Fatalf("expected ErrInvalidCoupon, got %v", err)
	}
	if got := svc.AppliedCoupon(); got != "" {
		t.Fatalf("invalid code must not stick, got %q", got)
	}

	if err := svc.ApplyCoupon("save10"); err != nil {
		t.Fatalf("codes are case-insensitive: %v", err)
	}
	if got := svc.AppliedCoupon(); got != "SAVE10" {
		t.Fatalf("expected SAVE10 applied, got %q", got)
	}
}

func TestComputeTotals(t *testing.T) {
	cart := &stubCart{items: 2, price: 80}
	svc := New(cart, nil)

	totals := svc.ComputeTotals()
	if totals.Subtotal != 80 || totals.Discount != 0 || totals.Shipping != 10 || totals.GrandTotal != 90 {
		t.Fatalf("unexpected totals %+v", totals)
	}

	// Over the threshold shipping is free.
	cart.price = 250
	totals = svc.ComputeTotals()
	if totals.Shipping != 0 || totals.GrandTotal != 250 {
		t.Fatalf("expected free shipping over 100, got %+v", totals)
	}

	// WELCOME takes 15% off the subtotal.
	if err := svc.ApplyCoupon("WELCOME"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	totals = svc.ComputeTotals()
	if totals.Discount != 250*0.15 || totals.GrandTotal != 250-250*0.15 {
		t.Fatalf("unexpected discounted totals %+v", totals)
	}

	// An empty cart pays nothing at all.
	cart.price = 0
	cart.items = 0
	totals = svc.ComputeTotals()
	if totals.Subtotal != 0 || totals.Shipping != 0 || totals.GrandTotal != 0 {
		t.Fatalf("empty cart totals must be zero, got %+v", totals)
	}
}

func TestPlaceOrder(t *testing.T) {
	cart := &stubCart{items: 3, price: 120}
	svc := New(cart, nil)
	svc.ApplyCoupon("SAVE20")

	order, err := svc.PlaceOrder()
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if order.ID == "" || order.Items != 3 {
		t.Fatalf("unexpected order %+v", order)
	}
	if order.Totals.GrandTotal != 120-120*0.20 {
		t.Fatalf("unexpected order total %+v", order.Totals)
	}
	if !cart.cleared {
		t.Fatalf("placing an order must clear the cart")
	}
	if svc.AppliedCoupon() != "" {
		t.Fatalf("placing an order must drop the coupon")
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	svc := New(&stubCart{}, nil)
	if _, err := svc.PlaceOrder(); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}
