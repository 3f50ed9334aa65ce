package checkout

import (
	"errors"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrInvalidCoupon is returned for codes not in the coupon table.
	ErrInvalidCoupon = errors.New("invalid coupon code")
	// ErrEmptyCart is returned when placing an order with no lines.
	ErrEmptyCart = errors.New("cart is empty")
)

// Accepted coupon codes and their percentage discounts.
var coupons = map[string]float64{
	"SAVE10":  10,
	"SAVE20":  20,
	"WELCOME": 15,
}

// Shipping is free above this subtotal; below it a flat fee applies. An
// empty cart ships nothing and pays nothing.
const (
	freeShippingThreshold = 100.0
	flatShippingFee       = 10.0
)

// Cart is the slice of the cart container checkout needs.
type Cart interface {
	TotalItems() int
	TotalPrice() float64
	Clear() error
}

// Service computes order totals from the cart subtotal, an optional coupon
// and the shipping rule, and turns them into placed orders.
type Service struct {
	mu     sync.Mutex
	cart   Cart
	logger *log.Logger
	coupon string // applied code, empty when none
}

func New(cart Cart, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{cart: cart, logger: logger}
}

// ApplyCoupon validates and applies a code. Codes are case-insensitive.
func (s *Service) ApplyCoupon(code string) error {
	upper := strings.ToUpper(strings.TrimSpace(code))
	if _, ok := coupons[upper]; !ok {
		return ErrInvalidCoupon
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupon = upper
	return nil
}

// RemoveCoupon drops the applied coupon, if any.
func (s *Service) RemoveCoupon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupon = ""
}

// AppliedCoupon returns the active code, or "".
func (s *Service) AppliedCoupon() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coupon
}

// Totals is the order summary the shell renders.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	Coupon     string  `json:"coupon,omitempty"`
	Discount   float64 `json:"discount"`
	Shipping   float64 `json:"shipping"`
	GrandTotal float64 `json:"grandTotal"`
}

// ComputeTotals derives the current totals from the cart and applied coupon.
func (s *Service) ComputeTotals() Totals {
	s.mu.Lock()
	coupon := s.coupon
	s.mu.Unlock()

	subtotal := s.cart.TotalPrice()
	discount := 0.0
	if pct, ok := coupons[coupon]; ok {
		discount = subtotal * pct / 100
	}
	shipping := 0.0
	if subtotal > 0 && subtotal <= freeShippingThreshold {
		shipping = flatShippingFee
	}
	return Totals{
		Subtotal:   subtotal,
		Coupon:     coupon,
		Discount:   discount,
		Shipping:   shipping,
		GrandTotal: subtotal - discount + shipping,
	}
}

// Order is the summary returned by PlaceOrder.
type Order struct {
	ID     string `json:"id"`
	Items  int    `json:"items"`
	Totals Totals `json:"totals"`
}

// PlaceOrder fails on an empty cart; on success it clears the cart and the
// applied coupon.
func (s *Service) PlaceOrder() (*Order, error) {
	items := s.cart.TotalItems()
	if items == 0 {
		return nil, ErrEmptyCart
	}

	totals := s.ComputeTotals()
	if err := s.cart.Clear(); err != nil {
		return nil, err
	}
	s.RemoveCoupon()

	order := &Order{ID: uuid.NewString(), Items: items, Totals: totals}
	s.logger.Printf("checkout: order %s items=%d total=%.2f", order.ID, items, totals.GrandTotal)
	return order, nil
}
