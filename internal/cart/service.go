package cart

import (
	"encoding/json"
	"io"
	"log"
	"sync"

	"github.com/google/uuid"

	"storefront/internal/domain"
	"storefront/internal/store"
)

// Line is one row in the cart: a product snapshot plus quantity and the
// chosen variant. The snapshot fields are copied at add time, so later
// catalog edits do not propagate into an existing cart.
type Line struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Quantity  int     `json:"quantity"`
	Color     string  `json:"color,omitempty"`
	Size      string  `json:"size,omitempty"`
}

// Service owns the cart lines. Line identity is the triple
// (productId, color, size) at every call site: adding the same product with
// the same variant merges quantities, a different variant gets its own line,
// and quantity updates and removals address one variant line, never all
// lines of a product.
type Service struct {
	mu     sync.Mutex
	kv     store.KV
	logger *log.Logger
	lines  []Line
}

func New(kv store.KV, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Service{kv: kv, logger: logger}

	raw, ok, err := kv.Get(store.KeyCart)
	if err != nil || !ok {
		return s
	}
	var lines []Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		s.logger.Printf("cart: malformed stored state, starting empty: %v", err)
		return s
	}
	// Drop lines a broken writer left with a non-positive quantity.
	for _, line := range lines {
		if line.Quantity < 1 {
			continue
		}
		if line.ID == "" {
			line.ID = uuid.NewString()
		}
		s.lines = append(s.lines, line)
	}
	return s
}

// Add merges quantity into the line matching (product.ID, color, size), or
// appends a new line. Quantities below 1 are clamped to 1.
func (s *Service) Add(product domain.Product, quantity int, color, size string) error {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].matches(product.ID, color, size) {
			s.lines[i].Quantity += quantity
			return s.persist()
		}
	}

	s.lines = append(s.lines, Line{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  quantity,
		Color:     color,
		Size:      size,
	})
	return s.persist()
}

// UpdateQuantity sets the quantity of the line matching the variant triple.
// A quantity of zero or below removes the line. Updating an absent line is a
// no-op.
func (s *Service) UpdateQuantity(productID, color, size string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if !s.lines[i].matches(productID, color, size) {
			continue
		}
		if quantity <= 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		} else {
			s.lines[i].Quantity = quantity
		}
		return s.persist()
	}
	return nil
}

// Remove deletes the line matching the variant triple, if present.
func (s *Service) Remove(productID, color, size string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].matches(productID, color, size) {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// RemoveProduct deletes every line for the product, across variants.
func (s *Service) RemoveProduct(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.lines[:0]
	removed := false
	for _, line := range s.lines {
		if line.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, line)
	}
	if !removed {
		return nil
	}
	s.lines = kept
	return s.persist()
}

// Clear empties the cart.
func (s *Service) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	return s.persist()
}

// Items returns a copy of the lines in insertion order.
func (s *Service) Items() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalItems is the sum of quantities across lines.
func (s *Service) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the sum of price times quantity across lines, in the
// products' listed currency, before any coupon or shipping.
func (s *Service) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, line := range s.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

func (l Line) matches(productID, color, size string) bool {
	return l.ProductID == productID && l.Color == color && l.Size == size
}

func (s *Service) persist() error {
	lines := s.lines
	if lines == nil {
		lines = []Line{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.kv.Set(store.KeyCart, string(raw))
}
