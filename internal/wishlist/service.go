package wishlist

import (
	"encoding/json"
	"io"
	"log"
	"sync"

	"storefront/internal/domain"
	"storefront/internal/store"
)

// Service owns the set of favorited products. Entries are product snapshots
// deduplicated by id, kept in insertion order, and written through to the
// persistent store on every mutation.
type Service struct {
	mu     sync.Mutex
	kv     store.KV
	logger *log.Logger
	items  []domain.Product
}

func New(kv store.KV, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Service{kv: kv, logger: logger}

	raw, ok, err := kv.Get(store.KeyWishlist)
	if err != nil || !ok {
		return s
	}
	var items []domain.Product
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Printf("wishlist: malformed stored state, starting empty: %v", err)
		return s
	}
	s.items = dedupe(items)
	return s
}

// Add inserts a product snapshot. Adding an id that is already present is a
// no-op.
func (s *Service) Add(product domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.items {
		if it.ID == product.ID {
			return nil
		}
	}
	s.items = append(s.items, product)
	return s.persist()
}

// Remove drops the product with the given id if present.
func (s *Service) Remove(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, it := range s.items {
		if it.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// Clear empties the wishlist.
func (s *Service) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	return s.persist()
}

func (s *Service) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.items {
		if it.ID == productID {
			return true
		}
	}
	return false
}

// TotalCount reports the number of distinct products.
func (s *Service) TotalCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Items returns the entries in insertion order.
func (s *Service) Items() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Product, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Service) persist() error {
	items := s.items
	if items == nil {
		items = []domain.Product{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.kv.Set(store.KeyWishlist, string(raw))
}

func dedupe(items []domain.Product) []domain.Product {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, it := range items {
		if seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		out = append(out, it)
	}
	return out
}
