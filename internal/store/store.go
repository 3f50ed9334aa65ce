package store

// KV is the persistent key-value store backing every stateful container.
// Values are opaque strings; each container owns its own encode/decode and
// must treat a missing or malformed value as its empty initial state.
type KV interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	// Set stores value under key, overwriting any previous value.
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
	// Ping verifies the store is reachable.
	Ping() error
	// Close releases the underlying resources.
	Close() error
}

// Store keys used by the containers. Namespaced so unrelated data in a shared
// store file cannot collide, and stable across restarts.
const (
	KeyUsers    = "storefront/users"
	KeySession  = "storefront/session"
	KeyCart     = "storefront/cart"
	KeyWishlist = "storefront/wishlist"
)
