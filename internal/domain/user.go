package domain

// User is a stored account. Passwords are kept as the opaque strings the
// caller supplied; this storefront deliberately has no real credential
// security.
type User struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// SessionUser is the logged-in identity surfaced to the shell. It carries no
// password.
type SessionUser struct {
	SessionID string `json:"sessionId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
}
