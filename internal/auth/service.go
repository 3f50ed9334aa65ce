package auth

import (
	"encoding/json"
	"io"
	"log"
	"sync"

	"github.com/google/uuid"

	"storefront/internal/domain"
	"storefront/internal/store"
)

// Service owns the current-session identity and the stored user list. Both
// are mirrored to the persistent store on every mutation.
//
// This is intentionally mock authentication: signup stores the password as
// the plain string it was given and login compares it byte for byte.
type Service struct {
	mu      sync.Mutex
	kv      store.KV
	logger  *log.Logger
	session *domain.SessionUser
}

// New builds a Service and rehydrates the session from the store. An absent
// or malformed session record just means logged out.
func New(kv store.KV, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Service{kv: kv, logger: logger}

	raw, ok, err := kv.Get(store.KeySession)
	if err != nil || !ok {
		return s
	}
	var session domain.SessionUser
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		s.logger.Printf("auth: malformed session record, starting logged out: %v", err)
		return s
	}
	if session.Email == "" {
		return s
	}
	s.session = &session
	return s
}

// Signup registers a new user. It returns false without touching any state
// when the email already exists (case-sensitive exact match). On success the
// user list and the new session are both persisted.
func (s *Service) Signup(email, password, firstName, lastName, phone string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.loadUsers()
	for _, u := range users {
		if u.Email == email {
			return false, nil
		}
	}

	users = append(users, domain.User{
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
	})
	if err := s.saveUsers(users); err != nil {
		return false, err
	}

	if err := s.setSession(email, firstName, lastName, phone); err != nil {
		return false, err
	}
	s.logger.Printf("auth: signup email=%s users=%d", email, len(users))
	return true, nil
}

// Login succeeds only on an exact match of email and password against a
// stored user. Failure leaves the current session untouched.
func (s *Service) Login(email, password string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.loadUsers() {
		if u.Email == email && u.Password == password {
			if err := s.setSession(u.Email, u.FirstName, u.LastName, u.Phone); err != nil {
				return false, err
			}
			s.logger.Printf("auth: login email=%s", email)
			return true, nil
		}
	}
	return false, nil
}

// Logout clears the session in memory and removes the persisted session
// record. The stored user list is untouched.
func (s *Service) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	return s.kv.Delete(store.KeySession)
}

// CurrentUser returns a copy of the logged-in identity, or nil.
func (s *Service) CurrentUser() *domain.SessionUser {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil
	}
	copied := *s.session
	return &copied
}

func (s *Service) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session != nil
}

// UserCount reports how many accounts are stored.
func (s *Service) UserCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.loadUsers())
}

func (s *Service) setSession(email, firstName, lastName, phone string) error {
	session := domain.SessionUser{
		SessionID: uuid.NewString(),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
	}
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	if err := s.kv.Set(store.KeySession, string(raw)); err != nil {
		return err
	}
	s.session = &session
	return nil
}

func (s *Service) loadUsers() []domain.User {
	raw, ok, err := s.kv.Get(store.KeyUsers)
	if err != nil {
		s.logger.Printf("auth: read users: %v", err)
		return nil
	}
	if !ok {
		return nil
	}
	var users []domain.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		s.logger.Printf("auth: malformed user list, treating as empty: %v", err)
		return nil
	}
	return users
}

func (s *Service) saveUsers(users []domain.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return s.kv.Set(store.KeyUsers, string(raw))
}
