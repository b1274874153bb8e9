// Package session holds the dashboard's authentication state: the access
// token and the email of the signed-in user.
package session

import (
	"log/slog"
	"sync"
)

// Data is the persisted form of a session.
type Data struct {
	Token     string `yaml:"token,omitempty"`
	UserEmail string `yaml:"user_email,omitempty"`
}

// Backend persists session data between runs.
type Backend interface {
	Load() (Data, error)
	Save(Data) error
}

// Store is the single source of truth for the token. It keeps an in-process
// copy and writes every change through to its backend. Write failures are
// logged; the in-process copy stays authoritative.
type Store struct {
	mu      sync.RWMutex
	data    Data
	backend Backend
	log     *slog.Logger
}

// NewStore loads the persisted session. A backend that cannot be read
// yields an empty session.
func NewStore(backend Backend, logger *slog.Logger) *Store {
	s := &Store{backend: backend, log: logger.With("component", "session")}
	data, err := backend.Load()
	if err != nil {
		s.log.Warn("load session", slog.String("error", err.Error()))
		return s
	}
	if data.Token == "" {
		data.UserEmail = ""
	}
	s.data = data
	return s
}

// Token returns the stored token and whether one is present.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Token, s.data.Token != ""
}

// SetToken stores token. Replacing a different token drops the stored
// email, which belonged to the previous session. An empty token clears the
// session.
func (s *Store) SetToken(token string) {
	s.update(func(d *Data) {
		if token != d.Token {
			d.UserEmail = ""
		}
		d.Token = token
	})
}

// Clear removes the token and the email.
func (s *Store) Clear() {
	s.update(func(d *Data) { *d = Data{} })
}

// IsAuthenticated reports whether a token is present.
func (s *Store) IsAuthenticated() bool {
	_, ok := s.Token()
	return ok
}

// SetUserEmail records the email of the signed-in user. It is ignored when
// no token is present.
func (s *Store) SetUserEmail(email string) {
	s.update(func(d *Data) {
		if d.Token != "" {
			d.UserEmail = email
		}
	})
}

// UserEmail returns the stored email. It is absent whenever the token is.
func (s *Store) UserEmail() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data.Token == "" || s.data.UserEmail == "" {
		return "", false
	}
	return s.data.UserEmail, true
}

func (s *Store) update(fn func(*Data)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.data
	fn(&s.data)
	if s.data == before {
		return
	}
	if err := s.backend.Save(s.data); err != nil {
		s.log.Warn("persist session", slog.String("error", err.Error()))
	}
}
