// Package session holds the process wide authentication state and keeps
// it in sync with the durable key value store.
package session

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/wmsdemo/wms/pkg/model"
	"github.com/wmsdemo/wms/pkg/port"
)

// Store is the single source of truth for whether the
// current session is authenticated.
type Store struct {
	kv        port.KeyValueStore
	validator port.CredentialValidator

	// ClearOnClose removes the persisted flag on Close
	ClearOnClose bool

	mu      sync.RWMutex
	session model.Session
}

// Open seeds the session from the persisted flag. A missing
// flag starts an anonymous session.
func Open(kv port.KeyValueStore, validator port.CredentialValidator) (*Store, error) {
	s := &Store{
		kv:        kv,
		validator: validator,
	}

	flag, err := kv.Get(model.SessionKey)
	if err != nil && !errors.Is(err, port.ErrNotFound) {
		return nil, fmt.Errorf("failed to read %q: %w", model.SessionKey, err)
	}
	s.session.Restore(flag)
	log.Printf("Session restored as %s", s.session.State())

	return s, nil
}

func (s *Store) String() string {
	return "<SessionStore state=" + s.State().String() + ">"
}

// Login authenticates the session if the credentials are valid.
// Invalid credentials leave the state unchanged.
func (s *Store) Login(username, password string) bool {
	if !s.validator.Validate(username, password) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Authenticated = true
	err := s.kv.Set(model.SessionKey, s.session.Flag())
	if err != nil {
		log.Printf("Failed to persist session: %v", err)
	}
	return true
}

// Logout ends the session and removes the persisted flag
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Authenticated = false
	err := s.kv.Delete(model.SessionKey)
	if err != nil {
		log.Printf("Failed to remove persisted session: %v", err)
	}
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Authenticated
}

func (s *Store) State() model.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.State()
}

func (s *Store) Session() model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Close tears the store down. The key value store
// itself is owned and closed by the caller.
func (s *Store) Close() error {
	if !s.ClearOnClose {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Authenticated = false
	return s.kv.Delete(model.SessionKey)
}
