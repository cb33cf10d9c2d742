// Package session holds the client-side authentication state: an opaque
// token and a role, persisted to a single versioned key-value slot and
// kept in sync across open instances of the client.
package session

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/swipeschedule/ss_backendl/models"
)

// Slot is one durable key-value cell plus its external-change feed.
// Load returns (nil, nil) when nothing is persisted yet. Watch delivers
// the slot's new raw contents whenever another instance writes it.
type Slot interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Watch(fn func(data []byte)) error
}

// Store owns the in-memory session. Every mutation persists before it
// returns, so memory and the slot agree after each action.
type Store struct {
	mu    sync.Mutex
	slot  Slot
	token string
	role  models.Role
}

func NewStore(slot Slot) *Store {
	return &Store{slot: slot}
}

// Restore loads the persisted session at startup. Missing or unparseable
// data leaves the session empty; it never fails.
func (s *Store) Restore() {
	data, err := s.slot.Load()
	if err != nil || data == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyLocked(data)
}

// LoginAs sets the role with the given token, or a generated dev token
// when token is empty, and persists.
func (s *Store) LoginAs(role models.Role, token string) {
	if token == "" {
		token = "dev-" + uuid.NewString()
	}
	s.LoginWithToken(token, role)
}

// LoginWithToken sets both fields atomically and persists.
func (s *Store) LoginWithToken(token string, role models.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.role = role
	s.persistLocked()
}

// Logout clears both fields and persists the cleared state.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.role = ""
	s.persistLocked()
}

// IsAuthenticated requires both a token and a role; one without the
// other counts as logged out.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.role != ""
}

func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Store) Role() models.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role
}

// BindSync subscribes to external slot changes. A write from another
// instance replaces this instance's state; missing or unparseable data
// clears it rather than leaving stale state. Last writer wins.
func (s *Store) BindSync() error {
	return s.slot.Watch(func(data []byte) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.token = ""
		s.role = ""
		if data != nil {
			s.applyLocked(data)
		}
	})
}

func (s *Store) applyLocked(data []byte) {
	var saved models.SavedSession
	if err := json.Unmarshal(data, &saved); err != nil {
		s.token = ""
		s.role = ""
		return
	}
	if saved.Token != nil {
		s.token = *saved.Token
	}
	if saved.Role != nil {
		s.role = *saved.Role
	}
}

func (s *Store) persistLocked() {
	saved := models.SavedSession{}
	if s.token != "" {
		saved.Token = &s.token
	}
	if s.role != "" {
		saved.Role = &s.role
	}
	data, _ := json.Marshal(saved)
	if err := s.slot.Save(data); err != nil {
		log.Printf("Failed to persist session: %v", err)
	}
}
