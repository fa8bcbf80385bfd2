// Package session holds the auth context that authenticated API calls take
// explicitly, and the token store that keeps it across restarts.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"jobdash/internal/eventbus"
)

// Auth is the credential attached to admin requests. The zero value is anonymous.
type Auth struct {
	Token string
}

// Anonymous is the unauthenticated context
var Anonymous = Auth{}

// IsAdmin reports whether a token is present. Expiry is not checked client side.
func (a Auth) IsAdmin() bool {
	return strings.TrimSpace(a.Token) != ""
}

// Header returns the Authorization header value, or "" when anonymous
func (a Auth) Header() string {
	if !a.IsAdmin() {
		return ""
	}
	return "Bearer " + strings.TrimSpace(a.Token)
}

// Apply sets the Authorization header on req when a token is present
func (a Auth) Apply(req *http.Request) {
	if h := a.Header(); h != "" {
		req.Header.Set("Authorization", h)
	}
}

// TokenStore persists the bearer token
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileStore keeps the token in a single 0600 file
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	return nil
}

// MemoryStore is a TokenStore that forgets everything on exit
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func (s *MemoryStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

// Authenticator exchanges credentials for a bearer token
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// Manager owns the current Auth value. Login and logout are the only writers.
type Manager struct {
	mu    sync.RWMutex
	store TokenStore
	bus   eventbus.EventBus
	auth  Auth
}

// NewManager restores a previously saved token from the store
func NewManager(store TokenStore, bus eventbus.EventBus) (*Manager, error) {
	token, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Manager{store: store, bus: bus, auth: Auth{Token: token}}, nil
}

// Current returns the auth context to pass into requests
func (m *Manager) Current() Auth {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.auth
}

// Login authenticates and persists the token. On failure the previous
// state is untouched and the backend error is returned as is.
func (m *Manager) Login(ctx context.Context, authn Authenticator, username, password string) error {
	token, err := authn.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if strings.TrimSpace(token) == "" {
		return errors.New("login succeeded but no token was returned")
	}
	if err := m.store.Save(token); err != nil {
		return err
	}

	m.mu.Lock()
	m.auth = Auth{Token: token}
	m.mu.Unlock()

	log.Printf("[session] logged in as %s", username)
	if m.bus != nil {
		m.bus.Publish(eventbus.LoggedInEvent{Username: username})
	}
	return nil
}

// Logout drops the token from memory and from the store
func (m *Manager) Logout() error {
	m.mu.Lock()
	m.auth = Anonymous
	m.mu.Unlock()

	err := m.store.Clear()
	log.Printf("[session] logged out")
	if m.bus != nil {
		m.bus.Publish(eventbus.LoggedOutEvent{})
	}
	return err
}
