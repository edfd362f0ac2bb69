package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// tokenKey is the single durable key holding the current bearer token.
// Its absence is equivalent to an anonymous session.
const tokenKey = "authToken"

// TokenStore is the durable storage behind a Session. Load returns an empty
// string when no token is stored; Clear is idempotent.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore persists the token as a small JSON document on disk,
// surviving process restarts.
type FileTokenStore struct {
	path string
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Load() (string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read token store: %w", err)
	}

	var doc map[string]string
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("decode token store: %w", err)
	}
	return doc[tokenKey], nil
}

func (s *FileTokenStore) Save(token string) error {
	raw, err := json.Marshal(map[string]string{tokenKey: token})
	if err != nil {
		return fmt.Errorf("encode token store: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create token store dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write token store: %w", err)
	}
	return nil
}

func (s *FileTokenStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear token store: %w", err)
	}
	return nil
}

// MemoryTokenStore is an in-process TokenStore for tests and short-lived
// tooling.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
