package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"medication-tracker/internal/ports/storage"
)

type kvStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewKVStore crea el store in-memory (modo dev y tests).
func NewKVStore() storage.Store {
	return &kvStore{
		data: make(map[string]string),
	}
}

func (s *kvStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	return v, ok, nil
}

func (s *kvStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(key) == "" {
		return errors.New("key required")
	}
	s.data[key] = value
	return nil
}
