package storage

import (
	"sync"

	"github.com/aokabi/slack-export/internal/models"
)

type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]models.UserInfo
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]models.UserInfo),
	}
}

func (s *MemoryStore) Get(userID string) (models.UserInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, exists := s.users[userID]
	return info, exists
}

func (s *MemoryStore) Put(userID string, info models.UserInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[userID] = info
}

func (s *MemoryStore) Close() error {
	// Nothing to close for in-memory storage
	return nil
}
