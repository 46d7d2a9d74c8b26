package draftstore

import (
	"context"
	"encoding/json"
	"sync"

	"letgonow/entity"
)

// MemoryStore is an in-process DraftStore for tests. It round-trips drafts
// through JSON so it misbehaves exactly like the Redis store would.
type MemoryStore struct {
	mu     sync.Mutex
	drafts map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{drafts: map[string][]byte{}}
}

func (s *MemoryStore) Load(_ context.Context, key string) (entity.BookingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, ok := s.drafts[key]
	if !ok {
		return entity.BookingDraft{}, entity.ErrDraftNotFound
	}

	var draft entity.BookingDraft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return entity.BookingDraft{}, err
	}
	return draft, nil
}

func (s *MemoryStore) Save(_ context.Context, key string, draft entity.BookingDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[key] = payload
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, key)
	return nil
}
