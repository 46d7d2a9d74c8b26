package draftstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"letgonow/entity"
)

// DraftTTL bounds how long an abandoned draft survives. An expired draft is
// indistinguishable from a missing one: the user just starts over.
const DraftTTL = 30 * time.Minute

// RedisStore persists booking drafts between steps. Keys are per session,
// not per tab, so two tabs sharing a session race on the same draft with
// last-write-wins semantics.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	if rdb == nil {
		panic("redis client is nil")
	}
	return &RedisStore{rdb: rdb, ttl: DraftTTL}
}

func (s *RedisStore) Load(ctx context.Context, key string) (entity.BookingDraft, error) {
	payload, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.BookingDraft{}, entity.ErrDraftNotFound
	}
	if err != nil {
		return entity.BookingDraft{}, fmt.Errorf("could not load draft: %w", err)
	}

	var draft entity.BookingDraft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return entity.BookingDraft{}, fmt.Errorf("could not unmarshal draft: %w", err)
	}

	return draft, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, draft entity.BookingDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("could not marshal draft: %w", err)
	}

	if err := s.rdb.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("could not save draft: %w", err)
	}

	return nil
}

func (s *RedisStore) Clear(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("could not clear draft: %w", err)
	}
	return nil
}
