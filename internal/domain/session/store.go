// internal/domain/session/store.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists session state between requests
type Store interface {
	Load(ctx context.Context, id string) (*State, error)
	Save(ctx context.Context, state *State) error
	Delete(ctx context.Context, id string) error
}

// RedisStore keeps each session as a JSON document under session:<id>
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed store. Every save refreshes the TTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

// Load reads a session; ErrSessionNotFound when the key is absent or expired
func (s *RedisStore) Load(ctx context.Context, id string) (*State, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	return &state, nil
}

// Save writes a session with the configured expiration
func (s *RedisStore) Save(ctx context.Context, state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(state.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Delete removes a session
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// MemoryStore keeps sessions in process memory. Entries are stored as
// JSON so callers never share state with the store.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryStore creates an in-process store. A zero ttl never expires.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Load reads a session
func (s *MemoryStore) Load(_ context.Context, id string) (*State, error) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok || (!entry.expiresAt.IsZero() && !s.now().Before(entry.expiresAt)) {
		return nil, ErrSessionNotFound
	}

	var state State
	if err := json.Unmarshal(entry.data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &state, nil
}

// Save writes a session
func (s *MemoryStore) Save(_ context.Context, state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	entry := memoryEntry{data: data}
	if s.ttl > 0 {
		entry.expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[state.ID] = entry
	s.mu.Unlock()
	return nil
}

// Delete removes a session
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
	return nil
}
