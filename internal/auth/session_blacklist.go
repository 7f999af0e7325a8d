package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// JwtBlacklistStore keeps revoked tokens until they expire.
type JwtBlacklistStore interface {
	// IsBlacklisted checks if the given token is blacklisted.
	IsBlacklisted(ctx context.Context, token string) (bool, error)
	// AddToBlacklist adds the given token to the blacklist until exp.
	AddToBlacklist(ctx context.Context, token string, exp time.Time) error
}

// InMemoryBlacklistStore is a process local JwtBlacklistStore.
type InMemoryBlacklistStore struct {
	blacklist map[string]time.Time
	mu        sync.RWMutex
}

// NewInMemoryBlacklistStore creates the store and cleans expired entries
// every five minutes until ctx is done.
func NewInMemoryBlacklistStore(ctx context.Context) *InMemoryBlacklistStore {
	store := &InMemoryBlacklistStore{
		blacklist: make(map[string]time.Time),
	}
	go periodicallyCleanUp(ctx, store, time.Minute*5)
	return store
}

func periodicallyCleanUp(ctx context.Context, store *InMemoryBlacklistStore, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			store.CleanUpExpired()
		}
	}
}

// CleanUpExpired drops entries whose token already expired.
func (s *InMemoryBlacklistStore) CleanUpExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for token, exp := range s.blacklist {
		if exp.Before(now) {
			delete(s.blacklist, token)
		}
	}
}

func (s *InMemoryBlacklistStore) IsBlacklisted(_ context.Context, token string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.blacklist[token]
	return exists, nil
}

func (s *InMemoryBlacklistStore) AddToBlacklist(_ context.Context, token string, exp time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blacklist[token] = exp
	return nil
}

// RedisBlacklistStore shares revoked tokens between API replicas. Entries
// expire in Redis together with the token.
type RedisBlacklistStore struct {
	client *redis.Client
	prefix string
}

// NewRedisBlacklistStore creates a new instance of RedisBlacklistStore.
func NewRedisBlacklistStore(client *redis.Client) *RedisBlacklistStore {
	return &RedisBlacklistStore{client: client, prefix: "devjobhub:jwt-blacklist:"}
}

func (s *RedisBlacklistStore) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return s.prefix + hex.EncodeToString(sum[:])
}

func (s *RedisBlacklistStore) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists: %w", err)
	}
	return n > 0, nil
}

func (s *RedisBlacklistStore) AddToBlacklist(ctx context.Context, token string, exp time.Time) error {
	ttl := time.Until(exp)
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, s.key(token), 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
