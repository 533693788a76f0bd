package infra

import (
	"context"
	"fmt"
	"time"

	radix "github.com/mediocregopher/radix/v3"
)

const revokedKeyPrefix = "ecoquest:revoked:"

// NewRedisPool connects a small radix pool.
func NewRedisPool(addr string) (*radix.Pool, error) {
	pool, err := radix.NewPool("tcp", addr, 10)
	if err != nil {
		return nil, fmt.Errorf("connect redis %s: %w", addr, err)
	}
	return pool, nil
}

// RedisRevocationStore shares signed-out token ids between API replicas.
type RedisRevocationStore struct {
	client radix.Client
}

func NewRedisRevocationStore(client radix.Client) *RedisRevocationStore {
	return &RedisRevocationStore{client: client}
}

func (s *RedisRevocationStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	seconds := int64(ttl / time.Second)
	if seconds <= 0 {
		return nil
	}
	if err := s.client.Do(radix.FlatCmd(nil, "SETEX", revokedKeyPrefix+tokenID, seconds, "1")); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *RedisRevocationStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	var exists int
	if err := s.client.Do(radix.Cmd(&exists, "EXISTS", revokedKeyPrefix+tokenID)); err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return exists == 1, nil
}
