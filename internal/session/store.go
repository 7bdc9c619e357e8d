package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "staybooker:revoked:"

// Store keeps revoked token ids until their natural expiry.
// A Store without a client accepts revocations and reports nothing as revoked.
type Store struct {
	client *redis.Client
	now    func() time.Time
}

func New(client *redis.Client) *Store {
	return &Store{client: client, now: time.Now}
}

func NewClient(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func (s *Store) Enabled() bool {
	return s.client != nil
}

func (s *Store) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	if s.client == nil || tokenID == "" {
		return nil
	}

	ttl := until.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, keyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *Store) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if s.client == nil || tokenID == "" {
		return false, nil
	}

	err := s.client.Get(ctx, keyPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return true, nil
}

func (s *Store) Ping(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
