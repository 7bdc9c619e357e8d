package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Disabled(t *testing.T) {
	s := New(NewClient("", "", 0))
	ctx := context.Background()

	assert.False(t, s.Enabled())
	require.NoError(t, s.Revoke(ctx, "jti", time.Now().Add(time.Hour)))

	revoked, err := s.IsRevoked(ctx, "jti")
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.NoError(t, s.Ping(ctx))
	assert.NoError(t, s.Close())
}

func TestStore_RevokeExpiredTokenIsNoop(t *testing.T) {
	client := NewClient("127.0.0.1:1", "", 0)
	defer client.Close()

	s := New(client)
	s.now = func() time.Time { return time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC) }

	// already expired, so redis is never contacted
	err := s.Revoke(context.Background(), "jti", time.Date(2029, 12, 31, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
}

func TestStore_UnreachableRedis(t *testing.T) {
	client := NewClient("127.0.0.1:1", "", 0)
	defer client.Close()

	s := New(client)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := s.IsRevoked(ctx, "jti")
	assert.Error(t, err)
}
