package auth

import (
	"testing"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := NewTokenManager("secret", 5*time.Minute, time.Hour)

	pair, err := m.Issue("u1")
	require.NoError(t, err)

	access, err := m.ParseAccess(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, "u1", access.UserID)
	assert.NotEmpty(t, access.TokenID)

	refresh, err := m.ParseRefresh(pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, "u1", refresh.UserID)
	assert.NotEqual(t, access.TokenID, refresh.TokenID)
}

func TestTokenManager_KindMismatch(t *testing.T) {
	m := NewTokenManager("secret", 5*time.Minute, time.Hour)

	pair, err := m.Issue("u1")
	require.NoError(t, err)

	_, err = m.ParseRefresh(pair.Access)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	_, err = m.ParseAccess(pair.Refresh)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("secret", time.Minute, time.Hour)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }

	pair, err := m.Issue("u1")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.ParseAccess(pair.Access)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret", time.Minute, time.Hour)
	other := NewTokenManager("other", time.Minute, time.Hour)

	pair, err := issuer.Issue("u1")
	require.NoError(t, err)

	_, err = other.ParseAccess(pair.Access)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, CheckPassword(hash, "correct horse"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
