package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/StayBooker/internal/auth"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (*UserService, *mocks.MockUserRepo, *mocks.MockTokenRevoker, *auth.TokenManager) {
	repo := mocks.NewMockUserRepo(t)
	revoker := mocks.NewMockTokenRevoker(t)
	tokens := auth.NewTokenManager("test-secret-value", time.Minute, time.Hour)
	return NewUserService(repo, auth.Hasher{}, tokens, revoker), repo, revoker, tokens
}

func TestUserService_SignUp(t *testing.T) {
	svc, repo, _, _ := newUserService(t)

	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.SignUp(context.Background(), domain.CreateUserInput{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)
	assert.True(t, auth.CheckPassword(user.PasswordHash, "correct-horse"))
}

func TestUserService_SignUp_Validation(t *testing.T) {
	svc, _, _, _ := newUserService(t)

	tests := []struct {
		name  string
		input domain.CreateUserInput
	}{
		{"bad email", domain.CreateUserInput{Email: "not-an-email", Password: "longenough"}},
		{"short password", domain.CreateUserInput{Email: "a@b.co", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignUp(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUserService_SignUp_EmailTaken(t *testing.T) {
	svc, repo, _, _ := newUserService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.SignUp(context.Background(), domain.CreateUserInput{Email: "a@b.co", Password: "longenough"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_Login(t *testing.T) {
	svc, repo, _, tokens := newUserService(t)
	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)

	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(&domain.User{ID: "u1", PasswordHash: hash}, nil)
	repo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	pair, err := svc.Login(context.Background(), "alice@example.com", "correct-horse")
	require.NoError(t, err)
	claims, err := tokens.ParseAccess(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)

	_, err = svc.Login(context.Background(), "alice@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Refresh(t *testing.T) {
	svc, repo, _, tokens := newUserService(t)
	pair, err := tokens.Issue("u1")
	require.NoError(t, err)

	repo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	next, err := svc.Refresh(context.Background(), pair.Refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, next.Access)

	_, err = svc.Refresh(context.Background(), pair.Access)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestUserService_Logout(t *testing.T) {
	svc, _, revoker, _ := newUserService(t)
	exp := time.Now().Add(time.Minute)

	revoker.EXPECT().Revoke(mock.Anything, "jti-1", exp).Return(nil)

	require.NoError(t, svc.Logout(context.Background(), &domain.TokenClaims{UserID: "u1", TokenID: "jti-1", ExpiresAt: exp}))
	assert.ErrorIs(t, svc.Logout(context.Background(), nil), domain.ErrUnauthenticated)
}

func TestUserService_Logout_StoreError(t *testing.T) {
	svc, _, revoker, _ := newUserService(t)

	revoker.EXPECT().Revoke(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

	err := svc.Logout(context.Background(), &domain.TokenClaims{TokenID: "jti"})
	assert.Error(t, err)
}

func TestUserService_UpdateMe(t *testing.T) {
	svc, repo, _, _ := newUserService(t)

	repo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Username: "alice"}, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.UpdateMe(context.Background(), "u1", domain.UpdateProfileInput{
		Username: ptr("alice2"),
		IsHost:   ptr(true),
		Currency: ptr(domain.CurrencyUSD),
	})

	require.NoError(t, err)
	assert.Equal(t, "alice2", user.Username)
	assert.True(t, user.IsHost)
	assert.Equal(t, domain.CurrencyUSD, user.Currency)
}

func TestUserService_UpdateMe_BadEnum(t *testing.T) {
	svc, repo, _, _ := newUserService(t)

	repo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	_, err := svc.UpdateMe(context.Background(), "u1", domain.UpdateProfileInput{Language: ptr(domain.Language("fr"))})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_ChangePassword(t *testing.T) {
	svc, repo, _, _ := newUserService(t)
	hash, err := auth.HashPassword("old-password")
	require.NoError(t, err)

	repo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", PasswordHash: hash}, nil)
	repo.EXPECT().UpdatePassword(mock.Anything, "u1", mock.MatchedBy(func(h string) bool {
		return auth.CheckPassword(h, "new-password")
	})).Return(nil).Once()

	err = svc.ChangePassword(context.Background(), "u1", domain.ChangePasswordInput{OldPassword: "wrong-old", NewPassword: "new-password"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = svc.ChangePassword(context.Background(), "u1", domain.ChangePasswordInput{OldPassword: "old-password", NewPassword: "new-password"})
	assert.NoError(t, err)
}
