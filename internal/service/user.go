package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/access"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports"
)

const minPasswordLen = 8

type UserService struct {
	repo    ports.UserRepo
	hasher  ports.PasswordHasher
	tokens  ports.TokenIssuer
	revoker ports.TokenRevoker
}

func NewUserService(
	repo ports.UserRepo,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	revoker ports.TokenRevoker,
) *UserService {
	return &UserService{
		repo:    repo,
		hasher:  hasher,
		tokens:  tokens,
		revoker: revoker,
	}
}

func (s *UserService) SignUp(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	addr, err := mail.ParseAddress(input.Email)
	if err != nil || addr.Address != input.Email {
		return nil, fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}
	if len(input.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		username = input.Email[:strings.Index(input.Email, "@")]
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        input.Email,
		Username:     username,
		PasswordHash: hash,
		Gender:       domain.GenderMale,
		Language:     domain.LanguageKorean,
		Currency:     domain.CurrencyWon,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err = s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID)
}

func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	if _, err = s.repo.GetByID(ctx, claims.UserID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return s.tokens.Issue(claims.UserID)
}

// Logout revokes the presented access token until it would have expired.
func (s *UserService) Logout(ctx context.Context, claims *domain.TokenClaims) error {
	if claims == nil {
		return domain.ErrUnauthenticated
	}
	if err := s.revoker.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *UserService) Me(ctx context.Context, actorID string) (*domain.User, error) {
	if err := access.RequireIdentity(actorID); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, actorID)
}

func (s *UserService) UpdateMe(ctx context.Context, actorID string, input domain.UpdateProfileInput) (*domain.User, error) {
	if err := access.RequireIdentity(actorID); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if input.Username != nil {
		if strings.TrimSpace(*input.Username) == "" {
			return nil, fmt.Errorf("%w: username must not be empty", domain.ErrValidation)
		}
		user.Username = *input.Username
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}
	if input.IsHost != nil {
		user.IsHost = *input.IsHost
	}
	if input.Gender != nil {
		if !input.Gender.Valid() {
			return nil, fmt.Errorf("%w: unknown gender", domain.ErrValidation)
		}
		user.Gender = *input.Gender
	}
	if input.Language != nil {
		if !input.Language.Valid() {
			return nil, fmt.Errorf("%w: unknown language", domain.ErrValidation)
		}
		user.Language = *input.Language
	}
	if input.Currency != nil {
		if !input.Currency.Valid() {
			return nil, fmt.Errorf("%w: unknown currency", domain.ErrValidation)
		}
		user.Currency = *input.Currency
	}
	if input.TelegramChatID != nil {
		user.TelegramChatID = input.TelegramChatID
	}
	user.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *UserService) ChangePassword(ctx context.Context, actorID string, input domain.ChangePasswordInput) error {
	if err := access.RequireIdentity(actorID); err != nil {
		return err
	}
	if len(input.NewPassword) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}

	user, err := s.repo.GetByID(ctx, actorID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if !s.hasher.Compare(user.PasswordHash, input.OldPassword) {
		return fmt.Errorf("%w: old password is incorrect", domain.ErrValidation)
	}

	hash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.UpdatePassword(ctx, actorID, hash)
}

// GetByEmail backs the test-only Trust-Me header.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.GetByEmail(ctx, email)
}
