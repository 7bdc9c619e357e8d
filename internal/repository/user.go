package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const userColumns = `id, email, username, password_hash, avatar, is_host, gender,
                     language, currency, telegram_chat_id, created_at, updated_at`

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, email, username, password_hash, avatar, is_host, gender,
                                 language, currency, telegram_chat_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		user.ID, user.Email, user.Username, user.PasswordHash, user.Avatar, user.IsHost,
		user.Gender, user.Language, user.Currency, user.TelegramChatID, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if pgCode(err) == codeUniqueViolation {
			return domain.ErrEmailTaken
		}
		if mapped := integrityError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *UserRepository) getBy(ctx context.Context, column, value string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + column + ` = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, value)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.Avatar, &u.IsHost, &u.Gender,
		&u.Language, &u.Currency, &u.TelegramChatID, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users
              SET username = $2, avatar = $3, is_host = $4, gender = $5, language = $6,
                  currency = $7, telegram_chat_id = $8, updated_at = $9
              WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		user.ID, user.Username, user.Avatar, user.IsHost, user.Gender, user.Language,
		user.Currency, user.TelegramChatID, user.UpdatedAt,
	)
	if err != nil {
		if mapped := integrityError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("update user: %w", err)
	}
	return checkAffected(res, domain.ErrUserNotFound)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, hash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, hash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return checkAffected(res, domain.ErrUserNotFound)
}
