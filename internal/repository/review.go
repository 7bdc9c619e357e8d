package repository

import (
	"context"
	"fmt"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReviewRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReviewRepo(db *dbpg.DB) *ReviewRepository {
	return &ReviewRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	query := `INSERT INTO reviews (id, user_id, room_id, experience_id, payload, rating, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		review.ID, review.User.ID, review.RoomID, review.ExperienceID,
		review.Payload, review.Rating, review.CreatedAt,
	)
	if err != nil {
		if mapped := integrityError(err); mapped != nil {
			return mapped
		}
		if pgCode(err) == codeForeignKeyViolation {
			return fmt.Errorf("%w: %v", domain.ErrConstraint, err)
		}
		return fmt.Errorf("insert review: %w", err)
	}

	return nil
}

func (r *ReviewRepository) ListByRoom(ctx context.Context, roomID string, limit, offset int) ([]*domain.Review, error) {
	return r.list(ctx, "room_id", roomID, limit, offset)
}

func (r *ReviewRepository) ListByExperience(ctx context.Context, experienceID string, limit, offset int) ([]*domain.Review, error) {
	return r.list(ctx, "experience_id", experienceID, limit, offset)
}

// Самые новые отзывы идут первыми
func (r *ReviewRepository) list(ctx context.Context, column, targetID string, limit, offset int) ([]*domain.Review, error) {
	query := `SELECT rv.id, rv.room_id, rv.experience_id, rv.payload, rv.rating, rv.created_at,
                     u.id, u.username, u.avatar, u.email
              FROM reviews rv
              JOIN users u ON u.id = rv.user_id
              WHERE rv.` + column + ` = $1
              ORDER BY rv.created_at DESC, rv.id
              LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, targetID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	res := []*domain.Review{}
	for rows.Next() {
		var rv domain.Review
		if err = rows.Scan(
			&rv.ID, &rv.RoomID, &rv.ExperienceID, &rv.Payload, &rv.Rating, &rv.CreatedAt,
			&rv.User.ID, &rv.User.Username, &rv.User.Avatar, &rv.User.Email,
		); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		res = append(res, &rv)
	}

	return res, rows.Err()
}
