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

type PhotoRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPhotoRepo(db *dbpg.DB) *PhotoRepository {
	return &PhotoRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *PhotoRepository) Create(ctx context.Context, p *domain.Photo) error {
	query := `INSERT INTO photos (id, file, description, room_id, experience_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $6)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		p.ID, p.File, p.Description, p.RoomID, p.ExperienceID, p.CreatedAt)
	if err != nil {
		if mapped := integrityError(err); mapped != nil {
			return mapped
		}
		if pgCode(err) == codeForeignKeyViolation {
			return fmt.Errorf("%w: %v", domain.ErrConstraint, err)
		}
		return fmt.Errorf("insert photo: %w", err)
	}
	return nil
}

// GetByID also resolves who owns the photo's parent.
func (r *PhotoRepository) GetByID(ctx context.Context, id string) (*domain.Photo, error) {
	query := `SELECT p.id, p.file, p.description, p.room_id, p.experience_id, p.created_at,
                     COALESCE(r.owner_id, e.host_id)
              FROM photos p
              LEFT JOIN rooms r ON r.id = p.room_id
              LEFT JOIN experiences e ON e.id = p.experience_id
              WHERE p.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get photo: %w", err)
	}

	var p domain.Photo
	if err = row.Scan(&p.ID, &p.File, &p.Description, &p.RoomID, &p.ExperienceID, &p.CreatedAt, &p.OwnerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPhotoNotFound
		}
		return nil, fmt.Errorf("scan photo: %w", err)
	}
	return &p, nil
}

func (r *PhotoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	return checkAffected(res, domain.ErrPhotoNotFound)
}

func (r *PhotoRepository) ListByRoom(ctx context.Context, roomID string) ([]domain.Photo, error) {
	query := `SELECT p.id, p.file, p.description, p.room_id, p.experience_id, p.created_at, r.owner_id
              FROM photos p
              JOIN rooms r ON r.id = p.room_id
              WHERE p.room_id = $1
              ORDER BY p.created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	defer rows.Close()

	res := []domain.Photo{}
	for rows.Next() {
		var p domain.Photo
		if err = rows.Scan(&p.ID, &p.File, &p.Description, &p.RoomID, &p.ExperienceID, &p.CreatedAt, &p.OwnerID); err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		res = append(res, p)
	}
	return res, rows.Err()
}
