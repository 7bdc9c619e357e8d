package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ExperienceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewExperienceRepo(db *dbpg.DB) *ExperienceRepository {
	return &ExperienceRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const experienceColumns = `e.id, e.country, e.city, e.name, e.price, e.address,
                     e.start_time::text, e.end_time::text, e.description, e.created_at, e.updated_at,
                     u.id, u.username, u.avatar, u.email,
                     c.id, c.name, c.kind, c.created_at, c.updated_at`

func (r *ExperienceRepository) Create(ctx context.Context, e *domain.Experience, perkIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	ids, err := resolveIDs(ctx, tx, "perks", perkIDs, domain.ErrInvalidPerk)
	if err != nil {
		return err
	}

	query := `INSERT INTO experiences (id, country, city, name, price, address, start_time, end_time,
                                       description, host_id, category_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = tx.ExecContext(ctx, query,
		e.ID, e.Country, e.City, e.Name, e.Price, e.Address, e.Start, e.End,
		e.Description, e.Host.ID, categoryID(e.Category), e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return experienceWriteError("insert experience", err)
	}

	if err = linkPerks(ctx, tx, e.ID, ids); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ExperienceRepository) Update(ctx context.Context, id string, perkIDs []string, apply func(*domain.Experience) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT ` + experienceColumns + `
              FROM experiences e
              JOIN users u ON u.id = e.host_id
              LEFT JOIN categories c ON c.id = e.category_id
              WHERE e.id = $1
              FOR UPDATE OF e`
	e, err := scanExperience(tx.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrExperienceNotFound
	}
	if err != nil {
		return fmt.Errorf("lock experience: %w", err)
	}

	if err = apply(e); err != nil {
		return err
	}

	ids, err := resolveIDs(ctx, tx, "perks", perkIDs, domain.ErrInvalidPerk)
	if err != nil {
		return err
	}

	update := `UPDATE experiences
               SET country = $2, city = $3, name = $4, price = $5, address = $6, start_time = $7,
                   end_time = $8, description = $9, category_id = $10, updated_at = $11
               WHERE id = $1`
	_, err = tx.ExecContext(ctx, update,
		e.ID, e.Country, e.City, e.Name, e.Price, e.Address, e.Start, e.End,
		e.Description, categoryID(e.Category), e.UpdatedAt,
	)
	if err != nil {
		return experienceWriteError("update experience", err)
	}

	if err = linkPerks(ctx, tx, e.ID, ids); err != nil {
		return err
	}

	return tx.Commit()
}

func linkPerks(ctx context.Context, tx *sql.Tx, experienceID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query := `INSERT INTO experience_perks (experience_id, perk_id)
              SELECT $1, unnest($2::uuid[])
              ON CONFLICT DO NOTHING`
	if _, err := tx.ExecContext(ctx, query, experienceID, pq.Array(ids)); err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return fmt.Errorf("%w: %v", domain.ErrInvalidPerk, err)
		}
		return fmt.Errorf("link perks: %w", err)
	}
	return nil
}

func experienceWriteError(op string, err error) error {
	if mapped := integrityError(err); mapped != nil {
		return mapped
	}
	if pgCode(err) == codeForeignKeyViolation {
		return fmt.Errorf("%w: %v", domain.ErrInvalidCategory, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (r *ExperienceRepository) GetByID(ctx context.Context, id string) (*domain.Experience, error) {
	query := `SELECT ` + experienceColumns + `
              FROM experiences e
              JOIN users u ON u.id = e.host_id
              LEFT JOIN categories c ON c.id = e.category_id
              WHERE e.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get experience: %w", err)
	}

	e, err := scanExperience(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrExperienceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan experience: %w", err)
	}

	e.Perks, err = r.perks(ctx, id)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *ExperienceRepository) List(ctx context.Context) ([]*domain.Experience, error) {
	query := `SELECT ` + experienceColumns + `
              FROM experiences e
              JOIN users u ON u.id = e.host_id
              LEFT JOIN categories c ON c.id = e.category_id
              ORDER BY e.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	defer rows.Close()

	res := []*domain.Experience{}
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("scan experience: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func scanExperience(row rowScanner) (*domain.Experience, error) {
	var (
		e   domain.Experience
		cat nullCategory
	)
	dest := []any{
		&e.ID, &e.Country, &e.City, &e.Name, &e.Price, &e.Address,
		&e.Start, &e.End, &e.Description, &e.CreatedAt, &e.UpdatedAt,
		&e.Host.ID, &e.Host.Username, &e.Host.Avatar, &e.Host.Email,
	}
	if err := row.Scan(append(dest, cat.dest()...)...); err != nil {
		return nil, err
	}
	e.Category = cat.value()
	return &e, nil
}

func (r *ExperienceRepository) perks(ctx context.Context, experienceID string) ([]domain.Perk, error) {
	query := `SELECT p.id, p.name, p.details, p.explanation, p.created_at, p.updated_at
              FROM perks p
              JOIN experience_perks ep ON ep.perk_id = p.id
              WHERE ep.experience_id = $1
              ORDER BY p.name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, experienceID)
	if err != nil {
		return nil, fmt.Errorf("list experience perks: %w", err)
	}
	defer rows.Close()

	res := []domain.Perk{}
	for rows.Next() {
		var p domain.Perk
		if err = rows.Scan(&p.ID, &p.Name, &p.Details, &p.Explanation, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan perk: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func (r *ExperienceRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete experience: %w", err)
	}
	return checkAffected(res, domain.ErrExperienceNotFound)
}
