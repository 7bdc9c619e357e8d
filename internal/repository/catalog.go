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

type CategoryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCategoryRepo(db *dbpg.DB) *CategoryRepository {
	return &CategoryRepository{db: db, strategy: defaultStrategy()}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	query := `INSERT INTO categories (id, name, kind, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, c.ID, c.Name, c.Kind, c.CreatedAt, c.UpdatedAt); err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	query := `SELECT id, name, kind, created_at, updated_at FROM categories WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	var c domain.Category
	if err = row.Scan(&c.ID, &c.Name, &c.Kind, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("scan category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	query := `SELECT id, name, kind, created_at, updated_at FROM categories ORDER BY kind, name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	res := []*domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err = rows.Scan(&c.ID, &c.Name, &c.Kind, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		res = append(res, &c)
	}
	return res, rows.Err()
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	query := `UPDATE categories SET name = $2, kind = $3, updated_at = $4 WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, c.ID, c.Name, c.Kind, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return checkAffected(res, domain.ErrCategoryNotFound)
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return checkAffected(res, domain.ErrCategoryNotFound)
}

type AmenityRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAmenityRepo(db *dbpg.DB) *AmenityRepository {
	return &AmenityRepository{db: db, strategy: defaultStrategy()}
}

func (r *AmenityRepository) Create(ctx context.Context, a *domain.Amenity) error {
	query := `INSERT INTO amenities (id, name, description, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, a.ID, a.Name, a.Description, a.CreatedAt, a.UpdatedAt); err != nil {
		return fmt.Errorf("insert amenity: %w", err)
	}
	return nil
}

func (r *AmenityRepository) GetByID(ctx context.Context, id string) (*domain.Amenity, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM amenities WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get amenity: %w", err)
	}

	var a domain.Amenity
	if err = row.Scan(&a.ID, &a.Name, &a.Description, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAmenityNotFound
		}
		return nil, fmt.Errorf("scan amenity: %w", err)
	}
	return &a, nil
}

func (r *AmenityRepository) List(ctx context.Context) ([]*domain.Amenity, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM amenities ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list amenities: %w", err)
	}
	defer rows.Close()

	res := []*domain.Amenity{}
	for rows.Next() {
		var a domain.Amenity
		if err = rows.Scan(&a.ID, &a.Name, &a.Description, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan amenity: %w", err)
		}
		res = append(res, &a)
	}
	return res, rows.Err()
}

func (r *AmenityRepository) Update(ctx context.Context, a *domain.Amenity) error {
	query := `UPDATE amenities SET name = $2, description = $3, updated_at = $4 WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, a.ID, a.Name, a.Description, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update amenity: %w", err)
	}
	return checkAffected(res, domain.ErrAmenityNotFound)
}

func (r *AmenityRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM amenities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete amenity: %w", err)
	}
	return checkAffected(res, domain.ErrAmenityNotFound)
}

type PerkRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPerkRepo(db *dbpg.DB) *PerkRepository {
	return &PerkRepository{db: db, strategy: defaultStrategy()}
}

func (r *PerkRepository) Create(ctx context.Context, p *domain.Perk) error {
	query := `INSERT INTO perks (id, name, details, explanation, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, p.ID, p.Name, p.Details, p.Explanation, p.CreatedAt, p.UpdatedAt); err != nil {
		return fmt.Errorf("insert perk: %w", err)
	}
	return nil
}

func (r *PerkRepository) GetByID(ctx context.Context, id string) (*domain.Perk, error) {
	query := `SELECT id, name, details, explanation, created_at, updated_at FROM perks WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get perk: %w", err)
	}

	var p domain.Perk
	if err = row.Scan(&p.ID, &p.Name, &p.Details, &p.Explanation, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPerkNotFound
		}
		return nil, fmt.Errorf("scan perk: %w", err)
	}
	return &p, nil
}

func (r *PerkRepository) List(ctx context.Context) ([]*domain.Perk, error) {
	query := `SELECT id, name, details, explanation, created_at, updated_at FROM perks ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list perks: %w", err)
	}
	defer rows.Close()

	res := []*domain.Perk{}
	for rows.Next() {
		var p domain.Perk
		if err = rows.Scan(&p.ID, &p.Name, &p.Details, &p.Explanation, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan perk: %w", err)
		}
		res = append(res, &p)
	}
	return res, rows.Err()
}

func (r *PerkRepository) Update(ctx context.Context, p *domain.Perk) error {
	query := `UPDATE perks SET name = $2, details = $3, explanation = $4, updated_at = $5 WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, p.ID, p.Name, p.Details, p.Explanation, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update perk: %w", err)
	}
	return checkAffected(res, domain.ErrPerkNotFound)
}

func (r *PerkRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM perks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete perk: %w", err)
	}
	return checkAffected(res, domain.ErrPerkNotFound)
}
