package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/access"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports"
)

type CategoryService struct {
	repo ports.CategoryRepo
}

func NewCategoryService(repo ports.CategoryRepo) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, actorID string, input domain.CategoryInput) (*domain.Category, error) {
	if err := access.Authorize(actorID, nil, access.ActionCreate); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !input.Kind.Valid() {
		return nil, fmt.Errorf("%w: kind must be rooms or experiences", domain.ErrValidation)
	}

	now := time.Now().UTC()
	category := &domain.Category{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Kind:      input.Kind,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, actorID, id string, patch domain.CategoryPatch) (*domain.Category, error) {
	if err := access.Authorize(actorID, nil, access.ActionUpdate); err != nil {
		return nil, err
	}

	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
		}
		category.Name = *patch.Name
	}
	if patch.Kind != nil {
		if !patch.Kind.Valid() {
			return nil, fmt.Errorf("%w: kind must be rooms or experiences", domain.ErrValidation)
		}
		category.Kind = *patch.Kind
	}
	category.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, actorID, id string) error {
	if err := access.Authorize(actorID, nil, access.ActionDelete); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// resolveCategory loads the category a room or experience is bound to and
// checks its kind. Any failure is reported as ErrInvalidCategory.
func resolveCategory(ctx context.Context, repo ports.CategoryRepo, id string, kind domain.CategoryKind) (*domain.Category, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: category is required", domain.ErrInvalidCategory)
	}

	category, err := repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, fmt.Errorf("%w: category %s not found", domain.ErrInvalidCategory, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	if category.Kind != kind {
		return nil, fmt.Errorf("%w: category kind should be %s", domain.ErrInvalidCategory, kind)
	}
	return category, nil
}
