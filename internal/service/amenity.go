package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/access"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports"
)

type AmenityService struct {
	repo ports.AmenityRepo
}

func NewAmenityService(repo ports.AmenityRepo) *AmenityService {
	return &AmenityService{repo: repo}
}

func (s *AmenityService) List(ctx context.Context) ([]*domain.Amenity, error) {
	return s.repo.List(ctx)
}

func (s *AmenityService) Get(ctx context.Context, id string) (*domain.Amenity, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AmenityService) Create(ctx context.Context, actorID string, input domain.AmenityInput) (*domain.Amenity, error) {
	if err := access.Authorize(actorID, nil, access.ActionCreate); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	amenity := &domain.Amenity{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, amenity); err != nil {
		return nil, fmt.Errorf("create amenity: %w", err)
	}
	return amenity, nil
}

func (s *AmenityService) Update(ctx context.Context, actorID, id string, patch domain.AmenityPatch) (*domain.Amenity, error) {
	if err := access.Authorize(actorID, nil, access.ActionUpdate); err != nil {
		return nil, err
	}

	amenity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get amenity: %w", err)
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
		}
		amenity.Name = *patch.Name
	}
	if patch.Description != nil {
		amenity.Description = patch.Description
	}
	amenity.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, amenity); err != nil {
		return nil, fmt.Errorf("update amenity: %w", err)
	}
	return amenity, nil
}

func (s *AmenityService) Delete(ctx context.Context, actorID, id string) error {
	if err := access.Authorize(actorID, nil, access.ActionDelete); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
