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

type PerkService struct {
	repo ports.PerkRepo
}

func NewPerkService(repo ports.PerkRepo) *PerkService {
	return &PerkService{repo: repo}
}

func (s *PerkService) List(ctx context.Context) ([]*domain.Perk, error) {
	return s.repo.List(ctx)
}

func (s *PerkService) Get(ctx context.Context, id string) (*domain.Perk, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PerkService) Create(ctx context.Context, actorID string, input domain.PerkInput) (*domain.Perk, error) {
	if err := access.Authorize(actorID, nil, access.ActionCreate); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	perk := &domain.Perk{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Details:     input.Details,
		Explanation: input.Explanation,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, perk); err != nil {
		return nil, fmt.Errorf("create perk: %w", err)
	}
	return perk, nil
}

func (s *PerkService) Update(ctx context.Context, actorID, id string, patch domain.PerkPatch) (*domain.Perk, error) {
	if err := access.Authorize(actorID, nil, access.ActionUpdate); err != nil {
		return nil, err
	}

	perk, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get perk: %w", err)
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
		}
		perk.Name = *patch.Name
	}
	if patch.Details != nil {
		perk.Details = *patch.Details
	}
	if patch.Explanation != nil {
		perk.Explanation = *patch.Explanation
	}
	perk.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, perk); err != nil {
		return nil, fmt.Errorf("update perk: %w", err)
	}
	return perk, nil
}

func (s *PerkService) Delete(ctx context.Context, actorID, id string) error {
	if err := access.Authorize(actorID, nil, access.ActionDelete); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
