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
	"github.com/wb-go/wbf/logger"
)

type ExperienceService struct {
	experienceRepo ports.ExperienceRepo
	categoryRepo   ports.CategoryRepo
	logger         logger.Logger
}

func NewExperienceService(
	experienceRepo ports.ExperienceRepo,
	categoryRepo ports.CategoryRepo,
	logger logger.Logger,
) *ExperienceService {
	return &ExperienceService{
		experienceRepo: experienceRepo,
		categoryRepo:   categoryRepo,
		logger:         logger,
	}
}

func (s *ExperienceService) List(ctx context.Context) ([]*domain.Experience, error) {
	return s.experienceRepo.List(ctx)
}

func (s *ExperienceService) Get(ctx context.Context, id string) (*domain.Experience, error) {
	return s.experienceRepo.GetByID(ctx, id)
}

func (s *ExperienceService) Create(ctx context.Context, actorID string, input domain.CreateExperienceInput) (*domain.Experience, error) {
	if err := access.Authorize(actorID, nil, access.ActionCreate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	experience := &domain.Experience{
		ID:          uuid.New().String(),
		Country:     input.Country,
		City:        input.City,
		Name:        input.Name,
		Price:       input.Price,
		Address:     input.Address,
		Start:       input.Start,
		End:         input.End,
		Description: input.Description,
		Host:        domain.UserSummary{ID: actorID},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := validateExperience(experience); err != nil {
		return nil, err
	}

	category, err := resolveCategory(ctx, s.categoryRepo, input.CategoryID, domain.CategoryKindExperiences)
	if err != nil {
		return nil, err
	}
	experience.Category = category

	if err = s.experienceRepo.Create(ctx, experience, input.PerkIDs); err != nil {
		return nil, fmt.Errorf("create experience: %w", err)
	}

	s.logger.Info("experience created",
		logger.String("experience_id", experience.ID),
		logger.String("host_id", actorID),
		logger.Int("perks", len(input.PerkIDs)),
	)

	return s.readBack(ctx, experience), nil
}

func (s *ExperienceService) Update(ctx context.Context, actorID, id string, input domain.UpdateExperienceInput) (*domain.Experience, error) {
	if err := access.Authorize(actorID, nil, access.ActionUpdate); err != nil {
		return nil, err
	}

	experience, err := s.experienceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get experience: %w", err)
	}
	if err = access.Authorize(actorID, experience, access.ActionUpdate); err != nil {
		return nil, err
	}

	var category *domain.Category
	if input.CategoryID != nil && *input.CategoryID != "" {
		category, err = resolveCategory(ctx, s.categoryRepo, *input.CategoryID, domain.CategoryKindExperiences)
		if err != nil {
			return nil, err
		}
	}

	var written domain.Experience
	err = s.experienceRepo.Update(ctx, id, input.PerkIDs, func(locked *domain.Experience) error {
		if err := access.Authorize(actorID, locked, access.ActionUpdate); err != nil {
			return err
		}
		applyExperiencePatch(locked, input)
		if err := validateExperience(locked); err != nil {
			return err
		}
		if category != nil {
			locked.Category = category
		}
		locked.UpdatedAt = time.Now().UTC()
		written = *locked
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update experience: %w", err)
	}

	s.logger.Info("experience updated",
		logger.String("experience_id", id),
		logger.String("host_id", actorID),
	)

	return s.readBack(ctx, &written), nil
}

// readBack reloads an experience after a committed write and falls back to
// the written copy when the reload fails.
func (s *ExperienceService) readBack(ctx context.Context, e *domain.Experience) *domain.Experience {
	loaded, err := s.experienceRepo.GetByID(ctx, e.ID)
	if err == nil {
		return loaded
	}

	s.logger.Warn("reload after write failed",
		logger.String("experience_id", e.ID),
		logger.String("error", err.Error()),
	)
	return e
}

func (s *ExperienceService) Delete(ctx context.Context, actorID, id string) error {
	if err := access.Authorize(actorID, nil, access.ActionDelete); err != nil {
		return err
	}

	experience, err := s.experienceRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get experience: %w", err)
	}
	if err = access.Authorize(actorID, experience, access.ActionDelete); err != nil {
		return err
	}

	if err = s.experienceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete experience: %w", err)
	}

	s.logger.Info("experience deleted",
		logger.String("experience_id", id),
		logger.String("host_id", actorID),
	)
	return nil
}

func applyExperiencePatch(e *domain.Experience, in domain.UpdateExperienceInput) {
	if in.Country != nil {
		e.Country = *in.Country
	}
	if in.City != nil {
		e.City = *in.City
	}
	if in.Name != nil {
		e.Name = *in.Name
	}
	if in.Price != nil {
		e.Price = *in.Price
	}
	if in.Address != nil {
		e.Address = *in.Address
	}
	if in.Start != nil {
		e.Start = *in.Start
	}
	if in.End != nil {
		e.End = *in.End
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
}

func validateExperience(e *domain.Experience) error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(e.Country) == "" || strings.TrimSpace(e.City) == "" {
		return fmt.Errorf("%w: country and city are required", domain.ErrValidation)
	}
	if _, err := time.Parse(domain.TimeOfDayLayout, e.Start); err != nil {
		return fmt.Errorf("%w: start must be HH:MM:SS", domain.ErrValidation)
	}
	if _, err := time.Parse(domain.TimeOfDayLayout, e.End); err != nil {
		return fmt.Errorf("%w: end must be HH:MM:SS", domain.ErrValidation)
	}
	return nil
}
