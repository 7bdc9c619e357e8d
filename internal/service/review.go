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

const defaultPageSize = 3

type ReviewService struct {
	reviewRepo     ports.ReviewRepo
	roomRepo       ports.RoomRepo
	experienceRepo ports.ExperienceRepo
	userRepo       ports.UserRepo
	pageSize       int
}

func NewReviewService(
	reviewRepo ports.ReviewRepo,
	roomRepo ports.RoomRepo,
	experienceRepo ports.ExperienceRepo,
	userRepo ports.UserRepo,
	pageSize int,
) *ReviewService {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &ReviewService{
		reviewRepo:     reviewRepo,
		roomRepo:       roomRepo,
		experienceRepo: experienceRepo,
		userRepo:       userRepo,
		pageSize:       pageSize,
	}
}

func (s *ReviewService) ListForRoom(ctx context.Context, roomID string, page int) ([]*domain.Review, error) {
	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	limit, offset := s.window(page)
	return s.reviewRepo.ListByRoom(ctx, roomID, limit, offset)
}

func (s *ReviewService) ListForExperience(ctx context.Context, experienceID string, page int) ([]*domain.Review, error) {
	if _, err := s.experienceRepo.GetByID(ctx, experienceID); err != nil {
		return nil, fmt.Errorf("get experience: %w", err)
	}
	limit, offset := s.window(page)
	return s.reviewRepo.ListByExperience(ctx, experienceID, limit, offset)
}

func (s *ReviewService) CreateForRoom(ctx context.Context, actorID, roomID string, input domain.ReviewInput) (*domain.Review, error) {
	if err := access.Authorize(actorID, nil, access.ActionCreate); err != nil {
		return nil, err
	}
	if err := validateReview(input); err != nil {
		return nil, err
	}
	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	review, err := s.newReview(ctx, actorID, input)
	if err != nil {
		return nil, err
	}
	review.RoomID = &roomID

	if err = s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) CreateForExperience(ctx context.Context, actorID, experienceID string, input domain.ReviewInput) (*domain.Review, error) {
	if err := access.Authorize(actorID, nil, access.ActionCreate); err != nil {
		return nil, err
	}
	if err := validateReview(input); err != nil {
		return nil, err
	}
	if _, err := s.experienceRepo.GetByID(ctx, experienceID); err != nil {
		return nil, fmt.Errorf("get experience: %w", err)
	}

	review, err := s.newReview(ctx, actorID, input)
	if err != nil {
		return nil, err
	}
	review.ExperienceID = &experienceID

	if err = s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) newReview(ctx context.Context, actorID string, input domain.ReviewInput) (*domain.Review, error) {
	author, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	return &domain.Review{
		ID:        uuid.New().String(),
		User:      author.Summary(),
		Payload:   input.Payload,
		Rating:    input.Rating,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// window turns a 1-based page number into limit/offset. Pages below 1 are page 1.
func (s *ReviewService) window(page int) (int, int) {
	if page < 1 {
		page = 1
	}
	return s.pageSize, (page - 1) * s.pageSize
}

func validateReview(in domain.ReviewInput) error {
	if strings.TrimSpace(in.Payload) == "" {
		return fmt.Errorf("%w: payload is required", domain.ErrValidation)
	}
	if in.Rating < domain.MinRating || in.Rating > domain.MaxRating {
		return fmt.Errorf("%w: rating must be between %d and %d", domain.ErrValidation, domain.MinRating, domain.MaxRating)
	}
	return nil
}
