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

// WishlistService never gates after the fact: every lookup is scoped to
// the caller, so someone else's wishlist is simply not found.
type WishlistService struct {
	wishlistRepo   ports.WishlistRepo
	roomRepo       ports.RoomRepo
	experienceRepo ports.ExperienceRepo
	logger         logger.Logger
}

func NewWishlistService(
	wishlistRepo ports.WishlistRepo,
	roomRepo ports.RoomRepo,
	experienceRepo ports.ExperienceRepo,
	logger logger.Logger,
) *WishlistService {
	return &WishlistService{
		wishlistRepo:   wishlistRepo,
		roomRepo:       roomRepo,
		experienceRepo: experienceRepo,
		logger:         logger,
	}
}

func (s *WishlistService) List(ctx context.Context, actorID string) ([]*domain.Wishlist, error) {
	if err := access.RequireIdentity(actorID); err != nil {
		return nil, err
	}
	return s.wishlistRepo.ListByUser(ctx, actorID)
}

func (s *WishlistService) Create(ctx context.Context, actorID, name string) (*domain.Wishlist, error) {
	if err := access.RequireIdentity(actorID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	wishlist := &domain.Wishlist{
		ID:          uuid.New().String(),
		Name:        name,
		UserID:      actorID,
		Rooms:       []domain.RoomListItem{},
		Experiences: []domain.ExperienceSummary{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.wishlistRepo.Create(ctx, wishlist); err != nil {
		return nil, fmt.Errorf("create wishlist: %w", err)
	}
	return wishlist, nil
}

func (s *WishlistService) Get(ctx context.Context, actorID, id string) (*domain.Wishlist, error) {
	if err := access.RequireIdentity(actorID); err != nil {
		return nil, err
	}
	return s.wishlistRepo.GetForUser(ctx, id, actorID)
}

func (s *WishlistService) Rename(ctx context.Context, actorID, id, name string) (*domain.Wishlist, error) {
	if err := access.RequireIdentity(actorID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	wishlist, err := s.wishlistRepo.GetForUser(ctx, id, actorID)
	if err != nil {
		return nil, fmt.Errorf("get wishlist: %w", err)
	}

	wishlist.Name = name
	wishlist.UpdatedAt = time.Now().UTC()
	if err = s.wishlistRepo.Rename(ctx, wishlist); err != nil {
		return nil, fmt.Errorf("rename wishlist: %w", err)
	}
	return wishlist, nil
}

func (s *WishlistService) Delete(ctx context.Context, actorID, id string) error {
	if err := access.RequireIdentity(actorID); err != nil {
		return err
	}
	if _, err := s.wishlistRepo.GetForUser(ctx, id, actorID); err != nil {
		return fmt.Errorf("get wishlist: %w", err)
	}
	return s.wishlistRepo.Delete(ctx, id)
}

// ToggleRoom adds the room when absent and removes it when present.
// The result reports whether the room is in the wishlist afterwards.
func (s *WishlistService) ToggleRoom(ctx context.Context, actorID, id, roomID string) (bool, error) {
	if err := access.RequireIdentity(actorID); err != nil {
		return false, err
	}
	if _, err := s.wishlistRepo.GetForUser(ctx, id, actorID); err != nil {
		return false, fmt.Errorf("get wishlist: %w", err)
	}
	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		return false, fmt.Errorf("get room: %w", err)
	}

	added, err := s.wishlistRepo.ToggleRoom(ctx, id, roomID)
	if err != nil {
		return false, fmt.Errorf("toggle room: %w", err)
	}

	s.logger.Info("wishlist room toggled",
		logger.String("wishlist_id", id),
		logger.String("room_id", roomID),
		logger.Any("added", added),
	)
	return added, nil
}

func (s *WishlistService) ToggleExperience(ctx context.Context, actorID, id, experienceID string) (bool, error) {
	if err := access.RequireIdentity(actorID); err != nil {
		return false, err
	}
	if _, err := s.wishlistRepo.GetForUser(ctx, id, actorID); err != nil {
		return false, fmt.Errorf("get wishlist: %w", err)
	}
	if _, err := s.experienceRepo.GetByID(ctx, experienceID); err != nil {
		return false, fmt.Errorf("get experience: %w", err)
	}

	added, err := s.wishlistRepo.ToggleExperience(ctx, id, experienceID)
	if err != nil {
		return false, fmt.Errorf("toggle experience: %w", err)
	}

	s.logger.Info("wishlist experience toggled",
		logger.String("wishlist_id", id),
		logger.String("experience_id", experienceID),
		logger.Any("added", added),
	)
	return added, nil
}
