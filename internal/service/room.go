package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/access"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type RoomService struct {
	roomRepo     ports.RoomRepo
	categoryRepo ports.CategoryRepo
	wishlistRepo ports.WishlistRepo
	photoRepo    ports.PhotoRepo
	logger       logger.Logger
}

func NewRoomService(
	roomRepo ports.RoomRepo,
	categoryRepo ports.CategoryRepo,
	wishlistRepo ports.WishlistRepo,
	photoRepo ports.PhotoRepo,
	logger logger.Logger,
) *RoomService {
	return &RoomService{
		roomRepo:     roomRepo,
		categoryRepo: categoryRepo,
		wishlistRepo: wishlistRepo,
		photoRepo:    photoRepo,
		logger:       logger,
	}
}

func (s *RoomService) List(ctx context.Context, actorID string) ([]*domain.RoomListItem, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	for _, r := range rooms {
		r.Rating = roundRating(r.Rating)
		r.IsOwner = actorID != "" && r.OwnerID == actorID
	}
	return rooms, nil
}

func (s *RoomService) Get(ctx context.Context, actorID, id string) (*domain.RoomDetails, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	return s.details(ctx, actorID, room)
}

// Create binds the room to the caller and the resolved rooms-kind category.
// The room row and its amenity links are written in one transaction.
func (s *RoomService) Create(ctx context.Context, actorID string, input domain.CreateRoomInput) (*domain.RoomDetails, error) {
	if err := access.Authorize(actorID, nil, access.ActionCreate); err != nil {
		return nil, err
	}
	if err := validateRoomInput(input); err != nil {
		return nil, err
	}

	category, err := resolveCategory(ctx, s.categoryRepo, input.CategoryID, domain.CategoryKindRooms)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	room := &domain.Room{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Country:     input.Country,
		City:        input.City,
		Price:       input.Price,
		Rooms:       input.Rooms,
		Toilets:     input.Toilets,
		Description: input.Description,
		Address:     input.Address,
		PetFriendly: input.PetFriendly,
		Kind:        input.Kind,
		Owner:       domain.UserSummary{ID: actorID},
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err = s.roomRepo.Create(ctx, room, input.AmenityIDs); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.logger.Info("room created",
		logger.String("room_id", room.ID),
		logger.String("owner_id", actorID),
		logger.Int("amenities", len(input.AmenityIDs)),
	)

	return s.readBack(ctx, actorID, room), nil
}

// Update applies a partial update to the row locked inside the repository
// transaction. Category and amenities are resolved before anything is
// written, so a failed update leaves the room as it was.
func (s *RoomService) Update(ctx context.Context, actorID, id string, input domain.UpdateRoomInput) (*domain.RoomDetails, error) {
	if err := access.Authorize(actorID, nil, access.ActionUpdate); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if err = access.Authorize(actorID, room, access.ActionUpdate); err != nil {
		return nil, err
	}

	var category *domain.Category
	if input.CategoryID != nil && *input.CategoryID != "" {
		category, err = resolveCategory(ctx, s.categoryRepo, *input.CategoryID, domain.CategoryKindRooms)
		if err != nil {
			return nil, err
		}
	}

	var written domain.Room
	err = s.roomRepo.Update(ctx, id, input.AmenityIDs, func(locked *domain.Room) error {
		if err := access.Authorize(actorID, locked, access.ActionUpdate); err != nil {
			return err
		}
		applyRoomPatch(locked, input)
		if err := validateRoom(locked); err != nil {
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
		return nil, fmt.Errorf("update room: %w", err)
	}

	s.logger.Info("room updated",
		logger.String("room_id", id),
		logger.String("owner_id", actorID),
	)

	return s.readBack(ctx, actorID, &written), nil
}

// readBack reloads a room after a committed write. The write stands even
// when the reload fails, so the caller gets what was written.
func (s *RoomService) readBack(ctx context.Context, actorID string, room *domain.Room) *domain.RoomDetails {
	details, err := s.Get(ctx, actorID, room.ID)
	if err == nil {
		return details
	}

	s.logger.Warn("reload after write failed",
		logger.String("room_id", room.ID),
		logger.String("error", err.Error()),
	)
	return &domain.RoomDetails{
		Room:           *room,
		TotalAmenities: len(room.Amenities),
		IsOwner:        true,
		Photos:         []domain.Photo{},
	}
}

func (s *RoomService) Delete(ctx context.Context, actorID, id string) error {
	if err := access.Authorize(actorID, nil, access.ActionDelete); err != nil {
		return err
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get room: %w", err)
	}
	if err = access.Authorize(actorID, room, access.ActionDelete); err != nil {
		return err
	}

	if err = s.roomRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}

	s.logger.Info("room deleted",
		logger.String("room_id", id),
		logger.String("owner_id", actorID),
	)
	return nil
}

func (s *RoomService) details(ctx context.Context, actorID string, room *domain.Room) (*domain.RoomDetails, error) {
	rating, err := s.roomRepo.Rating(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("room rating: %w", err)
	}

	photos, err := s.photoRepo.ListByRoom(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("room photos: %w", err)
	}

	liked := false
	if actorID != "" {
		liked, err = s.wishlistRepo.HasRoom(ctx, actorID, room.ID)
		if err != nil {
			return nil, fmt.Errorf("room liked: %w", err)
		}
	}

	return &domain.RoomDetails{
		Room:           *room,
		Rating:         roundRating(rating),
		TotalAmenities: len(room.Amenities),
		IsOwner:        actorID != "" && room.Owner.ID == actorID,
		IsLiked:        liked,
		Photos:         photos,
	}, nil
}

func applyRoomPatch(room *domain.Room, in domain.UpdateRoomInput) {
	if in.Title != nil {
		room.Title = *in.Title
	}
	if in.Country != nil {
		room.Country = *in.Country
	}
	if in.City != nil {
		room.City = *in.City
	}
	if in.Price != nil {
		room.Price = *in.Price
	}
	if in.Rooms != nil {
		room.Rooms = *in.Rooms
	}
	if in.Toilets != nil {
		room.Toilets = *in.Toilets
	}
	if in.Description != nil {
		room.Description = *in.Description
	}
	if in.Address != nil {
		room.Address = *in.Address
	}
	if in.PetFriendly != nil {
		room.PetFriendly = *in.PetFriendly
	}
	if in.Kind != nil {
		room.Kind = *in.Kind
	}
}

func validateRoomInput(in domain.CreateRoomInput) error {
	return validateRoom(&domain.Room{
		Title:   in.Title,
		Country: in.Country,
		City:    in.City,
		Address: in.Address,
		Kind:    in.Kind,
	})
}

// Non-negative numbers are left to the storage constraints.
func validateRoom(r *domain.Room) error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(r.Country) == "" || strings.TrimSpace(r.City) == "" {
		return fmt.Errorf("%w: country and city are required", domain.ErrValidation)
	}
	if !r.Kind.Valid() {
		return fmt.Errorf("%w: kind must be one of entire_place, private_room, shared_room", domain.ErrValidation)
	}
	return nil
}

func roundRating(r float64) float64 {
	return math.Round(r*100) / 100
}
