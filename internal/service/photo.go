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

type PhotoService struct {
	photoRepo      ports.PhotoRepo
	roomRepo       ports.RoomRepo
	experienceRepo ports.ExperienceRepo
}

func NewPhotoService(photoRepo ports.PhotoRepo, roomRepo ports.RoomRepo, experienceRepo ports.ExperienceRepo) *PhotoService {
	return &PhotoService{
		photoRepo:      photoRepo,
		roomRepo:       roomRepo,
		experienceRepo: experienceRepo,
	}
}

func (s *PhotoService) AddToRoom(ctx context.Context, actorID, roomID string, input domain.PhotoInput) (*domain.Photo, error) {
	if err := access.Authorize(actorID, nil, access.ActionCreate); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if err = access.Authorize(actorID, room, access.ActionUpdate); err != nil {
		return nil, err
	}

	photo, err := newPhoto(input, room.Owner.ID)
	if err != nil {
		return nil, err
	}
	photo.RoomID = &room.ID

	if err = s.photoRepo.Create(ctx, photo); err != nil {
		return nil, fmt.Errorf("create photo: %w", err)
	}
	return photo, nil
}

func (s *PhotoService) AddToExperience(ctx context.Context, actorID, experienceID string, input domain.PhotoInput) (*domain.Photo, error) {
	if err := access.Authorize(actorID, nil, access.ActionCreate); err != nil {
		return nil, err
	}

	experience, err := s.experienceRepo.GetByID(ctx, experienceID)
	if err != nil {
		return nil, fmt.Errorf("get experience: %w", err)
	}
	if err = access.Authorize(actorID, experience, access.ActionUpdate); err != nil {
		return nil, err
	}

	photo, err := newPhoto(input, experience.Host.ID)
	if err != nil {
		return nil, err
	}
	photo.ExperienceID = &experience.ID

	if err = s.photoRepo.Create(ctx, photo); err != nil {
		return nil, fmt.Errorf("create photo: %w", err)
	}
	return photo, nil
}

func (s *PhotoService) Delete(ctx context.Context, actorID, id string) error {
	if err := access.Authorize(actorID, nil, access.ActionDelete); err != nil {
		return err
	}

	photo, err := s.photoRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get photo: %w", err)
	}
	if err = access.Authorize(actorID, photo, access.ActionDelete); err != nil {
		return err
	}
	return s.photoRepo.Delete(ctx, id)
}

func newPhoto(input domain.PhotoInput, ownerID string) (*domain.Photo, error) {
	if strings.TrimSpace(input.File) == "" {
		return nil, fmt.Errorf("%w: file is required", domain.ErrValidation)
	}
	return &domain.Photo{
		ID:          uuid.New().String(),
		File:        input.File,
		Description: input.Description,
		OwnerID:     ownerID,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
