package ports

import (
	"context"

	"github.com/stpnv0/StayBooker/internal/domain"
)

// RoomRepo writes a room together with its amenity links in one transaction.
// Unknown amenity ids fail the whole write with domain.ErrInvalidAmenity.
type RoomRepo interface {
	Create(ctx context.Context, room *domain.Room, amenityIDs []string) error
	Update(ctx context.Context, id string, amenityIDs []string, apply func(*domain.Room) error) error
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	List(ctx context.Context) ([]*domain.RoomListItem, error)
	Delete(ctx context.Context, id string) error
	Rating(ctx context.Context, id string) (float64, error)
}

type ExperienceRepo interface {
	Create(ctx context.Context, e *domain.Experience, perkIDs []string) error
	Update(ctx context.Context, id string, perkIDs []string, apply func(*domain.Experience) error) error
	GetByID(ctx context.Context, id string) (*domain.Experience, error)
	List(ctx context.Context) ([]*domain.Experience, error)
	Delete(ctx context.Context, id string) error
}

type PhotoRepo interface {
	Create(ctx context.Context, p *domain.Photo) error
	GetByID(ctx context.Context, id string) (*domain.Photo, error)
	Delete(ctx context.Context, id string) error
	ListByRoom(ctx context.Context, roomID string) ([]domain.Photo, error)
}
