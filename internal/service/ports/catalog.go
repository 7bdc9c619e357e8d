package ports

import (
	"context"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type CategoryRepo interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id string) error
}

type AmenityRepo interface {
	Create(ctx context.Context, a *domain.Amenity) error
	GetByID(ctx context.Context, id string) (*domain.Amenity, error)
	List(ctx context.Context) ([]*domain.Amenity, error)
	Update(ctx context.Context, a *domain.Amenity) error
	Delete(ctx context.Context, id string) error
}

type PerkRepo interface {
	Create(ctx context.Context, p *domain.Perk) error
	GetByID(ctx context.Context, id string) (*domain.Perk, error)
	List(ctx context.Context) ([]*domain.Perk, error)
	Update(ctx context.Context, p *domain.Perk) error
	Delete(ctx context.Context, id string) error
}
