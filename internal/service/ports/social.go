package ports

import (
	"context"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type ReviewRepo interface {
	Create(ctx context.Context, r *domain.Review) error
	ListByRoom(ctx context.Context, roomID string, limit, offset int) ([]*domain.Review, error)
	ListByExperience(ctx context.Context, experienceID string, limit, offset int) ([]*domain.Review, error)
}

// WishlistRepo lookups are always scoped to the owning user.
type WishlistRepo interface {
	Create(ctx context.Context, w *domain.Wishlist) error
	GetForUser(ctx context.Context, id, userID string) (*domain.Wishlist, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Wishlist, error)
	Rename(ctx context.Context, w *domain.Wishlist) error
	Delete(ctx context.Context, id string) error
	ToggleRoom(ctx context.Context, wishlistID, roomID string) (bool, error)
	ToggleExperience(ctx context.Context, wishlistID, experienceID string) (bool, error)
	HasRoom(ctx context.Context, userID, roomID string) (bool, error)
}

type ChatRepo interface {
	CreateRoom(ctx context.Context, room *domain.ChattingRoom, memberIDs []string) error
	ListRoomsByUser(ctx context.Context, userID string) ([]*domain.ChattingRoom, error)
	IsMember(ctx context.Context, roomID, userID string) (bool, error)
	CreateMessage(ctx context.Context, m *domain.Message) error
	ListMessages(ctx context.Context, roomID string) ([]*domain.Message, error)
}
