package ports

import (
	"context"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type BookingRepo interface {
	CreateRoomBooking(ctx context.Context, b *domain.Booking) error
	CreateExperienceBooking(ctx context.Context, b *domain.Booking) error
	HasRoomOverlap(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error)
	ListUpcomingByRoom(ctx context.Context, roomID string, after time.Time) ([]*domain.Booking, error)
	ListUpcomingByExperience(ctx context.Context, experienceID string, after time.Time) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	MarkReminded(ctx context.Context, checkIn time.Time) ([]*domain.Booking, error)
}
