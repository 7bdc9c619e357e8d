package ports

import (
	"context"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type BookingNotifier interface {
	NotifyRoomBooked(ctx context.Context, guest *domain.User, room *domain.Room, booking *domain.Booking)
	NotifyExperienceBooked(ctx context.Context, guest *domain.User, experience *domain.Experience, booking *domain.Booking)
	NotifyCheckInReminder(ctx context.Context, guest *domain.User, booking *domain.Booking)
}
