package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports"
)

// Availability decides whether a stay may be booked. Dates are compared as
// calendar days; "today" is taken in the configured booking timezone.
type Availability struct {
	bookings ports.BookingRepo
	loc      *time.Location
	now      func() time.Time
}

func NewAvailability(bookings ports.BookingRepo, loc *time.Location) *Availability {
	if loc == nil {
		loc = time.UTC
	}
	return &Availability{
		bookings: bookings,
		loc:      loc,
		now:      time.Now,
	}
}

func (a *Availability) Today() time.Time {
	return domain.CivilDate(a.now().In(a.loc))
}

func (a *Availability) Now() time.Time {
	return a.now()
}

// ValidateStay checks the date rules only and never touches storage.
func (a *Availability) ValidateStay(checkIn, checkOut time.Time) error {
	in, out := domain.CivilDate(checkIn), domain.CivilDate(checkOut)
	today := a.Today()

	if in.Before(today) || out.Before(today) {
		return domain.ErrPastDate
	}
	if !out.After(in) {
		return domain.ErrInvalidStay
	}
	return nil
}

func (a *Availability) IsAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error) {
	if err := a.ValidateStay(checkIn, checkOut); err != nil {
		return false, err
	}

	overlap, err := a.bookings.HasRoomOverlap(ctx, roomID, domain.CivilDate(checkIn), domain.CivilDate(checkOut))
	if err != nil {
		return false, fmt.Errorf("check overlap: %w", err)
	}
	return !overlap, nil
}
