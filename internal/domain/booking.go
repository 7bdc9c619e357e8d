package domain

import "time"

type BookingKind string

const (
	BookingKindRoom       BookingKind = "room"
	BookingKindExperience BookingKind = "experience"
)

// DateLayout is the wire format of check-in and check-out dates.
const DateLayout = "2006-01-02"

type Booking struct {
	ID             string      `json:"id"`
	Kind           BookingKind `json:"kind"`
	UserID         string      `json:"user_id"`
	RoomID         *string     `json:"room_id"`
	ExperienceID   *string     `json:"experience_id"`
	CheckIn        *time.Time  `json:"check_in"`
	CheckOut       *time.Time  `json:"check_out"`
	ExperienceTime *time.Time  `json:"experience_time"`
	Guests         int         `json:"guests"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

func (b *Booking) OwnerIdentity() string {
	return b.UserID
}

type CreateRoomBookingInput struct {
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

type CreateExperienceBookingInput struct {
	ExperienceTime time.Time
	Guests         int
}

// CivilDate drops the clock and the zone of t, keeping its calendar date.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Overlaps reports whether two stays share at least one day, endpoints included.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return !aIn.After(bOut) && !aOut.Before(bIn)
}
