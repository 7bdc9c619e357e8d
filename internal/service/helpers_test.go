package service

import (
	"testing"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestAvailability(repo *mocks.MockBookingRepo, now time.Time) *Availability {
	a := NewAvailability(repo, time.UTC)
	a.now = func() time.Time { return now }
	return a
}

type roomOpt func(*domain.Room)

func withOwner(id string) roomOpt {
	return func(r *domain.Room) { r.Owner = domain.UserSummary{ID: id, Username: id} }
}

func withAmenities(ids ...string) roomOpt {
	return func(r *domain.Room) {
		for _, id := range ids {
			r.Amenities = append(r.Amenities, domain.Amenity{ID: id, Name: "amenity " + id})
		}
	}
}

func newRoom(id string, opts ...roomOpt) *domain.Room {
	r := &domain.Room{
		ID:      id,
		Title:   "Seaside flat",
		Country: "Korea",
		City:    "Busan",
		Price:   100,
		Rooms:   2,
		Toilets: 1,
		Address: "1 Beach road",
		Kind:    domain.RoomKindEntirePlace,
		Owner:   domain.UserSummary{ID: "owner", Username: "owner"},
		Category: &domain.Category{
			ID:   "c-rooms",
			Name: "Apartments",
			Kind: domain.CategoryKindRooms,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func newExperience(id, hostID string) *domain.Experience {
	return &domain.Experience{
		ID:      id,
		Country: "Korea",
		City:    "Seoul",
		Name:    "Kimchi class",
		Price:   50,
		Start:   "10:00:00",
		End:     "12:00:00",
		Host:    domain.UserSummary{ID: hostID, Username: hostID},
		Category: &domain.Category{
			ID:   "c-exp",
			Name: "Cooking",
			Kind: domain.CategoryKindExperiences,
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
