package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingDeps struct {
	bookingRepo    *mocks.MockBookingRepo
	roomRepo       *mocks.MockRoomRepo
	experienceRepo *mocks.MockExperienceRepo
	userRepo       *mocks.MockUserRepo
	notifier       *mocks.MockBookingNotifier
}

func newBookingService(t *testing.T, now time.Time) (*BookingService, bookingDeps) {
	d := bookingDeps{
		bookingRepo:    mocks.NewMockBookingRepo(t),
		roomRepo:       mocks.NewMockRoomRepo(t),
		experienceRepo: mocks.NewMockExperienceRepo(t),
		userRepo:       mocks.NewMockUserRepo(t),
		notifier:       mocks.NewMockBookingNotifier(t),
	}
	svc := NewBookingService(
		d.bookingRepo,
		d.roomRepo,
		d.experienceRepo,
		d.userRepo,
		newTestAvailability(d.bookingRepo, now),
		d.notifier,
		newTestLogger(t),
	)
	return svc, d
}

func waitNotified(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notifier was not called")
	}
}

func TestBookingService_BookRoom(t *testing.T) {
	svc, d := newBookingService(t, date(2024, 1, 1))

	room := newRoom("r1")
	guest := &domain.User{ID: "u1", Username: "alice"}
	done := make(chan struct{})

	d.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)
	d.bookingRepo.EXPECT().HasRoomOverlap(mock.Anything, "r1", date(2024, 3, 1), date(2024, 3, 5)).Return(false, nil)
	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(guest, nil)
	d.bookingRepo.EXPECT().CreateRoomBooking(mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)
	d.notifier.EXPECT().NotifyRoomBooked(mock.Anything, guest, room, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Room, *domain.Booking) { close(done) }).
		Return()

	booking, err := svc.BookRoom(context.Background(), "u1", "r1", domain.CreateRoomBookingInput{
		CheckIn:  date(2024, 3, 1),
		CheckOut: date(2024, 3, 5),
		Guests:   2,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, domain.BookingKindRoom, booking.Kind)
	assert.Equal(t, "u1", booking.UserID)
	assert.Equal(t, "r1", *booking.RoomID)
	assert.Equal(t, date(2024, 3, 1), *booking.CheckIn)
	assert.Equal(t, date(2024, 3, 5), *booking.CheckOut)
	assert.Nil(t, booking.ExperienceID)
	assert.Equal(t, 2, booking.Guests)

	waitNotified(t, done)
}

func TestBookingService_BookRoom_Anonymous(t *testing.T) {
	svc, _ := newBookingService(t, date(2024, 1, 1))

	_, err := svc.BookRoom(context.Background(), "", "r1", domain.CreateRoomBookingInput{
		CheckIn:  date(2024, 3, 1),
		CheckOut: date(2024, 3, 5),
	})

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestBookingService_BookRoom_RoomNotFound(t *testing.T) {
	svc, d := newBookingService(t, date(2024, 1, 1))

	d.roomRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrRoomNotFound)

	_, err := svc.BookRoom(context.Background(), "u1", "missing", domain.CreateRoomBookingInput{
		CheckIn:  date(2024, 3, 1),
		CheckOut: date(2024, 3, 5),
	})

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestBookingService_BookRoom_RejectsBadDatesWithoutWriting(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		wantErr  error
	}{
		{"check out equals check in", date(2024, 3, 1), date(2024, 3, 1), domain.ErrInvalidStay},
		{"check out before check in", date(2024, 3, 5), date(2024, 3, 1), domain.ErrInvalidStay},
		{"check in in the past", date(2023, 12, 31), date(2024, 1, 3), domain.ErrPastDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newBookingService(t, date(2024, 1, 1))
			d.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(newRoom("r1"), nil)

			_, err := svc.BookRoom(context.Background(), "u1", "r1", domain.CreateRoomBookingInput{
				CheckIn:  tt.checkIn,
				CheckOut: tt.checkOut,
			})

			assert.ErrorIs(t, err, tt.wantErr)
			d.bookingRepo.AssertNotCalled(t, "CreateRoomBooking", mock.Anything, mock.Anything)
		})
	}
}

func TestBookingService_BookRoom_Overlap(t *testing.T) {
	svc, d := newBookingService(t, date(2024, 1, 1))

	// existing booking 2024-01-13..2024-02-15
	d.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(newRoom("r1"), nil)
	d.bookingRepo.EXPECT().HasRoomOverlap(mock.Anything, "r1", date(2024, 1, 15), date(2024, 2, 25)).Return(true, nil)

	_, err := svc.BookRoom(context.Background(), "u1", "r1", domain.CreateRoomBookingInput{
		CheckIn:  date(2024, 1, 15),
		CheckOut: date(2024, 2, 25),
		Guests:   5,
	})

	assert.ErrorIs(t, err, domain.ErrRoomAlreadyBooked)
	d.bookingRepo.AssertNotCalled(t, "CreateRoomBooking", mock.Anything, mock.Anything)
}

func TestBookingService_BookRoom_LosesRace(t *testing.T) {
	svc, d := newBookingService(t, date(2024, 1, 1))

	d.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(newRoom("r1"), nil)
	d.bookingRepo.EXPECT().HasRoomOverlap(mock.Anything, "r1", mock.Anything, mock.Anything).Return(false, nil)
	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	d.bookingRepo.EXPECT().CreateRoomBooking(mock.Anything, mock.Anything).Return(domain.ErrRoomAlreadyBooked)

	_, err := svc.BookRoom(context.Background(), "u1", "r1", domain.CreateRoomBookingInput{
		CheckIn:  date(2024, 3, 1),
		CheckOut: date(2024, 3, 5),
	})

	assert.ErrorIs(t, err, domain.ErrRoomAlreadyBooked)
}

func TestBookingService_CheckRoomAvailability(t *testing.T) {
	svc, d := newBookingService(t, date(2024, 1, 1))

	d.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(newRoom("r1"), nil)
	d.bookingRepo.EXPECT().HasRoomOverlap(mock.Anything, "r1", date(2024, 3, 1), date(2024, 3, 5)).Return(true, nil)

	ok, err := svc.CheckRoomAvailability(context.Background(), "r1", date(2024, 3, 1), date(2024, 3, 5))

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBookingService_ListRoomBookings_FromToday(t *testing.T) {
	svc, d := newBookingService(t, time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC))

	upcoming := []*domain.Booking{{ID: "b1", RoomID: ptr("r1")}}
	d.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(newRoom("r1"), nil)
	d.bookingRepo.EXPECT().ListUpcomingByRoom(mock.Anything, "r1", date(2024, 1, 1)).Return(upcoming, nil)

	got, err := svc.ListRoomBookings(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, upcoming, got)
}

func TestBookingService_BookExperience(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	svc, d := newBookingService(t, now)

	experience := newExperience("e1", "host")
	guest := &domain.User{ID: "u1"}
	done := make(chan struct{})

	d.experienceRepo.EXPECT().GetByID(mock.Anything, "e1").Return(experience, nil)
	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(guest, nil)
	d.bookingRepo.EXPECT().CreateExperienceBooking(mock.Anything, mock.Anything).Return(nil)
	d.notifier.EXPECT().NotifyExperienceBooked(mock.Anything, guest, experience, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Experience, *domain.Booking) { close(done) }).
		Return()

	at := now.Add(48 * time.Hour)
	booking, err := svc.BookExperience(context.Background(), "u1", "e1", domain.CreateExperienceBookingInput{
		ExperienceTime: at,
		Guests:         3,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingKindExperience, booking.Kind)
	assert.Equal(t, "e1", *booking.ExperienceID)
	assert.Nil(t, booking.RoomID)
	assert.True(t, at.Equal(*booking.ExperienceTime))

	waitNotified(t, done)
}

func TestBookingService_BookExperience_PastTime(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	svc, d := newBookingService(t, now)

	d.experienceRepo.EXPECT().GetByID(mock.Anything, "e1").Return(newExperience("e1", "host"), nil)

	_, err := svc.BookExperience(context.Background(), "u1", "e1", domain.CreateExperienceBookingInput{
		ExperienceTime: now.Add(-time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrPastDate)
}

func TestBookingService_ListMine(t *testing.T) {
	svc, d := newBookingService(t, date(2024, 1, 1))

	_, err := svc.ListMine(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	mine := []*domain.Booking{{ID: "b1", UserID: "u1"}}
	d.bookingRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(mine, nil)

	got, err := svc.ListMine(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, mine, got)
}

func TestBookingService_SendCheckInReminders(t *testing.T) {
	svc, d := newBookingService(t, time.Date(2024, 5, 9, 10, 0, 0, 0, time.UTC))

	due := []*domain.Booking{{ID: "b1", UserID: "u1", RoomID: ptr("r1"), CheckIn: ptr(date(2024, 5, 10))}}
	guest := &domain.User{ID: "u1"}
	done := make(chan struct{})

	d.bookingRepo.EXPECT().MarkReminded(mock.Anything, date(2024, 5, 10)).Return(due, nil)
	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(guest, nil)
	d.notifier.EXPECT().NotifyCheckInReminder(mock.Anything, guest, due[0]).
		Run(func(context.Context, *domain.User, *domain.Booking) { close(done) }).
		Return()

	got, err := svc.SendCheckInReminders(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)
	waitNotified(t, done)
}

func TestBookingService_SendCheckInReminders_Error(t *testing.T) {
	svc, d := newBookingService(t, date(2024, 5, 9))

	d.bookingRepo.EXPECT().MarkReminded(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.SendCheckInReminders(context.Background())
	assert.Error(t, err)
}
