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

func TestAvailability_ValidateStay(t *testing.T) {
	now := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		wantErr  error
	}{
		{"future stay", date(2024, 1, 15), date(2024, 1, 20), nil},
		{"check in today", date(2024, 1, 10), date(2024, 1, 11), nil},
		{"check in yesterday", date(2024, 1, 9), date(2024, 1, 12), domain.ErrPastDate},
		{"check out in the past", date(2024, 1, 5), date(2024, 1, 6), domain.ErrPastDate},
		{"same day", date(2024, 1, 15), date(2024, 1, 15), domain.ErrInvalidStay},
		{"check out before check in", date(2024, 1, 20), date(2024, 1, 15), domain.ErrInvalidStay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAvailability(mocks.NewMockBookingRepo(t), now)

			err := a.ValidateStay(tt.checkIn, tt.checkOut)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAvailability_TodayUsesConfiguredTimezone(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)
	a := NewAvailability(mocks.NewMockBookingRepo(t), seoul)
	// 20:00 UTC is already the next day in Seoul
	a.now = func() time.Time { return time.Date(2024, 1, 10, 20, 0, 0, 0, time.UTC) }

	assert.Equal(t, date(2024, 1, 11), a.Today())
	assert.ErrorIs(t, a.ValidateStay(date(2024, 1, 10), date(2024, 1, 12)), domain.ErrPastDate)
}

func TestAvailability_IsAvailable(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	a := newTestAvailability(bookingRepo, date(2024, 1, 1))

	bookingRepo.EXPECT().HasRoomOverlap(mock.Anything, "r1", date(2024, 1, 15), date(2024, 2, 25)).Return(true, nil).Once()
	bookingRepo.EXPECT().HasRoomOverlap(mock.Anything, "r1", date(2024, 3, 1), date(2024, 3, 5)).Return(false, nil).Once()

	ok, err := a.IsAvailable(context.Background(), "r1", date(2024, 1, 15), date(2024, 2, 25))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = a.IsAvailable(context.Background(), "r1", date(2024, 3, 1), date(2024, 3, 5))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAvailability_IsAvailable_DropsClock(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	a := newTestAvailability(bookingRepo, date(2024, 1, 1))

	bookingRepo.EXPECT().HasRoomOverlap(mock.Anything, "r1", date(2024, 3, 1), date(2024, 3, 5)).Return(false, nil)

	ok, err := a.IsAvailable(context.Background(), "r1",
		time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 5, 11, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAvailability_IsAvailable_InvalidDatesSkipStorage(t *testing.T) {
	a := newTestAvailability(mocks.NewMockBookingRepo(t), date(2024, 1, 10))

	_, err := a.IsAvailable(context.Background(), "r1", date(2024, 1, 12), date(2024, 1, 11))
	assert.ErrorIs(t, err, domain.ErrInvalidStay)
}

func TestAvailability_IsAvailable_RepoError(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	a := newTestAvailability(bookingRepo, date(2024, 1, 1))

	bookingRepo.EXPECT().HasRoomOverlap(mock.Anything, "r1", mock.Anything, mock.Anything).Return(false, errors.New("db down"))

	_, err := a.IsAvailable(context.Background(), "r1", date(2024, 1, 2), date(2024, 1, 3))
	assert.Error(t, err)
}
