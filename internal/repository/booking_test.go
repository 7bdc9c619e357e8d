package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRoomID = "7d3b9a52-94a4-4b7e-9d43-2a8e5f1c0b11"

func newRoomBooking() *domain.Booking {
	roomID := testRoomID
	in := time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC)
	out := time.Date(2026, 11, 12, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	return &domain.Booking{
		ID:        "b5c1e0f2-3a4b-4c5d-8e9f-0a1b2c3d4e5f",
		Kind:      domain.BookingKindRoom,
		UserID:    "0f6c2e1a-5b3d-4c8e-a7f9-1e2d3c4b5a69",
		RoomID:    &roomID,
		CheckIn:   &in,
		CheckOut:  &out,
		Guests:    2,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestBookingRepository_CreateRoomBooking(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock, b *domain.Booking)
		wantErr error
	}{
		{
			name: "success",
			setup: func(mock sqlmock.Sqlmock, b *domain.Booking) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM rooms WHERE id = \$1 FOR UPDATE`).
					WithArgs(testRoomID).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testRoomID))
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs(testRoomID, *b.CheckIn, *b.CheckOut).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectExec(`INSERT INTO bookings`).
					WithArgs(b.ID, domain.BookingKindRoom, b.UserID, testRoomID,
						*b.CheckIn, *b.CheckOut, b.Guests, b.CreatedAt, b.UpdatedAt).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "room does not exist",
			setup: func(mock sqlmock.Sqlmock, _ *domain.Booking) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM rooms WHERE id = \$1 FOR UPDATE`).
					WithArgs(testRoomID).
					WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			wantErr: domain.ErrRoomNotFound,
		},
		{
			name: "overlapping booking",
			setup: func(mock sqlmock.Sqlmock, b *domain.Booking) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM rooms WHERE id = \$1 FOR UPDATE`).
					WithArgs(testRoomID).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testRoomID))
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs(testRoomID, *b.CheckIn, *b.CheckOut).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrRoomAlreadyBooked,
		},
		{
			name: "exclusion constraint wins the race",
			setup: func(mock sqlmock.Sqlmock, _ *domain.Booking) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM rooms WHERE id = \$1 FOR UPDATE`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testRoomID))
				mock.ExpectQuery(`SELECT EXISTS`).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectExec(`INSERT INTO bookings`).
					WillReturnError(&pq.Error{Code: codeExclusionViolation, Constraint: "bookings_room_no_overlap"})
				mock.ExpectRollback()
			},
			wantErr: domain.ErrRoomAlreadyBooked,
		},
		{
			name: "guests check",
			setup: func(mock sqlmock.Sqlmock, _ *domain.Booking) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM rooms WHERE id = \$1 FOR UPDATE`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testRoomID))
				mock.ExpectQuery(`SELECT EXISTS`).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectExec(`INSERT INTO bookings`).
					WillReturnError(&pq.Error{Code: codeCheckViolation, Constraint: "bookings_guests_check"})
				mock.ExpectRollback()
			},
			wantErr: domain.ErrConstraint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewBookingRepo(db)
			repo.strategy = noRetry()

			b := newRoomBooking()
			tt.setup(mock, b)

			err := repo.CreateRoomBooking(context.Background(), b)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBookingRepository_CreateRoomBooking_RequiresDates(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewBookingRepo(db)

	b := newRoomBooking()
	b.CheckOut = nil

	err := repo.CreateRoomBooking(context.Background(), b)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingRepository_MarkReminded(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)
	repo.strategy = noRetry()

	b := newRoomBooking()
	cols := []string{"id", "kind", "user_id", "room_id", "experience_id", "check_in", "check_out",
		"experience_time", "guests", "created_at", "updated_at"}

	mock.ExpectQuery(`UPDATE bookings\s+SET reminded_at = NOW\(\)`).
		WithArgs(*b.CheckIn).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			b.ID, "room", b.UserID, testRoomID, nil, *b.CheckIn, *b.CheckOut,
			nil, 2, b.CreatedAt, b.UpdatedAt,
		))

	got, err := repo.MarkReminded(context.Background(), *b.CheckIn)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)
	assert.Equal(t, domain.BookingKindRoom, got[0].Kind)
	require.NotNil(t, got[0].RoomID)
	assert.Equal(t, testRoomID, *got[0].RoomID)
	assert.Nil(t, got[0].ExperienceID)
	assert.Nil(t, got[0].ExperienceTime)
}

func TestBookingRepository_HasRoomOverlap(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)
	repo.strategy = noRetry()

	in := time.Date(2026, 11, 12, 0, 0, 0, 0, time.UTC)
	out := time.Date(2026, 11, 14, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(testRoomID, in, out).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	overlap, err := repo.HasRoomOverlap(context.Background(), testRoomID, in, out)

	require.NoError(t, err)
	assert.True(t, overlap)
}
