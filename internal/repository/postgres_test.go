package repository

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		sqlDB.Close()
	})

	return &dbpg.DB{Master: sqlDB}, mock
}

func noRetry() retry.Strategy {
	return retry.Strategy{Attempts: 1}
}

func TestSplitIDs(t *testing.T) {
	a := "7d3b9a52-94a4-4b7e-9d43-2a8e5f1c0b11"
	b := "0f6c2e1a-5b3d-4c8e-a7f9-1e2d3c4b5a69"

	valid, malformed := splitIDs([]string{a, "nope", a, b, ""})

	assert.Equal(t, []string{a, b}, valid)
	assert.Equal(t, []string{"nope", ""}, malformed)
}

func TestIntegrityError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "check violation",
			err:     &pq.Error{Code: codeCheckViolation, Constraint: "rooms_price_check"},
			wantErr: domain.ErrConstraint,
		},
		{
			name:    "exclusion violation",
			err:     &pq.Error{Code: codeExclusionViolation, Constraint: "bookings_room_no_overlap"},
			wantErr: domain.ErrRoomAlreadyBooked,
		},
		{
			name: "unique violation is left to the caller",
			err:  &pq.Error{Code: codeUniqueViolation},
		},
		{
			name: "not a postgres error",
			err:  errors.New("boom"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := integrityError(tt.err)
			if tt.wantErr == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.wantErr)
		})
	}
}

func TestIntegrityError_NamesConstraint(t *testing.T) {
	err := integrityError(&pq.Error{Code: codeCheckViolation, Constraint: "bookings_guests_check"})
	assert.Contains(t, err.Error(), "bookings_guests_check")
}
