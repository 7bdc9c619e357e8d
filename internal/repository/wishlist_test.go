package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWishlistID = "9e8d7c6b-5a4f-4e3d-8c2b-1a0f9e8d7c6b"

func TestWishlistRepository_ToggleRoom(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		wantAdded bool
		wantErr   error
	}{
		{
			name: "adds missing room",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM wishlists WHERE id = \$1 FOR UPDATE`).
					WithArgs(testWishlistID).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testWishlistID))
				mock.ExpectExec(`DELETE FROM wishlist_rooms`).
					WithArgs(testWishlistID, testRoomID).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(`INSERT INTO wishlist_rooms`).
					WithArgs(testWishlistID, testRoomID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			wantAdded: true,
		},
		{
			name: "removes present room",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM wishlists WHERE id = \$1 FOR UPDATE`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testWishlistID))
				mock.ExpectExec(`DELETE FROM wishlist_rooms`).
					WithArgs(testWishlistID, testRoomID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			wantAdded: false,
		},
		{
			name: "wishlist gone",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM wishlists WHERE id = \$1 FOR UPDATE`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrWishlistNotFound,
		},
		{
			name: "room gone",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM wishlists WHERE id = \$1 FOR UPDATE`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testWishlistID))
				mock.ExpectExec(`DELETE FROM wishlist_rooms`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(`INSERT INTO wishlist_rooms`).
					WillReturnError(&pq.Error{Code: codeForeignKeyViolation})
				mock.ExpectRollback()
			},
			wantErr: domain.ErrRoomNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewWishlistRepo(db)
			tt.setup(mock)

			added, err := repo.ToggleRoom(context.Background(), testWishlistID, testRoomID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAdded, added)
		})
	}
}

func TestWishlistRepository_GetForUser_OtherUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWishlistRepo(db)
	repo.strategy = noRetry()

	mock.ExpectQuery(`FROM wishlists\s+WHERE id = \$1 AND user_id = \$2`).
		WithArgs(testWishlistID, "someone-else").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "user_id", "created_at", "updated_at"}))

	_, err := repo.GetForUser(context.Background(), testWishlistID, "someone-else")
	assert.ErrorIs(t, err, domain.ErrWishlistNotFound)
}
