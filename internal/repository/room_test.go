package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	wifiID    = "1a2b3c4d-5e6f-4a1b-9c2d-3e4f5a6b7c8d"
	kitchenID = "2b3c4d5e-6f7a-4b2c-8d3e-4f5a6b7c8d9e"
)

func newTestRoom() *domain.Room {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	return &domain.Room{
		ID:        testRoomID,
		Title:     "Hanok near Bukchon",
		Country:   "Korea",
		City:      "Seoul",
		Price:     120,
		Rooms:     2,
		Toilets:   1,
		Kind:      domain.RoomKindEntirePlace,
		Owner:     domain.UserSummary{ID: "0f6c2e1a-5b3d-4c8e-a7f9-1e2d3c4b5a69"},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestRoomRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepo(db)

	room := newTestRoom()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM amenities WHERE id = ANY`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(wifiID).AddRow(kitchenID))
	mock.ExpectExec(`INSERT INTO rooms`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO room_amenities`).
		WithArgs(testRoomID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), room, []string{wifiID, kitchenID, wifiID})
	assert.NoError(t, err)
}

func TestRoomRepository_Create_UnknownAmenity(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepo(db)

	// Одно из удобств не найдено: комната не должна появиться
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM amenities WHERE id = ANY`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(wifiID))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), newTestRoom(), []string{wifiID, kitchenID})

	require.ErrorIs(t, err, domain.ErrInvalidAmenity)
	assert.Contains(t, err.Error(), kitchenID)
}

func TestRoomRepository_Create_MalformedAmenity(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepo(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := repo.Create(context.Background(), newTestRoom(), []string{"wifi"})
	assert.ErrorIs(t, err, domain.ErrInvalidAmenity)
}

func lockedRoomRows(room *domain.Room) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "country", "city", "price", "rooms", "toilets", "description",
		"address", "pet_friendly", "kind", "created_at", "updated_at",
		"owner_id", "username", "avatar", "email",
		"category_id", "category_name", "category_kind", "category_created_at", "category_updated_at",
	}).AddRow(
		room.ID, room.Title, room.Country, room.City, room.Price, room.Rooms, room.Toilets, room.Description,
		room.Address, room.PetFriendly, string(room.Kind), room.CreatedAt, room.UpdatedAt,
		room.Owner.ID, "host", "", "host@example.com",
		nil, nil, nil, nil, nil,
	)
}

func TestRoomRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepo(db)

	room := newTestRoom()
	room.Description = "written by another request"

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM rooms r .* WHERE r.id = \$1 FOR UPDATE OF r`).
		WithArgs(testRoomID).
		WillReturnRows(lockedRoomRows(room))
	mock.ExpectQuery(`SELECT id FROM amenities WHERE id = ANY`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(wifiID))
	mock.ExpectExec(`UPDATE rooms`).
		WithArgs(testRoomID, "Renamed", room.Country, room.City, 300, room.Rooms, room.Toilets,
			"written by another request", room.Address, room.PetFriendly, string(room.Kind),
			nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO room_amenities`).
		WithArgs(testRoomID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), testRoomID, []string{wifiID}, func(r *domain.Room) error {
		r.Title = "Renamed"
		r.Price = 300
		return nil
	})
	assert.NoError(t, err)
}

func TestRoomRepository_Update_UnknownAmenity(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepo(db)

	// Неизвестное удобство: UPDATE rooms не выполняется, комната остаётся прежней
	mock.ExpectBegin()
	mock.ExpectQuery(`FROM rooms r .* WHERE r.id = \$1 FOR UPDATE OF r`).
		WithArgs(testRoomID).
		WillReturnRows(lockedRoomRows(newTestRoom()))
	mock.ExpectQuery(`SELECT id FROM amenities WHERE id = ANY`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(wifiID))
	mock.ExpectRollback()

	applied := false
	err := repo.Update(context.Background(), testRoomID, []string{wifiID, kitchenID}, func(r *domain.Room) error {
		applied = true
		r.Title = "Renamed"
		return nil
	})

	require.ErrorIs(t, err, domain.ErrInvalidAmenity)
	assert.Contains(t, err.Error(), kitchenID)
	assert.True(t, applied)
}

func TestRoomRepository_Update_ApplyError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM rooms r .* WHERE r.id = \$1 FOR UPDATE OF r`).
		WithArgs(testRoomID).
		WillReturnRows(lockedRoomRows(newTestRoom()))
	mock.ExpectRollback()

	err := repo.Update(context.Background(), testRoomID, []string{wifiID}, func(*domain.Room) error {
		return domain.ErrForbidden
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRoomRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM rooms r .* WHERE r.id = \$1 FOR UPDATE OF r`).
		WithArgs(testRoomID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := repo.Update(context.Background(), testRoomID, nil, func(*domain.Room) error {
		t.Fatal("apply must not run for a missing room")
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestRoomRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepo(db)
	repo.strategy = noRetry()

	mock.ExpectExec(`DELETE FROM rooms WHERE id = \$1`).
		WithArgs(testRoomID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), testRoomID)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}
