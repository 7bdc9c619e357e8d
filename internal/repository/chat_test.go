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

const testChatID = "3c4d5e6f-7a8b-4c3d-9e4f-5a6b7c8d9e0f"

func TestChatRepository_IsMember(t *testing.T) {
	tests := []struct {
		name       string
		roomExists bool
		member     bool
		wantErr    error
	}{
		{name: "member", roomExists: true, member: true},
		{name: "stranger", roomExists: true, member: false},
		{name: "no such room", roomExists: false, wantErr: domain.ErrChatNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewChatRepo(db)
			repo.strategy = noRetry()

			mock.ExpectQuery(`SELECT EXISTS`).
				WithArgs(testChatID, "u1").
				WillReturnRows(sqlmock.NewRows([]string{"room", "member"}).AddRow(tt.roomExists, tt.member))

			member, err := repo.IsMember(context.Background(), testChatID, "u1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.member, member)
		})
	}
}

func TestChatRepository_ListRoomsByUser_GroupsMembers(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChatRepo(db)
	repo.strategy = noRetry()

	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	cols := []string{"id", "created_at", "updated_at", "uid", "username", "avatar", "email"}
	mock.ExpectQuery(`FROM chatting_rooms cr`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(testChatID, now, now, "u1", "alice", "", "a@example.com").
			AddRow(testChatID, now, now, "u2", "bob", "", "b@example.com").
			AddRow("other", now, now, "u1", "alice", "", "a@example.com"))

	rooms, err := repo.ListRoomsByUser(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Len(t, rooms[0].Users, 2)
	assert.Equal(t, "bob", rooms[0].Users[1].Username)
	assert.Len(t, rooms[1].Users, 1)
}
