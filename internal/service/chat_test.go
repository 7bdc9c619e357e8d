package service

import (
	"context"
	"testing"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChatService_CreateRoom_IncludesCaller(t *testing.T) {
	chatRepo := mocks.NewMockChatRepo(t)
	svc := NewChatService(chatRepo, mocks.NewMockUserRepo(t))

	chatRepo.EXPECT().CreateRoom(mock.Anything, mock.Anything, []string{"u1", "u2"}).Return(nil)

	room, err := svc.CreateRoom(context.Background(), "u1", []string{"u2", "u1", "u2"})

	require.NoError(t, err)
	assert.Len(t, room.Users, 2)

	_, err = svc.CreateRoom(context.Background(), "u1", []string{"u1"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestChatService_Messages_MembersOnly(t *testing.T) {
	chatRepo := mocks.NewMockChatRepo(t)
	svc := NewChatService(chatRepo, mocks.NewMockUserRepo(t))

	chatRepo.EXPECT().IsMember(mock.Anything, "c1", "outsider").Return(false, nil)

	_, err := svc.ListMessages(context.Background(), "outsider", "c1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.SendMessage(context.Background(), "outsider", "c1", "hi")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.ListMessages(context.Background(), "", "c1")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestChatService_SendMessage(t *testing.T) {
	chatRepo := mocks.NewMockChatRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewChatService(chatRepo, userRepo)

	chatRepo.EXPECT().IsMember(mock.Anything, "c1", "u1").Return(true, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Username: "alice"}, nil)
	chatRepo.EXPECT().CreateMessage(mock.Anything, mock.AnythingOfType("*domain.Message")).Return(nil)

	msg, err := svc.SendMessage(context.Background(), "u1", "c1", "hello")

	require.NoError(t, err)
	assert.Equal(t, "hello", msg.Text)
	assert.Equal(t, "alice", msg.User.Username)
	assert.Equal(t, "c1", msg.ChattingRoomID)
}
