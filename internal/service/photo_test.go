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

func TestPhotoService_AddToRoom(t *testing.T) {
	photoRepo := mocks.NewMockPhotoRepo(t)
	roomRepo := mocks.NewMockRoomRepo(t)
	svc := NewPhotoService(photoRepo, roomRepo, mocks.NewMockExperienceRepo(t))

	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(newRoom("r1", withOwner("owner")), nil)
	photoRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Photo")).Return(nil)

	photo, err := svc.AddToRoom(context.Background(), "owner", "r1", domain.PhotoInput{File: "https://cdn/p.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "r1", *photo.RoomID)
	assert.Equal(t, "owner", photo.OwnerID)

	_, err = svc.AddToRoom(context.Background(), "stranger", "r1", domain.PhotoInput{File: "x"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPhotoService_Delete(t *testing.T) {
	photoRepo := mocks.NewMockPhotoRepo(t)
	svc := NewPhotoService(photoRepo, mocks.NewMockRoomRepo(t), mocks.NewMockExperienceRepo(t))

	photoRepo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Photo{ID: "p1", OwnerID: "host"}, nil)
	photoRepo.EXPECT().Delete(mock.Anything, "p1").Return(nil).Once()

	assert.ErrorIs(t, svc.Delete(context.Background(), "guest", "p1"), domain.ErrForbidden)
	assert.ErrorIs(t, svc.Delete(context.Background(), "", "p1"), domain.ErrUnauthenticated)
	assert.NoError(t, svc.Delete(context.Background(), "host", "p1"))
}
