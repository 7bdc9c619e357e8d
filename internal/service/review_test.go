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

func TestReviewService_ListForRoom_Pages(t *testing.T) {
	tests := []struct {
		page       int
		wantOffset int
	}{
		{page: 0, wantOffset: 0},
		{page: 1, wantOffset: 0},
		{page: 2, wantOffset: 3},
		{page: -4, wantOffset: 0},
	}

	for _, tt := range tests {
		reviewRepo := mocks.NewMockReviewRepo(t)
		roomRepo := mocks.NewMockRoomRepo(t)
		svc := NewReviewService(reviewRepo, roomRepo, mocks.NewMockExperienceRepo(t), mocks.NewMockUserRepo(t), 0)

		roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(newRoom("r1"), nil)
		reviewRepo.EXPECT().ListByRoom(mock.Anything, "r1", 3, tt.wantOffset).Return([]*domain.Review{}, nil)

		_, err := svc.ListForRoom(context.Background(), "r1", tt.page)
		require.NoError(t, err)
	}
}

func TestReviewService_CreateForRoom(t *testing.T) {
	reviewRepo := mocks.NewMockReviewRepo(t)
	roomRepo := mocks.NewMockRoomRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewReviewService(reviewRepo, roomRepo, mocks.NewMockExperienceRepo(t), userRepo, 3)

	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(newRoom("r1"), nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Username: "alice"}, nil)
	reviewRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Review")).Return(nil)

	review, err := svc.CreateForRoom(context.Background(), "u1", "r1", domain.ReviewInput{Payload: "lovely", Rating: 5})

	require.NoError(t, err)
	assert.Equal(t, "alice", review.User.Username)
	assert.Equal(t, "r1", *review.RoomID)
	assert.Nil(t, review.ExperienceID)
}

func TestReviewService_CreateForRoom_Validation(t *testing.T) {
	svc := NewReviewService(mocks.NewMockReviewRepo(t), mocks.NewMockRoomRepo(t), mocks.NewMockExperienceRepo(t), mocks.NewMockUserRepo(t), 3)
	ctx := context.Background()

	_, err := svc.CreateForRoom(ctx, "", "r1", domain.ReviewInput{Payload: "ok", Rating: 3})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = svc.CreateForRoom(ctx, "u1", "r1", domain.ReviewInput{Payload: "ok", Rating: 6})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.CreateForRoom(ctx, "u1", "r1", domain.ReviewInput{Payload: "", Rating: 3})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReviewService_ListForExperience_NotFound(t *testing.T) {
	experienceRepo := mocks.NewMockExperienceRepo(t)
	svc := NewReviewService(mocks.NewMockReviewRepo(t), mocks.NewMockRoomRepo(t), experienceRepo, mocks.NewMockUserRepo(t), 3)

	experienceRepo.EXPECT().GetByID(mock.Anything, "e1").Return(nil, domain.ErrExperienceNotFound)

	_, err := svc.ListForExperience(context.Background(), "e1", 1)
	assert.ErrorIs(t, err, domain.ErrExperienceNotFound)
}
