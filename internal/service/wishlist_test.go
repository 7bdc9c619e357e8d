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

func newWishlistService(t *testing.T) (*WishlistService, *mocks.MockWishlistRepo, *mocks.MockRoomRepo, *mocks.MockExperienceRepo) {
	wishlistRepo := mocks.NewMockWishlistRepo(t)
	roomRepo := mocks.NewMockRoomRepo(t)
	experienceRepo := mocks.NewMockExperienceRepo(t)
	return NewWishlistService(wishlistRepo, roomRepo, experienceRepo, newTestLogger(t)), wishlistRepo, roomRepo, experienceRepo
}

func TestWishlistService_RequiresIdentity(t *testing.T) {
	svc, _, _, _ := newWishlistService(t)
	ctx := context.Background()

	_, err := svc.List(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = svc.Create(ctx, "", "Summer")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = svc.ToggleRoom(ctx, "", "w1", "r1")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestWishlistService_Create(t *testing.T) {
	svc, wishlistRepo, _, _ := newWishlistService(t)

	wishlistRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Wishlist")).Return(nil)

	w, err := svc.Create(context.Background(), "u1", "Summer")

	require.NoError(t, err)
	assert.Equal(t, "Summer", w.Name)
	assert.Equal(t, "u1", w.UserID)
	assert.Empty(t, w.Rooms)

	_, err = svc.Create(context.Background(), "u1", "  ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWishlistService_ToggleRoomTwiceRestoresMembership(t *testing.T) {
	svc, wishlistRepo, roomRepo, _ := newWishlistService(t)
	wishlist := &domain.Wishlist{ID: "w1", UserID: "u1"}

	wishlistRepo.EXPECT().GetForUser(mock.Anything, "w1", "u1").Return(wishlist, nil)
	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(newRoom("r1"), nil)
	wishlistRepo.EXPECT().ToggleRoom(mock.Anything, "w1", "r1").Return(true, nil).Once()
	wishlistRepo.EXPECT().ToggleRoom(mock.Anything, "w1", "r1").Return(false, nil).Once()

	added, err := svc.ToggleRoom(context.Background(), "u1", "w1", "r1")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = svc.ToggleRoom(context.Background(), "u1", "w1", "r1")
	require.NoError(t, err)
	assert.False(t, added)
}

func TestWishlistService_ForeignWishlistIsNotFound(t *testing.T) {
	svc, wishlistRepo, _, _ := newWishlistService(t)

	wishlistRepo.EXPECT().GetForUser(mock.Anything, "w1", "intruder").Return(nil, domain.ErrWishlistNotFound)

	_, err := svc.ToggleRoom(context.Background(), "intruder", "w1", "r1")
	assert.ErrorIs(t, err, domain.ErrWishlistNotFound)

	err = svc.Delete(context.Background(), "intruder", "w1")
	assert.ErrorIs(t, err, domain.ErrWishlistNotFound)
	wishlistRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestWishlistService_ToggleRoom_UnknownRoom(t *testing.T) {
	svc, wishlistRepo, roomRepo, _ := newWishlistService(t)

	wishlistRepo.EXPECT().GetForUser(mock.Anything, "w1", "u1").Return(&domain.Wishlist{ID: "w1", UserID: "u1"}, nil)
	roomRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrRoomNotFound)

	_, err := svc.ToggleRoom(context.Background(), "u1", "w1", "missing")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestWishlistService_ToggleExperience(t *testing.T) {
	svc, wishlistRepo, _, experienceRepo := newWishlistService(t)

	wishlistRepo.EXPECT().GetForUser(mock.Anything, "w1", "u1").Return(&domain.Wishlist{ID: "w1", UserID: "u1"}, nil)
	experienceRepo.EXPECT().GetByID(mock.Anything, "e1").Return(newExperience("e1", "host"), nil)
	wishlistRepo.EXPECT().ToggleExperience(mock.Anything, "w1", "e1").Return(true, nil)

	added, err := svc.ToggleExperience(context.Background(), "u1", "w1", "e1")
	require.NoError(t, err)
	assert.True(t, added)
}

func TestWishlistService_Rename(t *testing.T) {
	svc, wishlistRepo, _, _ := newWishlistService(t)

	wishlistRepo.EXPECT().GetForUser(mock.Anything, "w1", "u1").Return(&domain.Wishlist{ID: "w1", UserID: "u1", Name: "old"}, nil)
	wishlistRepo.EXPECT().Rename(mock.Anything, mock.MatchedBy(func(w *domain.Wishlist) bool {
		return w.Name == "new"
	})).Return(nil)

	w, err := svc.Rename(context.Background(), "u1", "w1", "new")
	require.NoError(t, err)
	assert.Equal(t, "new", w.Name)
}
