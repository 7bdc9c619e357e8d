package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type roomDeps struct {
	roomRepo     *mocks.MockRoomRepo
	categoryRepo *mocks.MockCategoryRepo
	wishlistRepo *mocks.MockWishlistRepo
	photoRepo    *mocks.MockPhotoRepo
}

func newRoomService(t *testing.T) (*RoomService, roomDeps) {
	d := roomDeps{
		roomRepo:     mocks.NewMockRoomRepo(t),
		categoryRepo: mocks.NewMockCategoryRepo(t),
		wishlistRepo: mocks.NewMockWishlistRepo(t),
		photoRepo:    mocks.NewMockPhotoRepo(t),
	}
	return NewRoomService(d.roomRepo, d.categoryRepo, d.wishlistRepo, d.photoRepo, newTestLogger(t)), d
}

func roomInput() domain.CreateRoomInput {
	return domain.CreateRoomInput{
		Title:      "Seaside flat",
		Country:    "Korea",
		City:       "Busan",
		Price:      100,
		Rooms:      2,
		Toilets:    1,
		Address:    "1 Beach road",
		Kind:       domain.RoomKindEntirePlace,
		CategoryID: "c-rooms",
		AmenityIDs: []string{"a1", "a2"},
	}
}

func TestRoomService_Create(t *testing.T) {
	svc, d := newRoomService(t)
	category := &domain.Category{ID: "c-rooms", Kind: domain.CategoryKindRooms}

	var created *domain.Room
	d.categoryRepo.EXPECT().GetByID(mock.Anything, "c-rooms").Return(category, nil)
	d.roomRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Room"), []string{"a1", "a2"}).
		Run(func(_ context.Context, room *domain.Room, _ []string) { created = room }).
		Return(nil)
	d.roomRepo.EXPECT().GetByID(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string) (*domain.Room, error) {
			return newRoom(created.ID, withOwner("u1"), withAmenities("a1", "a2")), nil
		})
	d.roomRepo.EXPECT().Rating(mock.Anything, mock.Anything).Return(4.3333, nil)
	d.photoRepo.EXPECT().ListByRoom(mock.Anything, mock.Anything).Return(nil, nil)
	d.wishlistRepo.EXPECT().HasRoom(mock.Anything, "u1", mock.Anything).Return(false, nil)

	got, err := svc.Create(context.Background(), "u1", roomInput())

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "u1", created.Owner.ID)
	assert.Equal(t, category, created.Category)
	assert.Equal(t, 2, got.TotalAmenities)
	assert.Equal(t, 4.33, got.Rating)
	assert.True(t, got.IsOwner)
	assert.False(t, got.IsLiked)
}

func TestRoomService_Create_Anonymous(t *testing.T) {
	svc, _ := newRoomService(t)

	_, err := svc.Create(context.Background(), "", roomInput())

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestRoomService_Create_CategoryErrors(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		setup func(d roomDeps)
	}{
		{
			name:  "missing category",
			id:    "",
			setup: func(roomDeps) {},
		},
		{
			name: "unknown category",
			id:   "nope",
			setup: func(d roomDeps) {
				d.categoryRepo.EXPECT().GetByID(mock.Anything, "nope").Return(nil, domain.ErrCategoryNotFound)
			},
		},
		{
			name: "experiences category",
			id:   "c-exp",
			setup: func(d roomDeps) {
				d.categoryRepo.EXPECT().GetByID(mock.Anything, "c-exp").
					Return(&domain.Category{ID: "c-exp", Kind: domain.CategoryKindExperiences}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newRoomService(t)
			tt.setup(d)

			in := roomInput()
			in.CategoryID = tt.id
			_, err := svc.Create(context.Background(), "u1", in)

			assert.ErrorIs(t, err, domain.ErrInvalidCategory)
			assert.NotErrorIs(t, err, domain.ErrCategoryNotFound)
			d.roomRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRoomService_Create_UnknownAmenity(t *testing.T) {
	svc, d := newRoomService(t)

	d.categoryRepo.EXPECT().GetByID(mock.Anything, "c-rooms").
		Return(&domain.Category{ID: "c-rooms", Kind: domain.CategoryKindRooms}, nil)
	d.roomRepo.EXPECT().Create(mock.Anything, mock.Anything, []string{"a1", "999"}).Return(domain.ErrInvalidAmenity)

	in := roomInput()
	in.AmenityIDs = []string{"a1", "999"}
	_, err := svc.Create(context.Background(), "u1", in)

	assert.ErrorIs(t, err, domain.ErrInvalidAmenity)
}

func TestRoomService_Create_InvalidKind(t *testing.T) {
	svc, _ := newRoomService(t)

	in := roomInput()
	in.Kind = "castle"
	_, err := svc.Create(context.Background(), "u1", in)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRoomService_Update_NonOwner(t *testing.T) {
	svc, d := newRoomService(t)

	d.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(newRoom("r1", withOwner("owner")), nil)

	_, err := svc.Update(context.Background(), "stranger", "r1", domain.UpdateRoomInput{Title: ptr("x")})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	d.roomRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRoomService_Update_AnonymousCheckedFirst(t *testing.T) {
	svc, _ := newRoomService(t)

	_, err := svc.Update(context.Background(), "", "r1", domain.UpdateRoomInput{Title: ptr("x")})

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestRoomService_Update_InvalidCategoryLeavesRoom(t *testing.T) {
	svc, d := newRoomService(t)

	d.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(newRoom("r1", withOwner("u1")), nil)
	d.categoryRepo.EXPECT().GetByID(mock.Anything, "c-exp").
		Return(&domain.Category{ID: "c-exp", Kind: domain.CategoryKindExperiences}, nil)

	_, err := svc.Update(context.Background(), "u1", "r1", domain.UpdateRoomInput{
		Title:      ptr("renamed"),
		CategoryID: ptr("c-exp"),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
	d.roomRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRoomService_Update_Owner(t *testing.T) {
	svc, d := newRoomService(t)
	original := newRoom("r1", withOwner("u1"), withAmenities("a1"))

	// Строка под блокировкой уже содержит чужое изменение описания
	locked := newRoom("r1", withOwner("u1"), withAmenities("a1"))
	locked.Description = "updated meanwhile"

	d.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(original, nil).Once()
	d.roomRepo.EXPECT().Update(mock.Anything, "r1", []string{"a2"}, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ []string, apply func(*domain.Room) error) error {
			return apply(locked)
		})
	d.roomRepo.EXPECT().GetByID(mock.Anything, "r1").
		Return(newRoom("r1", withOwner("u1"), withAmenities("a1", "a2")), nil).Once()
	d.roomRepo.EXPECT().Rating(mock.Anything, "r1").Return(0, nil)
	d.photoRepo.EXPECT().ListByRoom(mock.Anything, "r1").Return([]domain.Photo{}, nil)
	d.wishlistRepo.EXPECT().HasRoom(mock.Anything, "u1", "r1").Return(true, nil)

	got, err := svc.Update(context.Background(), "u1", "r1", domain.UpdateRoomInput{
		Title:      ptr("renamed"),
		Price:      ptr(250),
		AmenityIDs: []string{"a2"},
	})

	require.NoError(t, err)
	assert.Equal(t, "renamed", locked.Title)
	assert.Equal(t, 250, locked.Price)
	assert.Equal(t, "updated meanwhile", locked.Description)
	assert.False(t, locked.UpdatedAt.IsZero())
	assert.Equal(t, "Seaside flat", original.Title, "loaded room must not be mutated")
	assert.Equal(t, 2, got.TotalAmenities)
	assert.True(t, got.IsLiked)
}

func TestRoomService_Update_InvalidPatchRollsBack(t *testing.T) {
	svc, d := newRoomService(t)

	var applyErr error
	d.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(newRoom("r1", withOwner("u1")), nil)
	d.roomRepo.EXPECT().Update(mock.Anything, "r1", []string(nil), mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ []string, apply func(*domain.Room) error) error {
			applyErr = apply(newRoom("r1", withOwner("u1")))
			return applyErr
		})

	_, err := svc.Update(context.Background(), "u1", "r1", domain.UpdateRoomInput{Title: ptr("  ")})

	assert.ErrorIs(t, applyErr, domain.ErrValidation)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRoomService_Create_ReloadFails(t *testing.T) {
	svc, d := newRoomService(t)

	d.categoryRepo.EXPECT().GetByID(mock.Anything, "c-rooms").
		Return(&domain.Category{ID: "c-rooms", Kind: domain.CategoryKindRooms}, nil)
	d.roomRepo.EXPECT().Create(mock.Anything, mock.Anything, []string{"a1", "a2"}).Return(nil)
	d.roomRepo.EXPECT().GetByID(mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	got, err := svc.Create(context.Background(), "u1", roomInput())

	require.NoError(t, err)
	assert.Equal(t, "Seaside flat", got.Room.Title)
	assert.Equal(t, "u1", got.Room.Owner.ID)
	assert.True(t, got.IsOwner)
	assert.NotNil(t, got.Photos)
}

func TestRoomService_Delete(t *testing.T) {
	t.Run("non owner", func(t *testing.T) {
		svc, d := newRoomService(t)
		d.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(newRoom("r1", withOwner("owner")), nil)

		err := svc.Delete(context.Background(), "stranger", "r1")

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("owner", func(t *testing.T) {
		svc, d := newRoomService(t)
		d.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(newRoom("r1", withOwner("owner")), nil)
		d.roomRepo.EXPECT().Delete(mock.Anything, "r1").Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "owner", "r1"))
	})

	t.Run("missing", func(t *testing.T) {
		svc, d := newRoomService(t)
		d.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(nil, domain.ErrRoomNotFound)

		assert.ErrorIs(t, svc.Delete(context.Background(), "owner", "r1"), domain.ErrRoomNotFound)
	})
}

func TestRoomService_List_MarksOwnRooms(t *testing.T) {
	svc, d := newRoomService(t)

	d.roomRepo.EXPECT().List(mock.Anything).Return([]*domain.RoomListItem{
		{ID: "r1", OwnerID: "u1", Rating: 3.456},
		{ID: "r2", OwnerID: "u2"},
	}, nil)

	rooms, err := svc.List(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.True(t, rooms[0].IsOwner)
	assert.Equal(t, 3.46, rooms[0].Rating)
	assert.False(t, rooms[1].IsOwner)
}

func TestRoomService_Get_Anonymous(t *testing.T) {
	svc, d := newRoomService(t)

	d.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(newRoom("r1", withAmenities("a1", "a2", "a3")), nil)
	d.roomRepo.EXPECT().Rating(mock.Anything, "r1").Return(5, nil)
	d.photoRepo.EXPECT().ListByRoom(mock.Anything, "r1").Return(nil, nil)

	got, err := svc.Get(context.Background(), "", "r1")

	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalAmenities)
	assert.Equal(t, float64(5), got.Rating)
	assert.False(t, got.IsOwner)
	assert.False(t, got.IsLiked)
}
