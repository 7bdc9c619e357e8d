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

func TestCategoryService_Create(t *testing.T) {
	repo := mocks.NewMockCategoryRepo(t)
	svc := NewCategoryService(repo)

	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Category")).Return(nil)

	c, err := svc.Create(context.Background(), "u1", domain.CategoryInput{Name: "Tiny homes", Kind: domain.CategoryKindRooms})
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryKindRooms, c.Kind)

	_, err = svc.Create(context.Background(), "u1", domain.CategoryInput{Name: "x", Kind: "boats"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), "", domain.CategoryInput{Name: "x", Kind: domain.CategoryKindRooms})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestAmenityService_Update(t *testing.T) {
	repo := mocks.NewMockAmenityRepo(t)
	svc := NewAmenityService(repo)

	repo.EXPECT().GetByID(mock.Anything, "a1").Return(&domain.Amenity{ID: "a1", Name: "Wifi"}, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	a, err := svc.Update(context.Background(), "u1", "a1", domain.AmenityPatch{Description: ptr("fast")})
	require.NoError(t, err)
	assert.Equal(t, "Wifi", a.Name)
	assert.Equal(t, "fast", *a.Description)
}

func TestPerkService_Delete(t *testing.T) {
	repo := mocks.NewMockPerkRepo(t)
	svc := NewPerkService(repo)

	repo.EXPECT().Delete(mock.Anything, "p1").Return(domain.ErrPerkNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), "u1", "p1"), domain.ErrPerkNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), "", "p1"), domain.ErrUnauthenticated)
}
