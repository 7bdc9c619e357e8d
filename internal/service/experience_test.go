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

func experienceInput() domain.CreateExperienceInput {
	return domain.CreateExperienceInput{
		Country:    "Korea",
		City:       "Seoul",
		Name:       "Kimchi class",
		Price:      50,
		Start:      "10:00:00",
		End:        "12:00:00",
		CategoryID: "c-exp",
		PerkIDs:    []string{"p1"},
	}
}

func TestExperienceService_Create(t *testing.T) {
	experienceRepo := mocks.NewMockExperienceRepo(t)
	categoryRepo := mocks.NewMockCategoryRepo(t)
	svc := NewExperienceService(experienceRepo, categoryRepo, newTestLogger(t))

	categoryRepo.EXPECT().GetByID(mock.Anything, "c-exp").
		Return(&domain.Category{ID: "c-exp", Kind: domain.CategoryKindExperiences}, nil)
	experienceRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e *domain.Experience) bool {
		return e.Host.ID == "u1" && e.Category.ID == "c-exp"
	}), []string{"p1"}).Return(nil)
	experienceRepo.EXPECT().GetByID(mock.Anything, mock.Anything).Return(newExperience("e1", "u1"), nil)

	got, err := svc.Create(context.Background(), "u1", experienceInput())

	require.NoError(t, err)
	assert.Equal(t, "u1", got.Host.ID)
}

func TestExperienceService_Create_RoomsCategoryRejected(t *testing.T) {
	experienceRepo := mocks.NewMockExperienceRepo(t)
	categoryRepo := mocks.NewMockCategoryRepo(t)
	svc := NewExperienceService(experienceRepo, categoryRepo, newTestLogger(t))

	categoryRepo.EXPECT().GetByID(mock.Anything, "c-exp").
		Return(&domain.Category{ID: "c-exp", Kind: domain.CategoryKindRooms}, nil)

	_, err := svc.Create(context.Background(), "u1", experienceInput())

	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestExperienceService_Create_BadTime(t *testing.T) {
	svc := NewExperienceService(mocks.NewMockExperienceRepo(t), mocks.NewMockCategoryRepo(t), newTestLogger(t))

	in := experienceInput()
	in.Start = "10am"
	_, err := svc.Create(context.Background(), "u1", in)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExperienceService_Update_NonHost(t *testing.T) {
	experienceRepo := mocks.NewMockExperienceRepo(t)
	svc := NewExperienceService(experienceRepo, mocks.NewMockCategoryRepo(t), newTestLogger(t))

	experienceRepo.EXPECT().GetByID(mock.Anything, "e1").Return(newExperience("e1", "host"), nil)

	_, err := svc.Update(context.Background(), "guest", "e1", domain.UpdateExperienceInput{Name: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = svc.Delete(context.Background(), "guest", "e1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestExperienceService_Update_UnknownPerk(t *testing.T) {
	experienceRepo := mocks.NewMockExperienceRepo(t)
	svc := NewExperienceService(experienceRepo, mocks.NewMockCategoryRepo(t), newTestLogger(t))

	experienceRepo.EXPECT().GetByID(mock.Anything, "e1").Return(newExperience("e1", "host"), nil)
	experienceRepo.EXPECT().Update(mock.Anything, "e1", []string{"999"}, mock.Anything).Return(domain.ErrInvalidPerk)

	_, err := svc.Update(context.Background(), "host", "e1", domain.UpdateExperienceInput{PerkIDs: []string{"999"}})
	assert.ErrorIs(t, err, domain.ErrInvalidPerk)
}

func TestExperienceService_Update_AppliesToLockedRow(t *testing.T) {
	experienceRepo := mocks.NewMockExperienceRepo(t)
	svc := NewExperienceService(experienceRepo, mocks.NewMockCategoryRepo(t), newTestLogger(t))

	locked := newExperience("e1", "host")
	locked.Price = 70

	experienceRepo.EXPECT().GetByID(mock.Anything, "e1").Return(newExperience("e1", "host"), nil).Once()
	experienceRepo.EXPECT().Update(mock.Anything, "e1", []string(nil), mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ []string, apply func(*domain.Experience) error) error {
			return apply(locked)
		})
	experienceRepo.EXPECT().GetByID(mock.Anything, "e1").Return(nil, errors.New("connection reset")).Once()

	got, err := svc.Update(context.Background(), "host", "e1", domain.UpdateExperienceInput{Name: ptr("Tteok class")})

	require.NoError(t, err)
	assert.Equal(t, "Tteok class", got.Name)
	assert.Equal(t, 70, got.Price)
}
