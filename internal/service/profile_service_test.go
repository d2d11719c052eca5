package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rhea-16/scholarLink/internal/models"
	appErrors "github.com/Rhea-16/scholarLink/pkg/errors"
)

type fakeProfileRepo struct {
	profiles map[string]*models.StudentProfile
	err      error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*models.StudentProfile{}}
}

func (f *fakeProfileRepo) FindByUserID(ctx context.Context, userID string) (*models.StudentProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.profiles[userID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return p, nil
}

func (f *fakeProfileRepo) Exists(ctx context.Context, userID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.profiles[userID]
	return ok, nil
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, profile *models.StudentProfile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

func validProfileRequest() models.RegisterProfileRequest {
	return models.RegisterProfileRequest{
		FirstName:       "Asha",
		LastName:        "Rao",
		Gender:          "female",
		DOB:             "2005-04-12",
		Religion:        "Hindu",
		State:           "Karnataka",
		District:        "Mysuru",
		City:            "Mysuru",
		Pincode:         "570001",
		PrimaryPhone:    "9876543210",
		Email:           "Asha@Example.com",
		Category:        "obc",
		Nationality:     "Indian",
		SchoolName:      "Govt PU College",
		CourseStream:    "Engineering",
		TenthPassYear:   2021,
		TenthPercentage: 91.5,
		FamilyIncome:    180000,
	}
}

func TestProfileServiceRegister(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo, nil, nil)

	profile, err := svc.Register(context.Background(), "u1", validProfileRequest())
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", profile.Email)
	assert.Equal(t, 2005, profile.DOB.Year())

	_, err = svc.Register(context.Background(), "u1", validProfileRequest())
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestProfileServiceValidation(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo(), nil, nil)

	req := validProfileRequest()
	req.Pincode = "12"
	_, err := svc.Register(context.Background(), "u1", req)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	req = validProfileRequest()
	req.Category = "unknown"
	_, err = svc.Register(context.Background(), "u1", req)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestProfileServiceGetAndCriteria(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo, nil, nil)

	_, err := svc.Get(context.Background(), "u1")
	assert.Equal(t, appErrors.ErrProfileIncomplete.Code, appErrors.FromError(err).Code)

	_, err = svc.Register(context.Background(), "u1", validProfileRequest())
	require.NoError(t, err)

	criteria, err := svc.Criteria(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Karnataka", criteria.State)
	assert.Equal(t, "obc", criteria.Category)
	assert.Equal(t, "female", criteria.Gender)
	assert.Equal(t, "Engineering", criteria.Branch)
	assert.Equal(t, "180000", criteria.IncomeLimit)

	repo.err = errors.New("db down")
	_, err = svc.Get(context.Background(), "u1")
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}

func TestProfileServiceUpdate(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo, nil, nil)

	_, err := svc.Update(context.Background(), "u1", validProfileRequest())
	assert.Equal(t, appErrors.ErrProfileIncomplete.Code, appErrors.FromError(err).Code)

	created, err := svc.Register(context.Background(), "u1", validProfileRequest())
	require.NoError(t, err)

	req := validProfileRequest()
	req.State = "Kerala"
	updated, err := svc.Update(context.Background(), "u1", req)
	require.NoError(t, err)
	assert.Equal(t, "Kerala", updated.State)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}
