package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Rhea-16/scholarLink/internal/models"
	appErrors "github.com/Rhea-16/scholarLink/pkg/errors"
)

type profileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*models.StudentProfile, error)
	Exists(ctx context.Context, userID string) (bool, error)
	Upsert(ctx context.Context, profile *models.StudentProfile) error
}

// ProfileService manages student eligibility profiles.
type ProfileService struct {
	repo      profileRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProfileService constructs a ProfileService.
func NewProfileService(repo profileRepository, validate *validator.Validate, logger *zap.Logger) *ProfileService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{repo: repo, validator: validate, logger: logger}
}

// Register stores the first profile for a user. A second registration is a conflict.
func (s *ProfileService) Register(ctx context.Context, userID string, req models.RegisterProfileRequest) (*models.StudentProfile, error) {
	exists, err := s.repo.Exists(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check profile")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "profile already registered")
	}
	return s.save(ctx, userID, req, time.Time{})
}

// Update replaces the caller's profile.
func (s *ProfileService) Update(ctx context.Context, userID string, req models.RegisterProfileRequest) (*models.StudentProfile, error) {
	current, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, userID, req, current.CreatedAt)
}

// Get returns the caller's profile, or ErrProfileIncomplete when none exists.
func (s *ProfileService) Get(ctx context.Context, userID string) (*models.StudentProfile, error) {
	profile, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrProfileIncomplete, "complete your profile first")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load profile")
	}
	return profile, nil
}

// Criteria derives filter criteria from the caller's profile.
func (s *ProfileService) Criteria(ctx context.Context, userID string) (models.ScholarshipCriteria, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return models.ScholarshipCriteria{}, err
	}
	return profile.Criteria(), nil
}

func (s *ProfileService) save(ctx context.Context, userID string, req models.RegisterProfileRequest, createdAt time.Time) (*models.StudentProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid profile payload")
	}
	dob, err := time.Parse(models.DateLayout, req.DOB)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "dob must be YYYY-MM-DD")
	}

	profile := &models.StudentProfile{
		UserID:             userID,
		FirstName:          strings.TrimSpace(req.FirstName),
		MiddleName:         strings.TrimSpace(req.MiddleName),
		LastName:           strings.TrimSpace(req.LastName),
		Gender:             req.Gender,
		DOB:                dob,
		Religion:           strings.TrimSpace(req.Religion),
		State:              strings.TrimSpace(req.State),
		District:           strings.TrimSpace(req.District),
		City:               strings.TrimSpace(req.City),
		Pincode:            req.Pincode,
		PrimaryPhone:       req.PrimaryPhone,
		SecondaryPhone:     req.SecondaryPhone,
		Email:              strings.ToLower(strings.TrimSpace(req.Email)),
		Caste:              strings.TrimSpace(req.Caste),
		Category:           req.Category,
		Nationality:        strings.TrimSpace(req.Nationality),
		IsOrphan:           req.IsOrphan,
		SpeciallyAbled:     req.SpeciallyAbled,
		IsMinority:         req.IsMinority,
		SchoolName:         strings.TrimSpace(req.SchoolName),
		CollegeName:        strings.TrimSpace(req.CollegeName),
		CourseStream:       strings.TrimSpace(req.CourseStream),
		TenthPassYear:      req.TenthPassYear,
		TwelfthPassYear:    req.TwelfthPassYear,
		TenthPercentage:    req.TenthPercentage,
		TwelfthPercentage:  req.TwelfthPercentage,
		IsDiplomaStudent:   req.IsDiplomaStudent,
		FamilyIncome:       req.FamilyIncome,
		FamilyMembersCount: req.FamilyMembersCount,
		FamilyFarmer:       req.FamilyFarmer,
		FamilyMilitary:     req.FamilyMilitary,
		FamilyCovidVictim:  req.FamilyCovidVictim,
		CreatedAt:          createdAt,
	}
	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save profile")
	}
	s.logger.Info("profile saved", zap.String("user_id", userID))
	return profile, nil
}
