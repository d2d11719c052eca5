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
	"github.com/Rhea-16/scholarLink/internal/tracking"
	appErrors "github.com/Rhea-16/scholarLink/pkg/errors"
)

type trackingRepository interface {
	ListSaved(ctx context.Context, userID string) ([]models.SavedScholarship, error)
	FindSaved(ctx context.Context, userID, scholarshipID string) (*models.SavedScholarship, error)
	Save(ctx context.Context, entry *models.SavedScholarship) error
	UpdateSaved(ctx context.Context, entry *models.SavedScholarship) error
	Unsave(ctx context.Context, userID, scholarshipID string) error
	ListReminders(ctx context.Context, userID, scholarshipID string) ([]models.Reminder, error)
	FindReminder(ctx context.Context, userID, reminderID string) (*models.Reminder, error)
	CreateReminder(ctx context.Context, reminder *models.Reminder) error
	SetReminderCompleted(ctx context.Context, userID, reminderID string, completed bool) error
	DeleteReminder(ctx context.Context, userID, reminderID string) error
}

type catalogLister interface {
	Scholarships(ctx context.Context) ([]models.Scholarship, error)
}

// TrackingService manages a student's saved scholarships, their application
// status and reminders.
type TrackingService struct {
	repo      trackingRepository
	catalog   catalogLister
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewTrackingService constructs the service.
func NewTrackingService(repo trackingRepository, catalog catalogLister, validate *validator.Validate, logger *zap.Logger) *TrackingService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TrackingService{repo: repo, catalog: catalog, validator: validate, logger: logger, now: time.Now}
}

// Save bookmarks a scholarship. Saving an already saved scholarship returns
// the existing entry unchanged.
func (s *TrackingService) Save(ctx context.Context, userID, scholarshipID string) (*models.SavedScholarship, error) {
	if _, err := s.lookup(ctx, scholarshipID); err != nil {
		return nil, err
	}
	if existing, err := s.repo.FindSaved(ctx, userID, scholarshipID); err == nil {
		return existing, nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load saved scholarship")
	}

	entry := &models.SavedScholarship{UserID: userID, ScholarshipID: scholarshipID, Status: tracking.StatusSaved}
	if err := s.repo.Save(ctx, entry); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save scholarship")
	}
	return entry, nil
}

// Unsave removes the bookmark together with its reminders.
func (s *TrackingService) Unsave(ctx context.Context, userID, scholarshipID string) error {
	if err := s.repo.Unsave(ctx, userID, scholarshipID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "scholarship is not saved")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to unsave scholarship")
	}
	return nil
}

// Update patches the tracking details. Status changes must follow the
// tracking state machine; moving to applied stamps today's date when no
// application date is known.
func (s *TrackingService) Update(ctx context.Context, userID, scholarshipID string, req models.UpdateTrackingRequest) (*models.SavedScholarship, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid tracking payload")
	}
	entry, err := s.findSaved(ctx, userID, scholarshipID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		next, err := tracking.ParseStatus(*req.Status)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
		}
		if !tracking.IsTransitionAllowed(entry.Status, next) {
			return nil, appErrors.Clone(appErrors.ErrInvalidTransition, "cannot move from "+string(entry.Status)+" to "+string(next))
		}
		entry.Status = next
	}
	if req.ApplicationID != nil {
		entry.ApplicationID = strings.TrimSpace(*req.ApplicationID)
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}
	if req.DateApplied != nil {
		entry.DateApplied = models.ParseDate(*req.DateApplied)
	}
	if req.ReminderDate != nil {
		entry.ReminderDate = models.ParseDate(*req.ReminderDate)
	}
	if entry.Status == tracking.StatusApplied && entry.DateApplied == nil {
		today := s.now().UTC().Truncate(24 * time.Hour)
		entry.DateApplied = &today
	}

	if err := s.repo.UpdateSaved(ctx, entry); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "scholarship is not saved")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update tracking")
	}
	return entry, nil
}

// List returns the caller's saved scholarships with their tracking state,
// most recently updated first.
func (s *TrackingService) List(ctx context.Context, userID string, req models.TrackedListRequest) ([]models.Scholarship, error) {
	saved, err := s.repo.ListSaved(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load saved scholarships")
	}
	if len(saved) == 0 {
		return []models.Scholarship{}, nil
	}
	items, err := s.catalog.Scholarships(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "scholarship catalog unavailable")
	}
	reminders, err := s.repo.ListReminders(ctx, userID, "")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load reminders")
	}

	byID := make(map[string]models.Scholarship, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	bySaved := make(map[string]models.SavedScholarship, len(saved))
	for _, entry := range saved {
		bySaved[entry.ScholarshipID] = entry
	}
	byReminder := make(map[string][]models.Reminder)
	for _, r := range reminders {
		byReminder[r.ScholarshipID] = append(byReminder[r.ScholarshipID], r)
	}

	search := models.NormalizeTerm(req.Search)
	out := make([]models.Scholarship, 0, len(saved))
	for _, entry := range saved {
		item, ok := byID[entry.ScholarshipID]
		if !ok || !req.Filter.Accepts(entry.Status) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.ProviderName), search) {
			continue
		}
		applyOverlay(&item, bySaved, byReminder)
		out = append(out, item)
	}
	return out, nil
}

// AddReminder attaches a reminder to a saved scholarship.
func (s *TrackingService) AddReminder(ctx context.Context, userID, scholarshipID string, req models.CreateReminderRequest) (*models.Reminder, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid reminder payload")
	}
	if _, err := s.findSaved(ctx, userID, scholarshipID); err != nil {
		return nil, err
	}
	reminder := &models.Reminder{
		UserID:        userID,
		ScholarshipID: scholarshipID,
		Text:          strings.TrimSpace(req.Text),
		DueDate:       models.ParseDate(req.DueDate),
	}
	if err := s.repo.CreateReminder(ctx, reminder); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create reminder")
	}
	return reminder, nil
}

// ToggleReminder flips a reminder between open and completed.
func (s *TrackingService) ToggleReminder(ctx context.Context, userID, scholarshipID, reminderID string) (*models.Reminder, error) {
	reminder, err := s.findReminder(ctx, userID, scholarshipID, reminderID)
	if err != nil {
		return nil, err
	}
	reminder.Completed = !reminder.Completed
	if err := s.repo.SetReminderCompleted(ctx, userID, reminderID, reminder.Completed); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update reminder")
	}
	return reminder, nil
}

// DeleteReminder removes a reminder.
func (s *TrackingService) DeleteReminder(ctx context.Context, userID, scholarshipID, reminderID string) error {
	if _, err := s.findReminder(ctx, userID, scholarshipID, reminderID); err != nil {
		return err
	}
	if err := s.repo.DeleteReminder(ctx, userID, reminderID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete reminder")
	}
	return nil
}

func (s *TrackingService) lookup(ctx context.Context, scholarshipID string) (*models.Scholarship, error) {
	items, err := s.catalog.Scholarships(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "scholarship catalog unavailable")
	}
	for i := range items {
		if items[i].ID == scholarshipID {
			return &items[i], nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "scholarship not found")
}

func (s *TrackingService) findSaved(ctx context.Context, userID, scholarshipID string) (*models.SavedScholarship, error) {
	entry, err := s.repo.FindSaved(ctx, userID, scholarshipID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "scholarship is not saved")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load saved scholarship")
	}
	return entry, nil
}

func (s *TrackingService) findReminder(ctx context.Context, userID, scholarshipID, reminderID string) (*models.Reminder, error) {
	reminder, err := s.repo.FindReminder(ctx, userID, reminderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "reminder not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load reminder")
	}
	if reminder.ScholarshipID != scholarshipID {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "reminder not found")
	}
	return reminder, nil
}
