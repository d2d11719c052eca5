package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Rhea-16/scholarLink/internal/eligibility"
	"github.com/Rhea-16/scholarLink/internal/models"
	appErrors "github.com/Rhea-16/scholarLink/pkg/errors"
	"github.com/Rhea-16/scholarLink/pkg/export"
)

type catalogReader interface {
	Scholarships(ctx context.Context) ([]models.Scholarship, error)
	Invalidate()
}

type scholarshipWriter interface {
	FindByID(ctx context.Context, id string) (*models.Scholarship, error)
	Create(ctx context.Context, item *models.Scholarship) error
	Update(ctx context.Context, item *models.Scholarship) error
	Delete(ctx context.Context, id string) error
}

type overlayReader interface {
	ListSaved(ctx context.Context, userID string) ([]models.SavedScholarship, error)
	ListReminders(ctx context.Context, userID, scholarshipID string) ([]models.Reminder, error)
}

type criteriaProvider interface {
	Criteria(ctx context.Context, userID string) (models.ScholarshipCriteria, error)
}

type auditWriter interface {
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
}

// ScholarshipServiceConfig tunes listing behaviour.
type ScholarshipServiceConfig struct {
	DefaultPageSize int
	MaxPageSize     int
	// Writable is false when the catalog comes from a file or bucket; admin
	// writes would never be visible there.
	Writable      bool
	ListingTTL    time.Duration
	ExportEnabled bool
}

// ScholarshipServiceParams groups constructor dependencies.
type ScholarshipServiceParams struct {
	Catalog   catalogReader
	Repo      scholarshipWriter
	Overlay   overlayReader
	Profiles  criteriaProvider
	Audit     auditWriter
	Cache     *CacheService
	Metrics   *MetricsService
	Validator *validator.Validate
	Logger    *zap.Logger
	Config    ScholarshipServiceConfig
}

// ScholarshipService runs the filter, rank, overlay and paginate pipeline over
// the catalog and manages catalog records.
type ScholarshipService struct {
	catalog   catalogReader
	repo      scholarshipWriter
	overlay   overlayReader
	profiles  criteriaProvider
	audit     auditWriter
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	cfg       ScholarshipServiceConfig
}

// NewScholarshipService constructs the service.
func NewScholarshipService(params ScholarshipServiceParams) *ScholarshipService {
	cfg := params.Config
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 9
	}
	if cfg.MaxPageSize < cfg.DefaultPageSize {
		cfg.MaxPageSize = 100
	}
	if cfg.ListingTTL <= 0 {
		cfg.ListingTTL = 5 * time.Minute
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	validate := params.Validator
	if validate == nil {
		validate = validator.New()
	}
	return &ScholarshipService{
		catalog:   params.Catalog,
		repo:      params.Repo,
		overlay:   params.Overlay,
		profiles:  params.Profiles,
		audit:     params.Audit,
		cache:     params.Cache,
		metrics:   params.Metrics,
		validator: validate,
		logger:    logger,
		cfg:       cfg,
	}
}

type listingKey struct {
	Criteria models.ScholarshipCriteria `json:"criteria"`
	SortBy   models.SortMode            `json:"sort"`
}

// Filter returns the catalog filtered by criteria and ordered by mode. No user
// state is attached.
func (s *ScholarshipService) Filter(ctx context.Context, criteria models.ScholarshipCriteria, mode models.SortMode) ([]models.Scholarship, error) {
	mode = models.ParseSortMode(string(mode))
	key := digestKey(cacheScopeListing, listingKey{Criteria: criteria, SortBy: mode})

	var cached []models.Scholarship
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return cached, nil
	}

	items, err := s.catalog.Scholarships(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "scholarship catalog unavailable")
	}

	start := time.Now()
	ranked := eligibility.SortScholarships(eligibility.FilterScholarships(items, criteria), mode)
	s.metrics.ObserveFilter(mode, len(ranked), time.Since(start))

	_ = s.cache.Set(ctx, key, ranked, s.cfg.ListingTTL)
	return ranked, nil
}

// List filters, ranks and paginates the catalog. When userID is set each
// record carries the caller's saved state.
func (s *ScholarshipService) List(ctx context.Context, userID string, req models.ScholarshipListRequest) ([]models.Scholarship, *models.Pagination, error) {
	ranked, err := s.Filter(ctx, req.Criteria, req.SortBy)
	if err != nil {
		return nil, nil, err
	}

	pagination := models.NewPagination(req.Page, s.pageSize(req.PageSize), len(ranked))
	start, end := pagination.Bounds()
	page, err := s.withOverlay(ctx, userID, ranked[start:end])
	if err != nil {
		return nil, nil, err
	}
	return page, pagination, nil
}

// Eligible lists scholarships matching the caller's profile. Search and
// provider type from req narrow the profile criteria further.
func (s *ScholarshipService) Eligible(ctx context.Context, userID string, req models.ScholarshipListRequest) ([]models.Scholarship, *models.Pagination, error) {
	criteria, err := s.profileCriteria(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	criteria.Search = req.Criteria.Search
	criteria.ProviderType = req.Criteria.ProviderType
	req.Criteria = criteria
	return s.List(ctx, userID, req)
}

// EligibleAll returns every scholarship matching the caller's profile.
func (s *ScholarshipService) EligibleAll(ctx context.Context, userID string) ([]models.Scholarship, error) {
	criteria, err := s.profileCriteria(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Filter(ctx, criteria, models.SortRelevance)
}

// Get returns one scholarship from the catalog.
func (s *ScholarshipService) Get(ctx context.Context, userID, id string) (*models.Scholarship, error) {
	items, err := s.catalog.Scholarships(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "scholarship catalog unavailable")
	}
	for _, item := range items {
		if item.ID != id {
			continue
		}
		overlaid, err := s.withOverlay(ctx, userID, []models.Scholarship{item})
		if err != nil {
			return nil, err
		}
		return &overlaid[0], nil
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "scholarship not found")
}

// Exists reports whether id is in the catalog.
func (s *ScholarshipService) Exists(ctx context.Context, id string) (bool, error) {
	if _, err := s.Get(ctx, "", id); err != nil {
		if appErrors.Is(err, appErrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Create adds a scholarship to the catalog.
func (s *ScholarshipService) Create(ctx context.Context, actorID string, req models.ScholarshipUpsertRequest) (*models.Scholarship, error) {
	if err := s.ensureWritable(); err != nil {
		return nil, err
	}
	item, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create scholarship")
	}
	s.afterWrite(ctx, actorID, models.AuditActionScholarshipCreate, item.ID, nil, item)
	return item, nil
}

// Update replaces a scholarship's fields.
func (s *ScholarshipService) Update(ctx context.Context, actorID, id string, req models.ScholarshipUpsertRequest) (*models.Scholarship, error) {
	if err := s.ensureWritable(); err != nil {
		return nil, err
	}
	existing, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	item, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}
	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "scholarship not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update scholarship")
	}
	s.afterWrite(ctx, actorID, models.AuditActionScholarshipUpdate, item.ID, existing, item)
	return item, nil
}

// Delete removes a scholarship.
func (s *ScholarshipService) Delete(ctx context.Context, actorID, id string) error {
	if err := s.ensureWritable(); err != nil {
		return err
	}
	existing, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "scholarship not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete scholarship")
	}
	s.afterWrite(ctx, actorID, models.AuditActionScholarshipDelete, id, existing, nil)
	return nil
}

// ScholarshipExport is a rendered listing ready to be streamed.
type ScholarshipExport struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// Export renders the filtered, ranked listing in the requested format.
func (s *ScholarshipService) Export(ctx context.Context, req models.ScholarshipListRequest, rawFormat string) (*ScholarshipExport, error) {
	if !s.cfg.ExportEnabled {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "exports are disabled")
	}
	format, err := export.ParseFormat(rawFormat)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}
	ranked, err := s.Filter(ctx, req.Criteria, req.SortBy)
	if err != nil {
		return nil, err
	}

	payload, err := export.Render(format, scholarshipDataset(ranked))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	return &ScholarshipExport{
		Filename:    fmt.Sprintf("scholarships_%s.%s", time.Now().UTC().Format("20060102_150405"), format),
		ContentType: format.ContentType(),
		Payload:     payload,
	}, nil
}

func scholarshipDataset(items []models.Scholarship) export.Dataset {
	data := export.Dataset{
		Title:   "Scholarships",
		Headers: []string{"Name", "Provider", "Type", "Amount", "Deadline", "Eligibility"},
		Widths:  []float64{3, 2.5, 1.2, 1.2, 1.3, 4},
		Rows:    make([]map[string]string, 0, len(items)),
	}
	for _, item := range items {
		amount := ""
		if item.BenefitAmount != nil {
			amount = strconv.FormatFloat(*item.BenefitAmount, 'f', -1, 64)
		}
		deadline := ""
		if item.Deadline != nil {
			deadline = item.Deadline.Format(models.DateLayout)
		}
		data.Rows = append(data.Rows, map[string]string{
			"Name":        item.Name,
			"Provider":    item.ProviderName,
			"Type":        string(item.ProviderType),
			"Amount":      amount,
			"Deadline":    deadline,
			"Eligibility": describeRules(item.Eligibility),
		})
	}
	return data
}

func describeRules(rules models.EligibilityRules) string {
	if len(rules) == 0 {
		return "open to all"
	}
	parts := make([]string, 0, len(rules))
	for _, r := range rules {
		var terms []string
		for _, f := range []struct {
			label string
			field models.RuleField
		}{
			{"state", r.DomicileState},
			{"category", r.Category},
			{"gender", r.Gender},
			{"stream", r.CourseStream},
		} {
			if !f.field.IsWildcard() {
				terms = append(terms, f.label+"="+f.field.String())
			}
		}
		if !r.FamilyIncomeMax.IsWildcard() {
			terms = append(terms, "income<="+r.FamilyIncomeMax.String())
		}
		if len(terms) == 0 {
			terms = append(terms, "any")
		}
		parts = append(parts, strings.Join(terms, " "))
	}
	return strings.Join(parts, " | ")
}

func (s *ScholarshipService) pageSize(requested int) int {
	if requested <= 0 {
		return s.cfg.DefaultPageSize
	}
	if requested > s.cfg.MaxPageSize {
		return s.cfg.MaxPageSize
	}
	return requested
}

func (s *ScholarshipService) profileCriteria(ctx context.Context, userID string) (models.ScholarshipCriteria, error) {
	if s.profiles == nil || userID == "" {
		return models.ScholarshipCriteria{}, appErrors.Clone(appErrors.ErrProfileIncomplete, "complete your profile first")
	}
	return s.profiles.Criteria(ctx, userID)
}

// withOverlay copies items and attaches the caller's saved state and reminders.
func (s *ScholarshipService) withOverlay(ctx context.Context, userID string, items []models.Scholarship) ([]models.Scholarship, error) {
	out := make([]models.Scholarship, len(items))
	copy(out, items)
	if userID == "" || s.overlay == nil || len(out) == 0 {
		return out, nil
	}

	saved, err := s.overlay.ListSaved(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load saved scholarships")
	}
	if len(saved) == 0 {
		return out, nil
	}
	reminders, err := s.overlay.ListReminders(ctx, userID, "")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load reminders")
	}

	bySaved := make(map[string]models.SavedScholarship, len(saved))
	for _, entry := range saved {
		bySaved[entry.ScholarshipID] = entry
	}
	byReminder := make(map[string][]models.Reminder)
	for _, r := range reminders {
		byReminder[r.ScholarshipID] = append(byReminder[r.ScholarshipID], r)
	}

	for i := range out {
		applyOverlay(&out[i], bySaved, byReminder)
	}
	return out, nil
}

func applyOverlay(item *models.Scholarship, saved map[string]models.SavedScholarship, reminders map[string][]models.Reminder) {
	entry, ok := saved[item.ID]
	if !ok {
		return
	}
	status := entry.Status
	item.IsSaved = true
	item.UserStatus = &status
	item.ApplicationID = entry.ApplicationID
	item.Notes = entry.Notes
	item.DateApplied = entry.DateApplied
	item.ReminderDate = entry.ReminderDate
	item.Reminders = reminders[item.ID]
}

func (s *ScholarshipService) ensureWritable() error {
	if !s.cfg.Writable || s.repo == nil {
		return appErrors.Clone(appErrors.ErrForbidden, "catalog source is read-only")
	}
	return nil
}

func (s *ScholarshipService) find(ctx context.Context, id string) (*models.Scholarship, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "scholarship not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load scholarship")
	}
	return item, nil
}

func (s *ScholarshipService) fromRequest(req models.ScholarshipUpsertRequest) (*models.Scholarship, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid scholarship payload")
	}
	providerType := req.ProviderType
	if providerType == "" {
		providerType = models.ProviderOther
	}
	rules := models.EligibilityRules(req.Eligibility)
	if rules == nil {
		rules = models.EligibilityRules{}
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	return &models.Scholarship{
		Name:            strings.TrimSpace(req.Name),
		ProviderName:    strings.TrimSpace(req.ProviderName),
		ProviderType:    providerType,
		Category:        strings.TrimSpace(req.Category),
		BenefitAmount:   req.BenefitAmount,
		Deadline:        models.ParseDate(req.Deadline),
		Eligibility:     rules,
		Description:     req.Description,
		Tags:            tags,
		IsFeatured:      req.IsFeatured,
		PriorityScore:   req.PriorityScore,
		ApplicationLink: req.ApplicationLink,
	}, nil
}

func (s *ScholarshipService) afterWrite(ctx context.Context, actorID, action, id string, before, after *models.Scholarship) {
	s.catalog.Invalidate()
	if err := s.cache.InvalidateCatalog(ctx); err != nil {
		s.logger.Warn("failed to invalidate catalog cache", zap.Error(err))
	}

	if s.audit == nil {
		return
	}
	entry := &models.AuditLog{Action: action, Resource: "scholarship", ResourceID: &id}
	if actorID != "" {
		entry.UserID = &actorID
	}
	if before != nil {
		entry.OldValues, _ = json.Marshal(before)
	}
	if after != nil {
		entry.NewValues, _ = json.Marshal(after)
	}
	if err := s.audit.CreateAuditLog(ctx, entry); err != nil {
		s.logger.Warn("failed to record audit log", zap.String("action", action), zap.Error(err))
	}
}
