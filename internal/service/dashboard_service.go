package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Rhea-16/scholarLink/internal/dto"
	"github.com/Rhea-16/scholarLink/internal/models"
	"github.com/Rhea-16/scholarLink/internal/tracking"
	appErrors "github.com/Rhea-16/scholarLink/pkg/errors"
)

type eligibleLister interface {
	EligibleAll(ctx context.Context, userID string) ([]models.Scholarship, error)
}

type statusCounter interface {
	CountByStatus(ctx context.Context, userID string) (map[string]int, error)
}

// DashboardService composes the student dashboard.
type DashboardService struct {
	eligible eligibleLister
	counts   statusCounter
	logger   *zap.Logger
	now      func() time.Time
}

// NewDashboardService constructs the service.
func NewDashboardService(eligible eligibleLister, counts statusCounter, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{eligible: eligible, counts: counts, logger: logger, now: time.Now}
}

// Stats returns the caller's dashboard. It fails with ErrProfileIncomplete
// until a profile is registered.
func (s *DashboardService) Stats(ctx context.Context, userID string) (*dto.DashboardStats, error) {
	items, err := s.eligible.EligibleAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	counts, err := s.counts.CountByStatus(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count saved scholarships")
	}

	stats := &dto.DashboardStats{
		Eligible:  len(items),
		Applied:   counts[string(tracking.StatusApplied)],
		Tracking:  counts[string(tracking.StatusTracking)],
		Completed: counts[string(tracking.StatusCompleted)],
		Providers: breakdown(items),
		Generated: s.now().UTC(),
	}
	for _, n := range counts {
		stats.Saved += n
	}
	return stats, nil
}

var (
	government = models.NormalizeTerm(string(models.ProviderGovernment))
	private    = models.NormalizeTerm(string(models.ProviderPrivate))
	ngo        = models.NormalizeTerm(string(models.ProviderNGO))
)

func breakdown(items []models.Scholarship) dto.ProviderBreakdown {
	var b dto.ProviderBreakdown
	for _, item := range items {
		switch models.NormalizeTerm(string(item.ProviderType)) {
		case government:
			b.Government++
		case private:
			b.Private++
		case ngo:
			b.NGO++
		default:
			b.Others++
		}
	}
	return b
}
