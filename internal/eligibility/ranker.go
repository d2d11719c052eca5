package eligibility

import (
	"sort"
	"time"

	"github.com/Rhea-16/scholarLink/internal/models"
)

// farDeadline stands in for a missing deadline so undated scholarships sort last.
var farDeadline = time.Date(2099, time.December, 31, 0, 0, 0, 0, time.UTC)

// SortScholarships returns a new slice ordered by mode. Unknown modes sort by
// relevance. Ties keep their input order.
func SortScholarships(items []models.Scholarship, mode models.SortMode) []models.Scholarship {
	sorted := make([]models.Scholarship, len(items))
	copy(sorted, items)
	if len(sorted) < 2 {
		return sorted
	}

	var less func(a, b *models.Scholarship) bool
	switch mode {
	case models.SortDeadline:
		less = func(a, b *models.Scholarship) bool {
			return deadlineOf(a).Before(deadlineOf(b))
		}
	case models.SortAmount:
		less = func(a, b *models.Scholarship) bool {
			return valueOrZero(a.BenefitAmount) > valueOrZero(b.BenefitAmount)
		}
	default:
		less = func(a, b *models.Scholarship) bool {
			if a.IsFeatured != b.IsFeatured {
				return a.IsFeatured
			}
			return valueOrZero(a.PriorityScore) > valueOrZero(b.PriorityScore)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(&sorted[i], &sorted[j])
	})
	return sorted
}

func deadlineOf(s *models.Scholarship) time.Time {
	if s.Deadline == nil {
		return farDeadline
	}
	return *s.Deadline
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
