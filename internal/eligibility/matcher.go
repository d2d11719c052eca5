// Package eligibility decides which scholarships a set of filter criteria
// qualifies for and orders the survivors for display.
//
// A scholarship passes when its name or provider matches the search text, its
// provider type matches, and at least one of its eligibility rules satisfies
// every active criteria field. Wildcard rule fields never disqualify.
package eligibility

import (
	"strings"

	"github.com/Rhea-16/scholarLink/internal/models"
)

// activeCriteria is ScholarshipCriteria reduced to the fields that constrain
// matching, with values normalised once per call.
type activeCriteria struct {
	search       string
	providerType string
	state        string
	category     string
	gender       string
	branch       string
	income       float64
	hasIncome    bool
}

func newActiveCriteria(c models.ScholarshipCriteria) activeCriteria {
	a := activeCriteria{
		search:       models.NormalizeTerm(c.Search),
		providerType: activeTerm(c.ProviderType),
		state:        activeTerm(c.State),
		category:     activeTerm(c.Category),
		gender:       activeTerm(c.Gender),
		branch:       activeTerm(c.Branch),
	}
	// A non-numeric income limit stays inactive and never triggers the no-rules exclusion.
	a.income, a.hasIncome = models.ParseAmount(c.IncomeLimit)
	return a
}

// activeTerm normalises a criteria value; "any" is inactive at the criteria level.
func activeTerm(raw string) string {
	norm := models.NormalizeTerm(raw)
	if norm == models.WildcardValue {
		return ""
	}
	return norm
}

// any reports whether the criteria constrain matching. A bare "any" search does not
// activate the criteria, but it still filters once another field does.
func (a activeCriteria) any() bool {
	searching := a.search != "" && a.search != models.WildcardValue
	return searching || a.providerType != "" || a.hasOtherFilters()
}

// hasOtherFilters reports whether a rule-level field is constrained.
func (a activeCriteria) hasOtherFilters() bool {
	return a.state != "" || a.category != "" || a.gender != "" || a.hasIncome || a.branch != ""
}

// HasActiveCriteria reports whether c constrains the catalog at all.
func HasActiveCriteria(c models.ScholarshipCriteria) bool {
	return newActiveCriteria(c).any()
}

// FilterScholarships returns the scholarships that qualify under c, in input
// order. With no active criteria the input slice is returned as is. The input
// is never modified.
func FilterScholarships(items []models.Scholarship, c models.ScholarshipCriteria) []models.Scholarship {
	active := newActiveCriteria(c)
	if !active.any() {
		return items
	}

	out := make([]models.Scholarship, 0, len(items))
	for i := range items {
		if active.matches(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

// Matches reports whether a single scholarship qualifies under c.
func Matches(s models.Scholarship, c models.ScholarshipCriteria) bool {
	active := newActiveCriteria(c)
	if !active.any() {
		return true
	}
	return active.matches(&s)
}

func (a activeCriteria) matches(s *models.Scholarship) bool {
	if a.search != "" {
		name := strings.ToLower(s.Name)
		provider := strings.ToLower(s.ProviderName)
		if !strings.Contains(name, a.search) && !strings.Contains(provider, a.search) {
			return false
		}
	}

	if a.providerType != "" {
		pt := models.NormalizeTerm(string(s.ProviderType))
		if pt != "" && pt != models.WildcardValue && pt != a.providerType {
			return false
		}
	}

	if len(s.Eligibility) == 0 {
		return !a.hasOtherFilters()
	}
	for i := range s.Eligibility {
		if a.ruleMatches(&s.Eligibility[i]) {
			return true
		}
	}
	return false
}

// ruleMatches applies AND semantics across the active fields of one rule.
func (a activeCriteria) ruleMatches(r *models.EligibilityRule) bool {
	if a.state != "" && !r.DomicileState.Matches(a.state) {
		return false
	}
	if a.category != "" && !r.Category.Matches(a.category) {
		return false
	}
	if a.gender != "" && !r.Gender.Matches(a.gender) {
		return false
	}
	if a.hasIncome && !r.FamilyIncomeMax.Allows(a.income) {
		return false
	}
	if a.branch != "" && !r.CourseStream.Matches(a.branch) {
		return false
	}
	return true
}
