package eligibility

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rhea-16/scholarLink/internal/models"
)

func ids(items []models.Scholarship) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		out = append(out, s.ID)
	}
	return out
}

func decodeCatalog(t *testing.T, raw string) []models.Scholarship {
	t.Helper()
	var items []models.Scholarship
	require.NoError(t, json.Unmarshal([]byte(raw), &items))
	return items
}

func TestFilterScholarshipsEmptyCriteriaIsIdentity(t *testing.T) {
	items := []models.Scholarship{
		{ID: "1", Name: "Alpha"},
		{ID: "2", Name: "Beta", Eligibility: models.EligibilityRules{{Category: models.Literal("SC")}}},
		{ID: "3", Name: "Gamma"},
	}

	out := FilterScholarships(items, models.ScholarshipCriteria{})
	assert.Equal(t, items, out)

	out = FilterScholarships(items, models.ScholarshipCriteria{State: "any", Category: " ANY "})
	assert.Equal(t, items, out)

	assert.Empty(t, FilterScholarships(nil, models.ScholarshipCriteria{Category: "OBC"}))
}

func TestFilterScholarshipsWildcardRule(t *testing.T) {
	items := decodeCatalog(t, `[
		{"id": 1, "scholarship_name": "Open Merit", "eligibility": [
			{"domicile_state": "any", "category": "any", "gender": null, "family_income_max": "any", "course_stream": "any"}
		]},
		{"id": 2, "scholarship_name": "Bare Rule", "eligibility": [{}]}
	]`)

	criteria := models.ScholarshipCriteria{
		State:       "Karnataka",
		Category:    "ST",
		Gender:      "other",
		IncomeLimit: "9,99,999",
		Branch:      "Law",
	}
	assert.Equal(t, []string{"1", "2"}, ids(FilterScholarships(items, criteria)))
}

func TestFilterScholarshipsOrAcrossRules(t *testing.T) {
	items := []models.Scholarship{{
		ID: "x",
		Eligibility: models.EligibilityRules{
			{Category: models.Literal("SC"), Gender: models.Literal("female")},
			{Category: models.Literal("OBC"), Gender: models.Literal("female")},
		},
	}}

	out := FilterScholarships(items, models.ScholarshipCriteria{Category: "obc", Gender: "Female"})
	assert.Equal(t, []string{"x"}, ids(out))
}

func TestFilterScholarshipsAndWithinRule(t *testing.T) {
	items := []models.Scholarship{{
		ID: "x",
		Eligibility: models.EligibilityRules{{
			DomicileState:   models.Literal("Maharashtra"),
			Category:        models.Literal("OBC"),
			Gender:          models.Literal("female"),
			FamilyIncomeMax: models.IncomeCapOf(800000),
		}},
	}}

	match := models.ScholarshipCriteria{State: "maharashtra", Category: "OBC", Gender: "female", IncomeLimit: "500000"}
	assert.Len(t, FilterScholarships(items, match), 1)

	mismatch := match
	mismatch.Gender = "male"
	assert.Empty(t, FilterScholarships(items, mismatch))
}

func TestFilterScholarshipsStrictWithoutRules(t *testing.T) {
	items := []models.Scholarship{{ID: "open", Name: "Open Grant", ProviderName: "Trust", ProviderType: models.ProviderNGO}}

	for _, c := range []models.ScholarshipCriteria{
		{State: "Kerala"},
		{Category: "general"},
		{Gender: "male"},
		{IncomeLimit: "100000"},
		{Branch: "engineering"},
	} {
		assert.Empty(t, FilterScholarships(items, c), "%+v", c)
	}

	assert.Len(t, FilterScholarships(items, models.ScholarshipCriteria{Search: "grant"}), 1)
	assert.Len(t, FilterScholarships(items, models.ScholarshipCriteria{ProviderType: "ngo"}), 1)
	assert.Len(t, FilterScholarships(items, models.ScholarshipCriteria{IncomeLimit: "not a number"}), 1)
}

func TestFilterScholarshipsIncomeDirection(t *testing.T) {
	items := []models.Scholarship{{
		ID:          "x",
		Eligibility: models.EligibilityRules{{FamilyIncomeMax: models.IncomeCapOf(500000)}},
	}}

	assert.Len(t, FilterScholarships(items, models.ScholarshipCriteria{IncomeLimit: "300000"}), 1)
	assert.Len(t, FilterScholarships(items, models.ScholarshipCriteria{IncomeLimit: "5,00,000"}), 1)
	assert.Empty(t, FilterScholarships(items, models.ScholarshipCriteria{IncomeLimit: "700000"}))
}

func TestFilterScholarshipsIncomeCapFromStrings(t *testing.T) {
	items := decodeCatalog(t, `[
		{"id": "a", "eligibility": [{"family_income_max": "2,50,000"}]},
		{"id": "b", "eligibility": [{"family_income_max": 0}]},
		{"id": "c", "eligibility": [{"family_income_max": "unknown"}]},
		{"id": "d", "eligibility": [{"family_income_max": 100000}]}
	]`)

	out := FilterScholarships(items, models.ScholarshipCriteria{IncomeLimit: "200000"})
	assert.Equal(t, []string{"a", "b", "c"}, ids(out))
}

func TestFilterScholarshipsCourseStreamArray(t *testing.T) {
	items := decodeCatalog(t, `[
		{"id": "multi", "eligibility": [{"course_stream": ["engineering", "arts"]}]},
		{"id": "single", "eligibility": [{"course_stream": "Arts"}]},
		{"id": "anyInList", "eligibility": [{"course_stream": ["medical", "any"]}]}
	]`)

	assert.Equal(t, []string{"multi", "single", "anyInList"}, ids(FilterScholarships(items, models.ScholarshipCriteria{Branch: "arts"})))
	assert.Equal(t, []string{"anyInList"}, ids(FilterScholarships(items, models.ScholarshipCriteria{Branch: "medical"})))
}

func TestFilterScholarshipsSearch(t *testing.T) {
	items := []models.Scholarship{
		{ID: "1", Name: "National Merit Scholarship", ProviderName: "Ministry of Education"},
		{ID: "2", Name: "Women in STEM", ProviderName: "Tata Trusts"},
		{ID: "3", Name: "Post Matric", ProviderName: "Social Justice Dept"},
	}

	assert.Equal(t, []string{"1"}, ids(FilterScholarships(items, models.ScholarshipCriteria{Search: "  MERIT "})))
	assert.Equal(t, []string{"2"}, ids(FilterScholarships(items, models.ScholarshipCriteria{Search: "tata"})))
	assert.Empty(t, FilterScholarships(items, models.ScholarshipCriteria{Search: "loan"}))
}

func TestFilterScholarshipsSearchAnyWithOtherFilter(t *testing.T) {
	wildcard := models.EligibilityRules{{DomicileState: models.Literal("any")}}
	items := []models.Scholarship{
		{ID: "anyone", Name: "Anyone Can Apply", ProviderName: "State Board", Eligibility: wildcard},
		{ID: "merit", Name: "Merit Award", ProviderName: "City Trust", Eligibility: wildcard},
	}

	out := FilterScholarships(items, models.ScholarshipCriteria{Search: "any", State: "Kerala"})
	assert.Equal(t, []string{"anyone"}, ids(out))

	assert.Equal(t, items, FilterScholarships(items, models.ScholarshipCriteria{Search: " ANY "}))
	assert.True(t, Matches(items[1], models.ScholarshipCriteria{Search: "any"}))
	assert.False(t, Matches(items[1], models.ScholarshipCriteria{Search: "any", State: "Kerala"}))
}

func TestFilterScholarshipsProviderType(t *testing.T) {
	items := []models.Scholarship{
		{ID: "gov", ProviderType: models.ProviderGovernment},
		{ID: "pvt", ProviderType: models.ProviderPrivate},
		{ID: "unset"},
		{ID: "any", ProviderType: "Any"},
	}

	out := FilterScholarships(items, models.ScholarshipCriteria{ProviderType: " government"})
	assert.Equal(t, []string{"gov", "unset", "any"}, ids(out))
}

func TestFilterScholarshipsDoesNotMutateInput(t *testing.T) {
	items := []models.Scholarship{
		{ID: "1", Eligibility: models.EligibilityRules{{Category: models.Literal("SC")}}},
		{ID: "2", Eligibility: models.EligibilityRules{{Category: models.Literal("OBC")}}},
	}
	before := append([]models.Scholarship(nil), items...)

	out := FilterScholarships(items, models.ScholarshipCriteria{Category: "OBC"})
	require.Len(t, out, 1)
	out[0].Name = "changed"

	assert.Equal(t, before, items)
}

func TestFilterScholarshipsScenario(t *testing.T) {
	items := decodeCatalog(t, `[
		{"id": "a", "scholarship_name": "Open To All", "eligibility": []},
		{"id": "b", "scholarship_name": "OBC Support", "eligibility": [{"category": "OBC", "family_income_max": 250000}]},
		{"id": "c", "scholarship_name": "Girls Grant", "eligibility": [{"category": "any", "gender": "female"}]}
	]`)

	out := FilterScholarships(items, models.ScholarshipCriteria{Category: "OBC", IncomeLimit: "200000"})
	assert.Equal(t, []string{"b", "c"}, ids(out))

	out = FilterScholarships(items, models.ScholarshipCriteria{Search: "o"})
	assert.Equal(t, []string{"a", "b"}, ids(out))
}

func TestMatches(t *testing.T) {
	s := models.Scholarship{ID: "1", Eligibility: models.EligibilityRules{{Gender: models.Literal("female")}}}

	assert.True(t, Matches(s, models.ScholarshipCriteria{}))
	assert.True(t, Matches(s, models.ScholarshipCriteria{Gender: "FEMALE"}))
	assert.False(t, Matches(s, models.ScholarshipCriteria{Gender: "male"}))
	assert.True(t, HasActiveCriteria(models.ScholarshipCriteria{Branch: "arts"}))
	assert.False(t, HasActiveCriteria(models.ScholarshipCriteria{Branch: "any", Search: "   "}))
}
