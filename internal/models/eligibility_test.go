package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleFieldConstructors(t *testing.T) {
	assert.True(t, Literal("").IsWildcard())
	assert.True(t, Literal(" Any ").IsWildcard())
	assert.True(t, OneOf().IsWildcard())
	assert.True(t, OneOf("arts", "ANY").IsWildcard())
	assert.Equal(t, FieldOneOf, OneOf("arts", " ", "law").Kind)
	assert.Equal(t, []string{"arts", "law"}, OneOf("arts", " ", "law").Values)

	assert.True(t, Literal("OBC").Matches("obc"))
	assert.False(t, Literal("OBC").Matches("sc"))
	assert.True(t, Wildcard().Matches("whatever"))
}

func TestRuleFieldJSON(t *testing.T) {
	var rule EligibilityRule
	raw := `{"domicile_state": "Kerala", "category": 12, "gender": null, "course_stream": ["arts", 4, "law"], "family_income_max": "3,00,000"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &rule))

	assert.Equal(t, FieldLiteral, rule.DomicileState.Kind)
	assert.True(t, rule.Category.IsWildcard())
	assert.True(t, rule.Gender.IsWildcard())
	assert.Equal(t, []string{"arts", "law"}, rule.CourseStream.Values)
	limit, ok := rule.FamilyIncomeMax.Amount()
	assert.True(t, ok)
	assert.Equal(t, 300000.0, limit)

	out, err := json.Marshal(rule)
	require.NoError(t, err)
	assert.JSONEq(t, `{"domicile_state":"Kerala","category":"any","gender":"any","course_stream":["arts","law"],"family_income_max":300000}`, string(out))
}

func TestIncomeCap(t *testing.T) {
	assert.True(t, IncomeCapOf(0).IsWildcard())
	assert.True(t, IncomeCapOf(-5).IsWildcard())
	assert.True(t, NoIncomeCap().Allows(1e12))
	assert.True(t, IncomeCapOf(500000).Allows(500000))
	assert.False(t, IncomeCapOf(500000).Allows(500001))
	assert.Equal(t, "any", NoIncomeCap().String())
	assert.Equal(t, "250000", IncomeCapOf(250000).String())
}

func TestParseAmount(t *testing.T) {
	cases := map[string]struct {
		want float64
		ok   bool
	}{
		"250000":     {250000, true},
		"2,50,000":   {250000, true},
		" 250 000 ":  {250000, true},
		"1_000.5":    {1000.5, true},
		"":           {0, false},
		"any":        {0, false},
		"NaN":        {0, false},
		"Inf":        {0, false},
		"ten lakh":   {0, false},
	}
	for raw, tc := range cases {
		got, ok := ParseAmount(raw)
		assert.Equal(t, tc.ok, ok, raw)
		assert.Equal(t, tc.want, got, raw)
	}
}

func TestEligibilityRulesScanValue(t *testing.T) {
	var rules EligibilityRules
	require.NoError(t, rules.Scan([]byte(`[{"category":"SC"},{"gender":"female"}]`)))
	require.Len(t, rules, 2)
	assert.True(t, rules[0].Category.Matches("sc"))

	require.NoError(t, rules.Scan(nil))
	assert.Empty(t, rules)

	assert.Error(t, rules.Scan(42))
	assert.Error(t, rules.Scan("{not json"))

	v, err := EligibilityRules(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestScholarshipJSON(t *testing.T) {
	var s Scholarship
	raw := `{"id": 42, "scholarship_name": "Merit", "benefit_amount": "50,000", "priority_score": "x", "application_end_date": "2026-03-01T00:00:00Z", "is_featured": true}`
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	assert.Equal(t, "42", s.ID)
	require.NotNil(t, s.BenefitAmount)
	assert.Equal(t, 50000.0, *s.BenefitAmount)
	assert.Nil(t, s.PriorityScore)
	require.NotNil(t, s.Deadline)
	assert.True(t, s.IsFeatured)

	out, err := json.Marshal(s)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "2026-03-01", decoded["application_end_date"])

	require.NoError(t, json.Unmarshal([]byte(`{"id":"7","application_end_date":"soon"}`), &s))
	assert.Nil(t, s.Deadline)
}

func TestProfileCriteria(t *testing.T) {
	p := StudentProfile{State: "Kerala", Category: "obc", Gender: "female", CourseStream: "arts", FamilyIncome: 180000}
	c := p.Criteria()
	assert.Equal(t, ScholarshipCriteria{State: "Kerala", Category: "obc", Gender: "female", Branch: "arts", IncomeLimit: "180000"}, c)

	assert.Empty(t, StudentProfile{}.Criteria().IncomeLimit)
}

func TestPagination(t *testing.T) {
	p := NewPagination(5, 9, 20)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 3, p.TotalPages)
	start, end := p.Bounds()
	assert.Equal(t, 18, start)
	assert.Equal(t, 20, end)

	p = NewPagination(0, 9, 0)
	assert.Equal(t, 1, p.Page)
	start, end = p.Bounds()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}
