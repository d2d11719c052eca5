package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/Rhea-16/scholarLink/internal/tracking"
)

// DateLayout is the calendar-date wire format used for deadlines.
const DateLayout = "2006-01-02"

// ProviderType classifies the organisation funding a scholarship.
type ProviderType string

const (
	ProviderGovernment ProviderType = "Government"
	ProviderPrivate    ProviderType = "Private"
	ProviderNGO        ProviderType = "NGO"
	ProviderCSR        ProviderType = "CSR"
	ProviderLoan       ProviderType = "Loan"
	ProviderOther      ProviderType = "Other"
)

// Scholarship is a funding opportunity together with the caller's overlay state.
type Scholarship struct {
	ID              string           `db:"id" json:"id"`
	Name            string           `db:"name" json:"scholarship_name"`
	ProviderName    string           `db:"provider_name" json:"provider_name"`
	ProviderType    ProviderType     `db:"provider_type" json:"provider_type"`
	Category        string           `db:"category" json:"category"`
	BenefitAmount   *float64         `db:"benefit_amount" json:"benefit_amount"`
	Deadline        *time.Time       `db:"application_end_date" json:"application_end_date"`
	Eligibility     EligibilityRules `db:"eligibility" json:"eligibility"`
	Description     string           `db:"description" json:"description"`
	Tags            pq.StringArray   `db:"tags" json:"tags"`
	IsFeatured      bool             `db:"is_featured" json:"is_featured"`
	PriorityScore   *float64         `db:"priority_score" json:"priority_score"`
	ApplicationLink string           `db:"application_link" json:"application_link,omitempty"`
	CreatedAt       time.Time        `db:"created_at" json:"-"`
	UpdatedAt       time.Time        `db:"updated_at" json:"-"`

	IsSaved       bool             `db:"-" json:"is_saved"`
	UserStatus    *tracking.Status `db:"-" json:"user_status"`
	ApplicationID string           `db:"-" json:"application_id,omitempty"`
	Notes         string           `db:"-" json:"notes,omitempty"`
	DateApplied   *time.Time       `db:"-" json:"date_applied,omitempty"`
	ReminderDate  *time.Time       `db:"-" json:"reminder_date,omitempty"`
	Reminders     []Reminder       `db:"-" json:"reminders,omitempty"`
}

// MarshalJSON writes the deadline as a calendar date.
func (s Scholarship) MarshalJSON() ([]byte, error) {
	type alias Scholarship
	var deadline *string
	if s.Deadline != nil {
		formatted := s.Deadline.Format(DateLayout)
		deadline = &formatted
	}
	return json.Marshal(struct {
		Deadline *string `json:"application_end_date"`
		alias
	}{Deadline: deadline, alias: alias(s)})
}

// UnmarshalJSON tolerates the loose shapes found in catalog feeds: numeric or
// string ids, numeric strings for amounts and date or timestamp deadlines.
// Malformed optional values are dropped rather than rejected.
func (s *Scholarship) UnmarshalJSON(data []byte) error {
	type alias Scholarship
	aux := struct {
		ID            json.RawMessage `json:"id"`
		BenefitAmount json.RawMessage `json:"benefit_amount"`
		PriorityScore json.RawMessage `json:"priority_score"`
		Deadline      json.RawMessage `json:"application_end_date"`
		*alias
	}{alias: (*alias)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.ID = parseJSONID(aux.ID)
	s.BenefitAmount = optionalAmount(aux.BenefitAmount)
	s.PriorityScore = optionalAmount(aux.PriorityScore)
	s.Deadline = nil
	var rawDeadline string
	if err := json.Unmarshal(aux.Deadline, &rawDeadline); err == nil {
		s.Deadline = ParseDate(rawDeadline)
	}
	return nil
}

// ParseDate accepts YYYY-MM-DD or RFC3339 values and returns nil otherwise.
func ParseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{DateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

func parseJSONID(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return string(trimmed)
}

func optionalAmount(raw json.RawMessage) *float64 {
	v, ok := parseJSONAmount(raw)
	if !ok {
		return nil
	}
	return &v
}

// ScholarshipCriteria is the caller's active filter selection. Empty fields are inactive.
type ScholarshipCriteria struct {
	Search       string `form:"search" json:"search,omitempty"`
	State        string `form:"state" json:"state,omitempty"`
	Category     string `form:"category" json:"category,omitempty"`
	Gender       string `form:"gender" json:"gender,omitempty"`
	IncomeLimit  string `form:"incomeLimit" json:"incomeLimit,omitempty"`
	Branch       string `form:"branch" json:"branch,omitempty"`
	ProviderType string `form:"providerType" json:"providerType,omitempty"`
}

// SortMode selects the listing order.
type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortDeadline  SortMode = "deadline"
	SortAmount    SortMode = "amount"
)

// ParseSortMode falls back to SortRelevance for unknown values.
func ParseSortMode(raw string) SortMode {
	switch mode := SortMode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case SortDeadline, SortAmount:
		return mode
	}
	return SortRelevance
}

// ScholarshipListRequest bundles criteria, ordering and paging for listings.
type ScholarshipListRequest struct {
	Criteria ScholarshipCriteria
	SortBy   SortMode
	Page     int
	PageSize int
}

// ScholarshipUpsertRequest is the admin payload for creating or replacing a scholarship.
type ScholarshipUpsertRequest struct {
	Name            string            `json:"scholarship_name" validate:"required"`
	ProviderName    string            `json:"provider_name" validate:"required"`
	ProviderType    ProviderType      `json:"provider_type" validate:"omitempty,oneof=Government Private NGO CSR Loan Other"`
	Category        string            `json:"category"`
	BenefitAmount   *float64          `json:"benefit_amount" validate:"omitempty,gte=0"`
	Deadline        string            `json:"application_end_date" validate:"omitempty,datetime=2006-01-02"`
	Eligibility     []EligibilityRule `json:"eligibility"`
	Description     string            `json:"description"`
	Tags            []string          `json:"tags"`
	IsFeatured      bool              `json:"is_featured"`
	PriorityScore   *float64          `json:"priority_score"`
	ApplicationLink string            `json:"application_link" validate:"omitempty,url"`
}
