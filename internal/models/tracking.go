package models

import (
	"time"

	"github.com/Rhea-16/scholarLink/internal/tracking"
)

// SavedScholarship is a student's overlay entry for one scholarship.
type SavedScholarship struct {
	UserID        string          `db:"user_id" json:"user_id"`
	ScholarshipID string          `db:"scholarship_id" json:"scholarship_id"`
	Status        tracking.Status `db:"status" json:"status"`
	ApplicationID string          `db:"application_id" json:"application_id"`
	Notes         string          `db:"notes" json:"notes"`
	DateApplied   *time.Time      `db:"date_applied" json:"date_applied,omitempty"`
	ReminderDate  *time.Time      `db:"reminder_date" json:"reminder_date,omitempty"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// Reminder is a to-do attached to a saved scholarship.
type Reminder struct {
	ID            string     `db:"id" json:"id"`
	UserID        string     `db:"user_id" json:"-"`
	ScholarshipID string     `db:"scholarship_id" json:"scholarship_id"`
	Text          string     `db:"text" json:"text"`
	DueDate       *time.Time `db:"due_date" json:"due_date,omitempty"`
	Completed     bool       `db:"completed" json:"completed"`
	NotifiedAt    *time.Time `db:"notified_at" json:"notified_at,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

// UpdateTrackingRequest patches the overlay. Nil fields are left untouched.
type UpdateTrackingRequest struct {
	Status        *string `json:"status"`
	ApplicationID *string `json:"application_id" validate:"omitempty,max=100"`
	Notes         *string `json:"notes" validate:"omitempty,max=2000"`
	DateApplied   *string `json:"date_applied" validate:"omitempty,datetime=2006-01-02"`
	ReminderDate  *string `json:"reminder_date" validate:"omitempty,datetime=2006-01-02"`
}

// CreateReminderRequest adds a reminder to a saved scholarship.
type CreateReminderRequest struct {
	Text    string `json:"text" validate:"required,max=200"`
	DueDate string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

// TrackedListRequest filters the caller's tracked scholarships.
type TrackedListRequest struct {
	Filter tracking.ListFilter
	Search string
}
