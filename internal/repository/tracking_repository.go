package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Rhea-16/scholarLink/internal/models"
)

const savedColumns = `user_id, scholarship_id, status, application_id, notes, date_applied, reminder_date, created_at, updated_at`
const reminderColumns = `id, user_id, scholarship_id, text, due_date, completed, notified_at, created_at`

// TrackingRepository stores the per-user saved/status overlay and its reminders.
type TrackingRepository struct {
	db *sqlx.DB
}

// NewTrackingRepository constructs the repository.
func NewTrackingRepository(db *sqlx.DB) *TrackingRepository {
	return &TrackingRepository{db: db}
}

// ListSaved returns every overlay entry for a user, newest first.
func (r *TrackingRepository) ListSaved(ctx context.Context, userID string) ([]models.SavedScholarship, error) {
	query := `SELECT ` + savedColumns + ` FROM user_scholarships WHERE user_id = $1 ORDER BY updated_at DESC`
	var entries []models.SavedScholarship
	if err := r.db.SelectContext(ctx, &entries, query, userID); err != nil {
		return nil, fmt.Errorf("list saved scholarships: %w", err)
	}
	return entries, nil
}

// FindSaved returns one overlay entry or sql.ErrNoRows.
func (r *TrackingRepository) FindSaved(ctx context.Context, userID, scholarshipID string) (*models.SavedScholarship, error) {
	query := `SELECT ` + savedColumns + ` FROM user_scholarships WHERE user_id = $1 AND scholarship_id = $2`
	var entry models.SavedScholarship
	if err := r.db.GetContext(ctx, &entry, query, userID, scholarshipID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find saved scholarship: %w", err)
	}
	return &entry, nil
}

// Save inserts an overlay entry. Saving twice keeps the existing entry.
func (r *TrackingRepository) Save(ctx context.Context, entry *models.SavedScholarship) error {
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	const query = `INSERT INTO user_scholarships (` + savedColumns + `) VALUES (:user_id, :scholarship_id, :status, :application_id, :notes, :date_applied, :reminder_date, :created_at, :updated_at)
ON CONFLICT (user_id, scholarship_id) DO NOTHING`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("save scholarship: %w", err)
	}
	return nil
}

// UpdateSaved writes status and tracking details for an existing entry.
func (r *TrackingRepository) UpdateSaved(ctx context.Context, entry *models.SavedScholarship) error {
	entry.UpdatedAt = time.Now().UTC()
	const query = `UPDATE user_scholarships SET status = :status, application_id = :application_id, notes = :notes,
date_applied = :date_applied, reminder_date = :reminder_date, updated_at = :updated_at
WHERE user_id = :user_id AND scholarship_id = :scholarship_id`
	res, err := r.db.NamedExecContext(ctx, query, entry)
	if err != nil {
		return fmt.Errorf("update saved scholarship: %w", err)
	}
	return requireAffected(res, "update saved scholarship")
}

// Unsave removes the overlay entry and its reminders.
func (r *TrackingRepository) Unsave(ctx context.Context, userID, scholarshipID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin unsave: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM scholarship_reminders WHERE user_id = $1 AND scholarship_id = $2`, userID, scholarshipID); err != nil {
		return fmt.Errorf("delete reminders: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM user_scholarships WHERE user_id = $1 AND scholarship_id = $2`, userID, scholarshipID)
	if err != nil {
		return fmt.Errorf("unsave scholarship: %w", err)
	}
	if err := requireAffected(res, "unsave scholarship"); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit unsave: %w", err)
	}
	return nil
}

// CountByStatus aggregates a user's overlay entries per status.
func (r *TrackingRepository) CountByStatus(ctx context.Context, userID string) (map[string]int, error) {
	rows := []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}{}
	const query = `SELECT status, COUNT(*) AS count FROM user_scholarships WHERE user_id = $1 GROUP BY status`
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("count saved by status: %w", err)
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// ListReminders returns a user's reminders, optionally for one scholarship.
func (r *TrackingRepository) ListReminders(ctx context.Context, userID, scholarshipID string) ([]models.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM scholarship_reminders WHERE user_id = $1`
	args := []interface{}{userID}
	if scholarshipID != "" {
		query += ` AND scholarship_id = $2`
		args = append(args, scholarshipID)
	}
	query += ` ORDER BY created_at ASC`
	var reminders []models.Reminder
	if err := r.db.SelectContext(ctx, &reminders, query, args...); err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	return reminders, nil
}

// FindReminder returns a reminder owned by the user or sql.ErrNoRows.
func (r *TrackingRepository) FindReminder(ctx context.Context, userID, reminderID string) (*models.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM scholarship_reminders WHERE user_id = $1 AND id = $2`
	var reminder models.Reminder
	if err := r.db.GetContext(ctx, &reminder, query, userID, reminderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find reminder: %w", err)
	}
	return &reminder, nil
}

// CreateReminder inserts a reminder.
func (r *TrackingRepository) CreateReminder(ctx context.Context, reminder *models.Reminder) error {
	if reminder.ID == "" {
		reminder.ID = uuid.NewString()
	}
	reminder.CreatedAt = time.Now().UTC()
	const query = `INSERT INTO scholarship_reminders (` + reminderColumns + `) VALUES (:id, :user_id, :scholarship_id, :text, :due_date, :completed, :notified_at, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, reminder); err != nil {
		return fmt.Errorf("create reminder: %w", err)
	}
	return nil
}

// SetReminderCompleted flips the completed flag.
func (r *TrackingRepository) SetReminderCompleted(ctx context.Context, userID, reminderID string, completed bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE scholarship_reminders SET completed = $3 WHERE user_id = $1 AND id = $2`, userID, reminderID, completed)
	if err != nil {
		return fmt.Errorf("update reminder: %w", err)
	}
	return requireAffected(res, "update reminder")
}

// DeleteReminder removes a reminder.
func (r *TrackingRepository) DeleteReminder(ctx context.Context, userID, reminderID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM scholarship_reminders WHERE user_id = $1 AND id = $2`, userID, reminderID)
	if err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	return requireAffected(res, "delete reminder")
}

// ListDueReminders returns open, un-notified reminders due on or before asOf.
func (r *TrackingRepository) ListDueReminders(ctx context.Context, asOf time.Time, limit int) ([]models.Reminder, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	query := `SELECT ` + reminderColumns + ` FROM scholarship_reminders
WHERE completed = FALSE AND notified_at IS NULL AND due_date IS NOT NULL AND due_date <= $1
ORDER BY due_date ASC LIMIT $2`
	var reminders []models.Reminder
	if err := r.db.SelectContext(ctx, &reminders, query, asOf, limit); err != nil {
		return nil, fmt.Errorf("list due reminders: %w", err)
	}
	return reminders, nil
}

// MarkReminderNotified stamps notified_at so the sweep skips it next time.
func (r *TrackingRepository) MarkReminderNotified(ctx context.Context, reminderID string, at time.Time) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE scholarship_reminders SET notified_at = $2 WHERE id = $1 AND notified_at IS NULL`, reminderID, at); err != nil {
		return fmt.Errorf("mark reminder notified: %w", err)
	}
	return nil
}
