package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rhea-16/scholarLink/internal/models"
	"github.com/Rhea-16/scholarLink/internal/tracking"
)

var (
	savedCols    = []string{"user_id", "scholarship_id", "status", "application_id", "notes", "date_applied", "reminder_date", "created_at", "updated_at"}
	reminderCols = []string{"id", "user_id", "scholarship_id", "text", "due_date", "completed", "notified_at", "created_at"}
)

func TestTrackingListSaved(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTrackingRepository(db)

	now := time.Now()
	mock.ExpectQuery("FROM user_scholarships WHERE user_id = \\$1 ORDER BY updated_at DESC").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(savedCols).
			AddRow("u1", "s1", "applied", "APP-9", "sent docs", now, nil, now, now).
			AddRow("u1", "s2", "saved", "", "", nil, nil, now, now))

	entries, err := repo.ListSaved(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, tracking.StatusApplied, entries[0].Status)
	assert.NotNil(t, entries[0].DateApplied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrackingSaveAndUpdate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTrackingRepository(db)

	mock.ExpectExec("INSERT INTO user_scholarships (.+) ON CONFLICT").WillReturnResult(sqlmock.NewResult(1, 1))
	entry := &models.SavedScholarship{UserID: "u1", ScholarshipID: "s1", Status: tracking.StatusSaved}
	require.NoError(t, repo.Save(context.Background(), entry))

	mock.ExpectExec("UPDATE user_scholarships SET").WillReturnResult(sqlmock.NewResult(0, 1))
	entry.Status = tracking.StatusApplied
	require.NoError(t, repo.UpdateSaved(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrackingUnsave(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTrackingRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM scholarship_reminders").WithArgs("u1", "s1").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM user_scholarships").WithArgs("u1", "s1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	require.NoError(t, repo.Unsave(context.Background(), "u1", "s1"))

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM scholarship_reminders").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM user_scholarships").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()
	err := repo.Unsave(context.Background(), "u1", "missing")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrackingCountByStatus(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTrackingRepository(db)

	mock.ExpectQuery("SELECT status, COUNT\\(\\*\\) AS count FROM user_scholarships").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).AddRow("saved", 3).AddRow("applied", 1))

	counts, err := repo.CountByStatus(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"saved": 3, "applied": 1}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrackingReminders(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTrackingRepository(db)
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO scholarship_reminders").WillReturnResult(sqlmock.NewResult(1, 1))
	reminder := &models.Reminder{UserID: "u1", ScholarshipID: "s1", Text: "upload income certificate"}
	require.NoError(t, repo.CreateReminder(ctx, reminder))
	assert.NotEmpty(t, reminder.ID)

	now := time.Now()
	mock.ExpectQuery("FROM scholarship_reminders WHERE user_id = \\$1 AND scholarship_id = \\$2").
		WithArgs("u1", "s1").
		WillReturnRows(sqlmock.NewRows(reminderCols).AddRow(reminder.ID, "u1", "s1", "upload income certificate", nil, false, nil, now))
	list, err := repo.ListReminders(ctx, "u1", "s1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	mock.ExpectExec("UPDATE scholarship_reminders SET completed").WithArgs("u1", reminder.ID, true).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.SetReminderCompleted(ctx, "u1", reminder.ID, true))

	mock.ExpectExec("DELETE FROM scholarship_reminders WHERE user_id").WithArgs("u1", "nope").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.DeleteReminder(ctx, "u1", "nope"), sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrackingDueReminders(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTrackingRepository(db)

	asOf := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("WHERE completed = FALSE AND notified_at IS NULL").
		WithArgs(asOf, 100).
		WillReturnRows(sqlmock.NewRows(reminderCols).AddRow("r1", "u1", "s1", "deadline soon", asOf, false, nil, asOf))

	due, err := repo.ListDueReminders(context.Background(), asOf, 0)
	require.NoError(t, err)
	require.Len(t, due, 1)

	mock.ExpectExec("UPDATE scholarship_reminders SET notified_at").WithArgs("r1", asOf).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.MarkReminderNotified(context.Background(), "r1", asOf))
	assert.NoError(t, mock.ExpectationsWereMet())
}
