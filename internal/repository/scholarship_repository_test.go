package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rhea-16/scholarLink/internal/models"
)

var scholarshipCols = []string{"id", "name", "provider_name", "provider_type", "category", "benefit_amount", "application_end_date", "eligibility", "description", "tags", "is_featured", "priority_score", "application_link", "created_at", "updated_at"}

func TestScholarshipListAll(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewScholarshipRepository(db)

	now := time.Now()
	deadline := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(scholarshipCols).
		AddRow("s1", "Merit", "Ministry", "Government", "Merit-Based", 50000.0, deadline, []byte(`[{"category":"OBC","family_income_max":250000}]`), "desc", "{stem,women}", true, 8.5, "", now, now).
		AddRow("s2", "Loan", "Bank", "Loan", "Need", nil, nil, nil, "", "{}", false, nil, "", now, now)
	mock.ExpectQuery("SELECT (.+) FROM scholarships ORDER BY created_at ASC, id ASC").WillReturnRows(rows)

	items, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, models.ProviderGovernment, items[0].ProviderType)
	require.Len(t, items[0].Eligibility, 1)
	assert.True(t, items[0].Eligibility[0].Category.Matches("obc"))
	assert.Equal(t, []string{"stem", "women"}, []string(items[0].Tags))
	require.NotNil(t, items[0].BenefitAmount)
	assert.Equal(t, 50000.0, *items[0].BenefitAmount)

	assert.Nil(t, items[1].BenefitAmount)
	assert.Nil(t, items[1].Deadline)
	assert.Empty(t, items[1].Eligibility)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScholarshipCreateAndUpdate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewScholarshipRepository(db)

	mock.ExpectExec("INSERT INTO scholarships").WillReturnResult(sqlmock.NewResult(1, 1))
	item := &models.Scholarship{Name: "New", ProviderName: "Trust"}
	require.NoError(t, repo.Create(context.Background(), item))
	assert.NotEmpty(t, item.ID)
	assert.NotNil(t, item.Eligibility)

	mock.ExpectExec("UPDATE scholarships SET").WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.Update(context.Background(), &models.Scholarship{ID: "ghost"})
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScholarshipDelete(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewScholarshipRepository(db)

	mock.ExpectExec("DELETE FROM scholarships WHERE id = \\$1").WithArgs("s1").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), "s1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
