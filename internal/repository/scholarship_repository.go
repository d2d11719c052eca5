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

const scholarshipColumns = `id, name, provider_name, provider_type, category, benefit_amount, application_end_date, eligibility, description, tags, is_featured, priority_score, application_link, created_at, updated_at`

// ScholarshipRepository persists the scholarship catalog.
type ScholarshipRepository struct {
	db *sqlx.DB
}

// NewScholarshipRepository constructs the repository.
func NewScholarshipRepository(db *sqlx.DB) *ScholarshipRepository {
	return &ScholarshipRepository{db: db}
}

// ListAll returns the whole catalog in insertion order. Filtering happens in
// memory, so no criteria are pushed into SQL.
func (r *ScholarshipRepository) ListAll(ctx context.Context) ([]models.Scholarship, error) {
	query := `SELECT ` + scholarshipColumns + ` FROM scholarships ORDER BY created_at ASC, id ASC`
	var items []models.Scholarship
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list scholarships: %w", err)
	}
	if items == nil {
		items = []models.Scholarship{}
	}
	return items, nil
}

// FindByID returns a scholarship by id.
func (r *ScholarshipRepository) FindByID(ctx context.Context, id string) (*models.Scholarship, error) {
	query := `SELECT ` + scholarshipColumns + ` FROM scholarships WHERE id = $1`
	var item models.Scholarship
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find scholarship: %w", err)
	}
	return &item, nil
}

// Create inserts a scholarship.
func (r *ScholarshipRepository) Create(ctx context.Context, item *models.Scholarship) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	if item.Eligibility == nil {
		item.Eligibility = models.EligibilityRules{}
	}
	const query = `INSERT INTO scholarships (id, name, provider_name, provider_type, category, benefit_amount, application_end_date, eligibility, description, tags, is_featured, priority_score, application_link, created_at, updated_at)
VALUES (:id, :name, :provider_name, :provider_type, :category, :benefit_amount, :application_end_date, :eligibility, :description, :tags, :is_featured, :priority_score, :application_link, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, item); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create scholarship: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of a scholarship.
func (r *ScholarshipRepository) Update(ctx context.Context, item *models.Scholarship) error {
	item.UpdatedAt = time.Now().UTC()
	if item.Eligibility == nil {
		item.Eligibility = models.EligibilityRules{}
	}
	const query = `UPDATE scholarships SET name = :name, provider_name = :provider_name, provider_type = :provider_type, category = :category,
benefit_amount = :benefit_amount, application_end_date = :application_end_date, eligibility = :eligibility, description = :description,
tags = :tags, is_featured = :is_featured, priority_score = :priority_score, application_link = :application_link, updated_at = :updated_at
WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return fmt.Errorf("update scholarship: %w", err)
	}
	return requireAffected(res, "update scholarship")
}

// Delete removes a scholarship. Saved overlays cascade in the schema.
func (r *ScholarshipRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM scholarships WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete scholarship: %w", err)
	}
	return requireAffected(res, "delete scholarship")
}

// requireAffected maps a zero-row write to sql.ErrNoRows.
func requireAffected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", op, err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
