package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Rhea-16/scholarLink/internal/models"
)

const profileColumns = `user_id, first_name, middle_name, last_name, gender, dob, religion, state, district, city, pincode,
primary_phone, secondary_phone, email, caste, category, nationality, is_orphan, specially_abled, is_minority,
school_name, college_name, course_stream, tenth_pass_year, twelfth_pass_year, tenth_percentage, twelfth_percentage,
is_diploma_student, family_income, family_members_count, family_farmer, family_military, family_covid_victim,
created_at, updated_at`

// ProfileRepository stores student eligibility profiles, one per user.
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository constructs the repository.
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// FindByUserID returns the caller's profile or sql.ErrNoRows.
func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*models.StudentProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM student_profiles WHERE user_id = $1`
	var profile models.StudentProfile
	if err := r.db.GetContext(ctx, &profile, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return &profile, nil
}

// Exists reports whether the user has registered a profile.
func (r *ProfileRepository) Exists(ctx context.Context, userID string) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM student_profiles WHERE user_id = $1)`, userID); err != nil {
		return false, fmt.Errorf("profile exists: %w", err)
	}
	return exists, nil
}

// Upsert inserts the profile or replaces every field of an existing one.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *models.StudentProfile) error {
	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	const query = `INSERT INTO student_profiles (` + profileColumns + `) VALUES (
:user_id, :first_name, :middle_name, :last_name, :gender, :dob, :religion, :state, :district, :city, :pincode,
:primary_phone, :secondary_phone, :email, :caste, :category, :nationality, :is_orphan, :specially_abled, :is_minority,
:school_name, :college_name, :course_stream, :tenth_pass_year, :twelfth_pass_year, :tenth_percentage, :twelfth_percentage,
:is_diploma_student, :family_income, :family_members_count, :family_farmer, :family_military, :family_covid_victim,
:created_at, :updated_at)
ON CONFLICT (user_id) DO UPDATE SET
first_name = EXCLUDED.first_name, middle_name = EXCLUDED.middle_name, last_name = EXCLUDED.last_name,
gender = EXCLUDED.gender, dob = EXCLUDED.dob, religion = EXCLUDED.religion, state = EXCLUDED.state,
district = EXCLUDED.district, city = EXCLUDED.city, pincode = EXCLUDED.pincode,
primary_phone = EXCLUDED.primary_phone, secondary_phone = EXCLUDED.secondary_phone, email = EXCLUDED.email,
caste = EXCLUDED.caste, category = EXCLUDED.category, nationality = EXCLUDED.nationality,
is_orphan = EXCLUDED.is_orphan, specially_abled = EXCLUDED.specially_abled, is_minority = EXCLUDED.is_minority,
school_name = EXCLUDED.school_name, college_name = EXCLUDED.college_name, course_stream = EXCLUDED.course_stream,
tenth_pass_year = EXCLUDED.tenth_pass_year, twelfth_pass_year = EXCLUDED.twelfth_pass_year,
tenth_percentage = EXCLUDED.tenth_percentage, twelfth_percentage = EXCLUDED.twelfth_percentage,
is_diploma_student = EXCLUDED.is_diploma_student, family_income = EXCLUDED.family_income,
family_members_count = EXCLUDED.family_members_count, family_farmer = EXCLUDED.family_farmer,
family_military = EXCLUDED.family_military, family_covid_victim = EXCLUDED.family_covid_victim,
updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, profile); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
