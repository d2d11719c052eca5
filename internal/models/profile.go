package models

import (
	"strconv"
	"time"
)

// StudentProfile is the eligibility profile captured at registration.
type StudentProfile struct {
	UserID             string    `db:"user_id" json:"user_id"`
	FirstName          string    `db:"first_name" json:"first_name"`
	MiddleName         string    `db:"middle_name" json:"middle_name"`
	LastName           string    `db:"last_name" json:"last_name"`
	Gender             string    `db:"gender" json:"gender"`
	DOB                time.Time `db:"dob" json:"dob"`
	Religion           string    `db:"religion" json:"religion"`
	State              string    `db:"state" json:"state"`
	District           string    `db:"district" json:"district"`
	City               string    `db:"city" json:"city"`
	Pincode            string    `db:"pincode" json:"pincode"`
	PrimaryPhone       string    `db:"primary_phone" json:"primary_phone"`
	SecondaryPhone     string    `db:"secondary_phone" json:"secondary_phone"`
	Email              string    `db:"email" json:"email"`
	Caste              string    `db:"caste" json:"caste"`
	Category           string    `db:"category" json:"category"`
	Nationality        string    `db:"nationality" json:"nationality"`
	IsOrphan           bool      `db:"is_orphan" json:"is_orphan"`
	SpeciallyAbled     bool      `db:"specially_abled" json:"specially_abled"`
	IsMinority         bool      `db:"is_minority" json:"is_minority"`
	SchoolName         string    `db:"school_name" json:"school_name"`
	CollegeName        string    `db:"college_name" json:"college_name"`
	CourseStream       string    `db:"course_stream" json:"course_stream"`
	TenthPassYear      int       `db:"tenth_pass_year" json:"tenth_pass_year"`
	TwelfthPassYear    *int      `db:"twelfth_pass_year" json:"twelfth_pass_year,omitempty"`
	TenthPercentage    float64   `db:"tenth_percentage" json:"tenth_percentage"`
	TwelfthPercentage  *float64  `db:"twelfth_percentage" json:"twelfth_percentage,omitempty"`
	IsDiplomaStudent   bool      `db:"is_diploma_student" json:"is_diploma_student"`
	FamilyIncome       float64   `db:"family_income" json:"family_income"`
	FamilyMembersCount int       `db:"family_members_count" json:"family_members_count"`
	FamilyFarmer       bool      `db:"family_farmer" json:"family_farmer"`
	FamilyMilitary     bool      `db:"family_military" json:"family_military"`
	FamilyCovidVictim  bool      `db:"family_covid_victim" json:"family_covid_victim"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}

// Criteria derives the filter selection that matches scholarships against this
// profile. The family income becomes the income ceiling the rules must cover.
func (p StudentProfile) Criteria() ScholarshipCriteria {
	c := ScholarshipCriteria{
		State:    p.State,
		Category: p.Category,
		Gender:   p.Gender,
		Branch:   p.CourseStream,
	}
	if p.FamilyIncome > 0 {
		c.IncomeLimit = strconv.FormatFloat(p.FamilyIncome, 'f', -1, 64)
	}
	return c
}

// RegisterProfileRequest is the registration payload for a student profile.
type RegisterProfileRequest struct {
	FirstName          string   `json:"first_name" validate:"required"`
	MiddleName         string   `json:"middle_name"`
	LastName           string   `json:"last_name" validate:"required"`
	Gender             string   `json:"gender" validate:"required,oneof=male female other"`
	DOB                string   `json:"dob" validate:"required,datetime=2006-01-02"`
	Religion           string   `json:"religion" validate:"required"`
	State              string   `json:"state" validate:"required"`
	District           string   `json:"district" validate:"required"`
	City               string   `json:"city" validate:"required"`
	Pincode            string   `json:"pincode" validate:"required,numeric,len=6"`
	PrimaryPhone       string   `json:"primary_phone" validate:"required,min=10,max=15"`
	SecondaryPhone     string   `json:"secondary_phone" validate:"omitempty,min=10,max=15"`
	Email              string   `json:"email" validate:"required,email"`
	Caste              string   `json:"caste"`
	Category           string   `json:"category" validate:"omitempty,oneof=general obc sc st"`
	Nationality        string   `json:"nationality" validate:"required"`
	IsOrphan           bool     `json:"is_orphan"`
	SpeciallyAbled     bool     `json:"specially_abled"`
	IsMinority         bool     `json:"is_minority"`
	SchoolName         string   `json:"school_name" validate:"required"`
	CollegeName        string   `json:"college_name"`
	CourseStream       string   `json:"course_stream"`
	TenthPassYear      int      `json:"tenth_pass_year" validate:"required,gte=1950,lte=2100"`
	TwelfthPassYear    *int     `json:"twelfth_pass_year" validate:"omitempty,gte=1950,lte=2100"`
	TenthPercentage    float64  `json:"tenth_percentage" validate:"required,gte=0,lte=100"`
	TwelfthPercentage  *float64 `json:"twelfth_percentage" validate:"omitempty,gte=0,lte=100"`
	IsDiplomaStudent   bool     `json:"is_diploma_student"`
	FamilyIncome       float64  `json:"family_income" validate:"gte=0"`
	FamilyMembersCount int      `json:"family_members_count" validate:"gte=0"`
	FamilyFarmer       bool     `json:"family_farmer"`
	FamilyMilitary     bool     `json:"family_military"`
	FamilyCovidVictim  bool     `json:"family_covid_victim"`
}
