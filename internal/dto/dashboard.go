package dto

import "time"

// DashboardStats summarises a student's matches and application progress.
type DashboardStats struct {
	Eligible  int               `json:"eligible"`
	Saved     int               `json:"saved"`
	Applied   int               `json:"applied"`
	Tracking  int               `json:"tracking"`
	Completed int               `json:"completed"`
	Providers ProviderBreakdown `json:"providers"`
	Generated time.Time         `json:"generatedAt"`
}

// ProviderBreakdown counts eligible scholarships per provider family.
type ProviderBreakdown struct {
	Government int `json:"government"`
	Private    int `json:"private"`
	NGO        int `json:"ngo"`
	Others     int `json:"others"`
}
