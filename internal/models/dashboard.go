package models

import "time"

// DashboardOverview is the aggregate returned by GET /api/dashboard/overview.
type DashboardOverview struct {
	TotalResumes          int        `json:"total_resumes"`
	TotalApplications     int        `json:"total_applications"`
	ApplicationsThisMonth int        `json:"applications_this_month"`
	AIRequestsThisMonth   int        `json:"ai_requests_this_month"`
	SubscriptionStatus    string     `json:"subscription_status"`
	SubscriptionExpiresAt *time.Time `json:"subscription_expires_at,omitempty"`
}
