package models

import (
	"encoding/json"
	"time"
)

// ApplicationStatus is the user-editable tracking state of a job application.
type ApplicationStatus string

const (
	StatusDraft     ApplicationStatus = "draft"
	StatusApplied   ApplicationStatus = "applied"
	StatusInterview ApplicationStatus = "interview"
	StatusRejected  ApplicationStatus = "rejected"
	StatusAccepted  ApplicationStatus = "accepted"
)

// ApplicationStatuses lists every status the API accepts, in display order.
var ApplicationStatuses = []ApplicationStatus{
	StatusDraft, StatusApplied, StatusInterview, StatusRejected, StatusAccepted,
}

// Valid reports whether s is one of the statuses the API accepts.
func (s ApplicationStatus) Valid() bool {
	for _, known := range ApplicationStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// JobApplication tracks one application against a selected resume.
// CoverLetterData is populated asynchronously by a server-side generation job;
// the client triggers it but never awaits it.
type JobApplication struct {
	ID                  string            `json:"id"`
	UserID              string            `json:"user_id"`
	ResumeID            string            `json:"resume_id"`
	CompanyName         string            `json:"company_name"`
	PositionTitle       string            `json:"position_title"`
	JobDescription      string            `json:"job_description"`
	ApplicationURL      string            `json:"application_url,omitempty"`
	ApplicationDeadline *time.Time        `json:"application_deadline,omitempty"`
	Status              ApplicationStatus `json:"status"`
	Notes               string            `json:"notes,omitempty"`
	CoverLetterData     json.RawMessage   `json:"cover_letter_data,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// ApplicationList is the response shape of GET /api/job-application.
type ApplicationList struct {
	JobApplications []JobApplication `json:"job_applications"`
	Pagination      Pagination       `json:"pagination"`
}

// ApplicationRequest carries the fields for creating an application.
type ApplicationRequest struct {
	CompanyName         string `json:"company_name"`
	PositionTitle       string `json:"position_title"`
	JobDescription      string `json:"job_description"`
	ApplicationURL      string `json:"application_url,omitempty"`
	ApplicationDeadline string `json:"application_deadline,omitempty"`
	Notes               string `json:"notes,omitempty"`
	ResumeID            string `json:"resume_id"`
}

// ApplicationUpdate carries partial fields for PUT /api/job-application/{id}.
type ApplicationUpdate struct {
	Status ApplicationStatus `json:"status,omitempty"`
	Notes  string            `json:"notes,omitempty"`
}
