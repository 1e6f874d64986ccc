package services

import (
	"context"

	"github.com/aturkov/jobpilot/internal/api"
	"github.com/aturkov/jobpilot/internal/models"
)

// recentCount is how many recent items the dashboard shows per resource.
const recentCount = 3

// Dashboard is the data backing the dashboard view: the server aggregate plus
// the most recent resumes and applications.
type Dashboard struct {
	Overview           models.DashboardOverview
	RecentResumes      []models.Resume
	RecentApplications []models.JobApplication
}

// DashboardService assembles the dashboard from three API calls.
type DashboardService struct {
	api api.Client
}

func NewDashboardService(apiClient api.Client) *DashboardService {
	return &DashboardService{api: apiClient}
}

// Fetch loads the overview and the recent slices. Any failing call fails the
// whole dashboard; there is no partial rendering.
func (s *DashboardService) Fetch(ctx context.Context) (*Dashboard, error) {
	overview, err := s.api.DashboardOverview(ctx)
	if err != nil {
		return nil, err
	}
	resumes, err := s.api.ListResumes(ctx)
	if err != nil {
		return nil, err
	}
	applications, err := s.api.ListApplications(ctx)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{Overview: *overview}
	d.RecentResumes = resumes.Resumes
	if len(d.RecentResumes) > recentCount {
		d.RecentResumes = d.RecentResumes[:recentCount]
	}
	d.RecentApplications = applications.JobApplications
	if len(d.RecentApplications) > recentCount {
		d.RecentApplications = d.RecentApplications[:recentCount]
	}
	return d, nil
}
