package services

import (
	"context"
	"fmt"

	"github.com/aturkov/jobpilot/internal/api"
	"github.com/aturkov/jobpilot/internal/models"
)

// ApplicationService manages the job-application collection.
type ApplicationService struct {
	api api.Client
}

func NewApplicationService(apiClient api.Client) *ApplicationService {
	return &ApplicationService{api: apiClient}
}

// List fetches the application collection.
func (s *ApplicationService) List(ctx context.Context) ([]models.JobApplication, error) {
	list, err := s.api.ListApplications(ctx)
	if err != nil {
		return nil, err
	}
	return list.JobApplications, nil
}

// Create submits a new application.
func (s *ApplicationService) Create(ctx context.Context, req models.ApplicationRequest) error {
	return s.api.CreateApplication(ctx, req)
}

// Update sends a partial update; only the fields set in update change on the
// server.
func (s *ApplicationService) Update(ctx context.Context, id string, update models.ApplicationUpdate) error {
	return s.api.UpdateApplication(ctx, id, update)
}

// UpdateStatus moves an application to a new tracking status. Unknown
// statuses are rejected before the request is issued.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	if !status.Valid() {
		return fmt.Errorf("unknown status %q", status)
	}
	return s.Update(ctx, id, models.ApplicationUpdate{Status: status})
}

// Delete removes the application with the given id.
func (s *ApplicationService) Delete(ctx context.Context, id string) error {
	return s.api.DeleteApplication(ctx, id)
}

// GenerateCoverLetter asks the server to start a cover-letter job for the
// application. Fire-and-forget: the result appears in CoverLetterData on a
// later fetch.
func (s *ApplicationService) GenerateCoverLetter(ctx context.Context, id string) error {
	return s.api.GenerateCoverLetter(ctx, id)
}
