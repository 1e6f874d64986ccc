// Package api contains the HTTP adapter for the JobPilot REST API.
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     auth, resumes, job applications, and the dashboard overview.
//  2. A concrete JSON-over-HTTP implementation (see HTTPClient) that injects
//     the persisted bearer token, tags every request with an X-Request-Id,
//     and converts non-success responses into typed errors.
//
// Common failure conditions are exposed as sentinel errors matched with
// errors.Is: ErrUnavailable, ErrUnauthorized. Server-supplied error text is
// carried by *Error and extracted with ErrorMessage.
//
// All operations accept a context.Context and honor cancellation. No call is
// ever retried; a failure is terminal for that user action.
package api

import (
	"context"

	"github.com/aturkov/jobpilot/internal/models"
)

// RegisterRequest carries the fields for POST /api/auth/register.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Client is the API contract the rest of the client programs against.
type Client interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, req RegisterRequest) (*models.AuthResponse, error)
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error)

	ListResumes(ctx context.Context) (*models.ResumeList, error)
	UploadResume(ctx context.Context, filename string, data []byte) error
	DeleteResume(ctx context.Context, id string) error
	AnalyzeResume(ctx context.Context, id string) error

	ListApplications(ctx context.Context) (*models.ApplicationList, error)
	CreateApplication(ctx context.Context, req models.ApplicationRequest) error
	UpdateApplication(ctx context.Context, id string, update models.ApplicationUpdate) error
	DeleteApplication(ctx context.Context, id string) error
	GenerateCoverLetter(ctx context.Context, id string) error

	DashboardOverview(ctx context.Context) (*models.DashboardOverview, error)

	Close() error
}
