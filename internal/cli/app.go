// Package cli is the interactive terminal frontend: a REPL whose commands map
// to the resource views of the JobPilot client. Views fetch on entry, keep
// their list state locally, and re-fetch after every successful mutation.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/aturkov/jobpilot/internal/api"
	"github.com/aturkov/jobpilot/internal/config"
	"github.com/aturkov/jobpilot/internal/logging"
	"github.com/aturkov/jobpilot/internal/models"
	"github.com/aturkov/jobpilot/internal/services"
	"github.com/aturkov/jobpilot/internal/session"
	"github.com/aturkov/jobpilot/internal/token"
	"github.com/aturkov/jobpilot/internal/viewstate"
)

// sessionStore is the slice of session.Store the views need.
type sessionStore interface {
	Resolve(ctx context.Context)
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, req api.RegisterRequest) error
	Logout()
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) error
	User() *models.User
	Loading() bool
	Authenticated() bool
}

type resumeService interface {
	List(ctx context.Context) ([]models.Resume, error)
	Upload(ctx context.Context, path string) error
	Delete(ctx context.Context, id string) error
	Analyze(ctx context.Context, id string) error
}

type applicationService interface {
	List(ctx context.Context) ([]models.JobApplication, error)
	Create(ctx context.Context, req models.ApplicationRequest) error
	Update(ctx context.Context, id string, update models.ApplicationUpdate) error
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error
	Delete(ctx context.Context, id string) error
	GenerateCoverLetter(ctx context.Context, id string) error
}

type dashboardService interface {
	Fetch(ctx context.Context) (*services.Dashboard, error)
}

type App struct {
	config       *config.Config
	log          logging.Logger
	sess         sessionStore
	resumeSvc    resumeService
	appSvc       applicationService
	dashboardSvc dashboardService
	reader       *bufio.Reader

	resumeList viewstate.List[models.Resume]
	appList    viewstate.List[models.JobApplication]
}

// NewApp wires the API client, session store, and services from config.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	tokens, err := token.DefaultFileStore()
	if err != nil {
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, tokens)
	sess := session.NewStore(apiClient, tokens, log)
	apiClient.OnAuthFailure(sess.Invalidate)

	return &App{
		config:       c,
		log:          log,
		sess:         sess,
		resumeSvc:    services.NewResumeService(apiClient),
		appSvc:       services.NewApplicationService(apiClient),
		dashboardSvc: services.NewDashboardService(apiClient),
		reader:       bufio.NewReader(os.Stdin),
	}, nil
}

// Run resolves the session and enters the REPL. A session restored from a
// persisted token lands the user on the dashboard right away.
func (a *App) Run(ctx context.Context) {
	a.sess.Resolve(ctx)
	if a.sess.Authenticated() {
		printlnFn("Welcome back, " + a.sess.User().FirstName + "!")
		a.Dashboard(ctx)
	}
	a.Root(ctx)
}
