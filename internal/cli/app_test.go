package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/aturkov/jobpilot/internal/api"
	"github.com/aturkov/jobpilot/internal/logging"
	"github.com/aturkov/jobpilot/internal/models"
	"github.com/aturkov/jobpilot/internal/services"
)

// ---- input/output seams ----

// captureOutput replaces printlnFn and collects everything printed.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

// scriptText replaces getSimpleText with a queue of canned answers; when the
// queue runs out it returns io.EOF, which ends any prompt loop.
func scriptText(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		a := answers[i]
		i++
		return a, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

// scriptPasswords replaces getPassword with a queue of canned answers.
func scriptPasswords(t *testing.T, answers ...string) {
	t.Helper()
	orig := getPassword
	i := 0
	getPassword = func(_ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		a := answers[i]
		i++
		return a, nil
	}
	t.Cleanup(func() { getPassword = orig })
}

// stubConfirm replaces the confirmation prompt with a fixed answer.
func stubConfirm(t *testing.T, answer bool) {
	t.Helper()
	orig := confirm
	confirm = func(_ *bufio.Reader, _ string, _ io.Writer) bool { return answer }
	t.Cleanup(func() { confirm = orig })
}

// ---- fakes ----

type fakeSession struct {
	user    *models.User
	loading bool

	resolveCalls int

	loginEmail    string
	loginPassword string
	loginCalls    int
	loginErr      error

	registerReq   api.RegisterRequest
	registerCalls int
	registerErr   error

	logoutCalls int

	updateReq   models.ProfileUpdate
	updateCalls int
	updateErr   error
}

func (f *fakeSession) Resolve(context.Context) { f.resolveCalls++ }

func (f *fakeSession) Login(_ context.Context, email, password string) error {
	f.loginCalls++
	f.loginEmail, f.loginPassword = email, password
	if f.loginErr != nil {
		return f.loginErr
	}
	f.user = &models.User{Email: email, FirstName: "Test"}
	return nil
}

func (f *fakeSession) Register(_ context.Context, req api.RegisterRequest) error {
	f.registerCalls++
	f.registerReq = req
	if f.registerErr != nil {
		return f.registerErr
	}
	f.user = &models.User{Email: req.Email, FirstName: req.FirstName}
	return nil
}

func (f *fakeSession) Logout() {
	f.logoutCalls++
	f.user = nil
}

func (f *fakeSession) UpdateProfile(_ context.Context, update models.ProfileUpdate) error {
	f.updateCalls++
	f.updateReq = update
	if f.updateErr != nil {
		return f.updateErr
	}
	f.user = &models.User{FirstName: update.FirstName, LastName: update.LastName, Email: update.Email}
	return nil
}

func (f *fakeSession) User() *models.User {
	if f.user == nil {
		return nil
	}
	u := *f.user
	return &u
}

func (f *fakeSession) Loading() bool       { return f.loading }
func (f *fakeSession) Authenticated() bool { return f.user != nil }

type fakeResumes struct {
	items     []models.Resume
	listCalls int
	listErr   error

	uploadPath string
	uploadErr  error

	deleteID    string
	deleteCalls int

	analyzeID    string
	analyzeCalls int
}

func (f *fakeResumes) List(context.Context) ([]models.Resume, error) {
	f.listCalls++
	return f.items, f.listErr
}

func (f *fakeResumes) Upload(_ context.Context, path string) error {
	f.uploadPath = path
	return f.uploadErr
}

func (f *fakeResumes) Delete(_ context.Context, id string) error {
	f.deleteCalls++
	f.deleteID = id
	return nil
}

func (f *fakeResumes) Analyze(_ context.Context, id string) error {
	f.analyzeCalls++
	f.analyzeID = id
	return nil
}

type fakeApps struct {
	items     []models.JobApplication
	listCalls int
	listErr   error

	createReq   models.ApplicationRequest
	createCalls int
	createErr   error

	statusID    string
	statusValue models.ApplicationStatus

	updateID    string
	updateReq   models.ApplicationUpdate
	updateCalls int

	deleteID    string
	deleteCalls int

	coverID    string
	coverCalls int
}

func (f *fakeApps) List(context.Context) ([]models.JobApplication, error) {
	f.listCalls++
	return f.items, f.listErr
}

func (f *fakeApps) Create(_ context.Context, req models.ApplicationRequest) error {
	f.createCalls++
	f.createReq = req
	return f.createErr
}

func (f *fakeApps) Update(_ context.Context, id string, update models.ApplicationUpdate) error {
	f.updateCalls++
	f.updateID, f.updateReq = id, update
	return nil
}

func (f *fakeApps) UpdateStatus(_ context.Context, id string, status models.ApplicationStatus) error {
	f.statusID, f.statusValue = id, status
	return nil
}

func (f *fakeApps) Delete(_ context.Context, id string) error {
	f.deleteCalls++
	f.deleteID = id
	return nil
}

func (f *fakeApps) GenerateCoverLetter(_ context.Context, id string) error {
	f.coverCalls++
	f.coverID = id
	return nil
}

type fakeDash struct {
	ret        *services.Dashboard
	err        error
	fetchCalls int
}

func (f *fakeDash) Fetch(context.Context) (*services.Dashboard, error) {
	f.fetchCalls++
	if f.ret == nil {
		return &services.Dashboard{}, f.err
	}
	return f.ret, f.err
}

// newTestApp builds an App with fakes and a logged-in session by default.
func newTestApp() (*App, *fakeSession, *fakeResumes, *fakeApps, *fakeDash) {
	sess := &fakeSession{user: &models.User{ID: "u1", Email: "a@b.com", FirstName: "Test"}}
	resumes := &fakeResumes{}
	apps := &fakeApps{}
	dash := &fakeDash{}

	a := &App{
		log:          logging.NewTextLogger(io.Discard, slog.LevelError),
		sess:         sess,
		resumeSvc:    resumes,
		appSvc:       apps,
		dashboardSvc: dash,
	}
	return a, sess, resumes, apps, dash
}

func joined(lines *[]string) string {
	return strings.Join(*lines, "\n")
}
