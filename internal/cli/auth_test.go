package cli

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aturkov/jobpilot/internal/api"
)

func TestLoginSuccessLandsOnDashboard(t *testing.T) {
	a, sess, _, _, dash := newTestApp()
	sess.user = nil
	out := captureOutput(t)
	scriptText(t, "user@example.com")
	scriptPasswords(t, "password123")

	a.Login(context.Background())

	require.Equal(t, 1, sess.loginCalls)
	require.Equal(t, "user@example.com", sess.loginEmail)
	require.Equal(t, "password123", sess.loginPassword)
	require.Contains(t, joined(out), "Successfully logged in!")
	require.Equal(t, 1, dash.fetchCalls)
}

func TestLoginInvalidEmailBlockedBeforeRequest(t *testing.T) {
	a, sess, _, _, _ := newTestApp()
	sess.user = nil
	out := captureOutput(t)
	scriptText(t, "not-an-email")
	scriptPasswords(t, "password123")

	a.Login(context.Background())

	require.Zero(t, sess.loginCalls)
	require.Contains(t, joined(out), "Email")
}

func TestLoginFailureShowsServerMessage(t *testing.T) {
	a, sess, _, _, dash := newTestApp()
	sess.user = nil
	sess.loginErr = &api.Error{Status: 401, Message: "Invalid credentials"}
	out := captureOutput(t)
	scriptText(t, "user@example.com")
	scriptPasswords(t, "wrongpassword")

	a.Login(context.Background())

	require.Contains(t, joined(out), "Invalid credentials")
	require.Zero(t, dash.fetchCalls)
}

func TestRegisterPasswordMismatchBlockedLocally(t *testing.T) {
	a, sess, _, _, _ := newTestApp()
	sess.user = nil
	out := captureOutput(t)
	scriptText(t, "Jane", "Doe", "jane@example.com")
	scriptPasswords(t, "password123", "password124")

	a.Register(context.Background())

	require.Zero(t, sess.registerCalls)
	require.Contains(t, joined(out), "Password does not match")
}

func TestRegisterPasswordPromptsAreDistinct(t *testing.T) {
	a, sess, _, _, _ := newTestApp()
	sess.user = nil
	captureOutput(t)
	scriptText(t, "Jane", "Doe", "jane@example.com")

	var prompts []string
	orig := getPassword
	getPassword = func(prompt string, _ io.Writer) (string, error) {
		prompts = append(prompts, prompt)
		return "password123", nil
	}
	t.Cleanup(func() { getPassword = orig })

	a.Register(context.Background())

	require.Equal(t, []string{"Enter password", "Confirm password"}, prompts)
	require.Equal(t, 1, sess.registerCalls)
}

func TestRegisterSuccess(t *testing.T) {
	a, sess, _, _, dash := newTestApp()
	sess.user = nil
	out := captureOutput(t)
	scriptText(t, "Jane", "Doe", "jane@example.com")
	scriptPasswords(t, "password123", "password123")

	a.Register(context.Background())

	require.Equal(t, 1, sess.registerCalls)
	require.Equal(t, api.RegisterRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "password123",
	}, sess.registerReq)
	require.Contains(t, joined(out), "Account created")
	require.Equal(t, 1, dash.fetchCalls)
}

func TestLogout(t *testing.T) {
	a, sess, _, _, _ := newTestApp()
	captureOutput(t)

	a.Logout()
	require.Equal(t, 1, sess.logoutCalls)
	require.Nil(t, sess.user)
}

func TestLogoutClearsViewState(t *testing.T) {
	a, _, resumes, apps, _ := newTestApp()
	resumes.items = sampleResumes()
	apps.items = sampleApplications()
	captureOutput(t)
	scriptText(t, "back", "back")

	a.Resumes(context.Background())
	a.Applications(context.Background())
	require.Equal(t, 2, a.resumeList.Len())
	require.Equal(t, 2, a.appList.Len())

	a.Logout()
	require.Zero(t, a.resumeList.Len())
	require.Zero(t, a.appList.Len())
}
