package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) isLoggedIn() bool             { return s.loggedIn }
func (s *stubExec) Login(context.Context)        { s.calls = append(s.calls, "login") }
func (s *stubExec) Register(context.Context)     { s.calls = append(s.calls, "register") }
func (s *stubExec) Logout()                      { s.calls = append(s.calls, "logout") }
func (s *stubExec) Dashboard(context.Context)    { s.calls = append(s.calls, "dashboard") }
func (s *stubExec) Resumes(context.Context)      { s.calls = append(s.calls, "resumes") }
func (s *stubExec) Applications(context.Context) { s.calls = append(s.calls, "applications") }
func (s *stubExec) Profile(context.Context)      { s.calls = append(s.calls, "profile") }

func runScript(t *testing.T, s *stubExec, lines ...string) *[]string {
	t.Helper()
	out := captureOutput(t)
	scanner := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), s, func() string { return "" }, scanner)
	return out
}

func TestREPLDispatch(t *testing.T) {
	s := &stubExec{loggedIn: true}
	runScript(t, s, "dashboard", "r", "a", "profile", "logout", "exit")
	require.Equal(t, []string{"dashboard", "resumes", "applications", "profile", "logout"}, s.calls)
}

func TestREPLShortAliases(t *testing.T) {
	s := &stubExec{loggedIn: true}
	runScript(t, s, "d", "r", "a", "quit")
	require.Equal(t, []string{"dashboard", "resumes", "applications"}, s.calls)
}

func TestREPLUnknownCommand(t *testing.T) {
	s := &stubExec{}
	out := runScript(t, s, "frobnicate", "exit")
	require.Empty(t, s.calls)
	require.Contains(t, joined(out), "Unknown command: frobnicate")
}

func TestREPLHelpDependsOnSessionState(t *testing.T) {
	out := runScript(t, &stubExec{}, "help", "exit")
	require.Contains(t, joined(out), "login, register, exit")

	out = runScript(t, &stubExec{loggedIn: true}, "help", "exit")
	require.Contains(t, joined(out), "dashboard, resumes, applications, profile, logout, exit")
}

func TestREPLBlankLinesIgnored(t *testing.T) {
	s := &stubExec{}
	runScript(t, s, "", "   ", "exit")
	require.Empty(t, s.calls)
}

func TestREPLStopsOnEOF(t *testing.T) {
	s := &stubExec{}
	runScript(t, s, "login")
	require.Equal(t, []string{"login"}, s.calls)
}
