package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context)
	Register(ctx context.Context)
	Logout()
	Dashboard(ctx context.Context)
	Resumes(ctx context.Context)
	Applications(ctx context.Context)
	Profile(ctx context.Context)
}

func (a *App) isLoggedIn() bool {
	return a.sess.Authenticated()
}

func (a *App) status() string {
	if u := a.sess.User(); u != nil {
		return fmt.Sprintf("(%s)", u.Email)
	}
	return ""
}

// Root starts the interactive loop on stdin.
func (a *App) Root(ctx context.Context) {
	printlnFn("JobPilot CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// runREPL reads a line per iteration, parses the first token as the command,
// and dispatches to methods on a. Unknown commands are reported back. The
// loop exits on scanner EOF or when the user types "exit" or "quit".
// Handlers print their own errors; the loop stays resilient and focused on
// I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("jp %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, resumes, applications, profile, logout, exit")
			} else {
				printlnFn("Available commands: login, register, exit")
			}

		case "login":
			a.Login(ctx)

		case "register":
			a.Register(ctx)

		case "logout":
			a.Logout()

		case "d", "dashboard":
			a.Dashboard(ctx)

		case "r", "resumes":
			a.Resumes(ctx)

		case "a", "applications":
			a.Applications(ctx)

		case "profile":
			a.Profile(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
