package cli

import (
	"context"
	"os"

	"github.com/aturkov/jobpilot/internal/api"
	"github.com/aturkov/jobpilot/internal/validate"
)

// printFieldErrors shows validation messages inline, next to the field names.
func printFieldErrors(fe validate.FieldErrors) {
	for field, msg := range fe {
		printlnFn("  " + field + " " + msg)
	}
}

// Login prompts for credentials and authenticates. Validation failures stay
// local; request failures surface the server message with a generic fallback.
// A successful login lands on the dashboard.
func (a *App) Login(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return
	}

	form := validate.LoginForm{Email: email, Password: password}
	if err := validate.Struct(form); err != nil {
		if fe, ok := err.(validate.FieldErrors); ok {
			printFieldErrors(fe)
			return
		}
		printlnFn(err.Error())
		return
	}

	if err := a.sess.Login(ctx, email, password); err != nil {
		printlnFn(api.ErrorMessage(err, "Login failed"))
		return
	}

	printlnFn("Successfully logged in!")
	a.Dashboard(ctx)
}

// Register prompts for account details and creates an account. The password
// is confirmed locally; the server is responsible for uniqueness.
func (a *App) Register(ctx context.Context) {
	firstName, err := getSimpleText(a.reader, "First name", os.Stdout)
	if err != nil {
		return
	}
	lastName, err := getSimpleText(a.reader, "Last name", os.Stdout)
	if err != nil {
		return
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return
	}
	confirmPassword, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return
	}
	if password != confirmPassword {
		printlnFn("  Password does not match")
		return
	}

	form := validate.RegisterForm{FirstName: firstName, LastName: lastName, Email: email, Password: password}
	if err := validate.Struct(form); err != nil {
		if fe, ok := err.(validate.FieldErrors); ok {
			printFieldErrors(fe)
			return
		}
		printlnFn(err.Error())
		return
	}

	req := api.RegisterRequest{FirstName: firstName, LastName: lastName, Email: email, Password: password}
	if err := a.sess.Register(ctx, req); err != nil {
		printlnFn(api.ErrorMessage(err, "Registration failed"))
		return
	}

	printlnFn("Account created, you are now logged in!")
	a.Dashboard(ctx)
}

// Logout drops the session and the cached view lists, so nothing from the
// previous account leaks into the next one. Always succeeds, also when
// already logged out.
func (a *App) Logout() {
	a.sess.Logout()
	a.resumeList.Clear()
	a.appList.Clear()
	printlnFn("Logged out.")
}
