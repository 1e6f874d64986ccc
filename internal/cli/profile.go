package cli

import (
	"context"
	"os"

	"github.com/aturkov/jobpilot/internal/api"
	"github.com/aturkov/jobpilot/internal/models"
	"github.com/aturkov/jobpilot/internal/validate"
)

// Profile shows the account settings and lets the user edit them.
func (a *App) Profile(ctx context.Context) {
	a.protected(ctx, a.profileView)
}

func (a *App) profileView(ctx context.Context) {
	u := a.sess.User()
	printlnFn("Name:         " + u.FullName())
	printlnFn("Email:        " + u.Email)
	printlnFn("Subscription: " + u.SubscriptionType)
	if u.SubscriptionExpiresAt != nil {
		printlnFn("Expires:      " + formatDate(*u.SubscriptionExpiresAt))
	}
	printlnFn("Member since: " + formatDate(u.CreatedAt))

	answer, err := getSimpleText(a.reader, "Edit profile? (edit/back)", os.Stdout)
	if err != nil || answer != "edit" {
		return
	}
	a.editProfile(ctx, u)
}

// editProfile prompts for each editable field; an empty answer keeps the
// current value. The cached user is replaced by the server response, so the
// next Profile render shows exactly what the server stored.
func (a *App) editProfile(ctx context.Context, u *models.User) {
	firstName, err := getSimpleText(a.reader, "First name ["+u.FirstName+"]", os.Stdout)
	if err != nil {
		return
	}
	lastName, err := getSimpleText(a.reader, "Last name ["+u.LastName+"]", os.Stdout)
	if err != nil {
		return
	}
	email, err := getSimpleText(a.reader, "Email ["+u.Email+"]", os.Stdout)
	if err != nil {
		return
	}

	if firstName == "" {
		firstName = u.FirstName
	}
	if lastName == "" {
		lastName = u.LastName
	}
	if email == "" {
		email = u.Email
	}

	form := validate.ProfileForm{FirstName: firstName, LastName: lastName, Email: email}
	if err := validate.Struct(form); err != nil {
		if fe, ok := err.(validate.FieldErrors); ok {
			printFieldErrors(fe)
			return
		}
		printlnFn(err.Error())
		return
	}

	update := models.ProfileUpdate{FirstName: firstName, LastName: lastName, Email: email}
	if err := a.sess.UpdateProfile(ctx, update); err != nil {
		printlnFn(api.ErrorMessage(err, "Failed to update profile"))
		return
	}
	printlnFn("Profile updated successfully!")
}
