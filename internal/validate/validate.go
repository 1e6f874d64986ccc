// Package validate checks form input before it is allowed to reach the
// network layer. Failures come back as per-field messages for inline display.
package validate

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// LoginForm is the input of the login prompt.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// RegisterForm is the input of the registration prompt.
type RegisterForm struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=8"`
}

// ApplicationForm is the input for creating a job application. A resume must
// be selected; the server enforces that it actually belongs to the user.
type ApplicationForm struct {
	CompanyName         string `validate:"required"`
	PositionTitle       string `validate:"required"`
	JobDescription      string `validate:"required"`
	ApplicationURL      string `validate:"omitempty,url"`
	ApplicationDeadline string `validate:"omitempty,datetime=2006-01-02"`
	ResumeID            string `validate:"required"`
}

// ProfileForm is the input of the profile-update prompt.
type ProfileForm struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
}

// FieldErrors maps a struct field name to a display message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	for field, msg := range fe {
		return field + ": " + msg
	}
	return "validation failed"
}

// Struct validates any of the form types above. It returns nil or a
// FieldErrors with one message per offending field.
func Struct(form any) error {
	err := v.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fe := make(FieldErrors, len(verrs))
	for _, f := range verrs {
		fe[f.Field()] = message(f)
	}
	return fe
}

func message(f validator.FieldError) string {
	switch f.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "datetime":
		return "must be a date in YYYY-MM-DD form"
	case "min":
		return "must be at least " + f.Param() + " characters"
	}
	return "is invalid"
}
