// Package validation checks form input before any request leaves the client.
// The rules mirror what the backend enforces, so a rejected form never costs
// a round trip.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/avolkovs/storekeeper/internal/common"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// validator has no composite complexity tag, so the password rule is a
	// custom one.
	if err := v.RegisterValidation("password", validPassword); err != nil {
		panic(err)
	}
	return v
}

// validPassword requires at least one lower-case letter, one upper-case
// letter, one digit and one special character. Length is checked separately
// by min/max tags so the user gets a distinct message for it.
func validPassword(fl validator.FieldLevel) bool {
	var lower, upper, digit, special bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	return lower && upper && digit && special
}

// SignupForm is the sign-up input, validated before the signup request.
type SignupForm struct {
	Firstname       string `validate:"required,max=100"`
	Lastname        string `validate:"required,max=100"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=8,max=72,password"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

// PasswordChangeForm is the change-password input.
type PasswordChangeForm struct {
	CurrentPassword string `validate:"required"`
	NewPassword     string `validate:"required,min=8,max=72,password"`
	ConfirmPassword string `validate:"required,eqfield=NewPassword"`
}

// PasswordResetForm is the reset-password input.
type PasswordResetForm struct {
	NewPassword     string `validate:"required,min=8,max=72,password"`
	ConfirmPassword string `validate:"required,eqfield=NewPassword"`
}

// ProfileForm is the profile edit input.
type ProfileForm struct {
	Firstname string `validate:"required,max=100"`
	Lastname  string `validate:"required,max=100"`
	Email     string `validate:"required,email"`
}

// ProductForm is the product create/edit input.
type ProductForm struct {
	Name       string  `validate:"required,max=200"`
	Brand      string  `validate:"required,max=100"`
	Price      float64 `validate:"gte=0"`
	Inventory  int64   `validate:"gte=0"`
	CategoryID int64   `validate:"required,gt=0"`
}

// EmailForm validates a single email address, used by forgot-password.
type EmailForm struct {
	Email string `validate:"required,email"`
}

// Check validates the form and converts validator failures into one
// user-facing error wrapping common.ErrValidation.
func Check(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}
	return fmt.Errorf("%w: %s", common.ErrValidation, strings.Join(msgs, "; "))
}

func message(fe validator.FieldError) string {
	field := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "password":
		return field + " must contain a lower-case letter, an upper-case letter, a digit and a special character"
	case "eqfield":
		return "passwords do not match"
	case "gt", "gte":
		return field + " must be a positive number"
	default:
		return field + " is invalid"
	}
}

func fieldLabel(name string) string {
	switch name {
	case "Firstname":
		return "first name"
	case "Lastname":
		return "last name"
	case "ConfirmPassword":
		return "password confirmation"
	case "CurrentPassword":
		return "current password"
	case "NewPassword":
		return "new password"
	case "CategoryID":
		return "category"
	default:
		return strings.ToLower(name)
	}
}
