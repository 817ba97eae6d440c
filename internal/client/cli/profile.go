package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avolkovs/storekeeper/internal/client/services"
	"github.com/avolkovs/storekeeper/internal/client/validation"
)

// EditProfile lets the user change name and email. Empty answers keep the
// current values. An email change makes the account unverified again.
func (a *App) EditProfile(ctx context.Context) error {
	current := a.session.User()
	if current == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	form := validation.ProfileForm{}
	var err error
	if form.Firstname, err = getOptionalText(a.reader, "First name", current.Firstname, a.out); err != nil {
		return err
	}
	if form.Lastname, err = getOptionalText(a.reader, "Last name", current.Lastname, a.out); err != nil {
		return err
	}
	if form.Email, err = getOptionalText(a.reader, "Email", current.Email, a.out); err != nil {
		return err
	}

	if err := validation.Check(form); err != nil {
		a.printErr(err)
		return err
	}

	if form.Email != current.Email {
		ok, err := getConfirmation(a.reader, "Changing the email requires re-verification. Continue?", a.out)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.out, "Cancelled.")
			return nil
		}
	}

	updated, err := a.users.Update(ctx, current.ID, services.UpdateUserRequest{
		Firstname: form.Firstname,
		Lastname:  form.Lastname,
		Email:     form.Email,
	})
	if err != nil {
		a.printErr(err)
		return err
	}

	a.session.SetUser(ctx, updated)
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

// ChangePassword asks for the current and a new password and submits the
// change. The new password is validated locally first.
func (a *App) ChangePassword(ctx context.Context) error {
	user := a.session.User()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	form := validation.PasswordChangeForm{}
	var err error
	if form.CurrentPassword, err = getPassword(a.out, "Current password"); err != nil {
		return err
	}
	if form.NewPassword, err = getPassword(a.out, "New password"); err != nil {
		return err
	}
	if form.ConfirmPassword, err = getPassword(a.out, "Confirm new password"); err != nil {
		return err
	}

	if err := validation.Check(form); err != nil {
		a.printErr(err)
		return err
	}

	msg, err := a.users.ChangePassword(ctx, user.ID, services.ChangePasswordRequest{
		CurrentPassword: form.CurrentPassword,
		NewPassword:     form.NewPassword,
	})
	if err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

// ForgotPassword requests a password-reset mail for the given address.
// Available without a session.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter account email", a.out)
	if err != nil {
		return err
	}
	if err := validation.Check(validation.EmailForm{Email: email}); err != nil {
		a.printErr(err)
		return err
	}

	msg, err := a.users.ForgotPassword(ctx, email)
	if err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

// ResetPassword redeems an emailed reset token for a new password.
// Available without a session.
func (a *App) ResetPassword(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter reset token from the email", a.out)
	if err != nil {
		return err
	}

	form := validation.PasswordResetForm{}
	if form.NewPassword, err = getPassword(a.out, "New password"); err != nil {
		return err
	}
	if form.ConfirmPassword, err = getPassword(a.out, "Confirm new password"); err != nil {
		return err
	}
	if err := validation.Check(form); err != nil {
		a.printErr(err)
		return err
	}

	msg, err := a.users.ResetPassword(ctx, token, form.NewPassword)
	if err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

// VerifyEmail redeems an emailed verification token, then refreshes the
// cached user so the verified flag is current.
func (a *App) VerifyEmail(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter verification token from the email", a.out)
	if err != nil {
		return err
	}

	msg, err := a.auth.VerifyEmail(ctx, token)
	if err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintln(a.out, msg)

	if a.isLoggedIn() {
		if fresh, err := a.users.Me(ctx); err == nil {
			a.session.SetUser(ctx, fresh)
		}
	}
	return nil
}

// SendVerificationEmail asks the backend to resend the verification mail for
// the current account.
func (a *App) SendVerificationEmail(ctx context.Context) error {
	user := a.session.User()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	if user.EmailVerified {
		fmt.Fprintln(a.out, "Your email is already verified.")
		return nil
	}

	if err := a.auth.SendVerificationEmail(ctx, user.ID); err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintln(a.out, "Verification email sent.")
	return nil
}

// UploadAvatar sends a local image file as the new profile picture.
func (a *App) UploadAvatar(ctx context.Context) error {
	user := a.session.User()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	path, err := getSimpleText(a.reader, "Enter path to the image file", a.out)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot open %s: %s\n", path, err)
		return err
	}
	defer f.Close()

	avatarURL, err := a.users.UploadAvatar(ctx, user.ID, filepath.Base(path), f)
	if err != nil {
		a.printErr(err)
		return err
	}

	user.AvatarURL = &avatarURL
	a.session.SetUser(ctx, user)
	fmt.Fprintln(a.out, "Avatar updated:", avatarURL)
	return nil
}
