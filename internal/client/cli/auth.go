package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/avolkovs/storekeeper/internal/client/api"
	"github.com/avolkovs/storekeeper/internal/client/services"
	"github.com/avolkovs/storekeeper/internal/client/validation"
	"github.com/avolkovs/storekeeper/internal/common"
)

// getSimpleText, getPassword and getConfirmation are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getOptionalText = GetOptionalText
var getPassword = GetPassword
var getConfirmation = GetConfirmation

// printErr turns pipeline errors into a user-facing line. Backend messages
// ("Bad credentials" and friends) are shown verbatim; transport failures get
// a generic line so stack noise never reaches the user.
func (a *App) printErr(err error) {
	var apiErr *api.Error
	switch {
	case errors.As(err, &apiErr) && apiErr.Message != "":
		fmt.Fprintln(a.out, "Error:", apiErr.Message)
	case errors.Is(err, common.ErrUnavailable):
		fmt.Fprintln(a.out, "Error: server unavailable, try again later")
	case errors.Is(err, common.ErrValidation):
		fmt.Fprintln(a.out, "Error:", err.Error())
	default:
		fmt.Fprintln(a.out, "Error:", err.Error())
	}
}

// Login prompts for credentials and enters the authenticated session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}

	token, user, err := a.auth.Login(ctx, services.LoginRequest{Email: email, Password: password})
	if err != nil {
		a.printErr(err)
		return err
	}

	a.session.Login(ctx, token, user)
	fmt.Fprintf(a.out, "Welcome, %s!\n", user.DisplayName())
	if !user.EmailVerified {
		fmt.Fprintln(a.out, "Your email is not verified yet; run 'sendverify' to request a verification mail.")
	}
	return nil
}

// Signup collects and validates the sign-up form, then registers the account.
// Validation failures never reach the network.
func (a *App) Signup(ctx context.Context) error {
	form := validation.SignupForm{}
	var err error
	if form.Firstname, err = getSimpleText(a.reader, "Enter first name", a.out); err != nil {
		return err
	}
	if form.Lastname, err = getSimpleText(a.reader, "Enter last name", a.out); err != nil {
		return err
	}
	if form.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if form.Password, err = getPassword(a.out, "Enter password"); err != nil {
		return err
	}
	if form.ConfirmPassword, err = getPassword(a.out, "Confirm password"); err != nil {
		return err
	}

	if err := validation.Check(form); err != nil {
		a.printErr(err)
		return err
	}

	msg, err := a.auth.Signup(ctx, services.SignupRequest{
		Firstname: form.Firstname,
		Lastname:  form.Lastname,
		Email:     form.Email,
		Password:  form.Password,
	})
	if err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

// Logout drops the session.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Whoami prints the cached user record.
func (a *App) Whoami(ctx context.Context) error {
	user := a.session.User()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s>\n", user.DisplayName(), user.Email)
	fmt.Fprintf(a.out, "  id: %d\n", user.ID)
	fmt.Fprintf(a.out, "  email verified: %t\n", user.EmailVerified)
	names := user.RoleNames()
	roles := make([]string, len(names))
	for i, n := range names {
		roles[i] = string(n)
	}
	sort.Strings(roles)
	fmt.Fprintf(a.out, "  roles: %v\n", roles)
	if user.AvatarURL != nil {
		fmt.Fprintf(a.out, "  avatar: %s\n", *user.AvatarURL)
	}
	return nil
}

// Token shows the decoded claims of the current bearer token. Display only:
// nothing in the client trusts these claims.
func (a *App) Token(ctx context.Context) error {
	snap := a.session.Snapshot()
	if !snap.IsAuthenticated {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	claims, err := api.InspectToken(snap.Token)
	if err != nil {
		fmt.Fprintln(a.out, "Token is opaque, nothing to show.")
		return nil
	}

	keys := make([]string, 0, len(claims))
	for k := range claims {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := claims[k]
		// exp/iat arrive as float seconds; render them as timestamps.
		if f, ok := v.(float64); ok && (k == "exp" || k == "iat" || k == "nbf") {
			v = time.Unix(int64(f), 0).UTC().Format(time.RFC3339)
		}
		fmt.Fprintf(a.out, "  %s: %v\n", k, v)
	}
	return nil
}
