package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/avolkovs/storekeeper/internal/client/guard"
	"github.com/avolkovs/storekeeper/internal/client/models"
	"github.com/avolkovs/storekeeper/internal/client/services"
	"github.com/avolkovs/storekeeper/internal/client/table"
	"github.com/avolkovs/storekeeper/internal/client/validation"
)

func userColumns() []table.Column[models.User] {
	return []table.Column[models.User]{
		{
			Key: "id", Title: "ID",
			Value: func(u models.User) string { return strconv.FormatInt(u.ID, 10) },
			Compare: func(a, b models.User) int {
				switch {
				case a.ID < b.ID:
					return -1
				case a.ID > b.ID:
					return 1
				default:
					return 0
				}
			},
		},
		{Key: "name", Title: "Name", Value: func(u models.User) string { return u.DisplayName() }},
		{Key: "email", Title: "Email", Value: func(u models.User) string { return u.Email }},
		{Key: "verified", Title: "Verified", Value: func(u models.User) string { return strconv.FormatBool(u.EmailVerified) }},
		{Key: "roles", Title: "Roles", Value: func(u models.User) string {
			names := u.RoleNames()
			parts := make([]string, len(names))
			for i, n := range names {
				parts[i] = string(n)
			}
			return strings.Join(parts, ",")
		}},
		{Key: "registered", Title: "Registered", Value: func(u models.User) string { return u.RegistrationDate }},
	}
}

// AdminUsers runs the user-management screen. Admin only: other callers are
// turned away the same way the route guard would redirect them.
func (a *App) AdminUsers(ctx context.Context) error {
	switch guard.RequireAdmin(a.session.Snapshot()) {
	case guard.RedirectLogin:
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	case guard.RedirectUnauthorized:
		fmt.Fprintln(a.out, "This screen requires the admin role.")
		return nil
	}

	tc := table.New(userColumns())
	screen := tableScreen[models.User]{
		title:     "users",
		reload:    func(ctx context.Context) ([]models.User, error) { return a.users.All(ctx) },
		extra:     a.adminUserCommand,
		extraHelp: "add, edit <id>, roles <id>, del <id>",
	}
	return runTableScreen(ctx, a, tc, screen)
}

func (a *App) adminUserCommand(ctx context.Context, cmd string, args []string) (bool, bool, error) {
	switch cmd {
	case "add":
		return true, true, a.adminCreateUser(ctx)
	case "edit":
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, "Usage: edit <id>")
			return true, false, nil
		}
		return true, true, a.adminEditUser(ctx, id)
	case "roles":
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, "Usage: roles <id>")
			return true, false, nil
		}
		return true, true, a.adminEditRoles(ctx, id)
	case "del":
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, "Usage: del <id>")
			return true, false, nil
		}
		return true, true, a.adminDeleteUser(ctx, id)
	}
	return false, false, nil
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one id")
	}
	return strconv.ParseInt(args[0], 10, 64)
}

func (a *App) adminCreateUser(ctx context.Context) error {
	form := validation.SignupForm{}
	var err error
	if form.Firstname, err = getSimpleText(a.reader, "First name", a.out); err != nil {
		return err
	}
	if form.Lastname, err = getSimpleText(a.reader, "Last name", a.out); err != nil {
		return err
	}
	if form.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if form.Password, err = getPassword(a.out, "Initial password"); err != nil {
		return err
	}
	if form.ConfirmPassword, err = getPassword(a.out, "Confirm password"); err != nil {
		return err
	}
	if err := validation.Check(form); err != nil {
		a.printErr(err)
		return err
	}

	user, err := a.users.AdminCreate(ctx, services.CreateUserRequest{
		Firstname: form.Firstname,
		Lastname:  form.Lastname,
		Email:     form.Email,
		Password:  form.Password,
	})
	if err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintf(a.out, "Created user %d.\n", user.ID)
	return nil
}

func (a *App) adminEditUser(ctx context.Context, id int64) error {
	current, err := a.users.GetByID(ctx, id)
	if err != nil {
		a.printErr(err)
		return err
	}

	form := validation.ProfileForm{}
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

	updated, err := a.users.Update(ctx, id, services.UpdateUserRequest{
		Firstname: form.Firstname,
		Lastname:  form.Lastname,
		Email:     form.Email,
	})
	if err != nil {
		a.printErr(err)
		return err
	}

	// Editing yourself updates the session too.
	if me := a.session.User(); me != nil && me.ID == id {
		a.session.SetUser(ctx, updated)
	}
	fmt.Fprintln(a.out, "User updated.")
	return nil
}

func (a *App) adminEditRoles(ctx context.Context, id int64) error {
	answer, err := getSimpleText(a.reader, "Grant admin role? (y/n)", a.out)
	if err != nil {
		return err
	}

	roles := []models.RoleName{models.RoleUser}
	if s := strings.ToLower(answer); s == "y" || s == "yes" {
		roles = append(roles, models.RoleAdmin)
	}

	if _, err := a.users.UpdateRoles(ctx, id, roles); err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintln(a.out, "Roles updated.")
	return nil
}

func (a *App) adminDeleteUser(ctx context.Context, id int64) error {
	if me := a.session.User(); me != nil && me.ID == id {
		fmt.Fprintln(a.out, "You cannot delete your own account from here.")
		return nil
	}

	ok, err := getConfirmation(a.reader, fmt.Sprintf("Delete user %d? This cannot be undone.", id), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.users.Delete(ctx, id); err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintln(a.out, "User deleted.")
	return nil
}
