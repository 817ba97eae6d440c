package cli

import (
	"context"
	"fmt"
	"strings"
)

// getStatus renders the prompt suffix: the signed-in user, if any.
func (a *App) getStatus() string {
	user := a.session.User()
	if user == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", user.Email)
}

// Run restores the persisted session and starts the command loop.
//
// Commands when anonymous:
//
//	login, signup, forgot, reset, verify, help, exit
//
// Commands when signed in:
//
//	whoami, token, profile, password, verify, sendverify, avatar,
//	users, products, logout, help, exit
//
// The users and products screens additionally require the admin role; the
// guard turns everyone else away.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Storekeeper CLI (type 'help' for commands)")

	if err := a.session.Bootstrap(ctx, a.auth, a.users); err != nil {
		a.logger.Warn(ctx, "failed to restore session", "error", err)
	}
	if user := a.session.User(); user != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", user.DisplayName())
	}

	for {
		fmt.Fprintf(a.out, "sk %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: whoami, token, profile, password, verify, sendverify, avatar, users, products, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: login, signup, forgot, reset, verify, exit")
			}

		case "login":
			_ = a.Login(ctx)
		case "signup":
			_ = a.Signup(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.Whoami(ctx)
		case "token":
			_ = a.Token(ctx)
		case "profile":
			_ = a.EditProfile(ctx)
		case "password":
			_ = a.ChangePassword(ctx)
		case "forgot":
			_ = a.ForgotPassword(ctx)
		case "reset":
			_ = a.ResetPassword(ctx)
		case "verify":
			_ = a.VerifyEmail(ctx)
		case "sendverify":
			_ = a.SendVerificationEmail(ctx)
		case "avatar":
			_ = a.UploadAvatar(ctx)
		case "users":
			_ = a.AdminUsers(ctx)
		case "products":
			_ = a.AdminProducts(ctx)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
