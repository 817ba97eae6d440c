// Package cli provides the interactive Storekeeper command-line client.
//
// It drives the session, profile and admin flows over the typed services:
// login/signup with local form validation, profile editing, password
// management, email verification, avatar upload, and the admin list screens
// for users and products (filter, sort, pagination, column visibility, CSV
// export).
//
// The REPL is started via App.Run(ctx), which restores the persisted session
// and blocks until the user exits.
package cli
