// Package models contains the backend-owned records mirrored on the client
// and their helpers. The backend is the authority for all of them; the client
// never invents field values beyond what the API returned.
package models

// RoleName is a closed enumeration of the role identifiers the backend emits.
// Using a dedicated type keeps role checks away from raw string literals.
type RoleName string

const (
	RoleUser  RoleName = "ROLE_USER"
	RoleAdmin RoleName = "ROLE_ADMIN"
)

// DisplayName returns the role without the ROLE_ prefix, as shown in tables.
func (r RoleName) DisplayName() string {
	const prefix = "ROLE_"
	s := string(r)
	if len(s) > len(prefix) && s[:len(prefix)] == prefix {
		return s[len(prefix):]
	}
	return s
}

// Role is a named permission grouping attached to a User.
type Role struct {
	ID   int64    `json:"id"`
	Name RoleName `json:"name"`
}

// User is the backend identity record cached client-side.
//
// RegistrationDate is kept as the raw string the backend sent; the client
// only displays it and must not depend on its exact format.
type User struct {
	ID               int64   `json:"id"`
	Firstname        string  `json:"firstname"`
	Lastname         string  `json:"lastname"`
	Email            string  `json:"email"`
	EmailVerified    bool    `json:"emailVerified"`
	AvatarURL        *string `json:"avatarUrl"`
	RegistrationDate string  `json:"registrationDate"`
	Roles            []Role  `json:"roles"`
}

// DisplayName returns "Firstname Lastname", falling back to the email when
// both name parts are empty.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	name := u.Firstname
	if u.Lastname != "" {
		if name != "" {
			name += " "
		}
		name += u.Lastname
	}
	if name == "" {
		return u.Email
	}
	return name
}

// HasRole reports whether the user's role set contains name. Roles have set
// semantics: presence matters, order and duplicates do not.
func (u *User) HasRole(name RoleName) bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// RoleNames returns the user's role names, preserving backend order.
func (u *User) RoleNames() []RoleName {
	if u == nil {
		return nil
	}
	names := make([]RoleName, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}
