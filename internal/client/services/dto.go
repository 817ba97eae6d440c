package services

import "github.com/avolkovs/storekeeper/internal/client/models"

// LoginRequest carries sign-in credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginData is the data part of a successful login envelope.
type loginData struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// SignupRequest carries self-registration fields.
type SignupRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// CreateUserRequest is the admin "add user" payload.
type CreateUserRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// UpdateUserRequest is a partial update: empty fields are left untouched by
// the backend.
type UpdateUserRequest struct {
	Firstname string `json:"firstname,omitempty"`
	Lastname  string `json:"lastname,omitempty"`
	Email     string `json:"email,omitempty"`
}

// ChangePasswordRequest rotates the caller's own password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ProductCreateRequest creates a catalog entry; the category is selected
// by id.
type ProductCreateRequest struct {
	Name        string  `json:"productName"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
	Inventory   int64   `json:"inventory"`
	Description string  `json:"description"`
	CategoryID  int64   `json:"categoryId"`
}

// ProductUpdateRequest is a partial product update.
type ProductUpdateRequest struct {
	Name        *string  `json:"productName,omitempty"`
	Brand       *string  `json:"brand,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Inventory   *int64   `json:"inventory,omitempty"`
	Description *string  `json:"description,omitempty"`
	CategoryID  *int64   `json:"categoryId,omitempty"`
}
