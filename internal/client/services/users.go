package services

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/avolkovs/storekeeper/internal/client/api"
	"github.com/avolkovs/storekeeper/internal/client/models"
)

// UserService covers the users endpoints: the caller's own profile plus the
// admin user-management surface.
type UserService interface {
	Me(ctx context.Context) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	All(ctx context.Context) ([]models.User, error)

	Create(ctx context.Context, req CreateUserRequest) (*models.User, error)
	AdminCreate(ctx context.Context, req CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, id int64, req UpdateUserRequest) (*models.User, error)
	UpdateRoles(ctx context.Context, id int64, roles []models.RoleName) (*models.User, error)
	Delete(ctx context.Context, id int64) error

	ChangePassword(ctx context.Context, id int64, req ChangePasswordRequest) (string, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) (string, error)

	// UploadAvatar sends the picture as a multipart form and returns the new
	// avatar URL.
	UploadAvatar(ctx context.Context, id int64, filename string, content io.Reader) (string, error)
}

type userService struct {
	api      *api.Client
	usersURL string
}

// NewUserService constructs a UserService rooted at usersURL.
func NewUserService(client *api.Client, usersURL string) UserService {
	return &userService{api: client, usersURL: usersURL}
}

func (s *userService) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if _, err := s.api.Get(ctx, s.usersURL+"/me", &user); err != nil {
		return nil, fmt.Errorf("fetch profile error: %w", err)
	}
	return &user, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if _, err := s.api.Get(ctx, fmt.Sprintf("%s/user/%d", s.usersURL, id), &user); err != nil {
		return nil, fmt.Errorf("fetch user error: %w", err)
	}
	return &user, nil
}

func (s *userService) All(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if _, err := s.api.Get(ctx, s.usersURL+"/all", &users); err != nil {
		return nil, fmt.Errorf("fetch users error: %w", err)
	}
	return users, nil
}

func (s *userService) Create(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	var user models.User
	if _, err := s.api.Post(ctx, s.usersURL+"/add", req, &user); err != nil {
		return nil, fmt.Errorf("create user error: %w", err)
	}
	return &user, nil
}

func (s *userService) AdminCreate(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	var user models.User
	if _, err := s.api.Post(ctx, s.usersURL+"/admin/add", req, &user); err != nil {
		return nil, fmt.Errorf("create admin user error: %w", err)
	}
	return &user, nil
}

func (s *userService) Update(ctx context.Context, id int64, req UpdateUserRequest) (*models.User, error) {
	var user models.User
	if _, err := s.api.Put(ctx, fmt.Sprintf("%s/%d/update", s.usersURL, id), req, &user); err != nil {
		return nil, fmt.Errorf("update user error: %w", err)
	}
	return &user, nil
}

func (s *userService) UpdateRoles(ctx context.Context, id int64, roles []models.RoleName) (*models.User, error) {
	var user models.User
	if _, err := s.api.Put(ctx, fmt.Sprintf("%s/%d/roles", s.usersURL, id), roles, &user); err != nil {
		return nil, fmt.Errorf("update roles error: %w", err)
	}
	return &user, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if _, err := s.api.Delete(ctx, fmt.Sprintf("%s/%d/delete", s.usersURL, id)); err != nil {
		return fmt.Errorf("delete user error: %w", err)
	}
	return nil
}

func (s *userService) ChangePassword(ctx context.Context, id int64, req ChangePasswordRequest) (string, error) {
	msg, err := s.api.Put(ctx, fmt.Sprintf("%s/%d/change-password", s.usersURL, id), req, nil)
	if err != nil {
		return "", fmt.Errorf("change password error: %w", err)
	}
	return msg, nil
}

func (s *userService) ForgotPassword(ctx context.Context, email string) (string, error) {
	u := s.usersURL + "/forgot-password?email=" + url.QueryEscape(email)
	msg, err := s.api.Post(ctx, u, nil, nil)
	if err != nil {
		return "", fmt.Errorf("forgot password error: %w", err)
	}
	return msg, nil
}

func (s *userService) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	u := s.usersURL + "/reset-password?token=" + url.QueryEscape(token)
	msg, err := s.api.PutText(ctx, u, newPassword, nil)
	if err != nil {
		return "", fmt.Errorf("reset password error: %w", err)
	}
	return msg, nil
}

func (s *userService) UploadAvatar(ctx context.Context, id int64, filename string, content io.Reader) (string, error) {
	var avatarURL string
	u := fmt.Sprintf("%s/%d/avatar", s.usersURL, id)
	if _, err := s.api.PostMultipart(ctx, u, "avatar", filename, content, &avatarURL); err != nil {
		return "", fmt.Errorf("avatar upload error: %w", err)
	}
	return avatarURL, nil
}
