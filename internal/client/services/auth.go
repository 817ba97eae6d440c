// Package services contains the typed service layer of the Storekeeper
// client: one service per backend API area, all calls going through the
// shared api pipeline. This file defines the authentication service.
package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/avolkovs/storekeeper/internal/client/api"
	"github.com/avolkovs/storekeeper/internal/client/models"
)

// AuthService covers the auth endpoints: sign-in, sign-up, token validation
// and email verification.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	// Login exchanges credentials for a bearer token and the user record.
	Login(ctx context.Context, req LoginRequest) (string, *models.User, error)

	// Signup registers a new account. The returned message is the backend's
	// confirmation text.
	Signup(ctx context.Context, req SignupRequest) (string, error)

	// Validate checks the current token against the backend; nil means the
	// token is still accepted.
	Validate(ctx context.Context) error

	// VerifyEmail redeems an emailed verification token.
	VerifyEmail(ctx context.Context, token string) (string, error)

	// SendVerificationEmail asks the backend to (re)send the verification
	// mail for the given user.
	SendVerificationEmail(ctx context.Context, userID int64) error
}

type authService struct {
	api     *api.Client
	authURL string
}

// NewAuthService constructs an AuthService rooted at authURL.
func NewAuthService(client *api.Client, authURL string) AuthService {
	return &authService{api: client, authURL: authURL}
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (string, *models.User, error) {
	var data loginData
	if _, err := s.api.Post(ctx, s.authURL+"/login", req, &data); err != nil {
		return "", nil, fmt.Errorf("login error: %w", err)
	}
	return data.Token, data.User, nil
}

func (s *authService) Signup(ctx context.Context, req SignupRequest) (string, error) {
	msg, err := s.api.Post(ctx, s.authURL+"/signup", req, nil)
	if err != nil {
		return "", fmt.Errorf("signup error: %w", err)
	}
	return msg, nil
}

func (s *authService) Validate(ctx context.Context) error {
	if _, err := s.api.Get(ctx, s.authURL+"/validate", nil); err != nil {
		return fmt.Errorf("token validation error: %w", err)
	}
	return nil
}

func (s *authService) VerifyEmail(ctx context.Context, token string) (string, error) {
	u := s.authURL + "/verify-email?token=" + url.QueryEscape(token)
	msg, err := s.api.Post(ctx, u, nil, nil)
	if err != nil {
		return "", fmt.Errorf("email verification error: %w", err)
	}
	return msg, nil
}

func (s *authService) SendVerificationEmail(ctx context.Context, userID int64) error {
	u := fmt.Sprintf("%s/%d/verify-email", s.authURL, userID)
	if _, err := s.api.Post(ctx, u, nil, nil); err != nil {
		return fmt.Errorf("verification email error: %w", err)
	}
	return nil
}
