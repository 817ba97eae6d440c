package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkovs/storekeeper/internal/client/api"
	"github.com/avolkovs/storekeeper/internal/common"
)

func newAuthServer(t *testing.T, handler http.HandlerFunc) (AuthService, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAuthService(api.New(api.Config{}), srv.URL+"/auth"), srv
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := newAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "jane@example.com", req.Email)
		assert.Equal(t, "s3cret!A", req.Password)

		w.Write([]byte(`{"message":"Login successful","data":{
			"token":"tok-xyz",
			"user":{"id":7,"firstname":"Jane","email":"jane@example.com","roles":[{"id":1,"name":"ROLE_USER"}]}
		}}`))
	})

	token, user, err := svc.Login(context.Background(), LoginRequest{Email: "jane@example.com", Password: "s3cret!A"})
	require.NoError(t, err)
	assert.Equal(t, "tok-xyz", token)
	require.NotNil(t, user)
	assert.Equal(t, int64(7), user.ID)
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	svc, _ := newAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Bad credentials"}`))
	})

	_, _, err := svc.Login(context.Background(), LoginRequest{Email: "a@x.com", Password: "bad"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnauthorized))

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Bad credentials", apiErr.Message)
}

func TestAuthService_Signup(t *testing.T) {
	svc, _ := newAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/signup", r.URL.Path)
		var req SignupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Jane", req.Firstname)
		w.Write([]byte(`{"message":"Signup successful"}`))
	})

	msg, err := svc.Signup(context.Background(), SignupRequest{
		Firstname: "Jane", Lastname: "Doe", Email: "jane@example.com", Password: "s3cret!A",
	})
	require.NoError(t, err)
	assert.Equal(t, "Signup successful", msg)
}

func TestAuthService_Validate(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		svc, _ := newAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/validate", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		})
		assert.NoError(t, svc.Validate(context.Background()))
	})

	t.Run("rejected token", func(t *testing.T) {
		svc, _ := newAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		err := svc.Validate(context.Background())
		assert.True(t, errors.Is(err, common.ErrUnauthorized))
	})
}

func TestAuthService_VerifyEmail(t *testing.T) {
	svc, _ := newAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/verify-email", r.URL.Path)
		assert.Equal(t, "tok en", r.URL.Query().Get("token"))
		w.Write([]byte(`{"message":"Email verified"}`))
	})

	msg, err := svc.VerifyEmail(context.Background(), "tok en")
	require.NoError(t, err)
	assert.Equal(t, "Email verified", msg)
}

func TestAuthService_SendVerificationEmail(t *testing.T) {
	svc, _ := newAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/7/verify-email", r.URL.Path)
		w.Write([]byte(`{"message":"Verification email sent"}`))
	})

	require.NoError(t, svc.SendVerificationEmail(context.Background(), 7))
}
