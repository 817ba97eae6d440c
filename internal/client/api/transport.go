package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/avolkovs/storekeeper/internal/common"
)

// TokenSource supplies the current bearer token, or "" when anonymous.
// The pipeline reads it on every request so that login/logout take effect
// immediately without rebuilding the client.
type TokenSource func() string

// authTransport is the request/response interceptor pair of the pipeline.
//
// Request side: attaches "Authorization: Bearer <token>" when a token is
// present, plus a fresh X-Request-Id. Response side: on exactly 401, invokes
// onUnauthorized once and lets the response continue to the caller so its
// own error handling still runs.
type authTransport struct {
	base           http.RoundTripper
	tokenSource    TokenSource
	onUnauthorized func()
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Per RoundTripper contract the request must not be mutated in place.
	req = req.Clone(req.Context())

	if t.tokenSource != nil {
		if token := t.tokenSource(); token != "" {
			req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
		}
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && t.onUnauthorized != nil {
		t.onUnauthorized()
	}

	return resp, nil
}
