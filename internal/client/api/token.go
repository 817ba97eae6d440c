package api

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrOpaqueToken is returned when the bearer token is not a decodable JWT.
var ErrOpaqueToken = errors.New("token is not a decodable JWT")

// InspectToken decodes the claims of a bearer token for display purposes
// only. The signature is NOT verified; the token stays opaque to all
// authorization logic, which is the backend's job.
func InspectToken(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, ErrOpaqueToken
	}
	return claims, nil
}
