package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiryClaim is returned by TokenExpiry when the token parses as a JWT
// but carries no `exp` claim.
var ErrNoExpiryClaim = errors.New("token has no expiry claim")

// TokenExpiry extracts the expiry timestamp from a JWT access token without
// verifying its signature. The caller never holds the backend's signing key,
// so verification is impossible by construction; the expiry is used only for
// scheduling refreshes, not for trust decisions.
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return time.Time{}, errors.New("unexpected token claims type")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("error reading expiry claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiryClaim
	}

	return exp.Time, nil
}
