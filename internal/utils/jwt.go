package utils

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// the owner identifier from it.
//
// Validation includes:
//   - Signature verification (HMAC-SHA256) using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
//
// The service never issues tokens itself; it only verifies tokens minted by
// the external identity provider and treats the subject claim as the
// already-authenticated owner id.
//
// Returns the subject claim, or an error if validation fails or the subject
// is missing.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return "", fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subject == "" {
		return "", errors.New("empty subject error")
	}

	return subject, nil
}
