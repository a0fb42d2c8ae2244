// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jacklucas/notes-api/internal/logger"
	"github.com/jacklucas/notes-api/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [utils.ValidateAndParseJWTToken], and — on success — stores
// the token's subject (the owner id) in the request context under
// [utils.UserIDCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token has expired (jwt.ErrTokenExpired).
//   - The token is otherwise invalid, carries the wrong issuer, or has no
//     subject claim.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		userID, err := utils.ValidateAndParseJWTToken(tokenString, h.tokenSignKey, h.tokenIssuer)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				log.Err(err).Msg("token expired")
				http.Error(w, "token is expired", http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during parsing token")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
		}

		// Store the authenticated owner's id in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
