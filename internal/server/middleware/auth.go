// Package middleware provides HTTP middleware for dashboard authentication.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// staffIDKey is the context key for storing the authenticated staff id.
const staffIDKey ContextKey = "staffID"

// TokenValidator validates session tokens. The interface keeps the
// middleware free of an import cycle with the JWT service.
type TokenValidator interface {
	ValidateToken(tokenString string) (StaffIDGetter, error)
}

// StaffIDGetter extracts the staff account id from token claims.
type StaffIDGetter interface {
	GetStaffID() uuid.UUID
}

// Auth creates middleware that validates Bearer tokens and adds the staff
// id to the request context.
func Auth(jwtService TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// "Bearer" is matched case-insensitively.
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimSpace(parts[1])
			if tokenString == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := jwtService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), staffIDKey, claims.GetStaffID())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetStaffID extracts the authenticated staff id from the request context.
func GetStaffID(r *http.Request) (uuid.UUID, error) {
	staffID, ok := r.Context().Value(staffIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("staff ID not found in request context")
	}
	return staffID, nil
}

// StaffIDKey returns the context key for the staff id (for testing purposes).
func StaffIDKey() ContextKey {
	return staffIDKey
}
