package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/azzbr/padelx/internal/api/apierr"
	"github.com/azzbr/padelx/internal/model"
	"github.com/azzbr/padelx/internal/services/auth"
)

type contextKey string

const organizerContextKey contextKey = "organizer"

// Auth creates authentication middleware
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			organizer, err := authService.Validate(r.Context(), token)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), organizerContextKey, organizer)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken extracts the session token from the request
func extractToken(r *http.Request) string {
	// Check Authorization header first
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	// Fall back to cookie
	cookie, err := r.Cookie("session")
	if err == nil {
		return cookie.Value
	}

	return ""
}

// GetOrganizer returns the authenticated organizer from the request context
func GetOrganizer(ctx context.Context) *model.Organizer {
	organizer, _ := ctx.Value(organizerContextKey).(*model.Organizer)
	return organizer
}
