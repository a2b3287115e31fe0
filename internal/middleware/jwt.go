package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/hlog"

	"NOTES_BACK-END/internal/models"
	"NOTES_BACK-END/internal/utils"
)

type contextKey struct{}

var userIDKey = contextKey{}

// TokenVerifier resolves a bearer token to the user it was issued for.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (models.UserID, error)
}

// AuthMiddleware validates JWT tokens in the Authorization header
func AuthMiddleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Authorization header required")
				return
			}

			// Extract token from "Bearer <token>"
			tokenParts := strings.Fields(authHeader)
			if len(tokenParts) != 2 || !strings.EqualFold(tokenParts[0], "Bearer") {
				utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid authorization header format")
				return
			}

			userID, err := verifier.VerifyToken(r.Context(), tokenParts[1])
			if err != nil {
				hlog.FromRequest(r).Debug().Err(err).Msg("Rejected bearer token")
				utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// WithUserID returns a copy of ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, id models.UserID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromContext returns the user id stored by AuthMiddleware.
func UserIDFromContext(ctx context.Context) (models.UserID, bool) {
	id, ok := ctx.Value(userIDKey).(models.UserID)
	return id, ok
}
