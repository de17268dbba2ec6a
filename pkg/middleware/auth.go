package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/chitralaya/chitralaya/pkg/auth"
	"github.com/chitralaya/chitralaya/pkg/ctx"
	"github.com/chitralaya/chitralaya/pkg/rbac"
	"github.com/chitralaya/chitralaya/pkg/response"
)

// UserIDKey holds the authenticated user's ID in the request context.
var UserIDKey = ctx.ValueKey("user_id")

// UserResolver checks the token's subject against the live account
// record, so revoked or deactivated accounts fail even with a valid
// token. It returns the account's current role.
type UserResolver func(ctx context.Context, userID uint) (role string, active bool, err error)

// Auth authenticates the bearer token and stores the user ID and role
// in the request context.
func Auth(resolve UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				response.Unauthorized(w, "Authentication required")
				return
			}

			claims, err := auth.ParseToken(token)
			if err != nil {
				response.Unauthorized(w, "Invalid or expired token")
				return
			}

			role, active, err := resolve(r.Context(), claims.UserID)
			if err != nil || !active {
				response.Unauthorized(w, "Account not found or disabled")
				return
			}

			reqCtx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			reqCtx = context.WithValue(reqCtx, rbac.RoleKey, role)

			next.ServeHTTP(w, r.WithContext(reqCtx))
		})
	}
}

// UserID returns the authenticated user's ID, or 0 when absent.
func UserID(r *http.Request) uint {
	id, _ := r.Context().Value(UserIDKey).(uint)
	return id
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}
