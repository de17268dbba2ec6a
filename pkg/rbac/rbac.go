// Package rbac gates routes on the authenticated user's role.
package rbac

import (
	"net/http"

	"github.com/chitralaya/chitralaya/pkg/ctx"
	"github.com/chitralaya/chitralaya/pkg/response"
)

// RoleKey is the request-context key the auth middleware stores the
// user's role under.
var RoleKey = ctx.ValueKey("role")

// RoleFromRequest returns the role placed in the request context by
// the auth middleware, or "" when the request is unauthenticated.
func RoleFromRequest(r *http.Request) string {
	role, _ := r.Context().Value(RoleKey).(string)
	return role
}

// HasRole rejects requests whose authenticated role differs from want.
func HasRole(want string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if RoleFromRequest(r) != want {
				response.Forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
