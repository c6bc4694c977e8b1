package utils

import (
	"context"

	"mandi/globals"
)

// GetUserIDFromContext returns the authenticated user ID placed in the
// context by the auth middleware, or "" when unauthenticated.
func GetUserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(globals.UserIDKey).(string)
	return userID
}

// GetRoleFromContext returns the authenticated role, or "".
func GetRoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(globals.RoleKey).(string)
	return role
}
