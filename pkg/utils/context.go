package utils

import "context"

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	AdminKey  contextKey = "is_admin"
)

// The engine trusts the identity collaborator verbatim: user ID is an opaque
// string and the admin flag comes with the request context.

func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

func IsAdminFromContext(ctx context.Context) bool {
	isAdmin, ok := ctx.Value(AdminKey).(bool)
	return ok && isAdmin
}

func SetUserContext(ctx context.Context, userID string, isAdmin bool) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, AdminKey, isAdmin)
	return ctx
}
