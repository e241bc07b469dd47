package middleware

import (
	"net/http"

	"cine-reserve/pkg/utils"

	"go.uber.org/zap"
)

// Identity reads the caller identity supplied by the fronting identity
// collaborator: X-User-ID (opaque) and X-User-Role ("admin" marks admins).
// The values are trusted verbatim; authenticating them is the collaborator's
// job, not the engine's.
func Identity(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := r.Header.Get("X-User-ID")
			if userID == "" {
				utils.ResponseUnauthorized(w, "Missing X-User-ID header")
				return
			}

			isAdmin := r.Header.Get("X-User-Role") == "admin"
			ctx := utils.SetUserContext(r.Context(), userID, isAdmin)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin rejects requests whose identity does not carry the admin flag.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !utils.IsAdminFromContext(r.Context()) {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", userID),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
