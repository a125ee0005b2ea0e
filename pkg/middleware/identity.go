package middleware

import (
	"net/http"

	"soil-farming-agent/pkg/utils"

	"go.uber.org/zap"
)

// Identity copies the client-asserted x-role and x-user-email headers onto the
// request context. Nothing verifies these values: any caller can claim any role.
// This is the portal's documented (insecure) authorization contract, kept as-is.
func Identity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := r.Header.Get("x-role")
			email := r.Header.Get("x-user-email")

			ctx := utils.SetIdentityContext(r.Context(), role, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly rejects requests whose asserted role is not "admin"
func AdminOnly(logger *zap.Logger, action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := utils.GetRoleFromContext(r.Context())
			if role != "admin" {
				logger.Warn("Non-admin access attempt",
					zap.String("role", role),
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
				)
				utils.ResponseForbidden(w, "Only admin can "+action)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
