package middleware

import (
	"net/http"

	"github.com/campushub/portal-backend/internal/model"
	"github.com/campushub/portal-backend/internal/response"
	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group on an allow-list of roles. Requests
// with no claims get 401 (the client redirects to login); authenticated
// requests whose role is outside the allow-list get 403 (the client
// redirects to its default view). Exactly one response either way.
func RequireRole(allowed ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		for _, role := range allowed {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		response.AbortFail(c, http.StatusForbidden, response.ErrRoleNotAllowed)
	}
}
