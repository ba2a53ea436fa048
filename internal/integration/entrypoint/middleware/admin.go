package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/campus-pos/backend/internal/domain/error"
	"github.com/campus-pos/backend/internal/integration/entrypoint/dto"
)

// RequireAdmin returns a Gin middleware handler that rejects non-admin
// callers. It must run after Authenticate, which stores the admin flag.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetIsAdminFromContext(c) {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "Admin privileges required",
				Code:  string(domainerror.ErrCodeNotAdmin),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
