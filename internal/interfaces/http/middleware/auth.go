package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fixdesk/internal/infrastructure/auth"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/session"
	"fixdesk/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and installs the principal into the
// request context. Every session is scoped to its own request; there is no
// process-wide current user.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		principal := session.Principal{
			UserID:      claims.UserID,
			Username:    claims.Username,
			DisplayName: claims.DisplayName,
			Role:        authorization.ParseUserRole(string(claims.Role)),
		}

		ctx := session.WithPrincipal(c.Request.Context(), principal)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
