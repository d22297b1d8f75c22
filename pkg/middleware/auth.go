package middleware

import (
	"strings"

	"video-hive/pkg/apperror"
	"video-hive/pkg/jwt"
	"video-hive/pkg/response"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookie = "accessToken"

// AuthMiddleware accepts the access token from the accessToken cookie or an
// "Authorization: Bearer" header and stores the caller in the gin context.
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Error(c, apperror.Unauthorized("Unauthorized request"))
			return
		}

		claims, err := jwtService.ValidateAccessToken(token)
		if err != nil {
			response.Error(c, apperror.Unauthorized("Invalid access token").WithCause(err))
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("email", claims.Email)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
