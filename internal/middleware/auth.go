package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"session-task-api/internal/auth"
)

// Context keys set by the Auth middleware.
const (
	ContextUserIDKey = "user_id"
	ContextClaimsKey = "token_claims"
)

// Auth returns a middleware that authenticates requests with the JWT
// stored in the auth cookie. An Authorization Bearer header is accepted
// as a fallback for non-browser clients. Revoked tokens (logged out)
// are rejected.
func Auth(tokens *auth.TokenManager, blacklist *auth.Blacklist, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c, cookieName)
		if tokenString == "" {
			abortUnauthorized(c, "Authentication token is required")
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		if blacklist.IsRevoked(c.Request.Context(), claims.TokenID) {
			abortUnauthorized(c, "Token has been revoked")
			return
		}

		// Store user ID and claims in context for downstream use
		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextClaimsKey, claims)

		c.Next()
	}
}

func extractToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}

	return ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
		"message": message,
	})
	c.Abort()
}
