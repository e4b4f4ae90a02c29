package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"showreel-backend/internal/shared/response"
	"showreel-backend/pkg/jwt"
)

// Context keys set by the auth middlewares.
const (
	ClaimsKey        = "claims"
	AuthenticatedKey = "authenticated"
)

// RequireAuth validates the Bearer token and aborts otherwise.
// A missing or malformed header is 401; a token that fails
// signature/expiry checks is 403. The distinction matters to the
// admin panel, which re-prompts for login on 401 but not on 403.
func RequireAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			response.Unauthorized(c, "Access token required")
			c.Abort()
			return
		}

		claims, err := manager.Validate(token)
		if err != nil {
			response.Forbidden(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(AuthenticatedKey, true)
		c.Next()
	}
}

// OptionalAuth never aborts: it marks the request authenticated when
// a valid token is present so admin callers can see drafts.
func OptionalAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Set(AuthenticatedKey, false)
			c.Next()
			return
		}

		claims, err := manager.Validate(token)
		if err != nil {
			c.Set(AuthenticatedKey, false)
		} else {
			c.Set(ClaimsKey, claims)
			c.Set(AuthenticatedKey, true)
		}

		c.Next()
	}
}

// GetClaims returns the verified claims set by RequireAuth.
func GetClaims(c *gin.Context) (*jwt.Claims, bool) {
	value, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*jwt.Claims)
	return claims, ok
}

// IsAuthenticated reports the flag set by the auth middlewares.
func IsAuthenticated(c *gin.Context) bool {
	return c.GetBool(AuthenticatedKey)
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
