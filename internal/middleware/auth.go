package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Moorhen/internal/auth"
	"github.com/lshigami/Moorhen/internal/dto"
	"github.com/lshigami/Moorhen/internal/service"
)

const identityKey = "identity"

// JWTAuth authenticates the bearer token and attaches the caller's Identity
// to the gin context.
func JWTAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "invalid authorization header format"})
			return
		}

		identity, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "invalid or expired token"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireWrite gates quiz-authoring endpoints behind the write capability.
// Must run after JWTAuth.
func RequireWrite(perm auth.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFromContext(c)
		if !perm.Allows(identity, auth.CapabilityWrite) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "write access requires the teacher role"})
			return
		}
		c.Next()
	}
}

// IdentityFromContext returns the Identity set by JWTAuth, or the zero
// (unauthenticated) Identity.
func IdentityFromContext(c *gin.Context) auth.Identity {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(auth.Identity); ok {
			return identity
		}
	}
	return auth.Identity{}
}
