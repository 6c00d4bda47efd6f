package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"datadesk/internal/infrastructure/auth"
	"datadesk/internal/shared/authorization"
	"datadesk/internal/shared/logger"
	"datadesk/internal/shared/utils"
)

const (
	// ContextKeyClaims is where RequireAuth stores the verified token claims.
	ContextKeyClaims = "auth_claims"
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

		c.Set(ContextKeyClaims, claims)

		c.Next()
	}
}

// RequireSuperAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok || !claims.Role.IsSuperAdmin() {
			utils.ErrorResponse(c, http.StatusForbidden, "super admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetClaims extracts the verified claims stored by RequireAuth.
func GetClaims(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}

// GetScope returns the caller's visibility scope, or a zero scope for
// unauthenticated requests.
func GetScope(c *gin.Context) authorization.Scope {
	claims, ok := GetClaims(c)
	if !ok {
		return authorization.Scope{}
	}
	return claims.Scope()
}
