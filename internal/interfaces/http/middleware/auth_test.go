package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datadesk/internal/infrastructure/auth"
	"datadesk/internal/shared/authorization"
	"datadesk/internal/shared/logger"
)

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (l noopLogger) With(args ...any) logger.Interface             { return l }
func (l noopLogger) Named(name string) logger.Interface            { return l }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func newTestRouter(t *testing.T, jwtService *auth.JWTService, superAdminOnly bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := NewAuthMiddleware(jwtService, noopLogger{})

	engine := gin.New()
	group := engine.Group("/protected")
	group.Use(m.RequireAuth())
	if superAdminOnly {
		group.Use(m.RequireSuperAdmin())
	}
	group.GET("", func(c *gin.Context) {
		claims, ok := GetClaims(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})

	return engine
}

func doRequest(engine *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 60)
	engine := newTestRouter(t, jwtService, false)

	t.Run("MissingHeader", func(t *testing.T) {
		w := doRequest(engine, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		w := doRequest(engine, "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("WrongSigningKey", func(t *testing.T) {
		other := auth.NewJWTService("other-secret", 60)
		token, err := other.Generate(7, "alice", authorization.RoleAdmin, "C001", "B001")
		require.NoError(t, err)

		w := doRequest(engine, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("ValidToken", func(t *testing.T) {
		token, err := jwtService.Generate(7, "alice", authorization.RoleAdmin, "C001", "B001")
		require.NoError(t, err)

		w := doRequest(engine, token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":7`)
	})
}

func TestRequireSuperAdmin(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 60)
	engine := newTestRouter(t, jwtService, true)

	t.Run("AdminForbidden", func(t *testing.T) {
		token, err := jwtService.Generate(7, "alice", authorization.RoleAdmin, "C001", "B001")
		require.NoError(t, err)

		w := doRequest(engine, token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("SuperAdminAllowed", func(t *testing.T) {
		token, err := jwtService.Generate(1, "root", authorization.RoleSuperAdmin, "", "")
		require.NoError(t, err)

		w := doRequest(engine, token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
