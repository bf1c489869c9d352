package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amzproperties/amz-backend/internal/config"
	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/repositories/memory"
	"github.com/amzproperties/amz-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func middlewareTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiresIn = 3600
	return cfg
}

func newProtectedRouter(cfg *config.Config, repo *memory.AdminRepository, hit *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(cfg, repo), func(c *gin.Context) {
		*hit = true
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	var hit bool
	router := newProtectedRouter(middlewareTestConfig(), memory.NewAdminRepository(), &hit)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, hit)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	var hit bool
	router := newProtectedRouter(middlewareTestConfig(), memory.NewAdminRepository(), &hit)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, hit)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	var hit bool
	router := newProtectedRouter(middlewareTestConfig(), memory.NewAdminRepository(), &hit)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, hit)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	cfg := middlewareTestConfig()
	repo := memory.NewAdminRepository()
	admin := &models.Admin{
		Name:     "Admin User",
		Email:    "admin@amzproperties.com",
		Password: "irrelevant",
		Role:     "admin",
		IsActive: true,
	}
	require.NoError(t, repo.Create(context.Background(), admin))

	token, err := utils.GenerateJWT(admin.ID.Hex(), admin.Email, admin.Role, cfg)
	require.NoError(t, err)

	var hit bool
	router := newProtectedRouter(cfg, repo, &hit)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, hit)
}

func newAdminOnlyRouter(cfg *config.Config, repo *memory.AdminRepository, hit *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin-only", AuthMiddleware(cfg, repo), RequireAdmin(), func(c *gin.Context) {
		*hit = true
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func TestRequireAdminRejectsNonAdminRole(t *testing.T) {
	cfg := middlewareTestConfig()
	repo := memory.NewAdminRepository()
	editor := &models.Admin{
		Name:     "Editor User",
		Email:    "editor@amzproperties.com",
		Password: "irrelevant",
		Role:     "editor",
		IsActive: true,
	}
	require.NoError(t, repo.Create(context.Background(), editor))

	token, err := utils.GenerateJWT(editor.ID.Hex(), editor.Email, editor.Role, cfg)
	require.NoError(t, err)

	var hit bool
	router := newAdminOnlyRouter(cfg, repo, &hit)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, hit)
}

func TestRequireAdminAllowsAdminRole(t *testing.T) {
	cfg := middlewareTestConfig()
	repo := memory.NewAdminRepository()
	admin := &models.Admin{
		Name:     "Admin User",
		Email:    "admin@amzproperties.com",
		Password: "irrelevant",
		Role:     "admin",
		IsActive: true,
	}
	require.NoError(t, repo.Create(context.Background(), admin))

	token, err := utils.GenerateJWT(admin.ID.Hex(), admin.Email, admin.Role, cfg)
	require.NoError(t, err)

	var hit bool
	router := newAdminOnlyRouter(cfg, repo, &hit)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, hit)
}

func TestAuthMiddlewareDeactivatedAccount(t *testing.T) {
	cfg := middlewareTestConfig()
	repo := memory.NewAdminRepository()
	admin := &models.Admin{
		Name:     "Admin User",
		Email:    "admin@amzproperties.com",
		Password: "irrelevant",
		Role:     "admin",
		IsActive: false,
	}
	require.NoError(t, repo.Create(context.Background(), admin))

	token, err := utils.GenerateJWT(admin.ID.Hex(), admin.Email, admin.Role, cfg)
	require.NoError(t, err)

	var hit bool
	router := newProtectedRouter(cfg, repo, &hit)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, hit)
}
