package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"showreel-backend/internal/config"
	"showreel-backend/internal/shared/middleware"
	"showreel-backend/pkg/jwt"
)

func newTestRouter(t *testing.T, cfg config.AuthConfig) (*gin.Engine, *jwt.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := jwt.NewManager("test-secret")
	handler := NewHandler(NewService(cfg, tokens))

	r := gin.New()
	r.POST("/api/auth/login", handler.Login)
	r.GET("/api/auth/verify", middleware.RequireAuth(tokens), handler.Verify)
	return r, tokens
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginSuccess(t *testing.T) {
	r, _ := newTestRouter(t, config.AuthConfig{
		AdminUsername:     "admin",
		AdminPasswordHash: hashPassword(t, "hunter2"),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"hunter2"}`))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp.Message)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, UserInfo{ID: 1, Username: "admin", Role: "admin"}, resp.User)
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := newTestRouter(t, config.AuthConfig{
		AdminUsername:     "admin",
		AdminPasswordHash: hashPassword(t, "hunter2"),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"wrong"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLoginMissingFields(t *testing.T) {
	r, _ := newTestRouter(t, config.AuthConfig{
		AdminUsername:     "admin",
		AdminPasswordHash: hashPassword(t, "hunter2"),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"admin"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginWithoutConfiguredHashFailsClosed(t *testing.T) {
	r, _ := newTestRouter(t, config.AuthConfig{AdminUsername: "admin"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"anything"}`))
	r.ServeHTTP(w, req)

	// Misconfiguration is a server fault, not a credentials failure.
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestVerifyWithValidToken(t *testing.T) {
	r, tokens := newTestRouter(t, config.AuthConfig{
		AdminUsername:     "admin",
		AdminPasswordHash: hashPassword(t, "hunter2"),
	})

	token, err := tokens.Generate("admin")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp VerifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	assert.Equal(t, "admin", resp.User.Username)
}

func TestVerifyMissingToken(t *testing.T) {
	r, _ := newTestRouter(t, config.AuthConfig{
		AdminUsername:     "admin",
		AdminPasswordHash: hashPassword(t, "hunter2"),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifyInvalidToken(t *testing.T) {
	r, _ := newTestRouter(t, config.AuthConfig{
		AdminUsername:     "admin",
		AdminPasswordHash: hashPassword(t, "hunter2"),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
