package profile

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showreel-backend/internal/storage"
)

func newTestRouter(store storage.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(store)

	r := gin.New()
	r.GET("/api/profile", handler.Get)
	r.PUT("/api/profile", handler.Update)
	return r
}

func TestGetProfileNotFound(t *testing.T) {
	r := newTestRouter(storage.NewMemory())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/profile", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Profile not found")
}

func TestUpdateCreatesThenUpdates(t *testing.T) {
	r := newTestRouter(storage.NewMemory())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/profile",
		strings.NewReader(`{"name":"Ada Film","title":"Director"}`)))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp UpdateProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Profile created successfully", resp.Message)
	assert.Equal(t, 1, resp.Data.ID)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/profile",
		strings.NewReader(`{"bio":"Fifteen years behind the camera."}`)))
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Profile updated successfully", resp.Message)
	assert.Equal(t, "Ada Film", resp.Data.Name)
	assert.Equal(t, "Fifteen years behind the camera.", resp.Data.Bio)
}

func TestUpdateReplacesSocialLinks(t *testing.T) {
	r := newTestRouter(storage.NewMemory())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/profile",
		strings.NewReader(`{"social_links":{"vimeo":"https://vimeo.com/ada","youtube":"https://youtube.com/@ada"}}`)))
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/profile",
		strings.NewReader(`{"social_links":{"vimeo":"https://vimeo.com/new"}}`)))
	require.Equal(t, http.StatusOK, w.Code)

	var resp UpdateProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, map[string]string{"vimeo": "https://vimeo.com/new"}, resp.Data.SocialLinks)
}

func TestUpdateRejectsBadEmail(t *testing.T) {
	r := newTestRouter(storage.NewMemory())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/profile",
		strings.NewReader(`{"email":"not-an-email"}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProfileAfterCreate(t *testing.T) {
	store := storage.NewMemory()
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/profile",
		strings.NewReader(`{"name":"Ada Film"}`)))
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/profile", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var prof storage.Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prof))
	assert.Equal(t, "Ada Film", prof.Name)
}
