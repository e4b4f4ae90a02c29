package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$12$notarealhashbutnonempty")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, StorageMemory, cfg.Storage.Backend)
	assert.Equal(t, UploadLocal, cfg.Upload.Backend)
	assert.Equal(t, int64(500*1024*1024), cfg.Upload.MaxBytes)
	assert.Equal(t, "*", cfg.CORS.AllowedOrigin)
	assert.Equal(t, "admin", cfg.Auth.AdminUsername)
}

func TestLoadFailsWithoutJWTSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$12$notarealhashbutnonempty")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_JWT_SECRET")
}

func TestLoadFailsWithoutPasswordHash(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADMIN_PASSWORD_HASH")
}

func TestLoadRejectsUnknownStorageBackend(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STORAGE_BACKEND", "cassandra")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_BACKEND")
}

func TestLoadRequiresRESTURLForRESTBackend(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STORAGE_BACKEND", StorageREST)
	t.Setenv("STORAGE_REST_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_REST_URL")

	t.Setenv("STORAGE_REST_URL", "https://data.example.com")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorageREST, cfg.Storage.Backend)
}

func TestLoadReadsStorageOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STORAGE_BACKEND", StorageFile)
	t.Setenv("STORAGE_FILE_PATH", "/tmp/showreel.json")
	t.Setenv("STORAGE_FALLBACK", "true")
	t.Setenv("UPLOAD_MAX_BYTES", "1048576")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorageFile, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/showreel.json", cfg.Storage.FilePath)
	assert.True(t, cfg.Storage.Fallback)
	assert.Equal(t, int64(1048576), cfg.Upload.MaxBytes)
}
