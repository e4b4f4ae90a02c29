package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config chứa toàn bộ application configuration.
// Populated from environment variables; .env is loaded by main.
type Config struct {
	App     AppConfig
	Auth    AuthConfig
	Storage StorageConfig
	Upload  UploadConfig
	Contact ContactConfig
	CORS    CORSConfig
	MinIO   MinIOConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// AuthConfig describes the single administrative principal. There is
// no user database: one username, one bcrypt hash, one signing secret.
type AuthConfig struct {
	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string // bcrypt hash, never a plaintext password
}

// Storage backend names.
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageREST     = "rest"
)

// Upload backend names.
const (
	UploadLocal = "local"
	UploadMinIO = "minio"
)

// StorageConfig selects the content storage backend.
// Backend: "memory" | "file" | "postgres" | "rest".
type StorageConfig struct {
	Backend  string
	FilePath string // file backend: JSON snapshot location
	RESTURL  string // rest backend: hosted service base URL
	RESTKey  string // rest backend: service key
	Fallback bool   // wrap the primary in a memory fallback
}

type UploadConfig struct {
	Backend  string // "local" | "minio"
	Dir      string // local backend: content directory
	MaxBytes int64  // size ceiling per upload
}

type ContactConfig struct {
	WebhookURL string // empty = log-only delivery
}

type CORSConfig struct {
	AllowedOrigin string
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Showreel API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Auth: AuthConfig{
			JWTSecret:         getEnv("AUTH_JWT_SECRET", ""),
			AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		Storage: StorageConfig{
			Backend:  getEnv("STORAGE_BACKEND", "memory"),
			FilePath: getEnv("STORAGE_FILE_PATH", "data/store.json"),
			RESTURL:  getEnv("STORAGE_REST_URL", ""),
			RESTKey:  getEnv("STORAGE_REST_KEY", ""),
			Fallback: getEnvBool("STORAGE_FALLBACK", false),
		},
		Upload: UploadConfig{
			Backend:  getEnv("UPLOAD_BACKEND", "local"),
			Dir:      getEnv("UPLOAD_DIR", "content/videos"),
			MaxBytes: getEnvInt64("UPLOAD_MAX_BYTES", 500*1024*1024), // 500 MiB
		},
		Contact: ContactConfig{
			WebhookURL: getEnv("CONTACT_WEBHOOK_URL", ""),
		},
		CORS: CORSConfig{
			AllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "showreel"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không.
// Auth settings are required in every environment: there is no
// hardcoded credential fallback, not even for development.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("AUTH_JWT_SECRET must be set")
	}
	if c.Auth.AdminPasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH must be set (bcrypt hash of the admin password)")
	}

	switch c.Storage.Backend {
	case StorageMemory, StorageFile, StoragePostgres, StorageREST:
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend)
	}

	if c.Storage.Backend == StorageREST && c.Storage.RESTURL == "" {
		return fmt.Errorf("STORAGE_REST_URL must be set for the rest backend")
	}

	switch c.Upload.Backend {
	case UploadLocal, UploadMinIO:
	default:
		return fmt.Errorf("unknown UPLOAD_BACKEND %q", c.Upload.Backend)
	}

	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
