package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"showreel-backend/internal/config"
	"showreel-backend/internal/infrastructure/blob"
	"showreel-backend/internal/infrastructure/database"
	"showreel-backend/internal/infrastructure/thumbnail"
	"showreel-backend/internal/storage"
	"showreel-backend/pkg/jwt"

	"showreel-backend/internal/domains/auth"
	"showreel-backend/internal/domains/contact"
	"showreel-backend/internal/domains/profile"
	"showreel-backend/internal/domains/upload"
	"showreel-backend/internal/domains/video"
)

// Container holds the full dependency graph. Everything in here is a
// singleton living for the whole process.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB // nil unless the postgres backend is active

	Store      storage.Store
	Blob       blob.Store
	JWTManager *jwt.Manager

	AuthHandler    *auth.Handler
	ProfileHandler *profile.Handler
	VideoHandler   *video.Handler
	ContactHandler *contact.Handler
	UploadHandler  *upload.Handler
}

// NewContainer builds the dependency graph in order: config, then
// infrastructure, then handlers. A broken storage backend is fatal
// unless the fallback is enabled.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s, Storage: %s)",
		cfg.App.Environment, cfg.Storage.Backend)

	if err := c.initStorage(); err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}
	log.Printf("✅ Storage ready (%s)", cfg.Storage.Backend)

	if err := c.initBlob(); err != nil {
		return nil, fmt.Errorf("failed to init upload storage: %w", err)
	}

	c.JWTManager = jwt.NewManager(cfg.Auth.JWTSecret)

	c.initHandlers()
	log.Println("🎉 DI Container initialized successfully")

	return c, nil
}

// initStorage picks the content backend from config. With the
// fallback enabled, an unreachable backend degrades to the in-memory
// store instead of failing startup; with it reachable, the memory
// store still catches per-request errors.
func (c *Container) initStorage() error {
	var primary storage.Store
	var err error

	switch c.Config.Storage.Backend {
	case config.StorageMemory:
		c.Store = storage.NewMemory()
		return nil

	case config.StorageFile:
		primary, err = storage.NewFile(c.Config.Storage.FilePath)

	case config.StoragePostgres:
		primary, err = c.connectPostgres()

	case config.StorageREST:
		primary = storage.NewREST(c.Config.Storage.RESTURL, c.Config.Storage.RESTKey)

	default:
		return fmt.Errorf("unknown storage backend %q", c.Config.Storage.Backend)
	}

	if err != nil {
		if !c.Config.Storage.Fallback {
			return err
		}
		log.Printf("⚠️  Storage backend %s unavailable, falling back to memory: %v",
			c.Config.Storage.Backend, err)
		c.Store = storage.NewMemory()
		return nil
	}

	if c.Config.Storage.Fallback {
		c.Store = storage.NewFallback(primary, storage.NewMemory())
		return nil
	}
	c.Store = primary
	return nil
}

func (c *Container) connectPostgres() (storage.Store, error) {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	log.Println("✅ Database connected")

	return storage.NewPostgres(ctx, db.Pool)
}

// initBlob picks where uploaded media bytes land.
func (c *Container) initBlob() error {
	switch c.Config.Upload.Backend {
	case config.UploadLocal:
		local, err := blob.NewLocal(c.Config.Upload.Dir)
		if err != nil {
			return err
		}
		c.Blob = local
		log.Printf("✅ Upload dir ready (%s)", c.Config.Upload.Dir)
		return nil

	case config.UploadMinIO:
		m, err := blob.NewMinIO(c.Config.MinIO)
		if err != nil {
			return err
		}
		c.Blob = m
		log.Printf("✅ MinIO bucket ready (%s)", c.Config.MinIO.Bucket)
		return nil

	default:
		return fmt.Errorf("unknown upload backend %q", c.Config.Upload.Backend)
	}
}

func (c *Container) initHandlers() {
	c.AuthHandler = auth.NewHandler(auth.NewService(c.Config.Auth, c.JWTManager))
	c.ProfileHandler = profile.NewHandler(c.Store)
	c.VideoHandler = video.NewHandler(c.Store)
	c.ContactHandler = contact.NewHandler(contact.NewNotifier(c.Config.Contact.WebhookURL))
	c.UploadHandler = upload.NewHandler(c.Blob, thumbnail.NewProcessor(), c.Config.Upload.MaxBytes)
}

// Cleanup releases resources during graceful shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("✅ Database connections closed")
	}

	log.Println("✅ Container cleanup completed")
}
