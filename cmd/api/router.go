package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"showreel-backend/internal/config"
	"showreel-backend/internal/shared/middleware"
	"showreel-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigin),
	)

	// Locally stored uploads are served straight from the content dir.
	if c.Config.Upload.Backend == config.UploadLocal {
		router.Static("/content", c.Config.Upload.Dir)
	}

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(api, c)
		setupProfileRoutes(api, c)
		setupVideoRoutes(api, c)
		setupContactRoutes(api, c)
		setupUploadRoutes(api, c)
	}

	return router
}

func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
		auth.GET("/verify", middleware.RequireAuth(c.JWTManager), c.AuthHandler.Verify)
	}
}

func setupProfileRoutes(api *gin.RouterGroup, c *container.Container) {
	profile := api.Group("/profile")
	{
		profile.GET("", c.ProfileHandler.Get)
		profile.PUT("", middleware.RequireAuth(c.JWTManager), c.ProfileHandler.Update)
	}
}

func setupVideoRoutes(api *gin.RouterGroup, c *container.Container) {
	videos := api.Group("/videos")
	{
		// Listing is public but drafts only show up for the admin.
		videos.GET("", middleware.OptionalAuth(c.JWTManager), c.VideoHandler.List)
		videos.POST("", middleware.RequireAuth(c.JWTManager), c.VideoHandler.Create)
		videos.PUT("/:id", middleware.RequireAuth(c.JWTManager), c.VideoHandler.Update)
		videos.DELETE("/:id", middleware.RequireAuth(c.JWTManager), c.VideoHandler.Delete)
	}
}

func setupContactRoutes(api *gin.RouterGroup, c *container.Container) {
	api.POST("/contact", c.ContactHandler.Submit)
}

func setupUploadRoutes(api *gin.RouterGroup, c *container.Container) {
	upload := api.Group("/upload")
	{
		upload.POST("/video", c.UploadHandler.Video)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"storage":   appCtx.Config.Storage.Backend,
		}

		if appCtx.DB != nil && appCtx.DB.Pool != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := appCtx.DB.Pool.Ping(ctx); err != nil {
				health["status"] = "degraded"
				health["database"] = "disconnected"
			} else {
				health["database"] = "ok"
			}
		}

		c.JSON(http.StatusOK, health)
	}
}
