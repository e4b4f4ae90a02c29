package profile

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"showreel-backend/internal/shared/response"
	"showreel-backend/internal/storage"
	"showreel-backend/pkg/logger"
)

type Handler struct {
	store storage.Store
}

func NewHandler(store storage.Store) *Handler {
	return &Handler{store: store}
}

// Get handles GET /api/profile. Public, 404 until a profile exists.
func (h *Handler) Get(c *gin.Context) {
	prof, err := h.store.GetProfile(c.Request.Context())
	if err != nil {
		if storage.IsNotFound(err) {
			response.NotFound(c, "Profile not found")
			return
		}
		logger.Error("Failed to load profile", err)
		response.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, prof)
}

// Update handles PUT /api/profile. Creates the profile on first
// write and answers 201, then 200 on later updates.
func (h *Handler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid profile payload", err)
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, "Invalid profile payload", err)
		return
	}

	prof, created, err := h.store.UpsertProfile(c.Request.Context(), req.patch())
	if err != nil {
		logger.Error("Failed to save profile", err)
		response.InternalServerError(c, err)
		return
	}

	status := http.StatusOK
	message := "Profile updated successfully"
	if created {
		status = http.StatusCreated
		message = "Profile created successfully"
	}

	c.JSON(status, UpdateProfileResponse{Message: message, Data: prof})
}
