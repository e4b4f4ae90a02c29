package video

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"showreel-backend/internal/shared/middleware"
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

// List handles GET /api/videos. Anonymous callers only see published
// videos; an authenticated admin sees drafts too.
func (h *Handler) List(c *gin.Context) {
	filter := storage.VideoFilter{
		PublishedOnly: !middleware.IsAuthenticated(c),
	}

	videos, err := h.store.ListVideos(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list videos", err)
		response.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, videos)
}

// Create handles POST /api/videos.
func (h *Handler) Create(c *gin.Context) {
	var req CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid video payload", err)
		return
	}
	req.normalize()
	if err := req.Validate(); err != nil {
		response.BadRequest(c, "Invalid video payload", err)
		return
	}

	video, err := h.store.CreateVideo(c.Request.Context(), req.fields())
	if err != nil {
		logger.Error("Failed to create video", err)
		response.InternalServerError(c, err)
		return
	}

	logger.Info("Video created", map[string]interface{}{
		"id":    video.ID,
		"title": video.Title,
	})

	c.JSON(http.StatusCreated, video)
}

// Update handles PUT /api/videos/:id.
func (h *Handler) Update(c *gin.Context) {
	id, ok := h.videoID(c)
	if !ok {
		return
	}

	var req UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid video payload", err)
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, "Invalid video payload", err)
		return
	}

	video, err := h.store.UpdateVideo(c.Request.Context(), id, req.patch())
	if err != nil {
		if storage.IsNotFound(err) {
			response.NotFound(c, "Video not found")
			return
		}
		logger.Error("Failed to update video", err)
		response.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, video)
}

// Delete handles DELETE /api/videos/:id. Deletes are hard, the id is
// never handed out again.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.videoID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteVideo(c.Request.Context(), id); err != nil {
		if storage.IsNotFound(err) {
			response.NotFound(c, "Video not found")
			return
		}
		logger.Error("Failed to delete video", err)
		response.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, DeleteVideoResponse{Message: "Video deleted successfully"})
}

func (h *Handler) videoID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.NotFound(c, "Video not found")
		return 0, false
	}
	return id, true
}
