package upload

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"showreel-backend/internal/infrastructure/blob"
	"showreel-backend/internal/infrastructure/thumbnail"
	"showreel-backend/internal/shared/response"
	"showreel-backend/pkg/logger"
)

// allowedTypes is the accepted video MIME allowlist.
var allowedTypes = map[string]bool{
	"video/mp4":       true,
	"video/quicktime": true,
	"video/x-msvideo": true,
	"video/webm":      true,
	"video/ogg":       true,
}

type Handler struct {
	store    blob.Store
	thumbs   *thumbnail.Processor
	maxBytes int64
}

func NewHandler(store blob.Store, thumbs *thumbnail.Processor, maxBytes int64) *Handler {
	return &Handler{store: store, thumbs: thumbs, maxBytes: maxBytes}
}

// FileInfo describes a stored upload. Field names follow the admin
// client contract, hence the camelCase.
type FileInfo struct {
	Filename      string  `json:"filename"`
	OriginalName  string  `json:"originalName"`
	Size          int64   `json:"size"`
	Type          string  `json:"type"`
	Path          string  `json:"path"`
	ThumbnailPath *string `json:"thumbnailPath"`
	UploadedAt    string  `json:"uploadedAt"`
}

type UploadResponse struct {
	Success bool     `json:"success"`
	Data    FileInfo `json:"data"`
}

// Video handles POST /api/upload/video. Expects a multipart form with
// a required "video" part and an optional "thumbnail" image part.
func (h *Handler) Video(c *gin.Context) {
	file, header, err := c.Request.FormFile("video")
	if err != nil {
		response.BadRequest(c, "No video file provided", err)
		return
	}
	defer file.Close()

	if header.Size > h.maxBytes {
		response.BadRequest(c,
			fmt.Sprintf("File too large, maximum is %dMB", h.maxBytes/(1024*1024)), nil)
		return
	}

	contentType := detectContentType(header.Filename, header.Header.Get("Content-Type"))
	if !allowedTypes[contentType] {
		response.BadRequest(c, "Unsupported video format", nil)
		return
	}

	now := time.Now().UTC()
	key := storageKey(header.Filename, now)

	path, err := h.store.Save(c.Request.Context(), key, file, header.Size, contentType)
	if err != nil {
		logger.Error("Failed to store upload", err)
		response.InternalServerError(c, err)
		return
	}

	info := FileInfo{
		Filename:      key,
		OriginalName:  header.Filename,
		Size:          header.Size,
		Type:          contentType,
		Path:          path,
		ThumbnailPath: h.saveThumbnail(c, key),
		UploadedAt:    now.Format(time.RFC3339),
	}

	logger.Info("Video uploaded", map[string]interface{}{
		"filename": info.Filename,
		"size":     info.Size,
		"type":     info.Type,
	})

	c.JSON(http.StatusOK, UploadResponse{Success: true, Data: info})
}

// saveThumbnail processes the optional thumbnail part. Best effort,
// any failure leaves the upload without a thumbnail.
func (h *Handler) saveThumbnail(c *gin.Context, videoKey string) *string {
	file, _, err := c.Request.FormFile("thumbnail")
	if err != nil {
		return nil
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Warn("Failed to read thumbnail part", map[string]interface{}{"error": err.Error()})
		return nil
	}

	if err := h.thumbs.Validate(data); err != nil {
		logger.Warn("Thumbnail rejected", map[string]interface{}{"error": err.Error()})
		return nil
	}

	resized, err := h.thumbs.Process(data)
	if err != nil {
		logger.Warn("Thumbnail processing failed", map[string]interface{}{"error": err.Error()})
		return nil
	}

	ext := filepath.Ext(videoKey)
	thumbKey := strings.TrimSuffix(videoKey, ext) + "-thumb.jpg"

	path, err := h.store.Save(c.Request.Context(), thumbKey,
		bytes.NewReader(resized), int64(len(resized)), "image/jpeg")
	if err != nil {
		logger.Warn("Failed to store thumbnail", map[string]interface{}{"error": err.Error()})
		return nil
	}

	return &path
}

// detectContentType trusts the declared part type when present and
// falls back to the file extension.
func detectContentType(filename, declared string) string {
	declared = strings.TrimSpace(strings.Split(declared, ";")[0])
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); byExt != "" {
		return strings.Split(byExt, ";")[0]
	}
	return declared
}
