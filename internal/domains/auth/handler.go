package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"showreel-backend/internal/shared/middleware"
	"showreel-backend/internal/shared/response"
	"showreel-backend/pkg/logger"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Username and password are required", err)
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, "Username and password are required", err)
		return
	}

	token, user, err := h.service.Login(req)
	if err != nil {
		if errors.Is(err, ErrServerMisconfigured) {
			logger.Error("Login rejected, admin password hash is not set", err)
			response.InternalServerError(c, err)
			return
		}
		response.Unauthorized(c, "Invalid credentials")
		return
	}

	logger.Info("Admin logged in", map[string]interface{}{
		"username": user.Username,
	})

	c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    user,
	})
}

// Verify handles GET /api/auth/verify. The auth middleware has
// already rejected missing or invalid tokens before this runs.
func (h *Handler) Verify(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		response.Unauthorized(c, "Access token required")
		return
	}

	c.JSON(http.StatusOK, VerifyResponse{
		Valid: true,
		User:  UserInfo{ID: claims.ID, Username: claims.Username, Role: claims.Role},
	})
}
