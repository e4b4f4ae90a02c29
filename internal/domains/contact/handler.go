package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"showreel-backend/internal/shared/response"
)

type Handler struct {
	notifier *Notifier
}

func NewHandler(notifier *Notifier) *Handler {
	return &Handler{notifier: notifier}
}

// Submit handles POST /api/contact. Once the payload validates, the
// caller always gets a success response; webhook outages must never
// block a visitor's form submission.
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid contact payload", err)
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, "Invalid contact payload", err)
		return
	}

	h.notifier.Notify(c.Request.Context(), req)

	c.JSON(http.StatusOK, SubmitResponse{
		Success: true,
		Message: "Thank you for your message! I will get back to you soon.",
	})
}
