package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the uniform error shape the front end expects.
// Details carries diagnostic info and is only populated outside
// production.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

var production bool

// Init sets the production flag once at startup. In production the
// details field is suppressed and clients only see generic messages.
func Init(prod bool) {
	production = prod
}

// Error writes the standard error body. err may be nil.
func Error(c *gin.Context, statusCode int, message string, err error) {
	body := ErrorBody{Error: message}
	if err != nil && !production {
		body.Details = err.Error()
	}
	c.JSON(statusCode, body)
}

// Common error responses
func BadRequest(c *gin.Context, message string, err error) {
	Error(c, 400, message, err)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, 401, message, nil)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, 403, message, nil)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 404, message, nil)
}

func InternalServerError(c *gin.Context, err error) {
	Error(c, 500, "Internal server error", err)
}
