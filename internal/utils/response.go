package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the flat error payload returned on every failure. The
// behavioral test suite matches on the message text, so handlers must keep
// wording stable.
type ErrorBody struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Error writes an error response with the standard flat body.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{
		Status:  code,
		Error:   http.StatusText(code),
		Message: message,
	})
}
