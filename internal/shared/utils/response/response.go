// Package response is the single funnel every handler responds through.
// Data endpoints return raw JSON values; acknowledgements and all errors are
// plain text. Server-side failures always surface the same generic message,
// with the underlying cause logged instead of leaked.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sonicseats/pkg/logger"
)

// ServerErrorMessage is the only message a client ever sees for a 500.
const ServerErrorMessage = "Something went wrong on the server. Please try again later."

// JSON responds with the value itself as the body (no envelope).
func JSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// Ack responds 200 with a plain-text acknowledgement message.
func Ack(c *gin.Context, message string) {
	c.String(http.StatusOK, message)
}

// ClientError responds 400 with a plain-text message describing exactly what
// the caller got wrong. Messages here are safe to show verbatim.
func ClientError(c *gin.Context, message string) {
	c.String(http.StatusBadRequest, message)
	c.Abort()
}

// ServerError responds 500 with the generic message and logs the real cause.
func ServerError(c *gin.Context, err error) {
	if err != nil {
		logger.GetDefault().LogHTTPError(c, err, http.StatusInternalServerError)
	}
	c.String(http.StatusInternalServerError, ServerErrorMessage)
	c.Abort()
}
