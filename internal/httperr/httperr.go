// Package httperr carries typed application errors to the HTTP layer and
// maps them to a stable JSON wire format.
package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is an application error with the HTTP status it should produce.
type Error struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Status: http.StatusNotFound}
}

func BadRequest(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Status: http.StatusBadRequest}
}

// Respond writes err as {error: {message, status}, message}. Errors without a
// typed status (constraint violations, driver faults) fall back to 500.
func Respond(c *gin.Context, err error) {
	apiErr := &Error{Message: err.Error(), Status: http.StatusInternalServerError}

	var typed *Error
	if errors.As(err, &typed) {
		apiErr = typed
	}

	c.JSON(apiErr.Status, gin.H{
		"error":   apiErr,
		"message": apiErr.Message,
	})
}
