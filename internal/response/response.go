package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shareit-go/service-shareit/internal/domain"
)

// ErrorBody is the JSON body of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// Success writes data with 200 OK.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes data with 201 Created.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent writes an empty 200 OK.
func NoContent(c *gin.Context) {
	c.Status(http.StatusOK)
}

// BadRequest writes a 400 with the given message.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorBody{Error: message})
}

// Error maps err onto a status code. Errors without a domain kind are attached to the
// gin context for the request logger and answered with a generic 500.
func Error(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.AbortWithStatusJSON(status, ErrorBody{Error: "internal server error"})
		return
	}
	c.AbortWithStatusJSON(status, ErrorBody{Error: err.Error()})
}

// StatusFor returns the HTTP status for an error.
func StatusFor(err error) int {
	kind, ok := domain.KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case domain.KindUserNotFound, domain.KindItemNotFound, domain.KindBookingNotFound, domain.KindRequestNotFound:
		return http.StatusNotFound
	case domain.KindValidation, domain.KindUnknownState:
		return http.StatusBadRequest
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
