// Package response provides the JSON envelope every endpoint replies with:
// {success, statusCode, message?, code?, data?}.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response body shape.
type Envelope struct {
	Success    bool        `json:"success"`
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message,omitempty"`
	Code       string      `json:"code,omitempty"`
	Data       interface{} `json:"data,omitempty"`
}

// PageData wraps a list payload with pagination metadata.
type PageData struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
	Limit int         `json:"limit"`
	Page  int         `json:"page"`
}

// Success sends a 200 OK response with data and an optional message.
func Success(c *gin.Context, data interface{}, message ...string) {
	c.JSON(http.StatusOK, Envelope{
		Success:    true,
		StatusCode: http.StatusOK,
		Message:    first(message),
		Data:       data,
	})
}

// Created sends a 201 Created response.
func Created(c *gin.Context, data interface{}, message ...string) {
	c.JSON(http.StatusCreated, Envelope{
		Success:    true,
		StatusCode: http.StatusCreated,
		Message:    first(message),
		Data:       data,
	})
}

// Paginated sends a 200 OK response with items and pagination metadata.
func Paginated(c *gin.Context, items interface{}, total int64, limit, page int) {
	c.JSON(http.StatusOK, Envelope{
		Success:    true,
		StatusCode: http.StatusOK,
		Data: PageData{
			Items: items,
			Total: total,
			Limit: limit,
			Page:  page,
		},
	})
}

// Error sends an error response with the given status, message and
// optional machine-readable code.
func Error(c *gin.Context, statusCode int, message string, errorCode ...string) {
	c.JSON(statusCode, Envelope{
		Success:    false,
		StatusCode: statusCode,
		Message:    message,
		Code:       first(errorCode),
	})
}

func BadRequest(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusBadRequest, message, errorCode...)
}

func Unauthorized(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusUnauthorized, message, errorCode...)
}

func NotFound(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusNotFound, message, errorCode...)
}

func Conflict(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusConflict, message, errorCode...)
}

func TooManyRequests(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusTooManyRequests, message, errorCode...)
}

func InternalServerError(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusInternalServerError, message, errorCode...)
}

// BindJSONError handles JSON decode errors in request bodies.
func BindJSONError(c *gin.Context, err error) {
	BadRequest(c, "Invalid request format", "INVALID_JSON")
}

// ValidationFailed handles input validation errors.
func ValidationFailed(c *gin.Context, message string) {
	BadRequest(c, message, "VALIDATION_FAILED")
}

// DatabaseError handles store operation failures without leaking details.
func DatabaseError(c *gin.Context, message string) {
	InternalServerError(c, message, "DATABASE_ERROR")
}

func first(values []string) string {
	if len(values) > 0 {
		return values[0]
	}
	return ""
}
