package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Response defines the standard API response envelope.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination holds pagination metadata for list responses.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// NewPagination builds pagination metadata with safety defaults.
func NewPagination(page, limit, total int) *Pagination {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	return &Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}
}

// Success writes a success response with the standard envelope.
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessWithPagination writes a success response with pagination metadata.
func SuccessWithPagination(c *gin.Context, code int, message string, data interface{}, page, limit, total int) {
	c.JSON(code, Response{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: NewPagination(page, limit, total),
	})
}

// Error writes an error response with the given status and message.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Success: false,
		Message: message,
	})
}

// RespondError translates an error from the service layer into the envelope.
// Classified errors keep their status and message; anything else is logged and
// reported as a generic 500 so internals never leak to the client.
func RespondError(c *gin.Context, err error) {
	if appErr, ok := AsAppError(err); ok {
		if appErr.Status == http.StatusInternalServerError {
			log.Error().Err(appErr.Err).
				Str("request_id", c.GetString("request_id")).
				Str("path", c.Request.URL.Path).
				Msg("internal error")
		}
		Error(c, appErr.Status, appErr.Message)
		return
	}
	log.Error().Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("path", c.Request.URL.Path).
		Msg("unclassified error")
	Error(c, http.StatusInternalServerError, "Internal server error")
}
