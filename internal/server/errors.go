package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/katalvlaran/multipath/dijkstra"
	"github.com/katalvlaran/multipath/internal/metrics"
	"github.com/katalvlaran/multipath/paths"
)

// Error code constants for standardized API responses.
const (
	ErrCodeInvalidRequest  = "invalid_request"
	ErrCodeNotFound        = "not_found"
	ErrCodePrecondition    = "precondition_failed"
	ErrCodeValidationError = "validation_error"
	ErrCodeInternalError   = "internal_error"
)

// respondError writes a standardized JSON error response and aborts the request.
func respondError(c *gin.Context, status int, code, message string) {
	metrics.ErrorsTotal.WithLabelValues(code).Inc()

	resp := gin.H{
		"code":    code,
		"message": message,
	}
	if rid, exists := c.Get(RequestIDKey); exists {
		resp["request_id"] = rid
	}

	c.AbortWithStatusJSON(status, resp)
}

// respondEngineError maps engine and enumerator errors onto HTTP statuses.
func respondEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, dijkstra.ErrVertexNotFound), errors.Is(err, paths.ErrVertexNotFound):
		respondError(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, dijkstra.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
	case errors.Is(err, dijkstra.ErrPrecondition):
		respondError(c, http.StatusUnprocessableEntity, ErrCodePrecondition, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal error")
	}
}
