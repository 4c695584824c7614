package handlers

import (
	"net/http"

	"github.com/fitflow/ai-gateway/pkg/domain"
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// respondError maps the error taxonomy to HTTP: caller bugs are 400, missing
// prompts included; configuration and provider failures are 500 with the
// upstream detail preserved.
func respondError(c *gin.Context, fallback string, err error) {
	switch {
	case domain.IsInvalidRequest(err):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Error: fallback, Details: err.Error()})
	}
}
