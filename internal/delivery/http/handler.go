package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/glowpage/backend/internal/domain"
	"github.com/glowpage/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	pipeline *usecase.PipelineService
}

// NewHandler creates a new HTTP handler
func NewHandler(pipeline *usecase.PipelineService) *Handler {
	return &Handler{pipeline: pipeline}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "glowpage-backend",
		"version": "1.0.0",
	})
}

// GeneratePages runs the content pipeline for one raw product record and
// returns the generated artifacts.
func (h *Handler) GeneratePages(c *gin.Context) {
	if h.pipeline == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "pipeline service not configured",
		})
		return
	}

	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "request body must be a JSON object",
		})
		return
	}

	result, err := h.pipeline.Run(c.Request.Context(), raw, nil)
	if err != nil {
		if errors.Is(err, domain.ErrMissingName) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "product name could not be resolved from input",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "pipeline run failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"faq_items":  result.FAQItems,
		"comparison": result.Comparison,
		"pages":      result.Pages,
	})
}
