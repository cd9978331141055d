package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/newsverify/api-backend/internal/models"
	"github.com/newsverify/api-backend/internal/services"
)

// AnalyzeHandler handles HTTP requests for text classification
type AnalyzeHandler struct {
	analysisService *services.AnalysisService
	maxBodyBytes    int64
}

// NewAnalyzeHandler creates a new analyze handler. A non-positive
// maxBodyBytes disables the body limit.
func NewAnalyzeHandler(analysisService *services.AnalysisService, maxBodyBytes int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		analysisService: analysisService,
		maxBodyBytes:    maxBodyBytes,
	}
}

// Analyze handles POST /api/analyze
// @Summary Classify news text
// @Description Classifies the submitted text as "Real News" or "Fake News". Probabilities are percentages with two decimals that add up to 100; confidence is the probability of the predicted class.
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body models.AnalysisRequest true "Text to analyze"
// @Success 200 {object} models.AnalysisResponse "Classification result"
// @Failure 400 {object} models.ErrorResponse "Invalid JSON body or no text provided"
// @Failure 405 {object} models.ErrorResponse "Method not allowed"
// @Failure 413 {object} models.ErrorResponse "Request body too large"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Failure 503 {object} models.ErrorResponse "Model unavailable"
// @Router /analyze [post]
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	// Step 1: Read body; an empty body is treated as {}
	body := c.Request.Body
	if h.maxBodyBytes > 0 {
		body = http.MaxBytesReader(c.Writer, body, h.maxBodyBytes)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
			return
		}
		respondError(c, http.StatusBadRequest, MsgInvalidJSON)
		return
	}

	// Step 2: Decode JSON
	var req models.AnalysisRequest
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := binding.JSON.BindBody(raw, &req); err != nil {
			respondError(c, http.StatusBadRequest, MsgInvalidJSON)
			return
		}
	}

	// Step 3: Call analysis service
	resp, err := h.analysisService.Analyze(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		statusCode, message := determineErrorStatusCode(err)
		respondError(c, statusCode, message)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func respondError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, models.NewErrorResponse(message))
}
