package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nutriplan/backend/internal/service"
	"github.com/nutriplan/backend/internal/types"
)

// DietHandler handles diet plan and nutrition breakdown requests
type DietHandler struct {
	diet   *service.DietService
	logger zerolog.Logger
}

// NewDietHandler creates a new DietHandler instance
func NewDietHandler(diet *service.DietService, logger zerolog.Logger) *DietHandler {
	return &DietHandler{
		diet:   diet,
		logger: logger.With().Str("component", "diet_handler").Logger(),
	}
}

// RegisterRoutes registers the diet routes on the engine root
func (h *DietHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/generate_diet_plan", h.GenerateDietPlan)
	router.POST("/nutrition_breakdown", h.NutritionBreakdown)
}

// GenerateDietPlan handles POST /generate_diet_plan
func (h *DietHandler) GenerateDietPlan(c *gin.Context) {
	var req types.DietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid request body",
			Details: validationDetails(err),
		})
		return
	}

	resp, err := h.diet.GenerateDietPlan(c.Request.Context(), &req)
	if err != nil {
		h.renderServiceError(c, err, "failed to generate diet plan")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// NutritionBreakdown handles POST /nutrition_breakdown
func (h *DietHandler) NutritionBreakdown(c *gin.Context) {
	var req types.NutritionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid request body",
			Details: validationDetails(err),
		})
		return
	}

	resp, err := h.diet.NutritionBreakdown(c.Request.Context(), &req)
	if err != nil {
		h.renderServiceError(c, err, "failed to analyze nutrition")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// renderServiceError maps pipeline failures onto the error taxonomy without
// exposing internal error text to the caller.
func (h *DietHandler) renderServiceError(c *gin.Context, err error, context string) {
	var parseErr *service.ParseError
	if errors.As(err, &parseErr) {
		h.logger.Error().Err(err).Str("context", context).Msg("AI response not parseable")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error: "AI service returned an unusable response",
		})
		return
	}

	var upstreamErr *service.UpstreamError
	if errors.As(err, &upstreamErr) {
		h.logger.Error().Err(err).Str("context", context).Msg("AI service unreachable")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error: "AI service is unavailable",
		})
		return
	}

	h.logger.Error().Err(err).Str("context", context).Msg("unexpected error")
	c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: context})
}
