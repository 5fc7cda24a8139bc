package handlers

import (
	"net/http"

	"evfleet/internal/analysis"
	"evfleet/internal/api/models"

	"github.com/gin-gonic/gin"
)

// CompareHandler handles criterion-comparison requests.
type CompareHandler struct{}

// NewCompareHandler builds a compare handler.
func NewCompareHandler() *CompareHandler {
	return &CompareHandler{}
}

// RunComparison handles POST /api/v1/compare.
func (h *CompareHandler) RunComparison(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	resources := toResourcesDescriptor(req.Resources)
	steps := toScenarioSteps(req.Scenario)

	rankings, err := analysis.RankByGrade(c.Request.Context(), resources, steps)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "SIMULATION_ERROR", Message: err.Error()},
		})
		return
	}

	out := make([]models.CriterionResultResponse, 0, len(rankings))
	for _, r := range rankings {
		out = append(out, models.CriterionResultResponse{
			Criterion:  r.Criterion,
			FinalGrade: r.FinalGrade,
			FinalTime:  r.FinalTime,
		})
	}
	c.JSON(http.StatusOK, models.CompareResponse{Rankings: out})
}
