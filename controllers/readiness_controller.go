package controllers

import (
	"net/http"

	"gatehub/models"
	"gatehub/scoring"
	"gatehub/services"

	"github.com/gin-gonic/gin"
)

// ReadinessRequest carries the assessment snapshot to score
type ReadinessRequest struct {
	Assessments []models.CriterionAssessment `json:"assessments"`
}

// ReadinessResponse is the aggregate plus its per-case breakdown
type ReadinessResponse struct {
	Result scoring.ReadinessResult `json:"result"`
	Cases  []scoring.CaseSummary   `json:"cases"`
}

// ComputeReadiness scores a posted assessment snapshot
func ComputeReadiness(c *gin.Context) {
	var req ReadinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	engine := services.GetReportService().Engine
	c.JSON(http.StatusOK, ReadinessResponse{
		Result: engine.Aggregate(req.Assessments),
		Cases:  engine.AggregateByCase(req.Assessments),
	})
}

// ComputeRecommendations derives the capped remediation list from a posted
// assessment snapshot
func ComputeRecommendations(c *gin.Context) {
	var req ReadinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	engine := services.GetReportService().Engine
	issues := scoring.CriticalIssues(req.Assessments)
	c.JSON(http.StatusOK, gin.H{
		"critical_issues": issues,
		"recommendations": engine.GenerateRecommendations(issues),
	})
}
