package controllers

import (
	"net/http"

	"gatehub/models"
	"gatehub/scoring"
	"gatehub/services"

	"github.com/gin-gonic/gin"
)

// CoverageRequest carries the gate and the uploaded-document metadata
type CoverageRequest struct {
	Gate      string                   `json:"gate"`
	Documents []models.ProjectDocument `json:"documents"`
}

// ComputeCoverage matches posted document metadata against the gate's
// recommended-document checklist
func ComputeCoverage(c *gin.Context) {
	var req CoverageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	cat, ok := services.GetReportService().Catalog.ForGate(req.Gate)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No document catalog for gate"})
		return
	}

	coverage, ok := scoring.MatchCatalog(cat, req.Documents)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No document catalog for gate"})
		return
	}
	c.JSON(http.StatusOK, coverage)
}

// GetGateCatalog returns the recommended-document checklist for a gate
func GetGateCatalog(c *gin.Context) {
	gate := c.Param("gate")
	cat, ok := services.GetReportService().Catalog.ForGate(gate)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No document catalog for gate"})
		return
	}
	c.JSON(http.StatusOK, cat)
}

// ListGates returns the known gate identifiers
func ListGates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"gates": services.GetReportService().Catalog.Gates()})
}
