package controllers

import (
	"log"
	"net/http"
	"strconv"

	"gatehub/services"

	"github.com/gin-gonic/gin"
)

// GetProjectReport recomputes the full readiness report for a project from
// its stored inputs. The dashboard and the exportable report both consume
// this payload.
func GetProjectReport(c *gin.Context) {
	projectID := c.Param("id")

	report, err := services.GetReportService().BuildReport(c, projectID)
	if err != nil {
		log.Printf("Error building report for project %s: %v", projectID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetCriterionGaps returns the path-to-green gap list for one stored
// criterion assessment
func GetCriterionGaps(c *gin.Context) {
	projectID := c.Param("id")
	criterionID, err := strconv.Atoi(c.Param("criterionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid criterion id"})
		return
	}

	gaps, err := services.GetReportService().GapsForCriterion(c, projectID, criterionID)
	if err != nil {
		log.Printf("Error computing gaps for project %s criterion %d: %v", projectID, criterionID, err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Failed to compute gaps"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"gaps": gaps})
}
