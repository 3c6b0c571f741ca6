package routes

import (
	"gatehub/controllers"

	"github.com/gin-gonic/gin"
)

// SetupReadinessRoutes registers the readiness engine surface. Every
// endpoint is a stateless recompute over the posted or stored snapshot.
func SetupReadinessRoutes(rg *gin.RouterGroup) {
	rg.POST("/readiness", controllers.ComputeReadiness)
	rg.POST("/recommendations", controllers.ComputeRecommendations)
	rg.POST("/evidence/merge", controllers.MergeEvidence)
	rg.POST("/evidence/gaps", controllers.EvidenceGaps)
	rg.POST("/coverage", controllers.ComputeCoverage)
	rg.GET("/gates", controllers.ListGates)
	rg.GET("/gates/:gate/catalog", controllers.GetGateCatalog)
	rg.GET("/projects/:id/report", controllers.GetProjectReport)
	rg.GET("/projects/:id/criteria/:criterionId/gaps", controllers.GetCriterionGaps)
}
