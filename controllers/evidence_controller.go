package controllers

import (
	"encoding/json"
	"net/http"

	"gatehub/models"
	"gatehub/scoring"

	"github.com/gin-gonic/gin"
)

// EvidenceMergeRequest carries a criterion's requirement catalog and the raw
// AI payload. The payload stays a RawMessage here because upstream sends it
// as a JSON string, a list, or nothing; the scoring layer sorts that out.
type EvidenceMergeRequest struct {
	Requirements       []models.EvidenceRequirement `json:"requirements"`
	EvidenceAssessment json.RawMessage              `json:"evidence_assessment"`
}

// EvidenceGapsRequest additionally carries the criterion's rating, which
// suppresses the gap list when GREEN
type EvidenceGapsRequest struct {
	Rating             string                       `json:"rating"`
	Requirements       []models.EvidenceRequirement `json:"requirements"`
	EvidenceAssessment json.RawMessage              `json:"evidence_assessment"`
}

// MergeEvidence joins requirements with the posted payload
func MergeEvidence(c *gin.Context) {
	var req EvidenceMergeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	records := scoring.MergeEvidence(req.Requirements, rawPayload(req.EvidenceAssessment))
	c.JSON(http.StatusOK, gin.H{
		"records": records,
		"stats":   scoring.Stats(records),
	})
}

// EvidenceGaps extracts the path-to-green gap list
func EvidenceGaps(c *gin.Context) {
	var req EvidenceGapsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	gaps := scoring.PathToGreen(req.Rating, req.Requirements, rawPayload(req.EvidenceAssessment))
	c.JSON(http.StatusOK, gin.H{"gaps": gaps})
}

// rawPayload unwraps one level of JSON so a string body reaches the parser as
// a string and a list body as a decoded list, matching what the persistence
// layer would hand over.
func rawPayload(raw json.RawMessage) interface{} {
	if len(raw) == 0 {
		return nil
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}
