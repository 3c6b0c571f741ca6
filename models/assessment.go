package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CriterionAssessment is one AI-produced judgment against one criterion for a
// project assessment run. Manual overrides by review staff replace the rating
// in place; the scoring engine treats overridden ratings identically.
type CriterionAssessment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProjectID     string             `bson:"projectId" json:"projectId"`
	CriterionID   int                `bson:"criterionId" json:"criterion_id"`
	CriterionCode string             `bson:"criterionCode" json:"criterion_code"`
	Title         string             `bson:"title" json:"title"`
	Category      string             `bson:"category" json:"category"` // Strategic, Economic, Commercial, Financial, Management
	Rating        string             `bson:"rating" json:"rating"`     // RED, AMBER or GREEN
	IsCritical    bool               `bson:"isCritical" json:"is_critical"`
	Finding       string             `bson:"finding,omitempty" json:"finding,omitempty"`

	// EvidenceAssessment is the raw per-requirement payload from the AI
	// pipeline. It may be a JSON-encoded string, an already-decoded list, or
	// absent; scoring.ParseEvidencePayload handles all three.
	EvidenceAssessment interface{} `bson:"evidenceAssessment,omitempty" json:"evidence_assessment,omitempty"`

	CreatedAt int64 `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// EvidenceRequirement is a catalog entry owned by a criterion definition.
// Static reference data; never mutated by the scoring engine.
type EvidenceRequirement struct {
	ID                int      `bson:"_id,omitempty" json:"id"`
	CriterionID       int      `bson:"criterionId" json:"criterion_id"`
	EvidenceText      string   `bson:"evidenceText" json:"evidence_text"`
	EvidenceType      string   `bson:"evidenceType,omitempty" json:"evidence_type,omitempty"` // document, demonstration or verification
	DocumentTypes     []string `bson:"documentTypes,omitempty" json:"document_types,omitempty"`
	IsMandatory       bool     `bson:"isMandatory" json:"is_mandatory"`
	QualityIndicators []string `bson:"qualityIndicators,omitempty" json:"quality_indicators,omitempty"`
	RedFlags          []string `bson:"redFlags,omitempty" json:"red_flags,omitempty"`
	DisplayOrder      int      `bson:"displayOrder" json:"display_order"`
}

// SourceRef points at the document location backing a finding.
type SourceRef struct {
	Doc  string `bson:"doc" json:"doc"`
	Page int    `bson:"page" json:"page"`
}

// EvidenceAssessmentItem is a per-requirement finding from the AI pipeline.
// Indicator lists are heterogeneous upstream (plain strings or structured
// objects), so they stay untyped here and are normalized by the scoring
// package.
type EvidenceAssessmentItem struct {
	EvidenceRequirementID int           `bson:"evidenceRequirementId" json:"evidence_requirement_id"`
	Status                string        `bson:"status" json:"status"` // found, partial or missing
	FoundIndicators       []interface{} `bson:"foundIndicators,omitempty" json:"found_indicators,omitempty"`
	MissingIndicators     []interface{} `bson:"missingIndicators,omitempty" json:"missing_indicators,omitempty"`
	SourceRefs            []SourceRef   `bson:"sourceRefs,omitempty" json:"source_refs,omitempty"`
}
