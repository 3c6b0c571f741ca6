package scoring

import (
	"encoding/json"

	"gatehub/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EvidenceRecord is one evidence requirement merged with whatever the AI
// pipeline reported for it.
type EvidenceRecord struct {
	Requirement       models.EvidenceRequirement `json:"requirement"`
	Status            string                     `json:"status"`
	FoundIndicators   []string                   `json:"found_indicators"`
	MissingIndicators []string                   `json:"missing_indicators"`
	SourceRefs        []models.SourceRef         `json:"source_refs"`
}

// EvidenceStats tallies merged records by status.
type EvidenceStats struct {
	Found   int `json:"found"`
	Partial int `json:"partial"`
	Missing int `json:"missing"`
}

// Gap is one missing indicator on the path to a GREEN rating, tied back to
// the requirement it came from.
type Gap struct {
	Indicator    string `json:"indicator"`
	EvidenceText string `json:"evidence_text"`
	IsMandatory  bool   `json:"is_mandatory"`
}

// ParseEvidencePayload coerces the evidence-assessment payload into a typed
// list. The payload arrives as a JSON-encoded string, an already-decoded
// list, or not at all; anything unparseable degrades to an empty list so a
// single corrupt record cannot blank the readiness view.
func ParseEvidencePayload(raw interface{}) []models.EvidenceAssessmentItem {
	switch val := raw.(type) {
	case nil:
		return nil
	case []models.EvidenceAssessmentItem:
		return val
	case string:
		return unmarshalItems([]byte(val))
	case []byte:
		return unmarshalItems(val)
	case json.RawMessage:
		return unmarshalItems(val)
	case []interface{}:
		return remarshalItems(val)
	case primitive.A:
		return remarshalItems(val)
	}
	return nil
}

func unmarshalItems(data []byte) []models.EvidenceAssessmentItem {
	var items []models.EvidenceAssessmentItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	return items
}

func remarshalItems(list []interface{}) []models.EvidenceAssessmentItem {
	data, err := json.Marshal(list)
	if err != nil {
		return nil
	}
	return unmarshalItems(data)
}

// MergeEvidence joins a project's evidence requirements with the raw
// assessment payload, producing one record per requirement in requirement
// order. A requirement without a matching assessment item defaults to
// missing, and its own quality indicators stand in as the missing-indicator
// list so unassessed criteria still yield an actionable gap list. When
// duplicate assessment items reference the same requirement the first match
// wins.
func MergeEvidence(reqs []models.EvidenceRequirement, rawPayload interface{}) []EvidenceRecord {
	items := ParseEvidencePayload(rawPayload)

	records := make([]EvidenceRecord, 0, len(reqs))
	for _, req := range reqs {
		item := findItem(items, req.ID)

		record := EvidenceRecord{
			Requirement:       req,
			Status:            StatusMissing,
			FoundIndicators:   []string{},
			MissingIndicators: append([]string{}, req.QualityIndicators...),
			SourceRefs:        []models.SourceRef{},
		}
		if item != nil {
			if item.Status != "" {
				record.Status = item.Status
			}
			record.FoundIndicators = NormalizeIndicators(item.FoundIndicators)
			if item.MissingIndicators != nil {
				record.MissingIndicators = NormalizeIndicators(item.MissingIndicators)
			}
			if item.SourceRefs != nil {
				record.SourceRefs = item.SourceRefs
			}
		}
		records = append(records, record)
	}
	return records
}

func findItem(items []models.EvidenceAssessmentItem, requirementID int) *models.EvidenceAssessmentItem {
	for i := range items {
		if items[i].EvidenceRequirementID == requirementID {
			return &items[i]
		}
	}
	return nil
}

// Stats tallies merged evidence records by status. Unrecognized status
// values count toward none of the buckets.
func Stats(records []EvidenceRecord) EvidenceStats {
	var stats EvidenceStats
	for _, r := range records {
		switch r.Status {
		case StatusFound:
			stats.Found++
		case StatusPartial:
			stats.Partial++
		case StatusMissing:
			stats.Missing++
		}
	}
	return stats
}

// PathToGreen flattens every requirement's missing indicators into an ordered
// gap list, requirement order first, indicator order second. A GREEN rating
// suppresses the gap view entirely, even when stale missing indicators are
// still present in the payload.
func PathToGreen(rating string, reqs []models.EvidenceRequirement, rawPayload interface{}) []Gap {
	gaps := []Gap{}
	if NormalizeRating(rating) == RatingGreen {
		return gaps
	}

	for _, record := range MergeEvidence(reqs, rawPayload) {
		for _, indicator := range record.MissingIndicators {
			gaps = append(gaps, Gap{
				Indicator:    indicator,
				EvidenceText: record.Requirement.EvidenceText,
				IsMandatory:  record.Requirement.IsMandatory,
			})
		}
	}
	return gaps
}
