package scoring

import (
	"testing"

	"gatehub/models"
)

func TestParseEvidencePayloadShapes(t *testing.T) {
	// Absent payload
	if items := ParseEvidencePayload(nil); len(items) != 0 {
		t.Errorf("Expected empty list for nil payload, got %d items", len(items))
	}

	// JSON-encoded string
	items := ParseEvidencePayload(`[{"evidence_requirement_id": 7, "status": "found"}]`)
	if len(items) != 1 || items[0].EvidenceRequirementID != 7 {
		t.Errorf("Expected one item with requirement id 7, got %v", items)
	}

	// Unparseable string degrades to empty, never raises
	if items := ParseEvidencePayload("{not json"); len(items) != 0 {
		t.Errorf("Expected empty list for bad JSON, got %d items", len(items))
	}

	// Already-typed list passes through
	typed := []models.EvidenceAssessmentItem{{EvidenceRequirementID: 3, Status: StatusPartial}}
	items = ParseEvidencePayload(typed)
	if len(items) != 1 || items[0].Status != StatusPartial {
		t.Errorf("Expected typed list to pass through, got %v", items)
	}

	// Decoded-but-untyped list
	items = ParseEvidencePayload([]interface{}{
		map[string]interface{}{"evidence_requirement_id": float64(5), "status": "missing"},
	})
	if len(items) != 1 || items[0].EvidenceRequirementID != 5 {
		t.Errorf("Expected untyped list to decode, got %v", items)
	}

	// Scalar is coerced to empty
	if items := ParseEvidencePayload(42); len(items) != 0 {
		t.Errorf("Expected empty list for scalar payload, got %d items", len(items))
	}
}

func TestMergeEvidenceFallback(t *testing.T) {
	reqs := []models.EvidenceRequirement{
		{ID: 1, EvidenceText: "Benefits baseline", QualityIndicators: []string{"X", "Y"}},
	}

	records := MergeEvidence(reqs, nil)
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].Status != StatusMissing {
		t.Errorf("Expected status missing for unmatched requirement, got %q", records[0].Status)
	}
	if len(records[0].MissingIndicators) != 2 || records[0].MissingIndicators[0] != "X" || records[0].MissingIndicators[1] != "Y" {
		t.Errorf("Expected quality indicators as missing fallback, got %v", records[0].MissingIndicators)
	}
	if len(records[0].FoundIndicators) != 0 {
		t.Errorf("Expected no found indicators, got %v", records[0].FoundIndicators)
	}
}

func TestMergeEvidenceMatchedItem(t *testing.T) {
	reqs := []models.EvidenceRequirement{
		{ID: 1, EvidenceText: "Benefits baseline", QualityIndicators: []string{"X"}},
	}
	payload := []models.EvidenceAssessmentItem{
		{
			EvidenceRequirementID: 1,
			Status:                StatusPartial,
			FoundIndicators:       []interface{}{"A"},
			MissingIndicators:     []interface{}{map[string]interface{}{"definition": "B"}},
		},
	}

	records := MergeEvidence(reqs, payload)
	if records[0].Status != StatusPartial {
		t.Errorf("Expected partial status used verbatim, got %q", records[0].Status)
	}
	if len(records[0].FoundIndicators) != 1 || records[0].FoundIndicators[0] != "A" {
		t.Errorf("Expected found indicators normalized, got %v", records[0].FoundIndicators)
	}
	if len(records[0].MissingIndicators) != 1 || records[0].MissingIndicators[0] != "B" {
		t.Errorf("Expected explicit missing indicators to replace fallback, got %v", records[0].MissingIndicators)
	}
}

func TestMergeEvidenceSilentOnMissingUsesFallback(t *testing.T) {
	reqs := []models.EvidenceRequirement{
		{ID: 1, QualityIndicators: []string{"X", "Y"}},
	}
	// Match exists but says nothing about missing indicators
	payload := []models.EvidenceAssessmentItem{
		{EvidenceRequirementID: 1, Status: StatusFound, FoundIndicators: []interface{}{"A"}},
	}

	records := MergeEvidence(reqs, payload)
	if len(records[0].MissingIndicators) != 2 {
		t.Errorf("Expected quality-indicator fallback when match is silent, got %v", records[0].MissingIndicators)
	}
}

func TestMergeEvidenceFirstMatchWins(t *testing.T) {
	reqs := []models.EvidenceRequirement{{ID: 1}}
	payload := []models.EvidenceAssessmentItem{
		{EvidenceRequirementID: 1, Status: StatusFound},
		{EvidenceRequirementID: 1, Status: StatusMissing},
	}

	records := MergeEvidence(reqs, payload)
	if records[0].Status != StatusFound {
		t.Errorf("Expected first duplicate to win, got %q", records[0].Status)
	}
}

func TestStats(t *testing.T) {
	records := []EvidenceRecord{
		{Status: StatusFound},
		{Status: StatusFound},
		{Status: StatusPartial},
		{Status: StatusMissing},
		{Status: "unknown"},
	}
	stats := Stats(records)
	if stats.Found != 2 || stats.Partial != 1 || stats.Missing != 1 {
		t.Errorf("Expected 2/1/1, got %+v", stats)
	}
}

func TestPathToGreenSuppressedWhenGreen(t *testing.T) {
	reqs := []models.EvidenceRequirement{
		{ID: 1, QualityIndicators: []string{"X"}},
	}
	gaps := PathToGreen("GREEN", reqs, nil)
	if len(gaps) != 0 {
		t.Errorf("Expected no gaps for GREEN rating, got %d", len(gaps))
	}

	// Case-insensitive on the rating
	gaps = PathToGreen("green", reqs, nil)
	if len(gaps) != 0 {
		t.Errorf("Expected no gaps for lowercase green, got %d", len(gaps))
	}
}

func TestPathToGreenOrdering(t *testing.T) {
	reqs := []models.EvidenceRequirement{
		{ID: 1, EvidenceText: "first requirement", IsMandatory: true, QualityIndicators: []string{"A", "B"}},
		{ID: 2, EvidenceText: "second requirement", QualityIndicators: []string{"C"}},
	}

	gaps := PathToGreen("AMBER", reqs, nil)
	if len(gaps) != 3 {
		t.Fatalf("Expected 3 gaps, got %d", len(gaps))
	}
	if gaps[0].Indicator != "A" || gaps[1].Indicator != "B" || gaps[2].Indicator != "C" {
		t.Errorf("Expected requirement order then indicator order, got %v", gaps)
	}
	if !gaps[0].IsMandatory || gaps[0].EvidenceText != "first requirement" {
		t.Errorf("Expected gap to carry its source requirement, got %+v", gaps[0])
	}
	if gaps[2].IsMandatory {
		t.Errorf("Expected optional requirement's gap to stay optional")
	}
}
