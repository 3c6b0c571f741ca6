package scoring

import (
	"testing"

	"gatehub/models"
)

func gate3Catalog() *models.GateCatalog {
	return &models.GateCatalog{
		Gate:     "gate-3",
		GateName: "Gate 3: Investment Decision",
		Documents: []models.RecommendedDocument{
			{ID: "fbc", Name: "Full Business Case"},
			{ID: "brp", Name: "Benefits Realisation Plan"},
			{ID: "risk", Name: "Risk Register"},
			{ID: "procurement", Name: "Procurement Strategy"},
		},
	}
}

func TestMatchCatalogNoCatalog(t *testing.T) {
	if _, ok := MatchCatalog(nil, nil); ok {
		t.Errorf("Expected ok=false for nil catalog")
	}
	if _, ok := MatchCatalog(&models.GateCatalog{Gate: "gate-9"}, nil); ok {
		t.Errorf("Expected ok=false for empty catalog")
	}
}

func TestMatchCatalogByTypeAndName(t *testing.T) {
	docs := []models.ProjectDocument{
		{Name: "Programme FBC v2", FileName: "programme_fbc_v2.pdf"},
		{Name: "Corporate Risk Register", FileName: "register.xlsx"},
		{Name: "Misc Notes", FileName: "notes.txt", DocumentType: "brp"},
	}

	result, ok := MatchCatalog(gate3Catalog(), docs)
	if !ok {
		t.Fatal("Expected a coverage result")
	}
	if result.UploadedCount != 3 {
		t.Errorf("Expected 3 matched entries, got %d", result.UploadedCount)
	}
	if result.TotalCount != 4 || result.Percent != 75 {
		t.Errorf("Expected 3/4 = 75%%, got %d/%d = %d%%", result.UploadedCount, result.TotalCount, result.Percent)
	}

	if !result.Documents[0].IsUploaded {
		t.Errorf("Expected fbc matched by name token")
	}
	if !result.Documents[1].IsUploaded {
		t.Errorf("Expected brp matched by inferred type")
	}
	if !result.Documents[2].IsUploaded {
		t.Errorf("Expected risk matched by id token in display name")
	}
	if result.Documents[3].IsUploaded {
		t.Errorf("Expected procurement unmatched")
	}
}

func TestMatchCatalogSynonyms(t *testing.T) {
	// "fbc" appears nowhere, but the synonym rule accepts "business case"
	docs := []models.ProjectDocument{
		{Name: "Full Business Case", FileName: "full business case final.docx"},
		{Name: "Commercial Approach", FileName: "commercial-approach.pdf"},
	}

	result, _ := MatchCatalog(gate3Catalog(), docs)
	if !result.Documents[0].IsUploaded {
		t.Errorf("Expected fbc satisfied via business-case synonym")
	}
	if !result.Documents[3].IsUploaded {
		t.Errorf("Expected procurement satisfied via commercial synonym")
	}
}

func TestMatchCatalogShortFirstWordIgnored(t *testing.T) {
	cat := &models.GateCatalog{
		Gate: "gate-x",
		Documents: []models.RecommendedDocument{
			{ID: "mandate", Name: "The Mandate"},
		},
	}
	// "the" is too short to match on its own
	docs := []models.ProjectDocument{{Name: "the plan", FileName: "the_plan.pdf"}}

	result, _ := MatchCatalog(cat, docs)
	if result.UploadedCount != 0 {
		t.Errorf("Expected short first word to never match, got %d", result.UploadedCount)
	}
}

func TestMatchCatalogOrderIndependent(t *testing.T) {
	docs := []models.ProjectDocument{
		{Name: "Full Business Case", FileName: "fbc.pdf"},
		{Name: "Risk Register", FileName: "risk.xlsx"},
		{Name: "Benefits Realisation Plan", FileName: "brp.docx"},
	}
	reversed := []models.ProjectDocument{docs[2], docs[1], docs[0]}

	first, _ := MatchCatalog(gate3Catalog(), docs)
	second, _ := MatchCatalog(gate3Catalog(), reversed)
	if first.UploadedCount != second.UploadedCount || first.Percent != second.Percent {
		t.Errorf("Coverage depends on document order: %d%% vs %d%%", first.Percent, second.Percent)
	}

	// Re-matching the same set is idempotent
	again, _ := MatchCatalog(gate3Catalog(), docs)
	if again.UploadedCount != first.UploadedCount || again.Percent != first.Percent {
		t.Errorf("Coverage not idempotent: %d%% vs %d%%", again.Percent, first.Percent)
	}
}

func TestMatchCatalogCaseInsensitive(t *testing.T) {
	docs := []models.ProjectDocument{{Name: "PROCUREMENT STRATEGY", FileName: "PS.PDF"}}
	result, _ := MatchCatalog(gate3Catalog(), docs)
	if !result.Documents[3].IsUploaded {
		t.Errorf("Expected case-insensitive matching")
	}
}
