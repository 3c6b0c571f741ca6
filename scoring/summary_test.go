package scoring

import (
	"strings"
	"testing"

	"gatehub/models"
)

func TestExecutiveSummaryRed(t *testing.T) {
	e := New(nil)
	assessments := []models.CriterionAssessment{
		{Rating: "RED", Category: "Financial", IsCritical: true},
		{Rating: "AMBER", Category: "Strategic"},
		{Rating: "GREEN", Category: "Management"},
	}
	result := e.Aggregate(assessments)
	if result.Rating != RatingRed {
		t.Fatalf("Test setup wrong: expected RED, got %q", result.Rating)
	}

	summary := e.ExecutiveSummary("Crossrail North", "Gate 3: Investment Decision", assessments, result)
	if !strings.Contains(summary, "RED") {
		t.Errorf("Expected rating in summary: %q", summary)
	}
	if !strings.Contains(summary, "1 critical issues") {
		t.Errorf("Expected critical count in summary: %q", summary)
	}
	if !strings.Contains(summary, "strategic, financial") {
		t.Errorf("Expected issue categories in canonical order, lowercased: %q", summary)
	}
}

func TestExecutiveSummaryGreenDefaults(t *testing.T) {
	e := New(nil)
	assessments := []models.CriterionAssessment{{Rating: "GREEN"}}
	result := e.Aggregate(assessments)

	summary := e.ExecutiveSummary("", "", assessments, result)
	if !strings.Contains(summary, "this project") || !strings.Contains(summary, "the next gate") {
		t.Errorf("Expected name fallbacks in summary: %q", summary)
	}
	if !strings.Contains(summary, "GREEN") {
		t.Errorf("Expected GREEN summary: %q", summary)
	}
}

func TestExecutiveSummaryDeterministic(t *testing.T) {
	e := New(nil)
	assessments := []models.CriterionAssessment{
		{Rating: "AMBER", Category: "Economic"},
		{Rating: "AMBER", Category: "Commercial"},
		{Rating: "AMBER", Category: "Economic"},
		{Rating: "GREEN", Category: "Strategic"},
	}
	result := e.Aggregate(assessments)

	first := e.ExecutiveSummary("Project X", "Gate 2", assessments, result)
	for i := 0; i < 5; i++ {
		if got := e.ExecutiveSummary("Project X", "Gate 2", assessments, result); got != first {
			t.Fatalf("Summary not deterministic:\n%q\n%q", got, first)
		}
	}
	if !strings.Contains(first, "economic, commercial") {
		t.Errorf("Expected categories in canonical order: %q", first)
	}
}
