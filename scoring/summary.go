package scoring

import (
	"fmt"
	"strings"

	"gatehub/models"
)

// ExecutiveSummary renders the deterministic narrative summary shown at the
// top of the report. The wording depends only on the aggregate and the issue
// categories, so two renders over the same inputs are identical. Markup is
// left to the consuming layer.
func (e *Engine) ExecutiveSummary(projectName, gateName string, assessments []models.CriterionAssessment, result ReadinessResult) string {
	if projectName == "" {
		projectName = "this project"
	}
	if gateName == "" {
		gateName = "the next gate"
	}

	issueCategories := strings.ToLower(categoriesWithIssues(assessments))

	switch result.Rating {
	case RatingRed:
		severity := "significant risks"
		if result.CriticalRedCount > 0 {
			severity = fmt.Sprintf("%d critical issues", result.CriticalRedCount)
		}
		return fmt.Sprintf(
			"The overall assessment rating for the %s gate review is RED due to critical shortcomings in %s. While the project demonstrates structured arrangements across %d criteria, %s must be urgently addressed before proceeding to %s.",
			projectName, issueCategories, result.TotalCriteria, severity, gateName)
	case RatingAmber:
		return fmt.Sprintf(
			"The overall assessment rating for %s is AMBER, indicating the project can proceed with conditions. The assessment identified %d criteria meeting expectations, but %d areas require attention, particularly in %s. These issues should be resolved before the next gateway review to ensure project success.",
			projectName, result.GreenCount, result.AmberCount, issueCategories)
	default:
		return fmt.Sprintf(
			"The overall assessment rating for %s is GREEN, demonstrating strong readiness to proceed. All %d assessed criteria meet or exceed the required standards, with robust arrangements in place across all five business case dimensions. The project shows excellent preparation for %s with no critical issues identified.",
			projectName, result.GreenCount, gateName)
	}
}

// categoriesWithIssues lists the business cases holding RED or AMBER
// criteria, in canonical case order so the text is stable across calls.
func categoriesWithIssues(assessments []models.CriterionAssessment) string {
	flagged := make(map[string]bool)
	for _, a := range assessments {
		switch NormalizeRating(a.Rating) {
		case RatingRed, RatingAmber:
			flagged[CaseKey(a.Category)] = true
		}
	}

	names := []string{}
	for _, name := range append(append([]string{}, caseCategories...), CaseOther) {
		if flagged[name] {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "several areas"
	}
	return strings.Join(names, ", ")
}
