package scoring

import (
	"sort"
	"strings"

	"gatehub/models"
)

// Recommendation is one remediation action for the report layer.
type Recommendation struct {
	Text     string `json:"text"`
	Priority string `json:"priority"` // critical, high or medium
}

// GenerateRecommendations derives remediation actions from the critical
// issues (RED, or AMBER on a critical criterion). Issues are partitioned by
// business case; each case emits its templated recommendation, with
// keyword-specific sub-templates taking precedence over the generic one. The
// result is stably sorted critical before high before medium (unrecognized
// priorities last) and capped at MaxRecommendations.
func (e *Engine) GenerateRecommendations(issues []models.CriterionAssessment) []Recommendation {
	grouped := make(map[string][]models.CriterionAssessment)
	for _, issue := range issues {
		key := CaseKey(issue.Category)
		grouped[key] = append(grouped[key], issue)
	}

	recs := []Recommendation{}
	for _, category := range append(append([]string{}, caseCategories...), CaseOther) {
		group := grouped[category]
		if len(group) == 0 {
			continue
		}
		recs = append(recs, categoryRecommendations(category, group)...)
	}

	if len(recs) == 0 && len(issues) > 0 {
		recs = append(recs, Recommendation{
			Text:     "Address all identified issues through a comprehensive improvement plan, with clear milestones and accountabilities established before proceeding to the next gate.",
			Priority: priorityFor(anyRed(issues)),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return priorityRank(recs[i].Priority) < priorityRank(recs[j].Priority)
	})
	if len(recs) > e.Config.MaxRecommendations {
		recs = recs[:e.Config.MaxRecommendations]
	}
	return recs
}

func categoryRecommendations(category string, group []models.CriterionAssessment) []Recommendation {
	hasRed := anyRed(group)
	priority := priorityFor(hasRed)

	switch category {
	case "Strategic":
		return []Recommendation{{
			Text:     "Strengthen the strategic case by conducting a comprehensive review of strategic alignment and policy objectives, ensuring clear linkage to government priorities and demonstrable contribution to strategic outcomes.",
			Priority: priority,
		}}
	case "Economic":
		if anyTitleContains(group, "value for money") {
			return []Recommendation{{
				Text:     "Conduct a comprehensive reappraisal of the economic case to strengthen the valuation of wider benefits and ensure robustness of the value-for-money analysis, led by the department's economic advisors.",
				Priority: PriorityCritical,
			}}
		}
		return []Recommendation{{
			Text:     "Enhance economic analysis by quantifying all wider economic impacts and conducting sensitivity analysis on key assumptions to demonstrate value for money.",
			Priority: priority,
		}}
	case "Commercial":
		return []Recommendation{{
			Text:     "Review commercial arrangements to ensure procurement strategy aligns with market capacity, risk allocation is appropriate, and contract management capabilities are in place.",
			Priority: priority,
		}}
	case "Financial":
		if hasRed {
			return []Recommendation{{
				Text:     "Undertake a full financial review to confirm funding adequacy, contingency appropriateness, and improved cost-estimate maturity, with enhanced governance from the shareholder board.",
				Priority: PriorityCritical,
			}}
		}
		return []Recommendation{{
			Text:     "Strengthen financial controls by implementing robust cost management procedures and establishing clear financial governance arrangements.",
			Priority: priority,
		}}
	case "Management":
		recs := []Recommendation{}
		if anyTitleContains(group, "governance") {
			recs = append(recs, Recommendation{
				Text:     "Strengthen governance by clarifying roles and responsibilities within the project governance structure and rigorously enforcing change control and stakeholder management processes.",
				Priority: priority,
			})
		}
		if anyTitleContains(group, "schedule") || anyTitleContains(group, "risk") {
			recs = append(recs, Recommendation{
				Text:     "Enhance schedule risk management with external validation and improved documentation. These actions must be completed and independently verified before authorising programme progression.",
				Priority: PriorityHigh,
			})
		}
		return recs
	}
	return nil
}

func anyRed(group []models.CriterionAssessment) bool {
	for _, a := range group {
		if NormalizeRating(a.Rating) == RatingRed {
			return true
		}
	}
	return false
}

func anyTitleContains(group []models.CriterionAssessment, keyword string) bool {
	for _, a := range group {
		if strings.Contains(strings.ToLower(a.Title), keyword) {
			return true
		}
	}
	return false
}

func priorityFor(hasRed bool) string {
	if hasRed {
		return PriorityCritical
	}
	return PriorityHigh
}

func priorityRank(priority string) int {
	switch priority {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	}
	return 3
}
