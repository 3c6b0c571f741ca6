package scoring

import (
	"math"
	"strings"

	"gatehub/models"
)

// ReadinessResult is the computed roll-up of a set of criterion assessments.
// It is recomputed on every read and never persisted, so repeated calls over
// the same input must be identical.
type ReadinessResult struct {
	TotalCriteria    int    `json:"total_criteria"`
	GreenCount       int    `json:"green_count"`
	AmberCount       int    `json:"amber_count"`
	RedCount         int    `json:"red_count"`
	CriticalRedCount int    `json:"critical_red_count"`
	Score            int    `json:"readiness_score"` // 0-100
	Rating           string `json:"overall_rating"`
}

// CaseSummary is the per-business-case breakdown of a ReadinessResult.
type CaseSummary struct {
	Case string `json:"case"`
	ReadinessResult
	KeyFinding string `json:"key_finding"`
}

// NormalizeRating maps a raw rating string onto the canonical RED, AMBER or
// GREEN values. Unrecognized values map to the empty string and are excluded
// from every bucket and from the score denominator.
func NormalizeRating(rating string) string {
	switch strings.ToUpper(strings.TrimSpace(rating)) {
	case RatingRed:
		return RatingRed
	case RatingAmber:
		return RatingAmber
	case RatingGreen:
		return RatingGreen
	}
	return ""
}

// Aggregate rolls a list of criterion assessments up into counts, a weighted
// readiness score and an overall rating.
//
// The score is round((green*100 + amber*50) / total), half away from zero,
// with total = green + amber + red. An empty input scores 0.
//
// The overall rating applies the blocker rules first and falls through to the
// score thresholds: any critical RED, or RedBlockerCount or more REDs, forces
// RED; AmberBlockerCount or more AMBERs forces AMBER; otherwise the score
// decides (>= GreenScore is GREEN, >= AmberScore is AMBER, else RED).
func (e *Engine) Aggregate(assessments []models.CriterionAssessment) ReadinessResult {
	var result ReadinessResult
	for _, a := range assessments {
		switch NormalizeRating(a.Rating) {
		case RatingGreen:
			result.GreenCount++
		case RatingAmber:
			result.AmberCount++
		case RatingRed:
			result.RedCount++
			if a.IsCritical {
				result.CriticalRedCount++
			}
		}
	}

	result.TotalCriteria = result.GreenCount + result.AmberCount + result.RedCount
	result.Score = e.score(result.GreenCount, result.AmberCount, result.TotalCriteria)
	result.Rating = e.overallRating(result)
	return result
}

func (e *Engine) score(green, amber, total int) int {
	if total == 0 {
		return 0
	}
	weighted := float64(green*e.Config.GreenWeight + amber*e.Config.AmberWeight)
	return int(math.Round(weighted / float64(total)))
}

func (e *Engine) overallRating(r ReadinessResult) string {
	if r.CriticalRedCount > 0 || r.RedCount >= e.Config.RedBlockerCount {
		return RatingRed
	}
	if r.AmberCount >= e.Config.AmberBlockerCount {
		return RatingAmber
	}
	if r.Score >= e.Config.GreenScore {
		return RatingGreen
	}
	if r.Score >= e.Config.AmberScore {
		return RatingAmber
	}
	return RatingRed
}

// AggregateByCase groups assessments by business case and computes the same
// roll-up per group. Cases appear in the canonical Five Case Model order with
// "Other" last; cases with no assessments are omitted rather than emitted as
// zero-criteria rows.
func (e *Engine) AggregateByCase(assessments []models.CriterionAssessment) []CaseSummary {
	grouped := make(map[string][]models.CriterionAssessment)
	for _, a := range assessments {
		key := CaseKey(a.Category)
		grouped[key] = append(grouped[key], a)
	}

	summaries := []CaseSummary{}
	for _, name := range append(append([]string{}, caseCategories...), CaseOther) {
		group := grouped[name]
		if len(group) == 0 {
			continue
		}
		summaries = append(summaries, CaseSummary{
			Case:            name,
			ReadinessResult: e.Aggregate(group),
			KeyFinding:      keyFinding(group),
		})
	}
	return summaries
}

// CaseKey maps a raw category value onto one of the Five Case Model names.
// Trailing " Case" is tolerated ("Economic Case" groups as "Economic");
// anything else, including the empty string, lands in the Other bucket.
func CaseKey(category string) string {
	trimmed := strings.TrimSuffix(strings.TrimSpace(category), " Case")
	for _, name := range caseCategories {
		if strings.EqualFold(trimmed, name) {
			return name
		}
	}
	return CaseOther
}

// keyFinding picks the finding text of the group's worst criterion: the first
// RED, else the first AMBER, else the first entry.
func keyFinding(group []models.CriterionAssessment) string {
	pick := func(rating string) string {
		for _, a := range group {
			if NormalizeRating(a.Rating) == rating && a.Finding != "" {
				return a.Finding
			}
		}
		return ""
	}
	if f := pick(RatingRed); f != "" {
		return f
	}
	if f := pick(RatingAmber); f != "" {
		return f
	}
	if len(group) > 0 && group[0].Finding != "" {
		return group[0].Finding
	}
	return "No significant issues identified."
}

// CriticalIssues extracts the assessments that block or endanger the gate: a
// RED rating, or an AMBER rating on a criterion flagged critical. Input order
// is preserved.
func CriticalIssues(assessments []models.CriterionAssessment) []models.CriterionAssessment {
	issues := []models.CriterionAssessment{}
	for _, a := range assessments {
		switch NormalizeRating(a.Rating) {
		case RatingRed:
			issues = append(issues, a)
		case RatingAmber:
			if a.IsCritical {
				issues = append(issues, a)
			}
		}
	}
	return issues
}
