// Package scoring implements the readiness scoring and evidence coverage
// engine: RAG aggregation, evidence-requirement matching, recommended-document
// coverage and remediation recommendations. Every function is pure and total
// over its input domain; malformed records degrade to documented defaults and
// never produce an error.
package scoring

// Rating values. Upstream may deliver them in any case; NormalizeRating maps
// them onto these canonical forms.
const (
	RatingRed   = "RED"
	RatingAmber = "AMBER"
	RatingGreen = "GREEN"
)

// Evidence statuses, as produced by the AI pipeline.
const (
	StatusFound   = "found"
	StatusPartial = "partial"
	StatusMissing = "missing"
)

// Recommendation priorities.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
)

// CaseOther collects assessments whose category is missing or not one of the
// Five Case Model categories.
const CaseOther = "Other"

// caseCategories is the Five Case Model in canonical emission order.
var caseCategories = []string{"Strategic", "Economic", "Commercial", "Financial", "Management"}

const (
	defaultRedBlockerCount    = 3
	defaultAmberBlockerCount  = 5
	defaultGreenScore         = 85
	defaultAmberScore         = 50
	defaultGreenWeight        = 100
	defaultAmberWeight        = 50
	defaultMaxRecommendations = 5
	defaultMaxCriticalIssues  = 8
)

// Config holds the thresholds shared by every readiness call site. Keeping
// them in one place is what stops the dashboard, executive summary and report
// from drifting apart again.
type Config struct {
	RedBlockerCount    int `json:"red_blocker_count"`    // REDs at or above this force overall RED
	AmberBlockerCount  int `json:"amber_blocker_count"`  // AMBERs at or above this force at least AMBER
	GreenScore         int `json:"green_score"`          // minimum weighted score for GREEN
	AmberScore         int `json:"amber_score"`          // minimum weighted score for AMBER
	GreenWeight        int `json:"green_weight"`         // score contribution of a GREEN criterion
	AmberWeight        int `json:"amber_weight"`         // score contribution of an AMBER criterion
	MaxRecommendations int `json:"max_recommendations"`
	MaxCriticalIssues  int `json:"max_critical_issues"`
}

// DefaultConfig returns the standard gateway thresholds.
func DefaultConfig() *Config {
	return &Config{
		RedBlockerCount:    defaultRedBlockerCount,
		AmberBlockerCount:  defaultAmberBlockerCount,
		GreenScore:         defaultGreenScore,
		AmberScore:         defaultAmberScore,
		GreenWeight:        defaultGreenWeight,
		AmberWeight:        defaultAmberWeight,
		MaxRecommendations: defaultMaxRecommendations,
		MaxCriticalIssues:  defaultMaxCriticalIssues,
	}
}

// Engine evaluates readiness with a fixed set of thresholds.
type Engine struct {
	Config *Config
}

// New creates an Engine. A nil config selects the defaults.
func New(config *Config) *Engine {
	if config == nil {
		config = DefaultConfig()
	}
	return &Engine{Config: config}
}
