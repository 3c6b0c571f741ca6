package scoring

import (
	"math"
	"strings"

	"gatehub/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MatchedDocument is one catalog entry with its match outcome.
type MatchedDocument struct {
	Entry      models.RecommendedDocument `json:"entry"`
	IsUploaded bool                       `json:"isUploaded"`
	DocumentID primitive.ObjectID         `json:"uploadedDocumentId,omitempty"`
}

// CoverageResult reports how much of a gate's recommended-document checklist
// a project's uploads satisfy.
type CoverageResult struct {
	Gate          string            `json:"gate"`
	GateName      string            `json:"gateName"`
	Documents     []MatchedDocument `json:"documents"`
	UploadedCount int               `json:"uploadedCount"`
	TotalCount    int               `json:"totalCount"`
	Percent       int               `json:"progressPercent"`
}

// synonymRules maps high-ambiguity catalog ids to hand-authored filename
// fragments that also satisfy them. Kept as data so new synonyms never touch
// the matching control flow.
var synonymRules = map[string][]string{
	"fbc":         {"business case"},
	"fbc-updated": {"business case"},
	"obc":         {"business case"},
	"brp":         {"benefit"},
	"risk":        {"risk"},
	"procurement": {"procurement", "commercial"},
	"impl":        {"implementation", "delivery"},
	"assurance":   {"assurance"},
}

// MatchCatalog matches uploaded-document metadata against a gate catalog.
// It returns ok=false when the catalog is nil or empty, which callers must
// treat as "no checklist for this gate", not as zero coverage.
//
// Matching is an existence check, recomputed from scratch on every call: for
// each catalog entry the first document satisfying any rule marks the entry
// uploaded. The matched count is therefore independent of document order.
func MatchCatalog(cat *models.GateCatalog, docs []models.ProjectDocument) (CoverageResult, bool) {
	if cat == nil || len(cat.Documents) == 0 {
		return CoverageResult{}, false
	}

	result := CoverageResult{
		Gate:       cat.Gate,
		GateName:   cat.GateName,
		Documents:  make([]MatchedDocument, 0, len(cat.Documents)),
		TotalCount: len(cat.Documents),
	}
	for _, entry := range cat.Documents {
		matched := MatchedDocument{Entry: entry}
		for _, doc := range docs {
			if documentMatches(entry, doc) {
				matched.IsUploaded = true
				matched.DocumentID = doc.ID
				break
			}
		}
		if matched.IsUploaded {
			result.UploadedCount++
		}
		result.Documents = append(result.Documents, matched)
	}

	result.Percent = int(math.Round(float64(result.UploadedCount) / float64(result.TotalCount) * 100))
	return result, true
}

// documentMatches applies the fuzzy rules in priority order, first hit wins:
// the inferred type contains the entry id, the display name or filename
// contains the entry id, the name or filename contains the first word of the
// entry name (only when that word is longer than three characters), or a
// synonym rule for the entry id fires.
func documentMatches(entry models.RecommendedDocument, doc models.ProjectDocument) bool {
	docType := strings.ToLower(doc.DocumentType)
	name := strings.ToLower(doc.Name)
	file := strings.ToLower(doc.FileName)
	id := strings.ToLower(entry.ID)

	if id != "" && strings.Contains(docType, id) {
		return true
	}
	if id != "" && (strings.Contains(name, id) || strings.Contains(file, id)) {
		return true
	}
	if first := firstWord(strings.ToLower(entry.Name)); len(first) > 3 {
		if strings.Contains(name, first) || strings.Contains(file, first) {
			return true
		}
	}
	for _, syn := range synonymRules[id] {
		if strings.Contains(name, syn) || strings.Contains(file, syn) {
			return true
		}
	}
	return false
}

func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}
