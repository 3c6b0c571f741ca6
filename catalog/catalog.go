// Package catalog holds the per-gate recommended-document checklists. The
// built-in catalogs cover the standard gateway reviews; deployments can
// extend or replace them from a YAML file without rebuilding.
package catalog

import (
	"fmt"
	"io/ioutil"
	"sort"

	"gatehub/models"

	"gopkg.in/yaml.v3"
)

// Catalog maps a gate identifier to its recommended-document checklist.
type Catalog map[string]models.GateCatalog

// Default returns the built-in gate catalogs.
func Default() Catalog {
	cat := make(Catalog, len(builtin))
	for gate, entry := range builtin {
		cat[gate] = entry
	}
	return cat
}

// ForGate looks up the checklist for a gate. ok is false for unknown gates;
// callers must treat that as "no checklist", distinct from zero coverage.
func (c Catalog) ForGate(gate string) (*models.GateCatalog, bool) {
	entry, ok := c[gate]
	if !ok {
		return nil, false
	}
	return &entry, true
}

// Gates returns the known gate identifiers in sorted order.
func (c Catalog) Gates() []string {
	gates := make([]string, 0, len(c))
	for gate := range c {
		gates = append(gates, gate)
	}
	sort.Strings(gates)
	return gates
}

type catalogFile struct {
	Gates map[string]models.GateCatalog `yaml:"gates"`
}

// LoadFile overlays gate catalogs from a YAML file onto the defaults. A gate
// present in the file replaces the built-in checklist for that gate wholesale.
func LoadFile(path string) (Catalog, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog yaml: %w", err)
	}

	cat := Default()
	for gate, entry := range file.Gates {
		if entry.Gate == "" {
			entry.Gate = gate
		}
		cat[gate] = entry
	}
	return cat, nil
}

var builtin = map[string]models.GateCatalog{
	"gate-0": {
		Gate:     "gate-0",
		GateName: "Gate 0: Strategic Assessment",
		Documents: []models.RecommendedDocument{
			{ID: "soc", Name: "Strategic Outline Case", Description: "Initial strategic case for change"},
			{ID: "mandate", Name: "Project Mandate", Description: "Authority to proceed with analysis"},
		},
	},
	"gate-1": {
		Gate:     "gate-1",
		GateName: "Gate 1: Business Justification",
		Documents: []models.RecommendedDocument{
			{ID: "obc", Name: "Outline Business Case", Description: "Preliminary business case with options"},
			{ID: "benefits", Name: "Benefits Framework", Description: "Initial benefits identification"},
			{ID: "risk", Name: "Risk Register", Description: "Initial risk assessment"},
		},
	},
	"gate-2": {
		Gate:     "gate-2",
		GateName: "Gate 2: Delivery Strategy",
		Documents: []models.RecommendedDocument{
			{ID: "obc-updated", Name: "Updated OBC", Description: "Refined business case with preferred option"},
			{ID: "procurement", Name: "Procurement Strategy", Description: "Commercial approach documentation"},
			{ID: "risk", Name: "Risk Register", Description: "Updated risk log with mitigations"},
			{ID: "plan", Name: "Delivery Plan", Description: "High-level implementation approach"},
		},
	},
	"gate-3": {
		Gate:     "gate-3",
		GateName: "Gate 3: Investment Decision",
		Documents: []models.RecommendedDocument{
			{ID: "fbc", Name: "Full Business Case", Description: "Complete FBC with all five cases"},
			{ID: "brp", Name: "Benefits Realisation Plan", Description: "Detailed benefits tracking approach"},
			{ID: "risk", Name: "Risk Register", Description: "Current risk log with mitigations"},
			{ID: "procurement", Name: "Procurement Strategy", Description: "Commercial approach documentation"},
			{ID: "impl", Name: "Implementation Plan", Description: "Detailed delivery schedule"},
			{ID: "assurance", Name: "Assurance Plan", Description: "Approach to ongoing assurance"},
		},
	},
	"gate-4": {
		Gate:     "gate-4",
		GateName: "Gate 4: Readiness for Service",
		Documents: []models.RecommendedDocument{
			{ID: "fbc-updated", Name: "Updated FBC", Description: "Business case with delivery updates"},
			{ID: "brp", Name: "Benefits Realisation Plan", Description: "Updated benefits tracking"},
			{ID: "transition", Name: "Transition Plan", Description: "Service transition approach"},
			{ID: "ops", Name: "Operational Readiness", Description: "Readiness assessment documentation"},
		},
	},
	"gate-5": {
		Gate:     "gate-5",
		GateName: "Gate 5: Benefits Evaluation",
		Documents: []models.RecommendedDocument{
			{ID: "ber", Name: "Benefits Evaluation Report", Description: "Assessment of realised benefits"},
			{ID: "lessons", Name: "Lessons Learned", Description: "Project lessons documentation"},
			{ID: "closure", Name: "Project Closure Report", Description: "Final project summary"},
		},
	},
}
