package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestForGate(t *testing.T) {
	cat := Default()

	entry, ok := cat.ForGate("gate-3")
	if !ok {
		t.Fatal("Expected a catalog for gate-3")
	}
	if len(entry.Documents) != 6 {
		t.Errorf("Expected 6 recommended documents at gate-3, got %d", len(entry.Documents))
	}

	if _, ok := cat.ForGate("gate-9"); ok {
		t.Errorf("Expected no catalog for an unknown gate")
	}
}

func TestGatesSorted(t *testing.T) {
	gates := Default().Gates()
	if len(gates) != 6 {
		t.Fatalf("Expected 6 gates, got %d", len(gates))
	}
	for i := 1; i < len(gates); i++ {
		if gates[i-1] >= gates[i] {
			t.Errorf("Gates not sorted: %v", gates)
		}
	}
}

func TestLoadFileOverlay(t *testing.T) {
	yaml := `
gates:
  gate-3:
    gateName: "Gate 3: Custom"
    documents:
      - id: fbc
        name: Full Business Case
        description: Custom checklist
  gate-6:
    gateName: "Gate 6: Extra Review"
    documents:
      - id: extra
        name: Extra Document
        description: Added by deployment
`
	path := filepath.Join(t.TempDir(), "catalog.yml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	// Overridden gate replaces the built-in checklist wholesale
	entry, _ := cat.ForGate("gate-3")
	if len(entry.Documents) != 1 || entry.GateName != "Gate 3: Custom" {
		t.Errorf("Expected override to replace gate-3, got %+v", entry)
	}
	if entry.Gate != "gate-3" {
		t.Errorf("Expected gate id filled from the map key, got %q", entry.Gate)
	}

	// New gate added, untouched gates kept
	if _, ok := cat.ForGate("gate-6"); !ok {
		t.Errorf("Expected gate-6 from the overlay file")
	}
	if _, ok := cat.ForGate("gate-0"); !ok {
		t.Errorf("Expected built-in gate-0 to survive the overlay")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("/nonexistent/catalog.yml"); err == nil {
		t.Errorf("Expected an error for a missing file")
	}
}
