package utils

import (
	"strings"
	"testing"
)

func TestGenerateDocName(t *testing.T) {
	name := GenerateDocName(OpeningShiftPrefix)

	if !strings.HasPrefix(name, "POS-OPN-") {
		t.Errorf("name = %s, want POS-OPN- prefix", name)
	}
	suffix := strings.TrimPrefix(name, OpeningShiftPrefix)
	if len(suffix) != 8 {
		t.Errorf("suffix length = %d, want 8", len(suffix))
	}
	if suffix != strings.ToUpper(suffix) {
		t.Errorf("suffix %s must be upper case", suffix)
	}
}

func TestGenerateDocNameIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		name := GenerateDocName(SalesInvoicePrefix)
		if seen[name] {
			t.Fatalf("duplicate name generated: %s", name)
		}
		seen[name] = true
	}
}
