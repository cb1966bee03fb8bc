package pipeline

import (
	"path/filepath"
	"testing"
)

func TestLoadVendorList(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "vendors.xlsx")
	writeXLSX(t, path, [][]any{
		{"Vendor"},
		{"Acme Corp"},
		{""},
		{"Beta LLC"},
		{"Acme Corp"},
		{"Gamma Inc"},
	})

	vendors, err := LoadVendorList(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Acme Corp", "Beta LLC", "Gamma Inc"}
	if len(vendors) != len(want) {
		t.Fatalf("len=%d want %d", len(vendors), len(want))
	}
	for i := range want {
		if vendors[i] != want[i] {
			t.Fatalf("vendors[%d]=%q want %q", i, vendors[i], want[i])
		}
	}
}

func TestLoadVendorListRejectsSecondColumn(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "vendors.xlsx")
	writeXLSX(t, path, [][]any{
		{"Vendor", "Region"},
		{"Acme Corp", "EU"},
	})

	if _, err := LoadVendorList(path); err == nil {
		t.Fatal("expected error for two-column vendor list")
	}
}

func TestLoadVendorListRejectsEmpty(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "vendors.xlsx")
	writeXLSX(t, path, [][]any{{"Vendor"}})

	if _, err := LoadVendorList(path); err == nil {
		t.Fatal("expected error for header-only vendor list")
	}
}
