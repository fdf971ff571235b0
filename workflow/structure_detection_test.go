package workflow

import (
	"testing"

	"bitbucket.org/audicodev/pricelist_engine/config"
	"bitbucket.org/audicodev/pricelist_engine/models"
)

func TestIsBrandToken(t *testing.T) {
	cfg := config.DefaultDetectionConfig()
	cases := []struct {
		cell string
		want bool
	}{
		{"YEALINK", true},
		{"TP-LINK", true},
		{"B&W", true},
		{"yealink", true}, // upper-cased before matching
		{"LG", false},     // too short
		{"CODE", false},   // stop word beats brand detection
		{"STOCK CODE", false},
		{"PRICE", false},
		{"UPDATED", false},
		{"Updated - 02/07/2025", false}, // punctuation outside the token charset
		{"", false},
		{"AVERYLONGBRANDNAMETHATDOESNOTFIT", false},
		{"12500", false}, // no letters
	}
	for _, tc := range cases {
		if got := IsBrandToken(tc.cell, cfg); got != tc.want {
			t.Fatalf("IsBrandToken(%q) = %v, want %v", tc.cell, got, tc.want)
		}
	}
}

func TestMatchColumnRole(t *testing.T) {
	cfg := config.DefaultDetectionConfig()
	cases := []struct {
		header string
		want   models.ColumnRole
	}{
		{"Stock Code", models.RoleProductCode},
		{"SKU", models.RoleProductCode},
		{"Model", models.RoleProductCode},
		{"Price (excl. VAT)", models.RolePrice},
		{"Cost", models.RolePrice},
		{"RRP", models.RoleRetailPrice},
		{"Retail Price", models.RoleRetailPrice}, // retail wins over the generic price keyword
		{"Description", models.RoleUnknown},
		{"", models.RoleUnknown},
	}
	for _, tc := range cases {
		if got := MatchColumnRole(tc.header, cfg); got != tc.want {
			t.Fatalf("MatchColumnRole(%q) = %s, want %s", tc.header, got, tc.want)
		}
	}
}

func TestDetectStructure_VerticalFallback(t *testing.T) {
	cfg := config.DefaultDetectionConfig()
	grid := models.Grid{
		{"Model", "Description", "Price"},
		{"AVR-X1800H", "7.2ch 8K AV Receiver", "19990"},
		{"RX-V6A", "7.2ch AV Receiver", "15990"},
	}

	st := DetectStructure(grid, cfg)
	if st.Layout != models.LayoutVertical {
		t.Fatalf("expected vertical layout, got %s", st.Layout)
	}
	if !st.IsValid {
		t.Fatalf("expected valid vertical structure, roles: %v", st.Segments[0].Roles)
	}
	if len(st.Segments) != 1 {
		t.Fatalf("expected single implicit segment, got %d", len(st.Segments))
	}
	seg := st.Segments[0]
	if seg.Roles[0] != models.RoleProductCode || seg.Roles[2] != models.RolePrice {
		t.Fatalf("unexpected roles: %v", seg.Roles)
	}
	if seg.Roles[1] != models.RoleUnknown {
		t.Fatalf("description column should stay Unknown, got %s", seg.Roles[1])
	}

	rows := ExtractRows(grid, st, cfg)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows (header echo skipped), got %d", len(rows))
	}
	if rows[0].Code != "AVR-X1800H" || rows[1].Code != "RX-V6A" {
		t.Fatalf("unexpected extracted codes: %q %q", rows[0].Code, rows[1].Code)
	}
}

func TestDetectStructure_UnusableSheetStaysDiagnosable(t *testing.T) {
	cfg := config.DefaultDetectionConfig()
	grid := models.Grid{
		{"DENON", "", "YAMAHA", ""},
		{"Colour", "Weight", "Colour", "Weight"},
		{"Black", "9.5kg", "Black", "8.1kg"},
	}

	st := DetectStructure(grid, cfg)
	if st.IsValid {
		t.Fatalf("expected invalid structure for sheet without code+price columns")
	}
	// Segments are retained for diagnostics even when unusable.
	if len(st.Segments) != 2 {
		t.Fatalf("expected 2 diagnostic segments, got %d", len(st.Segments))
	}
	if rows := ExtractRows(grid, st, cfg); rows != nil {
		t.Fatalf("expected no extraction from invalid structure, got %d rows", len(rows))
	}
}

func TestDetectStructure_EmptyGrid(t *testing.T) {
	st := DetectStructure(models.Grid{}, config.DefaultDetectionConfig())
	if st.IsValid {
		t.Fatalf("empty grid must not validate")
	}
	if st.Layout != models.LayoutVertical {
		t.Fatalf("empty grid falls back to vertical, got %s", st.Layout)
	}
}
