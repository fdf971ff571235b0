package workflow

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"bitbucket.org/audicodev/pricelist_engine/config"
	"bitbucket.org/audicodev/pricelist_engine/models"
)

const (
	// How deep to look for a brand row before treating the sheet as a
	// vertical single-brand list.
	brandRowScanDepth = 5
	// How deep to look for the first data row of a vertical sheet.
	verticalScanDepth = 10
	// Column span assumed for the last brand segment on a brand row.
	defaultSegmentSpan = 3
	// Role headers sit in the one or two rows under the brand row.
	roleHeaderDepth = 2
)

var brandTokenPattern = regexp.MustCompile(`^[A-Z0-9&\- ]{3,20}$`)
var letterPattern = regexp.MustCompile(`[A-Z]`)

// IsBrandToken reports whether a header cell looks like a supplier/brand
// name: a short upper-case alphanumeric token (dashes, ampersands and spaces
// allowed) that is not a generic header word. Stop words win over brand
// detection, so a supplier literally named "CODE" is rejected here.
func IsBrandToken(cell string, cfg config.DetectionConfig) bool {
	token := strings.ToUpper(strings.TrimSpace(cell))
	if !brandTokenPattern.MatchString(token) {
		return false
	}
	if !letterPattern.MatchString(token) {
		return false
	}
	return !cfg.IsBrandStopWord(token)
}

// MatchColumnRole maps a header cell to a column role. Retail keywords are
// checked before the generic price keywords so "Retail Price" and "RRP" do
// not land on the cost column.
func MatchColumnRole(header string, cfg config.DetectionConfig) models.ColumnRole {
	h := strings.ToLower(strings.TrimSpace(header))
	if h == "" {
		return models.RoleUnknown
	}
	for _, kw := range cfg.ProductCodeKeywords {
		if strings.Contains(h, kw) {
			return models.RoleProductCode
		}
	}
	for _, kw := range cfg.RetailPriceKeywords {
		if strings.Contains(h, kw) {
			return models.RoleRetailPrice
		}
	}
	for _, kw := range cfg.PriceKeywords {
		if strings.Contains(h, kw) {
			return models.RolePrice
		}
	}
	return models.RoleUnknown
}

// DetectStructure classifies a sheet's layout and maps its columns to
// semantic roles. It is a pure function: the same grid always yields the
// same structure, and it never fails hard. An unusable sheet comes back with
// IsValid=false (and whatever partial segments were found) so the caller can
// fall back to manual column mapping.
func DetectStructure(grid models.Grid, cfg config.DetectionConfig) models.Structure {
	if brandRow, tokens := findBrandRow(grid, cfg); len(tokens) >= 2 {
		st := buildHorizontalStructure(grid, cfg, brandRow, tokens)
		config.GetLogger().WithFields(logrus.Fields{
			"layout":        st.Layout,
			"brands":        st.BrandNames(),
			"dataStartRow":  st.DataStartRow,
			"validSegments": countValidSegments(st),
		}).Info("pricelist structure detected")
		return st
	}

	st := buildVerticalStructure(grid, cfg)
	config.GetLogger().WithFields(logrus.Fields{
		"layout":       st.Layout,
		"dataStartRow": st.DataStartRow,
		"isValid":      st.IsValid,
	}).Info("pricelist structure detected")
	return st
}

type brandToken struct {
	name   string
	column int
}

// findBrandRow scans the top rows for the first one carrying at least two
// brand tokens.
func findBrandRow(grid models.Grid, cfg config.DetectionConfig) (int, []brandToken) {
	depth := grid.RowCount()
	if depth > brandRowScanDepth {
		depth = brandRowScanDepth
	}
	for row := 0; row < depth; row++ {
		var tokens []brandToken
		for col := 0; col < grid.Width(); col++ {
			cell := grid.Cell(row, col)
			if cell == "" {
				continue
			}
			if IsBrandToken(cell, cfg) {
				tokens = append(tokens, brandToken{
					name:   strings.ToUpper(strings.TrimSpace(cell)),
					column: col,
				})
			}
		}
		if len(tokens) >= 2 {
			return row, tokens
		}
	}
	return -1, nil
}

func buildHorizontalStructure(grid models.Grid, cfg config.DetectionConfig, brandRow int, tokens []brandToken) models.Structure {
	st := models.Structure{
		Layout:       models.LayoutHorizontal,
		DataStartRow: brandRow + roleHeaderDepth,
	}

	for i, tok := range tokens {
		endCol := tok.column + defaultSegmentSpan
		if i < len(tokens)-1 {
			endCol = tokens[i+1].column - 1
		}
		seg := models.BrandSegment{
			BrandName:   tok.name,
			StartColumn: tok.column,
			EndColumn:   endCol,
			HeaderRow:   brandRow,
			Roles:       make(map[int]models.ColumnRole),
		}
		mapSegmentRoles(grid, cfg, &seg)
		st.Segments = append(st.Segments, seg)
	}

	st.IsValid = countValidSegments(st) > 0
	return st
}

// mapSegmentRoles assigns a role to each column of the segment from the
// first non-empty header cell in the rows under the brand row. First match
// per column wins; columns with no recognizable header stay Unknown.
func mapSegmentRoles(grid models.Grid, cfg config.DetectionConfig, seg *models.BrandSegment) {
	lastCol := seg.EndColumn
	if w := grid.Width() - 1; lastCol > w {
		lastCol = w
	}
	for col := seg.StartColumn; col <= lastCol; col++ {
		for row := seg.HeaderRow + 1; row <= seg.HeaderRow+roleHeaderDepth && row < grid.RowCount(); row++ {
			header := grid.Cell(row, col)
			if header == "" {
				continue
			}
			seg.Roles[col] = MatchColumnRole(header, cfg)
			break
		}
	}
}

// buildVerticalStructure treats the whole sheet as one implicit segment and
// reads role headers from the first rows.
func buildVerticalStructure(grid models.Grid, cfg config.DetectionConfig) models.Structure {
	width := grid.Width()
	seg := models.BrandSegment{
		StartColumn: 0,
		EndColumn:   width - 1,
		HeaderRow:   0,
		Roles:       make(map[int]models.ColumnRole),
	}
	if seg.EndColumn < 0 {
		seg.EndColumn = 0
	}

	headerDepth := grid.RowCount()
	if headerDepth > 3 {
		headerDepth = 3
	}
	for col := 0; col < width; col++ {
		for row := 0; row < headerDepth; row++ {
			header := grid.Cell(row, col)
			if header == "" {
				continue
			}
			seg.Roles[col] = MatchColumnRole(header, cfg)
			break
		}
	}

	return models.Structure{
		Layout:       models.LayoutVertical,
		Segments:     []models.BrandSegment{seg},
		DataStartRow: verticalDataStart(grid),
		IsValid:      seg.HasRequiredRoles(),
	}
}

// verticalDataStart returns the first of the top rows with at least two
// filled cells.
func verticalDataStart(grid models.Grid) int {
	depth := grid.RowCount()
	if depth > verticalScanDepth {
		depth = verticalScanDepth
	}
	for row := 0; row < depth; row++ {
		if grid.NonEmptyCells(row) >= 2 {
			return row
		}
	}
	return 0
}

func countValidSegments(st models.Structure) int {
	n := 0
	for _, seg := range st.Segments {
		if seg.HasRequiredRoles() {
			n++
		}
	}
	return n
}
