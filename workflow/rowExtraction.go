package workflow

import (
	"strings"

	"github.com/sirupsen/logrus"

	"bitbucket.org/audicodev/pricelist_engine/config"
	"bitbucket.org/audicodev/pricelist_engine/models"
)

// ExtractRows walks the data rows of every segment that resolved both a
// product code and a price column and turns them into raw product rows.
// Rows with an empty product code cell are skipped, as are header echoes
// (sheets that repeat "Stock Code" mid-column). Segments without usable
// roles are kept in the structure for diagnostics but never extracted from.
func ExtractRows(grid models.Grid, st models.Structure, cfg config.DetectionConfig) []models.RawProductRow {
	if !st.IsValid {
		config.GetLogger().Warn("invalid pricelist structure, nothing to extract")
		return nil
	}

	var rows []models.RawProductRow
	for _, seg := range st.Segments {
		if !seg.HasRequiredRoles() {
			continue
		}
		codeCol := seg.ColumnWithRole(models.RoleProductCode)
		priceCol := seg.ColumnWithRole(models.RolePrice)

		for row := st.DataStartRow; row < grid.RowCount(); row++ {
			code := grid.Cell(row, codeCol)
			if code == "" || isHeaderEcho(code, cfg) {
				continue
			}
			rows = append(rows, models.RawProductRow{
				Brand:        seg.BrandName,
				Code:         code,
				RawPriceText: grid.Cell(row, priceCol),
			})
		}
	}

	config.GetLogger().WithFields(logrus.Fields{
		"rows":     len(rows),
		"segments": len(st.Segments),
	}).Info("pricelist rows extracted")
	return rows
}

func isHeaderEcho(code string, cfg config.DetectionConfig) bool {
	c := strings.ToLower(code)
	for _, kw := range cfg.ProductCodeKeywords {
		if c == kw {
			return true
		}
	}
	return false
}
