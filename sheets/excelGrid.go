// Package sheets adapts spreadsheet files into the engine's Grid type. It is
// a convenience implementation of the upstream extractor collaborator; the
// core packages never import it.
package sheets

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"bitbucket.org/audicodev/pricelist_engine/config"
	"bitbucket.org/audicodev/pricelist_engine/models"
	"bitbucket.org/audicodev/pricelist_engine/utils"
)

// GridFromExcel reads one worksheet into a Grid. Cell text is taken raw so
// the detector and normalizer see the supplier's original spacing and
// punctuation. An empty sheetName selects the first sheet.
func GridFromExcel(r io.Reader, sheetName string) (models.Grid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		config.LogError(config.GetLogger(), "sheets", "GridFromExcel", "open workbook", sheetName, err)
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %q", utils.ErrorUnknownSheet, sheetName)
	}
	return models.Grid(rows), nil
}
