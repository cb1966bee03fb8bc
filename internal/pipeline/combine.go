package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"vendortag/internal"
	"vendortag/internal/util"
)

const tableStyle = "TableStyleMedium9"

// WriteCombined emits one workbook with a sheet per dataset. Every sheet
// gets a leading "Vendor" column carrying that sheet's decision on each
// data row (empty when unmatched), and sheets with data are formatted as
// native tables. tags must be parallel to datasets.
func WriteCombined(datasets []internal.Dataset, tags []internal.SheetTag, outputPath string) error {
	if len(datasets) != len(tags) {
		return fmt.Errorf("datasets and tags length mismatch: %d != %d", len(datasets), len(tags))
	}
	if len(datasets) == 0 {
		return fmt.Errorf("nothing to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, ds := range datasets {
		sheet := ds.SheetName
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return err
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return err
			}
		}
		if err := writeSheet(f, sheet, ds, tags[i].Vendor); err != nil {
			return fmt.Errorf("write sheet %s: %w", sheet, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func writeSheet(f *excelize.File, sheet string, ds internal.Dataset, vendor string) error {
	header := append([]string{"Vendor"}, ds.Header...)
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	width := len(header)
	for i, row := range ds.Rows {
		values := append([]string{vendor}, row...)
		if len(values) > width {
			width = len(values)
		}
		if err := setRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}

	// Header-only sheets stay plain; Excel rejects tables without rows.
	if len(ds.Rows) == 0 {
		return nil
	}

	lastCell, err := excelize.CoordinatesToCellName(width, len(ds.Rows)+1)
	if err != nil {
		return err
	}
	return f.AddTable(sheet, &excelize.Table{
		Range:          "A1:" + lastCell,
		Name:           "tbl_" + util.SanitizeIdentifier(sheet),
		StyleName:      tableStyle,
		ShowRowStripes: util.BoolPtr(true),
	})
}

func setRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(sheet, cell, &cells)
}
