package pipeline

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"vendortag/internal/match"
)

// LoadVendorList reads the master vendor list from a single-column .xlsx
// file. A second populated column anywhere in the sheet is an input error;
// blanks are dropped and duplicates removed keeping first-seen order.
func LoadVendorList(path string) (match.ReferenceList, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open vendor list: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read vendor list: %w", err)
	}

	values := make([]string, 0, len(rows))
	for i, row := range rows {
		for col := 1; col < len(row); col++ {
			if strings.TrimSpace(row[col]) != "" {
				return nil, fmt.Errorf("vendor list must have exactly one column (row %d has more)", i+1)
			}
		}
		// Row 1 is the column header, not a vendor.
		if i == 0 {
			continue
		}
		if len(row) > 0 {
			values = append(values, strings.TrimSpace(row[0]))
		}
	}

	vendors := match.NewReferenceList(values)
	if len(vendors) == 0 {
		return nil, fmt.Errorf("vendor list is empty")
	}
	return vendors, nil
}
