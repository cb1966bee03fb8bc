package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"vendortag/internal"
	"vendortag/internal/util"
)

// IngestFiles reads every input file into a Dataset, keeping all cell
// values as strings. An empty input set is an input error that halts the
// run. Duplicate sheet names across inputs get a numeric suffix so every
// dataset lands on its own output sheet.
func IngestFiles(paths []string) ([]internal.Dataset, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no input files provided")
	}

	seen := map[string]int{}
	out := make([]internal.Dataset, 0, len(paths))
	for _, path := range paths {
		ds, err := ingestFile(path)
		if err != nil {
			return nil, fmt.Errorf("ingest %s: %w", path, err)
		}
		ds.SheetName = uniqueSheetName(seen, ds.SheetName)
		out = append(out, ds)
	}
	return out, nil
}

func ingestFile(path string) (internal.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ingestCSV(path)
	case ".xlsx":
		return ingestXLSX(path)
	default:
		return internal.Dataset{}, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

func ingestCSV(path string) (internal.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return internal.Dataset{}, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return internal.Dataset{}, err
	}

	return datasetFromRows(path, internal.SourceCSV, records), nil
}

func ingestXLSX(path string) (internal.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return internal.Dataset{}, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return internal.Dataset{}, err
	}

	return datasetFromRows(path, internal.SourceXLSX, rows), nil
}

func datasetFromRows(path string, source internal.SourceKind, rows [][]string) internal.Dataset {
	ds := internal.Dataset{
		SheetName:  util.SheetNameFromFile(path),
		SourceFile: path,
		Source:     source,
	}
	if len(rows) > 0 {
		ds.Header = rows[0]
		ds.Rows = rows[1:]
	}
	return ds
}

func uniqueSheetName(seen map[string]int, name string) string {
	seen[name]++
	if seen[name] == 1 {
		return name
	}

	suffix := fmt.Sprintf("_%d", seen[name])
	runes := []rune(name)
	if len(runes)+len(suffix) > 31 {
		runes = runes[:31-len(suffix)]
	}
	return string(runes) + suffix
}
