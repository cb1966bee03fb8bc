package internal

type SourceKind string

const (
	SourceCSV  SourceKind = "csv"
	SourceXLSX SourceKind = "xlsx"
)

type TagMethod string

const (
	TagFuzzy  TagMethod = "FUZZY"
	TagOracle TagMethod = "ORACLE"
	TagNone   TagMethod = "NONE"
)

// Dataset is one ingested input file: a header row plus data rows,
// all cell values kept as strings.
type Dataset struct {
	SheetName  string
	SourceFile string
	Source     SourceKind
	Header     []string
	Rows       [][]string
}

// SheetTag is the vendor decision for one dataset. Confidence is on the
// 0-100 scale and is only meaningful when Method is FUZZY.
type SheetTag struct {
	SheetName  string
	SourceFile string
	Vendor     string
	Confidence float64
	Method     TagMethod
	RowCount   int
}

type RunRow struct {
	ID         int
	TraceID    string
	OutputPath string
	CountsJSON string
	CreatedAt  string
}
