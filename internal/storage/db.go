package storage

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"vendortag/internal"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL,
  outputPath TEXT NOT NULL,
  countsJson TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS sheet_tags (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  runId INTEGER NOT NULL,
  sheetName TEXT NOT NULL,
  sourceFile TEXT NOT NULL,
  vendor TEXT NOT NULL,
  confidence REAL NOT NULL,
  method TEXT NOT NULL,
  rowCount INTEGER NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  FOREIGN KEY(runId) REFERENCES runs(id)
);
CREATE INDEX IF NOT EXISTS idx_sheet_tags_runId ON sheet_tags(runId);
`

	_, err := d.conn.Exec(schema)
	return err
}

func (d *DB) InsertRun(traceID, outputPath string, counts map[string]int) (int64, error) {
	countsJSON, _ := json.Marshal(counts)
	result, err := d.conn.Exec(
		`INSERT INTO runs (traceId, outputPath, countsJson) VALUES (?, ?, ?)`,
		traceID, outputPath, string(countsJSON),
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (d *DB) InsertSheetTag(runID int64, tag internal.SheetTag) error {
	_, err := d.conn.Exec(`
INSERT INTO sheet_tags (runId, sheetName, sourceFile, vendor, confidence, method, rowCount)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, runID, tag.SheetName, tag.SourceFile, tag.Vendor, tag.Confidence, string(tag.Method), tag.RowCount)
	return err
}

func (d *DB) ListRuns(limit int) ([]internal.RunRow, error) {
	rows, err := d.conn.Query(`
SELECT id, traceId, outputPath, countsJson, createdAt
FROM runs ORDER BY id DESC LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.RunRow
	for rows.Next() {
		var row internal.RunRow
		if err := rows.Scan(&row.ID, &row.TraceID, &row.OutputPath, &row.CountsJSON, &row.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (d *DB) ListSheetTags(runID int64) ([]internal.SheetTag, error) {
	rows, err := d.conn.Query(`
SELECT sheetName, sourceFile, vendor, confidence, method, rowCount
FROM sheet_tags WHERE runId = ? ORDER BY id ASC
`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.SheetTag
	for rows.Next() {
		var tag internal.SheetTag
		var method string
		if err := rows.Scan(&tag.SheetName, &tag.SourceFile, &tag.Vendor, &tag.Confidence, &method, &tag.RowCount); err != nil {
			return nil, err
		}
		tag.Method = internal.TagMethod(method)
		out = append(out, tag)
	}
	return out, rows.Err()
}
