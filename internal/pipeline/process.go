package pipeline

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"vendortag/internal/config"
	"vendortag/internal/match"
	"vendortag/internal/storage"
)

type RunService struct {
	db      *storage.DB
	cfg     config.Config
	matcher *match.Matcher
}

func NewRunService(db *storage.DB, cfg config.Config, matcher *match.Matcher) *RunService {
	return &RunService{db: db, cfg: cfg, matcher: matcher}
}

type RunSummary struct {
	RunID      int64
	TraceID    string
	OutputPath string
	Counts     map[string]int
}

// Run executes the whole pipeline: load the master list, ingest the
// inputs, tag every sheet, write the combined workbook, and record the
// run. Only malformed inputs abort; per-sheet match failures end up as
// empty vendor tags.
func (s *RunService) Run(ctx context.Context, inputs []string, vendorListPath, outputPath string) (RunSummary, error) {
	start := time.Now()

	vendors, err := LoadVendorList(vendorListPath)
	if err != nil {
		return RunSummary{}, err
	}

	datasets, err := IngestFiles(inputs)
	if err != nil {
		return RunSummary{}, err
	}

	tagger := NewTagService(s.cfg, s.matcher)
	tags, err := tagger.Tag(ctx, datasets, vendors)
	if err != nil {
		return RunSummary{}, err
	}

	if err := WriteCombined(datasets, tags, outputPath); err != nil {
		return RunSummary{}, err
	}

	counts := TagCounts(tags)
	counts["vendors"] = len(vendors)
	counts["totalMs"] = int(time.Since(start).Milliseconds())

	trace := traceID()
	runID, err := s.db.InsertRun(trace, outputPath, counts)
	if err != nil {
		return RunSummary{}, err
	}
	for _, tag := range tags {
		if err := s.db.InsertSheetTag(runID, tag); err != nil {
			return RunSummary{}, err
		}
	}

	return RunSummary{RunID: runID, TraceID: trace, OutputPath: outputPath, Counts: counts}, nil
}

func traceID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
