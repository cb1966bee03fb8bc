package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"vendortag/internal"
	"vendortag/internal/config"
	"vendortag/internal/match"
)

type TagService struct {
	cfg     config.Config
	matcher *match.Matcher
}

func NewTagService(cfg config.Config, matcher *match.Matcher) *TagService {
	return &TagService{cfg: cfg, matcher: matcher}
}

// Tag decides a vendor for every dataset. Sheets are matched concurrently
// under a worker limit; the reference list is read-only so the only
// blocking work per sheet is a possible oracle round-trip. Results are
// slotted by dataset index, so completion order does not matter.
func (s *TagService) Tag(ctx context.Context, datasets []internal.Dataset, vendors match.ReferenceList) ([]internal.SheetTag, error) {
	tags := make([]internal.SheetTag, len(datasets))

	g, ctx := errgroup.WithContext(ctx)
	limit := s.cfg.MatchMaxConcurrency
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for i, ds := range datasets {
		i, ds := i, ds
		g.Go(func() error {
			vendor, confidence, method := s.matcher.MatchDetail(ctx, ds.SheetName, vendors)
			tags[i] = internal.SheetTag{
				SheetName:  ds.SheetName,
				SourceFile: ds.SourceFile,
				Vendor:     vendor,
				Confidence: confidence,
				Method:     method,
				RowCount:   len(ds.Rows),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tags, nil
}

// TagCounts summarizes how each sheet was decided.
func TagCounts(tags []internal.SheetTag) map[string]int {
	counts := map[string]int{"sheets": len(tags), "fuzzy": 0, "oracle": 0, "unmatched": 0}
	for _, tag := range tags {
		switch tag.Method {
		case internal.TagFuzzy:
			counts["fuzzy"]++
		case internal.TagOracle:
			counts["oracle"]++
		default:
			counts["unmatched"]++
		}
	}
	return counts
}
