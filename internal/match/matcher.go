package match

import (
	"context"
	"strings"

	"vendortag/internal"
	"vendortag/internal/config"
)

// Matcher decides which vendor, if any, a sheet name denotes. The scorer
// strategy is resolved once at construction; the oracle may be nil, which
// disables the fallback path with no other behavior change.
type Matcher struct {
	threshold float64
	scorer    Scorer
	oracle    Oracle
}

func NewMatcher(cfg config.Config, oracle Oracle) *Matcher {
	return &Matcher{
		threshold: cfg.MatchThreshold,
		scorer:    NewScorer(cfg.MatchScorer, cfg.MatchThreshold),
		oracle:    oracle,
	}
}

func (m *Matcher) ScorerName() string { return m.scorer.Name() }

// Match returns the matched vendor name, or "" for no match. The result
// is always either a member of candidates or empty.
func (m *Matcher) Match(ctx context.Context, query string, candidates ReferenceList) string {
	vendor, _, _ := m.MatchDetail(ctx, query, candidates)
	return vendor
}

// MatchDetail additionally reports the scorer confidence and which path
// produced the decision. Oracle failures of any kind degrade to no match;
// they are never retried and never surfaced.
func (m *Matcher) MatchDetail(ctx context.Context, query string, candidates ReferenceList) (string, float64, internal.TagMethod) {
	if query == "" || len(candidates) == 0 {
		return "", 0, internal.TagNone
	}

	candidate, confidence := m.scorer.Score(query, candidates)
	if candidate != "" && confidence >= m.threshold {
		return candidate, confidence, internal.TagFuzzy
	}

	if m.oracle != nil {
		answer, err := m.oracle.Pick(ctx, query, candidates)
		if err == nil {
			answer = strings.TrimSpace(answer)
			if candidates.Contains(answer) {
				return answer, 0, internal.TagOracle
			}
		}
	}

	return "", confidence, internal.TagNone
}
