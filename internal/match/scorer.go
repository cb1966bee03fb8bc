package match

import (
	"github.com/hbollon/go-edlib"

	"vendortag/internal/util"
)

// Scorer ranks a reference list against a query and returns the single
// best candidate with a confidence on the 0-100 scale. An empty candidate
// means the scorer produced nothing usable.
type Scorer interface {
	Name() string
	Score(query string, candidates ReferenceList) (string, float64)
}

// NewScorer resolves the scorer strategy once, at construction. "partial"
// is the primary strategy; anything else selects the close-match fallback
// with the threshold rescaled to its 0.0-1.0 cutoff.
func NewScorer(strategy string, threshold float64) Scorer {
	if strategy == "partial" {
		return PartialRatioScorer{}
	}
	return CloseMatchScorer{Cutoff: clamp01(threshold / 100)}
}

// PartialRatioScorer scores each candidate by the best edit-distance
// similarity between the shorter of (query, candidate) and every
// same-length rune window of the longer. A query that appears verbatim
// inside a candidate scores 100 regardless of the candidate's extra
// characters. Returns its best effort unconditionally; the caller applies
// the threshold.
type PartialRatioScorer struct{}

func (PartialRatioScorer) Name() string { return "partial" }

func (PartialRatioScorer) Score(query string, candidates ReferenceList) (string, float64) {
	if query == "" || len(candidates) == 0 {
		return "", 0
	}

	best := ""
	bestScore := -1.0
	for _, candidate := range candidates {
		score := partialRatio(query, candidate)
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}
	if bestScore < 0 {
		return "", 0
	}
	return best, bestScore
}

func partialRatio(a, b string) float64 {
	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 {
		if len(longer) == 0 {
			return 100
		}
		return 0
	}

	needle := string(shorter)
	best := 0.0
	for i := 0; i+len(shorter) <= len(longer); i++ {
		window := string(longer[i : i+len(shorter)])
		sim, err := edlib.StringsSimilarity(needle, window, edlib.Levenshtein)
		if err != nil {
			continue
		}
		if score := float64(sim) * 100; score > best {
			best = score
		}
		if best >= 100 {
			break
		}
	}
	return best
}

// CloseMatchScorer is the degraded strategy: bigram Dice similarity with
// an internal cutoff. Unlike the primary path it pre-filters: a candidate
// is returned only if it already clears the cutoff, and a hit is reported
// with confidence 100 so downstream threshold checks always pass. The
// numeric confidence is not comparable with the primary scale.
type CloseMatchScorer struct {
	Cutoff float64
}

func (CloseMatchScorer) Name() string { return "closematch" }

func (s CloseMatchScorer) Score(query string, candidates ReferenceList) (string, float64) {
	if query == "" || len(candidates) == 0 {
		return "", 0
	}

	best := ""
	bestScore := -1.0
	for _, candidate := range candidates {
		score := util.DiceCoefficient(query, candidate)
		if score >= s.Cutoff && score > bestScore {
			best = candidate
			bestScore = score
		}
	}
	if best == "" {
		return "", 0
	}
	return best, 100
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
