package match

import (
	"context"
	"errors"
	"testing"

	"vendortag/internal"
	"vendortag/internal/config"
)

type stubOracle struct {
	answer string
	err    error
	calls  int
}

func (s *stubOracle) Pick(_ context.Context, _ string, _ ReferenceList) (string, error) {
	s.calls++
	return s.answer, s.err
}

func testConfig(t *testing.T, threshold float64, scorer string) config.Config {
	t.Helper()
	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	cfg.MatchThreshold = threshold
	cfg.MatchScorer = scorer
	return cfg
}

func TestMatchExactName(t *testing.T) {
	master := NewReferenceList([]string{"Acme Corp", "Beta LLC", "Gamma Inc"})
	m := NewMatcher(testConfig(t, 80, "partial"), nil)
	if got := m.Match(context.Background(), "Acme Corp", master); got != "Acme Corp" {
		t.Fatalf("got %q", got)
	}
}

func TestMatchPartialName(t *testing.T) {
	master := NewReferenceList([]string{"Acme Corporation", "Beta LLC"})
	m := NewMatcher(testConfig(t, 60, "partial"), nil)
	if got := m.Match(context.Background(), "Acme Corp", master); got != "Acme Corporation" {
		t.Fatalf("got %q", got)
	}
}

func TestNoMatchAboveThreshold(t *testing.T) {
	master := NewReferenceList([]string{"Alpha", "Beta"})
	m := NewMatcher(testConfig(t, 95, "partial"), nil)
	if got := m.Match(context.Background(), "Zeta", master); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestMatchEmptyInputs(t *testing.T) {
	master := NewReferenceList([]string{"Acme Corp"})
	m := NewMatcher(testConfig(t, 80, "partial"), &stubOracle{answer: "Acme Corp"})

	if got := m.Match(context.Background(), "", master); got != "" {
		t.Fatalf("empty query: got %q", got)
	}
	if got := m.Match(context.Background(), "Acme Corp", ReferenceList{}); got != "" {
		t.Fatalf("empty list: got %q", got)
	}
}

func TestTrivialAcceptanceAtZeroThreshold(t *testing.T) {
	master := NewReferenceList([]string{"Acme Corp", "Beta LLC", "Gamma Inc"})
	for _, scorer := range []string{"partial", "closematch"} {
		m := NewMatcher(testConfig(t, 0, scorer), nil)
		for _, c := range master {
			if got := m.Match(context.Background(), c, master); got != c {
				t.Fatalf("scorer=%s query=%q got %q", scorer, c, got)
			}
		}
	}
}

func TestThresholdMonotonicity(t *testing.T) {
	master := NewReferenceList([]string{"Acme Corporation", "Beta LLC"})
	query := "Acme Corp"

	high := NewMatcher(testConfig(t, 90, "partial"), nil)
	if high.Match(context.Background(), query, master) == "" {
		t.Skip("query does not clear the higher threshold")
	}
	for _, th := range []float64{70, 40, 10, 0} {
		m := NewMatcher(testConfig(t, th, "partial"), nil)
		if m.Match(context.Background(), query, master) == "" {
			t.Fatalf("lowering threshold to %v lost the match", th)
		}
	}
}

func TestMatchIdempotent(t *testing.T) {
	master := NewReferenceList([]string{"Acme Corporation", "Beta LLC"})
	m := NewMatcher(testConfig(t, 60, "partial"), nil)
	first := m.Match(context.Background(), "Acme Corp", master)
	second := m.Match(context.Background(), "Acme Corp", master)
	if first != second {
		t.Fatalf("first=%q second=%q", first, second)
	}
}

func TestOracleUsedOnlyWhenScorerFails(t *testing.T) {
	master := NewReferenceList([]string{"Acme Corp", "Beta LLC"})
	oracle := &stubOracle{answer: "Beta LLC"}
	m := NewMatcher(testConfig(t, 80, "partial"), oracle)

	if got := m.Match(context.Background(), "Acme Corp", master); got != "Acme Corp" {
		t.Fatalf("got %q", got)
	}
	if oracle.calls != 0 {
		t.Fatalf("oracle consulted %d times on a confident match", oracle.calls)
	}

	vendor, _, method := m.MatchDetail(context.Background(), "Completely Unrelated", master)
	if vendor != "Beta LLC" || method != internal.TagOracle {
		t.Fatalf("vendor=%q method=%s", vendor, method)
	}
	if oracle.calls != 1 {
		t.Fatalf("calls=%d", oracle.calls)
	}
}

func TestOracleAnswerMustBeMember(t *testing.T) {
	master := NewReferenceList([]string{"Alpha", "Beta"})
	oracle := &stubOracle{answer: "Gamma Holdings"}
	m := NewMatcher(testConfig(t, 95, "partial"), oracle)
	if got := m.Match(context.Background(), "Zeta", master); got != "" {
		t.Fatalf("invalid oracle answer leaked: %q", got)
	}
}

func TestOracleAnswerCaseSensitive(t *testing.T) {
	master := NewReferenceList([]string{"Alpha"})
	oracle := &stubOracle{answer: "alpha"}
	m := NewMatcher(testConfig(t, 95, "partial"), oracle)
	if got := m.Match(context.Background(), "Zeta", master); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestOracleFailureSwallowed(t *testing.T) {
	master := NewReferenceList([]string{"Alpha", "Beta"})
	oracle := &stubOracle{err: errors.New("transport closed")}
	m := NewMatcher(testConfig(t, 95, "partial"), oracle)
	if got := m.Match(context.Background(), "Zeta", master); got != "" {
		t.Fatalf("got %q", got)
	}
	if oracle.calls != 1 {
		t.Fatalf("oracle must be tried exactly once, calls=%d", oracle.calls)
	}
}

func TestDegradedHitSkipsOracle(t *testing.T) {
	master := NewReferenceList([]string{"Acme Corporation"})
	oracle := &stubOracle{answer: "Acme Corporation"}
	m := NewMatcher(testConfig(t, 40, "closematch"), oracle)

	vendor, confidence, method := m.MatchDetail(context.Background(), "Acme Corporatio", master)
	if vendor != "Acme Corporation" || method != internal.TagFuzzy {
		t.Fatalf("vendor=%q method=%s", vendor, method)
	}
	if confidence != 100 {
		t.Fatalf("confidence=%v", confidence)
	}
	if oracle.calls != 0 {
		t.Fatalf("calls=%d", oracle.calls)
	}
}
