package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"vendortag/internal/config"
	"vendortag/internal/match"
	"vendortag/internal/pipeline"
	"vendortag/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		vendorsPath := fs.String("vendors", "", "single-column vendor master list (.xlsx)")
		out := fs.String("out", cfg.OutputPath, "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		inputs := fs.Args()
		if strings.TrimSpace(*vendorsPath) == "" {
			must(fmt.Errorf("--vendors is required"))
		}
		if len(inputs) == 0 {
			must(fmt.Errorf("at least one input file (.csv or .xlsx) is required"))
		}

		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()

		matcher := newMatcher(cfg)
		svc := pipeline.NewRunService(db, cfg, matcher)
		summary, err := svc.Run(context.Background(), inputs, *vendorsPath, *out)
		must(err)
		fmt.Printf("run %s done sheets=%d fuzzy=%d oracle=%d unmatched=%d output=%s\n",
			summary.TraceID, summary.Counts["sheets"], summary.Counts["fuzzy"],
			summary.Counts["oracle"], summary.Counts["unmatched"], summary.OutputPath)
	case "match":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		query := fs.String("query", "", "label to classify")
		vendorsPath := fs.String("vendors", "", "single-column vendor master list (.xlsx)")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*query) == "" || strings.TrimSpace(*vendorsPath) == "" {
			must(fmt.Errorf("--query and --vendors are required"))
		}

		vendors, err := pipeline.LoadVendorList(*vendorsPath)
		must(err)
		matcher := newMatcher(cfg)
		vendor, confidence, method := matcher.MatchDetail(context.Background(), *query, vendors)
		if vendor == "" {
			fmt.Printf("no match (confidence=%.1f)\n", confidence)
			return
		}
		fmt.Printf("matched vendor=%q method=%s confidence=%.1f\n", vendor, method, confidence)
	case "history":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		limit := fs.Int("limit", 20, "max runs to list")
		_ = fs.Parse(os.Args[2:])

		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()

		runs, err := db.ListRuns(*limit)
		must(err)
		for _, run := range runs {
			counts := map[string]int{}
			_ = json.Unmarshal([]byte(run.CountsJSON), &counts)
			fmt.Printf("run %d trace=%s at=%s sheets=%d fuzzy=%d oracle=%d unmatched=%d output=%s\n",
				run.ID, run.TraceID, run.CreatedAt, counts["sheets"], counts["fuzzy"],
				counts["oracle"], counts["unmatched"], run.OutputPath)
		}
	default:
		usage()
		os.Exit(1)
	}
}

func newMatcher(cfg config.Config) *match.Matcher {
	var oracle match.Oracle
	if o := match.NewOpenAIOracle(cfg); o != nil {
		oracle = o
		fmt.Println("oracle fallback enabled")
	}
	matcher := match.NewMatcher(cfg, oracle)
	if matcher.ScorerName() != "partial" {
		fmt.Printf("using degraded %s scorer\n", matcher.ScorerName())
	}
	return matcher
}

func usage() {
	fmt.Println("usage: vendortag <command>")
	fmt.Println("commands:")
	fmt.Println("  run --vendors=master.xlsx [--out=./out/combined.xlsx] <file.csv|file.xlsx> ...")
	fmt.Println("  match --query=\"sheet name\" --vendors=master.xlsx")
	fmt.Println("  history [--limit=20]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
