package util

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Excel refuses these characters in sheet names.
var reSheetForbidden = regexp.MustCompile(`[\[\]:*?/\\]`)

var reNonIdentifier = regexp.MustCompile(`[^A-Za-z0-9_]`)

const maxSheetNameLen = 31

// SheetNameFromFile derives a worksheet name from an input file path:
// the base name without its final extension, illegal characters replaced,
// truncated to Excel's 31-character limit.
func SheetNameFromFile(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = base[:len(base)-len(ext)]
	}
	base = reSheetForbidden.ReplaceAllString(base, "_")
	base = strings.TrimSpace(base)
	if base == "" {
		base = "Sheet"
	}
	runes := []rune(base)
	if len(runes) > maxSheetNameLen {
		runes = runes[:maxSheetNameLen]
	}
	return string(runes)
}

// SanitizeIdentifier maps a display name onto the charset allowed for
// table display names.
func SanitizeIdentifier(input string) string {
	return reNonIdentifier.ReplaceAllString(input, "_")
}

func DiceCoefficient(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	pairs := func(s string) []string {
		r := []rune(s)
		if len(r) < 2 {
			return nil
		}
		out := make([]string, 0, len(r)-1)
		for i := 0; i < len(r)-1; i++ {
			out = append(out, string(r[i:i+2]))
		}
		return out
	}

	aPairs := pairs(a)
	bPairs := pairs(b)
	if len(aPairs) == 0 || len(bPairs) == 0 {
		return 0
	}

	bCount := map[string]int{}
	for _, p := range bPairs {
		bCount[p]++
	}
	inter := 0
	for _, p := range aPairs {
		if bCount[p] > 0 {
			inter++
			bCount[p]--
		}
	}

	return float64(2*inter) / float64(len(aPairs)+len(bPairs))
}

func BoolPtr(v bool) *bool { return &v }
