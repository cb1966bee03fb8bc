package match

import "strings"

// ReferenceList is the master vendor list: ordered, case-sensitively
// deduplicated, no blank entries. Built once per run and read-only after.
type ReferenceList []string

// NewReferenceList drops blank values and exact duplicates, keeping the
// first occurrence of each entry.
func NewReferenceList(values []string) ReferenceList {
	seen := map[string]struct{}{}
	out := make(ReferenceList, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func (r ReferenceList) Contains(value string) bool {
	for _, v := range r {
		if v == value {
			return true
		}
	}
	return false
}
