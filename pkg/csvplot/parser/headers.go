package parser

import "fmt"

// normalizeHeaders names unnamed columns and makes duplicate names unique
// by appending ".1", ".2", ...
func normalizeHeaders(header []string) []string {
	names := make([]string, len(header))
	used := make(map[string]bool, len(header))
	dups := make(map[string]int)

	for i, h := range header {
		name := h
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}

		base := name
		for used[name] {
			dups[base]++
			name = fmt.Sprintf("%s.%d", base, dups[base])
		}
		used[name] = true
		names[i] = name
	}

	return names
}
