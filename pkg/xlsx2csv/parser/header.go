package parser

import (
	"fmt"
	"strconv"
)

// normalizeHeader names empty header cells "Unnamed: <index>" and suffixes
// repeated names with ".1", ".2", ... so every column name is unique.
func normalizeHeader(header []string) []string {
	result := make([]string, len(header))
	used := make(map[string]bool, len(header))
	dups := make(map[string]int)

	for i, name := range header {
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}

		candidate := name
		for used[candidate] {
			dups[name]++
			candidate = name + "." + strconv.Itoa(dups[name])
		}
		used[candidate] = true
		result[i] = candidate
	}

	return result
}
