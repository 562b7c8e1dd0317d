package assessment

import (
	"fmt"
	"sort"
	"strings"
)

// Validate scores a project description against the required content areas
// and the word-count floor. It is the workflow's validation gate: a failing
// result blocks every dependent step until a later run passes.
func Validate(description string) ValidationResult {
	text := strings.ToLower(description)
	words := len(strings.Fields(description))

	coverage := make(map[string]bool, len(contentAreas))
	covered := 0
	for area, keywords := range contentAreas {
		coverage[area] = false
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				coverage[area] = true
				covered++
				break
			}
		}
	}

	passed := words >= minDescriptionWords && covered >= minCoveredAreas

	var details strings.Builder
	if words < minDescriptionWords {
		fmt.Fprintf(&details, "description has %d words, needs at least %d. ", words, minDescriptionWords)
	}
	if covered < minCoveredAreas {
		var missing []string
		for area, ok := range coverage {
			if !ok {
				missing = append(missing, area)
			}
		}
		sort.Strings(missing)
		fmt.Fprintf(&details, "covers %d of %d content areas (need %d); missing: %s.",
			covered, len(contentAreas), minCoveredAreas, strings.Join(missing, ", "))
	}
	if passed {
		details.WriteString("description covers the required content areas")
	}

	return ValidationResult{
		Passed:    passed,
		WordCount: words,
		Coverage:  coverage,
		Details:   strings.TrimSpace(details.String()),
	}
}
