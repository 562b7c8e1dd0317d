package assessment

import (
	"sort"
	"strings"
)

// DetectFramework classifies free-text user context into a framework tag via
// keyword lists. Confidence is the matched share of the winning framework's
// keyword list; ties with matches on both sides report "both".
func DetectFramework(contextText string) FrameworkMatch {
	text := strings.ToLower(contextText)

	matched := make(map[string][]string)
	for framework, keywords := range detectorRules {
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				matched[framework] = append(matched[framework], kw)
			}
		}
	}

	aiaHits := len(matched[FrameworkAIA])
	osfiHits := len(matched[FrameworkOSFI])

	switch {
	case aiaHits == 0 && osfiHits == 0:
		return FrameworkMatch{Framework: FrameworkUnknown}
	case aiaHits > 0 && osfiHits > 0:
		all := append(matched[FrameworkAIA], matched[FrameworkOSFI]...)
		sort.Strings(all)
		return FrameworkMatch{
			Framework:       FrameworkBoth,
			Confidence:      confidence(aiaHits+osfiHits, len(detectorRules[FrameworkAIA])+len(detectorRules[FrameworkOSFI])),
			MatchedKeywords: all,
		}
	case aiaHits > 0:
		sort.Strings(matched[FrameworkAIA])
		return FrameworkMatch{
			Framework:       FrameworkAIA,
			Confidence:      confidence(aiaHits, len(detectorRules[FrameworkAIA])),
			MatchedKeywords: matched[FrameworkAIA],
		}
	default:
		sort.Strings(matched[FrameworkOSFI])
		return FrameworkMatch{
			Framework:       FrameworkOSFI,
			Confidence:      confidence(osfiHits, len(detectorRules[FrameworkOSFI])),
			MatchedKeywords: matched[FrameworkOSFI],
		}
	}
}

func confidence(hits, total int) float64 {
	if total == 0 {
		return 0
	}
	c := float64(hits) / float64(total)
	if c > 1 {
		c = 1
	}
	return c
}
