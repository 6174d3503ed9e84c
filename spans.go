package escapify

import (
	"regexp"
	"strings"
)

// findSpanBounds scans text for non-overlapping leftmost matches of pattern
// and returns the boundary indices of every span captured by group 1,
// flattened as [0, s1, e1, s2, e2, …, len(text)].
//
// Matches where group 1 did not participate (the opaque arm of the pattern)
// contribute no boundaries: their text ends up inside a preserve region.
func findSpanBounds(text string, pattern *regexp.Regexp) []int {
	bounds := []int{0}
	for _, m := range pattern.FindAllStringSubmatchIndex(text, -1) {
		if len(m) >= 4 && m[2] >= 0 {
			bounds = append(bounds, m[2], m[3])
		}
	}
	return append(bounds, len(text))
}

// replaceAll applies transform to every span captured by pattern's group 1
// and copies everything else through verbatim, including text matched by
// the pattern's capture-free arms. It is the mechanism passes use to rewrite
// one construct while treating fenced code, inline code or a sentinel zone
// as opaque.
//
// The interleave below pads the shorter side with one empty string so a
// capture touching the start or end of the text still lines up.
func replaceAll(text string, pattern *regexp.Regexp, transform func(string) string) string {
	bounds := findSpanBounds(text, pattern)

	var transformed []string
	for i := 1; i < len(bounds)-1; i += 2 {
		transformed = append(transformed, transform(text[bounds[i]:bounds[i+1]]))
	}

	var preserved []string
	for i := 0; i+1 < len(bounds); i += 2 {
		preserved = append(preserved, text[bounds[i]:bounds[i+1]])
	}

	if len(transformed) < len(preserved) {
		transformed = append(transformed, "")
	} else if len(preserved) < len(transformed) {
		preserved = append(preserved, "")
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := range preserved {
		b.WriteString(preserved[i])
		b.WriteString(transformed[i])
	}
	return b.String()
}
