package escapify

import (
	"regexp"
	"strings"
)

// reOddTick treats already-escaped backticks as opaque and captures the
// raw ones, so a repair run escapes exactly the backticks that need it.
var reOddTick = regexp.MustCompile("\\\\`|(`)")

// fixBacktickParity repairs lines whose unescaped backtick count is odd.
//
// The pipeline can leave such a line behind on ambiguous input (a stray
// backtick next to a real span, a fence delimiter missing its partner), and
// the renderer rejects an unterminated inline span. Walking the lines with
// a fence toggle, any out-of-fence line with odd parity gets every raw
// backtick escaped. Best-effort normalization, not validation.
func fixBacktickParity(text string) string {
	lines := strings.Split(text, "\n")
	inFence := false

	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		clean := strings.ReplaceAll(line, "\\`", "")
		if strings.Count(clean, "`")%2 != 0 {
			lines[i] = replaceAll(line, reOddTick, escapeChar)
		}
	}

	return strings.Join(lines, "\n")
}
