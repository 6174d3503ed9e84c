package escapify

import "strings"

// DefaultMessageLimit is Telegram's per-message budget in UTF-16 code units.
const DefaultMessageLimit = 4096

const fenceDelim = "```"

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Telegram measures message length in UTF-16 code units, not Go string
// bytes or runes. Characters outside the BMP (codepoint > 0xFFFF) take 2
// code units (a surrogate pair); all others take 1.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}

// Split chunks escaped text so every chunk fits in limit UTF-16 code units.
//
// Chunks break at newline boundaries. A break never lands inside a fenced
// block: the fence is closed at the end of one chunk and reopened (with its
// original info string) at the start of the next. A line larger than the
// whole budget is hard-split at a rune boundary, keeping each backslash
// together with the character it escapes.
func Split(text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultMessageLimit
	}
	if UTF16Len(text) <= limit {
		return []string{text}
	}

	var (
		chunks    []string
		cur       strings.Builder
		curLen    int
		inFence   bool
		fenceOpen string
	)

	flush := func() {
		if cur.Len() == 0 {
			return
		}
		chunks = append(chunks, cur.String())
		cur.Reset()
		curLen = 0
	}

	// breakChunk ends the current chunk. Inside a fence it closes the block
	// first and reopens it in the next chunk.
	breakChunk := func() {
		if inFence {
			Logger.Printf("splitting inside a fenced block, reopening %q", fenceOpen)
			cur.WriteString(fenceDelim)
			flush()
			cur.WriteString(fenceOpen + "\n")
			curLen = UTF16Len(fenceOpen) + 1
		} else {
			flush()
		}
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		piece := line
		if i < len(lines)-1 {
			piece += "\n"
		}
		pieceLen := UTF16Len(piece)

		// Keep room for the closing delimiter while inside a fence.
		budget := limit
		if inFence {
			budget = limit - UTF16Len(fenceDelim) - 1
		}

		if curLen > 0 && curLen+pieceLen > budget {
			breakChunk()
		}

		if pieceLen > budget {
			Logger.Printf("hard-splitting a line of %d code units (budget %d)", pieceLen, budget)
			for _, part := range hardSplit(piece, budget-curLen, budget) {
				if curLen > 0 && curLen+UTF16Len(part) > budget {
					breakChunk()
				}
				cur.WriteString(part)
				curLen += UTF16Len(part)
			}
		} else {
			cur.WriteString(piece)
			curLen += pieceLen
		}

		if strings.HasPrefix(strings.TrimSpace(line), fenceDelim) {
			if inFence {
				inFence = false
				fenceOpen = ""
			} else {
				inFence = true
				fenceOpen = strings.TrimSpace(line)
			}
		}
	}

	flush()
	return chunks
}

// hardSplit cuts s into parts of at most first (for the leading part) and
// rest code units, at rune boundaries. A part never ends in a dangling
// escape backslash: the backslash is carried over to the next part so the
// pair stays together.
func hardSplit(s string, first, rest int) []string {
	if rest <= 1 {
		return []string{s}
	}
	budget := first
	if budget <= 1 {
		budget = rest
	}

	var parts []string
	var b strings.Builder
	blen := 0

	for _, r := range s {
		rlen := 1
		if r > 0xFFFF {
			rlen = 2
		}
		if blen+rlen > budget {
			part := b.String()
			b.Reset()
			blen = 0
			if trailingBackslashes(part)%2 == 1 {
				part = part[:len(part)-1]
				b.WriteByte('\\')
				blen = 1
			}
			parts = append(parts, part)
			budget = rest
		}
		b.WriteRune(r)
		blen += rlen
	}
	if b.Len() > 0 {
		parts = append(parts, b.String())
	}
	return parts
}

func trailingBackslashes(s string) int {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n
}
