package escapify

import (
	"regexp"
	"strings"
)

// Output glyphs for normalized block constructs.
const (
	bulletGlyph  = "•"
	headingGlyph = "▎"
)

// Sentinels stand in for fragments that must survive a later blanket pass.
// Each class is introduced by exactly one pass and consumed by exactly one
// later pass; senWrap and senLooseTick are reused across disjoint
// lifetimes. Input that already contains one of these strings is outside
// the supported domain.
const (
	senLBracket   = "@->@"  // \[ … protect pre-escaped brackets → restore pre-escaped brackets
	senRBracket   = "@<-@"  // \] … same lifetime as senLBracket
	senLParen     = "@-->@" // \( … same lifetime as senLBracket
	senRParen     = "@<--@" // \) … same lifetime as senLBracket
	senBacktick   = "@<@"   // \` … protect escaped backticks → restore escaped backticks
	senWrap       = "@@@"   // \\ (flag runs), bold body, link label, fence body
	senURL        = "^^^"   // link target … extract links → unwrap link targets
	senMinusPlain = "@+>@"  // minus outside code … protect plain minuses → restore plain minuses
	senMinusFence = "@<+@"  // minus inside a fence … mark fenced minuses → restore fenced minuses
	senLooseTick  = "@->@"  // backtick outside a fence zone (senLBracket reused)
)

// Opaque arms shared by the span-transform passes. Inside an alternation
// the fence arm must come before the inline arm: Go regexps are
// leftmost-first, and the inline arm would otherwise read the first two
// characters of a fence delimiter as an empty inline span.
const (
	fenceArm  = "```[\\s\\S]+?```"
	inlineArm = "`[^`\\n]*`"
	urlArm    = `\^\^\^.*?\^\^\^`
	zoneArm   = "@@@[\\s\\S]+?@@@"

	codeArms = fenceArm + "|" + inlineArm
)

var (
	reBackslash   = regexp.MustCompile(codeArms + `|(\\)`)
	reUnderscore  = regexp.MustCompile(codeArms + `|(_)`)
	reBoldSpan    = regexp.MustCompile(codeArms + `|(\*{2}.*?\*{2})`)
	reStarBullet  = regexp.MustCompile(codeArms + `|(\n{1,2}\*\s)`)
	reAsterisk    = regexp.MustCompile(codeArms + `|(\*)`)
	reBoldRestore = regexp.MustCompile(`@{3}(.*?)@{3}`)
	reLinkSpan    = regexp.MustCompile(codeArms + `|(!?\[.*?\]\(.*?\))`)
	reLinkParts   = regexp.MustCompile(`!?\[(.*?)\]\((.*?)\)`)
	reBracket     = regexp.MustCompile(codeArms + `|([\[\]()])`)
	reLinkRestore = regexp.MustCompile(`@{3}(.*?)@{3}\^{3}(.*?)\^{3}`)
	reTildeGT     = regexp.MustCompile(codeArms + "|" + urlArm + `|([~>])`)
	reHeading     = regexp.MustCompile(`(?m)(^#+\s.+?\n+)|` + fenceArm)
	reHash        = regexp.MustCompile(codeArms + "|" + urlArm + `|(#)`)
	rePlus        = regexp.MustCompile(`(\+)|\n[\s]*-\s|` + codeArms + "|" + urlArm)
	reNumbered    = regexp.MustCompile(codeArms + `|(\n{1,2}\s*\d{1,2}\.\s)`)
	rePlainMinus  = regexp.MustCompile(fenceArm + `|(-)`)
	reDashBullet  = regexp.MustCompile(`\n{1,2}(\s*)-\s`)
	reMinusLeft   = regexp.MustCompile(`(-)|\n[\s]*-\s|` + codeArms + "|" + urlArm)
	reFenceBody   = regexp.MustCompile("```([\\s\\S]+?)```")
	reLooseTick   = regexp.MustCompile(zoneArm + "|(`)")
	reDoubleTick  = regexp.MustCompile(zoneArm + "|(``)")
	reZoneRestore = regexp.MustCompile("@{3}([\\s\\S]+?)@{3}")
	rePunct       = regexp.MustCompile(codeArms + "|" + urlArm + `|([=|{}.!])`)
	reURLUnwrap   = regexp.MustCompile(`\^{3}(.*?)\^{3}`)
)

var (
	preEscapedProtect = strings.NewReplacer(
		`\[`, senLBracket,
		`\]`, senRBracket,
		`\(`, senLParen,
		`\)`, senRParen,
	)
	preEscapedRestore = strings.NewReplacer(
		senLBracket, `\[`,
		senRBracket, `\]`,
		senLParen, `\(`,
		senRParen, `\)`,
	)
)

// escapeChar prefixes a captured span with a backslash. Doubling a lone
// backslash is the same operation.
func escapeChar(s string) string {
	return `\` + s
}

// wrapBold moves a **…** body into the senWrap sentinel so its markers are
// not read as bullets or escaped by the asterisk pass.
func wrapBold(s string) string {
	return senWrap + strings.TrimSuffix(strings.TrimPrefix(s, "**"), "**") + senWrap
}

// sentinelizeLink splits a [label](target) or ![label](target) construct
// into the label and target sentinels. The image marker is dropped: the
// dialect has no image syntax, the link form is the closest rendering.
func sentinelizeLink(s string) string {
	m := reLinkParts.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	return senWrap + m[1] + senWrap + senURL + m[2] + senURL
}

// headingShape rewrites one captured heading line ("## Some words\n") into
// the heading glyph with a bold body and a full blank line after it.
func headingShape(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	words := strings.Fields(s)
	if len(words) > 0 && strings.HasPrefix(words[0], "#") {
		return headingGlyph + "*" + strings.Join(words[1:], " ") + "*\n\n"
	}
	return s
}

// spaceNumbered re-pads a numbered list line with a full blank line. The
// capture starts with the one or two newlines the pattern consumed.
func spaceNumbered(s string) string {
	rest := s
	for i := 0; i < 2 && strings.HasPrefix(rest, "\n"); i++ {
		rest = rest[1:]
	}
	return "\n\n" + rest
}

// pass is a single text → text rewrite stage.
type pass struct {
	name    string
	flagged bool // runs only when backslash preservation was requested
	apply   func(string) string
}

// passes is the fixed rewrite pipeline, built once. The order is
// load-bearing: every stage either feeds a sentinel to a later stage or
// assumes an earlier stage already protected what it must not touch, so
// entries cannot be reordered without re-deriving the sentinel lifetimes
// documented above. Fenced code, single-line inline code spans and link
// targets ride through the mutating stages inside opaque arms and come out
// byte-identical.
var passes = []pass{
	// Pre-escaped brackets in the input reflect user intent; park them so
	// the blanket bracket pass cannot double-escape them.
	{name: "protect pre-escaped brackets", apply: func(s string) string {
		return preEscapedProtect.Replace(s)
	}},
	// Flag run only: a doubled backslash marks text that was escaped
	// before, keep it out of the doubling pass below.
	{name: "protect doubled backslashes", flagged: true, apply: func(s string) string {
		return strings.ReplaceAll(s, `\\`, senWrap)
	}},
	{name: "protect escaped backticks", apply: func(s string) string {
		return strings.ReplaceAll(s, "\\`", senBacktick)
	}},
	// Every remaining backslash outside code is literal text; double it so
	// it survives the renderer's own escape handling.
	{name: "double backslashes", apply: func(s string) string {
		return replaceAll(s, reBackslash, escapeChar)
	}},
	{name: "restore doubled backslashes", flagged: true, apply: func(s string) string {
		return strings.ReplaceAll(s, senWrap, `\\`)
	}},
	{name: "escape underscores", apply: func(s string) string {
		return replaceAll(s, reUnderscore, escapeChar)
	}},
	// Bold bodies leave the text before the bullet and asterisk passes and
	// come back as the renderer's single-marker bold form.
	{name: "extract bold spans", apply: func(s string) string {
		return replaceAll(s, reBoldSpan, wrapBold)
	}},
	{name: "normalize star bullets", apply: func(s string) string {
		return replaceAll(s, reStarBullet, func(string) string { return "\n\n" + bulletGlyph + " " })
	}},
	{name: "escape asterisks", apply: func(s string) string {
		return replaceAll(s, reAsterisk, escapeChar)
	}},
	{name: "restore bold spans", apply: func(s string) string {
		return reBoldRestore.ReplaceAllString(s, "*${1}*")
	}},
	// Links leave the text before the bracket pass. The label is restored
	// right after it and gets normal text escaping; the target stays inside
	// senURL until the very end so nothing inside it is ever escaped.
	{name: "extract links", apply: func(s string) string {
		return replaceAll(s, reLinkSpan, sentinelizeLink)
	}},
	{name: "escape brackets", apply: func(s string) string {
		return replaceAll(s, reBracket, escapeChar)
	}},
	{name: "restore pre-escaped brackets", apply: func(s string) string {
		return preEscapedRestore.Replace(s)
	}},
	{name: "restore links", apply: func(s string) string {
		return reLinkRestore.ReplaceAllString(s, "[${1}]("+senURL+"${2}"+senURL+")")
	}},
	{name: "escape tildes and quote markers", apply: func(s string) string {
		return replaceAll(s, reTildeGT, escapeChar)
	}},
	// Heading lines become the heading glyph with a bold body. Runs after
	// the asterisk pass so the inserted markers survive it.
	{name: "format headings", apply: func(s string) string {
		return replaceAll(s, reHeading, headingShape)
	}},
	{name: "escape hashes", apply: func(s string) string {
		return replaceAll(s, reHash, escapeChar)
	}},
	{name: "escape plus signs", apply: func(s string) string {
		return replaceAll(s, rePlus, escapeChar)
	}},
	{name: "space numbered lists", apply: func(s string) string {
		return replaceAll(s, reNumbered, spaceNumbered)
	}},
	// Minus dance: park non-code minuses, mark the fenced ones, bring the
	// non-code ones back so the dash-bullet rewrite only ever sees those,
	// then restore fenced minuses untouched and escape what remains.
	{name: "protect plain minuses", apply: func(s string) string {
		return replaceAll(s, rePlainMinus, func(string) string { return senMinusPlain })
	}},
	{name: "mark fenced minuses", apply: func(s string) string {
		return strings.ReplaceAll(s, "-", senMinusFence)
	}},
	{name: "restore plain minuses", apply: func(s string) string {
		return strings.ReplaceAll(s, senMinusPlain, "-")
	}},
	{name: "normalize dash bullets", apply: func(s string) string {
		return reDashBullet.ReplaceAllString(s, "\n\n${1}"+bulletGlyph+" ")
	}},
	{name: "restore fenced minuses", apply: func(s string) string {
		return strings.ReplaceAll(s, senMinusFence, "-")
	}},
	{name: "escape remaining minuses", apply: func(s string) string {
		return replaceAll(s, reMinusLeft, escapeChar)
	}},
	// Backtick handling: fence bodies leave the text whole, every backtick
	// still outside a body is parked, the parked and pre-escaped ones come
	// back, stray doubled backticks are escaped as a pair, and the bodies
	// are re-wrapped verbatim.
	{name: "protect fence bodies", apply: func(s string) string {
		return reFenceBody.ReplaceAllString(s, senWrap+"${1}"+senWrap)
	}},
	{name: "protect loose backticks", apply: func(s string) string {
		return replaceAll(s, reLooseTick, func(string) string { return senLooseTick })
	}},
	{name: "restore escaped backticks", apply: func(s string) string {
		return strings.ReplaceAll(s, senBacktick, "\\`")
	}},
	{name: "restore loose backticks", apply: func(s string) string {
		return strings.ReplaceAll(s, senLooseTick, "`")
	}},
	{name: "escape double backticks", apply: func(s string) string {
		return replaceAll(s, reDoubleTick, func(string) string { return "\\`\\`" })
	}},
	{name: "restore fence bodies", apply: func(s string) string {
		return reZoneRestore.ReplaceAllString(s, "```${1}```")
	}},
	{name: "escape residual punctuation", apply: func(s string) string {
		return replaceAll(s, rePunct, escapeChar)
	}},
	{name: "unwrap link targets", apply: func(s string) string {
		return reURLUnwrap.ReplaceAllString(s, "${1}")
	}},
}
