// Package escapify rewrites loosely-markdownish text into the strict
// escaped dialect Telegram's MarkdownV2 renderer accepts.
//
// The renderer treats a large set of ASCII punctuation as syntax and
// rejects messages containing any occurrence that is neither escaped nor
// structurally valid. LLM output and user text rarely satisfy that, so the
// package runs the input through an ordered chain of rewrite passes that
// normalizes headers, bold spans, links/images and list markers, escapes
// everything else, and leaves fenced code bodies byte-identical.
//
// Core API:
//   - Escape(): transcode text into the escaped dialect
//   - Split(): chunk escaped text under Telegram's message-size limit
//   - Fallback(): strip markup entirely for the plain-text retry path
//
// Example:
//
//	escaped := escapify.Escape(raw)
//	for _, chunk := range escapify.Split(escaped, escapify.DefaultMessageLimit) {
//	    // send chunk with parse_mode=MarkdownV2; on a renderer rejection,
//	    // resend escapify.Fallback(raw) without a parse mode.
//	}
//
// Escape never fails: malformed markup (an unterminated fence, a stray
// backtick, an unmatched bracket) degrades to escaped plain text instead
// of an error. Two caveats are part of the contract: input that already
// contains one of the internal sentinel strings (see pipeline.go) is
// outside the supported domain, and Escape is not idempotent — re-escaping
// escaped text doubles its backslashes unless WithPreservedBackslashes is
// set.
package escapify

// Escape transcodes text into the escaped dialect.
//
// It is pure and safe for concurrent use; each call walks the fixed pass
// pipeline on its own copy of the text and finishes with the backtick
// parity fixer.
func Escape(text string, opts ...Option) string {
	options := applyOptions(opts...)
	for _, p := range passes {
		if p.flagged && !options.PreserveBackslashes {
			continue
		}
		text = p.apply(text)
	}
	return fixBacktickParity(text)
}
