package escapify

import "github.com/ravinduk/escapify-go/internal/plaintext"

// Fallback strips all markup from markdown and returns plain text: heading
// and emphasis markers dropped, links rendered as "label (target)", fenced
// code kept bare, list items bulleted.
//
// Callers use it to retry delivery without a parse mode when the renderer
// rejects the escaped output.
func Fallback(markdown string) string {
	return plaintext.Render(markdown)
}
