// Package plaintext renders markdown as unformatted text for the
// send-without-parse-mode retry path.
package plaintext

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Render parses markdown and walks the AST emitting only content: inline
// markup contributes its text, links and images keep their target in
// parentheses, code blocks contribute their bare body.
func Render(markdown string) string {
	source := []byte(markdown)
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	root := md.Parser().Parse(text.NewReader(source))

	var b strings.Builder
	ordinals := make(map[ast.Node]int)

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Text:
			if entering {
				b.Write(node.Segment.Value(source))
				if node.SoftLineBreak() || node.HardLineBreak() {
					b.WriteByte('\n')
				}
			}
		case *ast.String:
			if entering {
				b.Write(node.Value)
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			if entering {
				writeLines(&b, source, n)
				b.WriteByte('\n')
				return ast.WalkSkipChildren, nil
			}
		case *ast.AutoLink:
			if entering {
				b.Write(node.URL(source))
			}
		case *ast.Link:
			if !entering {
				b.WriteString(" (")
				b.Write(node.Destination)
				b.WriteByte(')')
			}
		case *ast.Image:
			if !entering {
				b.WriteString(" (")
				b.Write(node.Destination)
				b.WriteByte(')')
			}
		case *ast.ListItem:
			if entering {
				if list, ok := node.Parent().(*ast.List); ok && list.IsOrdered() {
					ordinals[list]++
					b.WriteString(strconv.Itoa(list.Start + ordinals[list] - 1))
					b.WriteString(". ")
				} else {
					b.WriteString("• ")
				}
			} else {
				b.WriteByte('\n')
			}
		case *ast.Paragraph, *ast.Heading:
			if !entering && !insideListItem(n) {
				b.WriteString("\n\n")
			}
		case *ast.ThematicBreak:
			if !entering {
				b.WriteString("\n\n")
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimRight(b.String(), "\n")
}

func insideListItem(n ast.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if _, ok := p.(*ast.ListItem); ok {
			return true
		}
	}
	return false
}

func writeLines(b *strings.Builder, source []byte, n ast.Node) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
}
