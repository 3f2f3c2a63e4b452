// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package decode

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"

	"github.com/pdiddy/paper-formatter/pkg/types"
)

// DecodeMarkdown walks the goldmark AST and flattens block nodes into
// paragraphs. Manuscripts use # for the title and ## for main sections,
// so headings through level 2 become main-heading hints and deeper
// headings subheading hints; a paragraph opening with strong emphasis is
// flagged bold for the structure builder's heading heuristic.
func DecodeMarkdown(data []byte) []types.Paragraph {
	md := goldmark.New()
	doc := md.Parser().Parse(gtext.NewReader(data))

	var paragraphs []types.Paragraph
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		switch n := node.(type) {
		case *ast.Heading:
			style := types.StyleHeading2
			if n.Level <= 2 {
				style = types.StyleHeading1
			}
			text := nodeText(n, data)
			if text == "" {
				continue
			}
			paragraphs = append(paragraphs, types.Paragraph{Text: text, Style: style})
		case *ast.Paragraph, *ast.TextBlock:
			text := nodeText(node, data)
			if text == "" {
				continue
			}
			paragraphs = append(paragraphs, types.Paragraph{
				Text:         text,
				Style:        types.StylePlain,
				FirstRunBold: startsStrong(node),
			})
		case *ast.List:
			// Lists flatten to one paragraph per item, line-joined so
			// reference entries keep their own lines.
			for item := n.FirstChild(); item != nil; item = item.NextSibling() {
				text := nodeText(item, data)
				if text == "" {
					continue
				}
				paragraphs = append(paragraphs, types.Paragraph{Text: text, Style: types.StylePlain})
			}
		}
	}
	return paragraphs
}

func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := node.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteString("\n")
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func startsStrong(n ast.Node) bool {
	first := n.FirstChild()
	if first == nil {
		return false
	}
	em, ok := first.(*ast.Emphasis)
	return ok && em.Level >= 2
}
