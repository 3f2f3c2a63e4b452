// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/pdiddy/paper-formatter/pkg/types"
)

// RenderHTML writes a standalone preview page. Font rules become inline
// styles so the preview shows the same typography the docx artifact gets.
func RenderHTML(doc types.Document) []byte {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(documentTitle(doc)))
	b.WriteString("<style>body { max-width: 48rem; margin: 2rem auto; }</style>\n")
	b.WriteString("</head>\n<body>\n")
	for _, s := range doc.Sections {
		writeSectionHTML(&b, s)
	}
	b.WriteString("</body>\n</html>\n")
	return []byte(b.String())
}

func documentTitle(doc types.Document) string {
	for _, s := range doc.Sections {
		if s.Type == types.SectionTitle {
			return s.Content
		}
	}
	return "Formatted Paper"
}

func writeSectionHTML(b *strings.Builder, s types.Section) {
	if s.FormattedHeading != "" {
		tag := "h1"
		if s.IsSubsection {
			tag = "h2"
		}
		fmt.Fprintf(b, "<%s%s>%s</%s>\n",
			tag, styleAttr(s.HeadingFontRule), html.EscapeString(s.FormattedHeading), tag)
	}
	for _, line := range strings.Split(s.Content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fmt.Fprintf(b, "<p%s>%s</p>\n", styleAttr(s.FontRule), html.EscapeString(line))
	}
	for _, sub := range s.Subsections {
		writeSectionHTML(b, sub)
	}
}

func styleAttr(rule *types.FontRule) string {
	if rule == nil {
		return ""
	}
	var props []string
	if rule.Family != "" {
		props = append(props, fmt.Sprintf("font-family: '%s'", rule.Family))
	}
	if rule.Size > 0 {
		props = append(props, fmt.Sprintf("font-size: %dpt", rule.Size))
	}
	if rule.Bold {
		props = append(props, "font-weight: bold")
	}
	if rule.Italic {
		props = append(props, "font-style: italic")
	}
	if rule.Alignment != "" {
		props = append(props, "text-align: "+rule.Alignment)
	}
	if len(props) == 0 {
		return ""
	}
	return fmt.Sprintf(" style=%q", strings.Join(props, "; "))
}
