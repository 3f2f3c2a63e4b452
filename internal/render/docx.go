// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/pdiddy/paper-formatter/pkg/types"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// RenderDocx writes a minimal OOXML word-processing package. Each section
// contributes a heading paragraph (when formatted) and one paragraph per
// content line, every run carrying the font rule the formatting engine
// attached.
func RenderDocx(doc types.Document) ([]byte, error) {
	var body strings.Builder
	for _, s := range doc.Sections {
		writeSectionXML(&body, s)
	}

	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body.String() + `</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", document},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.data)); err != nil {
			return nil, fmt.Errorf("writing %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing docx package: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSectionXML(b *strings.Builder, s types.Section) {
	if s.FormattedHeading != "" {
		writeParagraphXML(b, s.FormattedHeading, s.HeadingFontRule)
	}
	for _, line := range strings.Split(s.Content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		writeParagraphXML(b, line, s.FontRule)
	}
	for _, sub := range s.Subsections {
		writeSectionXML(b, sub)
	}
}

func writeParagraphXML(b *strings.Builder, text string, rule *types.FontRule) {
	b.WriteString("<w:p>")
	if rule != nil && rule.Alignment != "" {
		fmt.Fprintf(b, `<w:pPr><w:jc w:val=%q/></w:pPr>`, jcValue(rule.Alignment))
	}
	b.WriteString("<w:r>")
	writeRunProps(b, rule)
	fmt.Fprintf(b, `<w:t xml:space="preserve">%s</w:t>`, escapeXML(text))
	b.WriteString("</w:r></w:p>")
}

func writeRunProps(b *strings.Builder, rule *types.FontRule) {
	if rule == nil {
		return
	}
	b.WriteString("<w:rPr>")
	if rule.Family != "" {
		fmt.Fprintf(b, `<w:rFonts w:ascii=%q w:hAnsi=%q/>`, rule.Family, rule.Family)
	}
	if rule.Bold {
		b.WriteString("<w:b/>")
	}
	if rule.Italic {
		b.WriteString("<w:i/>")
	}
	if rule.Size > 0 {
		// OOXML sizes are half-points.
		fmt.Fprintf(b, `<w:sz w:val="%d"/>`, rule.Size*2)
	}
	b.WriteString("</w:rPr>")
}

func jcValue(alignment string) string {
	if alignment == "justify" {
		return "both"
	}
	return alignment
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
