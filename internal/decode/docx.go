// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package decode

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/pdiddy/paper-formatter/pkg/types"
)

// DecodeDocx reads an OOXML word-processing package and flattens the
// document body into paragraphs. Paragraph styles map Heading1/Heading2
// to the heading hints; a bold first run is reported so the structure
// builder can treat unstyled bold lines as headings.
func DecodeDocx(data []byte) ([]types.Paragraph, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening docx package: %w", err)
	}

	body, err := readZipFile(zr, "word/document.xml")
	if err != nil {
		return nil, err
	}

	root, err := xmlquery.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing document.xml: %w", err)
	}

	// Namespace prefixes vary between producers, so match on local names.
	nodes := xmlquery.Find(root, "//*[local-name()='body']/*[local-name()='p']")
	paragraphs := make([]types.Paragraph, 0, len(nodes))
	for _, p := range nodes {
		text := paragraphText(p)
		if strings.TrimSpace(text) == "" {
			continue
		}
		paragraphs = append(paragraphs, types.Paragraph{
			Text:         strings.TrimSpace(text),
			Style:        paragraphStyle(p),
			FirstRunBold: firstRunBold(p),
		})
	}
	return paragraphs, nil
}

func readZipFile(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("docx package has no %s", name)
}

func paragraphText(p *xmlquery.Node) string {
	var b strings.Builder
	for _, t := range xmlquery.Find(p, ".//*[local-name()='t']") {
		b.WriteString(t.InnerText())
	}
	return b.String()
}

func paragraphStyle(p *xmlquery.Node) types.ParagraphStyle {
	style := xmlquery.FindOne(p, "./*[local-name()='pPr']/*[local-name()='pStyle']")
	if style == nil {
		return types.StylePlain
	}
	switch attrValue(style, "val") {
	case "Heading1", "Title":
		return types.StyleHeading1
	case "Heading2":
		return types.StyleHeading2
	}
	return types.StylePlain
}

func firstRunBold(p *xmlquery.Node) bool {
	run := xmlquery.FindOne(p, "./*[local-name()='r']")
	if run == nil {
		return false
	}
	b := xmlquery.FindOne(run, "./*[local-name()='rPr']/*[local-name()='b']")
	if b == nil {
		return false
	}
	// <w:b/> means bold unless explicitly switched off.
	switch attrValue(b, "val") {
	case "0", "false", "off":
		return false
	}
	return true
}

// attrValue matches attributes by local name, ignoring the namespace
// prefix, which varies between producers.
func attrValue(n *xmlquery.Node, local string) string {
	for _, a := range n.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
