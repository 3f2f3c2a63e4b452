// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package decode turns uploaded manuscript files into the ordered
// paragraph stream the structure builder consumes. Decoders preserve
// manuscript order and never silently drop paragraphs.
// Implements: prd005-io (R1);
//
//	docs/ARCHITECTURE § Input Decoding.
package decode

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/paper-formatter/pkg/types"
)

// Decode dispatches on the file extension: .docx manuscripts go through
// the OOXML decoder, .md/.markdown through the Markdown decoder, and
// everything else is treated as plain text.
func Decode(filename string, data []byte) ([]types.Paragraph, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".docx":
		paragraphs, err := DecodeDocx(data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", filepath.Base(filename), err)
		}
		return paragraphs, nil
	case ".md", ".markdown":
		return DecodeMarkdown(data), nil
	default:
		return DecodeText(data), nil
	}
}

// DecodeText splits plain text into paragraphs on blank lines. Lines
// inside a block stay newline-joined so downstream line-oriented parsing
// (reference segmentation) still sees them.
func DecodeText(data []byte) []types.Paragraph {
	var paragraphs []types.Paragraph
	var block []string

	flush := func() {
		if len(block) == 0 {
			return
		}
		paragraphs = append(paragraphs, types.Paragraph{
			Text:  strings.Join(block, "\n"),
			Style: types.StylePlain,
		})
		block = nil
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		block = append(block, strings.TrimSpace(line))
	}
	flush()
	return paragraphs
}
