// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citations segments a References section into entries, numbers
// them in document order, and rewrites in-text author-year citations to
// numbered markers.
// Implements: prd002-citations (R1-R4);
//
//	docs/ARCHITECTURE § Citation Conversion.
package citations

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/paper-formatter/pkg/types"
)

// Entry-start patterns (R1.1). A line opens a new reference entry when it
// carries existing numbering, a bullet, or an author-name pattern.
var (
	bracketNumRe = regexp.MustCompile(`^\[\d+\]`)
	dotNumRe     = regexp.MustCompile(`^\d+\.`)
	authorLeadRe = regexp.MustCompile(`^[A-Z][a-z]+,\s+[A-Z]`)

	bracketNumPrefixRe = regexp.MustCompile(`^\[\d+\]\s*`)
	dotNumPrefixRe     = regexp.MustCompile(`^\d+\.\s*`)
	bulletPrefixRe     = regexp.MustCompile(`^[•\-*]\s*`)

	// sentenceSplitRe is the fallback segmentation: split on ". " followed
	// by a capital letter when no entry-start pattern matched anything.
	sentenceSplitRe = regexp.MustCompile(`\.\s+([A-Z])`)
)

// In-text citation patterns (R3.1). Evaluated in priority order: the
// parenthesized and bracketed author-year forms are replaced wholesale;
// the narrative "Author (YYYY)" form keeps the author token.
var (
	parenCiteRe   = regexp.MustCompile(`\(([A-Z][a-z]+(?:\s+et\s+al\.)?),?\s+\d{4}\)`)
	bracketCiteRe = regexp.MustCompile(`\[([A-Z][a-z]+(?:\s+et\s+al\.)?),?\s+\d{4}\]`)
	yearCiteRe    = regexp.MustCompile(`([A-Z][a-z]+(?:\s+et\s+al\.)?)\s+\(\d{4}\)`)
)

// Converter rewrites one document's citations. State is per-document:
// reusing a Converter across documents without Reset corrupts numbering.
type Converter struct {
	// numbers maps the raw matched in-text citation to its assigned
	// marker. Discovery order assigns numbers, independent of the
	// References-section numbering; no author/year resolution is
	// performed. A documented approximation, not a defect.
	numbers map[string]int
	next    int
}

// NewConverter returns a Converter with fresh numbering state.
func NewConverter() *Converter {
	c := &Converter{}
	c.Reset()
	return c
}

// Reset clears the in-text numbering map.
func (c *Converter) Reset() {
	c.numbers = make(map[string]int)
	c.next = 1
}

// Count returns the number of distinct in-text citations discovered.
func (c *Converter) Count() int {
	return len(c.numbers)
}

// Convert returns a copy of sections with the References body rewritten to
// numbered entries and in-text citations in every other section rewritten
// to numbered markers. Without a References section the input is returned
// unchanged (R1.4).
func (c *Converter) Convert(sections []types.Section) []types.Section {
	refIdx := -1
	for i, s := range sections {
		if s.Type == types.SectionReferences {
			refIdx = i
			break
		}
	}
	if refIdx == -1 {
		return sections
	}

	entries := SegmentEntries(sections[refIdx].Content)

	out := make([]types.Section, len(sections))
	for i, s := range sections {
		cp := s.Clone()
		if i == refIdx {
			cp.SetContent(formatEntries(entries))
		} else {
			cp.SetContent(c.rewriteInText(cp.Content))
		}
		out[i] = cp
	}
	return out
}

// SegmentEntries splits a References body into individual entries. Lines
// matching an entry-start pattern open a new entry (with the matched
// prefix stripped); blank lines close the current one; other lines
// continue it. When nothing matches on non-empty input, the body is split
// on sentence boundaries instead (R1.2, R1.3).
func SegmentEntries(body string) []string {
	var entries []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			entries = append(entries, strings.Join(current, " "))
			current = nil
		}
	}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		if isEntryStart(line) {
			flush()
			current = append(current, stripEntryPrefix(line))
		} else {
			current = append(current, line)
		}
	}
	flush()

	if len(entries) == 0 && strings.TrimSpace(body) != "" {
		entries = sentenceSplit(body)
	}
	return entries
}

func isEntryStart(line string) bool {
	if bracketNumRe.MatchString(line) || dotNumRe.MatchString(line) {
		return true
	}
	if strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") {
		return true
	}
	return authorLeadRe.MatchString(line)
}

func stripEntryPrefix(line string) string {
	line = bracketNumPrefixRe.ReplaceAllString(line, "")
	line = dotNumPrefixRe.ReplaceAllString(line, "")
	line = bulletPrefixRe.ReplaceAllString(line, "")
	return strings.TrimSpace(line)
}

// sentenceSplit is the last-resort segmentation: each sentence-like block
// becomes one entry, with its trailing period restored.
func sentenceSplit(body string) []string {
	parts := sentenceSplitRe.Split(body, -1)
	caps := sentenceSplitRe.FindAllStringSubmatch(body, -1)

	var entries []string
	for i, p := range parts {
		// The captured capital is the first letter of the next entry; glue
		// it back before trimming so one-letter words ("A third") survive.
		if i > 0 && i-1 < len(caps) {
			p = caps[i-1][1] + p
		}
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.HasSuffix(p, ".") {
			p += "."
		}
		entries = append(entries, p)
	}
	return entries
}

// formatEntries renders entries as "[i] entry" blocks separated by blank
// lines, preserving document order (R2: never re-sorted by author or year).
func formatEntries(entries []string) string {
	blocks := make([]string, len(entries))
	for i, e := range entries {
		blocks[i] = fmt.Sprintf("[%d] %s", i+1, e)
	}
	return strings.Join(blocks, "\n\n")
}

// rewriteInText replaces author-year citations with numbered markers.
func (c *Converter) rewriteInText(content string) string {
	content = parenCiteRe.ReplaceAllStringFunc(content, c.marker)
	content = bracketCiteRe.ReplaceAllStringFunc(content, c.marker)
	content = yearCiteRe.ReplaceAllStringFunc(content, func(m string) string {
		author := yearCiteRe.FindStringSubmatch(m)[1]
		return author + " " + c.marker(m)
	})
	return content
}

// marker returns the numbered marker for a raw citation string, assigning
// the next integer on first sight.
func (c *Converter) marker(raw string) string {
	key := strings.TrimSpace(raw)
	n, ok := c.numbers[key]
	if !ok {
		n = c.next
		c.numbers[key] = n
		c.next++
	}
	return fmt.Sprintf("[%d]", n)
}
