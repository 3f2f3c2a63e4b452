// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format applies conference formatting to a classified document:
// canonical reordering, roman-numeral section numbering, heading
// canonicalization, and typography assignment.
// Implements: prd003-formatting (R1-R4);
//
//	docs/ARCHITECTURE § Formatting Engine.
package format

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/pdiddy/paper-formatter/pkg/types"
)

var (
	romanHeadingPrefixRe  = regexp.MustCompile(`^[ivxlcdm]+\.\s+`)
	arabicHeadingPrefixRe = regexp.MustCompile(`^\d+\.\s+`)
)

// Format returns the post-format state of a document whose citations have
// already been converted: sections reordered into the canonical 16-slot
// sequence, numbered types given roman numerals and ALL-CAPS headings,
// subsections lettered, and font rules assigned by type. citationCount is
// recorded in the output metadata alongside the formatting flags.
//
// The input document is not modified.
func Format(doc types.Document, citationCount int) types.Document {
	sections := reorder(doc.Sections)

	out := make([]types.Section, 0, len(sections))
	counter := 1
	for _, s := range sections {
		cp := s.Clone()
		rule := fontRuleFor(cp.Type)
		cp.FontRule = &rule

		if numberedTypes[cp.Type] {
			numberSection(&cp, counter)
			counter++
		} else {
			fixedHeading(&cp)
		}
		out = append(out, cp)
	}

	meta := make(map[string]any, len(doc.Metadata)+4)
	for k, v := range doc.Metadata {
		meta[k] = v
	}
	meta["formatted"] = true
	meta["ieee_compliant"] = true
	meta["citations_converted"] = true
	meta["citation_count"] = citationCount

	return types.Document{Sections: out, Metadata: meta}
}

// reorder bucket-sorts sections into canonical order. The sort is stable:
// same-type repeats keep their input order. Unknown sections have no
// canonical slot and are dropped from the formatted output; their content
// reaches the reader only through the subsection tree of their parents.
func reorder(sections []types.Section) []types.Section {
	buckets := make(map[types.SectionType][]types.Section)
	for _, s := range sections {
		buckets[s.Type] = append(buckets[s.Type], s)
	}

	var out []types.Section
	for _, t := range types.CanonicalOrder {
		out = append(out, buckets[t]...)
	}
	return out
}

// numberSection assigns the n-th roman numeral, an ALL-CAPS heading, and
// heading typography to a numbered section, then letters its subsections.
func numberSection(s *types.Section, n int) {
	numeral := roman(n)

	if s.OriginalHeading != "" {
		clean := strings.ToLower(s.OriginalHeading)
		clean = romanHeadingPrefixRe.ReplaceAllString(clean, "")
		clean = arabicHeadingPrefixRe.ReplaceAllString(clean, "")
		clean = strings.TrimSpace(clean)

		// Colloquial closers render under the canonical name.
		if strings.Contains(clean, "final thought") || strings.Contains(clean, "final remark") {
			clean = "conclusion"
		}
		s.FormattedHeading = fmt.Sprintf("%s. %s", numeral, strings.ToUpper(clean))
	} else {
		s.FormattedHeading = fmt.Sprintf("%s. %s", numeral, strings.ToUpper(string(s.Type)))
	}
	hr := headingRule
	s.HeadingFontRule = &hr

	for i := range s.Subsections {
		sub := &s.Subsections[i]
		// A heading-less subsection stays heading-less.
		if sub.OriginalHeading == "" {
			sub.FormattedHeading = ""
			continue
		}
		letter := string(rune('A' + i))
		sub.FormattedHeading = fmt.Sprintf("%s. %s", letter, titleCase(sub.OriginalHeading))
		sr := subheadingRule
		sub.HeadingFontRule = &sr
	}
}

// fixedHeading resolves headings for the non-numbered types. Title,
// Authors, and Affiliation carry none; Abstract and Keywords get their
// fixed conference names; anything else keeps its own heading upper-cased,
// or falls back to its type name.
func fixedHeading(s *types.Section) {
	switch s.Type {
	case types.SectionAbstract:
		s.FormattedHeading = "ABSTRACT"
	case types.SectionKeywords:
		s.FormattedHeading = "INDEX TERMS"
	case types.SectionTitle, types.SectionAuthors, types.SectionAffiliation:
		s.FormattedHeading = ""
		return
	default:
		if s.OriginalHeading != "" {
			s.FormattedHeading = strings.ToUpper(s.OriginalHeading)
		} else {
			s.FormattedHeading = strings.ToUpper(string(s.Type))
		}
	}
	hr := headingRule
	s.HeadingFontRule = &hr
}

// titleCase upper-cases the first letter of each word.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
