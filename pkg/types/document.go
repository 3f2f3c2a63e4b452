// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the paper-formatter
// pipeline: sections, documents, typography rules, and analysis records.
// Per prd001-structure R1, docs/ARCHITECTURE § Data Model.
package types

import (
	"fmt"
	"strings"
)

// SectionType classifies a top-level section of an academic paper.
// The set is closed; headings that match no classifier rule map to
// SectionUnknown.
type SectionType string

const (
	SectionTitle            SectionType = "Title"
	SectionAuthors          SectionType = "Authors"
	SectionAffiliation      SectionType = "Affiliation"
	SectionAbstract         SectionType = "Abstract"
	SectionKeywords         SectionType = "Keywords"
	SectionIntroduction     SectionType = "Introduction"
	SectionRelatedWork      SectionType = "Related Work"
	SectionLiteratureReview SectionType = "Literature Review"
	SectionMethodology      SectionType = "Methodology"
	SectionResults          SectionType = "Results"
	SectionDiscussion       SectionType = "Discussion"
	SectionConclusion       SectionType = "Conclusion"
	SectionFutureWork       SectionType = "Future Work"
	SectionAcknowledgments  SectionType = "Acknowledgments"
	SectionReferences       SectionType = "References"
	SectionAppendix         SectionType = "Appendix"
	SectionUnknown          SectionType = "Unknown"
)

// CanonicalOrder is the fixed 16-slot section sequence of a compliant
// conference paper. Reordering, order checking, and scoring all derive
// positions from this single table. SectionUnknown has no slot.
var CanonicalOrder = []SectionType{
	SectionTitle,
	SectionAuthors,
	SectionAffiliation,
	SectionAbstract,
	SectionKeywords,
	SectionIntroduction,
	SectionRelatedWork,
	SectionLiteratureReview,
	SectionMethodology,
	SectionResults,
	SectionDiscussion,
	SectionConclusion,
	SectionFutureWork,
	SectionAcknowledgments,
	SectionReferences,
	SectionAppendix,
}

// RequiredSections lists the section types a conference paper must carry.
var RequiredSections = []SectionType{
	SectionAbstract,
	SectionKeywords,
	SectionIntroduction,
	SectionMethodology,
	SectionResults,
	SectionConclusion,
	SectionReferences,
}

// canonicalIndex maps each ordered type to its slot.
var canonicalIndex = func() map[SectionType]int {
	m := make(map[SectionType]int, len(CanonicalOrder))
	for i, t := range CanonicalOrder {
		m[t] = i
	}
	return m
}()

// CanonicalIndex returns the canonical slot of t and whether t has one.
// SectionUnknown (and any type outside the table) reports false.
func CanonicalIndex(t SectionType) (int, bool) {
	i, ok := canonicalIndex[t]
	return i, ok
}

// NeedsHeading reports whether sections of type t are expected to carry a
// heading. Every type except Title does.
func NeedsHeading(t SectionType) bool {
	return t != SectionTitle
}

// FontRule is an immutable typography descriptor assigned to a section's
// body or heading. Alignment is one of "left", "center", "justify".
type FontRule struct {
	Family    string `json:"font_family" yaml:"font_family"`
	Size      int    `json:"font_size" yaml:"font_size"`
	Bold      bool   `json:"bold" yaml:"bold"`
	Italic    bool   `json:"italic" yaml:"italic"`
	Alignment string `json:"alignment" yaml:"alignment"`
}

// Describe renders the rule for audit records, e.g.
// "Times New Roman, 10pt, Bold, Regular, Justify aligned".
func (f FontRule) Describe() string {
	weight := "Normal"
	if f.Bold {
		weight = "Bold"
	}
	style := "Regular"
	if f.Italic {
		style = "Italic"
	}
	align := f.Alignment
	if align != "" {
		align = strings.ToUpper(align[:1]) + align[1:]
	}
	return fmt.Sprintf("%s, %dpt, %s, %s, %s aligned", f.Family, f.Size, weight, style, align)
}

// Section is one structural unit of a paper. Identity (ID) is assigned once
// by the structure builder and preserved through classification correction,
// citation rewriting, and formatting, so before/after states can be
// correlated by identity rather than position.
type Section struct {
	ID               string      `json:"id" yaml:"id"`
	Type             SectionType `json:"type" yaml:"type"`
	Content          string      `json:"content" yaml:"content"`
	OriginalHeading  string      `json:"original_heading,omitempty" yaml:"original_heading,omitempty"`
	FormattedHeading string      `json:"formatted_heading,omitempty" yaml:"formatted_heading,omitempty"`

	// WordCount is the whitespace-token count of Content.
	WordCount int `json:"word_count" yaml:"word_count"`

	FontRule        *FontRule `json:"font_rule,omitempty" yaml:"font_rule,omitempty"`
	HeadingFontRule *FontRule `json:"heading_font_rule,omitempty" yaml:"heading_font_rule,omitempty"`

	// Subsections is the single permitted nesting level. Subsections are
	// never independently classified and never nest further.
	Subsections  []Section `json:"subsections,omitempty" yaml:"subsections,omitempty"`
	IsSubsection bool      `json:"is_subsection,omitempty" yaml:"is_subsection,omitempty"`
}

// SetContent replaces the body text and keeps the word-count invariant.
func (s *Section) SetContent(content string) {
	s.Content = content
	s.WordCount = WordCount(content)
}

// Clone returns a deep copy of the section, including font rules and
// subsections. Pipeline stages mutate copies, never their inputs.
func (s Section) Clone() Section {
	c := s
	if s.FontRule != nil {
		fr := *s.FontRule
		c.FontRule = &fr
	}
	if s.HeadingFontRule != nil {
		hr := *s.HeadingFontRule
		c.HeadingFontRule = &hr
	}
	if s.Subsections != nil {
		c.Subsections = make([]Section, len(s.Subsections))
		for i, sub := range s.Subsections {
			c.Subsections[i] = sub.Clone()
		}
	}
	return c
}

// WordCount counts whitespace-separated tokens in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Document is an ordered list of sections plus free-form metadata. The same
// type serves both pipeline states: pre-format (classified) and post-format
// (reordered, numbered, scored); metadata flags distinguish them.
type Document struct {
	Sections []Section      `json:"sections" yaml:"sections"`
	Metadata map[string]any `json:"metadata" yaml:"metadata"`
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	c := Document{
		Sections: make([]Section, len(d.Sections)),
		Metadata: make(map[string]any, len(d.Metadata)),
	}
	for i, s := range d.Sections {
		c.Sections[i] = s.Clone()
	}
	for k, v := range d.Metadata {
		c.Metadata[k] = v
	}
	return c
}

// TotalWords sums the word counts of all top-level sections.
func (d Document) TotalWords() int {
	total := 0
	for _, s := range d.Sections {
		total += s.WordCount
	}
	return total
}

// ParagraphStyle is the style hint a decoder attaches to a paragraph.
type ParagraphStyle string

const (
	StylePlain    ParagraphStyle = "plain"
	StyleHeading1 ParagraphStyle = "heading1"
	StyleHeading2 ParagraphStyle = "heading2"
)

// Paragraph is one unit of decoder output: trimmed text, a style hint, and
// whether the first run of the paragraph is bold. Decoders must preserve
// manuscript order and never silently drop paragraphs.
// Per prd005-io R1.
type Paragraph struct {
	Text         string         `json:"text" yaml:"text"`
	Style        ParagraphStyle `json:"style" yaml:"style"`
	FirstRunBold bool           `json:"first_run_bold,omitempty" yaml:"first_run_bold,omitempty"`
}
