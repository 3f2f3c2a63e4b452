// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// IssueSeverity grades a compliance finding.
type IssueSeverity string

const (
	SeverityHigh   IssueSeverity = "high"
	SeverityMedium IssueSeverity = "medium"
	SeverityLow    IssueSeverity = "low"
)

// Issue kinds emitted by the inspector. Per prd004-analysis R1.
const (
	IssueMissingSection    = "missing_required_section"
	IssueSectionOrder      = "section_out_of_order"
	IssueAbstractWordCount = "abstract_word_count_violation"
	IssueMissingHeading    = "missing_section_heading"
)

// Issue is one advisory non-compliance finding. Issues never mutate the
// document they describe.
type Issue struct {
	Type     string        `json:"type" yaml:"type"`
	Section  string        `json:"section,omitempty" yaml:"section,omitempty"`
	Severity IssueSeverity `json:"severity" yaml:"severity"`
	Message  string        `json:"message" yaml:"message"`
	Current  any           `json:"current,omitempty" yaml:"current,omitempty"`
	Expected any           `json:"expected,omitempty" yaml:"expected,omitempty"`
}

// Fix kinds emitted by the change tracker. Per prd004-analysis R3.
const (
	FixSectionReordering     = "section_reordering"
	FixHeadingAdded          = "heading_added"
	FixHeadingFormatting     = "heading_formatting"
	FixFontFormatting        = "font_formatting"
	FixHeadingFontFormatting = "heading_font_formatting"
	FixGrammarCorrection     = "grammar_correction"
	FixSectionTypeCorrection = "section_type_correction"
)

// Fix is one audit record of a single before/after formatting delta.
type Fix struct {
	SectionID string `json:"section_id" yaml:"section_id"`
	Type      string `json:"type" yaml:"type"`
	Original  string `json:"original,omitempty" yaml:"original,omitempty"`
	Formatted string `json:"formatted,omitempty" yaml:"formatted,omitempty"`
	Reason    string `json:"reason" yaml:"reason"`
}

// ComplianceScore is the weighted 0-100 aggregate of the five structural
// and typographic sub-scores. Weights sum to 1.0.
type ComplianceScore struct {
	Score     float64            `json:"score" yaml:"score"`
	Breakdown map[string]float64 `json:"breakdown" yaml:"breakdown"`
	Weights   map[string]float64 `json:"weights" yaml:"weights"`
}

// Result bundles everything one pipeline run produces for a manuscript.
type Result struct {
	Status     string          `json:"status" yaml:"status"`
	Before     Document        `json:"document_before" yaml:"document_before"`
	After      Document        `json:"document_after" yaml:"document_after"`
	Issues     []Issue         `json:"issues" yaml:"issues"`
	Fixes      []Fix           `json:"fixes" yaml:"fixes"`
	Compliance ComplianceScore `json:"compliance" yaml:"compliance"`
	Metadata   map[string]any  `json:"metadata" yaml:"metadata"`
}

// UserEdits carries author-provided corrections applied to a classified
// document before re-formatting. Nothing is ever auto-generated: a section
// is created or changed only when the corresponding field is set.
type UserEdits struct {
	AuthorName  string   `json:"author_name,omitempty" yaml:"author_name,omitempty"`
	AuthorEmail string   `json:"author_email,omitempty" yaml:"author_email,omitempty"`
	Affiliation string   `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
	Keywords    []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// SectionCorrections maps section IDs to the type the author says the
	// section actually is.
	SectionCorrections map[string]SectionType `json:"section_corrections,omitempty" yaml:"section_corrections,omitempty"`
}
