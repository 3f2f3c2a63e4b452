// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package track diffs a document's pre-format and post-format states into
// auditable Fix records. Sections are correlated by identity, never by
// position.
// Implements: prd004-analysis (R3);
//
//	docs/ARCHITECTURE § Change Tracking.
package track

import (
	"fmt"
	"strings"

	"github.com/pdiddy/paper-formatter/pkg/types"
)

// Tracker accumulates the fixes of one before/after comparison. State is
// per-document: construct a fresh Tracker for each pipeline run.
type Tracker struct {
	fixes []types.Fix
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Track compares the two document states and records one Fix per detected
// delta. Sections present in after with no counterpart id in before are
// external additions and produce no fixes.
func (t *Tracker) Track(before, after types.Document) []types.Fix {
	t.fixes = nil

	beforeByID := make(map[string]types.Section, len(before.Sections))
	beforePos := make(map[string]int, len(before.Sections))
	for i, s := range before.Sections {
		beforeByID[s.ID] = s
		beforePos[s.ID] = i
	}

	for afterPos, a := range after.Sections {
		b, ok := beforeByID[a.ID]
		if !ok {
			continue
		}
		t.reordering(b, a, beforePos[a.ID], afterPos)
		t.heading(b, a)
		t.fonts(b, a)
		t.content(b, a)
		t.sectionType(b, a)
	}

	return t.fixes
}

// Fixes returns all recorded fixes.
func (t *Tracker) Fixes() []types.Fix {
	return t.fixes
}

// ByKind returns fixes of one kind.
func (t *Tracker) ByKind(kind string) []types.Fix {
	var out []types.Fix
	for _, f := range t.fixes {
		if f.Type == kind {
			out = append(out, f)
		}
	}
	return out
}

// BySection returns fixes touching one section.
func (t *Tracker) BySection(sectionID string) []types.Fix {
	var out []types.Fix
	for _, f := range t.fixes {
		if f.SectionID == sectionID {
			out = append(out, f)
		}
	}
	return out
}

// Summary describes the recorded fixes in aggregate.
type Summary struct {
	TotalChanges     int            `json:"total_changes" yaml:"total_changes"`
	ChangesByType    map[string]int `json:"changes_by_type" yaml:"changes_by_type"`
	SectionsAffected int            `json:"sections_affected" yaml:"sections_affected"`
}

// Summarize counts fixes per kind and the distinct sections touched.
func (t *Tracker) Summarize() Summary {
	byType := make(map[string]int)
	sections := make(map[string]bool)
	for _, f := range t.fixes {
		byType[f.Type]++
		sections[f.SectionID] = true
	}
	return Summary{
		TotalChanges:     len(t.fixes),
		ChangesByType:    byType,
		SectionsAffected: len(sections),
	}
}

func (t *Tracker) add(f types.Fix) {
	t.fixes = append(t.fixes, f)
}

func (t *Tracker) reordering(b, a types.Section, beforePos, afterPos int) {
	if beforePos == afterPos {
		return
	}
	t.add(types.Fix{
		SectionID: a.ID,
		Type:      types.FixSectionReordering,
		Original:  fmt.Sprintf("Position %d", beforePos+1),
		Formatted: fmt.Sprintf("Position %d", afterPos+1),
		Reason:    fmt.Sprintf("Section '%s' reordered to match the conference format standard sequence", a.Type),
	})
}

func (t *Tracker) heading(b, a types.Section) {
	switch {
	case b.OriginalHeading == "" && a.FormattedHeading != "":
		t.add(types.Fix{
			SectionID: a.ID,
			Type:      types.FixHeadingAdded,
			Formatted: a.FormattedHeading,
			Reason:    fmt.Sprintf("Added compliant heading for %s section", a.Type),
		})
	case b.OriginalHeading != "" && a.FormattedHeading != "" && b.OriginalHeading != a.FormattedHeading:
		t.add(types.Fix{
			SectionID: a.ID,
			Type:      types.FixHeadingFormatting,
			Original:  b.OriginalHeading,
			Formatted: a.FormattedHeading,
			Reason:    "Applied heading format: roman numerals, ALL CAPS, and bold styling",
		})
	}
}

// fonts records a fix the first time a rule appears on a section; rules
// already present before formatting are not re-reported.
func (t *Tracker) fonts(b, a types.Section) {
	if b.FontRule == nil && a.FontRule != nil {
		t.add(types.Fix{
			SectionID: a.ID,
			Type:      types.FixFontFormatting,
			Original:  "No font formatting",
			Formatted: a.FontRule.Describe(),
			Reason:    fmt.Sprintf("Applied font rules for %s section", a.Type),
		})
	}
	if b.HeadingFontRule == nil && a.HeadingFontRule != nil {
		t.add(types.Fix{
			SectionID: a.ID,
			Type:      types.FixHeadingFontFormatting,
			Original:  "No heading font formatting",
			Formatted: a.HeadingFontRule.Describe(),
			Reason:    "Applied heading font rules",
		})
	}
}

// content records a grammar-correction fix when the body changed beyond
// whitespace, described by its word-count delta.
func (t *Tracker) content(b, a types.Section) {
	if b.Content == a.Content {
		return
	}
	diff := a.WordCount - b.WordCount
	if diff == 0 && strings.TrimSpace(b.Content) == strings.TrimSpace(a.Content) {
		return
	}

	reason := "Grammar and spelling corrections applied"
	if diff > 0 {
		reason += fmt.Sprintf(" (+%d words)", diff)
	} else if diff < 0 {
		reason += fmt.Sprintf(" (%d words)", diff)
	}
	t.add(types.Fix{
		SectionID: a.ID,
		Type:      types.FixGrammarCorrection,
		Original:  fmt.Sprintf("%d words", b.WordCount),
		Formatted: fmt.Sprintf("%d words", a.WordCount),
		Reason:    reason,
	})
}

func (t *Tracker) sectionType(b, a types.Section) {
	if b.Type == a.Type {
		return
	}
	t.add(types.Fix{
		SectionID: a.ID,
		Type:      types.FixSectionTypeCorrection,
		Original:  string(b.Type),
		Formatted: string(a.Type),
		Reason:    "Section type detected and corrected based on content and heading keywords",
	})
}
