// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"testing"

	"github.com/google/uuid"

	"github.com/pdiddy/paper-formatter/pkg/types"
)

func section(t types.SectionType, heading, content string) types.Section {
	s := types.Section{ID: uuid.NewString(), Type: t, OriginalHeading: heading}
	s.SetContent(content)
	return s
}

func sectionTypes(sections []types.Section) []types.SectionType {
	out := make([]types.SectionType, len(sections))
	for i, s := range sections {
		out[i] = s.Type
	}
	return out
}

func TestRoman(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "I"}, {2, "II"}, {4, "IV"}, {7, "VII"}, {9, "IX"}, {11, "XI"}, {40, "XL"},
	}
	for _, tt := range tests {
		if got := roman(tt.n); got != tt.want {
			t.Errorf("roman(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatReorder(t *testing.T) {
	doc := types.Document{Sections: []types.Section{
		section(types.SectionResults, "Results", "r"),
		section(types.SectionIntroduction, "Introduction", "i"),
		section(types.SectionAbstract, "Abstract", "a"),
	}}
	out := Format(doc, 0)
	want := []types.SectionType{types.SectionAbstract, types.SectionIntroduction, types.SectionResults}
	got := sectionTypes(out.Sections)
	if len(got) != len(want) {
		t.Fatalf("types = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("types = %v, want %v", got, want)
		}
	}
}

func TestFormatReorderStableForRepeats(t *testing.T) {
	first := section(types.SectionResults, "Results A", "1")
	second := section(types.SectionResults, "Results B", "2")
	doc := types.Document{Sections: []types.Section{
		second, section(types.SectionIntroduction, "Intro", "i"), first,
	}}
	out := Format(doc, 0)
	if out.Sections[1].ID != second.ID || out.Sections[2].ID != first.ID {
		t.Errorf("same-type repeats lost input order: %v", sectionTypes(out.Sections))
	}
}

func TestFormatNumbering(t *testing.T) {
	doc := types.Document{Sections: []types.Section{
		section(types.SectionIntroduction, "1. Introduction", ""),
		section(types.SectionMethodology, "Methods", ""),
		section(types.SectionConclusion, "Final Thoughts", ""),
	}}
	out := Format(doc, 0)

	if got := out.Sections[0].FormattedHeading; got != "I. INTRODUCTION" {
		t.Errorf("intro heading = %q", got)
	}
	if got := out.Sections[1].FormattedHeading; got != "II. METHODS" {
		t.Errorf("methodology heading = %q", got)
	}
	// "Final Thoughts" canonicalizes to CONCLUSION after numbering.
	if got := out.Sections[2].FormattedHeading; got != "III. CONCLUSION" {
		t.Errorf("conclusion heading = %q", got)
	}
	for _, s := range out.Sections {
		if s.HeadingFontRule == nil || !s.HeadingFontRule.Bold {
			t.Errorf("%v heading rule = %+v, want bold", s.Type, s.HeadingFontRule)
		}
	}
}

func TestFormatNumberingSkipsFrontMatter(t *testing.T) {
	doc := types.Document{Sections: []types.Section{
		section(types.SectionTitle, "", "Paper Title"),
		section(types.SectionAbstract, "Abstract", "body"),
		section(types.SectionKeywords, "Keywords", "a, b"),
		section(types.SectionIntroduction, "Introduction", ""),
	}}
	out := Format(doc, 0)

	if got := out.Sections[0].FormattedHeading; got != "" {
		t.Errorf("title heading = %q, want none", got)
	}
	if got := out.Sections[1].FormattedHeading; got != "ABSTRACT" {
		t.Errorf("abstract heading = %q", got)
	}
	if got := out.Sections[2].FormattedHeading; got != "INDEX TERMS" {
		t.Errorf("keywords heading = %q", got)
	}
	// Numbering starts at the first numbered type, not after front matter.
	if got := out.Sections[3].FormattedHeading; got != "I. INTRODUCTION" {
		t.Errorf("intro heading = %q", got)
	}
}

func TestFormatSubsectionLettering(t *testing.T) {
	parent := section(types.SectionResults, "Results", "")
	sub1 := types.Section{ID: uuid.NewString(), Type: types.SectionUnknown, OriginalHeading: "plastic pollution", IsSubsection: true}
	sub2 := types.Section{ID: uuid.NewString(), Type: types.SectionUnknown, IsSubsection: true}
	parent.Subsections = []types.Section{sub1, sub2}

	out := Format(types.Document{Sections: []types.Section{parent}}, 0)
	subs := out.Sections[0].Subsections
	if len(subs) != 2 {
		t.Fatalf("len(subsections) = %d", len(subs))
	}
	if got := subs[0].FormattedHeading; got != "A. Plastic Pollution" {
		t.Errorf("subs[0] heading = %q", got)
	}
	// No original heading means no invented one.
	if got := subs[1].FormattedHeading; got != "" {
		t.Errorf("subs[1] heading = %q, want none", got)
	}
	if subs[0].HeadingFontRule == nil || !subs[0].HeadingFontRule.Italic || subs[0].HeadingFontRule.Bold {
		t.Errorf("subsection heading rule = %+v, want italic non-bold", subs[0].HeadingFontRule)
	}
	if subs[1].HeadingFontRule != nil {
		t.Errorf("heading-less subsection got a heading rule: %+v", subs[1].HeadingFontRule)
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plastic pollution", "Plastic Pollution"},
		{"ALREADY SHOUTING", "Already Shouting"},
		{"état de l'art", "État De L'art"},
		{"über alles", "Über Alles"},
	}
	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatFontRulesByType(t *testing.T) {
	doc := types.Document{Sections: []types.Section{
		section(types.SectionTitle, "", "T"),
		section(types.SectionAuthors, "", "A"),
		section(types.SectionAffiliation, "", "U"),
		section(types.SectionAbstract, "Abstract", "x"),
		section(types.SectionKeywords, "Keywords", "x"),
		section(types.SectionIntroduction, "Introduction", "x"),
	}}
	out := Format(doc, 0)

	checks := []struct {
		idx    int
		size   int
		bold   bool
		italic bool
		align  string
	}{
		{0, 24, true, false, "center"},
		{1, 10, false, false, "center"},
		{2, 10, false, true, "center"},
		{3, 9, false, false, "justify"},
		{4, 9, false, true, "justify"},
		{5, 10, false, false, "justify"},
	}
	for _, c := range checks {
		r := out.Sections[c.idx].FontRule
		if r == nil {
			t.Fatalf("sections[%d] has no font rule", c.idx)
		}
		if r.Size != c.size || r.Bold != c.bold || r.Italic != c.italic || r.Alignment != c.align {
			t.Errorf("sections[%d] rule = %+v", c.idx, r)
		}
	}
}

func TestFormatMetadataFlags(t *testing.T) {
	doc := types.Document{
		Sections: []types.Section{section(types.SectionIntroduction, "Introduction", "x")},
		Metadata: map[string]any{"total_sections": 1},
	}
	out := Format(doc, 5)

	if out.Metadata["formatted"] != true || out.Metadata["ieee_compliant"] != true {
		t.Errorf("formatting flags missing: %v", out.Metadata)
	}
	if out.Metadata["citations_converted"] != true || out.Metadata["citation_count"] != 5 {
		t.Errorf("citation metadata wrong: %v", out.Metadata)
	}
	if out.Metadata["total_sections"] != 1 {
		t.Errorf("input metadata not carried over: %v", out.Metadata)
	}
	if _, ok := doc.Metadata["formatted"]; ok {
		t.Errorf("Format mutated input metadata")
	}
}

func TestFormatHeadingFallbacksForUnnumberedTypes(t *testing.T) {
	withHeading := section(types.SectionUnknown, "Some Oddity", "x")
	doc := types.Document{Sections: []types.Section{withHeading}}
	out := Format(doc, 0)
	// Unknown sections have no canonical slot and drop out of the
	// formatted sequence.
	if len(out.Sections) != 0 {
		t.Fatalf("unknown section survived reorder: %v", sectionTypes(out.Sections))
	}
}
