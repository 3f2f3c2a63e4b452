// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citations

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/pdiddy/paper-formatter/pkg/types"
)

func section(t types.SectionType, content string) types.Section {
	s := types.Section{ID: uuid.NewString(), Type: t}
	s.SetContent(content)
	return s
}

func TestSegmentEntriesAuthorPattern(t *testing.T) {
	entries := SegmentEntries("Smith, J. (2020). A.\n\nJones, A. (2021). B.")
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0] != "Smith, J. (2020). A." {
		t.Errorf("entries[0] = %q", entries[0])
	}
	if entries[1] != "Jones, A. (2021). B." {
		t.Errorf("entries[1] = %q", entries[1])
	}
}

func TestSegmentEntriesNumberedAndBulleted(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			"bracket numbers stripped",
			"[1] First entry.\n[2] Second entry.",
			[]string{"First entry.", "Second entry."},
		},
		{
			"dot numbers stripped",
			"1. First entry.\n2. Second entry.",
			[]string{"First entry.", "Second entry."},
		},
		{
			"bullets stripped",
			"• First entry.\n- Second entry.\n* Third entry.",
			[]string{"First entry.", "Second entry.", "Third entry."},
		},
		{
			"continuation lines joined",
			"[1] First entry\nspanning two lines.\n[2] Second entry.",
			[]string{"First entry spanning two lines.", "Second entry."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentEntries(tt.body)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d (%q)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("entries[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSegmentEntriesUnstructuredBlock(t *testing.T) {
	// A single run of lines with no entry markers collapses into one entry;
	// segmentation never throws on unparseable input.
	entries := SegmentEntries("some obscure reference\nwith a second line")
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1 (%q)", len(entries), entries)
	}
	if entries[0] != "some obscure reference with a second line" {
		t.Errorf("entries[0] = %q", entries[0])
	}
}

func TestSentenceSplitFallback(t *testing.T) {
	entries := sentenceSplit("first obscure reference. Another obscure reference. A third one")
	want := []string{
		"first obscure reference.",
		"Another obscure reference.",
		"A third one.",
	}
	if len(entries) != len(want) {
		t.Fatalf("len = %d, want %d (%q)", len(entries), len(want), entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i], want[i])
		}
	}
}

func TestSegmentEntriesEmptyBody(t *testing.T) {
	if got := SegmentEntries(""); len(got) != 0 {
		t.Errorf("entries = %q, want none", got)
	}
}

func TestConvertNoReferencesIsNoop(t *testing.T) {
	sections := []types.Section{
		section(types.SectionIntroduction, "As shown by (Smith, 2020), things happen."),
	}
	c := NewConverter()
	out := c.Convert(sections)
	if out[0].Content != sections[0].Content {
		t.Errorf("content rewritten without a References section: %q", out[0].Content)
	}
	if c.Count() != 0 {
		t.Errorf("Count() = %d, want 0", c.Count())
	}
}

func TestConvertReferencesNumbering(t *testing.T) {
	sections := []types.Section{
		section(types.SectionReferences, "Smith, J. (2020). A.\n\nJones, A. (2021). B."),
	}
	out := NewConverter().Convert(sections)
	body := out[0].Content
	first := strings.Index(body, "[1] Smith, J. (2020). A.")
	second := strings.Index(body, "[2] Jones, A. (2021). B.")
	if first == -1 || second == -1 || first > second {
		t.Errorf("converted body = %q", body)
	}
	// Order preservation: entries are never re-sorted, so the 2021 entry
	// listed first keeps number 1.
	reordered := []types.Section{
		section(types.SectionReferences, "Jones, A. (2021). B.\n\nSmith, J. (2020). A."),
	}
	body = NewConverter().Convert(reordered)[0].Content
	if !strings.HasPrefix(body, "[1] Jones, A. (2021). B.") {
		t.Errorf("entries re-sorted: %q", body)
	}
}

func TestConvertInTextPatterns(t *testing.T) {
	sections := []types.Section{
		section(types.SectionIntroduction,
			"Early work (Smith, 2020) and [Jones et al., 2021] matter. Brown (2019) agreed with (Smith, 2020)."),
		section(types.SectionReferences, "Smith, J. (2020). A."),
	}
	c := NewConverter()
	out := c.Convert(sections)
	got := out[0].Content

	if !strings.Contains(got, "Early work [1]") {
		t.Errorf("paren citation not rewritten: %q", got)
	}
	if !strings.Contains(got, "[2] matter") {
		t.Errorf("bracket citation not rewritten: %q", got)
	}
	// Narrative form keeps the author token.
	if !strings.Contains(got, "Brown [3]") {
		t.Errorf("narrative citation lost author: %q", got)
	}
	// Repeated raw citation reuses its number.
	if !strings.Contains(got, "agreed with [1].") {
		t.Errorf("repeat citation renumbered: %q", got)
	}
	if c.Count() != 3 {
		t.Errorf("Count() = %d, want 3", c.Count())
	}
}

func TestConvertDoesNotMutateInput(t *testing.T) {
	sections := []types.Section{
		section(types.SectionIntroduction, "(Smith, 2020) said so."),
		section(types.SectionReferences, "Smith, J. (2020). A."),
	}
	before := sections[0].Content
	NewConverter().Convert(sections)
	if sections[0].Content != before {
		t.Errorf("Convert mutated its input")
	}
}

func TestConverterResetClearsNumbering(t *testing.T) {
	c := NewConverter()
	docA := []types.Section{
		section(types.SectionIntroduction, "(Smith, 2020) and (Jones, 2021)."),
		section(types.SectionReferences, "Smith, J. (2020). A."),
	}
	c.Convert(docA)
	if c.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", c.Count())
	}

	c.Reset()
	docB := []types.Section{
		section(types.SectionIntroduction, "(Brown, 2019) only."),
		section(types.SectionReferences, "Brown, C. (2019). D."),
	}
	out := c.Convert(docB)
	if !strings.Contains(out[0].Content, "[1]") {
		t.Errorf("numbering did not restart after Reset: %q", out[0].Content)
	}
	if c.Count() != 1 {
		t.Errorf("Count() = %d, want 1", c.Count())
	}
}
