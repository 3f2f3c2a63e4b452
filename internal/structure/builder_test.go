// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package structure

import (
	"strings"
	"testing"

	"github.com/pdiddy/paper-formatter/pkg/types"
)

func plain(text string) types.Paragraph {
	return types.Paragraph{Text: text, Style: types.StylePlain}
}

func h1(text string) types.Paragraph {
	return types.Paragraph{Text: text, Style: types.StyleHeading1}
}

func h2(text string) types.Paragraph {
	return types.Paragraph{Text: text, Style: types.StyleHeading2}
}

func TestBuildFullManuscript(t *testing.T) {
	doc := Build([]types.Paragraph{
		plain("A Study of Things"),
		plain("Jane Doe"),
		plain("Example University"),
		plain("jane@example.edu"),
		h1("Abstract"),
		plain("We study things."),
		h1("1. Introduction"),
		plain("Things are interesting."),
		plain("We explain why."),
		h1("Conclusion"),
		plain("Things were studied."),
	})

	wantTypes := []types.SectionType{
		types.SectionTitle,
		types.SectionAuthors,
		types.SectionAffiliation,
		types.SectionAbstract,
		types.SectionIntroduction,
		types.SectionConclusion,
	}
	if len(doc.Sections) != len(wantTypes) {
		t.Fatalf("len(sections) = %d, want %d", len(doc.Sections), len(wantTypes))
	}
	for i, want := range wantTypes {
		if doc.Sections[i].Type != want {
			t.Errorf("sections[%d].Type = %v, want %v", i, doc.Sections[i].Type, want)
		}
	}

	if got := doc.Sections[0].Content; got != "A Study of Things" {
		t.Errorf("title content = %q", got)
	}
	if got := doc.Sections[1].Content; got != "Jane Doe" {
		t.Errorf("authors content = %q", got)
	}
	if got := doc.Sections[2].Content; got != "Example University\njane@example.edu" {
		t.Errorf("affiliation content = %q", got)
	}
	intro := doc.Sections[4]
	if intro.OriginalHeading != "1. Introduction" {
		t.Errorf("intro heading = %q", intro.OriginalHeading)
	}
	if intro.Content != "Things are interesting.\nWe explain why." {
		t.Errorf("intro content = %q", intro.Content)
	}
	if intro.WordCount != types.WordCount(intro.Content) {
		t.Errorf("word count invariant broken: %d", intro.WordCount)
	}
}

func TestBuildNoAffiliationFromSinglePreHeadingParagraph(t *testing.T) {
	doc := Build([]types.Paragraph{
		plain("Title"),
		plain("Jane Doe"),
		h1("Introduction"),
		plain("Body."),
	})
	for _, s := range doc.Sections {
		if s.Type == types.SectionAffiliation {
			t.Fatal("affiliation created from a single pre-heading paragraph")
		}
	}
	if doc.Sections[1].Type != types.SectionAuthors {
		t.Errorf("sections[1].Type = %v, want Authors", doc.Sections[1].Type)
	}
}

func TestBuildNeverFabricatesFrontMatter(t *testing.T) {
	doc := Build([]types.Paragraph{
		h1("Introduction"),
		plain("Straight into it."),
	})
	// The heading is the first non-empty paragraph, so it becomes the Title.
	if doc.Sections[0].Type != types.SectionTitle {
		t.Fatalf("sections[0].Type = %v, want Title", doc.Sections[0].Type)
	}
	for _, s := range doc.Sections {
		if s.Type == types.SectionAuthors || s.Type == types.SectionAffiliation {
			t.Errorf("fabricated %v section", s.Type)
		}
	}
}

func TestBuildBoldHeuristicHeading(t *testing.T) {
	doc := Build([]types.Paragraph{
		plain("Title"),
		plain("Jane Doe"),
		{Text: "Methodology", Style: types.StylePlain, FirstRunBold: true},
		plain("We did things."),
		{Text: strings.Repeat("bold but far too long to be a heading ", 4), Style: types.StylePlain, FirstRunBold: true},
	})

	var method *types.Section
	for i := range doc.Sections {
		if doc.Sections[i].Type == types.SectionMethodology {
			method = &doc.Sections[i]
		}
	}
	if method == nil {
		t.Fatal("bold short paragraph did not open a Methodology section")
	}
	// The long bold paragraph stays body text.
	if !strings.Contains(method.Content, "far too long") {
		t.Errorf("long bold paragraph not treated as body: %q", method.Content)
	}
}

func TestBuildSubsections(t *testing.T) {
	doc := Build([]types.Paragraph{
		plain("Title"),
		plain("Jane Doe"),
		h1("Results"),
		plain("Overview paragraph."),
		h2("First Experiment"),
		plain("It worked."),
		plain("Very well."),
		h2("Second Experiment"),
		plain("It also worked."),
	})

	var results *types.Section
	for i := range doc.Sections {
		if doc.Sections[i].Type == types.SectionResults {
			results = &doc.Sections[i]
		}
	}
	if results == nil {
		t.Fatal("no Results section")
	}
	if results.Content != "Overview paragraph." {
		t.Errorf("main content = %q", results.Content)
	}
	if len(results.Subsections) != 2 {
		t.Fatalf("len(subsections) = %d, want 2", len(results.Subsections))
	}
	first := results.Subsections[0]
	if first.OriginalHeading != "First Experiment" {
		t.Errorf("subsection heading = %q", first.OriginalHeading)
	}
	if first.Content != "It worked.\nVery well." {
		t.Errorf("subsection content = %q", first.Content)
	}
	if first.Type != types.SectionUnknown || !first.IsSubsection {
		t.Errorf("subsection classified: type=%v is_subsection=%v", first.Type, first.IsSubsection)
	}
	if results.Subsections[1].Content != "It also worked." {
		t.Errorf("second subsection content = %q", results.Subsections[1].Content)
	}
}

func TestBuildEmptyInput(t *testing.T) {
	doc := Build(nil)
	if len(doc.Sections) != 0 {
		t.Errorf("len(sections) = %d, want 0", len(doc.Sections))
	}
}

func TestBuildUniqueIDs(t *testing.T) {
	doc := Build([]types.Paragraph{
		plain("Title"),
		plain("Jane Doe"),
		h1("Introduction"),
		plain("Body."),
		h1("Conclusion"),
		plain("Done."),
	})
	seen := make(map[string]bool)
	for _, s := range doc.Sections {
		if s.ID == "" {
			t.Fatal("empty section id")
		}
		if seen[s.ID] {
			t.Fatalf("duplicate section id %s", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestApplyEditsSectionCorrections(t *testing.T) {
	doc := Build([]types.Paragraph{
		plain("Title"),
		plain("Jane Doe"),
		h1("Some Ramblings"),
		plain("Actually the methodology."),
	})
	target := doc.Sections[2]
	if target.Type != types.SectionUnknown {
		t.Fatalf("precondition: type = %v", target.Type)
	}

	edited := ApplyEdits(doc, types.UserEdits{
		SectionCorrections: map[string]types.SectionType{target.ID: types.SectionMethodology},
	})

	if edited.Sections[2].Type != types.SectionMethodology {
		t.Errorf("corrected type = %v", edited.Sections[2].Type)
	}
	// Identity survives the correction.
	if edited.Sections[2].ID != target.ID {
		t.Errorf("correction changed section id")
	}
	// Original untouched.
	if doc.Sections[2].Type != types.SectionUnknown {
		t.Errorf("ApplyEdits mutated its input")
	}
}

func TestApplyEditsUpsertsFrontMatter(t *testing.T) {
	doc := Build([]types.Paragraph{
		plain("Title"),
		h1("Abstract"),
		plain("Short."),
	})

	edited := ApplyEdits(doc, types.UserEdits{
		AuthorName:  "Jane Doe",
		AuthorEmail: "jane@example.edu",
		Keywords:    []string{"things", "studies"},
	})

	if edited.Sections[1].Type != types.SectionAuthors {
		t.Fatalf("sections[1].Type = %v, want Authors", edited.Sections[1].Type)
	}
	if edited.Sections[1].Content != "Jane Doe\njane@example.edu" {
		t.Errorf("authors content = %q", edited.Sections[1].Content)
	}

	var kw *types.Section
	for i := range edited.Sections {
		if edited.Sections[i].Type == types.SectionKeywords {
			kw = &edited.Sections[i]
		}
	}
	if kw == nil {
		t.Fatal("keywords section not created")
	}
	if kw.Content != "things, studies" {
		t.Errorf("keywords content = %q", kw.Content)
	}
}

func TestApplyEditsNoFieldsNoNewSections(t *testing.T) {
	doc := Build([]types.Paragraph{
		plain("Title"),
		h1("Introduction"),
		plain("Body."),
	})
	edited := ApplyEdits(doc, types.UserEdits{})
	if len(edited.Sections) != len(doc.Sections) {
		t.Errorf("section count changed: %d -> %d", len(doc.Sections), len(edited.Sections))
	}
}
