// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/pdiddy/paper-formatter/pkg/types"
)

func section(t types.SectionType, formattedHeading string, words int) types.Section {
	s := types.Section{ID: uuid.NewString(), Type: t, FormattedHeading: formattedHeading}
	s.SetContent(strings.TrimSpace(strings.Repeat("word ", words)))
	return s
}

func compliantDoc() types.Document {
	return types.Document{Sections: []types.Section{
		section(types.SectionTitle, "", 3),
		section(types.SectionAuthors, "", 2),
		section(types.SectionAffiliation, "", 4),
		section(types.SectionAbstract, "ABSTRACT", 200),
		section(types.SectionKeywords, "INDEX TERMS", 5),
		section(types.SectionIntroduction, "I. INTRODUCTION", 50),
		section(types.SectionMethodology, "II. METHODOLOGY", 50),
		section(types.SectionResults, "III. RESULTS", 50),
		section(types.SectionConclusion, "IV. CONCLUSION", 50),
		section(types.SectionReferences, "V. REFERENCES", 50),
	}}
}

func TestWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, w := range Weights {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-3 {
		t.Errorf("weights sum = %f, want 1.0", sum)
	}
}

func TestCalculateCompliantDocument(t *testing.T) {
	// Front matter never carries a heading; a fully formatted paper with
	// Authors and Affiliation present still scores 100.
	got := Calculate(compliantDoc(), nil)
	if got.Score != 100.0 {
		t.Errorf("score = %v, want 100 (breakdown %v)", got.Score, got.Breakdown)
	}
	if got.Breakdown[ComponentHeadingHierarchy] != 1.0 {
		t.Errorf("heading_hierarchy = %v, want 1", got.Breakdown[ComponentHeadingHierarchy])
	}
}

func TestHeadingHierarchyIgnoresFrontMatter(t *testing.T) {
	doc := types.Document{Sections: []types.Section{
		section(types.SectionTitle, "", 3),
		section(types.SectionAuthors, "", 2),
		section(types.SectionAffiliation, "", 4),
		section(types.SectionIntroduction, "I. INTRODUCTION", 50),
		section(types.SectionResults, "", 50),
	}}
	got := Calculate(doc, nil)
	// Only Introduction and Results count; front matter stays out of the
	// denominator.
	if got.Breakdown[ComponentHeadingHierarchy] != 0.5 {
		t.Errorf("heading_hierarchy = %v, want 0.5", got.Breakdown[ComponentHeadingHierarchy])
	}
}

func TestCalculateTitleOnly(t *testing.T) {
	doc := types.Document{Sections: []types.Section{section(types.SectionTitle, "", 3)}}
	issues := []types.Issue{}
	for i := 0; i < 7; i++ {
		issues = append(issues, types.Issue{Type: types.IssueMissingSection, Severity: types.SeverityHigh})
	}
	got := Calculate(doc, issues)

	if got.Breakdown[ComponentRequiredSections] != 0 {
		t.Errorf("required_sections = %v, want 0", got.Breakdown[ComponentRequiredSections])
	}
	if got.Breakdown[ComponentAbstractCompliance] != 0 {
		t.Errorf("abstract_compliance = %v, want 0", got.Breakdown[ComponentAbstractCompliance])
	}
	// Seven high issues floor the consistency component.
	if got.Breakdown[ComponentFormattingConsistency] != 0 {
		t.Errorf("formatting_consistency = %v, want 0", got.Breakdown[ComponentFormattingConsistency])
	}
	// No sections need headings, so hierarchy is vacuously perfect.
	if got.Breakdown[ComponentHeadingHierarchy] != 1.0 {
		t.Errorf("heading_hierarchy = %v, want 1", got.Breakdown[ComponentHeadingHierarchy])
	}
	if got.Score < 0 || got.Score > 100 {
		t.Errorf("score out of range: %v", got.Score)
	}
}

func TestAbstractBoundaries(t *testing.T) {
	tests := []struct {
		words int
		want  float64
	}{
		{149, 0.6}, {150, 1.0}, {250, 1.0}, {251, 0.6},
	}
	for _, tt := range tests {
		doc := types.Document{Sections: []types.Section{
			section(types.SectionAbstract, "ABSTRACT", tt.words),
		}}
		got := Calculate(doc, nil)
		if got.Breakdown[ComponentAbstractCompliance] != tt.want {
			t.Errorf("words=%d: abstract_compliance = %v, want %v",
				tt.words, got.Breakdown[ComponentAbstractCompliance], tt.want)
		}
	}
}

func TestSectionOrderPenalty(t *testing.T) {
	doc := compliantDoc()
	issues := []types.Issue{{Type: types.IssueSectionOrder, Severity: types.SeverityMedium}}
	got := Calculate(doc, issues)
	if got.Breakdown[ComponentSectionOrder] != 0.7 {
		t.Errorf("section_order = %v, want 0.7", got.Breakdown[ComponentSectionOrder])
	}
	// 100 - 0.25*0.3*100 = 92.5
	if got.Score != 92.5 {
		t.Errorf("score = %v, want 92.5", got.Score)
	}
}

func TestHeadingHierarchyFraction(t *testing.T) {
	doc := types.Document{Sections: []types.Section{
		section(types.SectionIntroduction, "I. INTRODUCTION", 50),
		section(types.SectionResults, "", 50),
	}}
	got := Calculate(doc, nil)
	if got.Breakdown[ComponentHeadingHierarchy] != 0.5 {
		t.Errorf("heading_hierarchy = %v, want 0.5", got.Breakdown[ComponentHeadingHierarchy])
	}
}

func TestScoreRounding(t *testing.T) {
	// required 5/7 with everything else perfect produces a repeating
	// fraction that must round to two decimals.
	doc := compliantDoc()
	var trimmed []types.Section
	for _, s := range doc.Sections {
		if s.Type == types.SectionKeywords || s.Type == types.SectionReferences {
			continue
		}
		trimmed = append(trimmed, s)
	}
	got := Calculate(types.Document{Sections: trimmed}, nil)
	// 0.30*(5/7) + 0.25 + 0.20 + 0.15 + 0.10 = 0.914285... -> 91.43
	if got.Score != 91.43 {
		t.Errorf("score = %v, want 91.43", got.Score)
	}
}
