// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package score computes the weighted 0-100 compliance estimate from a
// formatted document and the issues found in its pre-format state.
// Implements: prd004-analysis (R2);
//
//	docs/ARCHITECTURE § Compliance Scoring.
package score

import (
	"math"

	"github.com/pdiddy/paper-formatter/internal/inspect"
	"github.com/pdiddy/paper-formatter/pkg/types"
)

// Component names and weights. The weights sum to 1.0.
const (
	ComponentRequiredSections      = "required_sections"
	ComponentSectionOrder          = "section_order"
	ComponentAbstractCompliance    = "abstract_compliance"
	ComponentHeadingHierarchy      = "heading_hierarchy"
	ComponentFormattingConsistency = "formatting_consistency"
)

// Weights is the read-only component weighting.
var Weights = map[string]float64{
	ComponentRequiredSections:      0.30,
	ComponentSectionOrder:          0.25,
	ComponentAbstractCompliance:    0.20,
	ComponentHeadingHierarchy:      0.15,
	ComponentFormattingConsistency: 0.10,
}

// Calculate is a pure function of the formatted document and the detected
// issues. The returned score is round(100 * Σ component·weight, 2).
func Calculate(doc types.Document, issues []types.Issue) types.ComplianceScore {
	breakdown := map[string]float64{
		ComponentRequiredSections:      requiredSections(doc),
		ComponentSectionOrder:          sectionOrder(issues),
		ComponentAbstractCompliance:    abstractCompliance(doc),
		ComponentHeadingHierarchy:      headingHierarchy(doc),
		ComponentFormattingConsistency: formattingConsistency(issues),
	}

	total := 0.0
	for component, weight := range Weights {
		total += breakdown[component] * weight
	}

	weights := make(map[string]float64, len(Weights))
	for k, v := range Weights {
		weights[k] = v
	}

	return types.ComplianceScore{
		Score:     math.Round(total*100*100) / 100,
		Breakdown: breakdown,
		Weights:   weights,
	}
}

// requiredSections scores the fraction of required types present.
func requiredSections(doc types.Document) float64 {
	present := make(map[types.SectionType]bool, len(doc.Sections))
	for _, s := range doc.Sections {
		present[s.Type] = true
	}
	found := 0
	for _, t := range types.RequiredSections {
		if present[t] {
			found++
		}
	}
	return float64(found) / float64(len(types.RequiredSections))
}

// sectionOrder gives partial credit when any order violation was found.
func sectionOrder(issues []types.Issue) float64 {
	for _, i := range issues {
		if i.Type == types.IssueSectionOrder {
			return 0.7
		}
	}
	return 1.0
}

// abstractCompliance scores the first Abstract's word count: 1.0 inside
// [150,250], 0.6 outside, 0 when absent.
func abstractCompliance(doc types.Document) float64 {
	for _, s := range doc.Sections {
		if s.Type != types.SectionAbstract {
			continue
		}
		if s.WordCount >= inspect.AbstractMinWords && s.WordCount <= inspect.AbstractMaxWords {
			return 1.0
		}
		return 0.6
	}
	return 0.0
}

// headingHierarchy scores the fraction of heading-bearing sections that
// carry a non-empty canonical heading. Front matter (Title, Authors,
// Affiliation) renders without a heading and stays out of the
// denominator, so a fully formatted paper can reach 1.0.
func headingHierarchy(doc types.Document) float64 {
	needed, formatted := 0, 0
	for _, s := range doc.Sections {
		switch s.Type {
		case types.SectionTitle, types.SectionAuthors, types.SectionAffiliation:
			continue
		}
		needed++
		if s.FormattedHeading != "" {
			formatted++
		}
	}
	if needed == 0 {
		return 1.0
	}
	return float64(formatted) / float64(needed)
}

// formattingConsistency deducts 0.2 per high-severity issue, floored at 0.
func formattingConsistency(issues []types.Issue) float64 {
	high := 0
	for _, i := range issues {
		if i.Severity == types.SeverityHigh {
			high++
		}
	}
	s := 1.0 - 0.2*float64(high)
	if s < 0 {
		return 0
	}
	return s
}
