// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inspect analyzes a classified (pre-format) document and reports
// advisory compliance issues. Detection never mutates the document and
// never fails on malformed content.
// Implements: prd004-analysis (R1);
//
//	docs/ARCHITECTURE § Issue Detection.
package inspect

import (
	"fmt"

	"github.com/pdiddy/paper-formatter/pkg/types"
)

// Abstract word-count bounds.
const (
	AbstractMinWords = 150
	AbstractMaxWords = 250
)

// Detect runs the four independent checks over a classified document and
// returns the combined findings: missing required sections (HIGH),
// out-of-order sections (MEDIUM), abstract length violations (MEDIUM),
// and missing headings (LOW).
func Detect(doc types.Document) []types.Issue {
	var issues []types.Issue
	issues = append(issues, missingSections(doc)...)
	issues = append(issues, orderViolations(doc)...)
	issues = append(issues, abstractLength(doc)...)
	issues = append(issues, missingHeadings(doc)...)
	return issues
}

func missingSections(doc types.Document) []types.Issue {
	present := make(map[types.SectionType]bool, len(doc.Sections))
	for _, s := range doc.Sections {
		present[s.Type] = true
	}

	var issues []types.Issue
	for _, required := range types.RequiredSections {
		if present[required] {
			continue
		}
		issues = append(issues, types.Issue{
			Type:     types.IssueMissingSection,
			Section:  string(required),
			Severity: types.SeverityHigh,
			Message:  fmt.Sprintf("Required section '%s' is missing", required),
			Expected: string(required),
		})
	}
	return issues
}

// orderViolations walks sections in document order tracking the maximum
// canonical slot seen so far; a section whose slot falls below the running
// maximum is out of order. Unknown sections have no slot and are skipped.
func orderViolations(doc types.Document) []types.Issue {
	var issues []types.Issue
	maxSeen := -1
	maxType := types.SectionUnknown

	for _, s := range doc.Sections {
		idx, ok := types.CanonicalIndex(s.Type)
		if !ok {
			continue
		}
		if idx < maxSeen {
			issues = append(issues, types.Issue{
				Type:     types.IssueSectionOrder,
				Section:  string(s.Type),
				Severity: types.SeverityMedium,
				Message:  fmt.Sprintf("Section '%s' appears after '%s' but should come before it", s.Type, maxType),
				Current:  string(s.Type),
				Expected: fmt.Sprintf("Should appear before %s", maxType),
			})
			continue
		}
		maxSeen = idx
		maxType = s.Type
	}
	return issues
}

func abstractLength(doc types.Document) []types.Issue {
	var issues []types.Issue
	for _, s := range doc.Sections {
		if s.Type != types.SectionAbstract {
			continue
		}
		if s.WordCount >= AbstractMinWords && s.WordCount <= AbstractMaxWords {
			continue
		}
		issues = append(issues, types.Issue{
			Type:     types.IssueAbstractWordCount,
			Section:  string(types.SectionAbstract),
			Severity: types.SeverityMedium,
			Message: fmt.Sprintf("Abstract has %d words but should have %d-%d words",
				s.WordCount, AbstractMinWords, AbstractMaxWords),
			Current:  s.WordCount,
			Expected: fmt.Sprintf("%d-%d words", AbstractMinWords, AbstractMaxWords),
		})
	}
	return issues
}

func missingHeadings(doc types.Document) []types.Issue {
	var issues []types.Issue
	for _, s := range doc.Sections {
		if !types.NeedsHeading(s.Type) {
			continue
		}
		if s.OriginalHeading != "" {
			continue
		}
		issues = append(issues, types.Issue{
			Type:     types.IssueMissingHeading,
			Section:  string(s.Type),
			Severity: types.SeverityLow,
			Message:  fmt.Sprintf("Section '%s' is missing a heading", s.Type),
			Expected: fmt.Sprintf("Heading for %s", s.Type),
		})
	}
	return issues
}
