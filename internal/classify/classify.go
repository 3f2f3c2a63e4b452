// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify maps section headings to section types through an
// ordered keyword-rule table.
// Implements: prd001-structure (R2);
//
//	docs/ARCHITECTURE § Section Classification.
package classify

import (
	"regexp"
	"strings"

	"github.com/pdiddy/paper-formatter/pkg/types"
)

// Heading-prefix patterns stripped before matching (R2.1).
var (
	// romanPrefixRe matches leading roman-numeral numbering: "iv. Results".
	romanPrefixRe = regexp.MustCompile(`^[ivxlcdm]+\.\s+`)

	// arabicPrefixRe matches leading arabic numbering: "3. Results".
	arabicPrefixRe = regexp.MustCompile(`^\d+\.\s+`)

	// sectionPrefixRe matches "Section 2:" style prefixes.
	sectionPrefixRe = regexp.MustCompile(`^section\s+\d+:?\s*`)

	// partPrefixRe matches "Part 2:" style prefixes.
	partPrefixRe = regexp.MustCompile(`^part\s+\d+:?\s*`)
)

// Rule binds one section type to the heading evidence that selects it.
// Keywords match as case-folded substrings of the normalized heading; a
// non-nil Match predicate replaces keyword matching for that rule.
type Rule struct {
	Type     types.SectionType
	Keywords []string
	Match    func(heading string) bool
}

// Rules is evaluated in order; the first matching rule wins. Broad
// categories sit at the bottom: Discussion matches generic analysis
// vocabulary ("impact", "implication", ...) and must stay last so it
// cannot shadow the specific rules above it.
var Rules = []Rule{
	{Type: types.SectionAbstract, Keywords: []string{"abstract", "summary"}},
	{Type: types.SectionKeywords, Keywords: []string{"keywords", "index terms", "key words"}},
	{Type: types.SectionIntroduction, Match: func(h string) bool {
		if strings.Contains(h, "intro") && len(h) < 15 {
			return true
		}
		return strings.Contains(h, "introduction")
	}},
	{Type: types.SectionMethodology, Keywords: []string{"methodology", "methods", "approach", "method"}},
	{Type: types.SectionResults, Keywords: []string{"results", "findings", "experiments", "experimental results", "data", "key finding"}},
	{Type: types.SectionConclusion, Keywords: []string{"conclusion", "concluding remarks", "conclusions", "ending", "final thought", "final remarks", "closing"}},
	{Type: types.SectionReferences, Keywords: []string{"references", "bibliography", "works cited"}},
	{Type: types.SectionRelatedWork, Keywords: []string{"related work", "related works", "background", "backgrounds"}},
	{Type: types.SectionLiteratureReview, Keywords: []string{"literature review", "literature"}},
	{Type: types.SectionFutureWork, Keywords: []string{"future work", "future works", "future research", "what next"}},
	{Type: types.SectionAcknowledgments, Keywords: []string{"acknowledgment", "acknowledgments", "acknowledgement", "acknowledgements"}},
	{Type: types.SectionAppendix, Keywords: []string{"appendix", "appendices"}},
	{Type: types.SectionAuthors, Keywords: []string{"authors", "author"}},
	{Type: types.SectionAffiliation, Keywords: []string{"affiliation", "affiliations", "institution"}},
	{Type: types.SectionDiscussion, Keywords: []string{"discussion", "analysis", "threat", "impact", "implication", "broader", "what individuals can do", "recommendations", "solutions"}},
}

// Classify returns the section type for a heading. The body text is part
// of the contract but currently unused by the rule table. Headings that
// match no rule classify as SectionUnknown.
func Classify(heading, content string) types.SectionType {
	_ = content
	h := Normalize(heading)
	for _, r := range Rules {
		if r.Match != nil {
			if r.Match(h) {
				return r.Type
			}
			continue
		}
		for _, kw := range r.Keywords {
			if strings.Contains(h, kw) {
				return r.Type
			}
		}
	}
	return types.SectionUnknown
}

// Normalize case-folds a heading and strips numbering prefixes: roman
// numerals, arabic numerals, "Section N:" and "Part N:".
func Normalize(heading string) string {
	h := strings.ToLower(strings.TrimSpace(heading))
	h = romanPrefixRe.ReplaceAllString(h, "")
	h = arabicPrefixRe.ReplaceAllString(h, "")
	h = sectionPrefixRe.ReplaceAllString(h, "")
	h = partPrefixRe.ReplaceAllString(h, "")
	return strings.TrimSpace(h)
}
