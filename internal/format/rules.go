// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import "github.com/pdiddy/paper-formatter/pkg/types"

const fontFamily = "Times New Roman"

// fontRules assigns body typography purely by section type. The table is
// read-only; sections receive copies.
var fontRules = map[types.SectionType]types.FontRule{
	types.SectionTitle:       {Family: fontFamily, Size: 24, Bold: true, Alignment: "center"},
	types.SectionAuthors:     {Family: fontFamily, Size: 10, Alignment: "center"},
	types.SectionAffiliation: {Family: fontFamily, Size: 10, Italic: true, Alignment: "center"},
	types.SectionAbstract:    {Family: fontFamily, Size: 9, Alignment: "justify"},
	types.SectionKeywords:    {Family: fontFamily, Size: 9, Italic: true, Alignment: "justify"},
}

// bodyRule is the 10pt justified rule shared by every numbered body type
// (and by Unknown sections).
var bodyRule = types.FontRule{Family: fontFamily, Size: 10, Alignment: "justify"}

// headingRule styles numbered main-section headings; subheadingRule styles
// lettered subsection headings.
var (
	headingRule    = types.FontRule{Family: fontFamily, Size: 10, Bold: true, Alignment: "left"}
	subheadingRule = types.FontRule{Family: fontFamily, Size: 10, Italic: true, Alignment: "left"}
)

// numberedTypes marks the 11 section types that receive sequential roman
// numerals: everything except Title, Authors, Affiliation, Abstract, and
// Keywords.
var numberedTypes = map[types.SectionType]bool{
	types.SectionIntroduction:     true,
	types.SectionRelatedWork:      true,
	types.SectionLiteratureReview: true,
	types.SectionMethodology:      true,
	types.SectionResults:          true,
	types.SectionDiscussion:       true,
	types.SectionConclusion:       true,
	types.SectionFutureWork:       true,
	types.SectionAcknowledgments:  true,
	types.SectionReferences:       true,
	types.SectionAppendix:         true,
}

// fontRuleFor returns the body rule for a section type.
func fontRuleFor(t types.SectionType) types.FontRule {
	if r, ok := fontRules[t]; ok {
		return r
	}
	return bodyRule
}

var romanValues = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"},
	{1, "I"},
}

// roman converts a positive integer to its roman-numeral form.
func roman(n int) string {
	var out []byte
	for _, rv := range romanValues {
		for n >= rv.value {
			out = append(out, rv.symbol...)
			n -= rv.value
		}
	}
	return string(out)
}
