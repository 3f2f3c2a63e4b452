// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package structure

import (
	"strings"

	"github.com/pdiddy/paper-formatter/pkg/types"
)

// ApplyEdits folds author-provided corrections into a classified document
// and returns the edited copy. Sections are only created or changed for
// fields the author actually set; nothing is ever generated on the
// author's behalf. Per prd001-structure R4.
func ApplyEdits(doc types.Document, edits types.UserEdits) types.Document {
	out := doc.Clone()

	if len(edits.SectionCorrections) > 0 {
		for i := range out.Sections {
			if t, ok := edits.SectionCorrections[out.Sections[i].ID]; ok {
				out.Sections[i].Type = t
			}
		}
	}

	if edits.AuthorName != "" || edits.AuthorEmail != "" {
		content := edits.AuthorName
		if edits.AuthorEmail != "" {
			if content != "" {
				content += "\n" + edits.AuthorEmail
			} else {
				content = edits.AuthorEmail
			}
		}
		out.Sections = upsertSection(out.Sections, types.SectionAuthors, content, "Authors",
			afterType(types.SectionTitle))
	}

	if edits.Affiliation != "" {
		out.Sections = upsertSection(out.Sections, types.SectionAffiliation, edits.Affiliation, "Affiliation",
			afterTypes(types.SectionAuthors, types.SectionTitle))
	}

	if len(edits.Keywords) > 0 {
		out.Sections = upsertSection(out.Sections, types.SectionKeywords, strings.Join(edits.Keywords, ", "), "Index Terms",
			afterType(types.SectionAbstract))
	}

	out.Metadata["user_edits_applied"] = true
	out.Metadata["edits_summary"] = map[string]bool{
		"author_info_applied":         edits.AuthorName != "" || edits.AuthorEmail != "",
		"affiliation_applied":         edits.Affiliation != "",
		"keywords_applied":            len(edits.Keywords) > 0,
		"section_corrections_applied": len(edits.SectionCorrections) > 0,
	}
	return out
}

// upsertSection replaces the content of the first section of type t, or
// inserts a new section at the position chosen by insertAt.
func upsertSection(sections []types.Section, t types.SectionType, content, heading string, insertAt func([]types.Section) int) []types.Section {
	for i := range sections {
		if sections[i].Type == t {
			sections[i].SetContent(content)
			return sections
		}
	}
	s := newSection(t, content)
	s.OriginalHeading = heading
	pos := insertAt(sections)
	sections = append(sections, types.Section{})
	copy(sections[pos+1:], sections[pos:])
	sections[pos] = s
	return sections
}

// afterType returns an insertion-point function placing the new section
// right after the first section of type t, or at the front when absent.
func afterType(t types.SectionType) func([]types.Section) int {
	return afterTypes(t)
}

// afterTypes tries each type in priority order: the new section lands after
// the first section matching the highest-priority type found.
func afterTypes(priority ...types.SectionType) func([]types.Section) int {
	return func(sections []types.Section) int {
		for _, t := range priority {
			for i := range sections {
				if sections[i].Type == t {
					return i + 1
				}
			}
		}
		return 0
	}
}
