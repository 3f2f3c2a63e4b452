// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package structure turns a decoded paragraph stream into the classified
// section tree the rest of the pipeline operates on.
// Implements: prd001-structure (R1, R3);
//
//	docs/ARCHITECTURE § Structure Builder.
package structure

import (
	"strings"

	"github.com/google/uuid"

	"github.com/pdiddy/paper-formatter/internal/classify"
	"github.com/pdiddy/paper-formatter/pkg/types"
)

// maxHeadingLen bounds the bold-paragraph heading heuristic: a bold first
// run only promotes a paragraph to a main heading when the text is shorter
// than this. Covers manuscripts that bold text instead of using true
// heading styles.
const maxHeadingLen = 100

// Build assembles an ordered Document from decoder output.
//
// The first non-empty paragraph becomes the Title, kept verbatim and never
// re-classified. Paragraphs between the Title and the first main heading
// form the pre-heading block: the first becomes Authors and any remainder
// (newline-joined) becomes Affiliation. A main heading closes the previous
// section, classifying it from its own heading and body; a level-2 heading
// opens an unclassified subsection under the open section. Title, Authors,
// and Affiliation are never fabricated when the manuscript lacks them.
func Build(paragraphs []types.Paragraph) types.Document {
	var sections []types.Section

	var pre []string
	var heading string
	var body []string
	var subs []types.Section
	open := false
	titleDone := false
	preFlushed := false

	closeSection := func() {
		content := strings.TrimSpace(strings.Join(body, "\n"))
		s := newSection(classify.Classify(heading, content), content)
		s.OriginalHeading = heading
		s.Subsections = subs
		sections = append(sections, s)
	}

	flushPre := func() {
		if preFlushed {
			return
		}
		preFlushed = true
		if len(pre) >= 1 {
			sections = append(sections, newSection(types.SectionAuthors, pre[0]))
		}
		if len(pre) >= 2 {
			sections = append(sections, newSection(types.SectionAffiliation, strings.Join(pre[1:], "\n")))
		}
	}

	for _, p := range paragraphs {
		text := strings.TrimSpace(p.Text)
		if text == "" {
			continue
		}

		if !titleDone {
			sections = append(sections, newSection(types.SectionTitle, text))
			titleDone = true
			continue
		}

		switch {
		case isMainHeading(p, text):
			flushPre()
			if open {
				closeSection()
			}
			heading = text
			body = nil
			subs = nil
			open = true

		case isSubHeading(p) && open:
			sub := newSection(types.SectionUnknown, "")
			sub.OriginalHeading = text
			sub.IsSubsection = true
			subs = append(subs, sub)

		default:
			if !open {
				pre = append(pre, text)
				continue
			}
			if len(subs) > 0 {
				last := &subs[len(subs)-1]
				if last.Content == "" {
					last.SetContent(text)
				} else {
					last.SetContent(last.Content + "\n" + text)
				}
			} else {
				body = append(body, text)
			}
		}
	}

	if open {
		closeSection()
	}
	flushPre()

	return types.Document{
		Sections: sections,
		Metadata: map[string]any{
			"total_sections": len(sections),
			"total_words":    totalWords(sections),
		},
	}
}

// isMainHeading reports whether a paragraph opens a new main section:
// either the decoder tagged it heading-level-1, or it looks like one (bold
// first run, short text, not tagged heading-level-2).
func isMainHeading(p types.Paragraph, text string) bool {
	if p.Style == types.StyleHeading1 {
		return true
	}
	return p.FirstRunBold && len(text) < maxHeadingLen && p.Style != types.StyleHeading2
}

func isSubHeading(p types.Paragraph) bool {
	return p.Style == types.StyleHeading2
}

func newSection(t types.SectionType, content string) types.Section {
	s := types.Section{ID: uuid.NewString(), Type: t}
	s.SetContent(content)
	return s
}

func totalWords(sections []types.Section) int {
	total := 0
	for _, s := range sections {
		total += s.WordCount
	}
	return total
}
