// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs a manuscript through the full formatting flow:
// decode, structure, grammar correction, citation conversion, formatting,
// issue detection, scoring, and change tracking. Each run gets fresh
// converter and tracker state, so documents never leak numbering or fixes
// into each other.
// Implements: prd001-structure through prd004-analysis (orchestration);
//
//	docs/ARCHITECTURE § Pipeline.
package pipeline

import (
	"context"
	"time"

	"github.com/pdiddy/paper-formatter/internal/citations"
	"github.com/pdiddy/paper-formatter/internal/correct"
	"github.com/pdiddy/paper-formatter/internal/decode"
	"github.com/pdiddy/paper-formatter/internal/format"
	"github.com/pdiddy/paper-formatter/internal/inspect"
	"github.com/pdiddy/paper-formatter/internal/score"
	"github.com/pdiddy/paper-formatter/internal/structure"
	"github.com/pdiddy/paper-formatter/internal/track"
	"github.com/pdiddy/paper-formatter/pkg/types"
)

// Pipeline formats manuscripts. It is safe for concurrent use: all
// per-document state lives in Process.
type Pipeline struct {
	cfg       types.FormatterConfig
	corrector correct.Corrector
}

// New builds a pipeline. A nil corrector disables grammar correction.
func New(cfg types.FormatterConfig, corrector correct.Corrector) *Pipeline {
	return &Pipeline{cfg: cfg, corrector: corrector}
}

// Process runs one manuscript end to end. Issues describe the manuscript
// as uploaded; fixes describe what formatting changed; the compliance
// score grades the formatted output.
func (p *Pipeline) Process(ctx context.Context, filename string, data []byte, edits *types.UserEdits) (*types.Result, error) {
	paragraphs, err := decode.Decode(filename, data)
	if err != nil {
		return nil, err
	}

	// An empty manuscript is not an error: it flows through as an empty
	// document and scores accordingly.
	doc := structure.Build(paragraphs)
	if edits != nil {
		doc = structure.ApplyEdits(doc, *edits)
	}

	before := doc.Clone()
	issues := inspect.Detect(before)

	doc.Sections = correct.CorrectSections(ctx, p.corrector, doc.Sections, p.cfg.Correction)

	conv := citations.NewConverter()
	doc.Sections = conv.Convert(doc.Sections)

	after := format.Format(doc, conv.Count())

	tracker := track.NewTracker()
	fixes := tracker.Track(before, after)
	summary := tracker.Summarize()

	result := &types.Result{
		Status:     "success",
		Before:     before,
		After:      after,
		Issues:     issues,
		Fixes:      fixes,
		Compliance: score.Calculate(after, issues),
		Metadata: map[string]any{
			"filename":           filename,
			"processed_at":       time.Now().UTC().Format(time.RFC3339),
			"correction_enabled": p.corrector != nil,
			"total_changes":      summary.TotalChanges,
			"sections_affected":  summary.SectionsAffected,
		},
	}
	return result, nil
}
