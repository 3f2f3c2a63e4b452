// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package correct calls an external text-correction service for grammar
// and spelling fixes. The service is slow and fallible by contract: every
// failure degrades to the original text for that call only, and the rest
// of the pipeline proceeds.
// Implements: prd007-correction (R1-R3);
//
//	docs/ARCHITECTURE § Grammar Correction.
package correct

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pdiddy/paper-formatter/pkg/types"
)

// Corrector returns a corrected version of one text block.
type Corrector interface {
	Correct(ctx context.Context, text string) (string, error)
}

const defaultWorkers = 4

// CorrectSections runs the corrector over every section body and every
// present heading, one call each, through a bounded worker pool. Sections
// are independent, so calls run concurrently; output order always matches
// input order. A nil corrector is the disabled state and returns the
// sections unchanged.
func CorrectSections(ctx context.Context, c Corrector, sections []types.Section, cfg types.CorrectionConfig) []types.Section {
	if c == nil {
		return sections
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	if workers > len(sections) {
		workers = len(sections)
	}

	out := make([]types.Section, len(sections))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = correctSection(ctx, c, sections[i], cfg.Timeout)
			}
		}()
	}

	for i := range sections {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return out
}

// correctSection corrects one section's body and heading. Each call gets
// its own timeout; a failed call keeps the original text.
func correctSection(ctx context.Context, c Corrector, s types.Section, timeout time.Duration) types.Section {
	cp := s.Clone()
	if cp.Content != "" {
		cp.SetContent(correctOne(ctx, c, cp.Content, timeout))
	}
	if cp.OriginalHeading != "" {
		cp.OriginalHeading = correctOne(ctx, c, cp.OriginalHeading, timeout)
	}
	return cp
}

func correctOne(ctx context.Context, c Corrector, text string, timeout time.Duration) string {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	corrected, err := c.Correct(ctx, text)
	if err != nil || strings.TrimSpace(corrected) == "" {
		return text
	}
	return strings.TrimSpace(corrected)
}
