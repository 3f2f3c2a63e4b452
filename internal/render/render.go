// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render serializes a formatted document into downloadable
// artifacts. Renderers consume the document model only; they never reach
// back into the pipeline.
// Implements: prd005-io (R2, R3);
//
//	docs/ARCHITECTURE § Artifact Rendering.
package render

import (
	"fmt"

	"github.com/pdiddy/paper-formatter/pkg/types"
)

// Kind names an artifact format.
type Kind string

const (
	KindDocx Kind = "docx"
	KindHTML Kind = "html"
)

// Kinds lists every supported artifact format.
func Kinds() []Kind {
	return []Kind{KindDocx, KindHTML}
}

// ContentType returns the MIME type served for the kind.
func (k Kind) ContentType() string {
	switch k {
	case KindDocx:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case KindHTML:
		return "text/html; charset=utf-8"
	}
	return "application/octet-stream"
}

// Render produces the artifact bytes for a formatted document.
func Render(doc types.Document, kind Kind) ([]byte, error) {
	switch kind {
	case KindDocx:
		return RenderDocx(doc)
	case KindHTML:
		return RenderHTML(doc), nil
	}
	return nil, fmt.Errorf("unsupported artifact kind %q", kind)
}
