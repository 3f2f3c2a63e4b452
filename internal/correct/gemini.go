// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package correct

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/pdiddy/paper-formatter/pkg/types"
)

// correctionPrompt constrains the model to grammar and spelling only; the
// caller depends on structure and content surviving the round trip.
const correctionPrompt = `You are a grammar correction assistant. Your ONLY job is to fix grammar and spelling errors.

STRICT RULES:
1. Do NOT remove any content
2. Do NOT change the structure or order
3. Do NOT summarize or rewrite
4. Do NOT add new content
5. ONLY fix grammar, spelling, and punctuation errors

Original text:
%s

Return ONLY the corrected text with no explanations.`

// Gemini is the Corrector backed by Google's Generative AI API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini builds a Gemini corrector, or (nil, nil) when no API key is
// configured so the caller falls back to the disabled state.
func NewGemini(ctx context.Context, cfg types.CorrectionConfig) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &Gemini{client: client, model: model}, nil
}

// Close releases the underlying API client.
func (g *Gemini) Close() error {
	return g.client.Close()
}

// Correct sends one text block for correction.
func (g *Gemini) Correct(ctx context.Context, text string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(correctionPrompt, text)))
	if err != nil {
		return "", fmt.Errorf("generating correction: %w", err)
	}
	return responseText(resp)
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty correction response")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("correction response has no text parts")
	}
	return b.String(), nil
}
