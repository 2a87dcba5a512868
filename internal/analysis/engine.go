// Package analysis implements the prompt analysis engine: lexical feature
// extraction, rule-based classification, confidence scoring and generation
// request building. The whole pipeline is a pure function of the prompt and
// the immutable rule table, so one Engine serves all requests concurrently.
package analysis

import (
	"github.com/google/uuid"

	"media-router/internal/models"
)

// Engine binds the pipeline stages to a rule table.
type Engine struct {
	table *RuleTable
}

// NewEngine constructs an engine over the given rule table. Pass
// DefaultTable() for the compiled-in knowledge base.
func NewEngine(table *RuleTable) *Engine {
	return &Engine{table: table}
}

// Analyze classifies a prompt. It never fails: prompts with no recognized
// keywords degrade to the documented defaults.
func (e *Engine) Analyze(prompt string) models.Classification {
	return e.table.Classify(e.table.Extract(prompt))
}

// Capabilities reports the value space of the underlying rule table.
func (e *Engine) Capabilities() Capabilities {
	return e.table.Capabilities()
}

// Overrides are caller-supplied fields that bypass inference. An override
// always wins over the classified value; empty fields fall through.
type Overrides struct {
	MediaType models.MediaType
	Theme     string
	Style     string
	Animation string
	Duration  int
}

// BuildRequest analyzes the prompt and merges the classification with the
// caller's explicit overrides into a fully populated GenerationRequest.
// Overridden fields report confidence 1.0 since they are not inferred.
func (e *Engine) BuildRequest(prompt string, ov Overrides) models.GenerationRequest {
	classification := e.Analyze(prompt)

	req := models.GenerationRequest{
		ID:         uuid.NewString(),
		Prompt:     prompt,
		MediaType:  classification.MediaType,
		Theme:      classification.Theme,
		Style:      classification.Style,
		Complexity: classification.Complexity,
		Keywords:   classification.Keywords,
		Animation:  ov.Animation,
		Duration:   ov.Duration,
		Confidence: classification.Confidence,
	}

	if ov.MediaType != "" {
		req.MediaType = ov.MediaType
		req.Confidence.MediaType = 1.0
	}
	if ov.Theme != "" {
		req.Theme = ov.Theme
		req.Confidence.Theme = 1.0
	}
	if ov.Style != "" {
		req.Style = ov.Style
		req.Confidence.Style = 1.0
	}

	return req
}

// Tips suggests prompt improvements for weakly classified requests,
// mirroring the guidance surfaced alongside analysis results.
func (e *Engine) Tips(c models.Classification) []string {
	var tips []string

	if c.Confidence.MediaType <= MinEvidenceConfidence {
		tips = append(tips, "Name the media you want (image, video or audio) for more reliable routing")
	}
	if c.Theme == models.ValueNone {
		tips = append(tips, "Adding a theme (like 'ninja', 'space', 'medieval') will improve results")
	}
	if c.Style == models.ValueNone {
		tips = append(tips, "Specify a style (like 'cartoon', 'realistic', 'minimalist') for better output")
	}
	if len(c.Keywords) < 3 {
		tips = append(tips, "Add more descriptive words to get more detailed results")
	}

	return tips
}
