// Package router dispatches analyzed prompts to the generator matching the
// classified media type and normalizes every outcome, including generator
// failure and timeout, into the uniform response envelope.
package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"media-router/internal/analysis"
	"media-router/internal/generator"
	"media-router/internal/health"
	"media-router/internal/models"
)

// DefaultTimeout bounds a single generator call when the configuration
// does not say otherwise.
const DefaultTimeout = 10 * time.Second

// Router runs the full pipeline: analyze, build, dispatch, envelope.
type Router struct {
	engine   *analysis.Engine
	registry *generator.Registry
	recorder *health.Recorder
	timeout  time.Duration
}

// New constructs a router. recorder may be nil when metrics are unwanted;
// a non-positive timeout falls back to DefaultTimeout.
func New(engine *analysis.Engine, registry *generator.Registry, recorder *health.Recorder, timeout time.Duration) *Router {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Router{
		engine:   engine,
		registry: registry,
		recorder: recorder,
		timeout:  timeout,
	}
}

// Analyze exposes classification without generation, plus prompt tips.
func (r *Router) Analyze(prompt string) (models.Classification, []string) {
	classification := r.engine.Analyze(prompt)
	return classification, r.engine.Tips(classification)
}

// Capabilities reports the engine's classifiable value space.
func (r *Router) Capabilities() analysis.Capabilities {
	return r.engine.Capabilities()
}

// Generate runs one prompt through the pipeline. Generator errors and
// timeouts never propagate: they are logged, recorded, and converted into a
// fallback envelope carrying a placeholder artifact.
func (r *Router) Generate(ctx context.Context, prompt string, overrides analysis.Overrides) models.Envelope {
	req := r.engine.BuildRequest(prompt, overrides)

	gen, err := r.registry.Lookup(req.MediaType)
	if err != nil {
		slog.Error("generator lookup failed", "media_type", req.MediaType, "request_id", req.ID, "err", err)
		return r.fallback(req, err)
	}

	genCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	result, err := gen.Generate(genCtx, req)
	latency := time.Since(start)

	if err != nil {
		slog.Warn("generation failed",
			"generator", gen.Name(),
			"media_type", req.MediaType,
			"request_id", req.ID,
			"latency_ms", latency.Milliseconds(),
			"err", err,
		)
		r.record(req.MediaType, false, latency)
		return r.fallback(req, err)
	}
	if result == nil {
		r.record(req.MediaType, false, latency)
		return r.fallback(req, fmt.Errorf("generator %s returned no result", gen.Name()))
	}

	r.record(req.MediaType, true, latency)

	confidence := req.Confidence
	return models.Envelope{
		Success:        true,
		Format:         result.Format,
		Content:        result.Content,
		Description:    result.Description,
		GenerationTime: latency.Seconds(),
		Theme:          req.Theme,
		Style:          req.Style,
		Confidence:     &confidence,
		RequestID:      req.ID,
	}
}

func (r *Router) record(mediaType models.MediaType, success bool, latency time.Duration) {
	if r.recorder != nil {
		r.recorder.Record(mediaType, success, latency)
	}
}

func (r *Router) fallback(req models.GenerationRequest, cause error) models.Envelope {
	message := fmt.Sprintf("%s generation failed: %v; a placeholder artifact is attached", req.MediaType, cause)
	if errors.Is(cause, context.DeadlineExceeded) {
		message = fmt.Sprintf("%s generation timed out after %s; a placeholder artifact is attached", req.MediaType, r.timeout)
	}
	return models.Envelope{
		Success:         false,
		RequestID:       req.ID,
		Error:           message,
		FallbackContent: placeholderArtifact(req),
	}
}

// placeholderArtifact is a minimal SVG card shown in place of the failed
// artifact so clients always have something renderable.
func placeholderArtifact(req models.GenerationRequest) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="400" height="200">`+
		`<rect width="400" height="200" fill="#2c2c54"/>`+
		`<text x="200" y="90" text-anchor="middle" fill="#ffffff" font-family="sans-serif" font-size="16">%s generation unavailable</text>`+
		`<text x="200" y="120" text-anchor="middle" fill="#aaaaaa" font-family="sans-serif" font-size="12">please retry shortly</text>`+
		`</svg>`, req.MediaType)
}
