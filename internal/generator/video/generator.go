// Package video renders prompts into self-contained CSS keyframe animation
// documents. Like the other generators the output is deterministic for a
// given request.
package video

import (
	"context"
	"fmt"
	"strings"

	"media-router/internal/generator"
	"media-router/internal/models"
)

// FormatCSSAnimation tags the artifact format in the response envelope.
const FormatCSSAnimation = "css_animation"

const (
	minDuration     = 2
	maxDuration     = 15
	defaultDuration = 4
)

// Animation kinds the generator can produce. Caller overrides are matched
// against these names; unknown overrides fall back to keyword detection.
const (
	AnimationWalk      = "walk"
	AnimationPulse     = "pulse"
	AnimationFlow      = "flow"
	AnimationParticles = "particles"
)

// Generator produces CSS animation documents.
type Generator struct{}

// New constructs the CSS animation generator.
func New() *Generator {
	return &Generator{}
}

func (g *Generator) Name() string { return "css-animation" }

func (g *Generator) MediaType() models.MediaType { return models.MediaVideo }

// Generate builds an HTML document whose CSS animates a themed subject.
// Animation kind comes from the request's explicit animation field when
// recognized, otherwise from keywords; duration comes from the explicit
// duration field clamped to the supported range, otherwise it is inferred
// from keywords and complexity.
func (g *Generator) Generate(ctx context.Context, req models.GenerationRequest) (*models.GenerationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kind := animationKind(req.Animation, req.Keywords)
	duration := animationDuration(req.Duration, req.Keywords, req.Complexity)
	palette := generator.PaletteFor(req.Theme)

	content := buildDocument(kind, duration, palette)
	return &models.GenerationResult{
		Format:      FormatCSSAnimation,
		Content:     content,
		Description: fmt.Sprintf("%s animation, %ds loop", kind, duration),
	}, nil
}

func animationKind(override string, keywords []string) string {
	switch strings.ToLower(strings.TrimSpace(override)) {
	case AnimationWalk, AnimationPulse, AnimationFlow, AnimationParticles:
		return strings.ToLower(strings.TrimSpace(override))
	}

	for _, kw := range keywords {
		switch kw {
		case "walk", "walking", "run", "running", "character", "hero":
			return AnimationWalk
		case "particle", "particles", "sparkle", "magic", "explosion":
			return AnimationParticles
		case "flow", "water", "wave", "wind", "float", "background":
			return AnimationFlow
		}
	}
	return AnimationPulse
}

func animationDuration(override int, keywords []string, complexity models.Complexity) int {
	if override > 0 {
		return clampDuration(override)
	}

	duration := defaultDuration
	for _, kw := range keywords {
		switch kw {
		case "quick", "short", "fast":
			duration = minDuration
		case "long", "slow", "loop", "looping":
			duration = 8
		}
	}
	if complexity == models.ComplexityHigh {
		duration += 2
	}
	return clampDuration(duration)
}

func clampDuration(d int) int {
	if d < minDuration {
		return minDuration
	}
	if d > maxDuration {
		return maxDuration
	}
	return d
}

func buildDocument(kind string, duration int, p generator.Palette) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<style>\n")
	fmt.Fprintf(&b, "body { margin: 0; background: %s; overflow: hidden; }\n", p.Background)
	fmt.Fprintf(&b, ".stage { width: 100vw; height: 100vh; position: relative; background: linear-gradient(135deg, %s, %s); }\n",
		p.Background, p.Primary)
	b.WriteString(subjectCSS(kind, duration, p))
	b.WriteString("</style>\n</head>\n<body>\n<div class=\"stage\">\n")
	b.WriteString("<div class=\"subject\"></div>\n")
	b.WriteString("</div>\n</body>\n</html>\n")
	return b.String()
}

func subjectCSS(kind string, duration int, p generator.Palette) string {
	var b strings.Builder
	switch kind {
	case AnimationWalk:
		fmt.Fprintf(&b, ".subject { position: absolute; bottom: 20%%; left: -80px; width: 60px; height: 100px; background: %s; border-radius: 12px; animation: walk %ds linear infinite; }\n", p.Secondary, duration)
		fmt.Fprintf(&b, ".subject::before { content: ''; position: absolute; top: -34px; left: 14px; width: 32px; height: 32px; border-radius: 50%%; background: %s; }\n", p.Accent)
		b.WriteString("@keyframes walk { 0% { transform: translateX(0); } 50% { transform: translateX(55vw) translateY(-6px); } 100% { transform: translateX(110vw); } }\n")
	case AnimationFlow:
		fmt.Fprintf(&b, ".subject { position: absolute; inset: 0; background: linear-gradient(270deg, %s, %s, %s); background-size: 600%% 600%%; animation: flow %ds ease infinite; }\n", p.Primary, p.Secondary, p.Accent, duration)
		b.WriteString("@keyframes flow { 0% { background-position: 0% 50%; } 50% { background-position: 100% 50%; } 100% { background-position: 0% 50%; } }\n")
	case AnimationParticles:
		fmt.Fprintf(&b, ".subject, .subject::before, .subject::after { position: absolute; width: 14px; height: 14px; border-radius: 50%%; background: %s; animation: drift %ds ease-in-out infinite; }\n", p.Accent, duration)
		b.WriteString(".subject { top: 70%; left: 30%; }\n")
		fmt.Fprintf(&b, ".subject::before { content: ''; left: 60px; background: %s; animation-delay: -1s; }\n", p.Secondary)
		fmt.Fprintf(&b, ".subject::after { content: ''; left: -60px; background: %s; animation-delay: -2s; }\n", p.Primary)
		b.WriteString("@keyframes drift { 0%, 100% { transform: translateY(0) scale(1); opacity: 0.9; } 50% { transform: translateY(-45vh) scale(0.4); opacity: 0.2; } }\n")
	default: // pulse
		fmt.Fprintf(&b, ".subject { position: absolute; top: 50%%; left: 50%%; width: 120px; height: 120px; margin: -60px 0 0 -60px; border-radius: 50%%; background: %s; animation: pulse %ds ease-in-out infinite; }\n", p.Accent, duration)
		b.WriteString("@keyframes pulse { 0%, 100% { transform: scale(1); opacity: 1; } 50% { transform: scale(1.5); opacity: 0.6; } }\n")
	}
	return b.String()
}
