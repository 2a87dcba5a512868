package models

import (
	"fmt"
	"strings"
)

// MediaType identifies which generator handles a request.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
	MediaAudio MediaType = "audio"
)

// ParseMediaType validates a caller-supplied media type string.
func ParseMediaType(s string) (MediaType, error) {
	switch MediaType(strings.ToLower(strings.TrimSpace(s))) {
	case MediaImage:
		return MediaImage, nil
	case MediaVideo:
		return MediaVideo, nil
	case MediaAudio:
		return MediaAudio, nil
	default:
		return "", fmt.Errorf("unknown media type %q, expected image, video or audio", s)
	}
}

// Complexity is the coarse generation detail tier.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// ValueNone is the neutral value for theme and style when no keyword
// evidence exists and the caller supplied no override.
const ValueNone = "none"

// Confidence carries per-field classification confidence, each in [0,1].
type Confidence struct {
	MediaType  float64 `json:"media_type"`
	Theme      float64 `json:"theme"`
	Style      float64 `json:"style"`
	Complexity float64 `json:"complexity"`
}

// Classification is the outcome of analyzing a single prompt. Exactly one
// media type is always present; theme and style degrade to ValueNone and
// complexity to ComplexityMedium when the prompt carries no evidence.
type Classification struct {
	MediaType  MediaType  `json:"media_type"`
	Theme      string     `json:"theme"`
	Style      string     `json:"style"`
	Complexity Complexity `json:"complexity"`
	Keywords   []string   `json:"keywords"`
	Confidence Confidence `json:"confidence"`
}

// GenerationRequest is the fully populated work order handed to a
// generator. It is immutable once built and never partially filled.
type GenerationRequest struct {
	ID         string
	Prompt     string
	MediaType  MediaType
	Theme      string
	Style      string
	Complexity Complexity
	Keywords   []string
	Animation  string
	Duration   int // seconds; 0 lets the generator infer one
	Confidence Confidence
}

// GenerationResult is the artifact a generator hands back. The content is
// opaque to the router, which only wraps it into the response envelope.
type GenerationResult struct {
	Format      string
	Content     string
	Description string
}

// Envelope is the uniform JSON response for generation calls. Successful
// generations populate the artifact fields; failures carry an error message
// and a placeholder artifact so clients always receive renderable content.
type Envelope struct {
	Success         bool        `json:"success"`
	Format          string      `json:"format,omitempty"`
	Content         string      `json:"content,omitempty"`
	Description     string      `json:"description,omitempty"`
	GenerationTime  float64     `json:"generation_time,omitempty"`
	Theme           string      `json:"theme,omitempty"`
	Style           string      `json:"style,omitempty"`
	Confidence      *Confidence `json:"confidence,omitempty"`
	RequestID       string      `json:"request_id,omitempty"`
	Error           string      `json:"error,omitempty"`
	FallbackContent string      `json:"fallback_content,omitempty"`
}
