package video

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"media-router/internal/models"
)

func baseRequest() models.GenerationRequest {
	return models.GenerationRequest{
		ID:         "test",
		Prompt:     "Animate a character walking",
		MediaType:  models.MediaVideo,
		Theme:      "space",
		Style:      "cartoon",
		Complexity: models.ComplexityMedium,
		Keywords:   []string{"character", "walking"},
	}
}

func TestGenerateAnimationDocument(t *testing.T) {
	g := New()

	result, err := g.Generate(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Equal(t, FormatCSSAnimation, result.Format)
	assert.Contains(t, result.Content, "<!DOCTYPE html>")
	assert.Contains(t, result.Content, "@keyframes walk")
	assert.Contains(t, result.Description, AnimationWalk)
}

func TestAnimationKindSelection(t *testing.T) {
	t.Run("explicit override wins", func(t *testing.T) {
		assert.Equal(t, AnimationFlow, animationKind("flow", []string{"character"}))
	})

	t.Run("unrecognized override falls back to keywords", func(t *testing.T) {
		assert.Equal(t, AnimationParticles, animationKind("wiggle", []string{"sparkle"}))
	})

	t.Run("no signal defaults to pulse", func(t *testing.T) {
		assert.Equal(t, AnimationPulse, animationKind("", []string{"thing"}))
	})
}

func TestAnimationDuration(t *testing.T) {
	t.Run("explicit duration clamped to range", func(t *testing.T) {
		assert.Equal(t, maxDuration, animationDuration(100, nil, models.ComplexityMedium))
		assert.Equal(t, minDuration, animationDuration(1, nil, models.ComplexityMedium))
		assert.Equal(t, 7, animationDuration(7, nil, models.ComplexityMedium))
	})

	t.Run("keywords adjust the default", func(t *testing.T) {
		assert.Equal(t, minDuration, animationDuration(0, []string{"quick"}, models.ComplexityMedium))
		assert.Equal(t, 8, animationDuration(0, []string{"loop"}, models.ComplexityMedium))
	})

	t.Run("high complexity extends the loop", func(t *testing.T) {
		assert.Equal(t, defaultDuration+2, animationDuration(0, nil, models.ComplexityHigh))
	})
}

func TestGenerateUsesRequestedDuration(t *testing.T) {
	g := New()

	req := baseRequest()
	req.Duration = 9

	result, err := g.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, result.Content, "9s")
}

func TestGenerateDeterministic(t *testing.T) {
	g := New()
	ctx := context.Background()

	first, err := g.Generate(ctx, baseRequest())
	require.NoError(t, err)
	second, err := g.Generate(ctx, baseRequest())
	require.NoError(t, err)

	assert.True(t, strings.Contains(first.Content, "@keyframes"))
	assert.Equal(t, first.Content, second.Content)
}

func TestGenerateHonorsCancelledContext(t *testing.T) {
	g := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Generate(ctx, baseRequest())
	assert.ErrorIs(t, err, context.Canceled)
}
