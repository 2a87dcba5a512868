package image

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
		Prompt:     "Create a ninja character image",
		MediaType:  models.MediaImage,
		Theme:      "ninja",
		Style:      "cartoon",
		Complexity: models.ComplexityMedium,
		Keywords:   []string{"ninja", "character", "image"},
	}
}

func TestGenerateCharacterSVG(t *testing.T) {
	g := New()

	result, err := g.Generate(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Equal(t, FormatSVG, result.Format)
	assert.True(t, strings.HasPrefix(result.Content, "<svg"), "content must be an SVG document")
	assert.Contains(t, result.Content, "</svg>")
	assert.Contains(t, result.Description, "character")
	// Ninja palette primary color must appear in the rendered body.
	assert.Contains(t, result.Content, "#2c3e50")
}

func TestGenerateKindDetection(t *testing.T) {
	g := New()
	ctx := context.Background()

	cases := []struct {
		keywords []string
		want     string
	}{
		{[]string{"knight", "hero"}, "character"},
		{[]string{"castle", "landscape"}, "environment"},
		{[]string{"shiny", "logo"}, "ui_element"},
		{[]string{"swirls"}, "abstract"},
	}

	for _, tc := range cases {
		req := baseRequest()
		req.Keywords = tc.keywords

		result, err := g.Generate(ctx, req)
		require.NoError(t, err)
		assert.Contains(t, result.Description, tc.want, "keywords %v", tc.keywords)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	g := New()
	ctx := context.Background()

	first, err := g.Generate(ctx, baseRequest())
	require.NoError(t, err)
	second, err := g.Generate(ctx, baseRequest())
	require.NoError(t, err)

	assert.Equal(t, first.Content, second.Content)
}

func TestGenerateHighComplexityAddsDetail(t *testing.T) {
	g := New()
	ctx := context.Background()

	medium, err := g.Generate(ctx, baseRequest())
	require.NoError(t, err)

	req := baseRequest()
	req.Complexity = models.ComplexityHigh
	high, err := g.Generate(ctx, req)
	require.NoError(t, err)

	assert.Greater(t, len(high.Content), len(medium.Content))
}

func TestGenerateHonorsCancelledContext(t *testing.T) {
	g := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Generate(ctx, baseRequest())
	assert.ErrorIs(t, err, context.Canceled)
}
