package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"media-router/internal/models"
)

func TestBuildRequestFullyPopulated(t *testing.T) {
	engine := NewEngine(DefaultTable())

	req := engine.BuildRequest("Create a ninja character image", Overrides{})

	assert.NotEmpty(t, req.ID)
	assert.Equal(t, "Create a ninja character image", req.Prompt)
	assert.Equal(t, models.MediaImage, req.MediaType)
	assert.Equal(t, "ninja", req.Theme)
	assert.Equal(t, "cartoon", req.Style)
	assert.Equal(t, models.ComplexityMedium, req.Complexity)
	assert.NotEmpty(t, req.Keywords)
}

func TestBuildRequestOverridesAlwaysWin(t *testing.T) {
	engine := NewEngine(DefaultTable())

	t.Run("theme override without supporting keywords", func(t *testing.T) {
		req := engine.BuildRequest("create an image", Overrides{Theme: "space"})

		assert.Equal(t, "space", req.Theme)
		assert.Equal(t, 1.0, req.Confidence.Theme)
	})

	t.Run("overrides beat strong contradicting evidence", func(t *testing.T) {
		req := engine.BuildRequest("epic battle music", Overrides{
			MediaType: models.MediaVideo,
			Theme:     "forest",
			Style:     "minimalist",
			Animation: "flow",
			Duration:  7,
		})

		assert.Equal(t, models.MediaVideo, req.MediaType)
		assert.Equal(t, "forest", req.Theme)
		assert.Equal(t, "minimalist", req.Style)
		assert.Equal(t, "flow", req.Animation)
		assert.Equal(t, 7, req.Duration)
		assert.Equal(t, 1.0, req.Confidence.MediaType)
		assert.Equal(t, 1.0, req.Confidence.Theme)
		assert.Equal(t, 1.0, req.Confidence.Style)
	})

	t.Run("absent overrides fall through to inference", func(t *testing.T) {
		req := engine.BuildRequest("epic battle music", Overrides{})

		assert.Equal(t, models.MediaAudio, req.MediaType)
		assert.Equal(t, "epic", req.Theme)
		assert.Equal(t, "epic", req.Style)
	})
}

func TestBuildRequestUniqueIDs(t *testing.T) {
	engine := NewEngine(DefaultTable())

	first := engine.BuildRequest("a picture", Overrides{})
	second := engine.BuildRequest("a picture", Overrides{})
	assert.NotEqual(t, first.ID, second.ID)
}

func TestTips(t *testing.T) {
	engine := NewEngine(DefaultTable())

	t.Run("vague prompt earns guidance", func(t *testing.T) {
		classification := engine.Analyze("thing")
		tips := engine.Tips(classification)

		require.NotEmpty(t, tips)
		assert.Contains(t, tips[0], "image, video or audio")
	})

	t.Run("specific prompt earns none", func(t *testing.T) {
		classification := engine.Analyze("detailed realistic ninja character image for my stealth game")
		tips := engine.Tips(classification)
		assert.Empty(t, tips)
	})
}
