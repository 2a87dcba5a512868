package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"media-router/internal/models"
)

func classify(t *testing.T, prompt string) models.Classification {
	t.Helper()
	table := DefaultTable()
	return table.Classify(table.Extract(prompt))
}

func TestClassifyNoEvidenceDefaults(t *testing.T) {
	for _, prompt := range []string{"", "qwxz blorp", "do the thing please"} {
		c := classify(t, prompt)

		assert.Equal(t, models.MediaImage, c.MediaType, "prompt %q", prompt)
		assert.Equal(t, models.ValueNone, c.Theme, "prompt %q", prompt)
		assert.Equal(t, models.ValueNone, c.Style, "prompt %q", prompt)
		assert.Equal(t, models.ComplexityMedium, c.Complexity, "prompt %q", prompt)

		assert.Equal(t, NoEvidenceConfidence, c.Confidence.MediaType)
		assert.Equal(t, NoEvidenceConfidence, c.Confidence.Theme)
		assert.Equal(t, NoEvidenceConfidence, c.Confidence.Style)
		assert.Equal(t, NoEvidenceConfidence, c.Confidence.Complexity)
	}
}

func TestClassifyNinjaCharacterScenario(t *testing.T) {
	c := classify(t, "Create a ninja character for my stealth game")

	assert.Equal(t, models.MediaImage, c.MediaType)
	assert.GreaterOrEqual(t, c.Confidence.MediaType, 0.9, "explicit character keyword should score high")
	assert.Equal(t, "ninja", c.Theme)
	assert.Equal(t, "cartoon", c.Style, "ninja rule's default style")
	assert.Equal(t, models.ComplexityMedium, c.Complexity)
	assert.Equal(t, NoEvidenceConfidence, c.Confidence.Complexity)
}

func TestClassifyEpicBattleMusicScenario(t *testing.T) {
	c := classify(t, "epic battle music for my game")

	assert.Equal(t, models.MediaAudio, c.MediaType)
	assert.GreaterOrEqual(t, c.Confidence.MediaType, 0.9, "explicit music keyword should score high")
	assert.Equal(t, "epic", c.Theme)
	assert.Equal(t, "epic", c.Style)
}

func TestClassifyExactlyOneMediaTypeAndBoundedConfidence(t *testing.T) {
	prompts := []string{
		"",
		"Create a ninja character image",
		"Generate an epic space battle video",
		"Make peaceful forest ambient music",
		"Design a minimalist logo",
		"Animate a character walking through a medieval castle",
		"detailed realistic underwater scene with coral and fish",
	}

	for _, prompt := range prompts {
		c := classify(t, prompt)

		assert.Contains(t, []models.MediaType{models.MediaImage, models.MediaVideo, models.MediaAudio},
			c.MediaType, "prompt %q", prompt)

		for name, conf := range map[string]float64{
			"media_type": c.Confidence.MediaType,
			"theme":      c.Confidence.Theme,
			"style":      c.Confidence.Style,
			"complexity": c.Confidence.Complexity,
		} {
			assert.GreaterOrEqual(t, conf, 0.0, "prompt %q field %s", prompt, name)
			assert.LessOrEqual(t, conf, 1.0, "prompt %q field %s", prompt, name)
		}
	}
}

func TestClassifyIdempotent(t *testing.T) {
	table := DefaultTable()
	prompt := "Animate a detailed ninja walking through a dark medieval castle"

	first := table.Classify(table.Extract(prompt))
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, table.Classify(table.Extract(prompt)))
	}
}

func TestClassifyTieBreaksByPriority(t *testing.T) {
	t.Run("media tie prefers image over video over audio", func(t *testing.T) {
		c := classify(t, "video audio")
		assert.Equal(t, models.MediaVideo, c.MediaType)
		assert.Equal(t, 0.5, c.Confidence.MediaType)
	})

	t.Run("theme tie prefers earlier declared theme", func(t *testing.T) {
		c := classify(t, "ninja space")
		assert.Equal(t, "ninja", c.Theme)
	})
}

func TestConfidenceFloorWithScatteredEvidence(t *testing.T) {
	// Three style values with equal weight: the winner's share is 1/3,
	// which must be floored.
	c := classify(t, "realistic cartoon abstract image")

	assert.Equal(t, "realistic", c.Style)
	assert.Equal(t, MinEvidenceConfidence, c.Confidence.Style)
}

func TestComplexityKeywords(t *testing.T) {
	t.Run("high", func(t *testing.T) {
		c := classify(t, "detailed intricate castle artwork")
		assert.Equal(t, models.ComplexityHigh, c.Complexity)
	})

	t.Run("low", func(t *testing.T) {
		c := classify(t, "a simple plain icon sketch please")
		assert.Equal(t, models.ComplexityLow, c.Complexity)
	})

	t.Run("length hint needs keyword evidence", func(t *testing.T) {
		// Eleven unrecognized tokens: without a complexity keyword the
		// prompt length alone must not move the tier off medium.
		c := classify(t, "one two three four five six seven eight nine ten eleven")
		assert.Equal(t, models.ComplexityMedium, c.Complexity)
		assert.Equal(t, NoEvidenceConfidence, c.Confidence.Complexity)
	})

	t.Run("length hint reinforces fired keywords", func(t *testing.T) {
		prompt := "an extremely detailed panorama of the whole wide kingdom with countless turrets and banners"
		c := classify(t, prompt)
		require.Equal(t, models.ComplexityHigh, c.Complexity)
	})
}
