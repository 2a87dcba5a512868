package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"media-router/internal/models"
)

type stubGenerator struct {
	name      string
	mediaType models.MediaType
}

func (s *stubGenerator) Name() string { return s.name }

func (s *stubGenerator) MediaType() models.MediaType { return s.mediaType }

func (s *stubGenerator) Generate(ctx context.Context, req models.GenerationRequest) (*models.GenerationResult, error) {
	return &models.GenerationResult{Format: "stub", Content: s.name}, nil
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	registry := NewRegistry()

	imageGen := &stubGenerator{name: "img", mediaType: models.MediaImage}
	audioGen := &stubGenerator{name: "aud", mediaType: models.MediaAudio}
	require.NoError(t, registry.Register(imageGen))
	require.NoError(t, registry.Register(audioGen))

	got, err := registry.Lookup(models.MediaImage)
	require.NoError(t, err)
	assert.Equal(t, "img", got.Name())

	assert.Equal(t, []models.MediaType{models.MediaAudio, models.MediaImage}, registry.MediaTypes())
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Register(&stubGenerator{name: "a", mediaType: models.MediaVideo}))
	err := registry.Register(&stubGenerator{name: "b", mediaType: models.MediaVideo})
	assert.ErrorIs(t, err, ErrDuplicateGenerator)
}

func TestRegistryLookupUnknown(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Lookup(models.MediaVideo)
	assert.ErrorIs(t, err, ErrUnknownMediaType)
}

func TestRegistryRejectsNil(t *testing.T) {
	registry := NewRegistry()
	assert.Error(t, registry.Register(nil))
}
