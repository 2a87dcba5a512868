package factory

import (
	"errors"
	"fmt"

	"media-router/internal/generator"
	audioGenerator "media-router/internal/generator/audio"
	imageGenerator "media-router/internal/generator/image"
	videoGenerator "media-router/internal/generator/video"
)

// RegisterDefaultGenerators constructs the built-in image, video and audio
// generators and stores them in the registry.
func RegisterDefaultGenerators(registry *generator.Registry) error {
	if registry == nil {
		return errors.New("registry must not be nil")
	}

	generators := []generator.Generator{
		imageGenerator.New(),
		videoGenerator.New(),
		audioGenerator.New(),
	}

	for _, g := range generators {
		if err := registry.Register(g); err != nil {
			return fmt.Errorf("register %s generator: %w", g.MediaType(), err)
		}
	}
	return nil
}
