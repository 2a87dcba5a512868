package generator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"media-router/internal/models"
)

// ErrUnknownMediaType indicates no generator handles the requested media type.
var ErrUnknownMediaType = errors.New("no generator registered for media type")

// ErrDuplicateGenerator indicates an attempt to register two generators for
// the same media type.
var ErrDuplicateGenerator = errors.New("generator already registered for media type")

// Generator is the capability contract every media generator fulfils. New
// media types plug in by registering another implementation; the router's
// dispatch logic never changes.
type Generator interface {
	Name() string
	MediaType() models.MediaType
	Generate(ctx context.Context, req models.GenerationRequest) (*models.GenerationResult, error)
}

// Registry maps media types to their generator. Registration happens during
// startup wiring; lookups are concurrent afterwards.
type Registry struct {
	mu     sync.RWMutex
	byType map[models.MediaType]Generator
}

// NewRegistry constructs an empty generator registry.
func NewRegistry() *Registry {
	return &Registry{
		byType: make(map[models.MediaType]Generator),
	}
}

// Register adds a generator for its declared media type.
func (r *Registry) Register(g Generator) error {
	if g == nil {
		return errors.New("generator must not be nil")
	}
	mediaType := g.MediaType()
	if mediaType == "" {
		return fmt.Errorf("generator %q declares no media type", g.Name())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.byType[mediaType]; exists {
		return fmt.Errorf("%w: %s already handled by %s", ErrDuplicateGenerator, mediaType, existing.Name())
	}
	r.byType[mediaType] = g
	return nil
}

// Lookup returns the generator handling the given media type.
func (r *Registry) Lookup(mediaType models.MediaType) (Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.byType[mediaType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMediaType, mediaType)
	}
	return g, nil
}

// MediaTypes lists the registered media types in stable order.
func (r *Registry) MediaTypes() []models.MediaType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]models.MediaType, 0, len(r.byType))
	for mediaType := range r.byType {
		types = append(types, mediaType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
