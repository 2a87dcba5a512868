// Package image renders prompts into procedural SVG artifacts. Output is a
// pure function of the generation request, so repeated requests produce
// identical documents.
package image

import (
	"context"
	"fmt"
	"strings"

	"media-router/internal/generator"
	"media-router/internal/models"
)

const (
	canvasWidth  = 400
	canvasHeight = 400

	// FormatSVG tags the artifact format in the response envelope.
	FormatSVG = "svg"
)

type imageKind string

const (
	kindCharacter   imageKind = "character"
	kindEnvironment imageKind = "environment"
	kindUIElement   imageKind = "ui_element"
	kindAbstract    imageKind = "abstract"
)

var characterWords = []string{"character", "person", "hero", "warrior", "ninja", "mage", "knight", "robot", "creature"}
var environmentWords = []string{"background", "landscape", "scene", "environment", "forest", "castle", "space", "room"}
var uiWords = []string{"button", "icon", "logo", "interface", "menu", "badge", "symbol"}

// Generator produces SVG images.
type Generator struct{}

// New constructs the SVG image generator.
func New() *Generator {
	return &Generator{}
}

func (g *Generator) Name() string { return "procedural-svg" }

func (g *Generator) MediaType() models.MediaType { return models.MediaImage }

// Generate builds a themed SVG document for the request. The image kind
// (character, environment, UI element or abstract) is chosen from the
// request keywords; the theme selects the palette and high complexity adds
// detail layers.
func (g *Generator) Generate(ctx context.Context, req models.GenerationRequest) (*models.GenerationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kind := detectKind(req.Keywords)
	palette := generator.PaletteFor(req.Theme)

	var body string
	switch kind {
	case kindCharacter:
		body = characterBody(palette, req.Complexity)
	case kindEnvironment:
		body = environmentBody(palette, req.Theme, req.Complexity)
	case kindUIElement:
		body = uiElementBody(palette, req.Complexity)
	default:
		body = abstractBody(palette, req.Complexity)
	}

	description := fmt.Sprintf("Procedural %s artwork", kind)
	if req.Theme != models.ValueNone {
		description = fmt.Sprintf("Procedural %s %s artwork", req.Theme, kind)
	}

	return &models.GenerationResult{
		Format:      FormatSVG,
		Content:     wrapSVG(palette, body),
		Description: description,
	}, nil
}

func detectKind(keywords []string) imageKind {
	for _, kw := range keywords {
		if contains(characterWords, kw) {
			return kindCharacter
		}
	}
	for _, kw := range keywords {
		if contains(environmentWords, kw) {
			return kindEnvironment
		}
	}
	for _, kw := range keywords {
		if contains(uiWords, kw) {
			return kindUIElement
		}
	}
	return kindAbstract
}

func contains(words []string, w string) bool {
	for _, candidate := range words {
		if candidate == w {
			return true
		}
	}
	return false
}

func wrapSVG(p generator.Palette, body string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		canvasWidth, canvasHeight, canvasWidth, canvasHeight)
	fmt.Fprintf(&b, `<defs><linearGradient id="bg" x1="0%%" y1="0%%" x2="100%%" y2="100%%">`)
	fmt.Fprintf(&b, `<stop offset="0%%" stop-color="%s"/><stop offset="100%%" stop-color="%s"/>`, p.Background, p.Primary)
	b.WriteString(`</linearGradient></defs>`)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="url(#bg)"/>`, canvasWidth, canvasHeight)
	b.WriteString(body)
	b.WriteString(`</svg>`)
	return b.String()
}

func characterBody(p generator.Palette, complexity models.Complexity) string {
	var b strings.Builder
	// Head, torso, limbs as simple primitives.
	fmt.Fprintf(&b, `<circle cx="200" cy="120" r="40" fill="%s"/>`, p.Secondary)
	fmt.Fprintf(&b, `<rect x="170" y="160" width="60" height="100" rx="12" fill="%s"/>`, p.Primary)
	fmt.Fprintf(&b, `<rect x="140" y="170" width="26" height="80" rx="10" fill="%s"/>`, p.Secondary)
	fmt.Fprintf(&b, `<rect x="234" y="170" width="26" height="80" rx="10" fill="%s"/>`, p.Secondary)
	fmt.Fprintf(&b, `<rect x="176" y="260" width="20" height="80" rx="8" fill="%s"/>`, p.Primary)
	fmt.Fprintf(&b, `<rect x="204" y="260" width="20" height="80" rx="8" fill="%s"/>`, p.Primary)
	fmt.Fprintf(&b, `<circle cx="186" cy="112" r="6" fill="%s"/>`, p.Accent)
	fmt.Fprintf(&b, `<circle cx="214" cy="112" r="6" fill="%s"/>`, p.Accent)
	if complexity == models.ComplexityHigh {
		fmt.Fprintf(&b, `<path d="M160 96 Q200 60 240 96" stroke="%s" stroke-width="6" fill="none"/>`, p.Accent)
		fmt.Fprintf(&b, `<rect x="166" y="196" width="68" height="10" fill="%s" opacity="0.8"/>`, p.Accent)
	}
	return b.String()
}

func environmentBody(p generator.Palette, theme string, complexity models.Complexity) string {
	var b strings.Builder
	// Ground plane plus a themed focal element.
	fmt.Fprintf(&b, `<rect x="0" y="280" width="%d" height="120" fill="%s"/>`, canvasWidth, p.Secondary)
	switch theme {
	case "space":
		fmt.Fprintf(&b, `<circle cx="300" cy="90" r="44" fill="%s"/>`, p.Accent)
		for i := 0; i < 8; i++ {
			fmt.Fprintf(&b, `<circle cx="%d" cy="%d" r="2" fill="#ffffff"/>`, 40+i*45, 40+(i%3)*30)
		}
	case "forest":
		for i := 0; i < 4; i++ {
			x := 60 + i*90
			fmt.Fprintf(&b, `<rect x="%d" y="220" width="16" height="70" fill="%s"/>`, x, p.Primary)
			fmt.Fprintf(&b, `<circle cx="%d" cy="200" r="38" fill="%s"/>`, x+8, p.Accent)
		}
	case "medieval":
		fmt.Fprintf(&b, `<rect x="150" y="150" width="100" height="140" fill="%s"/>`, p.Primary)
		fmt.Fprintf(&b, `<polygon points="150,150 200,100 250,150" fill="%s"/>`, p.Accent)
	default:
		fmt.Fprintf(&b, `<circle cx="200" cy="140" r="60" fill="%s" opacity="0.9"/>`, p.Accent)
	}
	if complexity == models.ComplexityHigh {
		fmt.Fprintf(&b, `<ellipse cx="200" cy="300" rx="150" ry="16" fill="%s" opacity="0.4"/>`, p.Accent)
	}
	return b.String()
}

func uiElementBody(p generator.Palette, complexity models.Complexity) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<rect x="100" y="160" width="200" height="80" rx="16" fill="%s"/>`, p.Primary)
	fmt.Fprintf(&b, `<rect x="108" y="168" width="184" height="64" rx="12" fill="%s"/>`, p.Secondary)
	fmt.Fprintf(&b, `<circle cx="200" cy="200" r="18" fill="%s"/>`, p.Accent)
	if complexity == models.ComplexityHigh {
		fmt.Fprintf(&b, `<rect x="100" y="160" width="200" height="80" rx="16" fill="none" stroke="%s" stroke-width="3"/>`, p.Accent)
	}
	return b.String()
}

func abstractBody(p generator.Palette, complexity models.Complexity) string {
	var b strings.Builder
	shapes := 5
	if complexity == models.ComplexityHigh {
		shapes = 9
	}
	for i := 0; i < shapes; i++ {
		cx := 60 + (i*67)%280
		cy := 70 + (i*53)%260
		r := 18 + (i*11)%40
		color := p.Accent
		if i%2 == 0 {
			color = p.Secondary
		}
		fmt.Fprintf(&b, `<circle cx="%d" cy="%d" r="%d" fill="%s" opacity="0.7"/>`, cx, cy, r, color)
	}
	return b.String()
}
