package generator

// Palette is the color scheme a theme maps to. All three generators share
// the same palettes so themed image, video and audio artifacts look and
// feel related.
type Palette struct {
	Primary    string
	Secondary  string
	Accent     string
	Background string
}

var palettes = map[string]Palette{
	"ninja":      {Primary: "#2c3e50", Secondary: "#34495e", Accent: "#e74c3c", Background: "#1a1a2e"},
	"space":      {Primary: "#0f3460", Secondary: "#533483", Accent: "#e94560", Background: "#16213e"},
	"medieval":   {Primary: "#8b4513", Secondary: "#a0522d", Accent: "#ffd700", Background: "#2f1b14"},
	"forest":     {Primary: "#228b22", Secondary: "#32cd32", Accent: "#90ee90", Background: "#0b3d0b"},
	"underwater": {Primary: "#006994", Secondary: "#0099cc", Accent: "#66ccff", Background: "#003152"},
	"epic":       {Primary: "#7b1e1e", Secondary: "#b8860b", Accent: "#ffae42", Background: "#1c0f0f"},
}

var defaultPalette = Palette{Primary: "#4a90d9", Secondary: "#7b68ee", Accent: "#f39c12", Background: "#2c2c54"}

// PaletteFor returns the palette for a theme, falling back to a neutral
// scheme for unknown themes or the "none" default.
func PaletteFor(theme string) Palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return defaultPalette
}
