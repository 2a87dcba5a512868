// Package audio renders prompts into Web Audio API scripts that synthesize
// the requested sound in the browser. Compositions are derived purely from
// the request, so identical requests yield identical scripts.
package audio

import (
	"context"
	"fmt"
	"strings"

	"media-router/internal/models"
)

// FormatWebAudio tags the artifact format in the response envelope.
const FormatWebAudio = "web_audio"

type audioKind string

const (
	kindMusic   audioKind = "music"
	kindEffect  audioKind = "effect"
	kindAmbient audioKind = "ambient"
)

const (
	minDuration = 1
	maxDuration = 30
)

// pentatonic base frequencies (A minor) the composer walks over.
var scale = []float64{220.00, 261.63, 293.66, 329.63, 392.00, 440.00}

// themeProfile shapes tempo and register per theme.
type themeProfile struct {
	tempoBPM int
	octave   float64 // frequency multiplier
	waveform string
}

var profiles = map[string]themeProfile{
	"ninja":      {tempoBPM: 140, octave: 1.0, waveform: "square"},
	"space":      {tempoBPM: 90, octave: 2.0, waveform: "sine"},
	"medieval":   {tempoBPM: 110, octave: 1.0, waveform: "triangle"},
	"forest":     {tempoBPM: 80, octave: 1.5, waveform: "sine"},
	"underwater": {tempoBPM: 70, octave: 0.5, waveform: "sine"},
	"epic":       {tempoBPM: 130, octave: 1.0, waveform: "sawtooth"},
}

var defaultProfile = themeProfile{tempoBPM: 100, octave: 1.0, waveform: "sine"}

// Generator produces Web Audio synthesis scripts.
type Generator struct{}

// New constructs the Web Audio generator.
func New() *Generator {
	return &Generator{}
}

func (g *Generator) Name() string { return "web-audio" }

func (g *Generator) MediaType() models.MediaType { return models.MediaAudio }

// Generate composes a synthesis script. The audio kind (music, sound
// effect or ambient bed) comes from keywords; the explicit duration wins
// when given, otherwise a per-kind default applies, clamped either way.
func (g *Generator) Generate(ctx context.Context, req models.GenerationRequest) (*models.GenerationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kind := detectKind(req.Keywords)
	duration := audioDuration(req.Duration, kind, req.Complexity)
	profile := profileFor(req.Theme, req.Style)

	var script string
	switch kind {
	case kindEffect:
		script = effectScript(profile, duration)
	case kindAmbient:
		script = ambientScript(profile, duration)
	default:
		script = musicScript(profile, duration)
	}

	return &models.GenerationResult{
		Format:      FormatWebAudio,
		Content:     script,
		Description: fmt.Sprintf("%s composition, %ds at %d BPM", kind, duration, profile.tempoBPM),
	}, nil
}

func detectKind(keywords []string) audioKind {
	for _, kw := range keywords {
		switch kw {
		case "effect", "effects", "sfx", "hit", "jump", "coin", "explosion":
			return kindEffect
		case "ambient", "ambience", "atmosphere", "background", "bed":
			return kindAmbient
		}
	}
	return kindMusic
}

func audioDuration(override int, kind audioKind, complexity models.Complexity) int {
	if override > 0 {
		return clampDuration(override)
	}

	var duration int
	switch kind {
	case kindEffect:
		duration = 2
	case kindAmbient:
		duration = 15
	default:
		duration = 10
	}
	if complexity == models.ComplexityHigh {
		duration += 5
	}
	return clampDuration(duration)
}

func clampDuration(d int) int {
	if d < minDuration {
		return minDuration
	}
	if d > maxDuration {
		return maxDuration
	}
	return d
}

func profileFor(theme, style string) themeProfile {
	profile, ok := profiles[theme]
	if !ok {
		profile = defaultProfile
	}
	// Mood styles adjust tempo around the theme's baseline.
	switch style {
	case "epic":
		profile.tempoBPM += 20
	case "peaceful":
		profile.tempoBPM -= 20
	case "dark":
		profile.octave *= 0.5
	case "bright":
		profile.octave *= 2.0
	}
	if profile.tempoBPM < 50 {
		profile.tempoBPM = 50
	}
	return profile
}

// musicScript schedules a walked pentatonic melody over the duration.
func musicScript(p themeProfile, duration int) string {
	beat := 60.0 / float64(p.tempoBPM)
	notes := int(float64(duration) / beat)

	var b strings.Builder
	b.WriteString(scriptHeader(duration))
	for i := 0; i < notes; i++ {
		freq := scale[i%len(scale)] * p.octave
		start := float64(i) * beat
		fmt.Fprintf(&b, "playNote(%.2f, %.3f, %.3f, '%s');\n", freq, start, beat*0.9, p.waveform)
	}
	return b.String()
}

// effectScript produces a short pitch sweep.
func effectScript(p themeProfile, duration int) string {
	var b strings.Builder
	b.WriteString(scriptHeader(duration))
	fmt.Fprintf(&b, "sweep(%.2f, %.2f, %d, '%s');\n", 880.0*p.octave, 110.0*p.octave, duration, p.waveform)
	return b.String()
}

// ambientScript layers slow detuned drones.
func ambientScript(p themeProfile, duration int) string {
	var b strings.Builder
	b.WriteString(scriptHeader(duration))
	base := scale[0] * p.octave
	for i, detune := range []float64{1.0, 1.005, 1.5} {
		fmt.Fprintf(&b, "drone(%.2f, %d, %.2f, '%s');\n", base*detune, duration, 0.12-float64(i)*0.03, p.waveform)
	}
	return b.String()
}

func scriptHeader(duration int) string {
	return fmt.Sprintf(`// Generated Web Audio composition (%d seconds).
const ctx = new (window.AudioContext || window.webkitAudioContext)();
const master = ctx.createGain();
master.gain.value = 0.3;
master.connect(ctx.destination);

function playNote(freq, start, length, wave) {
  const osc = ctx.createOscillator();
  const gain = ctx.createGain();
  osc.type = wave;
  osc.frequency.value = freq;
  gain.gain.setValueAtTime(0.0001, ctx.currentTime + start);
  gain.gain.exponentialRampToValueAtTime(0.5, ctx.currentTime + start + 0.02);
  gain.gain.exponentialRampToValueAtTime(0.0001, ctx.currentTime + start + length);
  osc.connect(gain).connect(master);
  osc.start(ctx.currentTime + start);
  osc.stop(ctx.currentTime + start + length);
}

function sweep(fromFreq, toFreq, length, wave) {
  const osc = ctx.createOscillator();
  const gain = ctx.createGain();
  osc.type = wave;
  osc.frequency.setValueAtTime(fromFreq, ctx.currentTime);
  osc.frequency.exponentialRampToValueAtTime(toFreq, ctx.currentTime + length);
  gain.gain.setValueAtTime(0.4, ctx.currentTime);
  gain.gain.exponentialRampToValueAtTime(0.0001, ctx.currentTime + length);
  osc.connect(gain).connect(master);
  osc.start();
  osc.stop(ctx.currentTime + length);
}

function drone(freq, length, level, wave) {
  const osc = ctx.createOscillator();
  const gain = ctx.createGain();
  osc.type = wave;
  osc.frequency.value = freq;
  gain.gain.setValueAtTime(0.0001, ctx.currentTime);
  gain.gain.exponentialRampToValueAtTime(level, ctx.currentTime + 2);
  gain.gain.exponentialRampToValueAtTime(0.0001, ctx.currentTime + length);
  osc.connect(gain).connect(master);
  osc.start();
  osc.stop(ctx.currentTime + length);
}

`, duration)
}
