package analysis

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Category names a classification dimension the rule table can score.
type Category string

const (
	CategoryMedia      Category = "media"
	CategoryTheme      Category = "theme"
	CategoryStyle      Category = "style"
	CategoryComplexity Category = "complexity"
)

var allCategories = []Category{CategoryMedia, CategoryTheme, CategoryStyle, CategoryComplexity}

// Contribution is a single (category, value, weight) vote a rule casts.
type Contribution struct {
	Category Category
	Value    string
	Weight   float64
}

// Rule maps a normalized phrase (one or more space-separated tokens) to the
// contributions it casts when the phrase appears in a prompt.
type Rule struct {
	Phrase        string
	Contributions []Contribution
}

// RuleTable is the static keyword knowledge base. It is built once at
// startup and read-only afterwards, so concurrent requests share it without
// synchronization.
type RuleTable struct {
	rules        map[string][]Contribution
	maxPhraseLen int
	priority     map[Category][]string
	rank         map[Category]map[string]int
}

// NewRuleTable validates and indexes a rule set. The priority map declares,
// per category, the fixed order used to break score ties; earlier entries
// win. Every category must carry a priority list so tie-breaking is total.
func NewRuleTable(rules []Rule, priority map[Category][]string) (*RuleTable, error) {
	if len(rules) == 0 {
		return nil, errors.New("rule table must contain at least one rule")
	}

	t := &RuleTable{
		rules:    make(map[string][]Contribution, len(rules)),
		priority: make(map[Category][]string, len(priority)),
		rank:     make(map[Category]map[string]int, len(priority)),
	}

	for _, cat := range allCategories {
		order, ok := priority[cat]
		if !ok || len(order) == 0 {
			return nil, fmt.Errorf("category %s: tie-break priority order must be declared", cat)
		}
		t.priority[cat] = append([]string(nil), order...)
		ranks := make(map[string]int, len(order))
		for i, value := range order {
			if _, dup := ranks[value]; dup {
				return nil, fmt.Errorf("category %s: value %q listed twice in priority order", cat, value)
			}
			ranks[value] = i
		}
		t.rank[cat] = ranks
	}

	for _, rule := range rules {
		phrase := normalize(rule.Phrase)
		if phrase == "" {
			return nil, fmt.Errorf("rule phrase %q normalizes to nothing", rule.Phrase)
		}
		if _, dup := t.rules[phrase]; dup {
			return nil, fmt.Errorf("rule phrase %q declared twice", phrase)
		}
		if len(rule.Contributions) == 0 {
			return nil, fmt.Errorf("rule %q has no contributions", phrase)
		}
		for _, c := range rule.Contributions {
			if c.Weight <= 0 {
				return nil, fmt.Errorf("rule %q: contribution weight must be positive, got %v", phrase, c.Weight)
			}
			if _, ok := t.rank[c.Category]; !ok {
				return nil, fmt.Errorf("rule %q: unknown category %q", phrase, c.Category)
			}
			if _, ok := t.rank[c.Category][c.Value]; !ok {
				return nil, fmt.Errorf("rule %q: value %q missing from %s priority order", phrase, c.Value, c.Category)
			}
		}
		t.rules[phrase] = append([]Contribution(nil), rule.Contributions...)

		if n := len(strings.Fields(phrase)); n > t.maxPhraseLen {
			t.maxPhraseLen = n
		}
	}

	return t, nil
}

// Values returns the declared values for a category in priority order.
func (t *RuleTable) Values(cat Category) []string {
	return append([]string(nil), t.priority[cat]...)
}

// betterValue reports whether candidate should replace current as the
// category winner given their accumulated weights. Higher weight wins; equal
// weight falls back to the declared priority order, then lexical order so
// the outcome is total and deterministic even for undeclared values.
func (t *RuleTable) betterValue(cat Category, candidate string, candidateWeight float64, current string, currentWeight float64) bool {
	if current == "" {
		return true
	}
	if candidateWeight != currentWeight {
		return candidateWeight > currentWeight
	}
	ranks := t.rank[cat]
	cr, cok := ranks[candidate]
	ur, uok := ranks[current]
	switch {
	case cok && uok:
		return cr < ur
	case cok:
		return true
	case uok:
		return false
	default:
		return candidate < current
	}
}

// DefaultRules returns the built-in keyword knowledge base. Weights follow a
// simple convention: a phrase that names its value outright (the word
// "image", the word "ninja") casts weight 2, associated vocabulary casts
// weight 1, and secondary defaults implied by a phrase (ninja prompts lean
// cartoon unless told otherwise) cast weight 1.
func DefaultRules() []Rule {
	rules := []Rule{
		// Multi-word phrases. These are matched longest-first and consume
		// their tokens, so "space battle" never also scores as "space".
		phraseRule("space battle", CategoryTheme, "space", 2, Contribution{CategoryStyle, "epic", 1}),
		phraseRule("epic battle", CategoryTheme, "epic", 2, Contribution{CategoryStyle, "epic", 2}),
		phraseRule("sci fi", CategoryTheme, "space", 2),
		phraseRule("sound effect", CategoryMedia, "audio", 2),
		phraseRule("old school", CategoryStyle, "retro", 2),
		phraseRule("8 bit", CategoryStyle, "retro", 2),
		phraseRule("pixel art", CategoryMedia, "image", 1, Contribution{CategoryStyle, "retro", 2}),
		phraseRule("high quality", CategoryComplexity, "high", 2),

		// Media type vocabulary.
		phraseRule("image", CategoryMedia, "image", 2),
		phraseRule("picture", CategoryMedia, "image", 2),
		phraseRule("photo", CategoryMedia, "image", 2),
		phraseRule("drawing", CategoryMedia, "image", 2),
		phraseRule("art", CategoryMedia, "image", 1),
		phraseRule("character", CategoryMedia, "image", 2),
		phraseRule("background", CategoryMedia, "image", 1),
		phraseRule("scene", CategoryMedia, "image", 1),
		phraseRule("sprite", CategoryMedia, "image", 2),
		phraseRule("icon", CategoryMedia, "image", 2),
		phraseRule("logo", CategoryMedia, "image", 2),
		phraseRule("video", CategoryMedia, "video", 2),
		phraseRule("animation", CategoryMedia, "video", 2),
		phraseRule("animate", CategoryMedia, "video", 2),
		phraseRule("movie", CategoryMedia, "video", 2),
		phraseRule("clip", CategoryMedia, "video", 1),
		phraseRule("gif", CategoryMedia, "video", 2),
		phraseRule("motion", CategoryMedia, "video", 1),
		phraseRule("cinematic", CategoryMedia, "video", 1, Contribution{CategoryStyle, "epic", 1}),
		phraseRule("trailer", CategoryMedia, "video", 2),
		phraseRule("audio", CategoryMedia, "audio", 2),
		phraseRule("music", CategoryMedia, "audio", 2),
		phraseRule("sound", CategoryMedia, "audio", 2),
		phraseRule("song", CategoryMedia, "audio", 2),
		phraseRule("melody", CategoryMedia, "audio", 2),
		phraseRule("beat", CategoryMedia, "audio", 1),
		phraseRule("soundtrack", CategoryMedia, "audio", 2),
		phraseRule("voice", CategoryMedia, "audio", 1),

		// Themes. The namesake keyword casts 2, associated words cast 1.
		// Ninja prompts default to a cartoon rendering unless the prompt
		// says otherwise, so the namesake also casts a weight-1 style vote.
		phraseRule("ninja", CategoryTheme, "ninja", 2, Contribution{CategoryStyle, "cartoon", 1}),
		phraseRule("stealth", CategoryTheme, "ninja", 1),
		phraseRule("shadow", CategoryTheme, "ninja", 1),
		phraseRule("assassin", CategoryTheme, "ninja", 1),
		phraseRule("katana", CategoryTheme, "ninja", 1),
		phraseRule("shuriken", CategoryTheme, "ninja", 1),
		phraseRule("samurai", CategoryTheme, "ninja", 1),
		phraseRule("space", CategoryTheme, "space", 2),
		phraseRule("cosmic", CategoryTheme, "space", 1),
		phraseRule("galaxy", CategoryTheme, "space", 1),
		phraseRule("planet", CategoryTheme, "space", 1),
		phraseRule("alien", CategoryTheme, "space", 1),
		phraseRule("spaceship", CategoryTheme, "space", 1),
		phraseRule("futuristic", CategoryTheme, "space", 1),
		phraseRule("medieval", CategoryTheme, "medieval", 2),
		phraseRule("knight", CategoryTheme, "medieval", 1),
		phraseRule("castle", CategoryTheme, "medieval", 1),
		phraseRule("sword", CategoryTheme, "medieval", 1),
		phraseRule("armor", CategoryTheme, "medieval", 1),
		phraseRule("dragon", CategoryTheme, "medieval", 1),
		phraseRule("kingdom", CategoryTheme, "medieval", 1),
		phraseRule("fantasy", CategoryTheme, "medieval", 1),
		phraseRule("forest", CategoryTheme, "forest", 2),
		phraseRule("tree", CategoryTheme, "forest", 1),
		phraseRule("nature", CategoryTheme, "forest", 1),
		phraseRule("woodland", CategoryTheme, "forest", 1),
		phraseRule("leaf", CategoryTheme, "forest", 1),
		phraseRule("underwater", CategoryTheme, "underwater", 2),
		phraseRule("ocean", CategoryTheme, "underwater", 1),
		phraseRule("sea", CategoryTheme, "underwater", 1),
		phraseRule("fish", CategoryTheme, "underwater", 1),
		phraseRule("coral", CategoryTheme, "underwater", 1),
		phraseRule("aquatic", CategoryTheme, "underwater", 1),
		phraseRule("marine", CategoryTheme, "underwater", 1),

		// Styles, including mood vocabulary folded into the style axis.
		phraseRule("realistic", CategoryStyle, "realistic", 2),
		phraseRule("photorealistic", CategoryStyle, "realistic", 2),
		phraseRule("lifelike", CategoryStyle, "realistic", 1),
		phraseRule("cartoon", CategoryStyle, "cartoon", 2),
		phraseRule("stylized", CategoryStyle, "cartoon", 1),
		phraseRule("cute", CategoryStyle, "cartoon", 1),
		phraseRule("playful", CategoryStyle, "cartoon", 1),
		phraseRule("colorful", CategoryStyle, "bright", 1),
		phraseRule("abstract", CategoryStyle, "abstract", 2),
		phraseRule("artistic", CategoryStyle, "abstract", 1),
		phraseRule("experimental", CategoryStyle, "abstract", 1),
		phraseRule("minimalist", CategoryStyle, "minimalist", 2),
		phraseRule("clean", CategoryStyle, "minimalist", 1),
		phraseRule("elegant", CategoryStyle, "minimalist", 1),
		phraseRule("retro", CategoryStyle, "retro", 2),
		phraseRule("vintage", CategoryStyle, "retro", 1),
		phraseRule("pixel", CategoryStyle, "retro", 1),
		phraseRule("nostalgic", CategoryStyle, "retro", 1),
		phraseRule("epic", CategoryTheme, "epic", 1, Contribution{CategoryStyle, "epic", 2}),
		phraseRule("dramatic", CategoryStyle, "epic", 1),
		phraseRule("heroic", CategoryStyle, "epic", 1),
		phraseRule("majestic", CategoryStyle, "epic", 1),
		phraseRule("peaceful", CategoryStyle, "peaceful", 2),
		phraseRule("calm", CategoryStyle, "peaceful", 1),
		phraseRule("relaxing", CategoryStyle, "peaceful", 1),
		phraseRule("serene", CategoryStyle, "peaceful", 1),
		phraseRule("ambient", CategoryStyle, "peaceful", 1, Contribution{CategoryMedia, "audio", 1}),
		phraseRule("dark", CategoryStyle, "dark", 2),
		phraseRule("mysterious", CategoryStyle, "dark", 1),
		phraseRule("gothic", CategoryStyle, "dark", 1),
		phraseRule("ominous", CategoryStyle, "dark", 1),
		phraseRule("eerie", CategoryStyle, "dark", 1),
		phraseRule("bright", CategoryStyle, "bright", 2),
		phraseRule("cheerful", CategoryStyle, "bright", 1),
		phraseRule("vibrant", CategoryStyle, "bright", 1),
		phraseRule("energetic", CategoryStyle, "bright", 1),

		// Complexity tiers. "minimal" also nudges style.
		phraseRule("simple", CategoryComplexity, "low", 2),
		phraseRule("basic", CategoryComplexity, "low", 1),
		phraseRule("quick", CategoryComplexity, "low", 1),
		phraseRule("plain", CategoryComplexity, "low", 1),
		phraseRule("minimal", CategoryComplexity, "low", 1, Contribution{CategoryStyle, "minimalist", 1}),
		phraseRule("detailed", CategoryComplexity, "high", 2),
		phraseRule("complex", CategoryComplexity, "high", 2),
		phraseRule("intricate", CategoryComplexity, "high", 1),
		phraseRule("elaborate", CategoryComplexity, "high", 1),
		phraseRule("sophisticated", CategoryComplexity, "high", 1),
		phraseRule("professional", CategoryComplexity, "high", 1),
		phraseRule("polished", CategoryComplexity, "high", 1),
		phraseRule("premium", CategoryComplexity, "high", 1),
	}

	sort.SliceStable(rules, func(i, j int) bool { return rules[i].Phrase < rules[j].Phrase })
	return rules
}

// DefaultPriority returns the declared per-category tie-break orders.
// Earlier values win ties. Specific themes outrank the generic mood theme
// "epic"; complexity prefers the medium tier when signals balance out.
func DefaultPriority() map[Category][]string {
	return map[Category][]string{
		CategoryMedia: {"image", "video", "audio"},
		CategoryTheme: {"ninja", "space", "medieval", "forest", "underwater", "epic"},
		CategoryStyle: {
			"realistic", "cartoon", "abstract", "minimalist", "retro",
			"epic", "peaceful", "dark", "bright",
		},
		CategoryComplexity: {"medium", "high", "low"},
	}
}

// DefaultTable builds the compiled-in rule table. The default rule set is
// validated by construction, so failure here is a programming error.
func DefaultTable() *RuleTable {
	t, err := NewRuleTable(DefaultRules(), DefaultPriority())
	if err != nil {
		panic(fmt.Sprintf("default rule table invalid: %v", err))
	}
	return t
}

// Capabilities summarises the classifiable value space for API consumers.
type Capabilities struct {
	MediaTypes   []string `json:"media_types"`
	Themes       []string `json:"themes"`
	Styles       []string `json:"styles"`
	Complexities []string `json:"complexities"`
}

// Capabilities reports the enumerations the table can classify into.
func (t *RuleTable) Capabilities() Capabilities {
	return Capabilities{
		MediaTypes:   t.Values(CategoryMedia),
		Themes:       t.Values(CategoryTheme),
		Styles:       t.Values(CategoryStyle),
		Complexities: t.Values(CategoryComplexity),
	}
}

func phraseRule(phrase string, cat Category, value string, weight float64, extra ...Contribution) Rule {
	contributions := append([]Contribution{{Category: cat, Value: value, Weight: weight}}, extra...)
	return Rule{Phrase: phrase, Contributions: contributions}
}
