package analysis

import "media-router/internal/models"

const (
	// NoEvidenceConfidence is reported for a category no rule fired for;
	// the field holds its documented default and the caller can tell the
	// fallback apart from an inferred value.
	NoEvidenceConfidence = 0.25

	// MinEvidenceConfidence floors the confidence of any category with at
	// least one rule hit, so a single strong keyword still reports a
	// usable score strictly above the no-evidence constant.
	MinEvidenceConfidence = 0.5
)

// Prompt length thresholds feeding the complexity heuristic. They mirror
// the observation that long prompts ask for detail and terse ones for
// simplicity.
const (
	longPromptTokens  = 10
	shortPromptTokens = 5
	lengthHintWeight  = 1.0
)

// Scores accumulates rule-hit weight per category and value.
type Scores map[Category]map[string]float64

// Add accumulates one contribution.
func (s Scores) Add(c Contribution) {
	values, ok := s[c.Category]
	if !ok {
		values = make(map[string]float64)
		s[c.Category] = values
	}
	values[c.Value] += c.Weight
}

// Score folds a feature set into per-category weight maps. Prompt length
// contributes to complexity only when complexity keywords already fired;
// otherwise an unrecognized prompt must degrade to the documented medium
// default rather than inventing evidence.
func (t *RuleTable) Score(fs FeatureSet) Scores {
	scores := make(Scores, len(allCategories))
	for _, hit := range fs.Hits {
		for _, c := range hit.Contributions {
			scores.Add(c)
		}
	}

	if len(scores[CategoryComplexity]) > 0 {
		switch n := len(fs.Tokens); {
		case n > longPromptTokens:
			scores.Add(Contribution{CategoryComplexity, string(models.ComplexityHigh), lengthHintWeight})
		case n < shortPromptTokens:
			scores.Add(Contribution{CategoryComplexity, string(models.ComplexityLow), lengthHintWeight})
		}
	}

	return scores
}

// Classify turns a feature set into a Classification. Each category picks
// the value with the highest accumulated weight; ties fall back to the
// table's declared priority order, so the result is deterministic. A
// category without evidence takes its documented default (media image,
// theme and style none, complexity medium) at NoEvidenceConfidence.
func (t *RuleTable) Classify(fs FeatureSet) models.Classification {
	scores := t.Score(fs)

	media, mediaConf := t.pick(CategoryMedia, scores, string(models.MediaImage))
	theme, themeConf := t.pick(CategoryTheme, scores, models.ValueNone)
	style, styleConf := t.pick(CategoryStyle, scores, models.ValueNone)
	complexity, complexityConf := t.pick(CategoryComplexity, scores, string(models.ComplexityMedium))

	return models.Classification{
		MediaType:  models.MediaType(media),
		Theme:      theme,
		Style:      style,
		Complexity: models.Complexity(complexity),
		Keywords:   fs.Keywords,
		Confidence: models.Confidence{
			MediaType:  mediaConf,
			Theme:      themeConf,
			Style:      styleConf,
			Complexity: complexityConf,
		},
	}
}

// pick selects the winning value and its confidence for one category.
// Confidence is the winner's share of the category's total weight, floored
// at MinEvidenceConfidence; no evidence yields the category default at
// NoEvidenceConfidence.
func (t *RuleTable) pick(cat Category, scores Scores, fallback string) (string, float64) {
	values := scores[cat]
	if len(values) == 0 {
		return fallback, NoEvidenceConfidence
	}

	var (
		winner    string
		winWeight float64
		total     float64
	)
	for value, weight := range values {
		total += weight
		if t.betterValue(cat, value, weight, winner, winWeight) {
			winner = value
			winWeight = weight
		}
	}

	confidence := winWeight / total
	if confidence < MinEvidenceConfidence {
		confidence = MinEvidenceConfidence
	}
	return winner, confidence
}
