package analysis

import "strings"

// Hit records one rule firing during feature extraction.
type Hit struct {
	Phrase        string
	Contributions []Contribution
}

// FeatureSet is the lexical evidence extracted from one prompt.
type FeatureSet struct {
	Tokens   []string // all normalized tokens, in order
	Hits     []Hit    // matched rules, in prompt order
	Keywords []string // significant tokens with stop words removed
}

// stopWords are tokens that carry no classification signal, including the
// imperative verbs users open generation prompts with.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {}, "my": {}, "your": {}, "our": {}, "its": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "can": {},
	"create": {}, "make": {}, "generate": {}, "build": {}, "design": {},
	"give": {}, "want": {}, "need": {}, "please": {}, "some": {},
}

const maxKeywords = 10

// normalize lower-cases a phrase and replaces every non-alphanumeric rune
// with a space, so "Sci-Fi!" and "sci fi" produce the same token stream.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Extract tokenizes the prompt and matches it against the rule table.
// Matching is greedy longest-phrase-first: at each position the longest
// declared phrase wins and consumes its tokens, so a "space warrior" rule
// suppresses the separate "space" rule for those tokens. Extraction never
// fails; unmatched or empty input yields an empty hit list.
func (t *RuleTable) Extract(prompt string) FeatureSet {
	tokens := strings.Fields(normalize(prompt))

	fs := FeatureSet{Tokens: tokens}

	for i := 0; i < len(tokens); {
		matched := 0
		maxLen := t.maxPhraseLen
		if rest := len(tokens) - i; rest < maxLen {
			maxLen = rest
		}
		for n := maxLen; n >= 1; n-- {
			phrase := strings.Join(tokens[i:i+n], " ")
			if contributions, ok := t.rules[phrase]; ok {
				fs.Hits = append(fs.Hits, Hit{Phrase: phrase, Contributions: contributions})
				matched = n
				break
			}
		}
		if matched == 0 {
			matched = 1
		}
		i += matched
	}

	fs.Keywords = significantTokens(tokens)
	return fs
}

func significantTokens(tokens []string) []string {
	var keywords []string
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		if len(tok) <= 2 {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		keywords = append(keywords, tok)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}
