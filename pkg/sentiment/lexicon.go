package sentiment

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// NegationWindow is how many preceding tokens can negate a sentiment word.
const NegationWindow = 3

// negatedScale reverses and weakens a negated word's polarity.
const negatedScale = -0.5

// Lexicon is a rule-based scorer. It is read-only after construction.
type Lexicon struct {
	words        map[string]float64
	intensifiers map[string]float64
	negations    map[string]struct{}
}

// LexiconFile is the YAML layout used to extend the built-in lexicon.
type LexiconFile struct {
	Words        map[string]float64 `yaml:"words"`
	Intensifiers map[string]float64 `yaml:"intensifiers"`
	Negations    []string           `yaml:"negations"`
}

// NewLexicon returns the built-in English lexicon.
func NewLexicon() *Lexicon {
	l := &Lexicon{
		words:        make(map[string]float64, len(defaultWords)),
		intensifiers: make(map[string]float64, len(defaultIntensifiers)),
		negations:    make(map[string]struct{}, len(defaultNegations)),
	}
	for w, s := range defaultWords {
		l.words[w] = s
	}
	for w, m := range defaultIntensifiers {
		l.intensifiers[w] = m
	}
	for _, w := range defaultNegations {
		l.negations[w] = struct{}{}
	}
	return l
}

// LoadLexicon returns the built-in lexicon extended with entries from a YAML
// file. File entries override built-in ones.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon: %w", err)
	}

	var file LexiconFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon %s: %w", path, err)
	}

	l := NewLexicon()
	for w, s := range file.Words {
		if s < -1 || s > 1 {
			return nil, fmt.Errorf("lexicon %s: polarity for %q is %v, want [-1, 1]", path, w, s)
		}
		l.words[strings.ToLower(w)] = s
	}
	for w, m := range file.Intensifiers {
		if m <= 0 {
			return nil, fmt.Errorf("lexicon %s: intensifier %q must be positive", path, w)
		}
		l.intensifiers[strings.ToLower(w)] = m
	}
	for _, w := range file.Negations {
		l.negations[strings.ToLower(w)] = struct{}{}
	}
	return l, nil
}

func (l *Lexicon) Available() bool { return true }

// Polarity averages the scores of lexicon words found in text. A word is
// scaled by a directly preceding intensifier and reversed at half strength
// when a negation occurs within NegationWindow tokens before it. Text with no
// lexicon words scores 0.
func (l *Lexicon) Polarity(text string) float64 {
	tokens := tokenize(text)

	var total float64
	hits := 0
	for i, tok := range tokens {
		score, ok := l.words[tok]
		if !ok {
			continue
		}
		if i > 0 {
			if m, ok := l.intensifiers[tokens[i-1]]; ok {
				score *= m
			}
		}
		if l.negated(tokens, i) {
			score *= negatedScale
		}
		total += score
		hits++
	}

	if hits == 0 {
		return 0
	}
	return clamp(total / float64(hits))
}

func (l *Lexicon) negated(tokens []string, pos int) bool {
	start := pos - NegationWindow
	if start < 0 {
		start = 0
	}
	for i := start; i < pos; i++ {
		if _, ok := l.negations[tokens[i]]; ok {
			return true
		}
		if strings.HasSuffix(tokens[i], "n't") {
			return true
		}
	}
	return false
}

// tokenize lowercases and splits on anything that is not a letter, digit or
// apostrophe. Clause punctuation ends a token run but is not kept.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '’'
	})
}

func clamp(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}
