// Package vectorizer applies a pre-fitted TF-IDF transformer exported from the
// training environment. It reproduces tokenization, normalization and weighting
// exactly; it never refits.
package vectorizer

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/dtnitsch/fake-news-detector/models"
	"github.com/dtnitsch/fake-news-detector/pkg/artifact_manager"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultTokenPattern is the token pattern used when the artifact omits one.
const DefaultTokenPattern = `(?u)\b\w\w+\b`

const (
	NormL2   = "l2"
	NormL1   = "l1"
	NormNone = "none"
)

// Artifact is the exported form of a fitted vectorizer.
// StopWords must be the resolved list, not a named preset.
type Artifact struct {
	Vocabulary   map[string]int `json:"vocabulary" yaml:"vocabulary"`
	IDF          []float64      `json:"idf" yaml:"idf"`
	Lowercase    *bool          `json:"lowercase,omitempty" yaml:"lowercase,omitempty"`
	StripAccents string         `json:"strip_accents,omitempty" yaml:"strip_accents,omitempty"`
	StopWords    []string       `json:"stop_words,omitempty" yaml:"stop_words,omitempty"`
	TokenPattern string         `json:"token_pattern,omitempty" yaml:"token_pattern,omitempty"`
	NgramRange   []int          `json:"ngram_range,omitempty" yaml:"ngram_range,omitempty"`
	SublinearTF  bool           `json:"sublinear_tf,omitempty" yaml:"sublinear_tf,omitempty"`
	UseIDF       *bool          `json:"use_idf,omitempty" yaml:"use_idf,omitempty"`
	Norm         string         `json:"norm,omitempty" yaml:"norm,omitempty"` // absent: l2; l1; null or "none": unnormalized
	Language     string         `json:"language,omitempty" yaml:"language,omitempty"`
}

// Vectorizer is immutable after construction and safe for concurrent use.
type Vectorizer struct {
	vocab        map[string]int
	idf          []float64
	dim          int
	lowercase    bool
	stripAccents string
	stopWords    map[string]struct{}
	tokenize     func(string) []string
	ngramMin     int
	ngramMax     int
	sublinear    bool
	useIDF       bool
	norm         string
	language     string
}

// Load reads and validates a vectorizer artifact.
func Load(path string) (*Vectorizer, *artifact_manager.Artifact, error) {
	a, err := artifact_manager.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var art Artifact
	if err := a.Decode(&art); err != nil {
		return nil, nil, err
	}
	v, err := New(&art)
	if err != nil {
		return nil, nil, fmt.Errorf("vectorizer %s: %w", path, err)
	}
	return v, a, nil
}

// New validates an artifact and builds a Vectorizer from it.
func New(a *Artifact) (*Vectorizer, error) {
	dim := len(a.Vocabulary)
	if dim == 0 {
		return nil, fmt.Errorf("%w: empty vocabulary", models.ErrArtifactLoad)
	}

	seen := make([]bool, dim)
	for term, idx := range a.Vocabulary {
		if idx < 0 || idx >= dim {
			return nil, fmt.Errorf("%w: term %q has column %d outside [0, %d)", models.ErrArtifactLoad, term, idx, dim)
		}
		if seen[idx] {
			return nil, fmt.Errorf("%w: column %d assigned twice", models.ErrArtifactLoad, idx)
		}
		seen[idx] = true
	}

	v := &Vectorizer{
		vocab:        a.Vocabulary,
		dim:          dim,
		lowercase:    a.Lowercase == nil || *a.Lowercase,
		stripAccents: a.StripAccents,
		sublinear:    a.SublinearTF,
		useIDF:       a.UseIDF == nil || *a.UseIDF,
		language:     strings.ToLower(a.Language),
		ngramMin:     1,
		ngramMax:     1,
	}
	if v.language == "" {
		v.language = "en"
	}

	if v.useIDF {
		if len(a.IDF) != dim {
			return nil, fmt.Errorf("%w: idf has %d weights for %d vocabulary terms", models.ErrArtifactLoad, len(a.IDF), dim)
		}
		v.idf = a.IDF
	}

	switch a.StripAccents {
	case "", "unicode", "ascii":
	default:
		return nil, fmt.Errorf("%w: unknown strip_accents %q", models.ErrArtifactLoad, a.StripAccents)
	}

	switch a.Norm {
	case "", NormL2:
		v.norm = NormL2
	case NormL1, NormNone:
		v.norm = a.Norm
	default:
		return nil, fmt.Errorf("%w: unknown norm %q", models.ErrArtifactLoad, a.Norm)
	}

	if len(a.NgramRange) != 0 {
		if len(a.NgramRange) != 2 || a.NgramRange[0] < 1 || a.NgramRange[1] < a.NgramRange[0] {
			return nil, fmt.Errorf("%w: invalid ngram_range %v", models.ErrArtifactLoad, a.NgramRange)
		}
		v.ngramMin, v.ngramMax = a.NgramRange[0], a.NgramRange[1]
	}

	if len(a.StopWords) > 0 {
		v.stopWords = make(map[string]struct{}, len(a.StopWords))
		for _, w := range a.StopWords {
			v.stopWords[w] = struct{}{}
		}
	}

	tokenize, err := compileTokenizer(a.TokenPattern)
	if err != nil {
		return nil, err
	}
	v.tokenize = tokenize

	return v, nil
}

// Dim is the fixed output dimensionality.
func (v *Vectorizer) Dim() int {
	return v.dim
}

// Language is the ISO 639-1 code of the corpus the vectorizer was fitted on.
func (v *Vectorizer) Language() string {
	return v.language
}

// Transform converts raw text to a feature vector. Terms outside the fitted
// vocabulary contribute nothing.
func (v *Vectorizer) Transform(text string) models.FeatureVector {
	tokens := v.tokenize(v.preprocess(text))
	if v.stopWords != nil {
		kept := tokens[:0]
		for _, tok := range tokens {
			if _, stop := v.stopWords[tok]; !stop {
				kept = append(kept, tok)
			}
		}
		tokens = kept
	}

	counts := make(map[int]float64)
	for _, term := range v.ngrams(tokens) {
		if idx, ok := v.vocab[term]; ok {
			counts[idx]++
		}
	}

	vec := models.FeatureVector{
		Dim:     v.dim,
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for idx := range counts {
		vec.Indices = append(vec.Indices, idx)
	}
	sort.Ints(vec.Indices)

	for _, idx := range vec.Indices {
		w := counts[idx]
		if v.sublinear {
			w = 1 + math.Log(w)
		}
		if v.useIDF {
			w *= v.idf[idx]
		}
		vec.Values = append(vec.Values, w)
	}

	normalize(vec.Values, v.norm)
	return vec
}

func (v *Vectorizer) preprocess(text string) string {
	if v.lowercase {
		text = strings.ToLower(text)
	}
	switch v.stripAccents {
	case "unicode":
		text = stripAccents(text, runes.In(unicode.Mn))
	case "ascii":
		text = stripAccents(text, runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII }))
	}
	return text
}

// stripAccents decomposes text and removes the runes in drop. A fresh chain is
// built per call since transform chains carry buffers.
func stripAccents(text string, drop runes.Set) string {
	t := transform.Chain(norm.NFKD, runes.Remove(drop))
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}

// ngrams expands tokens into word n-grams joined by a single space.
func (v *Vectorizer) ngrams(tokens []string) []string {
	if v.ngramMax == 1 {
		return tokens
	}

	var terms []string
	minN := v.ngramMin
	if minN == 1 {
		terms = append(terms, tokens...)
		minN = 2
	}
	for n := minN; n <= v.ngramMax && n <= len(tokens); n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}

func normalize(values []float64, kind string) {
	var total float64
	switch kind {
	case NormL2:
		for _, x := range values {
			total += x * x
		}
		total = math.Sqrt(total)
	case NormL1:
		for _, x := range values {
			total += math.Abs(x)
		}
	default:
		return
	}
	if total == 0 {
		return
	}
	for i := range values {
		values[i] /= total
	}
}
