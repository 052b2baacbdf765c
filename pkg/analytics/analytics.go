// Package analytics computes descriptive statistics directly from raw text.
package analytics

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dtnitsch/fake-news-detector/models"
)

const (
	DefaultTopWords      = 5
	DefaultMinWordLength = 5
)

// sentenceTerminators are counted individually, so "?!" counts twice.
const sentenceTerminators = ".!?"

// Analytics is stateless; the zero value is ready to use.
type Analytics struct{}

// WordCount returns the number of whitespace-delimited tokens.
func (a *Analytics) WordCount(text string) int {
	return len(strings.Fields(text))
}

// SentenceCount approximates sentences by counting terminal punctuation.
func (a *Analytics) SentenceCount(text string) int {
	n := 0
	for _, r := range text {
		if strings.ContainsRune(sentenceTerminators, r) {
			n++
		}
	}
	return n
}

// TopWords lowercases whitespace tokens, keeps those with at least minLen
// runes, and returns the k most frequent. Ties keep first-occurrence order.
func (a *Analytics) TopWords(text string, k, minLen int) models.TopWords {
	if k <= 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if utf8.RuneCountInString(word) < minLen {
			continue
		}
		if _, seen := counts[word]; !seen {
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > k {
		order = order[:k]
	}
	top := make(models.TopWords, len(order))
	for i, word := range order {
		top[i] = models.WordFrequency{Word: word, Count: counts[word]}
	}
	return top
}

// WordFrequency counts punctuation-trimmed, non-stopword tokens. It feeds
// keyword aggregation across many articles.
func (a *Analytics) WordFrequency(text string) map[string]int {
	words := strings.Fields(strings.ToLower(text))
	frequencies := make(map[string]int)

	for _, word := range words {
		word = strings.TrimFunc(word, func(r rune) bool {
			return ('a' > r || r > 'z') && ('0' > r || r > '9')
		})

		if word == "" || IsStopword(word) {
			continue
		}

		frequencies[word]++
	}

	return frequencies
}
