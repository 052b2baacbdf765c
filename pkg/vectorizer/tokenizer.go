package vectorizer

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/dtnitsch/fake-news-detector/models"
)

// wordRunPattern matches the \b\w...\w+\b family (\b\w\w+\b, \b\w+\b,
// \b\w{3,}\b), which is served by the rune scanner.
var wordRunPattern = regexp.MustCompile(`^\\b((?:\\w)+)(\+|\{(\d+),\})\\b$`)

// compileTokenizer returns a tokenizer for the fitted token pattern. Python's
// \w, \d and \b are Unicode-aware while RE2's are ASCII-only, so word-run
// patterns go to a rune scanner and other patterns have their classes
// rewritten. Word boundaries outside the word-run family cannot be expressed
// and are rejected.
func compileTokenizer(pattern string) (func(string) []string, error) {
	if pattern == "" {
		pattern = DefaultTokenPattern
	}
	body := strings.TrimPrefix(pattern, "(?u)")
	if m := wordRunPattern.FindStringSubmatch(body); m != nil {
		minLen := strings.Count(m[1], `\w`)
		if m[3] != "" {
			n, err := strconv.Atoi(m[3])
			if err != nil {
				return nil, fmt.Errorf("%w: invalid token_pattern %q: %v", models.ErrArtifactLoad, pattern, err)
			}
			minLen += n - 1
		}
		return wordRuns(minLen), nil
	}

	translated, err := unicodeClasses(body)
	if err != nil {
		return nil, fmt.Errorf("%w: token_pattern %q: %v", models.ErrArtifactLoad, pattern, err)
	}
	re, err := regexp.Compile(translated)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid token_pattern %q: %v", models.ErrArtifactLoad, pattern, err)
	}
	switch re.NumSubexp() {
	case 0:
		return func(s string) []string { return re.FindAllString(s, -1) }, nil
	case 1:
		return func(s string) []string {
			matches := re.FindAllStringSubmatch(s, -1)
			out := make([]string, 0, len(matches))
			for _, m := range matches {
				out = append(out, m[1])
			}
			return out
		}, nil
	default:
		return nil, fmt.Errorf("%w: token_pattern %q has more than one capturing group", models.ErrArtifactLoad, pattern)
	}
}

const (
	wordClass   = `\p{L}\p{N}_`
	digitClass  = `\p{Nd}`
	nonDigitSet = `\P{Nd}`
)

// unicodeClasses rewrites \w, \W, \d and \D into Unicode classes.
func unicodeClasses(pattern string) (string, error) {
	var b strings.Builder
	inClass := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\' && i+1 < len(pattern):
			i++
			switch esc := pattern[i]; esc {
			case 'w':
				if inClass {
					b.WriteString(wordClass)
				} else {
					b.WriteString("[" + wordClass + "]")
				}
			case 'W':
				if inClass {
					return "", errors.New(`\W inside a character class is not supported`)
				}
				b.WriteString("[^" + wordClass + "]")
			case 'd':
				b.WriteString(digitClass)
			case 'D':
				b.WriteString(nonDigitSet)
			case 'b', 'B':
				return "", fmt.Errorf(`\%c word boundaries are only supported in \b\w+\b style patterns`, esc)
			default:
				b.WriteByte('\\')
				b.WriteByte(esc)
			}
		case c == '[' && !inClass:
			inClass = true
			b.WriteByte(c)
			// a leading ] (or ^]) is a literal member
			if i+1 < len(pattern) && pattern[i+1] == '^' {
				i++
				b.WriteByte('^')
			}
			if i+1 < len(pattern) && pattern[i+1] == ']' {
				i++
				b.WriteByte(']')
			}
		case c == ']' && inClass:
			inClass = false
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

// wordRuns returns a tokenizer yielding maximal runs of word runes at least
// minLen runes long.
func wordRuns(minLen int) func(string) []string {
	return func(s string) []string {
		var tokens []string
		start, n := -1, 0
		for i, r := range s {
			if isWordRune(r) {
				if start < 0 {
					start, n = i, 0
				}
				n++
				continue
			}
			if start >= 0 && n >= minLen {
				tokens = append(tokens, s[start:i])
			}
			start = -1
		}
		if start >= 0 && n >= minLen {
			tokens = append(tokens, s[start:])
		}
		return tokens
	}
}
