package mapreduce

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// isValidKeyword drops tokens that are too short to be informative or that
// still carry unbalanced quotes after punctuation trimming.
func isValidKeyword(word string) bool {
	if utf8.RuneCountInString(word) < 3 {
		return false
	}
	if strings.Count(word, "\"")%2 != 0 {
		return false
	}
	return true
}

// TopKeywords returns the top N keywords as "word:count" strings. Equal counts
// are ordered alphabetically so output is stable across runs.
func TopKeywords(wordCounts map[string]int, n int) []string {
	type kv struct {
		Key   string
		Value int
	}

	var ss []kv
	for k, v := range wordCounts {
		if isValidKeyword(k) {
			ss = append(ss, kv{k, v})
		}
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}
	if limit < 0 {
		limit = 0
	}

	keywords := make([]string, limit)
	for i := 0; i < limit; i++ {
		keywords[i] = fmt.Sprintf("%s:%d", ss[i].Key, ss[i].Value)
	}
	return keywords
}
