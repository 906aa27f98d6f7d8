package parsing

import (
	"regexp"
	"sort"
	"strings"
)

// maxKeywords caps the returned keyword list.
const maxKeywords = 15

// minKeywordRunes: shorter tokens are noise.
const minKeywordRunes = 3

// tokenCleanPattern replaces everything outside letters, digits, and a small
// symbol allowlist (".", "+", "#" survive so "node.js", "c++", "c#" stay
// intact) with spaces.
var tokenCleanPattern = regexp.MustCompile(`[^\p{L}\p{N}\s.+#]`)

// ExtractKeywords frequency-ranks the tokens of the raw text after stopword
// removal. Ties keep first-occurrence order (stable sort), so identical
// input always produces identical output.
func ExtractKeywords(text string) []string {
	cleaned := tokenCleanPattern.ReplaceAllString(strings.ToLower(text), " ")

	freq := make(map[string]int)
	var order []string
	for _, token := range strings.Fields(cleaned) {
		token = strings.Trim(token, ".")
		if len([]rune(token)) < minKeywordRunes || stopwords[token] {
			continue
		}
		if freq[token] == 0 {
			order = append(order, token)
		}
		freq[token]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})

	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}
	if order == nil {
		return []string{}
	}
	return order
}
