package parsing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKeywords_FrequencyRanked(t *testing.T) {
	text := "kubernetes kubernetes kubernetes golang golang terraform"

	keywords := ExtractKeywords(text)

	assert.Equal(t, []string{"kubernetes", "golang", "terraform"}, keywords)
}

func TestExtractKeywords_TiesKeepFirstOccurrenceOrder(t *testing.T) {
	keywords := ExtractKeywords("delta alpha delta alpha zulu zulu")

	assert.Equal(t, []string{"delta", "alpha", "zulu"}, keywords)
}

func TestExtractKeywords_FiltersStopwordsAndShortTokens(t *testing.T) {
	keywords := ExtractKeywords("the and of go a an engineering")

	// "go" is only two runes; stopwords vanish entirely.
	assert.Equal(t, []string{"engineering"}, keywords)
}

func TestExtractKeywords_PreservesTechSymbols(t *testing.T) {
	keywords := ExtractKeywords("node.js node.js c++ c++ xyz")

	require.Contains(t, keywords, "node.js")
	assert.Contains(t, keywords, "c++")
}

func TestExtractKeywords_CapsAtFifteen(t *testing.T) {
	var words []string
	for i := 0; i < 30; i++ {
		words = append(words, fmt.Sprintf("keyword%02d", i))
	}

	keywords := ExtractKeywords(strings.Join(words, " "))

	assert.Len(t, keywords, 15)
}

func TestExtractKeywords_EmptyText(t *testing.T) {
	keywords := ExtractKeywords("")

	assert.NotNil(t, keywords)
	assert.Empty(t, keywords)
}

func TestExtractKeywords_Deterministic(t *testing.T) {
	text := "golang docker docker kubernetes terraform golang postgres"

	first := ExtractKeywords(text)
	second := ExtractKeywords(text)

	assert.Equal(t, first, second)
}
