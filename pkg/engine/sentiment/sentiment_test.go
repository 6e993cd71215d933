package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeBlankInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t "} {
		got := Analyze(text)
		assert.Equal(t, 0, got.Score, "score for %q", text)
		assert.Equal(t, 0.0, got.Comparative, "comparative for %q", text)
		assert.Empty(t, got.Positive)
		assert.Empty(t, got.Negative)
		assert.Equal(t, 0, got.WordCount)
	}
}

func TestAnalyzeScoresAndWordLists(t *testing.T) {
	got := Analyze("Work was stressful but the evening walk felt great")

	require.Equal(t, 9, got.WordCount)
	assert.Contains(t, got.Negative, "stressful")
	assert.Contains(t, got.Positive, "great")
	// stressful(-2) + great(+3)
	assert.Equal(t, 1, got.Score)
	assert.InDelta(t, 1.0/9.0, got.Comparative, 1e-9)
}

func TestAnalyzeIsCaseAndPunctuationInsensitive(t *testing.T) {
	a := Analyze("HAPPY, happy. Happy!")
	assert.Len(t, a.Positive, 3)
	assert.Equal(t, 9, a.Score)
}

func TestAnalyzeDeterministic(t *testing.T) {
	text := "tired but hopeful after a long walk"
	assert.Equal(t, Analyze(text), Analyze(text))
}

func TestTokenizeKeepsInnerApostrophes(t *testing.T) {
	toks := Tokenize("can't won't 'quoted'")
	assert.Equal(t, []string{"can't", "won't", "quoted"}, toks)
}
