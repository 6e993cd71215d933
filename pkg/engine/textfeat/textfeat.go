// Package textfeat extracts lightweight lexical features from
// reflections: theme membership, recurring contextual words, and
// frequent 2-word phrases.
package textfeat

import (
	"sort"
	"strings"

	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/engine/sentiment"
	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/model"
)

// themeSet is one fixed keyword family. Order of themeSets is the
// reporting order.
type themeSet struct {
	name  string
	words []string
}

var themeSets = []themeSet{
	{"work", []string{"work", "job", "boss", "meeting", "deadline", "office", "project", "colleague", "coworker", "shift", "career"}},
	{"family", []string{"family", "mom", "dad", "mother", "father", "sister", "brother", "kids", "child", "children", "parents", "partner", "husband", "wife"}},
	{"health", []string{"health", "sick", "doctor", "sleep", "tired", "exercise", "gym", "workout", "headache", "pain", "medication", "therapy"}},
	{"social", []string{"friend", "friends", "party", "dinner", "social", "hangout", "date", "conversation", "visit", "gathering"}},
	{"finance", []string{"money", "rent", "bills", "debt", "budget", "salary", "paycheck", "savings", "expensive", "afford"}},
}

// contextVocabulary is the fixed list of contextual nouns scanned by
// CommonContextWords. Order breaks count ties deterministically.
var contextVocabulary = []string{
	"work", "meeting", "boss", "deadline", "project", "email",
	"family", "partner", "kids", "friend", "friends",
	"sleep", "tired", "exercise", "walk", "gym", "doctor", "health",
	"coffee", "food", "dinner", "money", "bills",
	"home", "weather", "traffic", "travel", "vacation",
	"music", "phone", "news", "school", "party", "weekend", "morning",
}

// WordCount pairs a contextual word with how often it appeared.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Phrase is a recurring 2-gram with the average mood of the entries it
// appeared in.
type Phrase struct {
	Text    string  `json:"text"`
	Count   int     `json:"count"`
	AvgMood float64 `json:"avgMood"`
}

// Themes returns the themes whose keyword set matches text, in the
// fixed work/family/health/social/finance order.
func Themes(text string) []string {
	lower := strings.ToLower(text)
	var themes []string
	for _, set := range themeSets {
		for _, w := range set.words {
			if strings.Contains(lower, w) {
				themes = append(themes, set.name)
				break
			}
		}
	}
	return themes
}

// TopTheme returns the first matching theme, or "general".
func TopTheme(text string) string {
	themes := Themes(text)
	if len(themes) == 0 {
		return "general"
	}
	return themes[0]
}

// CommonContextWords counts occurrences of the fixed contextual
// vocabulary across the given entries and returns the topN by count.
// Tokens shorter than three characters never match.
func CommonContextWords(entries []model.MoodEntry, topN int) []WordCount {
	counts := make(map[string]int, len(contextVocabulary))
	for _, e := range entries {
		if !e.HasReflection() {
			continue
		}
		for _, tok := range sentiment.Tokenize(e.Reflection) {
			if len(tok) <= 2 {
				continue
			}
			if _, ok := counts[tok]; ok {
				counts[tok]++
				continue
			}
			if inVocabulary(tok) {
				counts[tok] = 1
			}
		}
	}

	out := make([]WordCount, 0, len(counts))
	for _, w := range contextVocabulary {
		if c := counts[w]; c > 0 {
			out = append(out, WordCount{Word: w, Count: c})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

func inVocabulary(tok string) bool {
	for _, w := range contextVocabulary {
		if w == tok {
			return true
		}
	}
	return false
}

// bigramStoplist drops semantically empty phrases.
var bigramStoplist = map[string]bool{
	"i am":    true,
	"i feel":  true,
	"i was":   true,
	"i have":  true,
	"it is":   true,
	"it was":  true,
	"to be":   true,
	"in the":  true,
	"of the":  true,
	"and i":   true,
	"a bit":   true,
}

// Bigrams mines recurring 2-word phrases from reflections. Processing is
// bounded: at most maxEntries entries, at most maxWords words per entry.
// Phrases seen fewer than twice are dropped. Results keep descending
// count order, ties in first-seen order.
func Bigrams(entries []model.MoodEntry, maxEntries, maxWords int) []Phrase {
	if maxEntries > 0 && len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}

	counts := make(map[string]int)
	moodSum := make(map[string]int)
	moodN := make(map[string]int)
	var order []string

	for _, e := range entries {
		if !e.HasReflection() {
			continue
		}
		words := strings.Fields(strings.ToLower(e.Reflection))
		if maxWords > 0 && len(words) > maxWords {
			words = words[:maxWords]
		}
		seen := make(map[string]bool)
		for i := 0; i+1 < len(words); i++ {
			gram := words[i] + " " + words[i+1]
			if bigramStoplist[gram] {
				continue
			}
			if counts[gram] == 0 {
				order = append(order, gram)
			}
			counts[gram]++
			if !seen[gram] {
				seen[gram] = true
				moodSum[gram] += e.MoodValue
				moodN[gram]++
			}
		}
	}

	var out []Phrase
	for _, gram := range order {
		if counts[gram] < 2 {
			continue
		}
		out = append(out, Phrase{
			Text:    gram,
			Count:   counts[gram],
			AvgMood: float64(moodSum[gram]) / float64(moodN[gram]),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
