// Package correlate measures how moods move after activity mentions
// and which recurring phrases travel with low moods.
package correlate

import (
	"fmt"
	"strings"

	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/engine/textfeat"
	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/model"
)

// activityKeywords are scanned in order; the MaxActivities cap applies
// to this list.
var activityKeywords = []string{
	"walk", "exercise", "workout", "meditation", "sleep", "rest", "work", "meeting",
}

// Tunables for what counts as a reliable pattern.
const (
	improvementThreshold = 0.7
	triggerMinCount      = 3
	triggerMaxAvgMood    = 2.0
	triggerConfidence    = 0.8
	maxExamples          = 2
)

// ActivityImprovements scans consecutive entry pairs for activity
// mentions in the earlier entry and reports activities whose following
// mood delta is positive in more than 70% of observations.
//
// The snapshot is recent-first; pairs are read chronologically. At most
// maxPairs pairs and maxActivities keywords are considered.
func ActivityImprovements(entries []model.MoodEntry, maxPairs, maxActivities int) []model.PersonalPattern {
	if maxPairs > 0 && len(entries) > maxPairs+1 {
		entries = entries[:maxPairs+1]
	}
	keywords := activityKeywords
	if maxActivities > 0 && len(keywords) > maxActivities {
		keywords = keywords[:maxActivities]
	}

	var out []model.PersonalPattern
	for _, activity := range keywords {
		positive, total := 0, 0
		var examples []string
		for i := len(entries) - 1; i > 0; i-- {
			earlier, later := entries[i], entries[i-1]
			if !earlier.HasReflection() {
				continue
			}
			if !strings.Contains(strings.ToLower(earlier.Reflection), activity) {
				continue
			}
			total++
			if later.MoodValue > earlier.MoodValue {
				positive++
				if len(examples) < maxExamples {
					examples = append(examples, snippet(earlier.Reflection))
				}
			}
		}
		if total == 0 {
			continue
		}
		fraction := float64(positive) / float64(total)
		if fraction <= improvementThreshold {
			continue
		}
		out = append(out, model.PersonalPattern{
			Type:              model.PatternImprovement,
			Pattern:           fmt.Sprintf("Your mood tends to lift after %s", activity),
			Confidence:        fraction,
			Frequency:         total,
			ActionableInsight: fmt.Sprintf("When feeling down, try %s", activity),
			Examples:          examples,
		})
	}
	return out
}

// TriggerPhrases surfaces recurring 2-word phrases whose entries
// average a low mood: phrases seen at least three times with an average
// mood of 2 or below.
func TriggerPhrases(entries []model.MoodEntry, maxPhraseEntries, maxPhraseWords int) []model.PersonalPattern {
	var out []model.PersonalPattern
	for _, ph := range textfeat.Bigrams(entries, maxPhraseEntries, maxPhraseWords) {
		if ph.Count < triggerMinCount || ph.AvgMood > triggerMaxAvgMood {
			continue
		}
		out = append(out, model.PersonalPattern{
			Type:              model.PatternTrigger,
			Pattern:           fmt.Sprintf("%q appears when you're struggling", ph.Text),
			Confidence:        triggerConfidence,
			Frequency:         ph.Count,
			ActionableInsight: fmt.Sprintf("Notice what surrounds %q moments", ph.Text),
		})
	}
	return out
}

// TopImprovementActivity returns the activity with the strongest
// improvement evidence, or "" when none qualifies. Used to phrase
// preventive suggestions.
func TopImprovementActivity(entries []model.MoodEntry, maxPairs, maxActivities int) string {
	patterns := ActivityImprovements(entries, maxPairs, maxActivities)
	best := ""
	bestConf := 0.0
	for _, p := range patterns {
		if p.Confidence > bestConf {
			bestConf = p.Confidence
			best = strings.TrimPrefix(p.ActionableInsight, "When feeling down, try ")
		}
	}
	return best
}

func snippet(text string) string {
	text = strings.TrimSpace(text)
	if len(text) > 60 {
		return text[:60] + "…"
	}
	return text
}
