package insights

import "github.com/shanepatrickbooker/OWNLY--sub000/pkg/model"

// Quality gate thresholds.
const (
	qualityMinEntries      = 3
	qualityReflectionBelow = 5
)

// CheckDataQuality decides whether the full pipeline is worth running.
// A negative result carries a user-facing reason; callers route it to
// fallback content, never to an error state.
func CheckDataQuality(entries []model.MoodEntry) model.DataQuality {
	if len(entries) < qualityMinEntries {
		return model.DataQuality{
			HasEnoughData: false,
			Reason:        "Log a few more check-ins to unlock analysis; three is the minimum",
		}
	}
	if len(entries) < qualityReflectionBelow {
		hasReflection := false
		for _, e := range entries {
			if e.HasReflection() {
				hasReflection = true
				break
			}
		}
		if !hasReflection {
			return model.DataQuality{
				HasEnoughData: false,
				Reason:        "Add a written reflection or two so analysis has something to read",
			}
		}
	}
	return model.DataQuality{HasEnoughData: true}
}

// WeeklyObservations merges patterns and insights into the unified
// variant the weekly view renders: insights first in priority order,
// then patterns in confidence order.
func WeeklyObservations(patterns []model.PersonalPattern, insights []model.MoodInsight) []model.Observation {
	out := make([]model.Observation, 0, len(patterns)+len(insights))
	for i := range insights {
		out = append(out, model.Observation{Source: model.SourceInsight, Insight: &insights[i]})
	}
	for i := range patterns {
		out = append(out, model.Observation{Source: model.SourcePattern, Pattern: &patterns[i]})
	}
	return out
}
