package cycles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/model"
)

// threeWeeks builds 21 daily entries starting Monday 2025-06-02,
// recent-first, with the mood chosen per weekday.
func threeWeeks(moodFor func(time.Weekday) int) []model.MoodEntry {
	var out []model.MoodEntry
	for i := 20; i >= 0; i-- {
		ts := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC).AddDate(0, 0, i)
		out = append(out, model.MoodEntry{
			ID:        int64(i + 1),
			MoodValue: moodFor(ts.Weekday()),
			CreatedAt: ts,
			Timestamp: ts,
		})
	}
	return out
}

func TestDayOfWeekCyclesBothDirections(t *testing.T) {
	entries := threeWeeks(func(wd time.Weekday) int {
		switch wd {
		case time.Monday:
			return 1
		case time.Thursday:
			return 5
		default:
			return 3
		}
	})
	patterns := DayOfWeekCycles(entries)

	require.Len(t, patterns, 2)
	var texts []string
	for _, p := range patterns {
		assert.Equal(t, model.PatternCycle, p.Type)
		assert.InDelta(t, 0.7, p.Confidence, 1e-9)
		assert.Equal(t, 3, p.Frequency)
		texts = append(texts, p.Pattern)
	}
	assert.Contains(t, texts, "Mondays tend to be challenging")
	assert.Contains(t, texts, "Thursdays are typically your best days")
}

func TestDayOfWeekCyclesNeedsThreeSamples(t *testing.T) {
	// two weeks only: every weekday has two samples
	entries := threeWeeks(func(time.Weekday) int { return 1 })[:14]
	assert.Empty(t, DayOfWeekCycles(entries))
}

// ramp builds a recent-first snapshot from chronological moods.
func ramp(moods []int) []model.MoodEntry {
	out := make([]model.MoodEntry, len(moods))
	for i, m := range moods {
		ts := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC).AddDate(0, 0, i)
		out[len(moods)-1-i] = model.MoodEntry{ID: int64(i + 1), MoodValue: m, CreatedAt: ts, Timestamp: ts}
	}
	return out
}

func TestProgressionStreaksResilience(t *testing.T) {
	// four separate two-step climbs
	var moods []int
	for i := 0; i < 4; i++ {
		moods = append(moods, 1, 2, 3, 1)
	}
	patterns := ProgressionStreaks(ramp(moods), 50)

	require.Len(t, patterns, 1)
	p := patterns[0]
	assert.Equal(t, model.PatternImprovement, p.Type)
	assert.InDelta(t, 0.8, p.Confidence, 1e-9)
	assert.Equal(t, 4, p.Frequency)
}

func TestProgressionStreaksDecline(t *testing.T) {
	var moods []int
	for i := 0; i < 4; i++ {
		moods = append(moods, 5, 4, 3, 5)
	}
	patterns := ProgressionStreaks(ramp(moods), 50)

	require.Len(t, patterns, 1)
	p := patterns[0]
	assert.Equal(t, model.PatternDecline, p.Type)
	assert.InDelta(t, 0.7, p.Confidence, 1e-9)
	assert.Equal(t, 4, p.Frequency)
}

func TestProgressionStreaksShortRunsDoNotCount(t *testing.T) {
	// alternate single-step moves only
	patterns := ProgressionStreaks(ramp([]int{3, 4, 3, 4, 3, 4, 3, 4, 3}), 50)
	assert.Empty(t, patterns)
}

func TestProgressionStreaksTerminalRunCounts(t *testing.T) {
	var moods []int
	for i := 0; i < 3; i++ {
		moods = append(moods, 1, 2, 3, 1)
	}
	moods = append(moods, 2, 3) // fourth climb ends the series
	patterns := ProgressionStreaks(ramp(moods), 50)
	require.Len(t, patterns, 1)
	assert.Equal(t, 4, patterns[0].Frequency)
}
