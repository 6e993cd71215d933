package insights

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/engine/sentiment"
	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/model"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 24, 9, 0, 0, 0, time.UTC)
}

func testPipeline() *Pipeline {
	cfg := DefaultConfig()
	cfg.Now = fixedNow
	return NewPipeline(cfg)
}

// scored builds an entry with sentiment computed the way the save path
// does it.
func scored(day, hour, mood int, reflection string) model.MoodEntry {
	ts := time.Date(2025, 6, 2, hour, 0, 0, 0, time.UTC).AddDate(0, 0, day)
	e := model.MoodEntry{
		ID:         int64(day*24 + hour),
		MoodValue:  mood,
		Reflection: reflection,
		CreatedAt:  ts,
		Timestamp:  ts,
	}
	if reflection != "" {
		s := sentiment.Analyze(reflection)
		e.Sentiment = &s
	}
	return e
}

func TestGenerateInsufficientDataGuard(t *testing.T) {
	p := testPipeline()
	assert.Empty(t, p.Generate(nil))
	assert.Empty(t, p.Generate([]model.MoodEntry{
		scored(0, 10, 3, "fine"),
		scored(1, 10, 3, "fine"),
	}))
}

func TestGeneratePriorityOrderingInvariant(t *testing.T) {
	// rich history designed to fire several heuristics at once
	var entries []model.MoodEntry
	for day := 0; day < 20; day++ {
		mood := 3
		reflection := "ordinary day"
		switch day % 5 {
		case 0:
			mood = 1
			reflection = "work deadline crushed me, long work evening, everything felt heavy and hopeless and exhausting"
		case 1:
			mood = 4
			reflection = "felt better after a walk"
		case 2:
			mood = 2
			reflection = "work again, tired"
		case 3:
			mood = 4
			reflection = "good dinner with friends"
		}
		entries = append(entries, scored(day, 10, mood, reflection))
	}

	out := testPipeline().Generate(entries)
	require.NotEmpty(t, out)
	for i := 1; i < len(out); i++ {
		assert.LessOrEqual(t, out[i-1].Priority.Rank(), out[i].Priority.Rank(),
			"insights must be stable-sorted high→medium→low")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	var entries []model.MoodEntry
	for day := 0; day < 15; day++ {
		entries = append(entries, scored(day, 9+day%12, day%5+1, "work and a walk and some rest"))
	}
	p := testPipeline()

	a, err := json.Marshal(p.Generate(entries))
	require.NoError(t, err)
	b, err := json.Marshal(p.Generate(entries))
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestTriggerScenario(t *testing.T) {
	// five reflected low-mood entries, four of which mention work
	entries := []model.MoodEntry{
		scored(0, 10, 1, "work was brutal"),
		scored(1, 10, 2, "another long work day"),
		scored(2, 10, 2, "work stress again"),
		scored(3, 10, 1, "so tired of work"),
		scored(4, 10, 2, "nothing went right today"),
	}
	out := testPipeline().Generate(entries)

	var found *model.MoodInsight
	for i := range out {
		if out[i].Type == model.InsightTrigger {
			found = &out[i]
			break
		}
	}
	require.NotNil(t, found, "expected a trigger insight, got %+v", out)
	assert.Equal(t, model.PriorityHigh, found.Priority)
	assert.Contains(t, found.Observation, "work")
	data, ok := found.Data.(model.TriggerData)
	require.True(t, ok)
	assert.Equal(t, "work", data.Word)
	assert.Equal(t, 4, data.Count)
}

func TestPositiveContextScenario(t *testing.T) {
	entries := []model.MoodEntry{
		scored(0, 10, 4, "long walk by the river"),
		scored(1, 10, 5, "walk with the dog"),
		scored(2, 10, 4, "morning walk again"),
		scored(3, 10, 3, "quiet day"),
		scored(4, 10, 3, "slow afternoon"),
	}
	out := testPipeline().Generate(entries)

	var found *model.MoodInsight
	for i := range out {
		if out[i].Type == model.InsightPositiveContext {
			found = &out[i]
			break
		}
	}
	require.NotNil(t, found, "expected a positive-context insight, got %+v", out)
	assert.Equal(t, model.PriorityHigh, found.Priority)
	assert.Contains(t, found.Observation, "walk")
}

func TestRecoveryScenario(t *testing.T) {
	// two mood-1 days each followed two days later by a mood-4 day
	entries := []model.MoodEntry{
		scored(0, 10, 1, ""),
		scored(2, 10, 4, ""),
		scored(4, 10, 3, ""),
		scored(6, 10, 3, ""),
		scored(8, 10, 1, ""),
		scored(10, 10, 4, ""),
		scored(12, 10, 3, ""),
		scored(14, 10, 3, ""),
		scored(16, 10, 3, ""),
		scored(18, 10, 3, ""),
	}
	out := testPipeline().Generate(entries)

	var found *model.MoodInsight
	for i := range out {
		if out[i].Type == model.InsightCoping {
			found = &out[i]
			break
		}
	}
	require.NotNil(t, found, "expected a coping insight, got %+v", out)
	assert.Equal(t, model.PriorityHigh, found.Priority)
	assert.Contains(t, found.Observation, "2 days")
	data, ok := found.Data.(model.CopingData)
	require.True(t, ok)
	assert.Equal(t, 2, data.Recoveries)
	assert.InDelta(t, 2.0, data.AvgRecoveryDays, 1e-9)
}

func TestNuancedEmotionsScenario(t *testing.T) {
	// high ratings paired with clearly negative text
	entries := []model.MoodEntry{
		scored(0, 10, 5, "terrible awful hopeless miserable exhausted"),
		scored(1, 10, 5, "awful horrible drained sad lonely"),
		scored(2, 10, 3, "ordinary day"),
	}
	out := testPipeline().Generate(entries)

	var found bool
	for _, ins := range out {
		if ins.Type == model.InsightNuancedEmotions {
			found = true
			assert.Equal(t, model.PriorityLow, ins.Priority)
		}
	}
	assert.True(t, found, "expected a nuanced-emotions insight, got %+v", out)
}

func TestDayOfWeekInsightMondayPhrasing(t *testing.T) {
	var entries []model.MoodEntry
	for day := 0; day < 21; day++ {
		ts := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC).AddDate(0, 0, day)
		mood := 3
		switch ts.Weekday() {
		case time.Monday:
			mood = 1
		case time.Thursday:
			mood = 5
		}
		entries = append(entries, scored(day, 10, mood, ""))
	}
	out := testPipeline().Generate(entries)

	var found *model.MoodInsight
	for i := range out {
		if out[i].Type == model.InsightDayOfWeek {
			found = &out[i]
			break
		}
	}
	require.NotNil(t, found)
	assert.Contains(t, found.Observation, "Monday")
	data, ok := found.Data.(model.DayOfWeekData)
	require.True(t, ok)
	assert.Equal(t, "Monday", data.LowestDay)
	assert.Equal(t, "Thursday", data.HighestDay)
	assert.InDelta(t, 4.0, data.Spread, 1e-9)
}

func TestTimeOfDayInsight(t *testing.T) {
	var entries []model.MoodEntry
	for day := 0; day < 4; day++ {
		entries = append(entries, scored(day, 9, 4, "calm peaceful hopeful morning"))
		entries = append(entries, scored(day, 20, 2, "exhausted drained miserable night"))
	}
	out := testPipeline().Generate(entries)

	var found *model.MoodInsight
	for i := range out {
		if out[i].Type == model.InsightTimeOfDay {
			found = &out[i]
			break
		}
	}
	require.NotNil(t, found, "expected a time-of-day insight, got %+v", out)
	assert.Contains(t, found.Observation, "morning")
	data, ok := found.Data.(model.TimeOfDayData)
	require.True(t, ok)
	assert.Equal(t, "morning", data.TimeContext)
}

func TestProgressConsistencyInsight(t *testing.T) {
	// 10 entries over 20 days against a fixed "now" 22 days after start
	var entries []model.MoodEntry
	for i := 0; i < 10; i++ {
		entries = append(entries, scored(i*2, 10, 3, ""))
	}
	out := testPipeline().Generate(entries)

	var found *model.MoodInsight
	for i := range out {
		if out[i].Type == model.InsightProgress {
			found = &out[i]
			break
		}
	}
	require.NotNil(t, found, "expected a progress insight, got %+v", out)
	data, ok := found.Data.(model.ProgressData)
	require.True(t, ok)
	assert.Equal(t, "consistency", data.Aspect)
	assert.Greater(t, data.TrackingRate, 0.3)
}

func TestHeuristicPanicIsIsolated(t *testing.T) {
	p := testPipeline()
	entries := []model.MoodEntry{
		scored(0, 10, 3, "fine"),
		scored(1, 10, 3, "fine"),
		scored(2, 10, 3, "fine"),
	}
	bad := heuristic{
		name: "explosive",
		run: func(*Pipeline, []model.MoodEntry) *model.MoodInsight {
			panic("boom")
		},
	}
	assert.NotPanics(t, func() { p.safeRun(bad, entries) })
	assert.Nil(t, p.safeRun(bad, entries))
}
