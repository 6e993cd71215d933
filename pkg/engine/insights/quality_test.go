package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/model"
)

func plain(day, mood int, reflection string) model.MoodEntry {
	ts := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC).AddDate(0, 0, day)
	return model.MoodEntry{ID: int64(day + 1), MoodValue: mood, Reflection: reflection, CreatedAt: ts, Timestamp: ts}
}

func TestCheckDataQualityTooFewEntries(t *testing.T) {
	q := CheckDataQuality([]model.MoodEntry{plain(0, 3, "fine"), plain(1, 4, "good")})
	assert.False(t, q.HasEnoughData)
	assert.NotEmpty(t, q.Reason)
}

func TestCheckDataQualityNeedsReflectionsWhenSparse(t *testing.T) {
	q := CheckDataQuality([]model.MoodEntry{plain(0, 3, ""), plain(1, 4, ""), plain(2, 2, "")})
	assert.False(t, q.HasEnoughData)
	assert.NotEmpty(t, q.Reason)

	q = CheckDataQuality([]model.MoodEntry{plain(0, 3, ""), plain(1, 4, "a decent day"), plain(2, 2, "")})
	assert.True(t, q.HasEnoughData)
	assert.Empty(t, q.Reason)
}

func TestCheckDataQualityLargerSetWithoutReflections(t *testing.T) {
	var entries []model.MoodEntry
	for day := 0; day < 6; day++ {
		entries = append(entries, plain(day, 3, ""))
	}
	assert.True(t, CheckDataQuality(entries).HasEnoughData)
}

func TestWeeklyObservations(t *testing.T) {
	patterns := []model.PersonalPattern{
		{Type: model.PatternCycle, Pattern: "Mondays tend to be challenging", Confidence: 0.7},
	}
	insights := []model.MoodInsight{
		{Type: model.InsightTrigger, Observation: "\"work\" shows up in most of your toughest moments", Priority: model.PriorityHigh},
	}
	obs := WeeklyObservations(patterns, insights)

	require.Len(t, obs, 2)
	assert.Equal(t, model.SourceInsight, obs[0].Source)
	require.NotNil(t, obs[0].Insight)
	assert.Nil(t, obs[0].Pattern)
	assert.Equal(t, model.SourcePattern, obs[1].Source)
	require.NotNil(t, obs[1].Pattern)
	assert.Nil(t, obs[1].Insight)
}

func TestWeeklyObservationsEmpty(t *testing.T) {
	assert.Empty(t, WeeklyObservations(nil, nil))
}
