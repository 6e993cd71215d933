package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/model"
)

func at(hour int) time.Time {
	// 2025-06-03 is a Tuesday
	return time.Date(2025, 6, 3, hour, 30, 0, 0, time.UTC)
}

func TestBucketBoundaries(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{0, "night"},
		{4, "night"},
		{5, "morning"},
		{11, "morning"},
		{12, "afternoon"},
		{16, "afternoon"},
		{17, "evening"},
		{20, "evening"},
		{21, "night"},
		{23, "night"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Bucket(at(tc.hour)), "hour %d", tc.hour)
	}
}

func TestWindowBoundaries(t *testing.T) {
	assert.Equal(t, "", Window(at(5)))
	assert.Equal(t, "morning", Window(at(6)))
	assert.Equal(t, "morning", Window(at(11)))
	assert.Equal(t, "", Window(at(12)))
	assert.Equal(t, "", Window(at(17)))
	assert.Equal(t, "evening", Window(at(18)))
	assert.Equal(t, "evening", Window(at(23)))
}

func TestDayType(t *testing.T) {
	sat := time.Date(2025, 6, 7, 10, 0, 0, 0, time.UTC)
	sun := time.Date(2025, 6, 8, 10, 0, 0, 0, time.UTC)
	mon := time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "weekend", DayType(sat))
	assert.Equal(t, "weekend", DayType(sun))
	assert.Equal(t, "weekday", DayType(mon))
}

func TestContextKey(t *testing.T) {
	e := model.MoodEntry{
		MoodValue:  2,
		Reflection: "long work meeting",
		Timestamp:  at(9),
	}
	assert.Equal(t, "morning_weekday_work", ContextKey(e))

	blank := model.MoodEntry{MoodValue: 3, Timestamp: at(22)}
	assert.Equal(t, "night_weekday_general", ContextKey(blank))
}

func TestContextKeyUndatedEntry(t *testing.T) {
	e := model.MoodEntry{MoodValue: 3, Reflection: "family dinner"}
	assert.Equal(t, "any_any_family", ContextKey(e))
}

func TestContextKeyAt(t *testing.T) {
	assert.Equal(t, "evening_weekday_health", ContextKeyAt(at(18), "gym session"))
}
