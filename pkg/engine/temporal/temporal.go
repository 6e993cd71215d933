// Package temporal classifies entry times into the categorical buckets
// the analyzers key on.
//
// Two bucket schemes coexist on purpose: the four-bucket scheme feeds
// Markov context keys, the narrower morning/evening windows feed the
// time-of-day insight comparison. Unifying them would shift insight
// trigger thresholds.
package temporal

import (
	"fmt"
	"time"

	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/engine/textfeat"
	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/model"
)

// Four-bucket boundaries used for Markov context keys.
const (
	morningStart   = 5
	afternoonStart = 12
	eveningStart   = 17
	nightStart     = 21
)

// Two-window boundaries used by the time-of-day insight comparison.
const (
	windowMorningStart = 6
	windowMorningEnd   = 11
	windowEveningStart = 18
	windowEveningEnd   = 23
)

// Bucket returns the four-bucket time-of-day label for t.
func Bucket(t time.Time) string {
	h := t.Hour()
	switch {
	case h < morningStart:
		return "night"
	case h < afternoonStart:
		return "morning"
	case h < eveningStart:
		return "afternoon"
	case h < nightStart:
		return "evening"
	default:
		return "night"
	}
}

// Window returns "morning" or "evening" when t falls inside the insight
// comparison windows, else "".
func Window(t time.Time) string {
	h := t.Hour()
	switch {
	case h >= windowMorningStart && h <= windowMorningEnd:
		return "morning"
	case h >= windowEveningStart && h <= windowEveningEnd:
		return "evening"
	default:
		return ""
	}
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DayType returns "weekend" or "weekday" for t.
func DayType(t time.Time) string {
	if IsWeekend(t) {
		return "weekend"
	}
	return "weekday"
}

// ContextKey derives the composite categorical context for an entry:
// "{bucket}_{daytype}_{topTheme}". Entries without a usable date get
// the neutral "any" bucket so they still form a comparable state.
func ContextKey(e model.MoodEntry) string {
	theme := textfeat.TopTheme(e.Reflection)
	if !e.HasDate() {
		return fmt.Sprintf("any_any_%s", theme)
	}
	t := e.ClockTime()
	return fmt.Sprintf("%s_%s_%s", Bucket(t), DayType(t), theme)
}

// ContextKeyAt derives the context for a hypothetical entry happening at
// time t with the given reflection text. Used by next-mood prediction.
func ContextKeyAt(t time.Time, reflection string) string {
	return fmt.Sprintf("%s_%s_%s", Bucket(t), DayType(t), textfeat.TopTheme(reflection))
}
