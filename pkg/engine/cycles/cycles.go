// Package cycles finds day-of-week mood rhythms and improvement or
// decline streaks.
package cycles

import (
	"fmt"
	"time"

	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/model"
)

const (
	minDaySamples      = 3
	challengingAvg     = 2.5
	bestDayAvg         = 4.0
	dayCycleConfidence = 0.7

	minStreakLen         = 2
	minStreakCount       = 4 // strictly more than 3 streaks
	resilienceConfidence = 0.8
	declineConfidence    = 0.7
)

// DayOfWeekCycles averages mood per weekday (minimum three samples) and
// reports challenging and best days. Both directions can be emitted for
// different days.
func DayOfWeekCycles(entries []model.MoodEntry) []model.PersonalPattern {
	sums := make(map[time.Weekday]int)
	counts := make(map[time.Weekday]int)
	for _, e := range entries {
		if !e.HasDate() {
			continue
		}
		wd := e.OrderTime().Weekday()
		sums[wd] += e.MoodValue
		counts[wd]++
	}

	var out []model.PersonalPattern
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		n := counts[wd]
		if n < minDaySamples {
			continue
		}
		avg := float64(sums[wd]) / float64(n)
		if avg <= challengingAvg {
			out = append(out, model.PersonalPattern{
				Type:              model.PatternCycle,
				Pattern:           fmt.Sprintf("%ss tend to be challenging", wd),
				Confidence:        dayCycleConfidence,
				Frequency:         n,
				ActionableInsight: fmt.Sprintf("Plan something kind for yourself on %ss", wd),
			})
		}
		if avg >= bestDayAvg {
			out = append(out, model.PersonalPattern{
				Type:              model.PatternCycle,
				Pattern:           fmt.Sprintf("%ss are typically your best days", wd),
				Confidence:        dayCycleConfidence,
				Frequency:         n,
				ActionableInsight: fmt.Sprintf("Schedule demanding tasks for %ss when you can", wd),
			})
		}
	}
	return out
}

// ProgressionStreaks walks consecutive mood deltas chronologically over
// the most recent maxEntries entries and counts runs of length two or
// more. More than three improvement runs is a resilience pattern; more
// than three decline runs is a cascading-decline warning.
func ProgressionStreaks(entries []model.MoodEntry, maxEntries int) []model.PersonalPattern {
	if maxEntries > 0 && len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}

	improvement, decline := 0, 0
	run := 0 // positive for rising runs, negative for falling
	closeRun := func() {
		if run >= minStreakLen {
			improvement++
		} else if -run >= minStreakLen {
			decline++
		}
		run = 0
	}

	// snapshot is recent-first; deltas read oldest to newest
	for i := len(entries) - 1; i > 0; i-- {
		delta := entries[i-1].MoodValue - entries[i].MoodValue
		switch {
		case delta > 0:
			if run < 0 {
				closeRun()
			}
			run++
		case delta < 0:
			if run > 0 {
				closeRun()
			}
			run--
		default:
			closeRun()
		}
	}
	closeRun()

	var out []model.PersonalPattern
	if improvement >= minStreakCount {
		out = append(out, model.PersonalPattern{
			Type:              model.PatternImprovement,
			Pattern:           "You reliably build momentum once your mood starts rising",
			Confidence:        resilienceConfidence,
			Frequency:         improvement,
			ActionableInsight: "Lean into whatever starts an upswing; it tends to carry you",
		})
	}
	if decline >= minStreakCount {
		out = append(out, model.PersonalPattern{
			Type:              model.PatternDecline,
			Pattern:           "Dips in your mood tend to run for several days",
			Confidence:        declineConfidence,
			Frequency:         decline,
			ActionableInsight: "Catching the first down day early may shorten the slide",
		})
	}
	return out
}
