package insights

import (
	"fmt"
	"math"
	"time"

	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/engine/sentiment"
	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/engine/temporal"
	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/engine/textfeat"
	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/model"
)

const (
	lowMoodMax  = 2
	highMoodMin = 4
)

// nuancedEmotions flags entries whose rating and written tone point in
// different directions.
func (p *Pipeline) nuancedEmotions(entries []model.MoodEntry) *model.MoodInsight {
	const divergenceThreshold = 0.3
	const minMismatches = 2

	refl := reflected(entries)
	mismatches := 0
	for _, e := range refl {
		if e.Sentiment == nil || e.Sentiment.WordCount == 0 {
			continue
		}
		normMood := float64(e.MoodValue-1) / 4
		normSent := (clamp(e.Sentiment.Comparative, -1, 1) + 1) / 2
		if math.Abs(normMood-normSent) > divergenceThreshold {
			mismatches++
		}
	}
	if mismatches < minMismatches {
		return nil
	}
	return &model.MoodInsight{
		Type:                 model.InsightNuancedEmotions,
		Observation:          "Your ratings and your written words sometimes tell different stories; there may be more going on than the number captures",
		Priority:             model.PriorityLow,
		ActionableSuggestion: "When they disagree, the reflection is usually the richer signal; give it an extra sentence",
		Data: model.NuancedEmotionsData{
			MismatchCount:  mismatches,
			ReflectedCount: len(refl),
		},
	}
}

// dayOfWeekPatterns compares the best and worst weekday averages.
func (p *Pipeline) dayOfWeekPatterns(entries []model.MoodEntry) *model.MoodInsight {
	const minEntries = 7
	const minSpread = 0.8

	if len(entries) < minEntries {
		return nil
	}
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

	var lowDay, highDay time.Weekday
	lowAvg, highAvg := math.Inf(1), math.Inf(-1)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if counts[wd] == 0 {
			continue
		}
		avg := float64(sums[wd]) / float64(counts[wd])
		if avg < lowAvg {
			lowAvg, lowDay = avg, wd
		}
		if avg > highAvg {
			highAvg, highDay = avg, wd
		}
	}
	spread := highAvg - lowAvg
	if math.IsInf(spread, 0) || spread <= minSpread {
		return nil
	}

	observation := fmt.Sprintf("Your mood dips on %ss and peaks on %ss", lowDay, highDay)
	if lowDay == time.Monday && lowAvg < 3 {
		observation = fmt.Sprintf("Mondays tend to start your week on a harder note; %ss are your brightest days", highDay)
	}
	return &model.MoodInsight{
		Type:                 model.InsightDayOfWeek,
		Observation:          observation,
		Priority:             model.PriorityMedium,
		ActionableSuggestion: fmt.Sprintf("Keep %ss light where you can", lowDay),
		Data: model.DayOfWeekData{
			LowestDay:  lowDay.String(),
			LowestAvg:  lowAvg,
			HighestDay: highDay.String(),
			HighestAvg: highAvg,
			Spread:     spread,
		},
	}
}

// timeOfDayPatterns compares written tone between the morning and
// evening windows.
func (p *Pipeline) timeOfDayPatterns(entries []model.MoodEntry) *model.MoodInsight {
	const minEntries = 6
	const minPerWindow = 2
	const minDifference = 0.3

	if len(entries) < minEntries {
		return nil
	}
	var morningSum, eveningSum float64
	var morningN, eveningN int
	for _, e := range entries {
		if !e.HasDate() {
			continue
		}
		comparative := 0.0
		if e.Sentiment != nil {
			comparative = e.Sentiment.Comparative
		}
		switch temporal.Window(e.ClockTime()) {
		case "morning":
			morningSum += comparative
			morningN++
		case "evening":
			eveningSum += comparative
			eveningN++
		}
	}
	if morningN < minPerWindow || eveningN < minPerWindow {
		return nil
	}
	morningAvg := morningSum / float64(morningN)
	eveningAvg := eveningSum / float64(eveningN)
	if math.Abs(morningAvg-eveningAvg) <= minDifference {
		return nil
	}

	better := "morning"
	if eveningAvg > morningAvg {
		better = "evening"
	}
	return &model.MoodInsight{
		Type:                 model.InsightTimeOfDay,
		Observation:          fmt.Sprintf("Your reflections read noticeably more positive in the %s", better),
		Priority:             model.PriorityMedium,
		ActionableSuggestion: fmt.Sprintf("Save decisions that need optimism for the %s", better),
		Data: model.TimeOfDayData{
			MorningAvg:     morningAvg,
			EveningAvg:     eveningAvg,
			MorningSamples: morningN,
			EveningSamples: eveningN,
			TimeContext:    better,
		},
	}
}

// triggerIdentification looks for a contextual word dominating the
// low-mood entries, then falls back to the symmetric high-mood check.
func (p *Pipeline) triggerIdentification(entries []model.MoodEntry) *model.MoodInsight {
	const minReflected = 5
	const minLow = 2
	const dominance = 0.6

	refl := reflected(entries)
	if len(refl) < minReflected {
		return nil
	}

	var low, high []model.MoodEntry
	for _, e := range refl {
		if e.MoodValue <= lowMoodMax {
			low = append(low, e)
		} else if e.MoodValue >= highMoodMin {
			high = append(high, e)
		}
	}

	if len(low) >= minLow {
		words := textfeat.CommonContextWords(low, 5)
		need := int(math.Ceil(dominance * float64(len(low))))
		if len(words) > 0 && words[0].Count >= need {
			top := words[0]
			return &model.MoodInsight{
				Type:                 model.InsightTrigger,
				Observation:          fmt.Sprintf("%q shows up in most of your toughest moments", top.Word),
				Priority:             model.PriorityHigh,
				ActionableSuggestion: fmt.Sprintf("Watch how you feel before and after %s next time", top.Word),
				Data: model.TriggerData{
					Word:        top.Word,
					Count:       top.Count,
					SampleCount: len(low),
					SuccessRate: float64(top.Count) / float64(len(low)),
				},
			}
		}
	}

	if len(high) >= minLow {
		words := textfeat.CommonContextWords(high, 5)
		need := int(math.Ceil(dominance * float64(len(high))))
		if len(words) > 0 && words[0].Count >= need {
			top := words[0]
			return &model.MoodInsight{
				Type:                 model.InsightPositiveContext,
				Observation:          fmt.Sprintf("%q features in your best days", top.Word),
				Priority:             model.PriorityHigh,
				ActionableSuggestion: fmt.Sprintf("More %s might be an easy win", top.Word),
				Data: model.PositiveContextData{
					Word:        top.Word,
					Count:       top.Count,
					SampleCount: len(high),
				},
			}
		}
	}
	return nil
}

// progressRecognition celebrates consistent tracking, or failing that,
// growth in reflection depth and vocabulary.
func (p *Pipeline) progressRecognition(entries []model.MoodEntry) *model.MoodInsight {
	const minEntries = 7
	const minRate = 0.3
	const minReflectedForGrowth = 10
	const lengthGrowthMin = 0.3
	const vocabGrowthMin = 0.2

	if len(entries) < minEntries {
		return nil
	}

	earliest := entries[len(entries)-1].OrderTime()
	for _, e := range entries {
		if e.HasDate() && e.OrderTime().Before(earliest) {
			earliest = e.OrderTime()
		}
	}
	spanDays := p.cfg.Now().Sub(earliest).Hours() / 24
	if spanDays > 1 {
		rate := float64(len(entries)) / spanDays
		if rate > minRate {
			return &model.MoodInsight{
				Type:                 model.InsightProgress,
				Observation:          fmt.Sprintf("You've checked in %d times over %d days; that consistency is what makes these patterns visible", len(entries), int(spanDays)),
				Priority:             model.PriorityMedium,
				ActionableSuggestion: "Keep the streak casual; even a one-word entry counts",
				Data: model.ProgressData{
					Aspect:       "consistency",
					TrackingRate: rate,
					SpanDays:     int(spanDays),
				},
			}
		}
	}

	refl := reflected(entries)
	if len(refl) < minReflectedForGrowth {
		return nil
	}
	recent, oldest := refl[:5], refl[len(refl)-5:]
	recentLen, recentVocab := reflectionStats(recent)
	oldestLen, oldestVocab := reflectionStats(oldest)
	if oldestLen > 0 && (recentLen-oldestLen)/oldestLen >= lengthGrowthMin {
		return &model.MoodInsight{
			Type:        model.InsightProgress,
			Observation: "Your recent reflections go noticeably deeper than your early ones",
			Priority:    model.PriorityMedium,
			Data: model.ProgressData{
				Aspect:       "depth",
				LengthGrowth: (recentLen - oldestLen) / oldestLen,
			},
		}
	}
	if oldestVocab > 0 && (recentVocab-oldestVocab)/oldestVocab >= vocabGrowthMin {
		return &model.MoodInsight{
			Type:        model.InsightProgress,
			Observation: "You're describing your moods with a richer vocabulary than when you started",
			Priority:    model.PriorityLow,
			Data: model.ProgressData{
				Aspect:           "vocabulary",
				VocabularyGrowth: (recentVocab - oldestVocab) / oldestVocab,
			},
		}
	}
	return nil
}

func reflectionStats(entries []model.MoodEntry) (avgLen, avgVocab float64) {
	if len(entries) == 0 {
		return 0, 0
	}
	var lenSum, vocabSum int
	for _, e := range entries {
		toks := sentiment.Tokenize(e.Reflection)
		lenSum += len(toks)
		unique := make(map[string]bool, len(toks))
		for _, t := range toks {
			unique[t] = true
		}
		vocabSum += len(unique)
	}
	n := float64(len(entries))
	return float64(lenSum) / n, float64(vocabSum) / n
}

// copingRecognition measures how quickly low moods recover.
func (p *Pipeline) copingRecognition(entries []model.MoodEntry) *model.MoodInsight {
	const minEntries = 10
	const minLow = 2
	const recoveryWindowDays = 7
	const maxAvgRecoveryDays = 3
	const recoveredMood = 3

	if len(entries) < minEntries {
		return nil
	}

	// chronological copy
	chrono := make([]model.MoodEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].HasDate() {
			chrono = append(chrono, entries[i])
		}
	}

	lowCount := 0
	var recoveryDays []float64
	for i, e := range chrono {
		if e.MoodValue > lowMoodMax {
			continue
		}
		lowCount++
		for _, later := range chrono[i+1:] {
			gap := later.OrderTime().Sub(e.OrderTime()).Hours() / 24
			if gap > recoveryWindowDays {
				break
			}
			if later.MoodValue >= recoveredMood {
				recoveryDays = append(recoveryDays, gap)
				break
			}
		}
	}
	if lowCount < minLow || len(recoveryDays) < minLow {
		return nil
	}

	sum := 0.0
	for _, d := range recoveryDays {
		sum += d
	}
	avg := sum / float64(len(recoveryDays))
	if avg > maxAvgRecoveryDays {
		return nil
	}

	rounded := int(math.Round(avg))
	if rounded < 1 {
		rounded = 1
	}
	return &model.MoodInsight{
		Type:                 model.InsightCoping,
		Observation:          fmt.Sprintf("After hard days you typically find your way back within %d days; that's real resilience", rounded),
		Priority:             model.PriorityHigh,
		ActionableSuggestion: "Whatever you did on those rebound days is worth repeating",
		Data: model.CopingData{
			Recoveries:      len(recoveryDays),
			AvgRecoveryDays: avg,
		},
	}
}

// environmentalAwareness compares weekday and weekend entries.
func (p *Pipeline) environmentalAwareness(entries []model.MoodEntry) *model.MoodInsight {
	const minEntries = 10
	const minWeekday = 3
	const minWeekend = 2
	const minMoodDivergence = 0.5

	if len(entries) < minEntries {
		return nil
	}
	var weekday, weekend []model.MoodEntry
	for _, e := range entries {
		if !e.HasDate() {
			continue
		}
		if temporal.IsWeekend(e.OrderTime()) {
			weekend = append(weekend, e)
		} else {
			weekday = append(weekday, e)
		}
	}
	if len(weekday) < minWeekday || len(weekend) < minWeekend {
		return nil
	}

	weekdayWords := textfeat.CommonContextWords(weekday, 3)
	weekendWords := textfeat.CommonContextWords(weekend, 3)
	weekdayAvg := averageMood(weekday)
	weekendAvg := averageMood(weekend)

	if len(weekdayWords) > 0 && len(weekendWords) > 0 && disjoint(weekdayWords, weekendWords) {
		return &model.MoodInsight{
			Type:        model.InsightEnvironmental,
			Observation: fmt.Sprintf("Your weekdays revolve around %q while weekends are about %q; they are almost separate lives", weekdayWords[0].Word, weekendWords[0].Word),
			Priority:    model.PriorityLow,
			Data: model.EnvironmentalData{
				WeekdayTheme: weekdayWords[0].Word,
				WeekendTheme: weekendWords[0].Word,
				WeekdayAvg:   weekdayAvg,
				WeekendAvg:   weekendAvg,
			},
		}
	}
	if math.Abs(weekdayAvg-weekendAvg) > minMoodDivergence {
		better := "weekends"
		if weekdayAvg > weekendAvg {
			better = "weekdays"
		}
		return &model.MoodInsight{
			Type:        model.InsightEnvironmental,
			Observation: fmt.Sprintf("Your mood runs noticeably higher on %s", better),
			Priority:    model.PriorityLow,
			Data: model.EnvironmentalData{
				WeekdayAvg: weekdayAvg,
				WeekendAvg: weekendAvg,
			},
		}
	}
	return nil
}

func disjoint(a, b []textfeat.WordCount) bool {
	for _, x := range a {
		for _, y := range b {
			if x.Word == y.Word {
				return false
			}
		}
	}
	return true
}

// lengthVariation notices when longer-than-usual entries coincide with
// negative sentiment.
func (p *Pipeline) lengthVariation(entries []model.MoodEntry) *model.MoodInsight {
	const deviationFactor = 0.8

	refl := reflected(entries)
	if len(refl) < minInsightEntries {
		return nil
	}
	lengths := make([]float64, len(refl))
	var mean float64
	for i, e := range refl {
		lengths[i] = float64(len(sentiment.Tokenize(e.Reflection)))
		mean += lengths[i]
	}
	mean /= float64(len(refl))

	var variance float64
	for _, l := range lengths {
		variance += (l - mean) * (l - mean)
	}
	deviation := math.Sqrt(variance / float64(len(refl)))
	if mean == 0 || deviation <= deviationFactor*mean {
		return nil
	}

	longNegative := 0
	for i, e := range refl {
		if lengths[i] > mean && e.Sentiment != nil && e.Sentiment.Score < 0 {
			longNegative++
		}
	}
	if longNegative == 0 {
		return nil
	}
	return &model.MoodInsight{
		Type:        model.InsightLengthVariation,
		Observation: "You tend to write more during difficult times; the page is doing some of the processing",
		Priority:    model.PriorityLow,
		Data: model.LengthVariationData{
			MeanLength:        mean,
			Deviation:         deviation,
			LongNegativeCount: longNegative,
		},
	}
}

// contextualPatterns finds the word that keeps appearing in negative-
// tone entries.
func (p *Pipeline) contextualPatterns(entries []model.MoodEntry) *model.MoodInsight {
	const negativeComparative = -0.1
	const minOccurrences = 2

	var negative []model.MoodEntry
	for _, e := range entries {
		if e.Sentiment != nil && e.Sentiment.Comparative < negativeComparative {
			negative = append(negative, e)
		}
	}
	if len(negative) == 0 {
		return nil
	}
	words := textfeat.CommonContextWords(negative, 5)
	if len(words) == 0 || words[0].Count < minOccurrences {
		return nil
	}
	return &model.MoodInsight{
		Type:        model.InsightContextualPattern,
		Observation: fmt.Sprintf("%q comes up often during challenging times", words[0].Word),
		Priority:    model.PriorityMedium,
		Data: model.ContextualPatternData{
			Word:  words[0].Word,
			Count: words[0].Count,
		},
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
