package model

import (
	"context"
	"strings"
	"time"
)

// SentimentData is the lexicon score computed once when an entry is saved.
// It is never recomputed from the same text, so historical insights stay
// stable even if the lexicon changes.
type SentimentData struct {
	Score       int      `json:"score"`
	Comparative float64  `json:"comparative"`
	Positive    []string `json:"positive"`
	Negative    []string `json:"negative"`
	WordCount   int      `json:"wordCount"`
}

// EntryDraft is the save-path input before an id and sentiment are assigned.
type EntryDraft struct {
	MoodValue  int       `json:"moodValue"`
	MoodLabel  string    `json:"moodLabel"`
	Reflection string    `json:"reflection"`
	Timestamp  time.Time `json:"timestamp"`
}

// MoodEntry is one check-in. Entries are append-only and never mutated;
// analysis reads an immutable snapshot of them.
type MoodEntry struct {
	ID         int64          `json:"id"`
	MoodValue  int            `json:"moodValue"`
	MoodLabel  string         `json:"moodLabel"`
	Reflection string         `json:"reflection,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
	CreatedAt  time.Time      `json:"createdAt"`
	Sentiment  *SentimentData `json:"sentimentData,omitempty"`
}

// HasReflection reports whether the entry carries non-blank free text.
func (e MoodEntry) HasReflection() bool {
	return strings.TrimSpace(e.Reflection) != ""
}

// OrderTime is the canonical ordering key: createdAt when present,
// else the user-intended timestamp.
func (e MoodEntry) OrderTime() time.Time {
	if !e.CreatedAt.IsZero() {
		return e.CreatedAt
	}
	return e.Timestamp
}

// ClockTime is the time used for time-of-day semantics: the user-intended
// timestamp when present, else createdAt.
func (e MoodEntry) ClockTime() time.Time {
	if !e.Timestamp.IsZero() {
		return e.Timestamp
	}
	return e.CreatedAt
}

// HasDate reports whether the entry can take part in date-dependent
// computations. Entries without a usable date are skipped, not fatal.
func (e MoodEntry) HasDate() bool {
	return !e.CreatedAt.IsZero() || !e.Timestamp.IsZero()
}

// PatternType classifies a PersonalPattern.
type PatternType string

const (
	PatternImprovement PatternType = "improvement"
	PatternDecline     PatternType = "decline"
	PatternTrigger     PatternType = "trigger"
	PatternCycle       PatternType = "cycle"
	PatternCorrelation PatternType = "correlation"
)

// PersonalPattern is a recurring behavioral regularity. Patterns are
// recomputed on every analysis call and never persisted.
type PersonalPattern struct {
	Type              PatternType `json:"type"`
	Pattern           string      `json:"pattern"`
	Confidence        float64     `json:"confidence"`
	Frequency         int         `json:"frequency"`
	ActionableInsight string      `json:"actionableInsight"`
	Examples          []string    `json:"examples,omitempty"`
}

// Priority ranks insights for presentation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank maps a priority to its sort order (high first). Unknown values
// sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// InsightType identifies which heuristic produced an insight.
type InsightType string

const (
	InsightNuancedEmotions   InsightType = "nuanced_emotions"
	InsightDayOfWeek         InsightType = "day_of_week_patterns"
	InsightTimeOfDay         InsightType = "time_of_day_patterns"
	InsightTrigger           InsightType = "trigger_identification"
	InsightPositiveContext   InsightType = "positive_context"
	InsightProgress          InsightType = "progress_recognition"
	InsightCoping            InsightType = "coping_recognition"
	InsightEnvironmental     InsightType = "environmental_awareness"
	InsightLengthVariation   InsightType = "length_variation"
	InsightContextualPattern InsightType = "contextual_patterns"
)

// InsightData is the closed set of supporting payloads. Each insight type
// has exactly one variant so consumers never guess which optional fields
// apply.
type InsightData interface{ insightData() }

// NuancedEmotionsData supports nuanced_emotions.
type NuancedEmotionsData struct {
	MismatchCount  int `json:"mismatchCount"`
	ReflectedCount int `json:"reflectedCount"`
}

// DayOfWeekData supports day_of_week_patterns.
type DayOfWeekData struct {
	LowestDay  string  `json:"lowestDay"`
	LowestAvg  float64 `json:"lowestAvg"`
	HighestDay string  `json:"highestDay"`
	HighestAvg float64 `json:"highestAvg"`
	Spread     float64 `json:"spread"`
}

// TimeOfDayData supports time_of_day_patterns.
type TimeOfDayData struct {
	MorningAvg     float64 `json:"morningAvg"`
	EveningAvg     float64 `json:"eveningAvg"`
	MorningSamples int     `json:"morningSamples"`
	EveningSamples int     `json:"eveningSamples"`
	TimeContext    string  `json:"timeContext"`
}

// TriggerData supports trigger_identification.
type TriggerData struct {
	Word        string  `json:"word"`
	Count       int     `json:"count"`
	SampleCount int     `json:"sampleCount"`
	SuccessRate float64 `json:"successRate"`
}

// PositiveContextData supports positive_context.
type PositiveContextData struct {
	Word        string `json:"word"`
	Count       int    `json:"count"`
	SampleCount int    `json:"sampleCount"`
}

// ProgressData supports progress_recognition.
type ProgressData struct {
	Aspect           string  `json:"aspect"`
	TrackingRate     float64 `json:"trackingRate,omitempty"`
	SpanDays         int     `json:"spanDays,omitempty"`
	LengthGrowth     float64 `json:"lengthGrowth,omitempty"`
	VocabularyGrowth float64 `json:"vocabularyGrowth,omitempty"`
}

// CopingData supports coping_recognition.
type CopingData struct {
	Recoveries      int     `json:"recoveries"`
	AvgRecoveryDays float64 `json:"avgRecoveryDays"`
}

// EnvironmentalData supports environmental_awareness.
type EnvironmentalData struct {
	WeekdayTheme string  `json:"weekdayTheme,omitempty"`
	WeekendTheme string  `json:"weekendTheme,omitempty"`
	WeekdayAvg   float64 `json:"weekdayAvg"`
	WeekendAvg   float64 `json:"weekendAvg"`
}

// LengthVariationData supports length_variation.
type LengthVariationData struct {
	MeanLength        float64 `json:"meanLength"`
	Deviation         float64 `json:"deviation"`
	LongNegativeCount int     `json:"longNegativeCount"`
}

// ContextualPatternData supports contextual_patterns.
type ContextualPatternData struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

func (NuancedEmotionsData) insightData()   {}
func (DayOfWeekData) insightData()         {}
func (TimeOfDayData) insightData()         {}
func (TriggerData) insightData()           {}
func (PositiveContextData) insightData()   {}
func (ProgressData) insightData()          {}
func (CopingData) insightData()            {}
func (EnvironmentalData) insightData()     {}
func (LengthVariationData) insightData()   {}
func (ContextualPatternData) insightData() {}

// MoodInsight is one heuristic's observation. Derived, never persisted.
type MoodInsight struct {
	Type                 InsightType `json:"type"`
	Observation          string      `json:"observation"`
	Priority             Priority    `json:"priority"`
	ActionableSuggestion string      `json:"actionableSuggestion,omitempty"`
	Data                 InsightData `json:"supportingData,omitempty"`
}

// PatternPrediction is the next-mood forecast from the transition model.
type PatternPrediction struct {
	PredictedMood        int     `json:"predictedMood"`
	Confidence           float64 `json:"confidence"`
	BasedOn              string  `json:"basedOn"`
	PreventiveSuggestion string  `json:"preventiveSuggestion,omitempty"`
}

// DataQuality is the pre-flight gate result for the insight pipeline.
type DataQuality struct {
	HasEnoughData bool   `json:"hasEnoughData"`
	Reason        string `json:"reason,omitempty"`
}

// ObservationSource discriminates where an Observation came from.
type ObservationSource string

const (
	SourcePattern ObservationSource = "pattern"
	SourceInsight ObservationSource = "insight"
)

// Observation is the unified variant the weekly view consumes: exactly one
// of Pattern or Insight is set, per Source.
type Observation struct {
	Source  ObservationSource `json:"source"`
	Pattern *PersonalPattern  `json:"pattern,omitempty"`
	Insight *MoodInsight      `json:"insight,omitempty"`
}

// JournalStore is the boundary the HTTP and CLI layers program against.
type JournalStore interface {
	Save(ctx context.Context, draft EntryDraft) (MoodEntry, error)
	Recent(ctx context.Context, limit int) ([]MoodEntry, error)
	Insights(ctx context.Context) ([]MoodInsight, error)
	Patterns(ctx context.Context) ([]PersonalPattern, error)
	Predict(ctx context.Context, mood int, reflection string) (PatternPrediction, error)
	Quality(ctx context.Context) (DataQuality, error)
	Weekly(ctx context.Context) ([]Observation, error)
}
