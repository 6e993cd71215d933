// Package patterns aggregates the correlation, cycle, and transition
// analyzers into one ranked personal-pattern view.
package patterns

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/engine/correlate"
	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/engine/cycles"
	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/engine/markov"
	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/engine/textfeat"
	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/model"
)

// Config carries the documented analysis bounds. The caps keep a pass
// over an arbitrarily large history bounded; tune values here, not in
// the loops.
type Config struct {
	MaxEntries         int
	MaxTransitionPairs int
	MaxActivityPairs   int
	MaxPhraseEntries   int
	MaxPhraseWords     int
	MaxStreakEntries   int
	MaxActivities      int
	TopPatterns        int

	// Now is injectable so tests control age and context computations.
	Now    func() time.Time
	Logger zerolog.Logger
}

// DefaultConfig returns the production caps.
func DefaultConfig() Config {
	return Config{
		MaxEntries:         100,
		MaxTransitionPairs: 50,
		MaxActivityPairs:   40,
		MaxPhraseEntries:   30,
		MaxPhraseWords:     50,
		MaxStreakEntries:   50,
		MaxActivities:      6,
		TopPatterns:        5,
		Now:                time.Now,
		Logger:             zerolog.Nop(),
	}
}

// minPatternEntries guards PersonalPatterns: below this the answer is
// always empty, never an error.
const minPatternEntries = 5

// Detector owns one analysis session: the snapshot, the config, and the
// transition model built once and reused for every query on this
// instance. Detectors are read-only after construction and safe to call
// from a background worker.
type Detector struct {
	entries []model.MoodEntry
	cfg     Config
	model   *markov.Model
}

// New sorts the snapshot recent-first, applies the entry cap, and
// builds the transition model.
func New(entries []model.MoodEntry, cfg Config) *Detector {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	snapshot := append([]model.MoodEntry(nil), entries...)
	sort.SliceStable(snapshot, func(i, j int) bool {
		return snapshot[i].OrderTime().After(snapshot[j].OrderTime())
	})
	if cfg.MaxEntries > 0 && len(snapshot) > cfg.MaxEntries {
		snapshot = snapshot[:cfg.MaxEntries]
	}
	return &Detector{
		entries: snapshot,
		cfg:     cfg,
		model:   markov.Build(snapshot, cfg.MaxTransitionPairs),
	}
}

// Model exposes the session's transition model.
func (d *Detector) Model() *markov.Model { return d.model }

// PersonalPatterns returns the confidence-ranked pattern list, capped
// to TopPatterns. Fewer than five entries yields an empty list.
// A failing sub-analyzer is logged and skipped; the rest still report.
func (d *Detector) PersonalPatterns() []model.PersonalPattern {
	out := []model.PersonalPattern{}
	if len(d.entries) < minPatternEntries {
		return out
	}

	out = append(out, d.safe("activity", func() []model.PersonalPattern {
		return correlate.ActivityImprovements(d.entries, d.cfg.MaxActivityPairs, d.cfg.MaxActivities)
	})...)
	out = append(out, d.safe("trigger", func() []model.PersonalPattern {
		return correlate.TriggerPhrases(d.entries, d.cfg.MaxPhraseEntries, d.cfg.MaxPhraseWords)
	})...)
	out = append(out, d.safe("cycles", func() []model.PersonalPattern {
		return cycles.DayOfWeekCycles(d.entries)
	})...)
	out = append(out, d.safe("streaks", func() []model.PersonalPattern {
		return cycles.ProgressionStreaks(d.entries, d.cfg.MaxStreakEntries)
	})...)

	sort.SliceStable(out, func(i, j int) bool { return out[i].Confidence > out[j].Confidence })
	if d.cfg.TopPatterns > 0 && len(out) > d.cfg.TopPatterns {
		out = out[:d.cfg.TopPatterns]
	}
	return out
}

// PredictNextMood forecasts the next mood for the current state. When
// the forecast is lower than the current mood it attaches a preventive
// suggestion drawn from the activity correlator.
func (d *Detector) PredictNextMood(currentMood int, reflection string) model.PatternPrediction {
	pred := d.model.Predict(currentMood, reflection, d.cfg.Now())
	if pred.PredictedMood < currentMood {
		if activity := correlate.TopImprovementActivity(d.entries, d.cfg.MaxActivityPairs, d.cfg.MaxActivities); activity != "" {
			pred.PreventiveSuggestion = fmt.Sprintf("When feeling down, try %s", activity)
		} else {
			pred.PreventiveSuggestion = "A short walk or a few quiet minutes may help"
		}
	}
	return pred
}

// correlationMinOccurrences is how often a theme must precede a good
// mood before it is worth mentioning.
const correlationMinOccurrences = 3

// CorrelationInsights reports themes that repeatedly show up the entry
// before a good mood. Informational only.
func (d *Detector) CorrelationInsights() []string {
	counts := make(map[string]int)
	for i := len(d.entries) - 1; i > 0; i-- {
		earlier, later := d.entries[i], d.entries[i-1]
		if later.MoodValue < 4 || !earlier.HasReflection() {
			continue
		}
		for _, theme := range textfeat.Themes(earlier.Reflection) {
			counts[theme]++
		}
	}

	var out []string
	for _, theme := range []string{"work", "family", "health", "social", "finance"} {
		if counts[theme] >= correlationMinOccurrences {
			out = append(out, fmt.Sprintf("Entries about %s often come right before your better days", theme))
		}
	}
	return out
}

// safe isolates one sub-analyzer so a panic there cannot take down the
// whole pattern pass.
func (d *Detector) safe(name string, fn func() []model.PersonalPattern) (out []model.PersonalPattern) {
	defer func() {
		if r := recover(); r != nil {
			d.cfg.Logger.Warn().Str("analyzer", name).Interface("panic", r).
				Msg("pattern analyzer failed; skipping")
			out = nil
		}
	}()
	return fn()
}
