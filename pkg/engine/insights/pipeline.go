// Package insights runs the heuristic pipeline that turns an entry
// snapshot into a priority-ranked list of observations, plus the data
// quality gate in front of it.
package insights

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/model"
)

// minInsightEntries guards Generate: below this the answer is always
// empty.
const minInsightEntries = 3

// Config mirrors the pattern detector's bounded-analysis knobs for the
// heuristics that mine text.
type Config struct {
	MaxPhraseEntries int
	MaxPhraseWords   int

	Now    func() time.Time
	Logger zerolog.Logger
}

// DefaultConfig returns production settings.
func DefaultConfig() Config {
	return Config{
		MaxPhraseEntries: 30,
		MaxPhraseWords:   50,
		Now:              time.Now,
		Logger:           zerolog.Nop(),
	}
}

// Pipeline runs every heuristic independently over the snapshot. Each
// heuristic yields at most one insight; a panic in one is logged and
// isolated so the others still report.
type Pipeline struct {
	cfg Config
}

// NewPipeline builds a pipeline with the given config.
func NewPipeline(cfg Config) *Pipeline {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Pipeline{cfg: cfg}
}

// Generate is the package-level entry point with default config.
func Generate(entries []model.MoodEntry) []model.MoodInsight {
	return NewPipeline(DefaultConfig()).Generate(entries)
}

type heuristic struct {
	name string
	run  func(*Pipeline, []model.MoodEntry) *model.MoodInsight
}

// Generation order is fixed; ties within a priority keep it.
var heuristics = []heuristic{
	{"nuanced_emotions", (*Pipeline).nuancedEmotions},
	{"day_of_week", (*Pipeline).dayOfWeekPatterns},
	{"time_of_day", (*Pipeline).timeOfDayPatterns},
	{"trigger", (*Pipeline).triggerIdentification},
	{"progress", (*Pipeline).progressRecognition},
	{"coping", (*Pipeline).copingRecognition},
	{"environmental", (*Pipeline).environmentalAwareness},
	{"length_variation", (*Pipeline).lengthVariation},
	{"contextual", (*Pipeline).contextualPatterns},
}

// Generate runs all heuristics and returns their outputs stable-sorted
// by priority (high, medium, low). Fewer than three entries yields an
// empty list.
func (p *Pipeline) Generate(entries []model.MoodEntry) []model.MoodInsight {
	out := []model.MoodInsight{}
	if len(entries) < minInsightEntries {
		return out
	}

	snapshot := append([]model.MoodEntry(nil), entries...)
	sort.SliceStable(snapshot, func(i, j int) bool {
		return snapshot[i].OrderTime().After(snapshot[j].OrderTime())
	})

	for _, h := range heuristics {
		if ins := p.safeRun(h, snapshot); ins != nil {
			out = append(out, *ins)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() < out[j].Priority.Rank()
	})
	return out
}

func (p *Pipeline) safeRun(h heuristic, entries []model.MoodEntry) (ins *model.MoodInsight) {
	defer func() {
		if r := recover(); r != nil {
			p.cfg.Logger.Warn().Str("heuristic", h.name).Interface("panic", r).
				Msg("insight heuristic failed; skipping")
			ins = nil
		}
	}()
	return h.run(p, entries)
}

// reflected filters to entries with non-blank reflections, keeping
// order.
func reflected(entries []model.MoodEntry) []model.MoodEntry {
	out := make([]model.MoodEntry, 0, len(entries))
	for _, e := range entries {
		if e.HasReflection() {
			out = append(out, e)
		}
	}
	return out
}

func averageMood(entries []model.MoodEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range entries {
		sum += e.MoodValue
	}
	return float64(sum) / float64(len(entries))
}
