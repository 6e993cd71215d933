// Package store wires persistence, the recent-entry buffer, and the
// analysis engines into the Journal the daemon and CLI consume.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/engine/insights"
	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/engine/patterns"
	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/engine/sentiment"
	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/memory"
	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/model"
	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/store/sqlite"
)

// Options configures a Journal.
type Options struct {
	DBPath     string
	BufferSize int
	Caps       patterns.Config
	Logger     zerolog.Logger
	Now        func() time.Time
}

// Journal implements model.JournalStore. All analysis methods read a
// bounded recent-first snapshot and return freshly derived objects;
// only the entry data itself is cached (in the buffer), never results.
type Journal struct {
	db       *sqlite.Database
	buffer   *memory.RecentBuffer
	pipeline *insights.Pipeline
	caps     patterns.Config
	logger   zerolog.Logger
	now      func() time.Time
}

// Open initializes storage and warms the buffer from the newest rows.
func Open(ctx context.Context, opt Options) (*Journal, error) {
	if opt.BufferSize == 0 {
		opt.BufferSize = 128
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if opt.Caps.MaxEntries == 0 {
		opt.Caps = patterns.DefaultConfig()
	}
	opt.Caps.Now = opt.Now
	opt.Caps.Logger = opt.Logger

	db, err := sqlite.New(ctx, sqlite.Config{Path: opt.DBPath, Logger: opt.Logger})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	buf := memory.NewRecentBuffer(opt.BufferSize)
	recent, err := db.RecentEntries(ctx, opt.BufferSize)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("warm buffer: %w", err)
	}
	buf.Seed(recent)

	pipeCfg := insights.DefaultConfig()
	pipeCfg.MaxPhraseEntries = opt.Caps.MaxPhraseEntries
	pipeCfg.MaxPhraseWords = opt.Caps.MaxPhraseWords
	pipeCfg.Now = opt.Now
	pipeCfg.Logger = opt.Logger

	return &Journal{
		db:       db,
		buffer:   buf,
		pipeline: insights.NewPipeline(pipeCfg),
		caps:     opt.Caps,
		logger:   opt.Logger,
		now:      opt.Now,
	}, nil
}

// Save scores the reflection once, persists the entry, and pushes it
// into the buffer. Entries are immutable from here on.
func (j *Journal) Save(ctx context.Context, draft model.EntryDraft) (model.MoodEntry, error) {
	var sent *model.SentimentData
	if draft.Reflection != "" {
		s := sentiment.Analyze(draft.Reflection)
		sent = &s
	}
	entry, err := j.db.InsertEntry(ctx, draft, sent, j.now())
	if err != nil {
		return model.MoodEntry{}, fmt.Errorf("save entry: %w", err)
	}
	j.buffer.Add(entry)
	j.logger.Debug().Int64("id", entry.ID).Int("mood", entry.MoodValue).Msg("entry saved")
	return entry, nil
}

// Recent returns up to limit entries, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]model.MoodEntry, error) {
	if limit <= 0 || limit > j.buffer.Len() {
		return j.db.RecentEntries(ctx, limit)
	}
	return j.buffer.Snapshot(limit), nil
}

// snapshot serves the bounded entry set every analysis call reads.
func (j *Journal) snapshot(ctx context.Context) ([]model.MoodEntry, error) {
	if n := j.buffer.Len(); n >= j.caps.MaxEntries {
		return j.buffer.Snapshot(j.caps.MaxEntries), nil
	}
	return j.db.RecentEntries(ctx, j.caps.MaxEntries)
}

// Insights runs the full heuristic pipeline over the snapshot.
func (j *Journal) Insights(ctx context.Context) ([]model.MoodInsight, error) {
	entries, err := j.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	run := uuid.NewString()
	out := j.pipeline.Generate(entries)
	j.logger.Debug().Str("run", run).Int("entries", len(entries)).Int("insights", len(out)).Msg("insight pass")
	return out, nil
}

// Patterns returns the confidence-ranked personal patterns.
func (j *Journal) Patterns(ctx context.Context) ([]model.PersonalPattern, error) {
	entries, err := j.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return patterns.New(entries, j.caps).PersonalPatterns(), nil
}

// Predict forecasts the next mood from the current one.
func (j *Journal) Predict(ctx context.Context, mood int, reflection string) (model.PatternPrediction, error) {
	if mood < 1 || mood > 5 {
		return model.PatternPrediction{}, fmt.Errorf("mood value %d out of range 1-5", mood)
	}
	entries, err := j.snapshot(ctx)
	if err != nil {
		return model.PatternPrediction{}, err
	}
	return patterns.New(entries, j.caps).PredictNextMood(mood, reflection), nil
}

// Quality runs the pre-flight data gate.
func (j *Journal) Quality(ctx context.Context) (model.DataQuality, error) {
	entries, err := j.snapshot(ctx)
	if err != nil {
		return model.DataQuality{}, err
	}
	return insights.CheckDataQuality(entries), nil
}

// Weekly merges patterns and insights into the unified observation list.
func (j *Journal) Weekly(ctx context.Context) ([]model.Observation, error) {
	entries, err := j.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	pats := patterns.New(entries, j.caps).PersonalPatterns()
	ins := j.pipeline.Generate(entries)
	return insights.WeeklyObservations(pats, ins), nil
}

// Close releases resources.
func (j *Journal) Close() error {
	return j.db.Close()
}

var _ model.JournalStore = (*Journal)(nil)
