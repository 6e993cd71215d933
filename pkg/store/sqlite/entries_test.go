package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/model"
)

func testDB(t *testing.T) *Database {
	t.Helper()
	db, err := New(context.Background(), Config{
		Path:   filepath.Join(t.TempDir(), "test.db"),
		Logger: zerolog.Nop(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestInsertAssignsAscendingIDs(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	first, err := db.InsertEntry(ctx, model.EntryDraft{MoodValue: 3, MoodLabel: "Okay"}, nil, now)
	require.NoError(t, err)
	second, err := db.InsertEntry(ctx, model.EntryDraft{MoodValue: 4, MoodLabel: "Good"}, nil, now.Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, first.ID+1, second.ID)
}

func TestInsertRejectsOutOfRangeMood(t *testing.T) {
	db := testDB(t)
	_, err := db.InsertEntry(context.Background(), model.EntryDraft{MoodValue: 6, MoodLabel: "??"}, nil, time.Now())
	assert.Error(t, err)
	_, err = db.InsertEntry(context.Background(), model.EntryDraft{MoodValue: 0, MoodLabel: "??"}, nil, time.Now())
	assert.Error(t, err)
}

func TestRecentEntriesOrderAndSentimentRoundTrip(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	sent := &model.SentimentData{
		Score:       -2,
		Comparative: -0.5,
		Positive:    []string{},
		Negative:    []string{"tired"},
		WordCount:   4,
	}
	_, err := db.InsertEntry(ctx, model.EntryDraft{MoodValue: 2, MoodLabel: "Low", Reflection: "so very tired today"}, sent, base)
	require.NoError(t, err)
	_, err = db.InsertEntry(ctx, model.EntryDraft{MoodValue: 4, MoodLabel: "Good"}, nil, base.AddDate(0, 0, 1))
	require.NoError(t, err)

	got, err := db.RecentEntries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, 4, got[0].MoodValue, "newest first")
	assert.Equal(t, 2, got[1].MoodValue)
	require.NotNil(t, got[1].Sentiment)
	assert.Equal(t, *sent, *got[1].Sentiment)
	assert.True(t, got[1].HasReflection())
}

func TestRecentEntriesLimit(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := db.InsertEntry(ctx, model.EntryDraft{MoodValue: 3, MoodLabel: "Okay"}, nil, base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, err)
	}
	got, err := db.RecentEntries(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	n, err := db.CountEntries(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)
}

func TestDraftTimestampFallsBackToCreatedAt(t *testing.T) {
	db := testDB(t)
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	e, err := db.InsertEntry(context.Background(), model.EntryDraft{MoodValue: 3, MoodLabel: "Okay"}, nil, now)
	require.NoError(t, err)
	assert.Equal(t, now, e.Timestamp)
	assert.Equal(t, now, e.CreatedAt)
}
