package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/model"
)

// InsertEntry writes a new mood_entries row and returns the stored
// entry with its assigned ascending id. Sentiment is passed in already
// computed; this layer never scores text.
func (d *Database) InsertEntry(ctx context.Context, draft model.EntryDraft, sent *model.SentimentData, createdAt time.Time) (model.MoodEntry, error) {
	if draft.MoodValue < 1 || draft.MoodValue > 5 {
		return model.MoodEntry{}, fmt.Errorf("mood value %d out of range 1-5", draft.MoodValue)
	}

	var sentJSON sql.NullString
	if sent != nil {
		raw, err := json.Marshal(sent)
		if err != nil {
			return model.MoodEntry{}, fmt.Errorf("marshal sentiment: %w", err)
		}
		sentJSON = sql.NullString{String: string(raw), Valid: true}
	}

	ts := draft.Timestamp
	if ts.IsZero() {
		ts = createdAt
	}

	res, err := d.db.ExecContext(ctx, `
        INSERT INTO mood_entries(mood_value, mood_label, reflection, timestamp, created_at, sentiment)
        VALUES(?, ?, ?, ?, ?, ?);
    `, draft.MoodValue, draft.MoodLabel, draft.Reflection,
		ts.UTC().Format(time.RFC3339Nano), createdAt.UTC().Format(time.RFC3339Nano), sentJSON)
	if err != nil {
		return model.MoodEntry{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.MoodEntry{}, err
	}

	return model.MoodEntry{
		ID:         id,
		MoodValue:  draft.MoodValue,
		MoodLabel:  draft.MoodLabel,
		Reflection: draft.Reflection,
		Timestamp:  ts.UTC(),
		CreatedAt:  createdAt.UTC(),
		Sentiment:  sent,
	}, nil
}

// RecentEntries fetches the newest entries, ordered by the canonical
// key (created_at, falling back to timestamp), descending.
func (d *Database) RecentEntries(ctx context.Context, limit int) ([]model.MoodEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := d.db.QueryContext(ctx, `
        SELECT id, mood_value, mood_label, reflection, timestamp, created_at, sentiment
        FROM mood_entries
        ORDER BY COALESCE(created_at, timestamp) DESC, id DESC
        LIMIT ?;
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MoodEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// CountEntries returns the total number of stored entries.
func (d *Database) CountEntries(ctx context.Context) (int64, error) {
	var n int64
	if err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM mood_entries;`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// DeleteAllEntries clears the table. Useful for tests.
func (d *Database) DeleteAllEntries(ctx context.Context) error {
	_, err := d.db.ExecContext(ctx, `DELETE FROM mood_entries;`)
	return err
}

func scanEntry(rows *sql.Rows) (model.MoodEntry, error) {
	var (
		e          model.MoodEntry
		reflection sql.NullString
		tsRaw      sql.NullString
		createdRaw sql.NullString
		sentRaw    sql.NullString
	)
	if err := rows.Scan(&e.ID, &e.MoodValue, &e.MoodLabel, &reflection, &tsRaw, &createdRaw, &sentRaw); err != nil {
		return model.MoodEntry{}, err
	}
	if reflection.Valid {
		e.Reflection = reflection.String
	}
	// unparsable dates leave the zero time; analysis skips such entries
	// instead of failing the whole read
	if tsRaw.Valid {
		if t, err := parseStoredTime(tsRaw.String); err == nil {
			e.Timestamp = t
		}
	}
	if createdRaw.Valid {
		if t, err := parseStoredTime(createdRaw.String); err == nil {
			e.CreatedAt = t
		}
	}
	if sentRaw.Valid && sentRaw.String != "" {
		var sent model.SentimentData
		if err := json.Unmarshal([]byte(sentRaw.String), &sent); err == nil {
			e.Sentiment = &sent
		}
	}
	return e, nil
}

func parseStoredTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", raw)
}
