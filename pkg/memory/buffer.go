package memory

import (
	"sync"

	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/model"
)

// RecentBuffer is an in-memory, capacity-bounded cache of the newest
// entries, kept recent-first. It lets the journal serve analysis
// snapshots without a store read per call. Entries never expire; the
// cap alone bounds memory.
type RecentBuffer struct {
	mu       sync.Mutex
	items    []model.MoodEntry
	capacity int
}

func NewRecentBuffer(capacity int) *RecentBuffer {
	if capacity <= 0 {
		capacity = 128
	}
	return &RecentBuffer{capacity: capacity}
}

// Seed replaces the buffer contents with a recent-first slice, trimming
// to capacity.
func (b *RecentBuffer) Seed(entries []model.MoodEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	items := append([]model.MoodEntry(nil), entries...)
	if len(items) > b.capacity {
		items = items[:b.capacity]
	}
	b.items = items
}

// Add pushes a newly saved entry to the front, evicting the oldest if
// over capacity.
func (b *RecentBuffer) Add(entry model.MoodEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.items = append([]model.MoodEntry{entry}, b.items...)
	if len(b.items) > b.capacity {
		b.items = b.items[:b.capacity]
	}
}

// Snapshot returns up to n entries, recent-first. n <= 0 returns all
// buffered entries. The returned slice is a copy.
func (b *RecentBuffer) Snapshot(n int) []model.MoodEntry {
	b.mu.Lock()
	defer b.mu.Unlock()

	if n <= 0 || n > len(b.items) {
		n = len(b.items)
	}
	out := make([]model.MoodEntry, n)
	copy(out, b.items[:n])
	return out
}

// Len reports the buffered entry count.
func (b *RecentBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}
