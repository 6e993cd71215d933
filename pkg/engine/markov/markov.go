// Package markov builds the mood-state transition table and answers
// next-mood queries from it.
package markov

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/engine/temporal"
	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/model"
)

// State is one node of the transition model.
type State struct {
	Mood    int    `json:"mood"`
	Context string `json:"context,omitempty"`
}

// Key is the exact-match identity of a state. States compare by key
// equality, never by numeric distance, except in the fallback path.
func (s State) Key() string {
	return fmt.Sprintf("%d_%s", s.Mood, s.Context)
}

// Transition is one observed edge with its normalized probability.
type Transition struct {
	From        State   `json:"from"`
	To          State   `json:"to"`
	Count       int     `json:"count"`
	Probability float64 `json:"probability"`
}

// Model holds transitions grouped by from-state key. Built once per
// analyzer instance and read-only afterwards.
type Model struct {
	byFrom map[string][]*Transition
	keys   []string
}

// Build constructs the model from a recent-first entry snapshot.
// Only the most recent maxPairs consecutive pairs are considered;
// undated entries are skipped.
func Build(entries []model.MoodEntry, maxPairs int) *Model {
	m := &Model{byFrom: make(map[string][]*Transition)}

	dated := make([]model.MoodEntry, 0, len(entries))
	for _, e := range entries {
		if e.HasDate() {
			dated = append(dated, e)
		}
	}
	if maxPairs > 0 && len(dated) > maxPairs+1 {
		dated = dated[:maxPairs+1]
	}
	// snapshot is recent-first; walk pairs in chronological order
	for i := len(dated) - 1; i > 0; i-- {
		from := stateOf(dated[i])
		to := stateOf(dated[i-1])
		m.add(from, to)
	}
	m.normalize()
	return m
}

func stateOf(e model.MoodEntry) State {
	return State{Mood: e.MoodValue, Context: temporal.ContextKey(e)}
}

func (m *Model) add(from, to State) {
	key := from.Key()
	list, ok := m.byFrom[key]
	if !ok {
		m.keys = append(m.keys, key)
	}
	for _, t := range list {
		if t.To.Key() == to.Key() {
			t.Count++
			return
		}
	}
	m.byFrom[key] = append(list, &Transition{From: from, To: to, Count: 1})
}

func (m *Model) normalize() {
	for _, key := range m.keys {
		total := 0
		for _, t := range m.byFrom[key] {
			total += t.Count
		}
		if total == 0 {
			continue
		}
		for _, t := range m.byFrom[key] {
			t.Probability = float64(t.Count) / float64(total)
		}
	}
}

// Transitions returns the edges leaving the given state key, in
// first-encounter order.
func (m *Model) Transitions(key string) []*Transition {
	return m.byFrom[key]
}

// StateKeys returns all from-state keys in first-encounter order.
func (m *Model) StateKeys() []string {
	return m.keys
}

// Len reports the number of distinct from-states.
func (m *Model) Len() int { return len(m.keys) }

// Prediction never errors; with too little data it degrades through
// these fixed confidence levels.
const (
	relaxedConfidence      = 0.5
	insufficientConfidence = 0.1
)

// Predict forecasts the next mood for a current mood observed at time
// now with the given reflection text.
//
// Exact-key transitions win: the highest-probability edge is chosen,
// ties broken by encounter order. Otherwise the model relaxes to every
// transition whose from-mood is within 1 of the current mood and
// averages the destinations.
func (m *Model) Predict(currentMood int, reflection string, now time.Time) model.PatternPrediction {
	key := State{Mood: currentMood, Context: temporal.ContextKeyAt(now, reflection)}.Key()

	if list := m.byFrom[key]; len(list) > 0 {
		best := list[0]
		total := 0
		for _, t := range list {
			total += t.Count
			if t.Probability > best.Probability {
				best = t
			}
		}
		return model.PatternPrediction{
			PredictedMood: best.To.Mood,
			Confidence:    best.Probability,
			BasedOn:       fmt.Sprintf("Based on %d similar past situations", total),
		}
	}

	// relaxed pass over the whole table
	sum, n := 0, 0
	for _, k := range m.keys {
		for _, t := range m.byFrom[k] {
			if abs(t.From.Mood-currentMood) <= 1 {
				sum += t.To.Mood * t.Count
				n += t.Count
			}
		}
	}
	if n > 0 {
		return model.PatternPrediction{
			PredictedMood: int(math.Round(float64(sum) / float64(n))),
			Confidence:    relaxedConfidence,
			BasedOn:       fmt.Sprintf("Based on %d entries at similar mood levels", n),
		}
	}
	return model.PatternPrediction{
		PredictedMood: currentMood,
		Confidence:    insufficientConfidence,
		BasedOn:       "insufficient data",
	}
}

// SortedTransitions returns every edge ordered by from-key then
// encounter order. Handy for diagnostics and tests.
func (m *Model) SortedTransitions() []*Transition {
	keys := append([]string(nil), m.keys...)
	sort.Strings(keys)
	var out []*Transition
	for _, k := range keys {
		out = append(out, m.byFrom[k]...)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
