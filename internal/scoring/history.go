package scoring

import (
	"sort"
	"time"
)

// HistoryEntry records one finished session.
type HistoryEntry struct {
	ID         string `json:"id"`
	Hash       string `json:"hash"` // identifies the puzzle set
	Puzzles    int    `json:"puzzles"`
	Misses     int    `json:"misses"`
	DurationMs int64  `json:"duration_ms"`
	Timestamp  string `json:"timestamp"`
}

func (e HistoryEntry) Duration() time.Duration {
	return time.Duration(e.DurationMs) * time.Millisecond
}

// History holds the past sessions played with one puzzle set.
type History struct {
	Entries []HistoryEntry
	Best    *HistoryEntry
}

// faster orders entries by duration, then by misses.
func faster(a, b HistoryEntry) bool {
	if a.DurationMs != b.DurationMs {
		return a.DurationMs < b.DurationMs
	}
	return a.Misses < b.Misses
}

func newHistory(entries []HistoryEntry) History {
	sort.SliceStable(entries, func(i, j int) bool {
		return faster(entries[i], entries[j])
	})
	h := History{Entries: entries}
	if len(entries) > 0 {
		h.Best = &entries[0]
	}
	return h
}

// TopN returns the n fastest sessions.
func (h History) TopN(n int) []HistoryEntry {
	if len(h.Entries) < n {
		n = len(h.Entries)
	}
	out := make([]HistoryEntry, n)
	copy(out, h.Entries[:n])
	return out
}

// IsBest reports whether e beats or ties every earlier session.
func (h History) IsBest(e HistoryEntry) bool {
	if h.Best == nil {
		return true
	}
	return !faster(*h.Best, e)
}
