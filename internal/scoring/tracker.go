package scoring

import (
	"crypto/sha256"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Tracker keeps the session history for one puzzle set.
type Tracker struct {
	storage Storage
	history History
	hash    string
}

// InitTracker loads the history recorded for the given puzzle words.
func InitTracker(words []string, storage Storage) (*Tracker, error) {
	t := &Tracker{
		storage: storage,
		hash:    calculateHash(words),
	}

	allEntries, err := t.storage.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("could not load session history: %w", err)
	}

	var filtered []HistoryEntry
	for _, entry := range allEntries {
		if entry.Hash == t.hash {
			filtered = append(filtered, entry)
		}
	}
	t.history = newHistory(filtered)

	return t, nil
}

// NewEntry builds the record for a session played between start and end.
func (t *Tracker) NewEntry(puzzles, misses int, start, end time.Time) HistoryEntry {
	return HistoryEntry{
		ID:         uuid.NewString(),
		Hash:       t.hash,
		Puzzles:    puzzles,
		Misses:     misses,
		DurationMs: end.Sub(start).Milliseconds(),
		Timestamp:  end.Format(time.RFC3339),
	}
}

// Record persists entry. The in-memory history keeps describing the sessions
// played before this one, so IsBest and Attempts still compare against them.
func (t *Tracker) Record(entry HistoryEntry) error {
	allEntries, err := t.storage.LoadAll()
	if err != nil {
		return fmt.Errorf("could not load history for saving: %w", err)
	}

	updated := make([]HistoryEntry, 0, len(allEntries)+1)
	for _, e := range allEntries {
		if e.ID != entry.ID {
			updated = append(updated, e)
		}
	}
	updated = append(updated, entry)

	return t.storage.SaveAll(updated)
}

func (t *Tracker) History() History {
	return t.history
}

// Attempts is the number of earlier sessions with this puzzle set.
func (t *Tracker) Attempts() int {
	return len(t.history.Entries)
}

// calculateHash identifies a puzzle set independent of its order.
func calculateHash(words []string) string {
	sorted := slices.Clone(words)
	slices.Sort(sorted)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(strings.Join(sorted, "\n"))))
}
