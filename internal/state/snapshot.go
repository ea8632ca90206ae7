package state

import "slices"

// Placeholder is drawn for an empty slot.
const Placeholder = "_"

// Background selects the backdrop: the looping video on the welcome screen,
// the still image once play has started.
type Background int

const (
	BackgroundVideo Background = iota
	BackgroundImage
)

// Snapshot is everything a view needs to draw the game. It shares no memory
// with the State it was taken from.
type Snapshot struct {
	Phase      string
	Background Background
	Started    bool
	Completed  bool
	Image      string
	Tray       []rune
	Slots      []rune
	Feedback   Feedback
	Score      int
	Total      int
	Round      int // 1-based
	Misses     int
}

func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:     s.FSM.Current(),
		Started:   s.Session.Started,
		Completed: s.Session.Completed,
		Feedback:  s.Session.Feedback,
		Score:     s.Session.Score,
		Total:     len(s.Puzzles),
		Misses:    s.Session.Misses,
	}
	if !snap.Started {
		return snap
	}

	snap.Background = BackgroundImage
	snap.Total = len(s.Deck)
	snap.Round = s.Session.Index + 1
	if p, ok := s.Current(); ok {
		snap.Image = p.Image
	}
	snap.Tray = slices.Clone(s.Round.Tray)
	snap.Slots = slices.Clone(s.Round.Slots)
	return snap
}

// SlotText renders slot i, using Placeholder when it is empty.
func (s Snapshot) SlotText(i int) string {
	if i < 0 || i >= len(s.Slots) || s.Slots[i] == Empty {
		return Placeholder
	}
	return string(s.Slots[i])
}

// AcceptsDrops reports whether a drop would be applied right now.
func (s Snapshot) AcceptsDrops() bool {
	return s.Phase == Filling
}
