package state

import (
	"slices"

	"go-unscramble/internal/puzzle"
)

// Empty marks a slot with no letter in it.
const Empty rune = 0

// RoundState is the per-puzzle board: the letters the player drags from and
// the slots they drop into.
type RoundState struct {
	Tray  []rune
	Slots []rune
}

// NewRound derives a fresh board for p: the tray holds its jumbled letters
// and there is one empty slot per letter of the word.
func NewRound(p puzzle.Puzzle) RoundState {
	return RoundState{
		Tray:  p.Letters(),
		Slots: make([]rune, p.Len()),
	}
}

func (r RoundState) Full() bool {
	return len(r.Slots) > 0 && !slices.Contains(r.Slots, Empty)
}

// Candidate joins the slots into the word being tried.
func (r RoundState) Candidate() string {
	return string(r.Slots)
}

// Clear empties every slot and leaves the tray alone.
func (r *RoundState) Clear() {
	clear(r.Slots)
}
