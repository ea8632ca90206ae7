package state

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go-unscramble/internal/puzzle"

	"github.com/looplab/fsm"
)

// Machine states.
const (
	NotStarted = "notStarted"
	Filling    = "filling"
	Evaluating = "evaluating"
	Advancing  = "advancing"
	Retrying   = "retrying"
	Finished   = "finished"
	Closed     = "closed"
)

// Feedback is the result shown after a round resolves.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackRetry
)

func (f Feedback) String() string {
	switch f {
	case FeedbackCorrect:
		return "Correct!"
	case FeedbackRetry:
		return "Try Again!"
	}
	return ""
}

// Continuation names the delayed step that follows a resolved round.
type Continuation int

const (
	ContinueAdvance Continuation = iota + 1
	ContinueReset
)

func (c Continuation) String() string {
	switch c {
	case ContinueAdvance:
		return "advance"
	case ContinueReset:
		return "reset"
	}
	return "none"
}

type Options struct {
	Rand *rand.Rand       // deck shuffle source; nil uses math/rand
	Now  func() time.Time // clock for session timestamps; nil uses time.Now

	// Schedule is called once per resolved round (except the last) with
	// the step that should run after the pacing delay.
	Schedule func(Continuation)
	// OnFinish is called when the final puzzle is solved.
	OnFinish func(SessionState)
}

type SessionState struct {
	Started    bool
	Completed  bool
	Index      int // position in the deck
	Score      int
	Misses     int // failed rounds
	Feedback   Feedback
	StartedAt  time.Time
	FinishedAt time.Time
}

type State struct {
	Session SessionState
	Round   RoundState
	Puzzles []puzzle.Puzzle // fixed set the deck is drawn from
	Deck    []puzzle.Puzzle // shuffled once per session
	FSM     *fsm.FSM
	Options Options
}

var errNoPuzzles = errors.New("no puzzles to play")

func NewState(puzzles []puzzle.Puzzle, opts Options) *State {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &State{
		Puzzles: puzzles,
		Options: opts,
	}

	s.FSM = fsm.NewFSM(
		NotStarted,
		getStateTransitions(),
		getStateCallbacks(s),
	)

	return s
}

// Start shuffles the deck and enters the first round.
func (s *State) Start(ctx context.Context) {
	_ = s.FSM.Event(ctx, "start")
}

// PlaceLetter drops letter into slot. The tray is not consumed, so a letter
// may be placed in several slots. Once every slot holds a letter the round is
// evaluated before PlaceLetter returns.
func (s *State) PlaceLetter(ctx context.Context, letter rune, slot int) {
	if !s.FSM.Is(Filling) || letter == Empty {
		return
	}
	if slot < 0 || slot >= len(s.Round.Slots) {
		return
	}

	s.Round.Slots[slot] = letter
	if s.Round.Full() {
		_ = s.FSM.Event(ctx, "fill")
	}
}

// AdvanceRound moves to the next puzzle after a correct answer.
func (s *State) AdvanceRound(ctx context.Context) {
	_ = s.FSM.Event(ctx, "advance")
}

// ResetSlots empties the slots after a wrong answer.
func (s *State) ResetSlots(ctx context.Context) {
	_ = s.FSM.Event(ctx, "reset")
}

// Teardown ends the session from any state.
func (s *State) Teardown(ctx context.Context) {
	_ = s.FSM.Event(ctx, "teardown")
}

// Current returns the puzzle being played, or false before the session starts.
func (s *State) Current() (puzzle.Puzzle, bool) {
	if !s.Session.Started || s.Session.Index >= len(s.Deck) {
		return puzzle.Puzzle{}, false
	}
	return s.Deck[s.Session.Index], true
}

func (s *State) deriveRound() {
	p, _ := s.Current()
	s.Round = NewRound(p)
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "start", Src: []string{NotStarted}, Dst: Filling},
		{Name: "fill", Src: []string{Filling}, Dst: Evaluating},

		// Round resolution
		{Name: "solve", Src: []string{Evaluating}, Dst: Advancing},
		{Name: "miss", Src: []string{Evaluating}, Dst: Retrying},
		{Name: "complete", Src: []string{Evaluating}, Dst: Finished},

		// Delayed continuations
		{Name: "advance", Src: []string{Advancing}, Dst: Filling},
		{Name: "reset", Src: []string{Retrying}, Dst: Filling},

		{Name: "teardown", Src: []string{NotStarted, Filling, Evaluating, Advancing, Retrying, Finished}, Dst: Closed},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"before_start": func(ctx context.Context, e *fsm.Event) {
			if len(s.Puzzles) == 0 {
				e.Cancel(errNoPuzzles)
				return
			}
			s.Deck = puzzle.NewDeck(s.Puzzles, s.Options.Rand)
			s.Session.Started = true
			s.Session.StartedAt = s.Options.Now()
			s.deriveRound()
		},
		"enter_evaluating": func(ctx context.Context, e *fsm.Event) {
			p, _ := s.Current()

			if s.Round.Candidate() != p.Word {
				s.Session.Feedback = FeedbackRetry
				s.Session.Misses++
				e.FSM.Event(ctx, "miss")
				return
			}

			s.Session.Feedback = FeedbackCorrect
			s.Session.Score++
			if s.Session.Score >= len(s.Deck) {
				e.FSM.Event(ctx, "complete")
				return
			}
			e.FSM.Event(ctx, "solve")
		},
		"enter_advancing": func(ctx context.Context, e *fsm.Event) {
			if s.Options.Schedule != nil {
				s.Options.Schedule(ContinueAdvance)
			}
		},
		"enter_retrying": func(ctx context.Context, e *fsm.Event) {
			if s.Options.Schedule != nil {
				s.Options.Schedule(ContinueReset)
			}
		},
		"before_advance": func(ctx context.Context, e *fsm.Event) {
			s.Session.Feedback = FeedbackNone
			s.Session.Index++
			s.deriveRound()
		},
		"before_reset": func(ctx context.Context, e *fsm.Event) {
			s.Session.Feedback = FeedbackNone
			s.Round.Clear()
		},
		"enter_finished": func(ctx context.Context, e *fsm.Event) {
			s.Session.Completed = true
			s.Session.FinishedAt = s.Options.Now()
			if s.Options.OnFinish != nil {
				s.Options.OnFinish(s.Session)
			}
		},
	}
}
