package game

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"go-unscramble/internal/puzzle"
	"go-unscramble/internal/scoring"
	"go-unscramble/internal/state"

	"github.com/rs/zerolog/log"
)

// DefaultDelay is the pause between a resolved round and what follows it.
const DefaultDelay = time.Second

var ErrNoPuzzles = errors.New("no puzzles to play")

type Options struct {
	Delay     time.Duration // <= 0 uses DefaultDelay
	Scheduler Scheduler     // nil uses TimerScheduler
	Rand      *rand.Rand
	Now       func() time.Time
	Tracker   *scoring.Tracker // optional session history
}

// Summary describes a finished session.
type Summary struct {
	Entry    scoring.HistoryEntry
	Best     bool // fastest session so far with this puzzle set
	Previous int  // sessions recorded before this one
	Top      []scoring.HistoryEntry // fastest earlier sessions
}

// Controller owns one game session. It is safe for concurrent use; scheduled
// continuations may fire on any goroutine.
type Controller struct {
	mu        sync.Mutex
	state     *state.State
	delay     time.Duration
	scheduler Scheduler
	tracker   *scoring.Tracker

	// the one outstanding continuation, if any
	pending state.Continuation
	cancel  func()
	seq     uint64

	summary *Summary
}

func NewController(puzzles []puzzle.Puzzle, opts Options) (*Controller, error) {
	if len(puzzles) == 0 {
		return nil, ErrNoPuzzles
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	if opts.Scheduler == nil {
		opts.Scheduler = TimerScheduler{}
	}

	c := &Controller{
		delay:     opts.Delay,
		scheduler: opts.Scheduler,
		tracker:   opts.Tracker,
	}
	c.state = state.NewState(puzzles, state.Options{
		Rand:     opts.Rand,
		Now:      opts.Now,
		Schedule: c.schedule,
		OnFinish: c.finish,
	})
	return c, nil
}

// StartSession shuffles the deck and begins the first round. Ignored once a
// session has started.
func (c *Controller) StartSession() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Start(context.Background())
	log.Debug().Str("phase", c.state.FSM.Current()).Int("puzzles", len(c.state.Deck)).Msg("start session")
}

// PlaceLetter drops letter into slot. Ignored outside the filling phase or
// for a slot that does not exist.
func (c *Controller) PlaceLetter(letter rune, slot int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.PlaceLetter(context.Background(), letter, slot)
}

// Close ends the session and cancels a pending continuation. Every call after
// Close is a no-op.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelPending()
	c.state.Teardown(context.Background())
}

func (c *Controller) Snapshot() state.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.Snapshot()
}

// Pending reports the continuation waiting on the delay, if any.
func (c *Controller) Pending() state.Continuation {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.pending
}

// Summary is available once the session is completed and history is enabled.
func (c *Controller) Summary() (Summary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.summary == nil {
		return Summary{}, false
	}
	return *c.summary, true
}

// schedule runs with c.mu held, from inside a state transition.
func (c *Controller) schedule(next state.Continuation) {
	c.cancelPending()

	c.seq++
	seq := c.seq
	c.pending = next
	c.cancel = c.scheduler.Schedule(c.delay, func() { c.resume(seq) })
	log.Debug().Stringer("next", next).Dur("delay", c.delay).Msg("round resolved")
}

func (c *Controller) cancelPending() {
	if c.cancel != nil {
		c.cancel()
	}
	c.cancel = nil
	c.pending = 0
	c.seq++
}

func (c *Controller) resume(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq || c.pending == 0 {
		return
	}
	next := c.pending
	c.pending = 0
	c.cancel = nil

	switch next {
	case state.ContinueAdvance:
		c.state.AdvanceRound(context.Background())
	case state.ContinueReset:
		c.state.ResetSlots(context.Background())
	}
}

// finish runs with c.mu held when the last puzzle is solved.
func (c *Controller) finish(s state.SessionState) {
	log.Info().Int("score", s.Score).Int("misses", s.Misses).
		Dur("elapsed", s.FinishedAt.Sub(s.StartedAt)).Msg("session completed")

	if c.tracker == nil {
		return
	}
	entry := c.tracker.NewEntry(s.Score, s.Misses, s.StartedAt, s.FinishedAt)
	c.summary = &Summary{
		Entry:    entry,
		Best:     c.tracker.History().IsBest(entry),
		Previous: c.tracker.Attempts(),
		Top:      c.tracker.History().TopN(5),
	}
	if err := c.tracker.Record(entry); err != nil {
		log.Warn().Err(err).Str("session", entry.ID).Msg("save session history")
	}
}
