package ui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type fireMsg struct{ id int }

// Scheduler turns scheduled continuations into tea.Tick commands, so they run
// on the program's event loop instead of a timer goroutine.
type Scheduler struct {
	mu     sync.Mutex
	nextID int
	tasks  map[int]func()
	queued []tea.Cmd
}

func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make(map[int]func())}
}

func (s *Scheduler) Schedule(d time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.tasks[id] = fn
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return fireMsg{id: id}
	}))

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.tasks, id)
	}
}

// Flush hands the ticks scheduled since the last call to bubbletea.
func (s *Scheduler) Flush() tea.Cmd {
	s.mu.Lock()
	cmds := s.queued
	s.queued = nil
	s.mu.Unlock()

	return tea.Batch(cmds...)
}

// Fire runs task id unless it was cancelled.
func (s *Scheduler) Fire(id int) {
	s.mu.Lock()
	fn, ok := s.tasks[id]
	delete(s.tasks, id)
	s.mu.Unlock()

	if ok {
		fn()
	}
}
