package ui

import (
	"go-unscramble/internal/game"
	"go-unscramble/internal/state"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

type focusArea int

const (
	focusTray focusArea = iota
	focusSlots
)

// Model is the bubbletea program state. Game state lives in the controller;
// the model only keeps cursors and the letter being dragged.
type Model struct {
	ctrl  *game.Controller
	sched *Scheduler
	keys  keyMap
	help  help.Model
	mouse bool

	focus      focusArea
	trayCursor int
	slotCursor int
	held       rune // letter being dragged, state.Empty when none
	round      int

	layout layout
}

func New(ctrl *game.Controller, sched *Scheduler, mouse bool) *Model {
	return &Model{
		ctrl:  ctrl,
		sched: sched,
		keys:  defaultKeys(),
		help:  help.New(),
		mouse: mouse,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fireMsg:
		m.sched.Fire(msg.id)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.MouseMsg:
		if m.mouse {
			m.handleMouse(msg)
		}
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.ctrl.Close()
			return m, tea.Quit
		}
		if cmd := m.handleKey(msg); cmd != nil {
			return m, cmd
		}
	}

	m.sync()
	return m, m.sched.Flush()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}

	snap := m.ctrl.Snapshot()
	switch {
	case !snap.Started:
		if key.Matches(msg, m.keys.Select) {
			m.ctrl.StartSession()
		}
		return nil
	case snap.Completed:
		if key.Matches(msg, m.keys.Select) {
			m.ctrl.Close()
			return tea.Quit
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.move(-1, snap)
	case key.Matches(msg, m.keys.Right):
		m.move(1, snap)
	case key.Matches(msg, m.keys.Switch):
		if m.focus == focusTray {
			m.focus = focusSlots
		} else {
			m.focus = focusTray
		}
	case key.Matches(msg, m.keys.Cancel):
		m.held = state.Empty
		m.focus = focusTray
	case key.Matches(msg, m.keys.Select):
		if m.focus == focusTray {
			m.pickUp(m.trayCursor, snap)
		} else {
			m.drop(m.slotCursor, snap)
		}
	case key.Matches(msg, m.keys.Slot):
		if m.held == state.Empty {
			m.pickUp(m.trayCursor, snap)
		}
		m.drop(int(msg.Runes[0]-'1'), snap)
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	snap := m.ctrl.Snapshot()
	if !snap.Started || snap.Completed {
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if i, ok := m.layout.hit(m.layout.trayRow, msg.X, msg.Y, len(snap.Tray)); ok {
			m.trayCursor = i
			m.pickUp(i, snap)
		}
	case tea.MouseActionRelease:
		if m.held == state.Empty {
			return
		}
		if i, ok := m.layout.hit(m.layout.slotRow, msg.X, msg.Y, len(snap.Slots)); ok {
			m.drop(i, snap)
			return
		}
		m.held = state.Empty
		m.focus = focusTray
	}
}

// pickUp starts dragging tray letter i.
func (m *Model) pickUp(i int, snap state.Snapshot) {
	if i < 0 || i >= len(snap.Tray) || !snap.AcceptsDrops() {
		return
	}
	m.held = snap.Tray[i]
	m.focus = focusSlots
}

// drop places the dragged letter on slot i.
func (m *Model) drop(i int, snap state.Snapshot) {
	if m.held == state.Empty || i < 0 || i >= len(snap.Slots) {
		return
	}
	log.Debug().Str("letter", string(m.held)).Int("slot", i).Msg("drop")
	m.ctrl.PlaceLetter(m.held, i)
	m.held = state.Empty
	m.focus = focusTray
	m.slotCursor = nextEmpty(m.ctrl.Snapshot().Slots, i)
}

func (m *Model) move(delta int, snap state.Snapshot) {
	if m.focus == focusTray {
		m.trayCursor = wrap(m.trayCursor+delta, len(snap.Tray))
	} else {
		m.slotCursor = wrap(m.slotCursor+delta, len(snap.Slots))
	}
}

// sync resets the cursors when a new round begins.
func (m *Model) sync() {
	snap := m.ctrl.Snapshot()
	if snap.Round == m.round {
		return
	}
	m.round = snap.Round
	m.trayCursor = 0
	m.slotCursor = 0
	m.held = state.Empty
	m.focus = focusTray
}

// nextEmpty finds the first empty slot after from, wrapping around. It
// returns from when every slot is full.
func nextEmpty(slots []rune, from int) int {
	for k := 1; k <= len(slots); k++ {
		i := (from + k) % len(slots)
		if slots[i] == state.Empty {
			return i
		}
	}
	return from
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}
