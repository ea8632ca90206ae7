package ui

import (
	"fmt"
	"strings"
	"time"

	"go-unscramble/internal/game"
	"go-unscramble/internal/state"

	"github.com/charmbracelet/lipgloss"
)

var (
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // wrong answer
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // right answer
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	boldStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	filledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	videoFrame = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 2)
	imageFrame = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
)

// Content starts inside the frame: one border row, one border column plus
// two columns of padding.
const (
	frameTop  = 1
	frameLeft = 3
	cellWidth = 4 // "[x]" plus a separating space
)

// layout records where the letter rows were drawn, for mouse hit testing.
type layout struct {
	trayRow int
	slotRow int
	left    int
}

func (l layout) hit(row, x, y, n int) (int, bool) {
	if row <= 0 || y != row || x < l.left {
		return 0, false
	}
	off := x - l.left
	if off%cellWidth == cellWidth-1 {
		return 0, false
	}
	i := off / cellWidth
	return i, i < n
}

// viewState is the UI-only part of what gets drawn.
type viewState struct {
	focus      focusArea
	trayCursor int
	slotCursor int
	held       rune
	summary    *game.Summary
	help       string
}

func (m *Model) View() string {
	v := viewState{
		focus:      m.focus,
		trayCursor: m.trayCursor,
		slotCursor: m.slotCursor,
		held:       m.held,
		help:       m.help.View(m.keys),
	}
	if sum, ok := m.ctrl.Summary(); ok {
		v.summary = &sum
	}

	out, l := render(m.ctrl.Snapshot(), v)
	m.layout = l
	return out
}

// render draws snap. It has no side effects.
func render(snap state.Snapshot, v viewState) (string, layout) {
	var lines []string
	add := func(s string) int {
		row := len(lines)
		lines = append(lines, strings.Split(s, "\n")...)
		return row
	}
	l := layout{left: frameLeft}

	switch {
	case snap.Background == state.BackgroundVideo:
		add(boldStyle.Render("Welcome to the Game"))
		add("")
		for _, f := range videoFrames {
			add(dimStyle.Render(f))
		}
		add("")
		add(cursorStyle.Render(" Start Game "))
		add("")
		add(v.help)
		return videoFrame.Render(strings.Join(lines, "\n")), l

	case snap.Completed:
		add(greenStyle.Render("Congratulations! You Won!"))
		add("")
		add(scoreStyle.Render(fmt.Sprintf("Score: %d/%d | Misses: %d", snap.Score, snap.Total, snap.Misses)))
		if s := v.summary; s != nil {
			add(fmt.Sprintf("Time: %s", s.Entry.Duration().Round(100*time.Millisecond)))
			if s.Best && s.Previous > 0 {
				add(greenStyle.Render("New best time!"))
			}
			add(dimStyle.Render(fmt.Sprintf("Sessions played before: %d", s.Previous)))
			if len(s.Top) > 0 {
				add("Fastest previous sessions:")
				for _, e := range s.Top {
					add(fmt.Sprintf("  * %s on %s (%d misses)", e.Duration().Round(100*time.Millisecond), e.Timestamp, e.Misses))
				}
			}
		}
		add("")
		add(dimStyle.Render("Press enter to exit."))
		return imageFrame.Render(strings.Join(lines, "\n")), l
	}

	add(boldStyle.Render("What is this animal?") + dimStyle.Render(fmt.Sprintf("   %d/%d", snap.Round, snap.Total)))
	add("")
	add(imageArt(snap.Image))
	add("")

	add(dimStyle.Render("Letters"))
	l.trayRow = frameTop + add(renderCells(snap.Tray, func(i int) string { return string(snap.Tray[i]) },
		v.focus == focusTray, v.trayCursor, nil))
	add("")
	add(dimStyle.Render("Slots"))
	l.slotRow = frameTop + add(renderCells(snap.Slots, snap.SlotText,
		v.focus == focusSlots, v.slotCursor, func(i int) bool { return snap.Slots[i] != state.Empty }))
	add("")

	if v.held != state.Empty {
		add("Dragging: " + cursorStyle.Render(string(v.held)))
	} else {
		add("")
	}
	switch snap.Feedback {
	case state.FeedbackCorrect:
		add(greenStyle.Render(snap.Feedback.String()))
	case state.FeedbackRetry:
		add(redStyle.Render(snap.Feedback.String()))
	default:
		add("")
	}
	add(scoreStyle.Render(fmt.Sprintf("Score: %d", snap.Score)))
	add("")
	add(v.help)

	return imageFrame.Render(strings.Join(lines, "\n")), l
}

func renderCells(cells []rune, text func(int) string, focused bool, cursor int, filled func(int) bool) string {
	parts := make([]string, len(cells))
	for i := range cells {
		style := lipgloss.NewStyle()
		if filled != nil && filled(i) {
			style = filledStyle
		}
		if focused && i == cursor {
			style = cursorStyle
		}
		parts[i] = style.Render("[" + text(i) + "]")
	}
	return strings.Join(parts, " ")
}
