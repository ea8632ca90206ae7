package ui

import (
	"strings"
	"testing"
	"time"

	"go-unscramble/internal/game"
	"go-unscramble/internal/scoring"
	"go-unscramble/internal/state"

	"github.com/charmbracelet/lipgloss"
)

func TestRender_Playing(t *testing.T) {
	snap := state.Snapshot{
		Phase:      state.Filling,
		Background: state.BackgroundImage,
		Started:    true,
		Image:      "zebra.png",
		Tray:       []rune("abezr"),
		Slots:      []rune{'z', 0, 0, 0, 0},
		Score:      3,
		Total:      6,
		Round:      4,
	}

	out, l := render(snap, viewState{})

	for _, want := range []string{"What is this animal?", "4/6", "[a] [b] [e] [z] [r]", "[z] [_] [_]", "Score: 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
	if l.trayRow <= 0 || l.slotRow <= l.trayRow {
		t.Errorf("Unexpected layout %+v", l)
	}

	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[l.trayRow], "[a]") {
		t.Errorf("Tray row %d does not hold the tray: %q", l.trayRow, lines[l.trayRow])
	}
	if !strings.Contains(lines[l.slotRow], "[z]") {
		t.Errorf("Slot row %d does not hold the slots: %q", l.slotRow, lines[l.slotRow])
	}
	if col := lipgloss.Width(lines[l.trayRow][:strings.Index(lines[l.trayRow], "[a]")]); col != l.left {
		t.Errorf("Tray should start at column %d: %q", l.left, lines[l.trayRow])
	}
}

func TestRender_Welcome(t *testing.T) {
	out, l := render(state.Snapshot{Phase: state.NotStarted, Total: 6}, viewState{})
	if !strings.Contains(out, "Start Game") {
		t.Error("Expected a start button")
	}
	if l.trayRow != 0 || l.slotRow != 0 {
		t.Error("No letter rows on the welcome screen")
	}
}

func TestRender_BackgroundSelectsScreen(t *testing.T) {
	snap := state.Snapshot{
		Started: true,
		Image:   "dog.png",
		Tray:    []rune("gdo"),
		Slots:   make([]rune, 3),
		Total:   6,
	}

	out, _ := render(snap, viewState{})
	if !strings.Contains(out, "Start Game") {
		t.Error("Video background should show the welcome screen")
	}

	snap.Background = state.BackgroundImage
	out, l := render(snap, viewState{})
	if strings.Contains(out, "Start Game") {
		t.Error("Image background should show the board")
	}
	if l.trayRow == 0 || l.slotRow == 0 {
		t.Error("Expected letter rows on the board")
	}
}

func TestRender_Completed(t *testing.T) {
	sum := &game.Summary{
		Entry:    scoring.HistoryEntry{DurationMs: (42 * time.Second).Milliseconds()},
		Best:     true,
		Previous: 2,
		Top: []scoring.HistoryEntry{
			{DurationMs: (50 * time.Second).Milliseconds(), Misses: 2, Timestamp: "2024-05-01T12:00:00Z"},
			{DurationMs: (75 * time.Second).Milliseconds(), Misses: 0, Timestamp: "2024-04-30T09:30:00Z"},
		},
	}
	snap := state.Snapshot{Background: state.BackgroundImage, Started: true, Completed: true, Score: 6, Total: 6, Misses: 1}

	out, _ := render(snap, viewState{summary: sum})
	for _, want := range []string{
		"Congratulations! You Won!", "Score: 6/6", "Misses: 1", "42s", "New best time!",
		"Fastest previous sessions:",
		"50s on 2024-05-01T12:00:00Z (2 misses)",
		"1m15s on 2024-04-30T09:30:00Z (0 misses)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestLayout_Hit(t *testing.T) {
	l := layout{trayRow: 5, slotRow: 8, left: 3}

	tests := []struct {
		x, y int
		idx  int
		ok   bool
	}{
		{3, 5, 0, true},
		{5, 5, 0, true},
		{6, 5, 0, false}, // gap
		{7, 5, 1, true},
		{2, 5, 0, false},
		{3, 6, 0, false},
		{3 + 4*3, 5, 0, false}, // past the last cell
	}
	for _, tt := range tests {
		idx, ok := l.hit(l.trayRow, tt.x, tt.y, 3)
		if ok != tt.ok || (ok && idx != tt.idx) {
			t.Errorf("hit(%d,%d) = %d,%v expected %d,%v", tt.x, tt.y, idx, ok, tt.idx, tt.ok)
		}
	}
}

func TestImageArt(t *testing.T) {
	if !strings.Contains(imageArt("cat.png"), "o.o") {
		t.Error("Expected the cat drawing")
	}
	if got := imageArt("assets/owl.png"); got != "[ image: owl ]" {
		t.Errorf("Unexpected fallback %q", got)
	}
}
