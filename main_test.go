package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-unscramble/internal/puzzle"

	"github.com/rs/zerolog/log"
)

func TestLoadPuzzles_Defaults(t *testing.T) {
	puzzles, err := loadPuzzles(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(puzzles) != 6 {
		t.Errorf("Expected the 6 built-in puzzles, got %d", len(puzzles))
	}
}

func TestLoadPuzzles_EmptyDir(t *testing.T) {
	_, err := loadPuzzles([]string{t.TempDir()})
	if err == nil || !strings.Contains(err.Error(), "no puzzles") {
		t.Errorf("Expected no puzzles error, got %v", err)
	}
}

func TestOpenHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	tracker, storage, err := openHistory(path, puzzle.Defaults())
	if err != nil {
		t.Fatalf("openHistory failed: %v", err)
	}
	if tracker.Attempts() != 0 {
		t.Errorf("Expected empty history, got %d attempts", tracker.Attempts())
	}

	c, ok := storage.(io.Closer)
	if !ok {
		t.Fatalf("Expected SQLite history to be closable, got %T", storage)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if _, err := storage.LoadAll(); err == nil {
		t.Error("Expected LoadAll to fail on a closed database")
	}
}

func TestOpenHistory_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	_, storage, err := openHistory(path, puzzle.Defaults())
	if err != nil {
		t.Fatalf("openHistory failed: %v", err)
	}
	if _, ok := storage.(io.Closer); ok {
		t.Errorf("JSON history holds no handle, got closable %T", storage)
	}
}

func TestSetupLogging(t *testing.T) {
	if _, err := setupLogging("", "loud"); err == nil {
		t.Error("Expected error for unknown level")
	}

	path := filepath.Join(t.TempDir(), "game.log")
	closeLog, err := setupLogging(path, "debug")
	if err != nil {
		t.Fatal(err)
	}
	log.Debug().Msg("hello")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"message":"hello"`) {
		t.Errorf("Log line missing: %s", data)
	}
}

func TestNewCommand_Flags(t *testing.T) {
	cmd := newCommand()
	names := map[string]bool{}
	for _, f := range cmd.Flags {
		for _, n := range f.Names() {
			names[n] = true
		}
	}
	for _, want := range []string{"delay", "d", "puzzles", "history", "no-history", "mouse", "log-file", "log-level"} {
		if !names[want] {
			t.Errorf("Missing flag %q", want)
		}
	}
}
