package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go-unscramble/internal/game"
	"go-unscramble/internal/puzzle"
	"go-unscramble/internal/scoring"
	"go-unscramble/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "go-unscramble",
		Usage:     "Drag the jumbled letters into place to name the animal",
		ArgsUsage: "[puzzle files or directories...]",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:    "delay",
				Aliases: []string{"d"},
				Value:   game.DefaultDelay,
				Usage:   "pause after each answer before the board changes",
				Sources: cli.EnvVars("UNSCRAMBLE_DELAY"),
			},
			&cli.StringSliceFlag{
				Name:    "puzzles",
				Aliases: []string{"p"},
				Usage:   "puzzle file or directory (repeatable); defaults to the built-in animals",
				Sources: cli.EnvVars("UNSCRAMBLE_PUZZLES"),
			},
			&cli.StringFlag{
				Name:    "history",
				Usage:   "session history file (.db/.sqlite for SQLite, otherwise JSON lines)",
				Sources: cli.EnvVars("UNSCRAMBLE_HISTORY"),
			},
			&cli.BoolFlag{
				Name:  "no-history",
				Usage: "do not load or record session history",
			},
			&cli.BoolFlag{
				Name:    "mouse",
				Aliases: []string{"m"},
				Value:   true,
				Usage:   "drag letters with the mouse",
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "write logs to this file",
				Sources: cli.EnvVars("UNSCRAMBLE_LOG_FILE"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: run,
	}
}

func main() {
	_ = godotenv.Load()

	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	closeLog, err := setupLogging(cmd.String("log-file"), cmd.String("log-level"))
	if err != nil {
		return err
	}
	defer closeLog()

	paths := append(cmd.StringSlice("puzzles"), cmd.Args().Slice()...)
	puzzles, err := loadPuzzles(paths)
	if err != nil {
		return err
	}

	var tracker *scoring.Tracker
	if !cmd.Bool("no-history") {
		var storage scoring.Storage
		tracker, storage, err = openHistory(cmd.String("history"), puzzles)
		if err != nil {
			return err
		}
		if c, ok := storage.(io.Closer); ok {
			defer c.Close()
		}
	}

	sched := ui.NewScheduler()
	ctrl, err := game.NewController(puzzles, game.Options{
		Delay:     cmd.Duration("delay"),
		Scheduler: sched,
		Tracker:   tracker,
	})
	if err != nil {
		return err
	}
	defer ctrl.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	mouse := cmd.Bool("mouse")
	if mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	log.Info().Int("puzzles", len(puzzles)).Dur("delay", cmd.Duration("delay")).Msg("starting")
	if _, err := tea.NewProgram(ui.New(ctrl, sched, mouse), opts...).Run(); err != nil {
		return fmt.Errorf("error running the program: %w", err)
	}
	return nil
}

func loadPuzzles(paths []string) ([]puzzle.Puzzle, error) {
	if len(paths) == 0 {
		return puzzle.Defaults(), nil
	}
	puzzles, err := puzzle.Load(paths)
	if err != nil {
		return nil, err
	}
	if len(puzzles) == 0 {
		return nil, fmt.Errorf("no puzzles found in provided paths")
	}
	return puzzles, nil
}

// openHistory returns the tracker and the storage backing it. The caller
// closes the storage when it is an io.Closer.
func openHistory(path string, puzzles []puzzle.Puzzle) (*scoring.Tracker, scoring.Storage, error) {
	if path == "" {
		var err error
		if path, err = scoring.DefaultPath(); err != nil {
			return nil, nil, err
		}
	}
	storage, err := scoring.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open history: %w", err)
	}

	words := make([]string, len(puzzles))
	for i, p := range puzzles {
		words[i] = p.Word
	}
	tracker, err := scoring.InitTracker(words, storage)
	if err != nil {
		if c, ok := storage.(io.Closer); ok {
			c.Close()
		}
		return nil, nil, err
	}
	return tracker, storage, nil
}

// setupLogging points the global logger at path. The terminal belongs to the
// game, so without a path logs are dropped.
func setupLogging(path, level string) (func(), error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)

	if path == "" {
		log.Logger = zerolog.New(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() {
		log.Info().Msg("exiting")
		f.Close()
	}, nil
}
