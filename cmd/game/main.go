package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/muesli/cancelreader"
	"golang.org/x/term"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/loop"
)

func main() {
	logger, closeLog, err := gameLogger()
	if err != nil {
		log.Fatal("failed to open log", "err", err)
	}

	err = run(logger)
	closeLog()
	if err != nil {
		log.Fatal("game error", "err", err)
	}
}

func run(logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := loop.Options{Logger: logger}
	switch backend := config.GetEnv("GAME_BACKEND", "ansi"); backend {
	case "ansi":
		return runANSI(ctx, opts)
	case "tcell":
		return runTcell(ctx, opts)
	default:
		return fmt.Errorf("unknown GAME_BACKEND %q (want ansi or tcell)", backend)
	}
}

// runANSI plays on stdin/stdout in raw mode. Stdin is wrapped in a
// cancelreader so the input goroutine is released when the game ends.
func runANSI(ctx context.Context, opts loop.Options) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader, err := cancelreader.NewReader(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to wrap stdin: %w", err)
	}
	defer reader.Close()
	defer reader.Cancel()

	return loop.Run(ctx, reader, os.Stdout, opts)
}

func runTcell(ctx context.Context, opts loop.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	return loop.RunTcell(ctx, screen, opts)
}

// gameLogger logs to the file named by GAME_LOG. Without it logs are
// discarded, since stdout is the game screen.
func gameLogger() (*log.Logger, func(), error) {
	path := config.GetEnv("GAME_LOG", "")
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return config.NewLogger(f, "game"), func() { _ = f.Close() }, nil
}
