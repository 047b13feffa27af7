package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/desktop"
	"github.com/tomz197/invaders/internal/loop"
	gameconfig "github.com/tomz197/invaders/internal/loop/config"
)

func main() {
	logger := config.NewLogger(os.Stderr, "desktop")

	ebiten.SetWindowSize(gameconfig.FieldWidth, gameconfig.FieldHeight)
	ebiten.SetWindowTitle("Invaders")
	ebiten.SetTPS(gameconfig.TargetFPS)

	host := desktop.NewHost(loop.Options{Logger: logger})
	if err := ebiten.RunGame(host); err != nil {
		logger.Fatal("game error", "err", err)
	}
}
