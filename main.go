package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	stopProfile, err := startProfiles(*cpuProfileFlag, *memProfileFlag)
	if err != nil {
		log.Fatalf("Failed to start CPU profile: %v", err)
	}

	g, err := newGame()
	if err != nil {
		stopProfile()
		log.Fatalf("Field setup failed: %v", err)
	}

	ebiten.SetWindowSize(defaultWindowW, defaultWindowH)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err = ebiten.RunGame(g)
	g.Close()
	stopProfile()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
