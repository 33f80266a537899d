// ABOUTME: Interactive terminal player
// ABOUTME: Wires a player into the Bubbletea transport UI
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MojaveHao/blophy-audio-go/internal/tui"
	"github.com/MojaveHao/blophy-audio-go/pkg/player"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s <audio-file>\n", os.Args[0])
		os.Exit(2)
	}
	path := flag.Arg(0)

	// The TUI owns the terminal; keep log output out of it.
	logFile, err := os.OpenFile("blophy-tui.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err == nil {
		log.SetOutput(logFile)
		defer logFile.Close()
	}

	p := player.New(player.Config{})
	defer p.Close()

	if err := p.SetClip(path); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", path, err)
		os.Exit(1)
	}

	prog := tea.NewProgram(tui.New(p, path))
	if _, err := prog.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running UI: %v\n", err)
		os.Exit(1)
	}
}
