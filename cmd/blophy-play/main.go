// ABOUTME: Headless command-line player
// ABOUTME: Loads a clip, plays it, and waits for end-of-clip or interrupt
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MojaveHao/blophy-audio-go/pkg/audio/output"
	"github.com/MojaveHao/blophy-audio-go/pkg/player"
)

func main() {
	volume := flag.Float64("volume", 1.0, "playback volume (0-1)")
	loop := flag.Bool("loop", false, "loop the clip")
	delay := flag.Float64("delay", 0, "seconds to wait before starting")
	seek := flag.Float64("seek", 0, "start position in seconds")
	backend := flag.String("backend", "oto", "output backend: oto or malgo")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <audio-file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	var device output.Device
	switch *backend {
	case "oto":
		device = output.NewOto()
	case "malgo":
		device = output.NewMalgo()
	default:
		log.Fatalf("unknown backend %q", *backend)
	}

	done := make(chan struct{})
	var once sync.Once

	p := player.New(player.Config{
		Device: device,
		OnStateChange: func(s player.State) {
			if s == player.StateStopped {
				once.Do(func() { close(done) })
			}
		},
		OnError: func(err error) {
			log.Printf("playback error: %v", err)
		},
	})
	defer p.Close()

	if err := p.SetClip(path); err != nil {
		log.Fatalf("failed to load %s: %v", path, err)
	}

	p.SetVolume(float32(*volume))
	p.SetLoop(*loop)
	if *seek > 0 {
		p.SetCurrentTime(*seek)
	}

	if *delay > 0 {
		log.Printf("starting in %.2fs", *delay)
		p.PlayWithDelay(*delay)
	} else {
		p.Play()
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.Printf("playback finished")
	case <-sig:
		log.Printf("interrupted")
		p.Stop()
	}
}
