package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/heartswarm/internal/audio"
	"github.com/iburimskiy/heartswarm/internal/config"
	"github.com/iburimskiy/heartswarm/internal/game"
	"github.com/iburimskiy/heartswarm/internal/swarm"
	"github.com/iburimskiy/heartswarm/internal/term"
)

func main() {
	log.SetPrefix("[heartswarm] ")
	if code := run(os.Args[1:]); code != 0 {
		os.Exit(code)
	}
}

// run is main without the exit, so deferred cleanup always happens.
func run(args []string) int {
	flags := flag.NewFlagSet("heartswarm", flag.ContinueOnError)
	backend := flags.String("backend", "ebiten", "Renderer to use: ebiten or term")
	configPath := flags.String("config", "", "Settings file (default ~/.config/heartswarm/settings.json)")
	seed := flags.Uint64("seed", 0, "Random seed, 0 for a time-based seed")
	mute := flags.Bool("mute", false, "Disable the burst sound")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Printf("Failed to load settings, using defaults: %v", err)
		settings = config.DefaultSettings()
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(*seed, *seed>>1|1))

	var sound *audio.Player
	if settings.Sound && !*mute {
		sound, err = audio.NewPlayer(config.SampleRate, config.BurstMs*time.Millisecond, config.BurstThumpHz, settings.Volume)
		if err != nil {
			// Non-fatal, the animation runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	defer sound.Close()

	switch *backend {
	case "ebiten":
		err = runWindow(settings, rng, sound)
	case "term":
		err = term.Run(settings.Params(), rng, sound)
	default:
		err = fmt.Errorf("unknown backend %q", *backend)
	}
	if err != nil {
		reportFatal(*backend, err)
		return 1
	}
	return 0
}

func runWindow(settings *config.Settings, rng *rand.Rand, sound *audio.Player) error {
	scene := swarm.NewScene(config.WindowWidth, config.WindowHeight, settings.Params(), rng)
	g, err := game.New(scene, settings, sound)
	if err != nil {
		return err
	}
	return game.Run(g)
}

func reportFatal(backend string, err error) {
	fmt.Fprintf(os.Stderr, "heartswarm: %v\n", err)
	if backend == "ebiten" {
		// Launched from a desktop there is no terminal to read stderr.
		_ = zenity.Error(err.Error(), zenity.Title("Heart Swarm"), zenity.ErrorIcon)
	}
}
