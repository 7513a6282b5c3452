package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lixenwraith/blockfall/audio"
	"github.com/lixenwraith/blockfall/config"
	"github.com/lixenwraith/blockfall/core"
	"github.com/lixenwraith/blockfall/engine"
	"github.com/lixenwraith/blockfall/game"
	"github.com/lixenwraith/blockfall/status"
	"github.com/lixenwraith/blockfall/terminal"
	"github.com/lixenwraith/blockfall/window"
)

var (
	configFlag   = flag.String("config", "", "YAML config file (default $BLOCKFALL_CONFIG)")
	frontendFlag = flag.String("frontend", "", "Frontend: term, window")
	seedFlag     = flag.Uint64("seed", 0, "Piece generator seed (0 = from clock)")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/blockfall.log")
	assetsFlag   = flag.String("assets", "", "Directory with wav/mp3 sound assets")
	muteFlag     = flag.Bool("mute", false, "Disable audio")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "blockfall: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "blockfall: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers flags over the file and environment
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	if *frontendFlag != "" {
		cfg.Frontend = *frontendFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *assetsFlag != "" {
		cfg.Audio.AssetsDir = *assetsFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("starting: frontend=%s seed=%d board=%dx%d", cfg.Frontend, seed, cfg.Board.Rows, cfg.Board.Cols)

	ctrl, err := engine.NewController(cfg.Engine(), engine.NewMonotonicTimeProvider(), game.NewGenerator(cfg.Board.Cols, seed))
	if err != nil {
		return fmt.Errorf("create controller: %w", err)
	}
	ctrl.RegisterHandler(&engine.SessionLogger{})
	stats := status.NewRegistry()
	ctrl.RegisterHandler(engine.NewStatsRecorder(stats))
	defer func() { log.Printf("stats: %s", stats.Summary()) }()

	// Audio is optional; the game runs silent on any failure
	sm := audio.NewSoundManager(cfg.SoundConfig())
	if err := sm.Initialize(); err != nil {
		if !errors.Is(err, audio.ErrAudioDisabled) {
			log.Printf("audio initialization failed: %v (continuing without audio)", err)
		}
	} else {
		defer sm.Cleanup()
		ctrl.RegisterHandler(audio.NewAudioDispatcher(sm))
	}

	switch cfg.Frontend {
	case config.FrontendWindow:
		return window.Run(ctrl, window.NewLayout(cfg.Board.CellSize), cfg.Timing.FPS)
	default:
		return runTerminal(ctrl, cfg)
	}
}

func runTerminal(ctrl *engine.Controller, cfg *config.Config) error {
	term, err := terminal.New()
	if err != nil {
		return err
	}
	core.RegisterCrashTerminal(term)
	defer func() {
		core.RegisterCrashTerminal(nil)
		term.Fini()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	layout := terminal.NewLayout(cfg.Board.Rows, cfg.Board.Cols)
	err = engine.Run(ctx, ctrl, term, layout, cfg.FrameInterval())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
