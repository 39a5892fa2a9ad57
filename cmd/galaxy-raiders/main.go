package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/galaxy-raiders/config"
	"github.com/lixenwraith/galaxy-raiders/engine"
	"github.com/lixenwraith/galaxy-raiders/input"
	"github.com/lixenwraith/galaxy-raiders/status"
	"github.com/lixenwraith/galaxy-raiders/vmath"
)

var (
	envFileFlag  = flag.String("env", ".env", "dotenv file with GR__ tuning keys, environment overrides it")
	defaultsFlag = flag.Bool("defaults", false, "use built-in tuning for keys missing from the environment")
	debugFlag    = flag.Bool("debug", false, "write logs to logs/galaxy-raiders.log")
	levelFlag    = flag.String("log-level", "debug", "log level: debug, info, warn, error")
	jsonFlag     = flag.Bool("log-json", false, "JSON log format")
	seedFlag     = flag.Uint64("seed", 0, "random seed, 0 seeds from the clock")
	fireRateFlag = flag.Float64("fire-rate", 8, "maximum missiles per second")
)

// osExit is swapped in tests
var osExit = os.Exit

// fatal reports to stderr and the log, then closes the log file before exiting
// Deferred calls do not run past os.Exit
func fatal(logFile *os.File, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, msg)
	slog.Error("Fatal", "component", "main", "error", msg)
	if logFile != nil {
		logFile.Sync()
		logFile.Close()
	}
	osExit(1)
}

// configSource layers the process environment over the dotenv file, then the built-in tuning
// The file is read without modifying the environment; a missing file is reported and skipped
func configSource(envPath string, withDefaults bool) (config.Source, error) {
	layers := config.Layered{config.EnvSource{}}
	fileSrc, err := config.ReadFile(envPath)
	if err == nil {
		layers = append(layers, fileSrc)
	}
	if withDefaults {
		layers = append(layers, config.Defaults())
	}
	return layers, err
}

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag, *levelFlag, *jsonFlag)
	if logFile != nil {
		defer logFile.Close()
	}
	logger := slog.With("component", "main")

	src, err := configSource(*envFileFlag, *defaultsFlag)
	if err != nil {
		logger.Info("No env file loaded, using process environment", "path", *envFileFlag, "error", err)
	}
	cfg, err := config.Load(src)
	if err != nil {
		fatal(logFile, "Invalid configuration:\n%v", err)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("Starting",
		"seed", seed,
		"width", cfg.Engine.SpaceFieldWidth,
		"height", cfg.Engine.SpaceFieldHeight,
		"frame_rate", cfg.Engine.FrameRate,
	)

	screen, err := tcell.NewScreen()
	if err != nil {
		fatal(logFile, "Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		fatal(logFile, "Failed to initialize screen: %v", err)
	}

	// Panic Recovery: restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mGALAXY-RAIDERS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			fatal(logFile, "Crashed: %v", r)
		}
	}()
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	stats := status.NewRegistry()
	game := engine.NewGameFromConfig(cfg, vmath.NewFastRand(seed), stats)
	s := newSession(screen, game, stats, *fireRateFlag)

	run(screen, s, time.Second/time.Duration(cfg.Engine.FrameRate))
	logger.Info("Exiting", "ticks", game.Ticks())
}

// run pumps terminal events into the session and ticks at a fixed interval until quit
func run(screen tcell.Screen, s *session, interval time.Duration) {
	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !s.apply(input.Translate(ev)) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			s.step()
		}
	}
}
