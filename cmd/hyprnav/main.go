package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"hyprnav/internal/app"
	"hyprnav/internal/wm"
	"hyprnav/pkg/config"
	"hyprnav/pkg/logger"
	"hyprnav/pkg/notify"
)

func main() {
	mode := app.ParseMode(os.Args[1:])
	if mode.Action == app.Help {
		app.Usage(os.Stdout)
		return
	}

	env, envErr := config.LoadEnv()

	// Initialize logger first for early logging
	log := newLogger(env)
	defer func() { log.Close() }()

	if envErr != nil {
		log.Warn("Ignoring invalid environment", "error", envErr.Error())
	}

	cfg, err := config.FindConfig(env, log)
	if err != nil {
		log.Error("Failed to load configuration, using defaults", err, "path", env.DefaultPath())
	}
	if cfg.LogFile != "" || cfg.Level() != zerolog.InfoLevel {
		log.Close()
		log = newLoggerFor(env, cfg)
	}

	windowManager, err := wm.Detect(env.HyprlandSig, cfg.Hyprctl, log)
	if err != nil {
		log.Error("Hyprland is not available", err)
		if mode.Action != app.Navigate {
			fmt.Fprintf(os.Stderr, "hyprnav: %v\n", err)
		}
		return
	}

	var notifier app.Notifier
	if cfg.Notify {
		notifier = notify.NewNotifyService(log, nil)
	}

	if err := app.New(windowManager, cfg, log, os.Stdout, notifier).Run(mode); err != nil {
		log.Error("Command finished with errors", err)
	}
}

func newLogger(env config.Env) *logger.Logger {
	return newLoggerFor(env, &config.Config{})
}

// newLoggerFor builds the logger cfg asks for. Logging problems never stop
// hyprnav: it falls back to stderr, then to nothing.
func newLoggerFor(env config.Env, cfg *config.Config) *logger.Logger {
	level := cfg.Level()
	opts := []logger.Option{logger.WithLevel(level)}
	if env.Debug {
		opts = []logger.Option{logger.WithLevel(zerolog.DebugLevel), logger.WithConsole()}
	}
	if cfg.LogFile != "" {
		opts = append(opts, logger.WithFile(cfg.LogFile))
	}

	log, err := logger.NewLogger(opts...)
	if err == nil {
		return log
	}

	fmt.Fprintf(os.Stderr, "hyprnav: failed to initialize logger: %v\n", err)
	log, err = logger.NewLogger(logger.WithConsole(), logger.WithLevel(zerolog.WarnLevel), logger.WithFile(""))
	if err != nil {
		return logger.Nop()
	}
	return log
}
