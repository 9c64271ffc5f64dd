package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"codeberg.org/mutker/jitterctl/internal/config"
	"codeberg.org/mutker/jitterctl/internal/console"
	"codeberg.org/mutker/jitterctl/internal/logger"
	"codeberg.org/mutker/jitterctl/internal/pid"
	"codeberg.org/mutker/jitterctl/internal/session"
	"codeberg.org/mutker/jitterctl/internal/stats"
	"codeberg.org/mutker/jitterctl/internal/timer"
)

var cfg *config.Config

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Debug, cfg.Verbose, logger.IsService())
	logger.Debug().Msg("Config loaded")
}

func main() {
	if err := pid.Write(); err != nil {
		logger.Fatal().Err(err).Msg("failed to write PID file")
	}
	defer func() {
		if err := pid.Remove(); err != nil {
			logger.Error().Err(err).Msg("failed to remove PID file")
		}
	}()

	source, err := timer.NewPeriodic(cfg.TickPeriod())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize tick source")
	}

	collector, err := stats.NewCollector(stats.DefaultConfig())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize session stats")
	}
	defer collector.Close()

	cons := console.New(os.Stdin, os.Stdout)
	renderer := console.NewRenderer(cons, true)

	runner := session.NewRunner(session.Config{
		Timeout:     cfg.AwaitTimeout(),
		Sessions:    cfg.Sessions,
		Interactive: cfg.Interactive,
	}, source, cons, renderer, collector)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	logger.Info().
		Dur("period", cfg.TickPeriod()).
		Dur("timeout", cfg.AwaitTimeout()).
		Int("sessions", cfg.Sessions).
		Bool("interactive", cfg.Interactive).
		Msg("Starting capture loop")

	if err := runner.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("error in main loop")
	}

	logger.Info().Msg("Exiting...")
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}
