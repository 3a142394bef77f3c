package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/wfunc/numberguess/config"
	"github.com/wfunc/numberguess/console"
	"github.com/wfunc/numberguess/logger"
	"github.com/wfunc/numberguess/monitor"
	"github.com/wfunc/numberguess/random"
	"github.com/wfunc/numberguess/session"
)

func main() {
	flags := config.NewFlagSet(os.Args[0])
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	// Load configuration
	configPath, _ := flags.GetString("config")
	cfg, err := config.LoadConfig(configPath, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Log.Level, cfg.Log.Development); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	mon := monitor.NewMonitor(cfg.Monitor.Namespace)
	if cfg.Monitor.Address != "" {
		if err := mon.StartServer(cfg.Monitor.Address); err != nil {
			logger.Log.Fatalf("Failed to start metrics server: %v", err)
		}
		defer mon.Stop()
	}

	sess := session.NewSession(cfg.Game.DefaultBound, random.NewCryptoProvider(), mon)
	logger.Log.Infow("session created", "session", sess.GetID(), "default_bound", cfg.Game.DefaultBound)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := console.New(os.Stdin, os.Stdout, sess).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Log.Errorf("Console exited: %v", err)
	}
}
