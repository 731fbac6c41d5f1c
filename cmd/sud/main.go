// Package main is the entry point for the Starlink usage dashboard.
// It runs either the interactive TUI (default) or, with -serve, an
// HTTP API that exposes the same usage queries.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/app"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/config"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/logger"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/server"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/services"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/ui/tabs/cycles"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/ui/tabs/info"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/ui/tabs/usage"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/version"
)

const shutdownTimeout = 10 * time.Second

func main() {
	showVersion := flag.Bool("v", false, "print version and exit")
	serve := flag.Bool("serve", false, "run the HTTP API instead of the TUI")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Usage = printUsage
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	logger.SetDebug(*debug)

	if err := run(*serve); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(serve bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	mgr := services.NewManager(cfg)
	defer func() {
		if closeErr := mgr.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: error closing services: %v\n", closeErr)
		}
	}()

	if serve {
		return runServer(cfg, mgr)
	}
	return runTUI(cfg, mgr)
}

func runTUI(cfg *config.Config, mgr *services.Manager) error {
	model := app.NewModel(mgr)

	state := model.GetState()
	model.SetTabs([]app.Tab{
		usage.New(state),
		cycles.New(state),
		info.New(state, cfg),
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	go func() {
		<-sigChan
		p.Send(tea.Quit())
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

func runServer(cfg *config.Config, mgr *services.Manager) error {
	srv := server.New(cfg.ListenAddr, mgr)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", cfg.ListenAddr)
		errChan <- srv.ListenAndServe()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func printUsage() {
	fmt.Println(`Starlink usage dashboard

Usage:
  sud [flags]

Flags:
  -v        Print version and exit
  -serve    Run the HTTP API instead of the TUI
  -debug    Enable debug logging
  -h        Show this help

Environment:
  ELCOME_TOKEN_URL      OAuth token endpoint (required)
  ELCOME_CLIENT_ID      OAuth client id (required)
  ELCOME_CLIENT_SECRET  OAuth client secret (required)
  ELCOME_SCOPE          OAuth scope (optional)
  ELCOME_USAGE_URL      Usage query endpoint (optional)
  LISTEN_ADDR           HTTP listen address for -serve (default :8080)

Variables can also be placed in a .env file.`)
}
