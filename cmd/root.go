// Package cmd defines and implements the CLI commands for the boardwatch
// executable.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dhkim-dev/boardwatch/internal/board"
	"github.com/dhkim-dev/boardwatch/internal/clock/system"
	"github.com/dhkim-dev/boardwatch/internal/config"
	"github.com/dhkim-dev/boardwatch/internal/fetcher"
	"github.com/dhkim-dev/boardwatch/internal/logging"
	"github.com/dhkim-dev/boardwatch/internal/metrics"
	"github.com/dhkim-dev/boardwatch/internal/sources"
)

var cfgFile string

// app bundles the wired service components shared by subcommands.
type app struct {
	cfg     config.Config
	log     *zap.Logger
	cache   *fetcher.Cache
	service *board.Service
}

// newApp loads config and wires the fetch/parse pipeline bottom-up:
// identity pool → colly client → page cache → registry → service.
func newApp() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logging.New(cfg.Logging.Development)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	metrics.Init()

	client := fetcher.NewClient(fetcher.Config{
		Timeout:        cfg.FetchTimeout(),
		AcceptLanguage: cfg.Fetch.AcceptLanguage,
	}, fetcher.NewIdentityPool())
	cache := fetcher.NewCache(client, system.New(), cfg.CacheTTL(), log)
	registry := sources.DefaultRegistry(client)
	service := board.NewService(registry, cache, log)

	return &app{cfg: cfg, log: log, cache: cache, service: service}, nil
}

func (a *app) close() {
	_ = a.log.Sync()
}

// newRootCmd creates and configures the root command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boardwatch",
		Short: "Scrapes structured records from registered notice boards.",
		Long: `boardwatch fetches listing and detail pages from a fixed registry of
notice boards, parses them into structured records, and serves the
results over a debug HTTP API or directly on the command line.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is built-in defaults plus BOARDWATCH_* env)")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newScrapeCmd())

	return cmd
}

// Execute is the main entry point.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "boardwatch: %v\n", err)
		os.Exit(1)
	}
}
