package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/vantagics/bizlens/pkg/catalog"
	"github.com/vantagics/bizlens/pkg/server"
	"github.com/vantagics/bizlens/pkg/services/cleaning"
	"github.com/vantagics/bizlens/pkg/services/config"
	"github.com/vantagics/bizlens/pkg/services/detect"
	"github.com/vantagics/bizlens/pkg/services/kpi"
	"github.com/vantagics/bizlens/pkg/services/narrative"
	"github.com/vantagics/bizlens/pkg/services/pipeline"
	"github.com/vantagics/bizlens/pkg/services/segment"
	"github.com/vantagics/bizlens/pkg/store/sqlite"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the bizlens analysis server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the YAML config file (optional, env vars override)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cat := catalog.New()
	if cfg.BenchmarkOverrides != "" {
		if err := cat.ApplyOverrides(cfg.BenchmarkOverrides); err != nil {
			return fmt.Errorf("failed to apply benchmark overrides: %w", err)
		}
		logger.Info().Str("path", cfg.BenchmarkOverrides).Msg("benchmark overrides applied")
	}

	var generator narrative.Generator
	if cfg.AnthropicAPIKey != "" {
		generator = narrative.NewAnthropicGenerator(cfg.AnthropicAPIKey, cfg.NarrativeModel)
	} else {
		logger.Warn().Msg("no Anthropic API key configured, narratives will be degraded")
		generator = narrative.Fallback{}
	}

	orchestrator := pipeline.NewOrchestrator(
		detect.NewDetector(cat).WithThreshold(cfg.DetectionThreshold),
		cleaning.NewCleaner(cfg.ProtectedFields),
		kpi.NewCalculator(cat),
		segment.NewAnalyzer(cat),
		generator,
	)
	orchestrator.SetNarrativeTimeout(cfg.NarrativeTimeout)

	db, err := sqlite.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open run database: %w", err)
	}
	defer db.Close()

	addr := net.JoinHostPort(cfg.ServerHost, cfg.ServerPort)
	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Runner:  orchestrator,
			Catalog: cat,
			Runs:    sqlite.NewStore(db),
		},
	})

	return api.Start()
}
