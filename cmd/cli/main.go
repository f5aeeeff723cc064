package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/vantagics/bizlens/pkg/catalog"
	"github.com/vantagics/bizlens/pkg/runtime/terminal"
	"github.com/vantagics/bizlens/pkg/services/cleaning"
	"github.com/vantagics/bizlens/pkg/services/detect"
	"github.com/vantagics/bizlens/pkg/services/kpi"
	"github.com/vantagics/bizlens/pkg/services/narrative"
	"github.com/vantagics/bizlens/pkg/services/pipeline"
	"github.com/vantagics/bizlens/pkg/services/segment"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger

	cat := catalog.New()

	var generator narrative.Generator = narrative.Fallback{}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		generator = narrative.NewAnthropicGenerator(key, os.Getenv("BIZLENS_NARRATIVE_MODEL"))
	}

	orchestrator := pipeline.NewOrchestrator(
		detect.NewDetector(cat),
		cleaning.NewCleaner(nil),
		kpi.NewCalculator(cat),
		segment.NewAnalyzer(cat),
		generator,
	)

	cli := terminal.NewCLI(terminal.Options{
		Catalog:      cat,
		Orchestrator: orchestrator,
		Output:       os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
