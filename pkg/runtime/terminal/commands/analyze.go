package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/vantagics/bizlens/pkg/runtime/terminal/export"
	"github.com/vantagics/bizlens/pkg/services/ingest"
	"github.com/vantagics/bizlens/pkg/services/pipeline"
)

type AnalyzeCmd struct {
	description  string
	jsonOutput   bool
	timeout      time.Duration
	orchestrator *pipeline.Orchestrator
	reporter     *export.Reporter
}

func NewAnalyzeCmd(orchestrator *pipeline.Orchestrator, reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{orchestrator: orchestrator, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze <file.csv>",
		Short: "Analyze a CSV dataset",
		Args:  cobra.ExactArgs(1),
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.description, "description", "", "Free-text description of the dataset")
	cmd.Flags().BoolVar(&ac.jsonOutput, "json", false, "Print the raw report as JSON")
	cmd.Flags().DurationVar(&ac.timeout, "timeout", 60*time.Second, "Overall analysis timeout")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), ac.timeout)
	defer cancel()

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer file.Close()

	ds, err := ingest.ReadCSV(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	report, err := ac.orchestrator.Run(ctx, ds, ac.description)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if ac.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return ac.reporter.Handle(report)
}
