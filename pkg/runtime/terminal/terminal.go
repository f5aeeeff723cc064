package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vantagics/bizlens/pkg/catalog"
	"github.com/vantagics/bizlens/pkg/runtime/terminal/commands"
	"github.com/vantagics/bizlens/pkg/runtime/terminal/export"
	"github.com/vantagics/bizlens/pkg/services/pipeline"
)

// CLI represents the command-line interface
type CLI struct {
	catalog      *catalog.Catalog
	orchestrator *pipeline.Orchestrator
	reporter     *export.Reporter
	rootCmd      *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Catalog      *catalog.Catalog
	Orchestrator *pipeline.Orchestrator
	Output       io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		catalog:      opts.Catalog,
		orchestrator: opts.Orchestrator,
		reporter:     export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bizlens",
		Short: "Business analytics from tabular uploads",
	}

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.orchestrator, cli.reporter))
	cmd.AddCommand(commands.NewDomainsCmd(cli.catalog))

	return cmd
}
