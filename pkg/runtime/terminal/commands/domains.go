package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vantagics/bizlens/pkg/catalog"
)

func NewDomainsCmd(cat *catalog.Catalog) *cobra.Command {
	return &cobra.Command{
		Use:   "domains",
		Short: "List supported business domains and their KPI sets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, p := range cat.Profiles() {
				fmt.Fprintf(out, "%s (%s) — %s\n", p.Name, p.ID, p.ExpertRole)
				for _, def := range p.KPIs {
					fmt.Fprintf(out, "  - %s (%s, benchmark %.2f %s)\n",
						def.Name, def.Aggregation, def.Benchmark, def.Unit)
				}
			}
			return nil
		},
	}
}
