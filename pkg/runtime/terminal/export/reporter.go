package export

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/template"

	"github.com/vantagics/bizlens/pkg/models/domain"
)

// Reporter renders analysis reports as formatted terminal text.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

const reportTemplate = `
Business Analysis Report ({{.Report.RunID}})
Detected domain: {{.Report.DomainInfo.DomainName}} ({{printf "%.0f" (pct .Report.DomainInfo.Confidence)}}% confidence)
Analyst persona: {{.Report.DomainInfo.ExpertRole}}
Dataset: {{.Report.RowCount}} rows x {{.Report.ColumnCount}} columns

=== KPIs ===
{{range .KPIs}}
{{glyph .Status}} {{.Name}}: {{printf "%.2f" .Value}}{{if .Unit}} {{.Unit}}{{end}} (benchmark {{printf "%.2f" .Benchmark}}, from column "{{.ResolvedColumn}}")
{{end}}
{{range $dim, $b := .Report.DimensionAnalysis}}
=== By {{$dim}} ===
{{range $b.Segments}}
- {{.Name}}: {{printf "%.2f" .Primary}} ({{.Rows}} rows)
{{end}}
Best: {{$b.BestSegment}} | Worst: {{$b.WorstSegment}}
{{range $b.Insights}}
! {{.Message}}
  -> {{.Action}}
{{end}}
{{end}}
=== Narrative{{if .Report.Narrative.Degraded}} (degraded){{end}} ===
{{.Report.Narrative.ExecutiveSummary}}
{{range .Report.Narrative.Insights}}
* {{.}}
{{end}}
{{range .Report.Narrative.Recommendations}}
> {{.}}
{{end}}
`

type reportContext struct {
	Report *domain.AnalysisReport
	KPIs   []domain.KPIResult
}

func (r *Reporter) Handle(report *domain.AnalysisReport) error {
	t, err := template.New("report").Funcs(template.FuncMap{
		"pct":   func(v float64) float64 { return v * 100 },
		"glyph": statusGlyph,
	}).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(r.writer, reportContext{
		Report: report,
		KPIs:   orderedKPIs(report.KPIs),
	})
}

func orderedKPIs(kpis map[string]domain.KPIResult) []domain.KPIResult {
	names := make([]string, 0, len(kpis))
	for name := range kpis {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]domain.KPIResult, 0, len(names))
	for _, name := range names {
		out = append(out, kpis[name])
	}
	return out
}

func statusGlyph(s domain.KPIStatus) string {
	switch s {
	case domain.StatusAboveTarget:
		return "[+]"
	case domain.StatusBelowTarget:
		return "[-]"
	case domain.StatusAtTarget:
		return "[=]"
	default:
		return "[?]"
	}
}
