package narrative

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rs/zerolog"
	"github.com/vantagics/bizlens/pkg/models/domain"
)

const defaultModel = "claude-sonnet-4-5-20250929"

const systemPrompt = `You are a senior business analyst writing the narrative
layer of an analytics report for Vietnamese SME owners. All KPI values you are
given were computed directly from the uploaded data and are final. Do not
recalculate, estimate, or restate any number differently from the input.

Respond in exactly this plain-text format:
SUMMARY:
<2-3 sentence executive summary>
INSIGHTS:
- <insight>
- <insight>
RECOMMENDATIONS:
- <recommendation>
- <recommendation>`

// AnthropicGenerator calls claude once per run to narrate the computed
// results. Callers bound the call with a context timeout; there are no
// retries here.
type AnthropicGenerator struct {
	client anthropic.Client
	model  string
}

func NewAnthropicGenerator(apiKey, model string) *AnthropicGenerator {
	if model == "" {
		model = defaultModel
	}
	return &AnthropicGenerator{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (g *AnthropicGenerator) Generate(ctx context.Context, req Request) (domain.Narrative, error) {
	logger := zerolog.Ctx(ctx)

	message, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildUserPrompt(req))),
		},
	})
	if err != nil {
		return domain.Narrative{}, fmt.Errorf("%w: %v", domain.ErrNarrativeUnavailable, err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			logger.Debug().
				Int64("tokens_in", message.Usage.InputTokens).
				Int64("tokens_out", message.Usage.OutputTokens).
				Msg("narrative generated")
			return parseNarrative(block.Text), nil
		}
	}
	return domain.Narrative{}, fmt.Errorf("%w: no text content in response", domain.ErrNarrativeUnavailable)
}

// buildUserPrompt serializes the frozen results as context. The prompt only
// carries already-final values; the response is text and stays text.
func buildUserPrompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dataset: %d rows, detected domain: %s (confidence %.0f%%).\n",
		req.RowCount, req.Detection.DomainName, req.Detection.Confidence*100)
	if req.Description != "" {
		fmt.Fprintf(&b, "User description: %s\n", req.Description)
	}

	b.WriteString("\nComputed KPIs (final values):\n")
	for _, name := range sortedKPINames(req.KPIs) {
		r := req.KPIs[name]
		fmt.Fprintf(&b, "- %s = %.2f%s | benchmark %.2f%s | %s | from column %q\n",
			r.Name, r.Value, unitSuffix(r.Unit), r.Benchmark, unitSuffix(r.Unit),
			statusLabel(r.Status), r.ResolvedColumn)
	}

	for _, bd := range sortedBreakdowns(req.Dimensions) {
		fmt.Fprintf(&b, "\nBreakdown by %s (primary metric %s):\n", bd.Dimension, bd.PrimaryMetric)
		for _, seg := range bd.Segments {
			fmt.Fprintf(&b, "- %s: %.2f (%d rows)\n", seg.Name, seg.Primary, seg.Rows)
		}
		fmt.Fprintf(&b, "Best: %s, worst: %s\n", bd.BestSegment, bd.WorstSegment)
	}
	return b.String()
}

// parseNarrative splits the sectioned plain-text response. Unknown lines fold
// into the section being read, so imperfect formatting degrades gracefully
// instead of failing the run.
func parseNarrative(text string) domain.Narrative {
	var n domain.Narrative
	section := ""
	var summary []string

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "SUMMARY:"):
			section = "summary"
			if rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "SUMMARY:")); rest != "" {
				summary = append(summary, rest)
			}
		case strings.HasPrefix(trimmed, "INSIGHTS:"):
			section = "insights"
		case strings.HasPrefix(trimmed, "RECOMMENDATIONS:"):
			section = "recommendations"
		case trimmed == "":
		default:
			item := strings.TrimSpace(strings.TrimPrefix(trimmed, "-"))
			switch section {
			case "summary":
				summary = append(summary, trimmed)
			case "insights":
				n.Insights = append(n.Insights, item)
			case "recommendations":
				n.Recommendations = append(n.Recommendations, item)
			}
		}
	}
	n.ExecutiveSummary = strings.Join(summary, " ")
	return n
}
