package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/textorigin/textorigin/internal/model"
)

// Renderer writes detection reports as JSON, Markdown, and a stdout summary
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report to a JSON file
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// RenderMarkdown writes the report as a Markdown document
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	result := report.Result

	b.WriteString("# Text Origin Report\n\n")
	fmt.Fprintf(&b, "- **Source**: %s\n", report.Source)
	fmt.Fprintf(&b, "- **Analyzed**: %s\n", report.AnalyzedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "- **Length**: %d chars, %d words, %d sentences\n\n",
		report.Metrics.CharCount, report.Metrics.WordCount, report.Metrics.SentenceCount)

	b.WriteString("## Verdict\n\n")
	fmt.Fprintf(&b, "- **Classification**: %s\n", result.Classification)
	fmt.Fprintf(&b, "- **Risk level**: %s\n", result.RiskLevel)
	if !result.IsError() {
		fmt.Fprintf(&b, "- **AI probability**: %.1f%%\n", result.AIProbability*100)
		fmt.Fprintf(&b, "- **Confidence**: %.1f%%\n", result.Confidence*100)
		fmt.Fprintf(&b, "- **Method**: %s\n", result.MethodInfo.Method)
	} else {
		fmt.Fprintf(&b, "- **Error**: %s\n", result.Error)
	}
	b.WriteString("\n")

	if len(result.ConfidenceIndicators) > 0 {
		b.WriteString("## Confidence Indicators\n\n")
		for _, indicator := range result.ConfidenceIndicators {
			fmt.Fprintf(&b, "- %s\n", indicator)
		}
		b.WriteString("\n")
	}

	if len(result.FlaggedSections) > 0 {
		b.WriteString("## Flagged Patterns\n\n")
		b.WriteString("| Marker | Leaning | Strength | Score Impact |\n")
		b.WriteString("|--------|---------|----------|-------------|\n")
		for _, section := range result.FlaggedSections {
			fmt.Fprintf(&b, "| %s | %s | %.2f | %+.3f |\n",
				section.Name, section.Category, section.Strength, section.ScoreImpact)
		}
		b.WriteString("\n")
	}

	if len(result.FeedbackMessages) > 0 {
		b.WriteString("## Feedback\n\n")
		for _, msg := range result.FeedbackMessages {
			fmt.Fprintf(&b, "- %s\n", msg)
		}
		b.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for _, rec := range result.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
		b.WriteString("\n")
	}

	if len(result.MethodInfo.Adjustments) > 0 {
		b.WriteString("## Calibration Audit\n\n")
		for _, adj := range result.MethodInfo.Adjustments {
			fmt.Fprintf(&b, "- %s\n", adj)
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("---\n")
		b.WriteString("Generated by [textorigin](https://github.com/textorigin/textorigin). ")
		b.WriteString("Probabilistic output: treat verdicts as evidence, not proof.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// RenderSummary prints a short verdict summary to stdout
func (r *Renderer) RenderSummary(report *model.Report) {
	result := report.Result

	fmt.Println()
	fmt.Printf("Source:         %s\n", report.Source)
	fmt.Printf("Classification: %s\n", result.Classification)
	fmt.Printf("Risk level:     %s\n", result.RiskLevel)
	if result.IsError() {
		fmt.Printf("Error:          %s\n", result.Error)
		return
	}
	fmt.Printf("AI probability: %.1f%%\n", result.AIProbability*100)
	fmt.Printf("Confidence:     %.1f%%\n", result.Confidence*100)
	fmt.Printf("Method:         %s\n", result.MethodInfo.Method)
	if len(result.FeedbackMessages) > 0 {
		fmt.Printf("Summary:        %s\n", result.FeedbackMessages[0])
	}
}
