package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/textorigin/textorigin/internal/pipeline"
	"github.com/textorigin/textorigin/internal/worker"
)

var (
	batchWorkers int
	batchRate    float64
	batchOutDir  string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <list-file>",
	Short: "Analyze multiple inputs concurrently",
	Long: `Batch reads inputs from a file (one file path or URL per line, blank
lines and #-comments skipped, duplicates dropped) and analyzes them with a
worker pool. URL inputs are rate-limited per host.

Example:
  textorigin batch inputs.txt --workers 4 --out reports/`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchWorkers, "workers", 8, "number of concurrent workers")
	batchCmd.Flags().Float64Var(&batchRate, "rate", 2, "max requests per second per host for URL inputs")
	batchCmd.Flags().StringVar(&batchOutDir, "out", "", "directory for per-input JSON reports (optional)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "overall batch timeout")

	// Neural classifier flags, shared defaults with detect
	batchCmd.Flags().BoolVar(&neuralEnabled, "neural", false, "enable the neural classifier signal")
	batchCmd.Flags().StringVar(&neuralProvider, "neural-provider", "openai", "neural provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&neuralModel, "neural-model", "", "neural model name (provider default when empty)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	listFile := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.BatchWorkers = batchWorkers
	cfg.Concurrency.RequestsPerSecond = batchRate

	detector := pipeline.NewDetector(cfg)
	processor := worker.NewBatchProcessor(detector, cfg.Concurrency.BatchWorkers)

	if verbose {
		fmt.Fprintf(os.Stderr, "Batch file: %s\n", listFile)
		fmt.Fprintf(os.Stderr, "Workers: %d\n\n", batchWorkers)
	}

	start := time.Now()
	results, err := processor.ProcessFile(ctx, listFile)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	if batchOutDir != "" {
		if err := os.MkdirAll(batchOutDir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	var failed int

	fmt.Printf("%-50s %-28s %-10s\n", "INPUT", "CLASSIFICATION", "AI PROB")
	for i, result := range results {
		if result.Error != nil {
			failed++
			fmt.Printf("%-50s error: %v\n", truncateInput(result.Input), result.Error)
			continue
		}

		r := result.Report.Result
		if r.IsError() {
			failed++
			fmt.Printf("%-50s %-28s -\n", truncateInput(result.Input), r.Classification)
		} else {
			fmt.Printf("%-50s %-28s %.1f%%\n", truncateInput(result.Input), r.Classification, r.AIProbability*100)
		}

		if batchOutDir != "" {
			path := filepath.Join(batchOutDir, fmt.Sprintf("report-%03d.json", i+1))
			if err := renderer.RenderJSON(result.Report, path); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: write %s: %v\n", path, err)
			}
		}
	}

	fmt.Printf("\nAnalyzed %d inputs in %v (%d failed)\n", len(results), time.Since(start).Round(time.Millisecond), failed)
	return nil
}

func truncateInput(input string) string {
	if len(input) <= 50 {
		return input
	}
	return input[:47] + "..."
}
