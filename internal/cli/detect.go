package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/textorigin/textorigin/internal/model"
	"github.com/textorigin/textorigin/internal/pipeline"
)

var (
	outJSON        string
	outMD          string
	timeout        time.Duration
	userAgent      string
	maxBytes       int64
	noCache        bool
	noFooter       bool
	insecureTLS    bool
	neuralEnabled  bool
	neuralProvider string
	neuralModel    string
)

// detectCmd represents the detect command
var detectCmd = &cobra.Command{
	Use:   "detect <file|url|->",
	Short: "Classify a text sample as AI-generated or human-written",
	Long: `Detect analyzes a single input to:
- Score the text against a catalog of lexical and structural markers
- Query the configured neural classifier (optional)
- Fuse both signals with pattern-strength-dependent weighting
- Calibrate confidence and map the result to a classification and risk level
- Generate human-readable feedback and recommendations

The input is a file path, an http(s) URL, or "-" for stdin.

Example:
  textorigin detect essay.txt
  textorigin detect https://example.com/post --json report.json --md report.md
  cat draft.md | textorigin detect - --neural openai --neural-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)

	// Output flags
	detectCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	detectCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	// HTTP flags
	detectCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall detection timeout")
	detectCmd.Flags().StringVar(&userAgent, "ua", "textorigin/0.1 (+https://github.com/textorigin/textorigin)", "HTTP User-Agent for URL inputs")
	detectCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read for URL inputs")
	detectCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	detectCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	detectCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")

	// Neural classifier flags
	detectCmd.Flags().BoolVar(&neuralEnabled, "neural", false, "enable the neural classifier signal")
	detectCmd.Flags().StringVar(&neuralProvider, "neural-provider", "openai", "neural provider (openai, anthropic, ollama)")
	detectCmd.Flags().StringVar(&neuralModel, "neural-model", "", "neural model name (provider default when empty)")
}

func runDetect(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", input)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Neural: %v\n", cfg.Neural.Provider != "")
		fmt.Fprintln(os.Stderr)
	}

	detector := pipeline.NewDetector(cfg)

	var report *model.Report
	if input == "-" {
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		report = detector.DetectReport(ctx, "stdin", string(text))
	} else {
		report, err = detector.DetectInput(ctx, input)
		if err != nil {
			return fmt.Errorf("detect failed: %w", err)
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Triggered %d pattern markers\n", len(report.Matches))
		fmt.Fprintf(os.Stderr, "✓ Method: %s\n", report.Result.MethodInfo.Method)
		fmt.Fprintln(os.Stderr)
	}

	return renderReport(report, cfg)
}

// buildConfig assembles the runtime configuration from defaults, config
// file, environment, and flags
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if !neuralEnabled {
		cfg.Neural.Provider = ""
		return cfg, nil
	}

	cfg.Neural.Provider = neuralProvider
	cfg.Neural.Model = neuralModel

	switch neuralProvider {
	case "openai":
		cfg.Neural.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Neural.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.Neural.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.Neural.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.Neural.BaseURL = baseURL
		}
	}

	return cfg, nil
}

// renderReport writes the requested outputs and prints the stdout summary
func renderReport(report *model.Report, cfg *model.Config) error {
	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)

	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", outJSON)
		}
	}

	if outMD != "" {
		if err := renderer.RenderMarkdown(report, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", outMD)
		}
	}

	renderer.RenderSummary(report)
	return nil
}
