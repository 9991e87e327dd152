package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/textorigin/textorigin/internal/cache"
	"github.com/textorigin/textorigin/internal/feedback"
	"github.com/textorigin/textorigin/internal/fusion"
	"github.com/textorigin/textorigin/internal/model"
	"github.com/textorigin/textorigin/internal/neural"
	"github.com/textorigin/textorigin/internal/pattern"
	"github.com/textorigin/textorigin/internal/worker"
)

// Detector orchestrates the complete detection flow: pattern analysis, the
// optional neural signal, fusion, calibration, and feedback. The core path is
// synchronous and stateless; only the result cache and the neural provider
// sit at its edges.
type Detector struct {
	analyzer  *pattern.Analyzer
	engine    *fusion.Engine
	generator *feedback.Generator
	provider  neural.Provider
	fetcher   *Fetcher
	limiter   *worker.Limiter
	results   cache.Cache
	config    *model.Config
}

// NewDetector creates a detector from the given configuration
func NewDetector(cfg *model.Config) *Detector {
	var provider neural.Provider
	if cfg.Neural.Provider != "" {
		p, err := neural.NewProvider(neural.ConfigFromModel(cfg.Neural))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize neural provider: %v\n", err)
		} else {
			provider = p
		}
	}

	var results cache.Cache
	if cfg.Cache.Enabled {
		results = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}

	return &Detector{
		analyzer:  pattern.NewAnalyzer(),
		engine:    fusion.NewEngine(cfg),
		generator: feedback.NewGenerator(),
		provider:  provider,
		fetcher:   NewFetcher(cfg.HTTP),
		limiter:   worker.NewLimiter(cfg.Concurrency.RequestsPerSecond, cfg.Concurrency.Burst),
		results:   results,
		config:    cfg,
	}
}

// Detect classifies a text sample and returns the fused verdict. Every
// failure path yields a structured result, never an error value: callers
// always have something consistent to render.
func (d *Detector) Detect(ctx context.Context, text string) model.EnsembleResult {
	return d.DetectReport(ctx, "text", text).Result
}

// DetectReport runs the full flow and returns the complete report
func (d *Detector) DetectReport(ctx context.Context, source, text string) *model.Report {
	sample := model.NewTextSample(text)

	if sample.IsEmpty() {
		return d.buildReport(source, sample, model.ErrorResult("empty input: nothing to analyze"),
			pattern.Analysis{Signal: model.UnavailableSignal(model.SourcePattern, "empty input")},
			model.UnavailableSignal(model.SourceNeural, "empty input"))
	}

	if cached := d.cachedReport(sample, source); cached != nil {
		return cached
	}

	analysis := d.analyzer.Analyze(sample)
	neuralSig := neural.Signal(ctx, d.provider, sample.Text)

	result := d.engine.Fuse(sample, neuralSig, analysis)
	result = d.generator.Apply(result, analysis.Matches)

	report := d.buildReport(source, sample, result, analysis, neuralSig)
	d.storeReport(sample, report)

	return report
}

// DetectInput analyzes a batch input: URLs are fetched (rate-limited per
// host), anything else is read as a file path. Implements worker.Detector.
func (d *Detector) DetectInput(ctx context.Context, input string) (*model.Report, error) {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		if err := d.limiter.Wait(ctx, input); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		text, err := d.fetcher.FetchText(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", input, err)
		}
		return d.DetectReport(ctx, input, text), nil
	}

	text, err := ReadTextFile(input)
	if err != nil {
		return nil, err
	}
	return d.DetectReport(ctx, input, text), nil
}

// Fetcher exposes the URL fetcher for callers that fetch before detecting
func (d *Detector) Fetcher() *Fetcher {
	return d.fetcher
}

func (d *Detector) buildReport(source string, sample model.TextSample, result model.EnsembleResult, analysis pattern.Analysis, neuralSig model.Signal) *model.Report {
	return &model.Report{
		Source:     source,
		AnalyzedAt: time.Now().UTC(),
		Metrics:    sample.Metrics(),
		Result:     result,
		Matches:    analysis.Matches,
		Neural:     neuralSig,
		Pattern:    analysis.Signal,
		Principles: model.DefaultPrinciples(),
	}
}

// cachedReport returns the stored report for identical text, re-labeled with
// the current source. Timestamps come from the original analysis; the verdict
// itself is deterministic so reuse is safe.
func (d *Detector) cachedReport(sample model.TextSample, source string) *model.Report {
	if d.results == nil {
		return nil
	}

	data, found := d.results.Get(cache.TextKey(sample.Text))
	if !found {
		return nil
	}

	var report model.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil
	}
	report.Source = source
	return &report
}

func (d *Detector) storeReport(sample model.TextSample, report *model.Report) {
	if d.results == nil {
		return
	}

	data, err := json.Marshal(report)
	if err != nil {
		return
	}
	_ = d.results.Set(cache.TextKey(sample.Text), data, d.config.Cache.TTL)
}

// ReadTextFile loads a local input file. HTML files are reduced to their
// visible text before analysis.
func ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	text := string(data)
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm") {
		return ExtractVisibleText(text)
	}
	return text, nil
}
