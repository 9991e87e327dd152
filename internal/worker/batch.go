package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/textorigin/textorigin/internal/model"
)

// Detector defines the interface for analyzing a single batch input. An
// input is whatever the CLI accepts: a file path or a URL.
type Detector interface {
	DetectInput(ctx context.Context, input string) (*model.Report, error)
}

// DetectJob represents one batch input to analyze
type DetectJob struct {
	Input    string
	Detector Detector
}

// Execute runs the detection job
func (j *DetectJob) Execute(ctx context.Context) Result {
	report, err := j.Detector.DetectInput(ctx, j.Input)
	if err != nil {
		return &DetectResult{
			Input: j.Input,
			Error: err,
		}
	}
	return &DetectResult{
		Input:  j.Input,
		Report: report,
	}
}

// DetectResult represents the result of a detection job
type DetectResult struct {
	Input  string
	Report *model.Report
	Error  error
}

// GetError returns the error from the detection result
func (r *DetectResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes multiple inputs concurrently
type BatchProcessor struct {
	detector    Detector
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(detector Detector, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		detector:    detector,
		concurrency: concurrency,
	}
}

// ProcessInputs analyzes multiple inputs concurrently
func (b *BatchProcessor) ProcessInputs(ctx context.Context, inputs []string) []*DetectResult {
	if len(inputs) == 0 {
		return []*DetectResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, input := range inputs {
		pool.Submit(&DetectJob{
			Input:    input,
			Detector: b.detector,
		})
	}

	results := pool.Wait()

	detectResults := make([]*DetectResult, len(results))
	for i, result := range results {
		detectResults[i] = result.(*DetectResult)
	}

	return detectResults
}

// ProcessFile reads inputs from a list file and analyzes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*DetectResult, error) {
	inputs, err := ReadInputsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read inputs: %w", err)
	}

	return b.ProcessInputs(ctx, inputs), nil
}

// ReadInputsFromFile reads inputs from a file (one per line), skipping blank
// lines and comments and dropping duplicates
func ReadInputsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var inputs []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			inputs = append(inputs, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return inputs, nil
}
