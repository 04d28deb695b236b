package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/baditaflorin/formalized/internal/ports"
	"golang.org/x/sync/errgroup"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Sample text size for warmup
	SampleTextSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency:    runtime.NumCPU(),
		Iterations:     1000,
		SampleTextSize: 1000,
		Duration:       5 * time.Second,
		ForceGC:        true,
	}
}

// Report summarises a warmup run.
type Report struct {
	Calls    int64
	Failures int64
	Duration time.Duration
}

// Manager handles system warmup operations. Only local strategies should be
// registered: every iteration calls Formalize on each of them.
type Manager struct {
	logger      ports.Logger
	formalizers []ports.Formalizer
	config      WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterFormalizer adds a formalizer to be warmed up
func (wm *Manager) RegisterFormalizer(f ports.Formalizer) {
	wm.formalizers = append(wm.formalizers, f)
}

// WarmUp runs the warmup process for all registered formalizers
func (wm *Manager) WarmUp(ctx context.Context) Report {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.formalizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	var calls, failures atomic.Int64
	samples := []string{
		generateSampleText(wm.config.SampleTextSize),
		"i wanna go. i gotta run. idk",
		"btw imo tldr",
	}

	if len(wm.formalizers) > 0 {
		g, gctx := errgroup.WithContext(warmupCtx)
		for i := 0; i < wm.config.Concurrency; i++ {
			g.Go(func() error {
				for j := 0; j < wm.config.Iterations; j++ {
					if gctx.Err() != nil {
						return nil
					}
					sample := samples[j%len(samples)]
					for _, f := range wm.formalizers {
						calls.Add(1)
						if _, err := f.Formalize(gctx, sample); err != nil {
							failures.Add(1)
						}
					}
				}
				return nil
			})
		}
		_ = g.Wait()
	}

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	report := Report{
		Calls:    calls.Load(),
		Failures: failures.Load(),
		Duration: time.Since(startTime),
	}
	wm.logger.Info("System warmup completed",
		"calls", report.Calls,
		"failures", report.Failures,
		"duration", report.Duration,
	)
	return report
}

// generateSampleText creates informal sample text of roughly the specified size
func generateSampleText(size int) string {
	words := []string{
		"idk", "btw", "we", "wanna", "go.", "they", "gonna", "see", "imo",
		"it", "was", "fine.", "gotta", "run", "tldr", "the", "quick", "fox.",
	}

	var sb strings.Builder
	for i := 0; sb.Len() < size; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(words[i%len(words)])
	}

	result := sb.String()
	if len(result) > size {
		return result[:size]
	}
	return result
}
