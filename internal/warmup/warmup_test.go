package warmup

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/baditaflorin/formalized/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
)

type countingFormalizer struct {
	calls atomic.Int64
	fail  bool
}

func (c *countingFormalizer) Name() string { return "counting" }

func (c *countingFormalizer) Formalize(_ context.Context, text string) (string, error) {
	c.calls.Add(1)
	if c.fail {
		return "", errors.New("nope")
	}
	return strings.ToUpper(text), nil
}

func TestWarmUpCallsEveryFormalizer(t *testing.T) {
	cfg := WarmupConfig{Concurrency: 3, Iterations: 10, SampleTextSize: 50}
	m := NewManager(logger.NewNopLogger(), cfg)

	ok := &countingFormalizer{}
	bad := &countingFormalizer{fail: true}
	m.RegisterFormalizer(ok)
	m.RegisterFormalizer(bad)

	report := m.WarmUp(context.Background())

	assert.Equal(t, int64(30), ok.calls.Load())
	assert.Equal(t, int64(30), bad.calls.Load())
	assert.Equal(t, int64(60), report.Calls)
	assert.Equal(t, int64(30), report.Failures)
}

func TestWarmUpStopsOnCancelledContext(t *testing.T) {
	m := NewManager(logger.NewNopLogger(), WarmupConfig{Concurrency: 2, Iterations: 1000, Duration: time.Second})
	f := &countingFormalizer{}
	m.RegisterFormalizer(f)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := m.WarmUp(ctx)
	assert.Zero(t, report.Calls)
}

func TestWarmUpWithoutFormalizers(t *testing.T) {
	m := NewManager(logger.NewNopLogger(), WarmupConfig{})
	report := m.WarmUp(context.Background())
	assert.Zero(t, report.Calls)
}

func TestGenerateSampleText(t *testing.T) {
	assert.Len(t, generateSampleText(40), 40)
	assert.Empty(t, generateSampleText(0))
}
