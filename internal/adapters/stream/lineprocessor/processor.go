package lineprocessor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/baditaflorin/formalized/internal/pool"
	"github.com/baditaflorin/formalized/internal/ports"
)

// Constants for line processing
const (
	// DefaultBufferSize is the initial scanner buffer size.
	DefaultBufferSize = 64 * 1024 // 64KB

	// DefaultMaxLineSize is the longest line the scanner accepts.
	DefaultMaxLineSize = 1024 * 1024 // 1MB
)

// ProcessingConfig defines configuration for line processing
type ProcessingConfig struct {
	BufferSize  int
	MaxLineSize int
}

// Processor formalizes a stream one line at a time. Every non-blank line is an
// independent text; blank lines are copied through unchanged.
type Processor struct {
	logger     ports.Logger
	formalizer ports.Formalizer
	buffers    *pool.BufferPool

	maxLineSize int
}

// NewProcessor creates a new line processor
func NewProcessor(logger ports.Logger, formalizer ports.Formalizer, config ProcessingConfig) *Processor {
	if config.BufferSize <= 0 {
		config.BufferSize = DefaultBufferSize
	}
	if config.MaxLineSize <= 0 {
		config.MaxLineSize = DefaultMaxLineSize
	}
	if config.MaxLineSize < config.BufferSize {
		config.MaxLineSize = config.BufferSize
	}

	return &Processor{
		logger:      logger,
		formalizer:  formalizer,
		buffers:     pool.NewBufferPool(config.BufferSize),
		maxLineSize: config.MaxLineSize,
	}
}

var _ ports.StreamProcessor = (*Processor)(nil)

// ProcessStream implements ports.StreamProcessor.
func (p *Processor) ProcessStream(ctx context.Context, reader io.Reader, writer io.Writer) (int, error) {
	result, err := p.Process(ctx, reader, writer)
	return result.Units, err
}

// Process formalizes reader into writer and reports what it did. Processing
// stops at the first formalization or write error.
func (p *Processor) Process(ctx context.Context, reader io.Reader, writer io.Writer) (ports.StreamResult, error) {
	startTime := time.Now()
	var result ports.StreamResult

	buffer := p.buffers.Get()
	defer p.buffers.Put(buffer)

	scanner := bufio.NewScanner(reader)
	scanner.Buffer((*buffer)[:0:cap(*buffer)], p.maxLineSize)

	w := bufio.NewWriter(writer)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			p.logger.Warn("Processing cancelled by context", "line", lineNo, "error", err)
			return p.finish(result, startTime), err
		}

		line := scanner.Text()
		result.BytesProcessed += int64(len(line)) + 1

		out := line
		if strings.TrimSpace(line) != "" {
			formal, err := p.formalizer.Formalize(ctx, line)
			if err != nil {
				_ = w.Flush()
				return p.finish(result, startTime), fmt.Errorf("line %d: %w", lineNo, err)
			}
			out = formal
			result.Units++
		}

		if _, err := w.WriteString(out); err != nil {
			return p.finish(result, startTime), err
		}
		if err := w.WriteByte('\n'); err != nil {
			return p.finish(result, startTime), err
		}
	}
	if err := scanner.Err(); err != nil {
		_ = w.Flush()
		return p.finish(result, startTime), fmt.Errorf("reading input: %w", err)
	}
	if err := w.Flush(); err != nil {
		return p.finish(result, startTime), err
	}

	result = p.finish(result, startTime)
	p.logger.Debug("Stream formalized",
		"strategy", p.formalizer.Name(),
		"lines", lineNo,
		"formalized", result.Units,
		"bytes", result.BytesProcessed,
		"duration", result.ProcessingTime,
	)
	return result, nil
}

func (p *Processor) finish(result ports.StreamResult, start time.Time) ports.StreamResult {
	result.ProcessingTime = time.Since(start)
	return result
}
