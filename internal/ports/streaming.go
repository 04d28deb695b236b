package ports

import (
	"context"
	"io"
	"time"
)

// StreamProcessor formalizes text read from a stream and writes the result.
type StreamProcessor interface {
	// ProcessStream returns the number of formalized units written to writer.
	ProcessStream(ctx context.Context, reader io.Reader, writer io.Writer) (int, error)
}

// StreamResult holds the outcome of a stream formalization.
type StreamResult struct {
	Units          int
	BytesProcessed int64
	ProcessingTime time.Duration
}
