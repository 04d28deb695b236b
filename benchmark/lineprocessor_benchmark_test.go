package benchmark

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/baditaflorin/formalized/internal/adapters/logger"
	"github.com/baditaflorin/formalized/internal/adapters/stream/lineprocessor"
)

// generateLineTestText creates informal lines, every tenth one blank
func generateLineTestText(lineCount int) string {
	sentences := []string{
		"idk what we wanna do tonight. btw the shop closes early",
		"imo the report was fine. tldr ship it",
		"we gotta finish the review. they gonna ask tomorrow",
		"the meeting moved. nothing else to add",
	}

	var sb strings.Builder
	for i := 0; i < lineCount; i++ {
		if i%10 != 9 {
			sb.WriteString(sentences[i%len(sentences)])
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// BenchmarkLineProcessor measures stream formalization at several buffer sizes
func BenchmarkLineProcessor(b *testing.B) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	engine := newEngine(b)
	small := generateLineTestText(100)
	large := generateLineTestText(10000)

	benchmarks := []struct {
		name       string
		input      string
		bufferSize int
	}{
		{"100Lines-DefaultBuffer", small, 0},
		{"10kLines-DefaultBuffer", large, 0},
		{"10kLines-4KBBuffer", large, 4 * 1024},
		{"10kLines-256KBBuffer", large, 256 * 1024},
	}

	for _, bm := range benchmarks {
		processor := lineprocessor.NewProcessor(logger.NewNopLogger(), engine, lineprocessor.ProcessingConfig{
			BufferSize: bm.bufferSize,
		})

		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(bm.input)))

			for i := 0; i < b.N; i++ {
				if _, err := processor.ProcessStream(ctx, strings.NewReader(bm.input), io.Discard); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
