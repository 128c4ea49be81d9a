package pack

import (
	"context"
	"fmt"

	"github.com/abhinav/huffpack/internal/huffman"
	"github.com/abhinav/huffpack/internal/log"
	"github.com/benbjohnson/clock"
)

// Compressor runs compression and decompression against a Source and
// a Sink. The zero value is ready to use.
//
// A Compressor holds no state between calls and may be used concurrently.
type Compressor struct {
	// Log receives a summary of each operation.
	// Defaults to discarding logs.
	Log *log.Logger

	// Workers is the number of goroutines used to count byte frequencies.
	// Values below 2 count sequentially.
	Workers int

	// Clock measures how long operations take.
	// Defaults to the system clock.
	Clock clock.Clock
}

func (c *Compressor) clock() clock.Clock {
	if c.Clock == nil {
		return clock.New()
	}
	return c.Clock
}

// Compress reads all of src and writes its artifact to dst.
// dst is not written to if src cannot be read.
func (c *Compressor) Compress(ctx context.Context, src Source, dst Sink) error {
	_, err := c.CompressReport(ctx, src, dst)
	return err
}

// CompressReport is Compress but also reports on the code it chose.
func (c *Compressor) CompressReport(ctx context.Context, src Source, dst Sink) (*Report, error) {
	clk := c.clock()
	start := clk.Now()

	data, err := src.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}

	freqs, err := huffman.CountParallel(ctx, data, c.Workers)
	if err != nil {
		return nil, fmt.Errorf("count frequencies: %w", err)
	}

	out, report := encode(freqs, data)
	if err := dst.WriteAll(out); err != nil {
		return nil, fmt.Errorf("write artifact: %w", err)
	}

	log.OrDiscard(c.Log).Info("compressed",
		"input", len(data),
		"output", len(out),
		"symbols", len(freqs),
		"took", clk.Since(start),
	)
	return report, nil
}

// Decompress reads an artifact from src and writes the original bytes to
// dst. dst is not written to if the artifact is malformed or corrupt.
func (c *Compressor) Decompress(ctx context.Context, src Source, dst Sink) error {
	clk := c.clock()
	start := clk.Now()

	data, err := src.ReadAll()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	out, err := Decode(data)
	if err != nil {
		return err
	}

	if err := dst.WriteAll(out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.OrDiscard(c.Log).Info("decompressed",
		"input", len(data),
		"output", len(out),
		"took", clk.Since(start),
	)
	return nil
}
