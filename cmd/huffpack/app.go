package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/abhinav/huffpack/internal/log"
	"github.com/abhinav/huffpack/internal/pack"
	"github.com/benbjohnson/clock"
)

// app runs a single compression or decompression
// for an already validated configuration.
type app struct {
	Log    *log.Logger
	Stdin  io.Reader
	Stdout io.Writer
	Report io.Writer // destination for -stats
	Clock  clock.Clock
}

func (a *app) Run(ctx context.Context, cfg *config) error {
	var src pack.Source = pack.FileSource(cfg.Input)
	if cfg.FromStdin() {
		src = pack.ReaderSource{R: a.Stdin}
	}

	outPath, err := cfg.OutputPath()
	if err != nil {
		return err
	}
	var dst pack.Sink = pack.FileSink(outPath)
	if len(outPath) == 0 {
		dst = pack.WriterSink{W: a.Stdout}
	}

	logger := &log.Logger{Logger: a.Log.With(
		log.OmitEmpty(slog.String, "file", cfg.Input),
		log.OmitEmpty(slog.String, "output", outPath),
	)}
	c := pack.Compressor{
		Log:     logger,
		Workers: cfg.Workers,
		Clock:   a.Clock,
	}

	if cfg.Decompress {
		if err := c.Decompress(ctx, src, dst); err != nil {
			return fmt.Errorf("decompress %v: %w", displayName(cfg), err)
		}
		return nil
	}

	report, err := c.CompressReport(ctx, src, dst)
	if err != nil {
		return fmt.Errorf("compress %v: %w", displayName(cfg), err)
	}
	if cfg.Stats {
		return writeReport(a.Report, report)
	}
	return nil
}

func displayName(cfg *config) string {
	if cfg.FromStdin() {
		return "stdin"
	}
	return cfg.Input
}
