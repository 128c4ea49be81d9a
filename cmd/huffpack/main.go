package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/abhinav/huffpack/internal/log"
	"github.com/abhinav/huffpack/internal/paniclog"
	"github.com/benbjohnson/clock"
	shellwords "github.com/mattn/go-shellwords"
	"go.uber.org/multierr"
)

var _version = "dev"

var _main = mainCmd{
	Stdin:  os.Stdin,
	Stdout: os.Stdout,
	Stderr: os.Stderr,
	Getenv: os.Getenv,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := _main.Run(ctx, os.Args[1:])
	stop()

	if err != nil && err != flag.ErrHelp {
		fmt.Fprintln(_main.Stderr, err)
		os.Exit(1)
	}
}

const (
	_name    = "huffpack"
	_optsEnv = "HUFFPACK_OPTS"
)

const _usage = `usage: %v [options] [FILE]

Compresses FILE with Huffman coding into a self-contained text artifact,
or restores the original from such an artifact.
Reads from stdin if FILE is absent or '-'.

The following flags are available:

	-d
		decompress FILE instead of compressing it.
	-o PATH
		file to write the result to.
		Defaults to FILE.huff when compressing, and to FILE without
		its .huff suffix when decompressing.
		Results are written to stdout when reading from stdin.
	-c
		write the result to stdout.
	-stats
		print the code chosen for each byte and the resulting sizes
		to stderr. Only available when compressing.
	-workers N
		number of goroutines used to count bytes in large inputs.
		Defaults to 1.
	-log FILE
		file to write logs to.
		Uses stderr by default.
	-verbose
		log more output.
	-version
		display version information.

Default options may be placed in the HUFFPACK_OPTS environment variable.
They are read before the command line.

	HUFFPACK_OPTS='-workers 4 -log /tmp/huffpack.log'
`

type mainCmd struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Getenv func(string) string // == os.Getenv
	Clock  clock.Clock         // defaults to the system clock
}

// Run parses options from the environment and args and runs the command.
func (cmd *mainCmd) Run(ctx context.Context, args []string) (err error) {
	getenv := cmd.Getenv
	if getenv == nil {
		getenv = func(string) string { return "" }
	}

	envArgs, err := shellwords.Parse(getenv(_optsEnv))
	if err != nil {
		return fmt.Errorf("parse $%v: %v", _optsEnv, err)
	}
	args = append(envArgs, args...)

	var cfg config
	flag := flag.NewFlagSet(_name, flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		fmt.Fprintf(flag.Output(), _usage, flag.Name())
	}
	cfg.RegisterFlags(flag)
	version := flag.Bool("version", false, "")
	if err := flag.Parse(args); err != nil {
		return err
	}

	if *version {
		fmt.Fprintf(cmd.Stdout, "%v version %v\n", _name, _version)
		return nil
	}

	switch args := flag.Args(); len(args) {
	case 0:
	case 1:
		cfg.Input = args[0]
	default:
		return fmt.Errorf("unexpected arguments %q", args[1:])
	}

	cfg.FillFrom(&_defaultConfig)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logW := cmd.Stderr
	if file := cfg.LogFile; len(file) > 0 {
		f, openErr := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if openErr != nil {
			return fmt.Errorf("open log %q: %v", file, openErr)
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		logW = f
	}

	lvl := log.Info
	if cfg.Verbose {
		lvl = log.Debug
	}
	logger := log.New(logW, lvl)

	defer paniclog.Recover(&err, logger)

	logger.WithName("config").Debug("options",
		"input", cfg.Input,
		"decompress", cfg.Decompress,
		"workers", cfg.Workers,
	)

	return (&app{
		Log:    logger,
		Stdin:  cmd.Stdin,
		Stdout: cmd.Stdout,
		Report: cmd.Stderr,
		Clock:  cmd.Clock,
	}).Run(ctx, &cfg)
}
