package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

// _ext is appended to the names of compressed files.
const _ext = ".huff"

var _defaultConfig = config{
	Workers: 1,
}

type config struct {
	Input      string // empty or "-" for stdin
	Output     string
	Decompress bool
	Stdout     bool
	Stats      bool
	Workers    int
	LogFile    string
	Verbose    bool
}

func (c *config) RegisterFlags(flag *flag.FlagSet) {
	// No help here because we put it all in _usage.
	flag.BoolVar(&c.Decompress, "d", false, "")
	flag.StringVar(&c.Output, "o", "", "")
	flag.BoolVar(&c.Stdout, "c", false, "")
	flag.BoolVar(&c.Stats, "stats", false, "")
	flag.IntVar(&c.Workers, "workers", 0, "")
	flag.StringVar(&c.LogFile, "log", "", "")
	flag.BoolVar(&c.Verbose, "verbose", false, "")
}

// FillFrom updates this config object, filling empty values with values from
// the provided struct but not overwriting those that are already set.
func (c *config) FillFrom(o *config) {
	if len(c.Input) == 0 {
		c.Input = o.Input
	}
	if len(c.Output) == 0 {
		c.Output = o.Output
	}
	if c.Workers == 0 {
		c.Workers = o.Workers
	}
	if len(c.LogFile) == 0 {
		c.LogFile = o.LogFile
	}
	c.Decompress = c.Decompress || o.Decompress
	c.Stdout = c.Stdout || o.Stdout
	c.Stats = c.Stats || o.Stats
	c.Verbose = c.Verbose || o.Verbose
}

// Validate reports combinations of options that can't be honored.
func (c *config) Validate() (err error) {
	if c.Workers < 0 {
		err = multierr.Append(err, fmt.Errorf("workers must not be negative: %d", c.Workers))
	}
	if c.Stdout && len(c.Output) > 0 {
		err = multierr.Append(err, errors.New("-c and -o are mutually exclusive"))
	}
	if c.Stats && c.Decompress {
		err = multierr.Append(err, errors.New("-stats is only available when compressing"))
	}
	return err
}

// FromStdin reports whether input is read from stdin.
func (c *config) FromStdin() bool {
	return len(c.Input) == 0 || c.Input == "-"
}

// OutputPath returns the path of the file to write to,
// or an empty string to write to stdout.
func (c *config) OutputPath() (string, error) {
	switch {
	case len(c.Output) > 0:
		return c.Output, nil
	case c.Stdout || c.FromStdin():
		return "", nil
	case !c.Decompress:
		return c.Input + _ext, nil
	}

	out, ok := strings.CutSuffix(c.Input, _ext)
	if !ok || len(out) == 0 {
		return "", fmt.Errorf("%v: unknown suffix, expected %q; use -o to name the output", c.Input, _ext)
	}
	return out, nil
}

// Args rebuilds a list of arguments from which this configuration may be
// parsed.
func (c *config) Args() []string {
	var args []string
	if c.Decompress {
		args = append(args, "-d")
	}
	if len(c.Output) > 0 {
		args = append(args, "-o", c.Output)
	}
	if c.Stdout {
		args = append(args, "-c")
	}
	if c.Stats {
		args = append(args, "-stats")
	}
	if c.Workers != 0 {
		args = append(args, "-workers", strconv.Itoa(c.Workers))
	}
	if len(c.LogFile) > 0 {
		args = append(args, "-log", c.LogFile)
	}
	if c.Verbose {
		args = append(args, "-verbose")
	}
	if len(c.Input) > 0 {
		args = append(args, c.Input)
	}
	return args
}
