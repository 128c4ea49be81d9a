package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc  string
		level Level
		want  []string
	}{
		{
			desc:  "debug",
			level: Debug,
			want:  []string{"DEBUG debug", "INFO info", "ERROR error"},
		},
		{
			desc:  "info",
			level: Info,
			want:  []string{"INFO info", "ERROR error"},
		},
		{
			desc:  "error",
			level: Error,
			want:  []string{"ERROR error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var buff bytes.Buffer
			log := New(&buff, tt.level)

			log.Debug("debug")
			log.Info("info")
			log.Error("error")

			assert.Equal(t, unlines(tt.want...), buff.String())
		})
	}
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	log := New(&buff, Debug)

	log.Info("compressed",
		"input", 11,
		"ratio", 0.5,
		"path", "foo bar.txt",
		"ok", true,
		"took", 2*time.Second,
		"empty", "",
	)

	assert.Equal(t, unlines(
		`INFO compressed input=11 ratio=0.5 path="foo bar.txt" ok=true took=2s empty=""`,
	), buff.String())
}

func TestWithName(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	log := New(&buff, Info).WithName("pack")

	log.Info("done", "bytes", 42)
	log.With("file", "x").Info("wrote")

	assert.Equal(t, unlines(
		"INFO done pack.bytes=42",
		"INFO wrote pack.file=x",
	), buff.String())
}

func TestGroupAttr(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	log := New(&buff, Info)

	log.Info("sizes", slog.Group("artifact", "header", 3, "payload", 4))

	assert.Equal(t, unlines("INFO sizes artifact.header=3 artifact.payload=4"), buff.String())
}

func TestTrailingNewline(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	New(&buff, Info).Info("foo\n\n")

	assert.Equal(t, unlines("INFO foo"), buff.String())
}

func TestOmitEmpty(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	log := New(&buff, Info)

	log.Info("write",
		OmitEmpty(slog.String, "output", ""),
		OmitEmpty(slog.Int, "size", 3),
	)

	assert.Equal(t, unlines("INFO write size=3"), buff.String())
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	assert.False(t, Discard.Enabled(context.Background(), Error))
	assert.Same(t, Discard, OrDiscard(nil))
	Discard.WithName("x").Error("nothing") // must not panic
	New(io.Discard, Debug).Debug("nothing")
}

func unlines(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}
