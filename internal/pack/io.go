package pack

import (
	"io"
	"os"

	"go.uber.org/multierr"
)

//go:generate mockgen -destination packtest/mock_io.go -package packtest github.com/abhinav/huffpack/internal/pack Source,Sink

// Source supplies the complete input of an operation.
type Source interface {
	ReadAll() ([]byte, error)
}

// Sink receives the complete output of an operation.
// WriteAll is called at most once, and only if the operation succeeded.
type Sink interface {
	WriteAll([]byte) error
}

// ReaderSource is a Source that reads an io.Reader to EOF.
type ReaderSource struct{ R io.Reader }

var _ Source = ReaderSource{}

// ReadAll reads the reader to EOF.
func (s ReaderSource) ReadAll() ([]byte, error) {
	return io.ReadAll(s.R)
}

// WriterSink is a Sink that writes to an io.Writer.
type WriterSink struct{ W io.Writer }

var _ Sink = WriterSink{}

// WriteAll writes bs to the writer.
func (s WriterSink) WriteAll(bs []byte) error {
	_, err := s.W.Write(bs)
	return err
}

// FileSource is a Source that reads the file at the given path.
type FileSource string

var _ Source = FileSource("")

// ReadAll reads the whole file.
func (path FileSource) ReadAll() ([]byte, error) {
	return os.ReadFile(string(path))
}

// FileSink is a Sink that writes to the file at the given path.
// The file is not created or truncated until WriteAll is called.
type FileSink string

var _ Sink = FileSink("")

// WriteAll creates or truncates the file and writes bs to it.
func (path FileSink) WriteAll(bs []byte) (err error) {
	f, err := os.OpenFile(string(path), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	_, err = f.Write(bs)
	return err
}
