// Package artifact reads and writes the huffpack container format.
//
// An artifact is text of the form:
//
//	<symbol count>\n
//	<symbol> <frequency>\n
//	...
//	<payload>
//
// There is one symbol line per distinct input byte, in ascending byte
// order. Each symbol is the raw byte itself, so it may be any value
// including a space or a newline; readers locate it by position, never by
// searching for delimiters. Counts and frequencies are decimal. The payload
// is the transport-encoded Huffman bit stream.
package artifact

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/abhinav/huffpack/internal/huffman"
)

// ErrMalformed indicates an artifact whose header could not be parsed.
var ErrMalformed = errors.New("malformed artifact")

const (
	// _maxSymbols is the number of distinct byte values.
	_maxSymbols = 256

	// _maxTotal bounds the sum of all frequencies in a header.
	// Codes are at most 255 bits long, so the bit length of any payload
	// described by a header within this bound fits in an int.
	_maxTotal = math.MaxInt / 256
)

// Artifact is a parsed huffpack artifact.
type Artifact struct {
	// Freqs holds the frequency of every symbol in the original input.
	Freqs huffman.FrequencyTable

	// Payload is the transport-encoded bit stream.
	Payload string
}

// Write writes the artifact to w.
func Write(w io.Writer, a *Artifact) error {
	bw := bufio.NewWriter(w)

	buf := strconv.AppendInt(nil, int64(len(a.Freqs)), 10)
	buf = append(buf, '\n')
	for _, sym := range a.Freqs.Symbols() {
		buf = append(buf, sym, ' ')
		buf = strconv.AppendInt(buf, int64(a.Freqs[sym]), 10)
		buf = append(buf, '\n')
	}
	if _, err := bw.Write(buf); err != nil {
		return err
	}

	if _, err := bw.WriteString(a.Payload); err != nil {
		return err
	}
	return bw.Flush()
}

// Read parses an artifact.
//
// Header problems are reported as errors matching ErrMalformed.
// The payload is not validated; trailing line breaks are dropped from it.
func Read(data []byte) (*Artifact, error) {
	p := parser{data: data, line: 1}

	count, err := p.number('\n')
	if err != nil {
		return nil, p.errorf("symbol count: %v", err)
	}
	if count > _maxSymbols {
		return nil, p.errorf("symbol count %d exceeds %d", count, _maxSymbols)
	}

	freqs := make(huffman.FrequencyTable, count)
	var total int
	for i := 0; i < count; i++ {
		p.line++

		// <symbol> SP <frequency> LF, with a single-byte symbol.
		if p.remaining() < 2 {
			return nil, p.errorf("symbol %d of %d: unexpected end of header", i+1, count)
		}
		sym := p.data[p.off]
		if sep := p.data[p.off+1]; sep != ' ' {
			return nil, p.errorf("symbol %d of %d: expected space after symbol, got %q", i+1, count, sep)
		}
		p.off += 2

		if _, ok := freqs[sym]; ok {
			return nil, p.errorf("duplicate symbol %q", sym)
		}

		freq, err := p.number('\n')
		if err != nil {
			return nil, p.errorf("frequency of %q: %v", sym, err)
		}
		if freq < 1 {
			return nil, p.errorf("frequency of %q must be positive", sym)
		}
		if freq > _maxTotal-total {
			return nil, p.errorf("frequencies exceed %d symbols in total", _maxTotal)
		}
		total += freq
		freqs[sym] = freq
	}

	payload := p.data[p.off:]
	for len(payload) > 0 {
		if c := payload[len(payload)-1]; c != '\n' && c != '\r' {
			break
		}
		payload = payload[:len(payload)-1]
	}

	return &Artifact{
		Freqs:   freqs,
		Payload: string(payload),
	}, nil
}

type parser struct {
	data []byte
	off  int
	line int
}

func (p *parser) remaining() int {
	return len(p.data) - p.off
}

// number reads a non-empty run of decimal digits terminated by stop,
// consuming the terminator.
func (p *parser) number(stop byte) (int, error) {
	start := p.off
	for p.off < len(p.data) && isDigit(p.data[p.off]) {
		p.off++
	}
	digits := p.data[start:p.off]

	switch {
	case p.off >= len(p.data):
		return 0, errors.New("unexpected end of header")
	case p.data[p.off] != stop:
		return 0, fmt.Errorf("unexpected %q", p.data[p.off])
	case len(digits) == 0:
		return 0, errors.New("missing number")
	}
	p.off++ // stop

	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", digits)
	}
	return n, nil
}

func (p *parser) errorf(msg string, args ...interface{}) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, p.line, fmt.Sprintf(msg, args...))
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
