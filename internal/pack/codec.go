// Package pack compresses and decompresses byte sequences into huffpack
// artifacts.
//
// Compression counts byte frequencies, builds a Huffman code from them,
// and writes the frequencies followed by the transport-encoded bit stream.
// Decompression rebuilds the same code from the stored frequencies.
// Every call builds its own tables; nothing is shared between calls.
package pack

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/abhinav/huffpack/internal/artifact"
	"github.com/abhinav/huffpack/internal/huffman"
	"github.com/abhinav/huffpack/internal/transport"
)

var (
	// ErrSourceUnreadable indicates that the input could not be read.
	ErrSourceUnreadable = errors.New("source unreadable")

	// ErrArtifactMalformed indicates an artifact with an invalid header.
	ErrArtifactMalformed = artifact.ErrMalformed

	// ErrCorruptPayload indicates an artifact whose payload does not
	// decode to the number of symbols declared in its header.
	ErrCorruptPayload = errors.New("corrupt payload")
)

// Encode compresses data into an artifact.
func Encode(data []byte) []byte {
	out, _ := encode(huffman.Count(data), data)
	return out
}

// encode builds the artifact for data and reports on the code it chose.
func encode(freqs huffman.FrequencyTable, data []byte) ([]byte, *Report) {
	a := artifact.Artifact{Freqs: freqs}
	r := Report{
		Freqs:     freqs,
		Codes:     huffman.CodeTable{},
		InputSize: len(data),
	}
	if len(freqs) > 0 {
		// BuildTree only fails for empty tables or non-positive counts,
		// neither of which a counted table has.
		root, err := huffman.BuildTree(freqs)
		if err != nil {
			panic(fmt.Sprintf("build tree for counted input: %v", err))
		}
		r.Codes, _ = huffman.GenerateCodes(root)
		r.PayloadBits = r.Codes.EncodedLen(freqs)

		var bits strings.Builder
		bits.Grow(r.PayloadBits)
		for _, b := range data {
			bits.WriteString(r.Codes[b])
		}

		payload, err := transport.Encode(bits.String())
		if err != nil {
			panic(fmt.Sprintf("encode payload: %v", err))
		}
		a.Payload = payload
	}

	var buf bytes.Buffer
	_ = artifact.Write(&buf, &a) // bytes.Buffer writes don't fail
	r.ArtifactSize = buf.Len()
	return buf.Bytes(), &r
}

// Decode decompresses an artifact produced by Encode.
//
// Errors match ErrArtifactMalformed if the header is invalid,
// or ErrCorruptPayload if the payload ends before every symbol declared in
// the header was decoded. Payload past the last symbol is ignored.
func Decode(data []byte) ([]byte, error) {
	a, err := artifact.Read(data)
	if err != nil {
		return nil, err
	}

	total := a.Freqs.Total()
	if total == 0 {
		return []byte{}, nil
	}

	root, err := huffman.BuildTree(a.Freqs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtifactMalformed, err)
	}
	codes, reverse := huffman.GenerateCodes(root)

	nbits := codes.EncodedLen(a.Freqs)
	if want := transport.EncodedLen(nbits); len(a.Payload) < want {
		return nil, fmt.Errorf("%w: payload has %d characters, need %d",
			ErrCorruptPayload, len(a.Payload), want)
	}

	bits, err := transport.Decode(a.Payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
	}

	out := make([]byte, 0, total)
	maxLen := codes.MaxLen()
	var start int // start of the current code in bits
	for i := 0; i < len(bits) && len(out) < total; i++ {
		code := bits[start : i+1]
		if sym, ok := reverse[code]; ok {
			out = append(out, sym)
			start = i + 1
		} else if len(code) >= maxLen {
			return nil, fmt.Errorf("%w: no symbol for %q at bit %d", ErrCorruptPayload, code, start)
		}
	}

	if len(out) < total {
		return nil, fmt.Errorf("%w: decoded %d of %d symbols", ErrCorruptPayload, len(out), total)
	}
	return out, nil
}
