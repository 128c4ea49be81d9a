// Package transport renders bit strings as printable text and back.
//
// Bits are taken six at a time, most significant first, and each group is
// written as one character of a 64-character alphabet:
//
//	A-Z a-z 0-9 + /
//
// A final group shorter than six bits is padded with zero bits on the low
// end. Decoding returns the padded bit string; the padding is not marked,
// so callers must know how many of the decoded bits are meaningful.
package transport

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/icza/bitio"
)

const (
	_alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	// GroupSize is the number of bits represented by one character.
	GroupSize = 6
)

var (
	// ErrInvalidBit indicates a bit string with characters other than
	// '0' and '1'.
	ErrInvalidBit = errors.New("invalid bit")

	// ErrInvalidChar indicates text with characters outside the
	// transport alphabet.
	ErrInvalidChar = errors.New("invalid transport character")
)

// _values maps alphabet characters to their 6-bit values
// and everything else to -1.
var _values = func() (values [256]int8) {
	for i := range values {
		values[i] = -1
	}
	for i := 0; i < len(_alphabet); i++ {
		values[_alphabet[i]] = int8(i)
	}
	return values
}()

// EncodedLen reports the number of characters needed to encode nbits bits.
func EncodedLen(nbits int) int {
	return (nbits + GroupSize - 1) / GroupSize
}

// Encode encodes a string of '0' and '1' characters into transport text.
func Encode(bits string) (string, error) {
	var packed bytes.Buffer
	w := bitio.NewWriter(&packed)
	for i := 0; i < len(bits); i++ {
		var bit bool
		switch bits[i] {
		case '0':
		case '1':
			bit = true
		default:
			return "", fmt.Errorf("offset %d: %w %q", i, ErrInvalidBit, bits[i])
		}

		if err := w.WriteBool(bit); err != nil {
			return "", err
		}
	}

	n := EncodedLen(len(bits))
	if pad := n*GroupSize - len(bits); pad > 0 {
		if err := w.WriteBits(0, uint8(pad)); err != nil {
			return "", err
		}
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	r := bitio.NewReader(&packed)
	text := make([]byte, n)
	for i := range text {
		v, err := r.ReadBits(GroupSize)
		if err != nil {
			return "", fmt.Errorf("group %d: %w", i, err)
		}
		text[i] = _alphabet[v]
	}
	return string(text), nil
}

// Decode decodes transport text into a string of '0' and '1' characters.
// The result is always a multiple of six bits long and includes any
// padding added by Encode.
func Decode(text string) (string, error) {
	var packed bytes.Buffer
	w := bitio.NewWriter(&packed)
	for i := 0; i < len(text); i++ {
		v := _values[text[i]]
		if v < 0 {
			return "", fmt.Errorf("offset %d: %w %q", i, ErrInvalidChar, text[i])
		}
		if err := w.WriteBits(uint64(v), GroupSize); err != nil {
			return "", err
		}
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	r := bitio.NewReader(&packed)
	bits := make([]byte, len(text)*GroupSize)
	for i := range bits {
		bit, err := r.ReadBool()
		if err != nil {
			return "", fmt.Errorf("bit %d: %w", i, err)
		}
		bits[i] = '0'
		if bit {
			bits[i] = '1'
		}
	}
	return string(bits), nil
}
