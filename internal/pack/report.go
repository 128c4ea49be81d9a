package pack

import (
	"github.com/abhinav/huffpack/internal/huffman"
)

// Report describes the code chosen for an input and the resulting sizes.
type Report struct {
	Freqs huffman.FrequencyTable
	Codes huffman.CodeTable

	InputSize    int // bytes
	PayloadBits  int // Huffman-coded bits before transport padding
	ArtifactSize int // bytes
}

// Analyze compresses data and reports on the result.
func Analyze(data []byte) *Report {
	_, r := encode(huffman.Count(data), data)
	return r
}
