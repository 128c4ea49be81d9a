package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abhgHuffman "go.abhg.dev/algorithm/huffman"
	"pgregory.net/rapid"
)

func TestBuildTreeEmpty(t *testing.T) {
	t.Parallel()

	_, err := BuildTree(FrequencyTable{})
	assert.ErrorIs(t, err, ErrEmptyTable)

	_, err = BuildTree(nil)
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestBuildTreeNonPositive(t *testing.T) {
	t.Parallel()

	_, err := BuildTree(FrequencyTable{'a': 1, 'b': 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-positive frequency")
}

func TestBuildTreeSingleSymbol(t *testing.T) {
	t.Parallel()

	root, err := BuildTree(FrequencyTable{'a': 4})
	require.NoError(t, err)
	assert.True(t, root.IsLeaf())
	assert.Equal(t, byte('a'), root.Symbol)
	assert.Equal(t, 4, root.Freq)
}

func TestBuildTreeShape(t *testing.T) {
	t.Parallel()

	root, err := BuildTree(Count([]byte("abracadabra")))
	require.NoError(t, err)

	assert.Equal(t, 11, root.Freq)
	require.False(t, root.IsLeaf())

	// The lone 'a' (5) is merged last against the combined rest (6).
	assert.Equal(t, byte('a'), root.Left.Symbol)
	assert.True(t, root.Left.IsLeaf())
	assert.Equal(t, 6, root.Right.Freq)
}

func TestGenerateCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc  string
		give  FrequencyTable
		want  CodeTable
		nbits int
	}{
		{
			desc:  "single symbol",
			give:  FrequencyTable{'a': 4},
			want:  CodeTable{'a': "0"},
			nbits: 4,
		},
		{
			desc:  "two symbols",
			give:  FrequencyTable{'y': 1, 'x': 1},
			want:  CodeTable{'x': "0", 'y': "1"},
			nbits: 2,
		},
		{
			desc: "leaves before branches on ties",
			give: FrequencyTable{'a': 1, 'b': 1, 'c': 1},
			want: CodeTable{
				'c': "0",
				'a': "10",
				'b': "11",
			},
			nbits: 5,
		},
		{
			desc: "abracadabra",
			give: Count([]byte("abracadabra")),
			want: CodeTable{
				'a': "0",
				'c': "100",
				'd': "101",
				'b': "110",
				'r': "111",
			},
			nbits: 23,
		},
		{
			desc: "skewed",
			give: FrequencyTable{'a': 8, 'b': 4, 'c': 2, 'd': 1},
			want: CodeTable{
				'd': "000",
				'c': "001",
				'b': "01",
				'a': "1",
			},
			nbits: 8 + 8 + 6 + 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			root, err := BuildTree(tt.give)
			require.NoError(t, err)

			codes, reverse := GenerateCodes(root)
			assert.Equal(t, tt.want, codes)
			assert.Equal(t, tt.nbits, codes.EncodedLen(tt.give))
			assertCodeInvariants(t, tt.give, codes, reverse)
		})
	}
}

func TestGenerateCodesNil(t *testing.T) {
	t.Parallel()

	codes, reverse := GenerateCodes(nil)
	assert.Empty(t, codes)
	assert.Empty(t, reverse)
}

func TestCodeTableMaxLen(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, CodeTable{}.MaxLen())
	assert.Equal(t, 3, CodeTable{'a': "1", 'b': "000", 'c': "01"}.MaxLen())
}

func TestAllSymbols(t *testing.T) {
	t.Parallel()

	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	freqs := Count(data)
	require.Len(t, freqs, 256)

	root, err := BuildTree(freqs)
	require.NoError(t, err)

	// 256 equally likely symbols form a complete tree of depth 8,
	// with leaves in symbol order.
	codes, reverse := GenerateCodes(root)
	assert.Equal(t, 8, codes.MaxLen())
	assert.Equal(t, "00000000", codes[0x00])
	assert.Equal(t, "11111111", codes[0xff])
	assertCodeInvariants(t, freqs, codes, reverse)
}

func TestCodes_rapid(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		freqs := rapid.MapOf(
			rapid.Byte(),
			rapid.IntRange(1, 1<<20),
		).Filter(func(m map[byte]int) bool {
			return len(m) > 0
		}).Draw(t, "freqs")

		root, err := BuildTree(freqs)
		require.NoError(t, err)
		codes, reverse := GenerateCodes(root)
		assertCodeInvariants(t, freqs, codes, reverse)

		// An independent build from a copy of the table
		// must produce the same codes.
		other := make(FrequencyTable, len(freqs))
		other.Add(freqs)
		root2, err := BuildTree(other)
		require.NoError(t, err)
		codes2, _ := GenerateCodes(root2)
		assert.Equal(t, codes, codes2)

		// Any Huffman code has the minimal weighted length,
		// so ours must match an independent implementation.
		syms := FrequencyTable(freqs).Symbols()
		weights := make([]int, len(syms))
		for i, sym := range syms {
			weights[i] = freqs[sym]
		}
		var want int
		for i, label := range abhgHuffman.Label(2, weights) {
			want += weights[i] * len(label)
		}
		assert.Equal(t, want, codes.EncodedLen(freqs), "weighted code length")
	})
}

func assertCodeInvariants(t require.TestingT, freqs FrequencyTable, codes CodeTable, reverse ReverseCodeTable) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	// 1) Every symbol has a code and nothing else does.
	if !assert.Len(t, codes, len(freqs)) || !assert.Len(t, reverse, len(freqs)) {
		return false
	}

	for sym := range freqs {
		code, ok := codes[sym]
		if !assert.True(t, ok, "no code for %q", sym) {
			return false
		}

		// 2) Codes are non-empty bit strings.
		if !assert.NotEmpty(t, code, "code for %q", sym) ||
			!assert.Empty(t, strings.Trim(code, "01"), "code %q has non-bit characters", code) {
			return false
		}

		// 3) The reverse table is the inverse.
		if !assert.Equal(t, sym, reverse[code], "reverse of %q", code) {
			return false
		}
	}

	// 4) No code is a prefix of another.
	for a, left := range codes {
		for b, right := range codes {
			if a == b {
				continue
			}
			if !assert.False(t, strings.HasPrefix(left, right), "%q is a prefix of %q", right, left) {
				return false
			}
		}
	}

	return true
}
