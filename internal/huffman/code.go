package huffman

// CodeTable maps symbols to their codes.
// Codes are strings of '0' and '1' characters.
type CodeTable map[byte]string

// ReverseCodeTable maps codes back to their symbols.
type ReverseCodeTable map[string]byte

// GenerateCodes walks the tree rooted at root and returns the code for
// every leaf and the inverse mapping. A left edge contributes '0' and a
// right edge '1'.
//
// If root is itself a leaf, its symbol is assigned the code "0"
// so that every symbol has a non-empty code.
func GenerateCodes(root *Node) (CodeTable, ReverseCodeTable) {
	codes := make(CodeTable)
	reverse := make(ReverseCodeTable)
	if root == nil {
		return codes, reverse
	}

	if root.IsLeaf() {
		codes[root.Symbol] = "0"
		reverse["0"] = root.Symbol
		return codes, reverse
	}

	// Labels are built in a shared buffer;
	// string conversion copies them at the leaves.
	var walk func(*Node, []byte)
	walk = func(n *Node, prefix []byte) {
		if n.IsLeaf() {
			code := string(prefix)
			codes[n.Symbol] = code
			reverse[code] = n.Symbol
			return
		}

		walk(n.Left, append(prefix, '0'))
		walk(n.Right, append(prefix, '1'))
	}
	walk(root, make([]byte, 0, 32))

	return codes, reverse
}

// EncodedLen reports the number of bits needed to encode an input with the
// given frequencies using this table.
func (ct CodeTable) EncodedLen(freqs FrequencyTable) int {
	var bits int
	for sym, n := range freqs {
		bits += n * len(ct[sym])
	}
	return bits
}

// MaxLen reports the length of the longest code in the table.
func (ct CodeTable) MaxLen() int {
	var longest int
	for _, code := range ct {
		longest = max(longest, len(code))
	}
	return longest
}
