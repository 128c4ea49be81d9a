// Package huffman implements binary Huffman coding over bytes.
//
// The tree built for a frequency table is fully determined by that table:
// BuildTree orders nodes by frequency and breaks ties with a fixed rule.
// This allows a decoder to rebuild the encoder's code from the stored
// frequencies alone, without transmitting the tree.
package huffman

import (
	"container/heap"
	"errors"
	"fmt"
)

// ErrEmptyTable is returned by BuildTree for a table without symbols.
var ErrEmptyTable = errors.New("frequency table is empty")

// Node is a node in a Huffman tree.
//
// Leaf nodes hold a symbol and its frequency.
// Branch nodes hold the combined frequency of their two children.
type Node struct {
	Symbol byte
	Freq   int

	// Both nil for leaf nodes, both non-nil for branch nodes.
	Left, Right *Node

	// Tie-break key among nodes with equal frequency.
	// Leaves use their symbol value.
	// Branches use 256 plus the order in which they were created.
	key int
}

// IsLeaf reports whether this is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// BuildTree builds a Huffman tree for the given frequency table and returns
// its root. For a single-symbol table, the root is that symbol's leaf.
//
// Nodes are merged lowest-first under the order (Freq, key):
// on equal frequencies, leaves come before branches,
// lower symbols before higher ones,
// and older branches before newer ones.
// The first node removed becomes the left child of the merge.
func BuildTree(freqs FrequencyTable) (*Node, error) {
	if len(freqs) == 0 {
		return nil, ErrEmptyTable
	}

	nodeHeap := make(nodeHeap, 0, len(freqs))
	for _, sym := range freqs.Symbols() {
		freq := freqs[sym]
		if freq <= 0 {
			return nil, fmt.Errorf("symbol %#02x has non-positive frequency %d", sym, freq)
		}
		nodeHeap = append(nodeHeap, &Node{
			Symbol: sym,
			Freq:   freq,
			key:    int(sym),
		})
	}
	heap.Init(&nodeHeap)

	for branches := 0; len(nodeHeap) > 1; branches++ {
		left := heap.Pop(&nodeHeap).(*Node)
		right := heap.Pop(&nodeHeap).(*Node)
		heap.Push(&nodeHeap, &Node{
			Freq:  left.Freq + right.Freq,
			Left:  left,
			Right: right,
			key:   256 + branches,
		})
	}

	return nodeHeap[0], nil
}

type nodeHeap []*Node

func (ns nodeHeap) Len() int { return len(ns) }

func (ns nodeHeap) Less(i, j int) bool {
	if ns[i].Freq != ns[j].Freq {
		return ns[i].Freq < ns[j].Freq
	}
	return ns[i].key < ns[j].key
}

func (ns nodeHeap) Swap(i, j int) {
	ns[i], ns[j] = ns[j], ns[i]
}

func (ns *nodeHeap) Push(e interface{}) {
	*ns = append(*ns, e.(*Node))
}

func (ns *nodeHeap) Pop() interface{} {
	n := len(*ns) - 1
	v := (*ns)[n]
	*ns = (*ns)[:n]
	return v
}
