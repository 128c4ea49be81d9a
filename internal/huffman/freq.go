package huffman

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// FrequencyTable maps each byte present in an input to the number of times
// it occurs. Bytes that do not occur have no entry.
//
// The table is the only state an artifact stores about its code:
// BuildTree derives the same tree from equal tables.
type FrequencyTable map[byte]int

// Count counts the occurrences of every byte in data.
func Count(data []byte) FrequencyTable {
	var counts [256]int
	for _, b := range data {
		counts[b]++
	}
	return fromCounts(&counts)
}

// _parallelThreshold is the smallest input that CountParallel will split
// across goroutines. Smaller inputs are counted in place.
var _parallelThreshold = 1 << 16

// CountParallel counts the occurrences of every byte in data, splitting the
// work across up to workers goroutines. Partial counts are summed before
// returning, so the result is always equal to Count(data).
//
// It fails only if ctx is cancelled.
func CountParallel(ctx context.Context, data []byte, workers int) (FrequencyTable, error) {
	if workers <= 1 || len(data) < _parallelThreshold {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return Count(data), nil
	}

	chunk := (len(data) + workers - 1) / workers
	partials := make([][256]int, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= len(data) {
			break
		}
		end := min(start+chunk, len(data))

		counts := &partials[w]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, b := range data[start:end] {
				counts[b]++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	freqs := make(FrequencyTable)
	for i := range partials {
		freqs.Add(fromCounts(&partials[i]))
	}
	return freqs, nil
}

func fromCounts(counts *[256]int) FrequencyTable {
	freqs := make(FrequencyTable)
	for b, n := range counts {
		if n > 0 {
			freqs[byte(b)] = n
		}
	}
	return freqs
}

// Add adds the counts in o to this table.
func (ft FrequencyTable) Add(o FrequencyTable) {
	for b, n := range o {
		ft[b] += n
	}
}

// Total reports the sum of all counts in the table.
// For a table built by Count, this is the length of the input.
func (ft FrequencyTable) Total() int {
	var total int
	for _, n := range ft {
		total += n
	}
	return total
}

// Symbols returns the bytes present in the table in ascending order.
func (ft FrequencyTable) Symbols() []byte {
	syms := make([]byte, 0, len(ft))
	for b := range ft {
		syms = append(syms, b)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i] < syms[j]
	})
	return syms
}
