package main

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/abhinav/huffpack/internal/pack"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// writeReport writes a table of the symbols in the report, shortest codes
// first, followed by a summary of the sizes.
//
//	SYMBOL  COUNT  CODE
//	"a"         5  0
//	"b"         2  110
//	...
//	11 bytes in, 26 bytes out (236.4%), 23 payload bits
func writeReport(w io.Writer, r *pack.Report) error {
	p := message.NewPrinter(language.English) // for commas between thousands

	syms := r.Freqs.Symbols()
	sort.SliceStable(syms, func(i, j int) bool {
		return len(r.Codes[syms[i]]) < len(r.Codes[syms[j]])
	})

	rows := make([][3]string, 0, len(syms)+1)
	rows = append(rows, [3]string{"SYMBOL", "COUNT", "CODE"})
	for _, sym := range syms {
		rows = append(rows, [3]string{
			strconv.Quote(string([]byte{sym})),
			p.Sprintf("%d", r.Freqs[sym]),
			r.Codes[sym],
		})
	}

	var symWidth, countWidth int
	for _, row := range rows {
		symWidth = max(symWidth, runewidth.StringWidth(row[0]))
		countWidth = max(countWidth, runewidth.StringWidth(row[1]))
	}

	var out strings.Builder
	for _, row := range rows {
		out.WriteString(runewidth.FillRight(row[0], symWidth))
		out.WriteString("  ")
		out.WriteString(runewidth.FillLeft(row[1], countWidth))
		out.WriteString("  ")
		out.WriteString(row[2])
		out.WriteByte('\n')
	}

	if r.InputSize > 0 {
		ratio := 100 * float64(r.ArtifactSize) / float64(r.InputSize)
		p.Fprintf(&out, "%d bytes in, %d bytes out (%.1f%%), %d payload bits\n",
			r.InputSize, r.ArtifactSize, ratio, r.PayloadBits)
	} else {
		p.Fprintf(&out, "%d bytes in, %d bytes out\n", r.InputSize, r.ArtifactSize)
	}

	_, err := io.WriteString(w, out.String())
	return err
}
