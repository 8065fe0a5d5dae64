// Package summary counts how many games of a collection share each opening
// prefix, producing the rows that feed a chapters file.
package summary

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/freeeve/movetree/internal/collection"
)

// DefaultPlies is the prefix length used when Options.Plies is zero.
const DefaultPlies = 14

// Options controls a summary.
type Options struct {
	Plies    int // prefix length in plies
	MinCount int // rows with a count at or below this are dropped
}

// Row is a prefix and the number of records containing it.
type Row struct {
	Count int
	Moves []string
}

// Line returns the prefix as space-separated SAN.
func (r Row) Line() string { return strings.Join(r.Moves, " ") }

// Build collects the distinct main-line prefixes of every record longer
// than Plies and counts, for each, the records whose tree contains it
// anywhere. Rows are sorted by line.
func Build(records []*collection.Record, opts Options) []Row {
	plies := opts.Plies
	if plies <= 0 {
		plies = DefaultPlies
	}

	seen := make(map[string]bool)
	var prefixes [][]string
	for _, rec := range records {
		main := rec.Tree.MainLine()
		if len(main) <= plies {
			continue
		}
		moves := make([]string, plies)
		for i := range moves {
			moves[i] = main[i].SAN
		}
		key := strings.Join(moves, " ")
		if seen[key] {
			continue
		}
		seen[key] = true
		prefixes = append(prefixes, moves)
	}

	var rows []Row
	for _, moves := range prefixes {
		n := 0
		for _, rec := range records {
			if _, ok := rec.Tree.DataAtSAN(moves); ok {
				n++
			}
		}
		if n > opts.MinCount {
			rows = append(rows, Row{Count: n, Moves: moves})
		}
	}
	slices.SortFunc(rows, func(a, b Row) int { return strings.Compare(a.Line(), b.Line()) })
	return rows
}

// Write writes rows as "count<TAB>line".
func Write(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", r.Count, r.Line()); err != nil {
			return err
		}
	}
	return nil
}
