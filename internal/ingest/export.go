package ingest

import (
	"bufio"
	"fmt"
	"io"
	"slices"

	"github.com/freeeve/movetree/internal/movetree"
	"github.com/freeeve/movetree/internal/oracle"
)

// roster is the order of the tags every PGN game starts with.
var roster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// WritePGN writes games as PGN, main lines only.
func WritePGN(w io.Writer, games []GameRef, o oracle.Oracle) error {
	bw := bufio.NewWriter(w)
	for i, g := range games {
		if i > 0 {
			bw.WriteString("\n")
		}
		text, err := movetext(g, o)
		if err != nil {
			return fmt.Errorf("%s game %d: %w", g.File, g.Index, err)
		}
		for _, k := range tagOrder(g.Tags) {
			fmt.Fprintf(bw, "[%s %q]\n", k, g.Tags[k])
		}
		fmt.Fprintf(bw, "\n%s\n", text)
	}
	return bw.Flush()
}

func movetext(g GameRef, o oracle.Oracle) (string, error) {
	result := g.Tags["Result"]
	if result == "" {
		result = "*"
	}
	if len(g.Moves) == 0 {
		return result, nil
	}
	start := g.Tags["FEN"]
	if start == "" {
		start = oracle.StartFEN
	}
	tree, err := movetree.NewUCI(o, start, g.Moves)
	if err != nil {
		return "", err
	}
	return tree.Text() + " " + result, nil
}

func tagOrder(tags map[string]string) []string {
	keys := make([]string, 0, len(tags))
	for _, k := range roster {
		if _, ok := tags[k]; ok {
			keys = append(keys, k)
		}
	}
	var rest []string
	for k := range tags {
		if !slices.Contains(roster, k) {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)
	return append(keys, rest...)
}
