package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/freeeve/movetree/internal/collection"
	"github.com/freeeve/movetree/internal/pgnio"
)

// readLines reads one move sequence per line. Rows of a summary file
// ("count<TAB>moves") contribute their moves; blank lines and lines
// starting with # are skipped.
func readLines(r io.Reader) ([][]string, error) {
	var lines [][]string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, moves, ok := strings.Cut(line, "\t"); ok {
			line = moves
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			lines = append(lines, fields)
		}
	}
	return lines, scanner.Err()
}

func readLinesFile(path string) ([][]string, error) {
	r, err := pgnio.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return readLines(r)
}

// readRecords parses and builds every game of a PGN file.
func (c *CLI) readRecords(path string) ([]*collection.Record, error) {
	r, err := pgnio.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	recs, err := collection.ParseAndBuild(r, collection.PGNParser{}, c.Oracle)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.Logger.Info().Str("file", path).Int("games", len(recs)).Msg("games loaded")
	return recs, nil
}

// output returns w, or a file created at path when path is set.
func output(w io.Writer, path string) (io.Writer, func() error, error) {
	if path == "" {
		return w, func() error { return nil }, nil
	}
	f, err := pgnio.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
