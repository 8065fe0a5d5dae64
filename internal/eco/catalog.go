// Package eco provides named opening lines: loading them from TSV or TOML
// catalogs, naming positions, and merging lines into variation trees.
package eco

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/freeeve/pgn/v3"

	"github.com/freeeve/movetree/internal/movetree"
	"github.com/freeeve/movetree/internal/oracle"
	"github.com/freeeve/movetree/internal/pgnio"
)

// Line is a named opening line in short algebraic notation.
type Line struct {
	ECO   string   `json:"eco,omitempty"`
	Name  string   `json:"name"`
	Moves []string `json:"moves"`
}

// String returns the moves separated by spaces.
func (l Line) String() string { return strings.Join(l.Moves, " ") }

// Catalog holds opening lines indexed by their final position.
type Catalog struct {
	lines      []Line
	byPosition map[pgn.PackedPosition]int
	invalid    int
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		byPosition: make(map[pgn.PackedPosition]int),
	}
}

// moveNumberRegex matches move numbers like "1." or "12..."
var moveNumberRegex = regexp.MustCompile(`\d+\.+\s*`)

// ParseMoves splits movetext like "1. e4 e5 2. Nf3" into SAN moves,
// dropping move numbers and annotations.
func ParseMoves(text string) []string {
	cleaned := moveNumberRegex.ReplaceAllString(text, "")
	var moves []string
	for _, san := range strings.Fields(cleaned) {
		if san[0] == '$' || san[0] == '{' {
			continue
		}
		moves = append(moves, san)
	}
	return moves
}

// Add validates a line from the standard start and indexes its final
// position. When several lines reach the same position the first one
// added names it.
func (c *Catalog) Add(l Line) error {
	if len(l.Moves) == 0 {
		return fmt.Errorf("line %q has no moves", l.Name)
	}
	pos, err := pgnio.Replay("", l.Moves)
	if err != nil {
		return fmt.Errorf("line %q: %w", l.Name, err)
	}
	c.lines = append(c.lines, l)
	key := pos.Pack()
	if _, ok := c.byPosition[key]; !ok {
		c.byPosition[key] = len(c.lines) - 1
	}
	return nil
}

// LoadDir loads all .tsv and .toml files from a directory.
func (c *Catalog) LoadDir(dir string) error {
	tsv, err := filepath.Glob(filepath.Join(dir, "*.tsv"))
	if err != nil {
		return err
	}
	tomls, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return err
	}
	if len(tsv)+len(tomls) == 0 {
		return fmt.Errorf("no .tsv or .toml files found in %s", dir)
	}

	for _, file := range tsv {
		if err := c.LoadFile(file); err != nil {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}
	for _, file := range tomls {
		if err := c.LoadTOML(file); err != nil {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}
	return nil
}

// LoadFile loads a TSV file of eco, name and movetext columns. Lines that
// fail to replay are skipped and counted by Invalid.
func (c *Catalog) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		// Skip header
		if lineNum == 1 && strings.HasPrefix(line, "eco\t") {
			continue
		}

		parts := strings.SplitN(line, "\t", 3)
		if len(parts) != 3 {
			continue
		}
		if err := c.Add(Line{ECO: parts[0], Name: parts[1], Moves: ParseMoves(parts[2])}); err != nil {
			c.invalid++
		}
	}

	return scanner.Err()
}

type tomlCatalog struct {
	Line []struct {
		ECO   string `toml:"eco"`
		Name  string `toml:"name"`
		Moves string `toml:"moves"`
	} `toml:"line"`
}

// LoadTOML loads a catalog of [[line]] tables. Unlike LoadFile, an invalid
// line is an error: hand-written catalogs are expected to be correct.
func (c *Catalog) LoadTOML(path string) error {
	var doc tomlCatalog
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return err
	}
	for _, l := range doc.Line {
		if err := c.Add(Line{ECO: l.ECO, Name: l.Name, Moves: ParseMoves(l.Moves)}); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the line whose final position is fen.
func (c *Catalog) Lookup(fen string) (Line, bool) {
	gs, err := pgn.NewGame(fen)
	if err != nil {
		return Line{}, false
	}
	return c.lookup(gs.Pack())
}

// Name returns the line reached by playing moves from the standard start,
// transpositions included.
func (c *Catalog) Name(moves []string) (Line, bool) {
	pos, err := pgnio.Replay("", moves)
	if err != nil {
		return Line{}, false
	}
	return c.lookup(pos.Pack())
}

func (c *Catalog) lookup(key pgn.PackedPosition) (Line, bool) {
	i, ok := c.byPosition[key]
	if !ok {
		return Line{}, false
	}
	return c.lines[i], true
}

// Lines returns the lines in load order.
func (c *Catalog) Lines() []Line { return c.lines }

// Len returns the number of lines loaded.
func (c *Catalog) Len() int { return len(c.lines) }

// Invalid returns the number of TSV lines skipped because they did not replay.
func (c *Catalog) Invalid() int { return c.invalid }

// Trees merges the lines into one tree per first move, in order of first
// appearance.
func (c *Catalog) Trees(o oracle.Oracle) ([]*movetree.Tree, error) {
	var trees []*movetree.Tree
	byFirst := make(map[string]*movetree.Tree)
	for _, l := range c.lines {
		first := strings.TrimRight(l.Moves[0], "+#!?")
		t, ok := byFirst[first]
		if !ok {
			var err error
			if t, err = movetree.NewSAN(o, oracle.StartFEN, l.Moves); err != nil {
				return nil, fmt.Errorf("line %q: %w", l.Name, err)
			}
			byFirst[first] = t
			trees = append(trees, t)
			continue
		}
		if err := t.AppendSAN(l.Moves); err != nil {
			return nil, fmt.Errorf("line %q: %w", l.Name, err)
		}
	}
	return trees, nil
}
