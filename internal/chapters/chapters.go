// Package chapters turns a summary file of grouped opening lines into a
// study: one merged variation tree per chapter, titled by the moves its
// lines share.
//
// The input is split into blocks by blank lines. A single-line block
// "[Title] base moves" opens a section; every other block is a chapter whose
// rows are "count<TAB>moves". Rows without a tab are ignored. Move numbers
// in the base line and the rows are dropped.
package chapters

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/freeeve/movetree/internal/eco"
	"github.com/freeeve/movetree/internal/movetree"
	"github.com/freeeve/movetree/internal/oracle"
)

var sectionRe = regexp.MustCompile(`^\[([^\]]*)\](.*)$`)

var (
	// ErrNoLines is returned for a chapter block without any row.
	ErrNoLines = errors.New("chapter has no lines")
	// ErrSectionAfterChapters is returned when a file mixes untitled
	// chapters with sections.
	ErrSectionAfterChapters = errors.New("section header after untitled chapters")
)

// Row is one line of a chapter with the number of games that reach it.
type Row struct {
	Count int
	Moves []string
}

// Spec is a parsed chapter before its tree is built.
type Spec struct {
	Section string
	Base    []string // section base line, SAN
	Rows    []Row
}

// Input is a parsed chapters file.
type Input struct {
	Sectioned bool
	Chapters  []Spec
}

// Parse reads a chapters file.
func Parse(r io.Reader) (*Input, error) {
	blocks, err := splitBlocks(r)
	if err != nil {
		return nil, err
	}

	in := &Input{}
	var section string
	var base []string
	for i, block := range blocks {
		if m := sectionRe.FindStringSubmatch(block); m != nil {
			if i > 0 && !in.Sectioned {
				return nil, ErrSectionAfterChapters
			}
			in.Sectioned = true
			section = m[1]
			base = eco.ParseMoves(m[2])
			continue
		}
		spec := Spec{Section: section, Base: base}
		for _, line := range strings.Split(block, "\n") {
			count, moves, ok := strings.Cut(line, "\t")
			if !ok {
				continue
			}
			n, _ := strconv.Atoi(strings.TrimSpace(count))
			spec.Rows = append(spec.Rows, Row{Count: n, Moves: eco.ParseMoves(moves)})
		}
		if len(spec.Rows) == 0 {
			return nil, fmt.Errorf("block %d: %w", i+1, ErrNoLines)
		}
		in.Chapters = append(in.Chapters, spec)
	}
	return in, nil
}

// splitBlocks returns the trimmed, non-empty blank-line separated blocks.
func splitBlocks(r io.Reader) ([]string, error) {
	var blocks []string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			blocks = append(blocks, strings.Join(cur, "\n"))
			cur = nil
		}
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return blocks, nil
}

// Chapter is a built chapter.
type Chapter struct {
	Section string
	Title   string
	Tree    *movetree.Tree
}

// Build merges each chapter's rows into a tree. trimPlies moves of the
// shared trunk are left out of titles, plus the section base line.
func Build(in *Input, o oracle.Oracle, trimPlies int) ([]Chapter, error) {
	out := make([]Chapter, 0, len(in.Chapters))
	for i, spec := range in.Chapters {
		tree, err := buildTree(o, spec.Rows)
		if err != nil {
			return nil, fmt.Errorf("chapter %d: %w", i+1, err)
		}
		out = append(out, Chapter{
			Section: spec.Section,
			Title:   Title(tree, trimPlies+len(spec.Base)),
			Tree:    tree,
		})
	}
	return out, nil
}

func buildTree(o oracle.Oracle, rows []Row) (*movetree.Tree, error) {
	var tree *movetree.Tree
	for _, row := range rows {
		if len(row.Moves) == 0 {
			continue
		}
		if tree == nil {
			t, err := movetree.NewSAN(o, oracle.StartFEN, row.Moves)
			if err != nil {
				return nil, err
			}
			tree = t
			continue
		}
		if err := tree.AppendSAN(row.Moves); err != nil {
			return nil, err
		}
	}
	if tree == nil {
		return nil, ErrNoLines
	}
	return tree, nil
}

// Title names a tree by its trunk, skipping the first trim plies. When the
// whole trunk is trimmed the first alternatives are listed instead.
func Title(t *movetree.Tree, trim int) string {
	trunk, _ := t.AllNodesOnPath(t.PathUntilFirstDivergence())
	if trim < len(trunk) {
		return t.LineText(trunk[trim:], true)
	}
	vars := t.FirstVariations()
	if len(vars) == 0 {
		return t.LineText(trunk[len(trunk)-1:], true)
	}
	names := make([]string, len(vars))
	for i := range vars {
		names[i] = t.LineText(vars[i:i+1], true)
	}
	return strings.Join(names, ", ")
}

// Render writes the chapters as PGN games separated by blank lines.
func Render(chs []Chapter, sectioned bool) string {
	parts := make([]string, len(chs))
	for i, ch := range chs {
		if sectioned {
			parts[i] = fmt.Sprintf("[Section %q]\n[Chapter %q]\n\n%s", ch.Section, ch.Title, ch.Tree.Text())
		} else {
			parts[i] = fmt.Sprintf("[Event %q]\n\n%s", ch.Title, ch.Tree.Text())
		}
	}
	return strings.Join(parts, "\n\n")
}

// LeafLine is one complete line of a tree.
type LeafLine struct {
	Name  string // numbered movetext
	Moves string // bare SAN moves
}

// Leaves lists the lines of t ending at its leaves.
func Leaves(t *movetree.Tree) []LeafLine {
	leaves := t.AllLeaves()
	out := make([]LeafLine, len(leaves))
	for i, leaf := range leaves {
		nodes, _ := t.AllNodesOnPath(leaf.Path)
		out[i] = LeafLine{Name: t.LineText(nodes, false), Moves: movetree.PlainLine(nodes)}
	}
	return out
}
