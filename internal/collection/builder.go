package collection

import (
	"errors"
	"fmt"
	"io"

	"github.com/freeeve/movetree/internal/movetree"
	"github.com/freeeve/movetree/internal/oracle"
)

// ErrNoMoves is returned for a game without any move.
var ErrNoMoves = errors.New("game has no moves")

// BranchNode is one move of a parsed game's move tree. The first child is
// the main line.
type BranchNode struct {
	SAN      string
	Children []*BranchNode
}

// ParsedGame is a game as produced by a Parser. Moves is a virtual root with
// an empty SAN whose children are the game's first moves.
type ParsedGame struct {
	Headers map[string]string
	Moves   *BranchNode
}

// Parser reads every game from r.
type Parser interface {
	Parse(r io.Reader) ([]ParsedGame, error)
}

// GameError reports the position of the game that failed to build.
type GameError struct {
	Index int
	Err   error
}

func (e *GameError) Error() string { return fmt.Sprintf("game %d: %v", e.Index, e.Err) }

func (e *GameError) Unwrap() error { return e.Err }

// Build converts games into records, in order. The first failing game
// stops the build.
func Build(games []ParsedGame, o oracle.Oracle) ([]*Record, error) {
	records := make([]*Record, 0, len(games))
	for i, g := range games {
		rec, err := BuildGame(g, o)
		if err != nil {
			return nil, &GameError{Index: i, Err: err}
		}
		records = append(records, rec)
	}
	return records, nil
}

// ParseAndBuild parses r with p and builds the records.
func ParseAndBuild(r io.Reader, p Parser, o oracle.Oracle) ([]*Record, error) {
	games, err := p.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return Build(games, o)
}

type pending struct {
	branch *BranchNode
	fen    string   // position after branch
	path   []string // UCI path ending with branch
}

// BuildGame builds one record. The game's start position is its FEN header,
// or the standard start.
func BuildGame(g ParsedGame, o oracle.Oracle) (*Record, error) {
	if g.Moves == nil || len(g.Moves.Children) == 0 {
		return nil, ErrNoMoves
	}
	start := g.Headers["FEN"]
	if start == "" {
		start = oracle.StartFEN
	}

	first := g.Moves.Children[0]
	uci, err := o.ToUCI(start, first.SAN)
	if err != nil {
		return nil, fmt.Errorf("move 1: %w", err)
	}
	tree, err := movetree.NewUCI(o, start, []string{uci})
	if err != nil {
		return nil, err
	}
	root := tree.Root().Data()

	stack := []pending{{branch: first, fen: root.AfterFEN, path: root.Path}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		next := make([]pending, 0, len(p.branch.Children))
		for _, child := range p.branch.Children {
			uci, err := o.ToUCI(p.fen, child.SAN)
			if err != nil {
				return nil, fmt.Errorf("move %d: %w", len(p.path)+1, err)
			}
			if err := tree.AppendAt(p.path, uci); err != nil {
				return nil, err
			}
			path := append(append(make([]string, 0, len(p.path)+1), p.path...), uci)
			d, _ := tree.DataAt(path)
			next = append(next, pending{branch: child, fen: d.AfterFEN, path: path})
		}
		for i := len(next) - 1; i >= 0; i-- {
			stack = append(stack, next[i])
		}
	}

	rec := NewRecord(g.Headers, tree)
	rec.Skipped = len(g.Moves.Children) - 1
	return rec, nil
}
