// Package movetree merges chess move sequences into a single variation tree
// and renders it back as numbered movetext.
//
// A Tree has exactly one root move. Lines are merged by prefix matching:
// the longest existing prefix is reused and the remaining moves hang off the
// last matched node as a new, last child. The first child of every node is
// its main line. Trees are not safe for concurrent mutation.
package movetree

import (
	"errors"
	"fmt"

	"github.com/freeeve/movetree/internal/oracle"
)

var (
	// ErrEmptySequence is returned when a tree is created from no moves.
	ErrEmptySequence = errors.New("empty move sequence")
	// ErrRootMismatch is returned when a sequence does not start with the
	// tree's root move.
	ErrRootMismatch = errors.New("sequence does not start with the root move")
)

// Tree is a variation tree rooted at a single move.
type Tree struct {
	oracle oracle.Oracle
	start  string
	offset int // half-moves played before the start position
	root   *Node
	size   int
}

// New builds a tree from startFEN and a first sequence whose notation is
// detected from its moves.
func New(o oracle.Oracle, startFEN string, first []string) (*Tree, error) {
	return newTree(o, startFEN, first, oracle.DetectNotation(first))
}

// NewSAN builds a tree from a sequence in short algebraic notation.
func NewSAN(o oracle.Oracle, startFEN string, first []string) (*Tree, error) {
	return newTree(o, startFEN, first, oracle.SAN)
}

// NewUCI builds a tree from a sequence in coordinate notation.
func NewUCI(o oracle.Oracle, startFEN string, first []string) (*Tree, error) {
	return newTree(o, startFEN, first, oracle.UCI)
}

func newTree(o oracle.Oracle, startFEN string, first []string, nt oracle.Notation) (*Tree, error) {
	if len(first) == 0 {
		return nil, ErrEmptySequence
	}
	root, err := newNode(o, startFEN, first[0], nt, 1, nil)
	if err != nil {
		return nil, fmt.Errorf("root move: %w", err)
	}
	offset := (oracle.FullMoveNumber(startFEN) - 1) * 2
	if oracle.BlackToMove(startFEN) {
		offset++
	}
	t := &Tree{
		oracle: o,
		start:  startFEN,
		offset: offset,
		root:   root,
		size:   1,
	}
	if err := t.append(first, nt); err != nil {
		return nil, err
	}
	return t, nil
}

// Append merges seq into the tree, detecting its notation.
func (t *Tree) Append(seq []string) error {
	return t.append(seq, oracle.DetectNotation(seq))
}

// AppendSAN merges a short algebraic sequence into the tree.
func (t *Tree) AppendSAN(seq []string) error { return t.append(seq, oracle.SAN) }

// AppendUCI merges a coordinate sequence into the tree.
func (t *Tree) AppendUCI(seq []string) error { return t.append(seq, oracle.UCI) }

// AppendAt adds move as a child of the node at path. Path and move share one
// notation. Missing path moves are created the same way Append creates them.
func (t *Tree) AppendAt(path []string, move string) error {
	seq := make([]string, 0, len(path)+1)
	seq = append(seq, path...)
	seq = append(seq, move)
	return t.Append(seq)
}

// append walks the shared prefix and hangs the rest of seq under the last
// matched node as a single new chain. The chain is validated before it is
// linked, so a failing append leaves the tree unchanged.
func (t *Tree) append(seq []string, nt oracle.Notation) error {
	if len(seq) == 0 {
		return nil
	}
	parent, matched := t.match(seq, nt)
	if matched == len(seq) {
		return nil
	}
	if parent == nil {
		// An illegal first move is reported as such, not as a mismatch.
		if _, err := newNode(t.oracle, t.start, seq[0], nt, 1, nil); err != nil {
			return fmt.Errorf("move 1: %w", err)
		}
		return fmt.Errorf("%w: %q", ErrRootMismatch, seq[0])
	}

	var head, tail *Node
	prev := parent
	for i, mv := range seq[matched:] {
		child, err := newNode(t.oracle, prev.data.AfterFEN, mv, nt, prev.data.Ply+1, prev.data.Path)
		if err != nil {
			return fmt.Errorf("move %d: %w", matched+i+1, err)
		}
		if head == nil {
			head = child
		} else {
			tail.children = append(tail.children, child)
		}
		tail = child
		prev = child
	}
	parent.children = append(parent.children, head)
	t.size += len(seq) - matched
	return nil
}

// match returns the deepest node matching a prefix of seq and the prefix
// length. The node is nil when even the root does not match. SAN moves are
// resolved against the position of each level, so any legal spelling of a
// move ("Ngf3", "e8Q", "Nf3+") finds the node holding it.
func (t *Tree) match(seq []string, nt oracle.Notation) (*Node, int) {
	var last *Node
	level := []*Node{t.root}
	fen := t.start
	for i, mv := range seq {
		uci := mv
		if nt == oracle.SAN {
			resolved, err := t.oracle.ToUCI(fen, mv)
			if err != nil {
				return last, i
			}
			uci = resolved
		}
		next := findChild(level, uci)
		if next == nil {
			return last, i
		}
		last = next
		level = next.children
		fen = next.data.AfterFEN
	}
	return last, len(seq)
}

// Root returns the root node.
func (t *Tree) Root() *Node { return t.root }

// StartFEN returns the position the tree was created from.
func (t *Tree) StartFEN() string { return t.start }

// Len returns the number of nodes.
func (t *Tree) Len() int { return t.size }
