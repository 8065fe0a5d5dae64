package movetree

import (
	"slices"

	"github.com/freeeve/movetree/internal/oracle"
)

// MoveData is the per-ply payload of a node. Every field is always set.
type MoveData struct {
	Ply       int      // 1-based index of the move within its line
	SAN       string   // short algebraic notation
	UCI       string   // coordinate notation
	BeforeFEN string   // position before the move
	AfterFEN  string   // position after the move
	Path      []string // UCI moves from the root to this node, inclusive
}

// Node is one ply of a Tree. The first child is the main line; later
// children are variations in insertion order.
type Node struct {
	data     MoveData
	children []*Node
}

// Data returns a copy of the node's move data.
func (n *Node) Data() MoveData {
	d := n.data
	d.Path = slices.Clone(n.data.Path)
	return d
}

// Children returns the child nodes. The slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// IsLeaf reports whether the node ends a line.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// newNode resolves the missing notation, applies the move and builds the
// node. Oracle rejections are returned unchanged.
func newNode(o oracle.Oracle, beforeFEN, move string, n oracle.Notation, ply int, prefix []string) (*Node, error) {
	var san, uci string
	var err error
	switch n {
	case oracle.UCI:
		uci = move
		if san, err = o.ToSAN(beforeFEN, uci); err != nil {
			return nil, err
		}
	default:
		if uci, err = o.ToUCI(beforeFEN, move); err != nil {
			return nil, err
		}
		if san, err = o.ToSAN(beforeFEN, uci); err != nil {
			return nil, err
		}
	}
	after, err := o.Apply(beforeFEN, uci)
	if err != nil {
		return nil, err
	}

	path := make([]string, len(prefix)+1)
	copy(path, prefix)
	path[len(prefix)] = uci

	return &Node{data: MoveData{
		Ply:       ply,
		SAN:       san,
		UCI:       uci,
		BeforeFEN: beforeFEN,
		AfterFEN:  after,
		Path:      path,
	}}, nil
}

// findChild returns the node among nodes playing the coordinate move uci.
func findChild(nodes []*Node, uci string) *Node {
	for _, c := range nodes {
		if oracle.SameMove(c.data.UCI, uci, oracle.UCI) {
			return c
		}
	}
	return nil
}
