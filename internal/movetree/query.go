package movetree

import (
	"slices"

	"github.com/freeeve/movetree/internal/oracle"
)

// NodeAt returns the node at a coordinate path. A missing path is reported
// with ok == false.
func (t *Tree) NodeAt(path []string) (*Node, bool) {
	return t.lookup(path, oracle.UCI)
}

// NodeAtSAN returns the node at a short algebraic path.
func (t *Tree) NodeAtSAN(path []string) (*Node, bool) {
	return t.lookup(path, oracle.SAN)
}

// DataAt returns the move data at a coordinate path.
func (t *Tree) DataAt(path []string) (MoveData, bool) {
	n, ok := t.NodeAt(path)
	if !ok {
		return MoveData{}, false
	}
	return n.Data(), true
}

// DataAtSAN returns the move data at a short algebraic path.
func (t *Tree) DataAtSAN(path []string) (MoveData, bool) {
	n, ok := t.NodeAtSAN(path)
	if !ok {
		return MoveData{}, false
	}
	return n.Data(), true
}

// ChildrenAt returns the data of the children of the node at a coordinate
// path, in main-line-first order.
func (t *Tree) ChildrenAt(path []string) ([]MoveData, bool) {
	n, ok := t.NodeAt(path)
	if !ok {
		return nil, false
	}
	return collect(n.children), true
}

func (t *Tree) lookup(path []string, nt oracle.Notation) (*Node, bool) {
	if len(path) == 0 {
		return nil, false
	}
	n, matched := t.match(path, nt)
	if matched != len(path) {
		return nil, false
	}
	return n, true
}

// AllLeaves returns every node without children, depth first with the main
// line first. Each leaf's Path reconstructs its complete line.
func (t *Tree) AllLeaves() []MoveData {
	var leaves []MoveData
	stack := []*Node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.IsLeaf() {
			leaves = append(leaves, n.Data())
			continue
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
	return leaves
}

// PathUntilFirstDivergence follows the main line from the root and returns
// the path up to and including the first node that does not have exactly one
// child: the first branch point, or the end of the line when there is none.
func (t *Tree) PathUntilFirstDivergence() []string {
	n := t.root
	for len(n.children) == 1 {
		n = n.children[0]
	}
	return slices.Clone(n.data.Path)
}

// AllNodesOnPath returns the data of every node from the root to the node at
// a coordinate path.
func (t *Tree) AllNodesOnPath(path []string) ([]MoveData, bool) {
	if len(path) == 0 {
		return nil, false
	}
	nodes := make([]MoveData, 0, len(path))
	level := []*Node{t.root}
	for _, mv := range path {
		n := findChild(level, mv)
		if n == nil {
			return nil, false
		}
		nodes = append(nodes, n.Data())
		level = n.children
	}
	return nodes, true
}

// MainLine returns the chain of first children starting at the root.
func (t *Tree) MainLine() []MoveData {
	var line []MoveData
	for n := t.root; n != nil; {
		line = append(line, n.Data())
		if n.IsLeaf() {
			break
		}
		n = n.children[0]
	}
	return line
}

// FirstVariations returns the children of the first branch point on the
// main line, or nil when the tree has no branches.
func (t *Tree) FirstVariations() []MoveData {
	n := t.root
	for len(n.children) == 1 {
		n = n.children[0]
	}
	if len(n.children) == 0 {
		return nil
	}
	return collect(n.children)
}

func collect(nodes []*Node) []MoveData {
	out := make([]MoveData, len(nodes))
	for i, n := range nodes {
		out[i] = n.Data()
	}
	return out
}
