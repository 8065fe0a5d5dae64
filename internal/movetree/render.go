package movetree

import (
	"strconv"
	"strings"
)

// renderItem is one unit of pending work for Text: either a sibling list to
// render or a parenthesis to open or close.
type renderItem struct {
	siblings []*Node
	force    bool
	open     bool
	close    bool
}

// Text renders the tree as movetext. The first sibling at a branch point
// continues the line; every other sibling becomes a parenthesized variation
// whose first move always shows its move number. White moves are numbered
// "N.", Black moves are bare unless they start a variation or resume the
// line after one, where they are numbered "N...".
//
//	1.e4 e5 2.Nf3 Nc6 3.Bb5 Nf6 (3...a6)
func (t *Tree) Text() string {
	var tw tokenWriter
	stack := []renderItem{{siblings: []*Node{t.root}, force: true}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch {
		case it.open:
			tw.open()
		case it.close:
			tw.close()
		case len(it.siblings) == 0:
		default:
			first := it.siblings[0]
			tw.token(t.moveToken(first.data, it.force))

			// LIFO: continuation is pushed first so it renders after the
			// variations of this branch point.
			stack = append(stack, renderItem{siblings: first.children, force: len(it.siblings) > 1})
			for i := len(it.siblings) - 1; i >= 1; i-- {
				stack = append(stack,
					renderItem{close: true},
					renderItem{siblings: it.siblings[i : i+1], force: true},
					renderItem{open: true},
				)
			}
		}
	}
	return tw.String()
}

// LineText renders a single line of moves, numbering White moves and, when
// forceFirst is set, the first move even if Black plays it.
func (t *Tree) LineText(nodes []MoveData, forceFirst bool) string {
	tokens := make([]string, len(nodes))
	for i, d := range nodes {
		tokens[i] = t.moveToken(d, forceFirst && i == 0)
	}
	return strings.Join(tokens, " ")
}

// MoveNumber returns the fullmove number of d and whether White plays it.
func (t *Tree) MoveNumber(d MoveData) (int, bool) {
	h := t.offset + d.Ply - 1
	return h/2 + 1, h%2 == 0
}

func (t *Tree) moveToken(d MoveData, force bool) string {
	n, white := t.MoveNumber(d)
	switch {
	case white:
		return strconv.Itoa(n) + "." + d.SAN
	case force:
		return strconv.Itoa(n) + "..." + d.SAN
	default:
		return d.SAN
	}
}

// PlainLine joins the short algebraic moves of nodes with spaces.
func PlainLine(nodes []MoveData) string {
	sans := make([]string, len(nodes))
	for i, d := range nodes {
		sans[i] = d.SAN
	}
	return strings.Join(sans, " ")
}

// tokenWriter joins move tokens with single spaces, gluing "(" to the next
// token and ")" to the previous one.
type tokenWriter struct {
	sb      strings.Builder
	pending int
}

func (w *tokenWriter) token(s string) {
	if w.sb.Len() > 0 {
		w.sb.WriteByte(' ')
	}
	for ; w.pending > 0; w.pending-- {
		w.sb.WriteByte('(')
	}
	w.sb.WriteString(s)
}

func (w *tokenWriter) open() { w.pending++ }

func (w *tokenWriter) close() { w.sb.WriteByte(')') }

func (w *tokenWriter) String() string { return w.sb.String() }
