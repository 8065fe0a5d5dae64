package movetree

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freeeve/movetree/internal/oracle"
)

func fields(s string) []string { return strings.Fields(s) }

func newSAN(t *testing.T, lines ...string) *Tree {
	t.Helper()
	tree, err := NewSAN(oracle.NewChess(), oracle.StartFEN, fields(lines[0]))
	require.NoError(t, err)
	for _, l := range lines[1:] {
		require.NoError(t, tree.AppendSAN(fields(l)))
	}
	return tree
}

func sans(nodes []MoveData) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.SAN
	}
	return out
}

func TestRuyLopezScenario(t *testing.T) {
	tree := newSAN(t,
		"e4 e5 Nf3 Nc6 Bb5 Nf6",
		"e4 e5 Nf3 Nc6 Bb5 a6",
	)

	assert.Equal(t, 7, tree.Len())

	trunk := tree.PathUntilFirstDivergence()
	assert.Equal(t, []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5"}, trunk)

	children, ok := tree.ChildrenAt(trunk)
	require.True(t, ok)
	assert.Equal(t, []string{"Nf6", "a6"}, sans(children))

	for i, uci := range trunk[:4] {
		kids, ok := tree.ChildrenAt(trunk[:i+1])
		require.True(t, ok, uci)
		assert.Len(t, kids, 1, "trunk node %s", uci)
	}

	assert.Equal(t, "1.e4 e5 2.Nf3 Nc6 3.Bb5 Nf6 (3...a6)", tree.Text())
}

func TestAppendIdempotent(t *testing.T) {
	tree := newSAN(t, "e4 e5 Nf3 Nc6", "e4 e5 Nf3 Nf6")
	before := tree.Text()
	size := tree.Len()

	require.NoError(t, tree.AppendSAN(fields("e4 e5 Nf3 Nc6")))
	require.NoError(t, tree.AppendSAN(fields("e4 e5")))
	require.NoError(t, tree.AppendUCI([]string{"e2e4", "e7e5", "g1f3", "g8f6"}))

	assert.Equal(t, size, tree.Len())
	assert.Equal(t, before, tree.Text())
}

func TestAppendIdempotentSpellings(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		size  int
		text  string
	}{
		{
			name:  "disambiguated knight twice",
			lines: []string{"e4 e5 Ngf3", "e4 e5 Ngf3"},
			size:  3,
			text:  "1.e4 e5 2.Nf3",
		},
		{
			name:  "canonical then disambiguated",
			lines: []string{"e4 e5 Nf3", "e4 e5 Ngf3 Nc6"},
			size:  4,
			text:  "1.e4 e5 2.Nf3 Nc6",
		},
		{
			name:  "annotations",
			lines: []string{"e4 e5 Nf3 Nc6 Bb5 a6", "e4! e5 Nf3 Nc6 Bb5!? a6?!"},
			size:  6,
			text:  "1.e4 e5 2.Nf3 Nc6 3.Bb5 a6",
		},
		{
			name:  "check with and without suffix",
			lines: []string{"e4 e5 Bc4 Nc6 Bxf7+", "e4 e5 Bc4 Nc6 Bxf7", "e4 e5 Bc4 Nc6 Bxf7+ Kxf7"},
			size:  6,
			text:  "1.e4 e5 2.Bc4 Nc6 3.Bxf7+ Kxf7",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := newSAN(t, tt.lines...)
			assert.Equal(t, tt.size, tree.Len())
			assert.Equal(t, tt.text, tree.Text())

			// Appending every line again changes nothing.
			for _, l := range tt.lines {
				require.NoError(t, tree.AppendSAN(fields(l)))
			}
			assert.Equal(t, tt.size, tree.Len())
			assert.Equal(t, tt.text, tree.Text())
		})
	}
}

func TestLookupSpellings(t *testing.T) {
	tree := newSAN(t, "e4 e5 Nf3 Nc6")

	d, ok := tree.DataAtSAN(fields("e4! e5 Ngf3"))
	require.True(t, ok)
	assert.Equal(t, "Nf3", d.SAN)

	_, ok = tree.DataAtSAN(fields("e4 e5 Nh3"))
	assert.False(t, ok)
	_, ok = tree.DataAtSAN(fields("e4 e5 Qh8"))
	assert.False(t, ok)
}

func TestPrefixSharing(t *testing.T) {
	tree := newSAN(t, "e4 e5 Nf3", "e4! e5 Bc4", "e4 e5 Ngf3")

	assert.Equal(t, 4, tree.Len())
	kids, ok := tree.ChildrenAt([]string{"e2e4", "e7e5"})
	require.True(t, ok)
	assert.Equal(t, []string{"Nf3", "Bc4"}, sans(kids))

	kids, ok = tree.ChildrenAt([]string{"e2e4"})
	require.True(t, ok)
	assert.Len(t, kids, 1)

	assert.Len(t, tree.PathUntilFirstDivergence(), 2)
}

func TestRoundTrip(t *testing.T) {
	line := fields("d4 Nf6 c4 e6 g3 d5 Bg2 dxc4 Nf3 Be7")
	tree := newSAN(t, strings.Join(line, " "))

	leaves := tree.AllLeaves()
	require.Len(t, leaves, 1)
	nodes, ok := tree.AllNodesOnPath(leaves[0].Path)
	require.True(t, ok)
	assert.Equal(t, line, sans(nodes))

	for i, n := range nodes {
		assert.Equal(t, i+1, n.Ply)
		assert.Len(t, n.Path, n.Ply)
		if i > 0 {
			assert.Equal(t, nodes[i-1].AfterFEN, n.BeforeFEN)
		}
	}
}

func TestLeafCoverage(t *testing.T) {
	lines := []string{
		"e4 e5 Nf3 Nc6 Bb5 Nf6",
		"e4 e5 Nf3 Nc6 Bb5 a6 Ba4 Nf6 O-O Be7 Re1 b5 Bb3 O-O c3 d5",
		"e4 e5 Nf3 Nc6 Bb5 a6 Ba4 Nf6 O-O Nxe4",
		"e4 e5 Nf3 Nc6 Bb5 a6 Bxc6",
		"e4 e5 Nf3 Nc6 Bc4",
		"e4 e5 Nf3 Nc6 Bc4 Nf6",
		"e4 c5 Nf3 d6 d4 cxd4 Nxd4 Nf6 Nc3 a6",
		"e4 c5 c3",
	}
	tree := newSAN(t, lines...)

	var leafLines []string
	for _, leaf := range tree.AllLeaves() {
		nodes, ok := tree.AllNodesOnPath(leaf.Path)
		require.True(t, ok)
		leafLines = append(leafLines, PlainLine(nodes))
	}

	for _, l := range lines {
		d, ok := tree.DataAtSAN(fields(l))
		require.True(t, ok, l)
		nodes, ok := tree.AllNodesOnPath(d.Path)
		require.True(t, ok)
		assert.Equal(t, l, PlainLine(nodes))
	}
	// "Bc4" is extended by "Bc4 Nf6" and is no longer a leaf.
	assert.NotContains(t, leafLines, "e4 e5 Nf3 Nc6 Bc4")
	assert.Contains(t, leafLines, "e4 e5 Nf3 Nc6 Bc4 Nf6")
	assert.Len(t, leafLines, len(lines)-1)
	assert.Equal(t, lines[0], leafLines[0])
}

func TestIllegalMoveLeavesTreeUnchanged(t *testing.T) {
	tree := newSAN(t, "e4 e5 Nf3")
	before := tree.Text()
	size := tree.Len()

	tests := []struct {
		name string
		seq  string
	}{
		{"from the start position", "Qh5"},
		{"after shared prefix", "e4 Qh5"},
		{"deep in a new chain", "e4 e5 Nc3 Nf6 Qh8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tree.AppendSAN(fields(tt.seq))
			require.Error(t, err)
			assert.True(t, errors.Is(err, oracle.ErrIllegalMove), "got %v", err)
			assert.Equal(t, size, tree.Len())
			assert.Equal(t, before, tree.Text())
		})
	}
}

func TestNewErrors(t *testing.T) {
	o := oracle.NewChess()

	_, err := NewSAN(o, oracle.StartFEN, nil)
	assert.ErrorIs(t, err, ErrEmptySequence)

	_, err = NewSAN(o, oracle.StartFEN, []string{"Qh5"})
	assert.ErrorIs(t, err, oracle.ErrIllegalMove)

	_, err = NewSAN(o, oracle.StartFEN, fields("e4 e5 Ke3"))
	assert.ErrorIs(t, err, oracle.ErrIllegalMove)
}

func TestRootMismatch(t *testing.T) {
	tree := newSAN(t, "e4 e5")
	err := tree.AppendSAN(fields("d4 d5"))
	assert.ErrorIs(t, err, ErrRootMismatch)
	assert.Equal(t, 2, tree.Len())
}

func TestAppendAt(t *testing.T) {
	tree := newSAN(t, "e4 e5")

	require.NoError(t, tree.AppendAt([]string{"e2e4"}, "c7c5"))
	require.NoError(t, tree.AppendAt([]string{"e2e4", "c7c5"}, "g1f3"))
	require.NoError(t, tree.AppendAt([]string{"e4"}, "e5"))

	kids, ok := tree.ChildrenAt([]string{"e2e4"})
	require.True(t, ok)
	assert.Equal(t, []string{"e5", "c5"}, sans(kids))
	assert.Equal(t, "1.e4 e5 (1...c5 2.Nf3)", tree.Text())
}

func TestNotationDetection(t *testing.T) {
	tree, err := New(oracle.NewChess(), oracle.StartFEN, []string{"e2e4", "c7c5"})
	require.NoError(t, err)
	require.NoError(t, tree.Append(fields("e4 e6")))

	root := tree.Root().Data()
	assert.Equal(t, "e4", root.SAN)
	assert.Equal(t, "e2e4", root.UCI)
	assert.Equal(t, "1.e4 c5 (1...e6)", tree.Text())
}

func TestNonStandardStart(t *testing.T) {
	afterE4 := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"
	tree, err := NewSAN(oracle.NewChess(), afterE4, fields("e5 Nf3 Nc6"))
	require.NoError(t, err)
	require.NoError(t, tree.AppendSAN(fields("e5 Nf3 d6")))

	assert.Equal(t, "1...e5 2.Nf3 Nc6 (2...d6)", tree.Text())

	n, white := tree.MoveNumber(tree.Root().Data())
	assert.Equal(t, 1, n)
	assert.False(t, white)
}
