package movetree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "single move",
			lines: []string{"e4"},
			want:  "1.e4",
		},
		{
			name:  "linear",
			lines: []string{"e4 e5 Nf3 Nc6 Bb5"},
			want:  "1.e4 e5 2.Nf3 Nc6 3.Bb5",
		},
		{
			name:  "white variation",
			lines: []string{"e4 e5 Nf3", "e4 e5 Nc3", "e4 e5 f4"},
			want:  "1.e4 e5 2.Nf3 (2.Nc3) (2.f4)",
		},
		{
			name: "black reply after a branch is numbered",
			lines: []string{
				"e4 e5 Nf3 Nc6 Bb5 a6 Ba4 Nf6",
				"e4 e5 Nf3 Nc6 Bb5 a6 Bxc6",
				"e4 e5 Nf3 Nc6 Bc4",
				"e4 c5",
			},
			want: "1.e4 e5 (1...c5) 2.Nf3 Nc6 3.Bb5 (3.Bc4) 3...a6 4.Ba4 (4.Bxc6) 4...Nf6",
		},
		{
			name: "nested variations",
			lines: []string{
				"d4 d5 c4 e6 Nc3 Nf6",
				"d4 d5 c4 c6 Nf3 Nf6 Nc3 e6",
				"d4 d5 c4 c6 Nc3",
			},
			want: "1.d4 d5 2.c4 e6 (2...c6 3.Nf3 (3.Nc3) 3...Nf6 4.Nc3 e6) 3.Nc3 Nf6",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := newSAN(t, tt.lines...)
			got := tree.Text()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, tree.Text(), "rendering must be deterministic")
		})
	}
}

func TestLineText(t *testing.T) {
	tree := newSAN(t, "e4 e5 Nf3 Nc6 Bb5 a6")
	nodes := tree.MainLine()

	assert.Equal(t, "1.e4 e5 2.Nf3 Nc6 3.Bb5 a6", tree.LineText(nodes, false))
	assert.Equal(t, "2...Nc6 3.Bb5 a6", tree.LineText(nodes[3:], true))
	assert.Equal(t, "Nc6 3.Bb5 a6", tree.LineText(nodes[3:], false))
	assert.Equal(t, "e4 e5 Nf3 Nc6 Bb5 a6", PlainLine(nodes))
	assert.Equal(t, "", tree.LineText(nil, true))
}
