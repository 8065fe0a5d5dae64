package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoGames = `[Event "club"]
[White "a"]
[Black "b"]
[Result "1-0"]

1. e4 e5 (1... c5 2. Nf3) 2. Nf3 Nc6 3. Bb5 a6 1-0

[Event "club"]
[White "c"]
[Black "d"]
[Result "*"]

1. e4 e5 2. Nf3 Nc6 3. Bc4 *
`

// run executes the root command with a config file in a temp directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("log_level = \"warn\"\n"), 0o644))

	var out, logs bytes.Buffer
	root := New(&logs).RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(append([]string{"--config", cfg}, args...))
	err := root.Execute()
	return out.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMerge(t *testing.T) {
	out, err := run(t, "merge", "e4 e5 Nf3 Nc6 Bb5", "e4 e5 Nf3 Nc6 Bc4", "--leaves", "--trunk")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "1.e4 e5 2.Nf3 Nc6 3.Bb5 (3.Bc4)", lines[0])
	assert.Equal(t, "trunk: 1.e4 e5 2.Nf3 Nc6", lines[1])
	assert.Equal(t, "1.e4 e5 2.Nf3 Nc6 3.Bb5", lines[2])
	assert.Equal(t, "1.e4 e5 2.Nf3 Nc6 3.Bc4", lines[3])
}

func TestMergeFile(t *testing.T) {
	path := writeTemp(t, "lines.txt", "# sicilian\n12\te2e4 c7c5\n\ne2e4 e7e6\n")
	out, err := run(t, "merge", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "1.e4 c5 (1...e6)\n", out)
}

func TestMergeErrors(t *testing.T) {
	_, err := run(t, "merge")
	assert.Error(t, err)

	_, err = run(t, "merge", "e4 e5", "d4 d5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestGames(t *testing.T) {
	path := writeTemp(t, "games.pgn", twoGames)
	out, err := run(t, "games", path)
	require.NoError(t, err)

	assert.Contains(t, out, "[White \"a\"]\n[Black \"b\"]\n\n1.e4 e5 (1...c5 2.Nf3) 2.Nf3 Nc6 3.Bb5 a6\n")
	assert.Contains(t, out, "1.e4 e5 2.Nf3 Nc6 3.Bc4\n")
}

func TestGamesOutFile(t *testing.T) {
	path := writeTemp(t, "games.pgn", twoGames)
	dest := filepath.Join(t.TempDir(), "out", "trees.pgn")
	out, err := run(t, "games", path, "--out", dest)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "3.Bc4")
}

func TestSummarize(t *testing.T) {
	path := writeTemp(t, "games.pgn", twoGames)
	out, err := run(t, "summarize", path, "--plies", "4")
	require.NoError(t, err)
	assert.Equal(t, "2\te4 e5 Nf3 Nc6\n", out)
}

func TestChapters(t *testing.T) {
	path := writeTemp(t, "summary.txt",
		"3\te4 e5 Nf3 Nc6 Bb5 a6\n2\te4 e5 Nf3 Nc6 Bc4 Bc5\n\n4\td4 d5 c4 e6\n1\td4 d5 c4 c6\n")
	out, err := run(t, "chapters", path, "--trim", "1.e4 e5 2.Nf3")
	require.NoError(t, err)

	assert.Equal(t, "[Event \"2...Nc6\"]\n\n1.e4 e5 2.Nf3 Nc6 3.Bb5 a6 (3.Bc4 Bc5)\n\n"+
		"[Event \"2...e6, 2...c6\"]\n\n1.d4 d5 2.c4 e6 (2...c6)\n", out)
}

func TestCatalog(t *testing.T) {
	out, err := run(t, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "berlin defence\te4 e5 Nf3 Nc6 Bb5 Nf6\n")

	out, err = run(t, "catalog", "--trees")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "1.e4 "))
}

func TestBadLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "catalog")
	assert.Error(t, err)
}
