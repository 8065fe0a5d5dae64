package collection

import (
	"fmt"
	"io"

	"github.com/corentings/chess/v2"
)

// PGNParser reads PGN text, variations included.
type PGNParser struct{}

var _ Parser = PGNParser{}

// Parse reads every game in r.
func (PGNParser) Parse(r io.Reader) ([]ParsedGame, error) {
	var games []ParsedGame
	scanner := chess.NewScanner(r)
	for scanner.HasNext() {
		scanned, err := scanner.ScanGame()
		if err != nil {
			return nil, fmt.Errorf("scan game %d: %w", len(games), err)
		}
		tokens, err := chess.TokenizeGame(scanned)
		if err != nil {
			return nil, fmt.Errorf("tokenize game %d: %w", len(games), err)
		}
		game, err := chess.NewParser(tokens).Parse()
		if err != nil {
			return nil, fmt.Errorf("parse game %d: %w", len(games), err)
		}
		games = append(games, ParsedGame{
			Headers: map[string]string(game.TagPairs()),
			Moves:   branches(game.GetRootMove()),
		})
	}
	return games, nil
}

// branches copies the library's move tree into BranchNodes. A move's
// Position is the position after it, so a child is encoded against its
// parent's position.
func branches(root *chess.Move) *BranchNode {
	type item struct {
		src *chess.Move
		dst *BranchNode
	}
	out := &BranchNode{}
	stack := []item{{root, out}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range it.src.Children() {
			b := &BranchNode{SAN: chess.AlgebraicNotation{}.Encode(it.src.Position(), c)}
			it.dst.Children = append(it.dst.Children, b)
			stack = append(stack, item{c, b})
		}
	}
	return out
}
