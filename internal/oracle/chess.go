package oracle

import (
	"errors"
	"fmt"

	"github.com/corentings/chess/v2"
)

// Chess answers oracle queries with github.com/corentings/chess/v2.
type Chess struct{}

// NewChess returns the default rules engine.
func NewChess() *Chess { return &Chess{} }

var _ Oracle = (*Chess)(nil)

// Apply implements Oracle.
func (c *Chess) Apply(fen, uci string) (string, error) {
	pos, err := c.position(fen)
	if err != nil {
		return "", err
	}
	mv, err := c.decodeUCI(pos, fen, uci)
	if err != nil {
		return "", err
	}
	next := pos.Update(mv)
	if next == nil {
		return "", &IllegalMoveError{FEN: fen, Move: uci}
	}
	return next.String(), nil
}

// ToSAN implements Oracle.
func (c *Chess) ToSAN(fen, uci string) (string, error) {
	pos, err := c.position(fen)
	if err != nil {
		return "", err
	}
	mv, err := c.decodeUCI(pos, fen, uci)
	if err != nil {
		return "", err
	}
	return chess.AlgebraicNotation{}.Encode(pos, mv), nil
}

// ToUCI implements Oracle.
func (c *Chess) ToUCI(fen, san string) (string, error) {
	pos, err := c.position(fen)
	if err != nil {
		return "", err
	}
	if san == "" {
		return "", &IllegalMoveError{FEN: fen, Move: san, Err: errors.New("empty move")}
	}
	mv, err := chess.AlgebraicNotation{}.Decode(pos, san)
	if err != nil {
		return "", &IllegalMoveError{FEN: fen, Move: san, Err: err}
	}
	legal, ok := findLegal(pos, mv)
	if !ok {
		return "", &IllegalMoveError{FEN: fen, Move: san}
	}
	return chess.UCINotation{}.Encode(pos, legal), nil
}

// Serialize implements Oracle.
func (c *Chess) Serialize(fen string) (string, error) {
	pos, err := c.position(fen)
	if err != nil {
		return "", err
	}
	return pos.String(), nil
}

func (c *Chess) position(fen string) (*chess.Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parse FEN %q: %w", fen, err)
	}
	return chess.NewGame(opt).Position(), nil
}

// decodeUCI returns the legal move matching uci, carrying the move tags the
// SAN encoder needs (check, capture, castling).
func (c *Chess) decodeUCI(pos *chess.Position, fen, uci string) (*chess.Move, error) {
	if !IsCoord(uci) {
		return nil, &IllegalMoveError{FEN: fen, Move: uci, Err: errors.New("not a coordinate move")}
	}
	mv, err := chess.UCINotation{}.Decode(pos, uci)
	if err != nil {
		return nil, &IllegalMoveError{FEN: fen, Move: uci, Err: err}
	}
	legal, ok := findLegal(pos, mv)
	if !ok {
		return nil, &IllegalMoveError{FEN: fen, Move: uci}
	}
	return legal, nil
}

func findLegal(pos *chess.Position, mv *chess.Move) (*chess.Move, bool) {
	for _, v := range pos.ValidMoves() {
		if v.S1() == mv.S1() && v.S2() == mv.S2() && v.Promo() == mv.Promo() {
			legal := v
			return &legal, true
		}
	}
	return nil, false
}
