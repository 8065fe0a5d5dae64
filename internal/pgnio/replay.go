package pgnio

import (
	"errors"
	"fmt"

	"github.com/freeeve/pgn/v3"
)

// ErrIllegalMove is returned when a move parses but cannot be played.
var ErrIllegalMove = errors.New("illegal move")

// Position returns the position described by fen, or the standard start
// when fen is empty.
func Position(fen string) (*pgn.GameState, error) {
	if fen == "" {
		return pgn.NewStartingPosition(), nil
	}
	pos, err := pgn.NewGame(fen)
	if err != nil {
		return nil, fmt.Errorf("parse FEN: %w", err)
	}
	return pos, nil
}

// ApplyLegal plays mv on pos if it is one of the legal moves there. The
// parser only resolves moves, so pins and blocked squares are checked here.
func ApplyLegal(pos *pgn.GameState, mv pgn.Mv) error {
	for _, legal := range pgn.GenerateLegalMoves(pos) {
		if legal.From == mv.From && legal.To == mv.To && legal.Promo == mv.Promo {
			return pgn.ApplyMove(pos, legal)
		}
	}
	return fmt.Errorf("%w %s", ErrIllegalMove, mv)
}

// Replay plays SAN moves from fen (standard start when empty) and returns
// the final position.
func Replay(fen string, sans []string) (*pgn.GameState, error) {
	pos, err := Position(fen)
	if err != nil {
		return nil, err
	}
	for i, san := range sans {
		mv, err := pgn.ParseSAN(pos, san)
		if err != nil {
			return nil, fmt.Errorf("move %d %q: %w", i+1, san, err)
		}
		if err := ApplyLegal(pos, mv); err != nil {
			return nil, fmt.Errorf("move %d %q: %w", i+1, san, err)
		}
	}
	return pos, nil
}
