// Package oracle defines the chess rules collaborator used by the variation
// tree: move legality, move application, notation conversion and position
// serialization. Positions cross the interface as FEN strings.
package oracle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrIllegalMove matches every *IllegalMoveError via errors.Is.
var ErrIllegalMove = errors.New("illegal move")

// IllegalMoveError reports a move the oracle rejected from a position.
type IllegalMoveError struct {
	FEN  string // position the move was tried from
	Move string // move as given by the caller
	Err  error  // underlying rules-engine error, may be nil
}

func (e *IllegalMoveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("illegal move %q in %q: %v", e.Move, e.FEN, e.Err)
	}
	return fmt.Sprintf("illegal move %q in %q", e.Move, e.FEN)
}

func (e *IllegalMoveError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrIllegalMove) match.
func (e *IllegalMoveError) Is(target error) bool { return target == ErrIllegalMove }

// Notation selects how a move string is written.
type Notation uint8

const (
	// SAN is short algebraic notation (e.g. "Nf3").
	SAN Notation = iota
	// UCI is coordinate notation (e.g. "g1f3", "e7e8q").
	UCI
)

func (n Notation) String() string {
	if n == UCI {
		return "uci"
	}
	return "san"
}

// Oracle is the rules engine seen by the tree. Implementations must be
// stateless: every call is answered from the FEN it receives.
type Oracle interface {
	// Apply plays a coordinate move and returns the resulting FEN.
	Apply(fen, uci string) (string, error)
	// ToSAN converts a coordinate move to short algebraic notation.
	ToSAN(fen, uci string) (string, error)
	// ToUCI converts a short algebraic move to coordinate notation.
	ToUCI(fen, san string) (string, error)
	// Serialize returns the canonical FEN of a position.
	Serialize(fen string) (string, error)
}

// Fingerprint returns the first four FEN fields (placement, side to move,
// castling, en passant). Clocks are dropped so transpositions compare equal.
func Fingerprint(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return strings.Join(fields, " ")
}

// BlackToMove reports whether the side-to-move field of fen is black.
func BlackToMove(fen string) bool {
	fields := strings.Fields(fen)
	return len(fields) > 1 && fields[1] == "b"
}

// FullMoveNumber returns the sixth FEN field, or 1 when missing or invalid.
func FullMoveNumber(fen string) int {
	fields := strings.Fields(fen)
	if len(fields) < 6 {
		return 1
	}
	n, err := strconv.Atoi(fields[5])
	if err != nil || n < 1 {
		return 1
	}
	return n
}
