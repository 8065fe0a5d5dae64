package ingest

import "github.com/freeeve/pgn/v3"

const (
	files = "abcdefgh"
	ranks = "12345678"

	flagCastle = 4
)

// mvToUCI converts a move to coordinate notation. Castling is written as
// the king's two-square move.
func mvToUCI(mv pgn.Mv) string {
	from := string(files[mv.From%8]) + string(ranks[mv.From/8])
	to := string(files[mv.To%8]) + string(ranks[mv.To/8])
	if mv.Flags == flagCastle {
		rank := string(ranks[mv.From/8])
		if mv.To > mv.From {
			to = "g" + rank
		} else {
			to = "c" + rank
		}
	}

	uci := from + to

	switch mv.Promo {
	case pgn.PromoQueen:
		uci += "q"
	case pgn.PromoRook:
		uci += "r"
	case pgn.PromoBishop:
		uci += "b"
	case pgn.PromoKnight:
		uci += "n"
	}

	return uci
}
