package eval

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/freeeve/movetree/internal/movetree"
	"github.com/freeeve/movetree/internal/oracle"
)

// LeafEval is the score of the position at the end of one line.
type LeafEval struct {
	Line  string `json:"line"` // numbered movetext
	SAN   string `json:"san"`  // bare moves
	FEN   string `json:"fen"`
	Score Score  `json:"score"`
}

// Evaluator scores positions with an Engine, caching by position so
// transposed leaves are searched once.
type Evaluator struct {
	eng   Engine
	depth int
	log   zerolog.Logger
	cache map[string]Score
}

// NewEvaluator wraps eng. The caller keeps ownership of eng.
func NewEvaluator(eng Engine, cfg Config) *Evaluator {
	cfg.setDefaults()
	return &Evaluator{
		eng:   eng,
		depth: cfg.Depth,
		log:   cfg.Logger,
		cache: make(map[string]Score),
	}
}

// Position returns the score of fen from White's perspective.
func (e *Evaluator) Position(ctx context.Context, fen string) (Score, error) {
	if err := ctx.Err(); err != nil {
		return Score{}, err
	}
	key := oracle.Fingerprint(fen)
	if sc, ok := e.cache[key]; ok {
		return sc, nil
	}

	if err := e.eng.SetFEN(fen); err != nil {
		return Score{}, fmt.Errorf("set FEN: %w", err)
	}
	sc, err := e.eng.Search(e.depth)
	if err != nil {
		return Score{}, fmt.Errorf("search: %w", err)
	}

	// Normalize to white's perspective
	if oracle.BlackToMove(fen) {
		sc.CP = -sc.CP
		sc.Mate = -sc.Mate
	}
	e.cache[key] = sc

	e.log.Debug().
		Str("fen", fen).
		Int("cp", sc.CP).
		Int("mate", sc.Mate).
		Msg("evaluated")
	return sc, nil
}

// Leaves scores every leaf of t, in leaf order.
func (e *Evaluator) Leaves(ctx context.Context, t *movetree.Tree) ([]LeafEval, error) {
	leaves := t.AllLeaves()
	out := make([]LeafEval, 0, len(leaves))
	for _, leaf := range leaves {
		nodes, _ := t.AllNodesOnPath(leaf.Path)
		sc, err := e.Position(ctx, leaf.AfterFEN)
		if err != nil {
			return nil, fmt.Errorf("leaf %s: %w", movetree.PlainLine(nodes), err)
		}
		out = append(out, LeafEval{
			Line:  t.LineText(nodes, false),
			SAN:   movetree.PlainLine(nodes),
			FEN:   leaf.AfterFEN,
			Score: sc,
		})
	}
	return out, nil
}
