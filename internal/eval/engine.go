// Package eval scores the leaves of a variation tree with a UCI engine.
package eval

import (
	"errors"
	"fmt"

	"github.com/freeeve/uci"
	"github.com/rs/zerolog"
)

// Config configures the engine and the search.
type Config struct {
	StockfishPath string
	Logger        zerolog.Logger
	Depth         int // search depth per position (default 20)
	HashMB        int // hash table size (default 256)
	Threads       int // engine threads (default 1)
	Nice          int // nice value for the engine process (0 = disabled)
}

func (c *Config) setDefaults() {
	if c.Depth == 0 {
		c.Depth = 20
	}
	if c.HashMB == 0 {
		c.HashMB = 256
	}
	if c.Threads == 0 {
		c.Threads = 1
	}
}

// Score is an engine result from the side to move's perspective, or from
// White's once normalized by the Evaluator.
type Score struct {
	CP     int  `json:"cp"`
	Mate   int  `json:"mate,omitempty"` // moves to mate, when IsMate
	IsMate bool `json:"is_mate"`
	Depth  int  `json:"depth"`
}

// Engine searches one position at a time.
type Engine interface {
	SetFEN(fen string) error
	Search(depth int) (Score, error)
	Close() error
}

// ErrNoResult is returned when the engine reports no score.
var ErrNoResult = errors.New("no results from engine")

// Stockfish drives a UCI engine process.
type Stockfish struct {
	e *uci.Engine
}

var _ Engine = (*Stockfish)(nil)

// NewStockfish starts the engine at cfg.StockfishPath.
func NewStockfish(cfg Config) (*Stockfish, error) {
	if cfg.StockfishPath == "" {
		return nil, fmt.Errorf("stockfish path required")
	}
	cfg.setDefaults()
	log := cfg.Logger

	engine, err := uci.NewEngine(cfg.StockfishPath)
	if err != nil {
		return nil, fmt.Errorf("start engine: %w", err)
	}
	opts := uci.Options{
		Hash:    cfg.HashMB,
		Threads: cfg.Threads,
		MultiPV: 1,
		Ponder:  false,
		OwnBook: false,
	}
	if err := engine.SetOptions(opts); err != nil {
		engine.Close()
		return nil, fmt.Errorf("set engine options: %w", err)
	}

	if cfg.Nice > 0 {
		nice := min(cfg.Nice, 19)
		if err := engine.SetNice(nice); err != nil {
			log.Warn().Err(err).Int("nice", nice).Msg("failed to set nice value")
		}
	}
	log.Info().Int("threads", cfg.Threads).Int("hash_mb", cfg.HashMB).Msg("engine started")
	return &Stockfish{e: engine}, nil
}

// SetFEN sets the position to search.
func (s *Stockfish) SetFEN(fen string) error { return s.e.SetFEN(fen) }

// Search runs a fixed-depth search and returns the deepest result.
func (s *Stockfish) Search(depth int) (Score, error) {
	results, err := s.e.GoDepth(depth, uci.HighestDepthOnly)
	if err != nil {
		return Score{}, err
	}
	if len(results.Results) == 0 {
		return Score{}, ErrNoResult
	}

	best := results.Results[0]
	for _, r := range results.Results {
		if r.Depth > best.Depth {
			best = r
		}
	}
	sc := Score{Depth: int(best.Depth)}
	if best.Mate {
		sc.IsMate = true
		sc.Mate = int(best.Score)
	} else {
		sc.CP = int(best.Score)
	}
	return sc, nil
}

// Close stops the engine process.
func (s *Stockfish) Close() error {
	s.e.Close()
	return nil
}
