// Package ingest scans PGN files into an in-memory position index that
// answers which games reach a given line.
package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/freeeve/pgn/v3"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/freeeve/movetree/internal/pgnio"
)

// Config configures an index build.
type Config struct {
	Files     []string       // PGN files, plain or .pgn.zst
	Workers   int            // Files scanned in parallel (default GOMAXPROCS)
	RatingMin int            // Skip games where either player is rated below (0 = keep all)
	MaxPlies  int            // Index only the first N plies of each game (0 = all)
	Logger    zerolog.Logger // Logger
}

// GameRef identifies an indexed game.
type GameRef struct {
	File  string            `json:"file"`
	Index int               `json:"index"` // position within File, from 0
	Tags  map[string]string `json:"tags"`
	Moves []string          `json:"moves"` // main line in coordinate notation

	mvs []pgn.Mv
}

// Index maps positions to the games that reach them.
type Index struct {
	games      []GameRef
	byPosition map[pgn.PackedPosition][]int32
	skipped    int
}

type fileResult struct {
	games   []GameRef
	skipped int
}

// BuildIndex scans cfg.Files with a bounded pool of workers. Results are
// merged in file order, so game numbering does not depend on scheduling.
func BuildIndex(ctx context.Context, cfg Config) (*Index, error) {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	log := cfg.Logger
	start := time.Now()

	results := make([]fileResult, len(cfg.Files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, path := range cfg.Files {
		g.Go(func() error {
			res, err := scanFile(ctx, cfg, path)
			if err != nil {
				return fmt.Errorf("scan %s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ix := &Index{byPosition: make(map[pgn.PackedPosition][]int32)}
	for _, res := range results {
		ix.skipped += res.skipped
		for _, ref := range res.games {
			ix.add(ref, cfg.MaxPlies)
		}
	}

	log.Info().
		Int("files", len(cfg.Files)).
		Int("games", len(ix.games)).
		Int("skipped", ix.skipped).
		Int("positions", len(ix.byPosition)).
		Dur("elapsed", time.Since(start)).
		Msg("index built")
	return ix, nil
}

// scanFile reads the games of one file.
func scanFile(ctx context.Context, cfg Config, path string) (fileResult, error) {
	log := cfg.Logger.With().Str("file", filepath.Base(path)).Logger()
	log.Debug().Msg("scanning")

	var res fileResult
	parser := pgn.Games(path)
	n := -1
	for game := range parser.Games {
		n++
		if ctx.Err() != nil {
			parser.Stop()
			return res, ctx.Err()
		}

		if cfg.RatingMin > 0 {
			whiteRating := parseRating(game.Tags["WhiteElo"])
			blackRating := parseRating(game.Tags["BlackElo"])
			if whiteRating < cfg.RatingMin || blackRating < cfg.RatingMin {
				res.skipped++
				continue
			}
		}

		moves := make([]string, len(game.Moves))
		for i, mv := range game.Moves {
			moves[i] = mvToUCI(mv)
		}
		res.games = append(res.games, GameRef{
			File:  path,
			Index: n,
			Tags:  game.Tags,
			Moves: moves,
			mvs:   game.Moves,
		})
	}
	if err := parser.Err(); err != nil {
		return res, err
	}
	log.Debug().Int("games", len(res.games)).Int("skipped", res.skipped).Msg("scanned")
	return res, nil
}

// add replays ref's main line from its FEN tag (standard start when
// absent) and records each position once per game. Replay stops at the
// first illegal move. Games with an unreadable FEN are skipped.
func (ix *Index) add(ref GameRef, maxPlies int) {
	pos, err := pgnio.Position(ref.Tags["FEN"])
	if err != nil {
		ix.skipped++
		return
	}
	id := int32(len(ix.games))
	mvs := ref.mvs
	ref.mvs = nil
	ix.games = append(ix.games, ref)

	seen := make(map[pgn.PackedPosition]struct{})
	for ply, mv := range mvs {
		if maxPlies > 0 && ply >= maxPlies {
			break
		}
		if err := pgnio.ApplyLegal(pos, mv); err != nil {
			break
		}
		key := pos.Pack()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		ix.byPosition[key] = append(ix.byPosition[key], id)
	}
}

// Games returns the games reaching the position after the SAN moves, in
// index order.
func (ix *Index) Games(sans []string) ([]GameRef, error) {
	pos, err := pgnio.Replay("", sans)
	if err != nil {
		return nil, err
	}
	return ix.refs(pos.Pack()), nil
}

// GamesAt returns the games reaching fen.
func (ix *Index) GamesAt(fen string) ([]GameRef, error) {
	pos, err := pgn.NewGame(fen)
	if err != nil {
		return nil, fmt.Errorf("parse FEN: %w", err)
	}
	return ix.refs(pos.Pack()), nil
}

// Count returns the number of games reaching the position after sans.
func (ix *Index) Count(sans []string) (int, error) {
	pos, err := pgnio.Replay("", sans)
	if err != nil {
		return 0, err
	}
	return len(ix.byPosition[pos.Pack()]), nil
}

func (ix *Index) refs(key pgn.PackedPosition) []GameRef {
	ids := ix.byPosition[key]
	out := make([]GameRef, len(ids))
	for i, id := range ids {
		out[i] = ix.games[id]
	}
	return out
}

// Len returns the number of indexed games.
func (ix *Index) Len() int { return len(ix.games) }

// Skipped returns the number of games dropped by the rating filter or
// because their FEN tag could not be read.
func (ix *Index) Skipped() int { return ix.skipped }

func parseRating(s string) int {
	if s == "" || s == "?" || s == "-" {
		return 0
	}
	r, _ := strconv.Atoi(s)
	return r
}
