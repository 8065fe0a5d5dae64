// Package collection turns parsed games into variation-tree records.
package collection

import (
	"maps"

	"github.com/freeeve/movetree/internal/movetree"
)

// Record is one game: its header tags and its moves as a variation tree.
type Record struct {
	Headers map[string]string
	Tree    *movetree.Tree
	// Skipped counts alternatives to the first move. A tree holds a single
	// root, so those lines cannot be merged.
	Skipped int
}

// NewRecord copies headers and pairs them with tree.
func NewRecord(headers map[string]string, tree *movetree.Tree) *Record {
	h := make(map[string]string, len(headers))
	maps.Copy(h, headers)
	return &Record{Headers: h, Tree: tree}
}

// Header returns the value of tag key, or "" when absent.
func (r *Record) Header(key string) string { return r.Headers[key] }

// Event returns the Event tag.
func (r *Record) Event() string { return r.Headers["Event"] }

// Site returns the Site tag.
func (r *Record) Site() string { return r.Headers["Site"] }

// White returns the White tag.
func (r *Record) White() string { return r.Headers["White"] }

// Black returns the Black tag.
func (r *Record) Black() string { return r.Headers["Black"] }

// Puzzle returns the Puzzle tag, set on collections of exercises.
func (r *Record) Puzzle() string { return r.Headers["Puzzle"] }

// Text renders the record's tree as movetext.
func (r *Record) Text() string { return r.Tree.Text() }
