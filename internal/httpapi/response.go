package httpapi

import (
	"github.com/freeeve/movetree/internal/collection"
	"github.com/freeeve/movetree/internal/eco"
	"github.com/freeeve/movetree/internal/movetree"
)

// MergeRequest is the body of POST /v1/merge.
type MergeRequest struct {
	FEN   string   `json:"fen,omitempty"` // start position, standard start when empty
	Lines []string `json:"lines"`         // space-separated moves, SAN or UCI
}

// MergeResponse is the merged tree.
type MergeResponse struct {
	Text   string         `json:"text"`
	Trunk  []string       `json:"trunk"` // UCI path to the first branch point
	Nodes  int            `json:"nodes"`
	Leaves []LeafResponse `json:"leaves"`
}

// LeafResponse is one complete line of a tree.
type LeafResponse struct {
	Line    string `json:"line"` // numbered movetext
	UCI     string `json:"uci"`
	FEN     string `json:"fen"`
	Opening string `json:"opening,omitempty"`
}

// GameResponse is one built game of POST /v1/games.
type GameResponse struct {
	Headers map[string]string `json:"headers"`
	Text    string            `json:"text"`
	Skipped int               `json:"skipped,omitempty"`
}

// OpeningResponse names a position.
type OpeningResponse struct {
	ECO  string `json:"eco,omitempty"`
	Name string `json:"name"`
	Line string `json:"line"`
}

// ToMergeResponse describes t. Leaves are named through catalog when it is
// not nil.
func ToMergeResponse(t *movetree.Tree, catalog *eco.Catalog) *MergeResponse {
	resp := &MergeResponse{
		Text:  t.Text(),
		Trunk: t.PathUntilFirstDivergence(),
		Nodes: t.Len(),
	}
	for _, leaf := range t.AllLeaves() {
		nodes, _ := t.AllNodesOnPath(leaf.Path)
		lr := LeafResponse{
			Line: t.LineText(nodes, false),
			FEN:  leaf.AfterFEN,
		}
		for i, n := range nodes {
			if i > 0 {
				lr.UCI += " "
			}
			lr.UCI += n.UCI
		}
		if catalog != nil {
			if o, ok := catalog.Lookup(leaf.AfterFEN); ok {
				lr.Opening = o.Name
			}
		}
		resp.Leaves = append(resp.Leaves, lr)
	}
	return resp
}

// ToGameResponse converts a built record.
func ToGameResponse(r *collection.Record) GameResponse {
	return GameResponse{Headers: r.Headers, Text: r.Text(), Skipped: r.Skipped}
}
