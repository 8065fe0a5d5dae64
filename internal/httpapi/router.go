// Package httpapi serves tree merging and PGN conversion over HTTP.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/freeeve/movetree/internal/collection"
	"github.com/freeeve/movetree/internal/eco"
	"github.com/freeeve/movetree/internal/movetree"
	"github.com/freeeve/movetree/internal/oracle"
)

// maxBody caps request bodies.
const maxBody = 8 << 20

// Handler serves the API.
type Handler struct {
	oracle  oracle.Oracle
	parser  collection.Parser
	catalog *eco.Catalog
	log     zerolog.Logger
}

// NewRouter creates the HTTP router. catalog is optional; when set, leaves
// and positions are named.
func NewRouter(log zerolog.Logger, o oracle.Oracle, p collection.Parser, catalog *eco.Catalog) http.Handler {
	h := &Handler{
		oracle:  o,
		parser:  p,
		catalog: catalog,
		log:     log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.health)
	mux.HandleFunc("/readyz", h.health)
	mux.HandleFunc("/v1/merge", h.merge)
	mux.HandleFunc("/v1/games", h.games)
	mux.HandleFunc("/v1/opening", h.opening)

	return CORS(RequestID(AccessLog(log, mux)))
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) merge(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req MergeRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if len(req.Lines) == 0 {
		http.Error(w, "missing lines", http.StatusBadRequest)
		return
	}
	start := req.FEN
	if start == "" {
		start = oracle.StartFEN
	} else if _, err := h.oracle.Serialize(start); err != nil {
		http.Error(w, "invalid fen", http.StatusBadRequest)
		return
	}

	t0 := time.Now()
	tree, err := movetree.New(h.oracle, start, strings.Fields(req.Lines[0]))
	if err == nil {
		for _, line := range req.Lines[1:] {
			if err = tree.Append(strings.Fields(line)); err != nil {
				break
			}
		}
	}
	if err != nil {
		h.writeTreeError(w, r, err)
		return
	}

	h.log.Debug().
		Str("rid", GetRequestID(r.Context())).
		Int("lines", len(req.Lines)).
		Int("nodes", tree.Len()).
		Dur("elapsed", time.Since(t0)).
		Msg("merge completed")

	writeJSON(w, ToMergeResponse(tree, h.catalog))
}

func (h *Handler) games(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	records, err := collection.ParseAndBuild(io.LimitReader(r.Body, maxBody), h.parser, h.oracle)
	if err != nil {
		h.writeTreeError(w, r, err)
		return
	}
	resp := make([]GameResponse, len(records))
	for i, rec := range records {
		resp[i] = ToGameResponse(rec)
	}
	writeJSON(w, resp)
}

// opening names the position reached by ?moves=e4+e5+Nf3.
func (h *Handler) opening(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil {
		http.Error(w, "no opening catalog loaded", http.StatusNotFound)
		return
	}
	moves := strings.Fields(r.URL.Query().Get("moves"))
	if len(moves) == 0 {
		http.Error(w, "missing moves parameter", http.StatusBadRequest)
		return
	}
	line, ok := h.catalog.Name(moves)
	if !ok {
		http.Error(w, "opening not found", http.StatusNotFound)
		return
	}
	writeJSON(w, OpeningResponse{ECO: line.ECO, Name: line.Name, Line: line.String()})
}

// writeTreeError maps build failures to status codes: rejected moves are
// 422, everything else 400.
func (h *Handler) writeTreeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, oracle.ErrIllegalMove) || errors.Is(err, movetree.ErrRootMismatch) {
		status = http.StatusUnprocessableEntity
	}
	h.log.Debug().Err(err).Str("rid", GetRequestID(r.Context())).Int("status", status).Msg("request rejected")
	http.Error(w, err.Error(), status)
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
