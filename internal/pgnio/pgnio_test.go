package pgnio

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestIsPGNFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"games.pgn", true},
		{"games.pgn.zst", true},
		{"games.zst", false},
		{"games.txt", false},
		{"pgn", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPGNFile(tt.name); got != tt.want {
				t.Errorf("IsPGNFile(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	const text = "[Event \"x\"]\n\n1. e4 e5 *\n"
	for _, name := range []string{"plain.pgn", "packed.pgn.zst"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out", name)
			w, err := Create(path)
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if _, err := io.WriteString(w, text); err != nil {
				t.Fatalf("write: %v", err)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}

			got, err := ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			if string(got) != text {
				t.Errorf("got %q, want %q", got, text)
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if compressed(path) == (string(raw) == text) {
				t.Errorf("compression mismatch for %s", name)
			}
		})
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.pgn")); err == nil {
		t.Error("expected error")
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		parts []string
		want  string
	}{
		{[]string{"berlin defence", "1052"}, "berlin-defence-1052"},
		{[]string{"marshall attack / anti marshall", "12"}, "marshall-attack-anti-marshall-12"},
		{[]string{"Caro-Kann Defence"}, "caro-kann-defence"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Slug(tt.parts...); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.parts, got, tt.want)
			}
		})
	}
}

func TestReplay(t *testing.T) {
	a, err := Replay("", []string{"e4", "e5", "Nf3", "Nc6"})
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	b, err := Replay("", []string{"Nf3", "e5", "e4", "Nc6+"})
	if err != nil {
		t.Fatalf("Replay transposed: %v", err)
	}
	if a.Pack() != b.Pack() {
		t.Error("transposed lines should reach the same packed position")
	}

	fromFEN, err := Replay("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2", []string{"Nf3", "Nc6"})
	if err != nil {
		t.Fatalf("Replay from FEN: %v", err)
	}
	if fromFEN.Pack() != a.Pack() {
		t.Error("replay from a FEN should continue from that position")
	}
}

func TestReplayIllegal(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		sans []string
	}{
		{"blocked king", "", []string{"e4", "Ke7"}},
		{"unknown move", "", []string{"e5"}},
		{"pinned knight", "4k3/8/8/8/7b/8/5N2/4K3 w - - 0 1", []string{"Nd3"}},
		{"bad fen", "not a fen", []string{"e4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Replay(tt.fen, tt.sans); err == nil {
				t.Errorf("Replay(%q, %v) succeeded, want error", tt.fen, tt.sans)
			}
		})
	}
}
