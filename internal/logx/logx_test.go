package logx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"WARN", zerolog.WarnLevel, false},
		{"loud", zerolog.NoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, zerolog.WarnLevel)
	log.Info().Msg("hidden")
	log.Warn().Str("file", "a.pgn").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "a.pgn") {
		t.Errorf("missing warn message: %q", out)
	}
	if !strings.Contains(out, "logx_test.go:") {
		t.Errorf("missing caller: %q", out)
	}
}

func TestShortCaller(t *testing.T) {
	got := shortCaller(0, "/src/movetree/internal/ingest/index.go", 42)
	if strings.TrimSpace(got) != "index.go:42" {
		t.Errorf("got %q", got)
	}
}
