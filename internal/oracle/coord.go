package oracle

import "strings"

// IsCoord reports whether s is syntactically a coordinate move
// ("e2e4", "e7e8q"). Legality is not checked.
func IsCoord(s string) bool {
	if len(s) != 4 && len(s) != 5 {
		return false
	}
	if !isFile(s[0]) || !isRank(s[1]) || !isFile(s[2]) || !isRank(s[3]) {
		return false
	}
	if len(s) == 5 {
		switch s[4] {
		case 'q', 'r', 'b', 'n', 'Q', 'R', 'B', 'N':
		default:
			return false
		}
	}
	return true
}

// DetectNotation returns UCI when every move of seq is a coordinate move and
// SAN otherwise. An empty sequence is SAN.
func DetectNotation(seq []string) Notation {
	if len(seq) == 0 {
		return SAN
	}
	for _, m := range seq {
		if !IsCoord(m) {
			return SAN
		}
	}
	return UCI
}

// TrimSAN strips check, mate and annotation suffixes ("Nf3+", "e4!?").
func TrimSAN(san string) string {
	return strings.TrimRight(san, "+#!?")
}

// SameMove compares two moves written in notation n.
func SameMove(a, b string, n Notation) bool {
	if n == UCI {
		return strings.EqualFold(a, b)
	}
	return TrimSAN(a) == TrimSAN(b)
}

func isFile(c byte) bool { return c >= 'a' && c <= 'h' }
func isRank(c byte) bool { return c >= '1' && c <= '8' }
