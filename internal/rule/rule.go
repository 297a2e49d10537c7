package rule

import (
	"fmt"
	"strings"
)

// DefaultNotation is Conway's Game of Life in B/S notation.
const DefaultNotation = "B3/S23"

// Rule holds the birth and survival neighbor counts of a generalized
// B/S automaton. Each set is a bitmask over the counts 0..8, so
// membership checks in the step loop are a single mask test.
type Rule struct {
	birth   uint16
	survive uint16
}

// Default returns Conway's Game of Life (B3/S23).
func Default() Rule {
	r, err := Parse(DefaultNotation)
	if err != nil {
		panic("rule: default notation failed to parse: " + err.Error())
	}
	return r
}

// Parse reads a rule in B/S notation, for example "B3/S23" or "B36/S23".
// The birth component must come first, digits are 0..8 and may repeat or
// appear in any order. "B/S" is valid and yields the empty rule.
func Parse(s string) (Rule, error) {
	birthPart, survivePart, ok := strings.Cut(s, "/")
	if !ok {
		return Rule{}, fmt.Errorf("rule %q: missing %q separator", s, "/")
	}
	birth, err := parseCounts(birthPart, 'B')
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: %w", s, err)
	}
	survive, err := parseCounts(survivePart, 'S')
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: %w", s, err)
	}
	return Rule{birth: birth, survive: survive}, nil
}

func parseCounts(part string, marker byte) (uint16, error) {
	if len(part) == 0 || part[0] != marker {
		return 0, fmt.Errorf("component %q must start with %q", part, string(marker))
	}
	var mask uint16
	for _, c := range []byte(part[1:]) {
		if c < '0' || c > '8' {
			return 0, fmt.Errorf("invalid neighbor count %q, want a digit 0-8", string(c))
		}
		mask |= 1 << (c - '0')
	}
	return mask, nil
}

// IsBirth reports whether a dead cell with n live neighbors becomes alive.
func (r Rule) IsBirth(n int) bool {
	return n >= 0 && n <= 8 && r.birth&(1<<n) != 0
}

// IsSurvive reports whether a live cell with n live neighbors stays alive.
func (r Rule) IsSurvive(n int) bool {
	return n >= 0 && n <= 8 && r.survive&(1<<n) != 0
}

// String renders the rule in canonical B/S notation with ascending digits.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	writeCounts(&b, r.birth)
	b.WriteByte('/')
	b.WriteByte('S')
	writeCounts(&b, r.survive)
	return b.String()
}

func writeCounts(b *strings.Builder, mask uint16) {
	for n := 0; n <= 8; n++ {
		if mask&(1<<n) != 0 {
			b.WriteByte('0' + byte(n))
		}
	}
}
