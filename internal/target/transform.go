// Package target implements the hierarchical-ID grammar and the
// target-transform algebra used by the pattern resolver. A target transform
// is a three-field code <period><term><pair> of digits 1-9; any field may be
// prefixed with '$' to mark it fixed, which short-circuits composition for
// that field.
package target

import (
	"fmt"
	"strings"
)

// Wildcard is the term digit meaning "inherit the caller's term".
const Wildcard = 9

// Field is one slot of a transform: a digit 1-9 plus the '$' fixed marker.
type Field struct {
	Digit int
	Fixed bool
}

// Transform is a parsed <period><term><pair> code.
type Transform struct {
	Period Field
	Term   Field
	Pair   Field
}

// Root is the identity criteria: no period scaling, wildcard term, pair 1.
func Root() Transform {
	return Transform{
		Period: Field{Digit: 1},
		Term:   Field{Digit: Wildcard},
		Pair:   Field{Digit: 1},
	}
}

// Parse reads a transform from the start of s and returns it together with
// the unconsumed remainder. It fails when fewer than three digit fields are
// present.
func Parse(s string) (Transform, string, error) {
	var t Transform
	rest := s
	for i, f := range []*Field{&t.Period, &t.Term, &t.Pair} {
		var err error
		*f, rest, err = parseField(rest)
		if err != nil {
			return Transform{}, "", fmt.Errorf("transform %q: field %d: %w", s, i+1, err)
		}
	}
	return t, rest, nil
}

// ParseFull parses s as a complete transform with no trailing characters.
func ParseFull(s string) (Transform, error) {
	t, rest, err := Parse(s)
	if err != nil {
		return Transform{}, err
	}
	if rest != "" {
		return Transform{}, fmt.Errorf("transform %q: trailing characters %q", s, rest)
	}
	return t, nil
}

func parseField(s string) (Field, string, error) {
	fixed := false
	if strings.HasPrefix(s, "$") {
		fixed = true
		s = s[1:]
	}
	if s == "" {
		return Field{}, "", fmt.Errorf("missing digit")
	}
	c := s[0]
	if c < '1' || c > '9' {
		return Field{}, "", fmt.Errorf("invalid digit %q", string(c))
	}
	return Field{Digit: int(c - '0'), Fixed: fixed}, s[1:], nil
}

// String renders the transform back into its textual code, including any
// '$' markers still carried by the fields.
func (t Transform) String() string {
	var b strings.Builder
	for _, f := range []Field{t.Period, t.Term, t.Pair} {
		if f.Fixed {
			b.WriteByte('$')
		}
		b.WriteByte(byte('0' + f.Digit))
	}
	return b.String()
}

// Compose resolves a relative transform against the caller's criteria:
//
//   - period: clamp(target + criteria - 1, 1, 9)
//   - term:   criteria's term when the target's is the wildcard 9,
//     otherwise the target's term unchanged
//   - pair:   the target's pair (pair 1 is reserved for currency conversion,
//     which is not implemented; the field passes through as-is)
//
// A '$'-fixed field on either operand substitutes its literal digit instead
// of composing; the marker is consumed and never survives into the result.
func Compose(t, criteria Transform) Transform {
	return Transform{
		Period: composeField(t.Period, criteria.Period, func(a, b int) int {
			return ClampDigit(a + b - 1)
		}),
		Term: composeField(t.Term, criteria.Term, func(a, b int) int {
			if a == Wildcard {
				return b
			}
			return a
		}),
		Pair: composeField(t.Pair, criteria.Pair, func(a, _ int) int {
			return a
		}),
	}
}

func composeField(t, c Field, rule func(a, b int) int) Field {
	switch {
	case t.Fixed:
		return Field{Digit: t.Digit}
	case c.Fixed:
		return Field{Digit: c.Digit}
	default:
		return Field{Digit: rule(t.Digit, c.Digit)}
	}
}

// ClampDigit bounds a composed period into the valid digit range 1..9.
func ClampDigit(d int) int {
	if d < 1 {
		return 1
	}
	if d > 9 {
		return 9
	}
	return d
}
