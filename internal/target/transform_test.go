package target

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected Transform
		rest     string
		wantErr  bool
	}{
		{
			name:     "plain code",
			input:    "291",
			expected: Transform{Period: Field{Digit: 2}, Term: Field{Digit: 9}, Pair: Field{Digit: 1}},
		},
		{
			name:     "code followed by name",
			input:    "191HEIKIN_UP",
			expected: Transform{Period: Field{Digit: 1}, Term: Field{Digit: 9}, Pair: Field{Digit: 1}},
			rest:     "HEIKIN_UP",
		},
		{
			name:  "fixed period",
			input: "$591",
			expected: Transform{
				Period: Field{Digit: 5, Fixed: true},
				Term:   Field{Digit: 9},
				Pair:   Field{Digit: 1},
			},
		},
		{
			name:  "fixed middle field",
			input: "2$31",
			expected: Transform{
				Period: Field{Digit: 2},
				Term:   Field{Digit: 3, Fixed: true},
				Pair:   Field{Digit: 1},
			},
		},
		{name: "zero digit rejected", input: "091", wantErr: true},
		{name: "too short", input: "29", wantErr: true},
		{name: "dangling marker", input: "29$", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, rest, err := Parse(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
			require.Equal(t, tc.rest, rest)
		})
	}
}

func TestComposeIdentity(t *testing.T) {
	t.Parallel()

	tgt := mustParse(t, "291")
	got := Compose(tgt, Root())
	require.Equal(t, "291", got.String(), "identity criteria must leave the target unchanged")
}

func TestComposePeriodAddition(t *testing.T) {
	t.Parallel()

	got := Compose(mustParse(t, "391"), mustParse(t, "291"))
	require.Equal(t, 4, got.Period.Digit, "period composes as target+criteria-1")
}

func TestComposePeriodClamping(t *testing.T) {
	t.Parallel()

	high := Compose(mustParse(t, "991"), mustParse(t, "991"))
	require.Equal(t, 9, high.Period.Digit, "composed periods above 9 clamp to 9")

	require.Equal(t, 1, ClampDigit(0))
	require.Equal(t, 1, ClampDigit(-3))
	require.Equal(t, 9, ClampDigit(17))
}

func TestComposeTermWildcard(t *testing.T) {
	t.Parallel()

	inherited := Compose(mustParse(t, "191"), mustParse(t, "151"))
	require.Equal(t, 5, inherited.Term.Digit, "wildcard term inherits the criteria's term")

	kept := Compose(mustParse(t, "131"), mustParse(t, "151"))
	require.Equal(t, 3, kept.Term.Digit, "a concrete term never changes")

	passthrough := Compose(mustParse(t, "191"), mustParse(t, "191"))
	require.Equal(t, 9, passthrough.Term.Digit, "wildcard criteria passes the target's wildcard through")
}

func TestComposeFixedFields(t *testing.T) {
	t.Parallel()

	fromTarget := Compose(mustParse(t, "$391"), mustParse(t, "591"))
	require.Equal(t, 3, fromTarget.Period.Digit, "a fixed target field substitutes its literal")
	require.False(t, fromTarget.Period.Fixed, "the marker is consumed")

	fromCriteria := Compose(mustParse(t, "391"), mustParse(t, "$591"))
	require.Equal(t, 5, fromCriteria.Period.Digit, "a fixed criteria field substitutes its literal")
}

func TestRouteID(t *testing.T) {
	t.Parallel()

	r := RouteID("191^2-126")
	require.Equal(t, "2-126", r.BackRef())
	require.True(t, r.HasSuffix("2-126"))
	require.True(t, r.HasSuffix("126"))
	require.False(t, r.HasSuffix("2-12"))
	require.False(t, r.HasSuffix(""), "an empty reference must not match")

	prefix, err := r.Prefix()
	require.NoError(t, err)
	require.Equal(t, "191", prefix.String())

	require.Equal(t, "", RouteID("191").BackRef())
}

func mustParse(t *testing.T, s string) Transform {
	t.Helper()
	tr, err := ParseFull(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return tr
}
