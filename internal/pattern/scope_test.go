package pattern

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScopeSetUnionIdempotence(t *testing.T) {
	t.Parallel()

	var set ScopeSet
	require.True(t, set.Add("1"))
	require.True(t, set.Add("2"))
	require.False(t, set.Add("2"), "re-adding a token must report no change")
	require.True(t, set.Add("3"))

	before := set.String()
	for _, tok := range []string{"1", "2", "3"} {
		require.False(t, set.Add(tok))
	}
	require.Equal(t, before, set.String(), "a second identical merge leaves the set unchanged")
}

func TestScopeSetExactTokenMembership(t *testing.T) {
	t.Parallel()

	var set ScopeSet
	set.Add("12")
	require.False(t, set.Contains("1"), "membership is whole-token, not substring")
	require.True(t, set.Add("1"))
}

func TestScopeSetCanonicalize(t *testing.T) {
	t.Parallel()

	set := ParseScopeSet("3/1/2")
	set.Canonicalize()
	require.Equal(t, "1/2/3", set.String())

	set.Canonicalize()
	require.Equal(t, "1/2/3", set.String(), "canonicalizing a sorted set is a no-op")

	dupes := ScopeSet{}
	dupes.Replace("2", "2", "1")
	dupes.Canonicalize()
	require.Equal(t, "1/2", dupes.String())
}

func TestParseScopeSetDropsEmptySegments(t *testing.T) {
	t.Parallel()

	set := ParseScopeSet("")
	require.Equal(t, 0, set.Len())

	set = ParseScopeSet("1//3")
	require.Equal(t, "1/3", set.String())
}
