package target

import (
	"fmt"
	"strings"
)

// RouteID is a hierarchical node identifier of the form
// [period][term][pair]^[back-reference], e.g. "191^2-126". The back-reference
// is what parent lookup and update-flag propagation suffix-match against.
type RouteID string

// BackRef returns the substring after the '^' separator, or "" when the ID
// carries no separator.
func (r RouteID) BackRef() string {
	if i := strings.IndexByte(string(r), '^'); i >= 0 {
		return string(r[i+1:])
	}
	return ""
}

// Prefix parses the leading transform of the route ID.
func (r RouteID) Prefix() (Transform, error) {
	head := string(r)
	if i := strings.IndexByte(head, '^'); i >= 0 {
		head = head[:i]
	}
	t, err := ParseFull(head)
	if err != nil {
		return Transform{}, fmt.Errorf("route %q: %w", r, err)
	}
	return t, nil
}

// HasSuffix reports whether the route ID ends with ref. An empty ref never
// matches; it would otherwise pair every node with the first row scanned.
func (r RouteID) HasSuffix(ref string) bool {
	return ref != "" && strings.HasSuffix(string(r), ref)
}
