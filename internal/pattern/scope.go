package pattern

import (
	"slices"
	"strings"
)

// ScopeSet is an accumulated set of single-digit scope tokens, rendered as a
// '/'-joined list ("1/3/5"). Membership is exact token equality; insertion
// order is preserved until Canonicalize sorts it.
type ScopeSet struct {
	tokens []string
}

// ParseScopeSet splits a '/'-joined token list, dropping empty segments.
func ParseScopeSet(s string) ScopeSet {
	var set ScopeSet
	for _, tok := range strings.Split(s, "/") {
		if tok != "" {
			set.Add(tok)
		}
	}
	return set
}

// Add inserts tok and reports whether the set changed.
func (s *ScopeSet) Add(tok string) bool {
	if s.Contains(tok) {
		return false
	}
	s.tokens = append(s.tokens, tok)
	return true
}

// Contains tests exact delimited-token membership.
func (s *ScopeSet) Contains(tok string) bool {
	return slices.Contains(s.tokens, tok)
}

// Replace discards the current contents and installs toks verbatim.
func (s *ScopeSet) Replace(toks ...string) {
	s.tokens = slices.Clone(toks)
}

// Canonicalize sorts the tokens lexicographically and removes duplicates.
// Tokens are single digits, so lexicographic order is numeric order.
func (s *ScopeSet) Canonicalize() {
	slices.Sort(s.tokens)
	s.tokens = slices.Compact(s.tokens)
}

// Tokens returns a copy of the current token list.
func (s *ScopeSet) Tokens() []string {
	return slices.Clone(s.tokens)
}

// Len returns the number of tokens held.
func (s *ScopeSet) Len() int {
	return len(s.tokens)
}

// String renders the set in its '/'-joined wire form.
func (s ScopeSet) String() string {
	return strings.Join(s.tokens, "/")
}
