package pattern

import "fmt"

// DuplicateKind names which unique column a DuplicateError violated.
type DuplicateKind string

const (
	// DuplicateRouteID marks two rows sharing a route ID.
	DuplicateRouteID DuplicateKind = "route-id"
	// DuplicateName marks two rows sharing a PKG name.
	DuplicateName DuplicateKind = "pkg-name"
)

// DuplicateError is the fatal load-time error for a uniqueness violation in
// the pattern table. Rows are zero-based table indexes.
type DuplicateError struct {
	Kind      DuplicateKind
	Value     string
	FirstRow  int
	SecondRow int
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s %q: rows %d and %d", e.Kind, e.Value, e.FirstRow, e.SecondRow)
}
