package resolve

import "fmt"

// UnknownNameError is the fatal error for a leaf entry naming a pkg that the
// pattern table does not contain.
type UnknownNameError struct {
	Name string
	Cell string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown pkg name %q (cell %q)", e.Name, e.Cell)
}

// UnknownGroupError is the fatal error for a redirect naming a group the
// trade-setting grid does not define.
type UnknownGroupError struct {
	Group string
	Cell  string
}

func (e *UnknownGroupError) Error() string {
	return fmt.Sprintf("unknown group %q (cell %q)", e.Group, e.Cell)
}
