package xml

import "fmt"

// TreeError represents a tree-level failure with a name and message.
type TreeError struct {
	Name    string
	Message string
}

func (e *TreeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

// ErrDecode creates a DecodeError. It is reported when parse-event input
// carries text that is not valid UTF-8, or when the token stream itself is
// malformed.
func ErrDecode(message string) *TreeError {
	return &TreeError{Name: "DecodeError", Message: message}
}

// ErrHierarchy creates a HierarchyError. It is reported by the strict
// insertion entrypoints when an insertion would make a node its own
// descendant.
func ErrHierarchy(message string) *TreeError {
	return &TreeError{Name: "HierarchyError", Message: message}
}
