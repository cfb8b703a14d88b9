package sequence

import (
	"fmt"
)

// ComparisonError represents a panic that occurred inside a comparison function.
// Errors returned by a comparator are passed through unchanged and never wrapped.
type ComparisonError struct {
	// Cause is the value the comparator panicked with
	Cause interface{}
	// Context names the operation that was running the comparator
	Context string
}

func (e *ComparisonError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("comparison panic in %s: %v", e.Context, e.Cause)
	}
	return fmt.Sprintf("comparison panic: %v", e.Cause)
}

func (e *ComparisonError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// NewComparisonError creates a ComparisonError
func NewComparisonError(cause interface{}, context string) error {
	return &ComparisonError{Cause: cause, Context: context}
}
