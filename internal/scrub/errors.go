package scrub

import "fmt"

// ColumnNotFoundError reports that a required column is missing from a
// file's header. File is attached by the caller that knows the path.
type ColumnNotFoundError struct {
	File   string
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("column %q not found in header", e.Column)
	}
	return fmt.Sprintf("column %q not found in %s", e.Column, e.File)
}
