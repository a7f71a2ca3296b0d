package database

import (
	"errors"
	"fmt"
)

// ErrUnsupportedType marks a storage cell type outside the five supported
// kinds. It is unrecoverable: the browser cannot represent the value and
// terminates rather than display a corrupted table.
var ErrUnsupportedType = errors.New("unsupported column type")

// QueryError wraps a failed table or column reference. It aborts the
// in-flight refresh; the previous state is retained.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query failed: %s: %v", e.Query, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
