package port

import "errors"

// ErrNotFound is returned by repositories when no record exists for an id.
var ErrNotFound = errors.New("record not found")
