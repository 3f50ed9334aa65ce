package domain

import "errors"

// ErrNotFound indicates the requested entity does not exist. Handlers map it
// to an empty/absent result rather than a failure.
var ErrNotFound = errors.New("not found")
