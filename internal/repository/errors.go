package repository

import "errors"

// ErrUnavailable is returned when the persistence collaborator rejects or
// cannot accept a write. Callers surface it as a generic failure; the detail
// stays in server-side logs.
var ErrUnavailable = errors.New("persistence unavailable")
