package download

import "errors"

// Failure kinds. Task failures wrap one of these, so a reason reads
// "<kind>: <detail>".
var (
	ErrNoIdentifier = errors.New("no identifier found")
	ErrBadStatus    = errors.New("non-200 status")
	ErrWrite        = errors.New("write error")
	ErrNetwork      = errors.New("network error")
	ErrUnexpected   = errors.New("unexpected error")
)
