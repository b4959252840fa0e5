package record

import "errors"

var (
	// ErrNotFound reports a record document that does not exist.
	ErrNotFound = errors.New("record: not found")
	// ErrMalformed reports a document that could not be decoded.
	ErrMalformed = errors.New("record: malformed document")
	// ErrInvalidSlug reports a slug that cannot name a file in the data dir.
	ErrInvalidSlug = errors.New("record: invalid slug")
)
