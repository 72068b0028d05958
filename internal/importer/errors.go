package importer

import "errors"

var (
	// ErrUnsupportedFormat is returned for file extensions or format names
	// the importer cannot decode.
	ErrUnsupportedFormat = errors.New("unsupported schedule format")

	// ErrInvalidDocument wraps the joined validation errors of a document.
	ErrInvalidDocument = errors.New("invalid schedule document")
)
