package document

import "errors"

var (
	// ErrUnsupportedFormat is returned at dispatch time for extensions
	// outside the supported set. Fatal for that file only.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrNoDocuments signals that a load produced zero chunks and the
	// caller should not attempt indexing.
	ErrNoDocuments = errors.New("no documents to index")
)
