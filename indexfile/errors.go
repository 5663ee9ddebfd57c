package indexfile

import "errors"

var (
	// ErrNotOpen is returned when an index operation is requested
	// without an open file.
	ErrNotOpen = errors.New("indexfile: not open")

	// ErrShortRead is returned when a node block read returned fewer
	// than block.Size bytes, indicating file truncation or corruption.
	ErrShortRead = errors.New("indexfile: short read")

	// ErrLocked is returned when another process already holds the
	// file's exclusive lock.
	ErrLocked = errors.New("indexfile: already locked by another process")
)
