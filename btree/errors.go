package btree

import "errors"

var (
	// ErrDuplicateKey is returned by Insert when the key is already
	// present. The tree is left unchanged.
	ErrDuplicateKey = errors.New("btree: duplicate key")
)
