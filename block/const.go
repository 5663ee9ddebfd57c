// Package block implements the on-disk block codec: pure functions that
// translate the file header and B-tree nodes to and from the fixed
// 512-byte blocks that make up an index file.
package block

const (
	// Size is the fixed size of every block in an index file, including
	// the header block.
	Size = 512

	// Degree is the B-tree's minimal degree T. Every non-root node holds
	// between Degree-1 and 2*Degree-1 keys.
	Degree = 10

	// MaxKeys is the maximum number of keys a node can hold (2T-1).
	MaxKeys = 2*Degree - 1

	// MaxChildren is the maximum number of child pointers a node can hold (2T).
	MaxChildren = 2 * Degree

	// Magic identifies a valid index file. It is exactly 8 bytes.
	Magic = "4337PRJ3"

	fieldWidth = 8 // every header/node field is a big-endian uint64
)
