// Package indexfile owns the on-disk representation of a B-tree index:
// a single flat file of Size-byte blocks, block 0 holding the header and
// every other block holding one B-tree node. It performs no buffering or
// caching beyond what the OS provides — every read and write is an
// explicit, whole-block operation against the file handle.
package indexfile

import (
	"fmt"
	"os"

	"github.com/tomanathan/4348-Project-3---Git/block"
)

// File is a single open index file. All of its operations are blocking
// and intended for single-threaded, single-writer use: the on-disk
// format carries no concurrency control of its own, see spec §5.
type File struct {
	path   string
	f      *os.File
	header *block.Header
}

// Create truncates or creates the file at path and writes a fresh
// header with RootID 0 and NextBlockID 1.
func Create(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("indexfile: create %s: %w", path, err)
	}
	if err := lockFile(f); err != nil {
		f.Close()
		return nil, err
	}

	h := block.NewHeader()
	idx := &File{path: path, f: f, header: h}
	if err := idx.SyncHeader(); err != nil {
		idx.Close()
		return nil, err
	}
	return idx, nil
}

// Open opens an existing index file at path for reading and writing. It
// fails with block.ErrInvalidHeader if the file is shorter than a block
// or its magic tag does not match.
func Open(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("indexfile: open %s: %w", path, err)
	}
	if err := lockFile(f); err != nil {
		f.Close()
		return nil, err
	}

	buf := make([]byte, block.Size)
	n, err := f.ReadAt(buf, 0)
	if err != nil && n < block.Size {
		f.Close()
		return nil, block.ErrInvalidHeader
	}

	h, err := block.DecodeHeader(buf)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &File{path: path, f: f, header: h}, nil
}

// Close releases the file's lock and closes the underlying handle.
func (idx *File) Close() error {
	if idx == nil || idx.f == nil {
		return ErrNotOpen
	}
	unlockFile(idx.f)
	err := idx.f.Close()
	idx.f = nil
	return err
}

// RootID returns the current root block id (0 if the tree is empty).
func (idx *File) RootID() uint64 {
	return idx.header.RootID
}

// SetRootID updates the in-memory root pointer. The caller must call
// SyncHeader to persist it.
func (idx *File) SetRootID(id uint64) {
	idx.header.RootID = id
}

// NextBlockID returns the id that the next Allocate call will assign.
func (idx *File) NextBlockID() uint64 {
	return idx.header.NextBlockID
}

// ReadNode reads and decodes the node stored at id. It fails with
// ErrShortRead if fewer than block.Size bytes are available at that
// offset.
func (idx *File) ReadNode(id uint64) (*block.Node, error) {
	if idx.f == nil {
		return nil, ErrNotOpen
	}
	buf := make([]byte, block.Size)
	n, err := idx.f.ReadAt(buf, int64(id)*block.Size)
	if err != nil && n < block.Size {
		return nil, ErrShortRead
	}
	return block.DecodeNode(buf), nil
}

// WriteNode encodes node and writes it to its own block id.
func (idx *File) WriteNode(node *block.Node) error {
	if idx.f == nil {
		return ErrNotOpen
	}
	_, err := idx.f.WriteAt(node.Encode(), int64(node.BlockID)*block.Size)
	if err != nil {
		return fmt.Errorf("indexfile: write node %d: %w", node.BlockID, err)
	}
	return nil
}

// Allocate constructs an in-memory node with the next free block id,
// bumps NextBlockID, and rewrites the header. The caller is responsible
// for writing the new node's block after populating it; until then the
// block on disk may be missing or hold stale bytes.
func (idx *File) Allocate() (*block.Node, error) {
	if idx.f == nil {
		return nil, ErrNotOpen
	}
	node := &block.Node{BlockID: idx.header.NextBlockID}
	idx.header.NextBlockID++
	if err := idx.SyncHeader(); err != nil {
		return nil, err
	}
	return node, nil
}

// SyncHeader rewrites block 0 from the current RootID and NextBlockID.
func (idx *File) SyncHeader() error {
	if idx.f == nil {
		return ErrNotOpen
	}
	_, err := idx.f.WriteAt(idx.header.Encode(), 0)
	if err != nil {
		return fmt.Errorf("indexfile: sync header: %w", err)
	}
	return nil
}
