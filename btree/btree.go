// Package btree implements the split-on-the-way-down B-tree engine: a
// search descends the index file's nodes by block id, and a
// full node is always split before insertion recurses into it. The
// engine caches nothing — every step re-reads the node it is about to
// touch, and every mutation is a whole-block rewrite.
package btree

import (
	"github.com/tomanathan/4348-Project-3---Git/block"
	"github.com/tomanathan/4348-Project-3---Git/indexfile"
)

// Pair is one (key, value) entry yielded by traversal.
type Pair struct {
	Key   uint64
	Value uint64
}

// BTree is a B-tree index backed by an open indexfile.File.
type BTree struct {
	file *indexfile.File
}

// Open wraps an already-open index file with the B-tree engine.
func Open(f *indexfile.File) *BTree {
	return &BTree{file: f}
}

// Search looks up key. found is false if the tree is empty or key was
// never inserted.
func (bt *BTree) Search(key uint64) (value uint64, found bool, err error) {
	id := bt.file.RootID()
	if id == 0 {
		return 0, false, nil
	}

	for {
		node, err := bt.file.ReadNode(id)
		if err != nil {
			return 0, false, err
		}

		i, exact := locate(node, key)
		if exact {
			return node.Values[i], true, nil
		}
		if node.IsLeaf() {
			return 0, false, nil
		}
		id = node.Children[i]
	}
}

// Insert adds key/value to the tree. It returns ErrDuplicateKey, leaving
// the tree unchanged, if key is already present.
func (bt *BTree) Insert(key, value uint64) error {
	_, found, err := bt.Search(key)
	if err != nil {
		return err
	}
	if found {
		return ErrDuplicateKey
	}

	if bt.file.RootID() == 0 {
		root, err := bt.file.Allocate()
		if err != nil {
			return err
		}
		root.N = 1
		root.Keys[0] = key
		root.Values[0] = value
		if err := bt.file.WriteNode(root); err != nil {
			return err
		}
		bt.file.SetRootID(root.BlockID)
		return bt.file.SyncHeader()
	}

	root, err := bt.file.ReadNode(bt.file.RootID())
	if err != nil {
		return err
	}

	if root.N == block.MaxKeys {
		newRoot, err := bt.file.Allocate()
		if err != nil {
			return err
		}
		newRoot.Children[0] = root.BlockID
		root.ParentID = newRoot.BlockID
		if err := bt.file.WriteNode(root); err != nil {
			return err
		}
		if err := bt.file.WriteNode(newRoot); err != nil {
			return err
		}
		if err := bt.splitChild(newRoot.BlockID, 0); err != nil {
			return err
		}
		if err := bt.insertNonfull(newRoot.BlockID, key, value); err != nil {
			return err
		}
		bt.file.SetRootID(newRoot.BlockID)
		return bt.file.SyncHeader()
	}

	return bt.insertNonfull(root.BlockID, key, value)
}

// insertNonfull inserts key/value into the subtree rooted at id, which
// must have fewer than block.MaxKeys keys. The node is re-read from disk
// on entry so that a split performed earlier in this same Insert call is
// visible.
func (bt *BTree) insertNonfull(id, key, value uint64) error {
	node, err := bt.file.ReadNode(id)
	if err != nil {
		return err
	}

	i, _ := locate(node, key)

	if node.IsLeaf() {
		for j := int(node.N); j > i; j-- {
			node.Keys[j] = node.Keys[j-1]
			node.Values[j] = node.Values[j-1]
		}
		node.Keys[i] = key
		node.Values[i] = value
		node.N++
		return bt.file.WriteNode(node)
	}

	childID := node.Children[i]
	child, err := bt.file.ReadNode(childID)
	if err != nil {
		return err
	}

	if child.N == block.MaxKeys {
		if err := bt.splitChild(node.BlockID, i); err != nil {
			return err
		}
		node, err = bt.file.ReadNode(node.BlockID)
		if err != nil {
			return err
		}
		if key > node.Keys[i] {
			i++
		}
		childID = node.Children[i]
	}

	return bt.insertNonfull(childID, key, value)
}

// splitChild splits the full child at parent.Children[i] into two nodes
// of Degree-1 keys each, promoting the median key/value into parent at
// index i. Precondition: parent has fewer than block.MaxKeys keys and
// the child is full.
func (bt *BTree) splitChild(parentID uint64, i int) error {
	parent, err := bt.file.ReadNode(parentID)
	if err != nil {
		return err
	}

	child, err := bt.file.ReadNode(parent.Children[i])
	if err != nil {
		return err
	}
	childWasLeaf := child.IsLeaf()

	right, err := bt.file.Allocate()
	if err != nil {
		return err
	}
	right.ParentID = parentID

	const mid = block.Degree - 1 // 9

	for j := 0; j < block.Degree-1; j++ {
		right.Keys[j] = child.Keys[j+block.Degree]
		right.Values[j] = child.Values[j+block.Degree]
	}
	right.N = block.Degree - 1

	if !childWasLeaf {
		for j := 0; j < block.Degree; j++ {
			right.Children[j] = child.Children[j+block.Degree]
		}
	}

	for j := int(parent.N); j > i; j-- {
		parent.Children[j+1] = parent.Children[j]
	}
	parent.Children[i+1] = right.BlockID

	for j := int(parent.N) - 1; j >= i; j-- {
		parent.Keys[j+1] = parent.Keys[j]
		parent.Values[j+1] = parent.Values[j]
	}

	parent.Keys[i] = child.Keys[mid]
	parent.Values[i] = child.Values[mid]
	parent.N++

	child.N = block.Degree - 1
	for k := mid; k <= 2*block.Degree-2; k++ {
		child.Keys[k] = 0
		child.Values[k] = 0
	}
	if !childWasLeaf {
		for k := block.Degree; k <= 2*block.Degree-1; k++ {
			child.Children[k] = 0
		}
	}

	if err := bt.file.WriteNode(child); err != nil {
		return err
	}
	if err := bt.file.WriteNode(right); err != nil {
		return err
	}
	return bt.file.WriteNode(parent)
}

// locate returns the smallest index i in 0..node.N with node.Keys[i] >=
// key (or node.N if none), and whether that slot is an exact match.
func locate(node *block.Node, key uint64) (idx int, exact bool) {
	lo, hi := 0, int(node.N)
	for lo < hi {
		mid := (lo + hi) / 2
		if node.Keys[mid] < key {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < int(node.N) && node.Keys[lo] == key
}
