// Package extract implements the text-format extract writer: it drains
// a tree's in-order traversal into a "key,value" file, one record per
// line, in ascending key order. It is an external collaborator of the
// B-tree engine (spec §1), reached only through TraverseInorder.
package extract

import (
	"bufio"
	"fmt"
	"os"

	"github.com/tomanathan/4348-Project-3---Git/btree"
)

// Write materializes tree's entries and writes them to path as
// decimal "key,value" lines in ascending key order.
func Write(tree *btree.BTree, path string) error {
	pairs, err := tree.TraverseInorder()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("extract: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, p := range pairs {
		if _, err := fmt.Fprintf(w, "%d,%d\n", p.Key, p.Value); err != nil {
			return fmt.Errorf("extract: write %s: %w", path, err)
		}
	}
	return w.Flush()
}
