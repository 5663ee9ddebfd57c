package btree

import "github.com/tomanathan/4348-Project-3---Git/block"

// Cursor yields a tree's entries in ascending key order, one at a time,
// without materializing the whole sequence. It reads nodes lazily as the
// traversal descends, the way the print command consumes entries.
type Cursor struct {
	bt    *BTree
	stack []*cursorFrame
}

type cursorFrame struct {
	node *block.Node
	i    uint64
}

// Cursor returns a cursor positioned before the first entry.
func (bt *BTree) Cursor() (*Cursor, error) {
	c := &Cursor{bt: bt}
	if err := c.pushLeftSpine(bt.file.RootID()); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Cursor) pushLeftSpine(id uint64) error {
	for id != 0 {
		node, err := c.bt.file.ReadNode(id)
		if err != nil {
			return err
		}
		c.stack = append(c.stack, &cursorFrame{node: node})
		id = node.Children[0]
	}
	return nil
}

// Next advances the cursor and returns the next pair in ascending key
// order. ok is false once the traversal is exhausted.
func (c *Cursor) Next() (pair Pair, ok bool, err error) {
	if len(c.stack) == 0 {
		return Pair{}, false, nil
	}

	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]

	pair = Pair{Key: top.node.Keys[top.i], Value: top.node.Values[top.i]}
	nextChild := top.node.Children[top.i+1]
	top.i++
	if top.i < top.node.N {
		c.stack = append(c.stack, top)
	}

	if err := c.pushLeftSpine(nextChild); err != nil {
		return Pair{}, false, err
	}
	return pair, true, nil
}

// TraverseInorder materializes the tree's entries in ascending key
// order, for use by extract and similar bulk consumers.
func (bt *BTree) TraverseInorder() ([]Pair, error) {
	cur, err := bt.Cursor()
	if err != nil {
		return nil, err
	}

	var pairs []Pair
	for {
		p, ok, err := cur.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}
