package btree

import "testing"

func TestTraverseInorder_Empty(t *testing.T) {
	bt := openTestTree(t)
	pairs, err := bt.TraverseInorder()
	if err != nil {
		t.Fatalf("TraverseInorder() error = %v", err)
	}
	if len(pairs) != 0 {
		t.Fatalf("len(pairs) = %d, want 0", len(pairs))
	}
}

func TestCursor_MatchesTraverseInorder(t *testing.T) {
	bt := openTestTree(t)
	for k := uint64(0); k < 500; k++ {
		if err := bt.Insert((k*31+7)%500, k); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	materialized, err := bt.TraverseInorder()
	if err != nil {
		t.Fatalf("TraverseInorder() error = %v", err)
	}

	cur, err := bt.Cursor()
	if err != nil {
		t.Fatalf("Cursor() error = %v", err)
	}

	var yielded []Pair
	for {
		p, ok, err := cur.Next()
		if err != nil {
			t.Fatalf("cur.Next() error = %v", err)
		}
		if !ok {
			break
		}
		yielded = append(yielded, p)
	}

	if len(yielded) != len(materialized) {
		t.Fatalf("len(yielded) = %d, len(materialized) = %d", len(yielded), len(materialized))
	}
	for i := range materialized {
		if yielded[i] != materialized[i] {
			t.Fatalf("pair %d: yielded %+v, materialized %+v", i, yielded[i], materialized[i])
		}
	}

	for i := 1; i < len(materialized); i++ {
		if materialized[i-1].Key >= materialized[i].Key {
			t.Fatalf("keys not strictly ascending at %d: %d >= %d", i, materialized[i-1].Key, materialized[i].Key)
		}
	}
}

func TestTraverseInorder_RebuildHasSameSearchBehavior(t *testing.T) {
	bt := openTestTree(t)
	for k := uint64(0); k < 300; k++ {
		if err := bt.Insert((k*17+3)%300, k*2); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}
	pairs, err := bt.TraverseInorder()
	if err != nil {
		t.Fatalf("TraverseInorder() error = %v", err)
	}

	rebuilt := openTestTree(t)
	for _, p := range pairs {
		if err := rebuilt.Insert(p.Key, p.Value); err != nil {
			t.Fatalf("Insert() on rebuilt tree error = %v", err)
		}
	}

	for _, p := range pairs {
		v, found, err := rebuilt.Search(p.Key)
		if err != nil || !found || v != p.Value {
			t.Fatalf("rebuilt Search(%d) = (%d, %v, %v), want (%d, true, nil)", p.Key, v, found, err, p.Value)
		}
	}
}
