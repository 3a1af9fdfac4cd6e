package book

import "testing"

func TestRBTreeInsertFindDelete(t *testing.T) {
	tree := newRBTree()
	pl1 := tree.UpsertLevel(100)
	if pl1 == nil {
		t.Fatal("UpsertLevel failed")
	}
	if pl2 := tree.FindLevel(100); pl2 != pl1 {
		t.Error("FindLevel did not return same PriceLevel")
	}

	tree.UpsertLevel(200)
	if tree.MinLevel().Price != 100 {
		t.Error("expected min=100")
	}
	if tree.MaxLevel().Price != 200 {
		t.Error("expected max=200")
	}

	if !tree.DeleteLevel(100) {
		t.Error("DeleteLevel failed")
	}
	if tree.FindLevel(100) != nil {
		t.Error("expected level 100 to be gone")
	}
}

func TestRBTreeDeleteNonExistentLevel(t *testing.T) {
	tree := newRBTree()
	if tree.DeleteLevel(123) {
		t.Error("expected false when deleting non-existent level")
	}
}

func TestRBTreeEmptyMinMax(t *testing.T) {
	tree := newRBTree()
	if tree.MinLevel() != nil || tree.MaxLevel() != nil {
		t.Error("expected nil for min/max on empty tree")
	}
}

func TestRBTreeUpsertDuplicateLevel(t *testing.T) {
	tree := newRBTree()
	pl1 := tree.UpsertLevel(150)
	pl2 := tree.UpsertLevel(150)
	if pl1 != pl2 {
		t.Error("Upsert should return the same level for a duplicate price")
	}
	if tree.Size() != 1 {
		t.Errorf("expected size 1, got %d", tree.Size())
	}
}

func TestRBTreeOrderedWalk(t *testing.T) {
	tree := newRBTree()
	prices := []int64{500, 100, 900, 300, 700, 200, 800, 400, 600}
	for _, p := range prices {
		tree.UpsertLevel(p)
	}

	var asc []int64
	tree.ForEachAscending(func(pl *PriceLevel) bool {
		asc = append(asc, pl.Price)
		return true
	})
	for i := 1; i < len(asc); i++ {
		if asc[i-1] >= asc[i] {
			t.Fatalf("ascending walk out of order at %d: %v", i, asc)
		}
	}
	if len(asc) != len(prices) {
		t.Fatalf("expected %d levels, got %d", len(prices), len(asc))
	}

	var desc []int64
	tree.ForEachDescending(func(pl *PriceLevel) bool {
		desc = append(desc, pl.Price)
		return true
	})
	for i := 1; i < len(desc); i++ {
		if desc[i-1] <= desc[i] {
			t.Fatalf("descending walk out of order at %d: %v", i, desc)
		}
	}
}

func TestRBTreeWalkEarlyStop(t *testing.T) {
	tree := newRBTree()
	for p := int64(1); p <= 10; p++ {
		tree.UpsertLevel(p)
	}
	visited := 0
	tree.ForEachAscending(func(pl *PriceLevel) bool {
		visited++
		return visited < 3
	})
	if visited != 3 {
		t.Errorf("expected walk to stop after 3 levels, visited %d", visited)
	}
}

func TestRBTreeDeleteRebalances(t *testing.T) {
	tree := newRBTree()
	for p := int64(1); p <= 64; p++ {
		tree.UpsertLevel(p)
	}
	for p := int64(2); p <= 64; p += 2 {
		if !tree.DeleteLevel(p) {
			t.Fatalf("delete %d failed", p)
		}
	}
	if tree.Size() != 32 {
		t.Fatalf("expected 32 levels, got %d", tree.Size())
	}
	if tree.MinLevel().Price != 1 || tree.MaxLevel().Price != 63 {
		t.Errorf("unexpected extremes: min=%d max=%d", tree.MinLevel().Price, tree.MaxLevel().Price)
	}
}
