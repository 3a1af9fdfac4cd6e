package book

import "testing"

func TestSideBookBestBuyDescending(t *testing.T) {
	b := NewSideBook(Buy)
	b.GetOrCreate(100)
	b.GetOrCreate(300)
	b.GetOrCreate(200)
	if b.Best().Price != 300 {
		t.Errorf("expected best bid 300, got %d", b.Best().Price)
	}
}

func TestSideBookBestSellAscending(t *testing.T) {
	b := NewSideBook(Sell)
	b.GetOrCreate(300)
	b.GetOrCreate(100)
	b.GetOrCreate(200)
	if b.Best().Price != 100 {
		t.Errorf("expected best ask 100, got %d", b.Best().Price)
	}
}

func TestSideBookRemoveBestRecomputes(t *testing.T) {
	b := NewSideBook(Buy)
	b.GetOrCreate(100)
	lvl := b.GetOrCreate(300)
	b.GetOrCreate(200)

	b.RemoveLevel(lvl)
	if b.Best().Price != 200 {
		t.Errorf("expected next best 200, got %d", b.Best().Price)
	}

	b.RemoveLevel(b.Best())
	if b.Best().Price != 100 {
		t.Errorf("expected next best 100, got %d", b.Best().Price)
	}

	b.RemoveLevel(b.Best())
	if b.Best() != nil {
		t.Error("expected nil best on empty side")
	}
}

func TestSideBookRemoveNonBestKeepsBest(t *testing.T) {
	b := NewSideBook(Sell)
	best := b.GetOrCreate(100)
	mid := b.GetOrCreate(200)
	b.GetOrCreate(300)

	b.RemoveLevel(mid)
	if b.Best() != best {
		t.Error("removing a non-best level must not disturb the cached best")
	}
}

func TestSideBookTopLevels(t *testing.T) {
	b := NewSideBook(Buy)
	for _, p := range []int64{100, 300, 200, 500, 400} {
		lvl := b.GetOrCreate(p)
		lvl.Enqueue(&Order{ID: uint64(p), Qty: uint32(p)})
	}

	top := b.TopLevels(3)
	if len(top) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(top))
	}
	want := []int64{500, 400, 300}
	for i, snap := range top {
		if snap.Price != want[i] {
			t.Errorf("position %d: expected %d, got %d", i, want[i], snap.Price)
		}
		if snap.Count != 1 || snap.TotalQty != uint64(want[i]) {
			t.Errorf("position %d: bad aggregates %+v", i, snap)
		}
	}

	if got := b.TopLevels(10); len(got) != 5 {
		t.Errorf("expected all 5 levels when depth exceeds book, got %d", len(got))
	}
	if got := b.TopLevels(0); got != nil {
		t.Error("expected nil for zero depth")
	}
}

func TestSideBookVolumeTracking(t *testing.T) {
	b := NewSideBook(Sell)
	b.AddVolume(50)
	b.AddVolume(30)
	b.SubVolume(20)
	if b.TotalVolume() != 60 {
		t.Errorf("expected volume 60, got %d", b.TotalVolume())
	}
}
