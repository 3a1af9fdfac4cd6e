package book

// SideBook is one half of the order book: an ordered map from price tick to
// PriceLevel with side-aware priority. Best access is O(1) via a cached
// pointer, invalidated only when the best level empties or a better level
// appears.
type SideBook struct {
	side   Side
	tree   *rbTree
	best   *PriceLevel
	volume uint64
}

// NewSideBook builds an empty side book for the given side.
func NewSideBook(side Side) *SideBook {
	return &SideBook{side: side, tree: newRBTree()}
}

// Side reports which side of the book this is.
func (b *SideBook) Side() Side { return b.side }

// Best returns the highest-priority level, nil when the side is empty.
func (b *SideBook) Best() *PriceLevel { return b.best }

// Levels returns the number of distinct price levels.
func (b *SideBook) Levels() int { return b.tree.Size() }

// TotalVolume returns the incrementally maintained sum of resting quantity.
func (b *SideBook) TotalVolume() uint64 { return b.volume }

// better reports whether price a has strictly higher priority than b.
func (b *SideBook) better(a, other int64) bool {
	if b.side == Buy {
		return a > other
	}
	return a < other
}

// GetOrCreate returns the level at price, creating it and refreshing the
// cached best if the new level is a new extreme.
func (b *SideBook) GetOrCreate(price int64) *PriceLevel {
	lvl := b.tree.UpsertLevel(price)
	if b.best == nil || b.better(price, b.best.Price) {
		b.best = lvl
	}
	return lvl
}

// RemoveLevel deletes an emptied level. If it was the best, the next best is
// recomputed from the tree extreme.
func (b *SideBook) RemoveLevel(lvl *PriceLevel) {
	b.tree.DeleteLevel(lvl.Price)
	if b.best == lvl {
		if b.side == Buy {
			b.best = b.tree.MaxLevel()
		} else {
			b.best = b.tree.MinLevel()
		}
	}
}

// AddVolume / SubVolume keep the side's aggregate in step with level
// mutations; the engine calls these alongside every enqueue, fill and unlink.
func (b *SideBook) AddVolume(qty uint64) { b.volume += qty }
func (b *SideBook) SubVolume(qty uint64) { b.volume -= qty }

// Walk visits levels in priority order (best first) until fn returns false.
func (b *SideBook) Walk(fn func(*PriceLevel) bool) {
	if b.side == Buy {
		b.tree.ForEachDescending(fn)
	} else {
		b.tree.ForEachAscending(fn)
	}
}

// TopLevels snapshots up to n levels in priority order. The returned slice
// holds values, safe across further mutation.
func (b *SideBook) TopLevels(n int) []LevelSnapshot {
	if n <= 0 {
		return nil
	}
	out := make([]LevelSnapshot, 0, n)
	b.Walk(func(lvl *PriceLevel) bool {
		out = append(out, LevelSnapshot{Price: lvl.Price, TotalQty: lvl.TotalQty, Count: lvl.Count})
		return len(out) < n
	})
	return out
}
