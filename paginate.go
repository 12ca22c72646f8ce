package pnptex

// chunk splits items into groups of at most capacity, preserving order.
// The final group holds the remainder and is never padded. Empty input
// yields no groups. capacity must be positive.
func chunk(items []string, capacity int) [][]string {
	if len(items) == 0 {
		return nil
	}
	pages := make([][]string, 0, (len(items)+capacity-1)/capacity)
	for start := 0; start < len(items); start += capacity {
		end := start + capacity
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, items[start:end])
	}
	return pages
}

// repeat returns a slice of n copies of path. Used to build back-plate
// pages mirroring the shape of a front page.
func repeat(path string, n int) []string {
	backs := make([]string, n)
	for i := range backs {
		backs[i] = path
	}
	return backs
}

// abilityPages paginates ability-card fronts and interleaves a matching
// back-plate page directly after each front page, so double-sided
// printing keeps fronts and backs aligned.
//
// Page count is strict ceiling division. The historical behavior of
// emitting one trailing empty front/back pair when the card count is an
// exact multiple of the capacity was an off-by-one, not a feature.
func abilityPages(fronts []string, back string, cfg LayoutConfig) [][]string {
	frontPages := chunk(fronts, cfg.AbilityPageCapacity())
	pages := make([][]string, 0, 2*len(frontPages))
	for _, p := range frontPages {
		pages = append(pages, p)
		pages = append(pages, repeat(back, len(p)))
	}
	return pages
}

// amdSequence flattens AMD and NON_AMD cards into the single sequence
// that AMD-size pages are cut from: all fronts (AMD first), then all
// backs in the same order, each category paired with its own back-plate.
func amdSequence(b *Bundle) []string {
	n := len(b.AMD) + len(b.NonAMD)
	seq := make([]string, 0, 2*n)
	seq = append(seq, b.AMD...)
	seq = append(seq, b.NonAMD...)
	seq = append(seq, repeat(b.AMDBack, len(b.AMD))...)
	seq = append(seq, repeat(b.NonAMDBack, len(b.NonAMD))...)
	return seq
}
