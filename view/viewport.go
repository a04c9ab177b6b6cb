package view

import "github.com/kode4food/gridiron/grid"

// ComputeRange derives the inclusive index range of rows that must be
// materialized for a viewport. The range extends overscan rows beyond
// each visible edge and is clamped so that it never requests an index
// outside the collection. A zero or negative total yields an empty
// Range. It must be recomputed on every scroll or resize event
func ComputeRange(
	total, rowHeight, viewportHeight, scrollOffset, overscan int,
) grid.Range {
	if total <= 0 || rowHeight <= 0 {
		return grid.Range{Start: 0, End: -1}
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}

	start := scrollOffset/rowHeight - overscan
	if start < 0 {
		start = 0
	}
	if start > total-1 {
		start = total - 1
	}

	end := ceilDiv(scrollOffset+viewportHeight, rowHeight) + overscan
	if end > total-1 {
		end = total - 1
	}
	return grid.Range{Start: start, End: end}
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
