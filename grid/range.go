package grid

// Range is the contiguous, inclusive index range of rows that must be
// materialized for the current viewport. It is always derived, never
// stored: a pure function of the view size, row geometry, and scroll
// offset. An empty Range has End less than Start
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices covered by the Range
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// Contains returns whether the given index falls within the Range
func (r Range) Contains(i int) bool {
	return i >= r.Start && i <= r.End
}

// Offset returns the absolute vertical pixel offset of the given row
// index, so that scroll position is preserved even though only the
// windowed rows are mounted
func Offset(index, rowHeight int) int {
	return index * rowHeight
}

// PadTop returns the pixel height of the unmounted rows preceding the
// Range
func (r Range) PadTop(rowHeight int) int {
	if r.Len() == 0 {
		return 0
	}
	return r.Start * rowHeight
}

// PadBottom returns the pixel height of the unmounted rows following
// the Range, given the total row count
func (r Range) PadBottom(total, rowHeight int) int {
	if r.Len() == 0 || r.End >= total-1 {
		return 0
	}
	return (total - 1 - r.End) * rowHeight
}
