package coord

import "sort"

// hilbertOrder is the side of the Hilbert curve square covering every
// uint8 index pair.
const hilbertOrder = 256

// xyToHilbert converts (x, y) to a Hilbert curve index for an n x n grid.
// n must be a power of two.
func xyToHilbert(x, y, n uint32) uint32 {
	var d uint32
	for s := n / 2; s > 0; s /= 2 {
		var rx, ry uint32
		if x&s > 0 {
			rx = 1
		}
		if y&s > 0 {
			ry = 1
		}
		d += s * s * ((3 * rx) ^ ry)
		if ry == 0 {
			if rx == 1 {
				x = s*2 - 1 - x
				y = s*2 - 1 - y
			}
			x, y = y, x
		}
	}
	return d
}

// HilbertIndex returns the position of g along the Hilbert curve.
func (g Grid) HilbertIndex() uint32 {
	return xyToHilbert(uint32(g.X), uint32(g.Y), hilbertOrder)
}

// SortGridsByHilbert sorts cells by their Hilbert curve index so that
// cells adjacent in the slice are also close on the grid.
func SortGridsByHilbert(cells []Grid) {
	if len(cells) <= 1 {
		return
	}
	indices := make([]uint32, len(cells))
	for i, g := range cells {
		indices[i] = g.HilbertIndex()
	}
	sort.Sort(hilbertSorter{cells: cells, indices: indices})
}

type hilbertSorter struct {
	cells   []Grid
	indices []uint32
}

func (s hilbertSorter) Len() int           { return len(s.cells) }
func (s hilbertSorter) Less(i, j int) bool { return s.indices[i] < s.indices[j] }
func (s hilbertSorter) Swap(i, j int) {
	s.cells[i], s.cells[j] = s.cells[j], s.cells[i]
	s.indices[i], s.indices[j] = s.indices[j], s.indices[i]
}
