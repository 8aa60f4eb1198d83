package xs

import "math"

// logBucket computes the shared logarithmic-lattice bucket index spec.md
// §4.1 step 3 and §4.2's grid search both consult: a mapping from energy
// alone to an integer bucket, so every nuclide and temperature gets the same
// bucket for a given E. NuclideXS computes it on each recompute and looks it
// up in the GridIndex table of the temperature it selected.
func logBucket(e, eMin, logSpacing float64) int {
	return int(math.Floor(math.Log(e/eMin) / logSpacing))
}

// window returns the [low, high] grid-index search range for bucket
// iLogUnion, clamping the bucket to the table's bounds the way a boundary
// energy naturally would.
func (t *TempXS) window(iLogUnion int) (low, high int) {
	n := len(t.GridIndex)
	if iLogUnion < 0 {
		iLogUnion = 0
	}
	if iLogUnion >= n {
		iLogUnion = n - 1
	}
	nextIdx := iLogUnion + 1
	if nextIdx >= n {
		nextIdx = n - 1
	}
	low = t.GridIndex[iLogUnion][0]
	high = t.GridIndex[nextIdx][1] + 1
	return low, high
}

// gridIndexSearch implements spec.md §4.2's energy-grid search for a single
// temperature's table: returns iGrid and the interpolation factor f such
// that grid[iGrid] <= E < grid[iGrid+1], except at the documented
// boundary-clamp cases.
func gridIndexSearch(t *TempXS, iLogUnion int, e float64) (iGrid int, f float64) {
	grid := t.Grid
	n := len(grid)

	switch {
	case e < grid[0]:
		iGrid = 0
		f = 0
	case e >= grid[n-1]:
		iGrid = n - 2
		f = 1
	default:
		low, high := t.window(iLogUnion)
		if low < 0 {
			low = 0
		}
		if high > n-1 {
			high = n - 1
		}
		iGrid = binarySearchBracket(grid, low, high, e)
		if grid[iGrid] == grid[iGrid+1] {
			iGrid++
		}
		f = (e - grid[iGrid]) / (grid[iGrid+1] - grid[iGrid])
	}
	return iGrid, f
}

// binarySearchBracket returns the largest i in [low, high) with grid[i] <= e,
// assuming grid is ascending and grid[low] <= e < grid[high].
func binarySearchBracket(grid []float64, low, high int, e float64) int {
	lo, hi := low, high
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if grid[mid] <= e {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
