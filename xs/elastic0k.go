package xs

// Elastic0K evaluates a nuclide's pure 0 K free-atom elastic cross section,
// per spec.md §4.7. It is a shared helper used both by freeAtomElastic
// below and, outside this package's scope, by resonance-scattering
// sampling.
func Elastic0K(n *Nuclide, e float64) float64 {
	grid, values := n.Elastic0KGrid, n.Elastic0KValues
	nPts := len(grid)

	var i int
	var f float64
	switch {
	case e < grid[0]:
		i, f = 0, 0
	case e >= grid[nPts-1]:
		i, f = nPts-2, 1
	default:
		i = binarySearchBracket(grid, 0, nPts-1, e)
		if grid[i] == grid[i+1] {
			i++
		}
		f = (e - grid[i]) / (grid[i+1] - grid[i])
	}
	return (1-f)*values[i] + f*values[i+1]
}

// freeAtomElastic returns the cached nuclide's free-atom elastic cross
// section at the temperature/energy the cache entry was last computed for,
// per spec.md §4.7: the tabulated reaction[1] value at the cache's
// (IndexGrid, InterpFactor) when the tabulated branch was used, or
// Total-Absorption when the multipole branch was used.
func freeAtomElastic(c *MicroCacheEntry, n *Nuclide) float64 {
	if c.UsedMultipole() {
		return c.Total - c.Absorption
	}
	tab := n.Temps[c.IndexTemp].Elastic
	lo := c.IndexGrid
	if lo+1 >= len(tab) {
		return tab[len(tab)-1]
	}
	return (1-c.InterpFactor)*tab[lo] + c.InterpFactor*tab[lo+1]
}
