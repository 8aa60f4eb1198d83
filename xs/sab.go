package xs

import "github.com/openmc-go/xscore/xs/rng"

// SabEval evaluates S(alpha,beta) thermal inelastic and elastic cross
// sections at (E, sqrtKT) and folds them into the host nuclide's cache
// entry, per spec.md §4.3. iSab is the nuclide-slot-relative override
// already resolved by MaterialXS, and sabFrac is the S(alpha,beta) table's
// bound-scatterer fraction.
func SabEval(c *MicroCacheEntry, n *Nuclide, sab *SabTable, iSab int, e, sqrtKT float64, sabFrac float64, cfg Config, stream rng.Stream) {
	c.IndexSab = iSab

	iTemp := sabTempIndex(sab, sqrtKT, cfg, stream)
	c.IndexTempSab = iTemp
	c.SabFrac = sabFrac
	temp := sab.Temps[iTemp]

	inelastic := interpolate1D(temp.InelasticGrid, temp.InelasticXS, e)

	var elasticSab float64
	if e < temp.ThresholdElastic {
		switch temp.ElasticMode {
		case SabElasticCoherentExact:
			if len(temp.ElasticGrid) == 0 || e < temp.ElasticGrid[0] {
				elasticSab = 0
			} else {
				i := binarySearchBracket(temp.ElasticGrid, 0, len(temp.ElasticGrid)-1, e)
				elasticSab = temp.ElasticP[i] / e
			}
		default: // incoherent
			elasticSab = interpolate1D(temp.ElasticGrid, temp.ElasticP, e)
		}
	}

	elasticFree := freeAtomElastic(c, n)

	c.Thermal = sabFrac * (elasticSab + inelastic)
	c.ThermalElastic = sabFrac * elasticSab
	c.Total = c.Total + c.Thermal - sabFrac*elasticFree
	c.Elastic = c.Thermal + (1-sabFrac)*elasticFree
}

// sabTempIndex selects the S(alpha,beta) temperature row, per spec.md
// §4.3: nearest uses a linear scan with a |delta kT| < k_B*tolerance
// acceptance window, interpolated uses the same stochastic bracket rule as
// the tabulated branch (spec.md §4.2).
func sabTempIndex(sab *SabTable, sqrtKT float64, cfg Config, stream rng.Stream) int {
	kT := sqrtKT * sqrtKT
	if cfg.TemperatureMethod == TemperatureMethodNearest {
		tol := cfg.temperatureToleranceInEV()
		for i, t := range sab.KTs {
			if absF(t-kT) < tol {
				return i
			}
		}
		return sab.nearestTempIndex(kT)
	}
	return stochasticTempIndex(sab.KTs, kT, stream)
}

// stochasticTempIndex implements the shared stochastic temperature
// interpolation rule of spec.md §4.2: bracket kT between two tabulated
// temperatures, draw a uniform sample, and advance to the upper bracket
// when the linear fraction exceeds the draw.
func stochasticTempIndex(kTs []float64, kT float64, stream rng.Stream) int {
	i := 0
	for i < len(kTs)-1 && kTs[i+1] <= kT {
		i++
	}
	if i >= len(kTs)-1 {
		return len(kTs) - 1
	}
	f := (kT - kTs[i]) / (kTs[i+1] - kTs[i])
	u := stream.Uniform()
	if f > u {
		i++
	}
	return i
}

func interpolate1D(grid, values []float64, e float64) float64 {
	n := len(grid)
	if n == 0 {
		return 0
	}
	if e < grid[0] {
		return values[0] // f == 0, clamp to first value
	}
	if e >= grid[n-1] {
		return values[n-1]
	}
	i := binarySearchBracket(grid, 0, n-1, e)
	f := (e - grid[i]) / (grid[i+1] - grid[i])
	return (1-f)*values[i] + f*values[i+1]
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
