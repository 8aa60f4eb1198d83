package xs

import (
	"math"
	"sort"

	"github.com/openmc-go/xscore/xs/rng"
)

// UrrEval samples a band from the nuclide's unresolved-resonance
// probability table at E, using the table of the temperature row the cache
// entry's IndexTemp already selected, interpolates across the bracketing
// energy rows, optionally multiplies by the smooth tabulated background,
// and recomputes the cache entry's total cross section, per spec.md §4.4.
// nuclideID keys the dedicated URR stream draw so that the same nuclide
// sampled at different temperatures draws the same r, preserving
// temperature correlation.
func UrrEval(c *MicroCacheEntry, n *Nuclide, e float64, nuclideID int64, stream rng.Stream) {
	c.UsePTable = true
	urr := n.Temps[c.IndexTemp].Urr

	iEnergy := 0
	for iEnergy < len(urr.Energy)-2 && urr.Energy[iEnergy+1] <= e {
		iEnergy++
	}
	f := (e - urr.Energy[iEnergy]) / (urr.Energy[iEnergy+1] - urr.Energy[iEnergy])

	var r float64
	rng.WithStream(stream, rng.StreamURRPTable, func() {
		r = stream.FuturePRN(nuclideID)
	})

	low := urr.Bands[iEnergy]
	up := urr.Bands[iEnergy+1]
	iLow := bandIndex(low, r)
	iUp := bandIndex(up, r)

	var elastic, fission, capture float64
	if urr.Interpolation == LogLog {
		fLog := math.Log(e/urr.Energy[iEnergy]) / math.Log(urr.Energy[iEnergy+1]/urr.Energy[iEnergy])
		elastic = logLogInterp(low[iLow].Elastic, up[iUp].Elastic, fLog)
		fission = logLogInterp(low[iLow].Fission, up[iUp].Fission, fLog)
		capture = logLogInterp(low[iLow].Capture, up[iUp].Capture, fLog)
	} else {
		elastic = (1-f)*low[iLow].Elastic + f*up[iUp].Elastic
		fission = (1-f)*low[iLow].Fission + f*up[iUp].Fission
		capture = (1-f)*low[iLow].Capture + f*up[iUp].Capture
	}

	var inelastic float64
	if urr.InelasticFlag > 0 {
		if slot, ok := n.ReactionIndex[urr.InelasticMT]; ok {
			if rx := n.Temps[c.IndexTemp].Reactions[slot]; rx != nil {
				inelastic, _ = rx.valueAt(c.IndexGrid, c.InterpFactor)
			}
		}
	}

	if urr.MultiplySmooth {
		elasticFree := freeAtomElastic(c, n)
		elastic *= elasticFree
		capture *= c.Absorption - c.Fission
		fission *= c.Fission
	}

	elastic = math.Max(elastic, 0)
	fission = math.Max(fission, 0)
	capture = math.Max(capture, 0)

	c.Elastic = elastic
	c.Absorption = capture + fission
	c.Fission = fission
	c.Total = elastic + inelastic + capture + fission
	if n.Fissionable {
		c.NuFission = n.Nu(e, NuTotalEmission) * fission
	} else {
		c.NuFission = 0
	}
}

// bandIndex returns the smallest band index with CumProb > r, per spec.md
// §4.4. A binary search is behavior-equivalent to the linear "walk from
// index 1" scan spec.md §9 describes.
func bandIndex(bands []UrrBand, r float64) int {
	i := sort.Search(len(bands), func(i int) bool { return bands[i].CumProb > r })
	if i >= len(bands) {
		i = len(bands) - 1
	}
	return i
}

// logLogInterp evaluates exp((1-f)*ln(a) + f*ln(b)), returning 0 if either
// endpoint is non-positive (spec.md §4.4's log-log guard).
func logLogInterp(a, b, f float64) float64 {
	if a <= 0 || b <= 0 {
		return 0
	}
	return math.Exp((1-f)*math.Log(a) + f*math.Log(b))
}
