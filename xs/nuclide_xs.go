package xs

import (
	"github.com/openmc-go/xscore/xs/rng"
)

// NuclideXS recomputes a single nuclide's cache entry at (E, sqrtKT),
// selecting the multipole or tabulated evaluation path and then applying
// an S(alpha,beta) override and/or unresolved-resonance sampling, per
// spec.md §4.2. iSab/sabFrac/sab are the S(alpha,beta) override MaterialXS
// already resolved for this nuclide slot (iSab == NoSab means none).
// nuclideID keys the URR dedicated-stream draw.
func NuclideXS(c *MicroCacheEntry, n *Nuclide, e, sqrtKT float64, iSab int, sabFrac float64, sab *SabTable, cfg Config, stream rng.Stream, nuclideID int64) {
	c.Elastic = ElasticInvalid
	c.Thermal = 0
	c.ThermalElastic = 0

	kT := sqrtKT * sqrtKT

	if mp := n.Multipole; mp != nil && e >= mp.StartE && e <= mp.EndE {
		sigT, sigA, sigF := MultipoleEval(mp, e, sqrtKT, cfg)
		c.Total, c.Absorption, c.Fission = sigT, sigA, sigF
		if n.Fissionable {
			c.NuFission = n.Nu(e, NuTotalEmission) * sigF
		} else {
			c.NuFission = 0
		}
		c.DepletionRx = [6]float64{}
		c.DepletionRx[NGammaDepletionIndex] = sigA - sigF
		c.IndexTemp = multipoleIndexTemp
		c.IndexGrid = 0
		c.InterpFactor = 0
	} else {
		var iTemp int
		if cfg.TemperatureMethod == TemperatureMethodNearest {
			iTemp = n.nearestTempIndex(kT)
		} else {
			iTemp = stochasticTempIndex(n.KTs, kT, stream)
		}
		temp := &n.Temps[iTemp]

		iLogUnion := logBucket(e, cfg.EnergyMinNeutron, cfg.LogSpacing)
		iGrid, f := gridIndexSearch(temp, iLogUnion, e)

		c.Total = lerp(temp.Total, iGrid, f)
		c.Absorption = lerp(temp.Absorption, iGrid, f)
		if n.Fissionable {
			c.Fission = lerp(temp.Fission, iGrid, f)
			c.NuFission = lerp(temp.NuFission, iGrid, f)
		} else {
			c.Fission = 0
			c.NuFission = 0
		}

		c.DepletionRx = [6]float64{}
		if cfg.NeedDepletionRx {
			for i, rx := range temp.Reactions {
				if rx == nil || iGrid < rx.Threshold {
					continue
				}
				if v, ok := rx.valueAt(iGrid, f); ok {
					c.DepletionRx[i] = v
				}
			}
		}

		c.IndexTemp = iTemp
		c.IndexGrid = iGrid
		c.InterpFactor = f
	}

	c.IndexSab = NoSab
	c.SabFrac = 0
	c.UsePTable = false

	if iSab > 0 {
		SabEval(c, n, sab, iSab, e, sqrtKT, sabFrac, cfg, stream)
	}

	if cfg.UrrPTablesOn && !c.UsedMultipole() {
		urr := n.Temps[c.IndexTemp].Urr
		if urr != nil && len(urr.Energy) > 1 && e > urr.Energy[0] && e < urr.Energy[len(urr.Energy)-1] {
			UrrEval(c, n, e, nuclideID, stream)
		}
	}

	c.LastE = e
	c.LastSqrtKT = sqrtKT
}

// lerp linearly interpolates a tabulated array at grid index i with factor
// f, per spec.md §4.2.
func lerp(values []float64, i int, f float64) float64 {
	if i+1 >= len(values) {
		return values[i]
	}
	return (1-f)*values[i] + f*values[i+1]
}
