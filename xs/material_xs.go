package xs

import (
	"github.com/sirupsen/logrus"

	"github.com/openmc-go/xscore/xs/rng"
)

// Stores bundles the read-only, process-wide nuclide and S(alpha,beta)
// tables MaterialXS and NuclideXS consult. Loading them from disk is out
// of scope for this package (spec.md §1); callers build a Stores once and
// share it read-only across every particle.
type Stores struct {
	Nuclides  []*Nuclide
	SabTables []*SabTable // 1-based: SabTables[i-1] backs sab table index i
}

// MaterialXS populates out with the atom-density-weighted macroscopic
// cross sections of mat at (E, sqrtKT), recomputing any nuclide whose
// cache entry no longer matches the call's (E, sqrtKT, indexSab, sabFrac)
// key, per spec.md §4.1. cache is the calling particle's per-nuclide cache
// slice, indexed by the same global nuclide ids as mat.Nuclides.
func MaterialXS(mat *Material, stores *Stores, cache []*MicroCacheEntry, out *MaterialCacheEntry, e, sqrtKT float64, cfg Config, stream rng.Stream) {
	out.Total, out.Absorption, out.Fission, out.NuFission = 0, 0, 0, 0

	if mat.Void {
		return
	}

	j := 0
	for i, nucIdx := range mat.Nuclides {
		iSab, sabFrac := NoSab, 0.0
		var sab *SabTable

		if j < len(mat.ISabNuclides) && mat.ISabNuclides[j] == i {
			iSab = mat.ISabTables[j]
			sabFrac = mat.SabFracs[j]
			sab = stores.SabTables[iSab-1]
			if len(sab.Temps) > 0 && e > sab.Temps[0].ThresholdInelastic {
				logrus.Debugf("xs: material nuclide slot %d above S(alpha,beta) inelastic threshold at E=%g; reverting to free-atom treatment", i, e)
				iSab, sabFrac, sab = NoSab, 0, nil
			}
			j++
		}

		c := cache[nucIdx]
		if !c.Valid(e, sqrtKT, iSab, sabFrac) {
			NuclideXS(c, stores.Nuclides[nucIdx], e, sqrtKT, iSab, sabFrac, sab, cfg, stream, int64(nucIdx))
		}

		ad := mat.AtomDensity[i]
		out.Total += ad * c.Total
		out.Absorption += ad * c.Absorption
		out.Fission += ad * c.Fission
		out.NuFission += ad * c.NuFission
	}
}
