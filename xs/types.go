package xs

import "math"

// PoleData holds one windowed-multipole resonance pole: its complex energy
// location and the residues needed by every supported formalism. RX is only
// populated (and only consulted) under MLBW.
type PoleData struct {
	EA complex128 // pole location, MP_EA field
	RT complex128 // total residue
	RA complex128 // absorption residue
	RF complex128 // fission residue
	RX complex128 // MLBW competitive-reaction residue; zero under RM
	L  int        // angular-momentum index, 1-based, indexes PseudoK0RS/SigTFactor
}

// WindowCurvefit holds one window's curve-fit polynomial coefficients for
// the three curvefit channels, each of length FitOrder+1.
type WindowCurvefit struct {
	T []float64
	A []float64
	F []float64
}

// MultipoleArray is the windowed-multipole representation of a nuclide's
// resonance cross sections: a set of energy windows, each covering a
// contiguous slice of Poles, plus a smooth curve-fit polynomial background
// per window.
type MultipoleArray struct {
	StartE  float64 // start_E
	EndE    float64 // end_E
	Spacing float64 // window spacing, in sqrt(E)

	WindowStart []int // w_start[i], 1-based index into Poles, inclusive
	WindowEnd   []int // w_end[i], 1-based index into Poles, inclusive
	BroadenPoly []bool

	Curvefit []WindowCurvefit // per window
	Poles    []PoleData

	NumL       int
	PseudoK0RS []float64 // per l, 1-based (index 0 unused)

	SqrtAWR     float64
	FitOrder    int
	Fissionable bool
	Formalism   formalism
}

// window returns the 1-based window index containing sqrtE, per spec.md's
// "i_window = floor((sqrtE - sqrt(start_E)) / spacing) + 1".
func (m *MultipoleArray) window(sqrtE float64) int {
	return int(math.Floor((sqrtE-math.Sqrt(m.StartE))/m.Spacing)) + 1
}

// poles returns the pole slice for 1-based window index i.
func (m *MultipoleArray) poles(i int) []PoleData {
	start, end := m.WindowStart[i-1], m.WindowEnd[i-1]
	if start == 0 {
		return nil
	}
	return m.Poles[start-1 : end]
}

// ReactionRecord is a per-temperature, per-reaction value array thresholded
// at a grid index: Values[0] corresponds to the nuclide's energy grid index
// Threshold, Values[1] to Threshold+1, and so on.
type ReactionRecord struct {
	MT        int
	Threshold int
	Values    []float64
}

// valueAt returns the reaction's contribution at grid index iGrid with
// interpolation factor f, or (0, false) if iGrid lies below the reaction's
// threshold or data does not extend to iGrid+1.
func (r *ReactionRecord) valueAt(iGrid int, f float64) (float64, bool) {
	if r == nil || iGrid < r.Threshold {
		return 0, false
	}
	lo := iGrid - r.Threshold
	if lo+1 >= len(r.Values) {
		return 0, false
	}
	return (1-f)*r.Values[lo] + f*r.Values[lo+1], true
}

// TempXS holds one temperature's tabulated point-wise cross sections,
// indexed in parallel with the matching energy grid.
type TempXS struct {
	Grid       []float64 // ascending
	GridIndex  [][2]int  // shared log-lattice bucket -> [low, high] grid-index range
	Total      []float64
	Absorption []float64
	Fission    []float64
	NuFission  []float64
	Elastic    []float64 // free-atom elastic, reaction[1] in spec.md's terminology
	Reactions  [6]*ReactionRecord // DepletionMTs order; nil where absent
	Urr        *UrrTable          // nil if this temperature has no URR data
}

// Nuclide is immutable after load: one set of tabulated and/or multipole
// cross-section data for a single nuclide.
type Nuclide struct {
	Name string

	KTs   []float64 // ascending temperatures, in eV (kT, not T)
	Temps []TempXS  // parallel to KTs

	Multipole *MultipoleArray // nil if this nuclide has no multipole data

	Elastic0KGrid   []float64 // free-atom elastic, 0 K
	Elastic0KValues []float64

	ReactionIndex map[int]int // MT -> DepletionMTs slot, for URR inelastic lookup

	Fissionable bool
	Nu          func(E float64, mode NuMode) float64
}

// nearestTempIndex implements spec.md 4.2's nearest-temperature rule.
func (n *Nuclide) nearestTempIndex(kT float64) int {
	best, bestDiff := 0, math.Abs(n.KTs[0]-kT)
	for i := 1; i < len(n.KTs); i++ {
		if d := math.Abs(n.KTs[i] - kT); d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return best
}

// SabTempData is one temperature's thermal scattering law sub-table.
type SabTempData struct {
	InelasticGrid []float64
	InelasticXS   []float64

	ElasticGrid []float64
	ElasticP    []float64
	ElasticMode SabElasticMode

	ThresholdInelastic float64
	ThresholdElastic   float64
}

// SabTable is a bound-scatterer thermal scattering law: one or more
// temperatures of inelastic and (optionally) elastic data, selected by the
// nearest or stochastic-interpolated rule exactly like a Nuclide's KTs.
type SabTable struct {
	Name  string
	KTs   []float64
	Temps []SabTempData
}

func (s *SabTable) nearestTempIndex(kT float64) int {
	best, bestDiff := 0, math.Abs(s.KTs[0]-kT)
	for i := 1; i < len(s.KTs); i++ {
		if d := math.Abs(s.KTs[i] - kT); d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return best
}

// UrrTable is a nuclide-temperature's unresolved-resonance probability
// table: a set of energy rows, each holding a cumulative-probability band
// structure plus elastic/fission/capture values per band.
type UrrTable struct {
	Energy []float64 // ascending, row boundaries
	// Bands[row] holds, per band, the cumulative probability and the three
	// sampled channels, in UrrCumProb..UrrNGamma order.
	Bands [][]UrrBand

	Interpolation  UrrInterpolation
	InelasticFlag  int  // >0 selects a ReactionRecord via ReactionIndex for inelastic
	InelasticMT    int  // reaction MT the inelastic flag designates
	MultiplySmooth bool // multiply sampled channels by the smooth background
}

// UrrBand is one band of a URR probability-table row.
type UrrBand struct {
	CumProb float64
	Elastic float64
	Fission float64
	Capture float64
}

// Material is a mixture of nuclides at fixed atom densities, with an
// optional thermal-scattering-law override applied to a sorted subset of
// its nuclide slots.
type Material struct {
	Void bool

	Nuclides    []int     // indices into the global Nuclide store
	AtomDensity []float64 // parallel to Nuclides

	// ISabNuclides is strictly ascending over positions into Nuclides.
	ISabNuclides []int
	ISabTables   []int // parallel to ISabNuclides, indices into the Sab store
	SabFracs     []float64
}

// ElasticInvalid is the CACHE_INVALID sentinel for MicroCacheEntry.Elastic:
// elastic is lazily materialized and this marks "not yet computed this
// call". Prefer IsCacheInvalid over comparing floats directly.
var ElasticInvalid = math.NaN()

// IsCacheInvalid reports whether x is the CACHE_INVALID sentinel.
func IsCacheInvalid(x float64) bool { return math.IsNaN(x) }

// MicroCacheEntry is the per-nuclide, per-particle mutable cache. It is
// process-wide only in the sense that many particles share the backing
// array; a given slice element is touched by exactly one thread at a time
// (spec.md §5).
type MicroCacheEntry struct {
	LastE      float64
	LastSqrtKT float64

	IndexSab int // NoSab if unset
	SabFrac  float64

	Total      float64
	Absorption float64
	Fission    float64
	NuFission  float64
	Elastic    float64 // ElasticInvalid when not yet materialized

	Thermal        float64
	ThermalElastic float64

	IndexTemp    int // multipoleIndexTemp after the multipole branch
	IndexGrid    int
	InterpFactor float64

	IndexTempSab int
	UsePTable    bool

	DepletionRx [6]float64
}

// UsedMultipole reports whether the last recompute took the multipole
// branch, per spec.md's "index_temp = -1 ... no tabulated accessor may
// consume these fields" invariant.
func (c *MicroCacheEntry) UsedMultipole() bool { return c.IndexTemp == multipoleIndexTemp }

// Valid reports whether this cache entry already holds the cross sections
// for (E, sqrtkT, indexSab, sabFrac), per spec.md §3's cache-validity
// invariant.
func (c *MicroCacheEntry) Valid(e, sqrtKT float64, indexSab int, sabFrac float64) bool {
	return c.LastE == e && c.LastSqrtKT == sqrtKT && c.IndexSab == indexSab && c.SabFrac == sabFrac
}

// NewMicroCacheEntry returns a cache entry guaranteed to miss on first use.
func NewMicroCacheEntry() *MicroCacheEntry {
	return &MicroCacheEntry{
		LastE:      math.NaN(),
		LastSqrtKT: math.NaN(),
		IndexSab:   NoSab,
		Elastic:    ElasticInvalid,
	}
}

// MaterialCacheEntry is the macroscopic cross-section accumulator a single
// MaterialXS call populates.
type MaterialCacheEntry struct {
	Total      float64
	Absorption float64
	Fission    float64
	NuFission  float64
}
