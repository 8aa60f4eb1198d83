package xs

// Multipole formalism identifiers. Preserved as fixed integers so that
// persisted multipole data files (loaded by the out-of-scope data loader)
// parse identically regardless of in-memory representation.
const (
	FormMLBW = 1
	FormRM   = 2
)

// MPEA is the complex pole-location field index into a MultipoleArray's
// pole data, kept as a named constant for parity with the on-disk layout
// even though PoleData exposes it as a named field (EA) in this package.
const MPEA = 1

// Curve-fit channel indices, in on-disk order.
const (
	FitT = iota
	FitA
	FitF
)

// S(alpha,beta) elastic treatment modes.
type SabElasticMode int

const (
	SabElasticIncoherent SabElasticMode = iota
	SabElasticCoherentExact
)

// URR interpolation schemes.
type UrrInterpolation int

const (
	LinearLinear UrrInterpolation = iota
	LogLog
)

// URR probability-table channel indices, in on-disk row order.
const (
	UrrCumProb = iota
	UrrElastic
	UrrFission
	UrrNGamma
)

// NuMode selects which nu(E) evaluation mode is requested.
type NuMode int

const (
	NuTotalEmission NuMode = iota
	NuPrompt
	NuDelayed
)

// DepletionMTs lists the reaction MT values tracked for depletion, in fixed
// position order; position 4 (index 3) is always radiative capture (n,gamma).
// DEPLETION_RX in spec.md's terminology.
var DepletionMTs = [6]int{16, 17, 18, 102, 103, 107}

// NGammaDepletionIndex is the DepletionMTs slot reserved for (n,gamma),
// position 4 per spec.md.
const NGammaDepletionIndex = 3

// NoSab marks a cache entry / loop cursor as "no S(alpha,beta) override in
// effect", exactly spec.md's IndexSab = 0 sentinel; S(alpha,beta) table
// indices themselves are taken as 1-based so that 0 is never a valid table
// reference.
const NoSab = 0

// multipoleIndexTemp is the IndexTemp sentinel stored in a MicroCacheEntry
// after the multipole branch runs (spec.md: "index_temp = -1"). Call sites
// should prefer (*MicroCacheEntry).UsedMultipole over comparing against this
// constant directly.
const multipoleIndexTemp = -1
