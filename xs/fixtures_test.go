package xs

import (
	_ "github.com/openmc-go/xscore/xs/broaden"
	_ "github.com/openmc-go/xscore/xs/specfunc"
)

// newTabulatedNuclide builds a minimal, strictly-ascending two-temperature
// tabulated nuclide with a single depletion reaction ((n,gamma)) and a
// free-atom elastic table, grounded on spec.md §3's data model.
func newTabulatedNuclide(fissionable bool) *Nuclide {
	grid := []float64{1e-5, 1e-3, 1e-1, 1, 10, 100}
	gridIndex := buildGridIndex(grid, 1e-5, 1e-2)

	mkTemp := func(scale float64) TempXS {
		total := make([]float64, len(grid))
		absorption := make([]float64, len(grid))
		fission := make([]float64, len(grid))
		nuFission := make([]float64, len(grid))
		elastic := make([]float64, len(grid))
		for i := range grid {
			total[i] = scale * (10 - float64(i))
			absorption[i] = scale * (5 - 0.1*float64(i))
			elastic[i] = total[i] - absorption[i]
			if fissionable {
				fission[i] = scale * (1 + 0.01*float64(i))
				nuFission[i] = 2.43 * fission[i]
			}
		}
		var rx [6]*ReactionRecord
		rx[NGammaDepletionIndex] = &ReactionRecord{
			MT:        DepletionMTs[NGammaDepletionIndex],
			Threshold: 1,
			Values:    append([]float64{}, absorption[1:]...),
		}
		return TempXS{
			Grid:       grid,
			GridIndex:  gridIndex,
			Total:      total,
			Absorption: absorption,
			Fission:    fission,
			NuFission:  nuFission,
			Elastic:    elastic,
			Reactions:  rx,
		}
	}

	n := &Nuclide{
		Name:            "Xx",
		KTs:             []float64{2.53e-2, 5.0e-2},
		Temps:           []TempXS{mkTemp(1.0), mkTemp(1.1)},
		Elastic0KGrid:   grid,
		Elastic0KValues: []float64{9, 8, 7, 6, 5, 4},
		ReactionIndex:   map[int]int{DepletionMTs[NGammaDepletionIndex]: NGammaDepletionIndex},
		Fissionable:     fissionable,
		Nu:              func(e float64, mode NuMode) float64 { return 2.43 },
	}
	return n
}

// buildGridIndex builds a shared logarithmic-bucket -> [low,high] lookup
// table for grid, the way the out-of-scope data loader would. Every bucket
// maps to the full valid bracket range: narrowing the range per bucket is
// only a performance optimization (spec.md §3's "shared logarithmic-lattice
// bucket"), never required for correctness of the binary search itself.
func buildGridIndex(grid []float64, eMin, logSpacing float64) [][2]int {
	maxBucket := logBucket(grid[len(grid)-1], eMin, logSpacing)
	if maxBucket < 0 {
		maxBucket = 0
	}
	table := make([][2]int, maxBucket+1)
	for b := range table {
		table[b] = [2]int{0, len(grid) - 2}
	}
	return table
}

// newMultipoleNuclide builds a single-window, single-pole windowed-multipole
// nuclide spanning [1, 100] eV, using f to select the resonance formalism.
func newMultipoleNuclide(fissionable bool, f formalism) *Nuclide {
	mp := &MultipoleArray{
		StartE:  1,
		EndE:    100,
		Spacing: 9, // sqrt(100) - sqrt(1): a single window covers the range

		WindowStart: []int{1},
		WindowEnd:   []int{1},
		BroadenPoly: []bool{false},

		Curvefit: []WindowCurvefit{{T: []float64{0}, A: []float64{0}, F: []float64{0}}},
		Poles: []PoleData{
			{
				EA: complex(5, -0.1),
				RT: complex(1.0, 0),
				RA: complex(0.5, 0),
				RF: complex(0.2, 0),
				RX: complex(0, 0),
				L:  1,
			},
		},

		NumL:       1,
		PseudoK0RS: []float64{0, 0.1},

		SqrtAWR:     15.0,
		FitOrder:    0,
		Fissionable: fissionable,
		Formalism:   f,
	}

	return &Nuclide{
		Name:      "Mp",
		KTs:       []float64{2.53e-2},
		Temps:     []TempXS{{}},
		Multipole: mp,

		Elastic0KGrid:   []float64{1, 10, 100},
		Elastic0KValues: []float64{4, 3, 2},

		Fissionable: fissionable,
		Nu:          func(e float64, mode NuMode) float64 { return 2.43 },
	}
}

// newSabTable builds a two-temperature thermal scattering law table with
// incoherent elastic data, grounded on spec.md §4.3's data model.
func newSabTable() *SabTable {
	mk := func(scale float64) SabTempData {
		return SabTempData{
			InelasticGrid:      []float64{1e-5, 1e-3, 1e-1, 1, 4},
			InelasticXS:        []float64{20 * scale, 18 * scale, 10 * scale, 4 * scale, 1 * scale},
			ElasticGrid:        []float64{1e-5, 1e-3, 1e-1, 1, 4},
			ElasticP:           []float64{5 * scale, 4.5 * scale, 3 * scale, 1.5 * scale, 0.5 * scale},
			ElasticMode:        SabElasticIncoherent,
			ThresholdInelastic: 4.0,
			ThresholdElastic:   4.0,
		}
	}
	return &SabTable{
		Name:  "xx_in_yy",
		KTs:   []float64{2.53e-2, 5.0e-2},
		Temps: []SabTempData{mk(1.0), mk(1.1)},
	}
}

// newUrrTable builds a three-row unresolved-resonance probability table
// over [1, 100] eV with three bands per row, grounded on spec.md §4.4's
// data model. inelasticMT of 0 disables the inelastic-flag branch.
func newUrrTable(inelasticMT int) *UrrTable {
	bandsAt := func(scale float64) []UrrBand {
		return []UrrBand{
			{CumProb: 0.3, Elastic: 3 * scale, Fission: 0.2 * scale, Capture: 1 * scale},
			{CumProb: 0.7, Elastic: 5 * scale, Fission: 0.4 * scale, Capture: 1.5 * scale},
			{CumProb: 1.0, Elastic: 8 * scale, Fission: 0.6 * scale, Capture: 2 * scale},
		}
	}
	flag := 0
	if inelasticMT != 0 {
		flag = 1
	}
	return &UrrTable{
		Energy:         []float64{1, 10, 100},
		Bands:          [][]UrrBand{bandsAt(1.0), bandsAt(1.2), bandsAt(1.5)},
		Interpolation:  LinearLinear,
		InelasticFlag:  flag,
		InelasticMT:    inelasticMT,
		MultiplySmooth: false,
	}
}

// fakeStream is a deterministic, call-counting rng.Stream test double.
// Uniform replays a fixed queue of values (holding the last once exhausted);
// FuturePRN ignores that queue, counts calls and returns futureVal (0.5
// unless a test sets it), so a test selects URR bands by setting futureVal.
type fakeStream struct {
	current int

	uniforms     []float64
	uniformIdx   int
	uniformCalls int

	futureVal   float64
	futureCalls int
}

func newFakeStream(uniforms ...float64) *fakeStream {
	return &fakeStream{uniforms: uniforms, futureVal: 0.5}
}

func (f *fakeStream) SetStream(id int) int {
	previous := f.current
	f.current = id
	return previous
}

func (f *fakeStream) Uniform() float64 {
	f.uniformCalls++
	if len(f.uniforms) == 0 {
		return 0.5
	}
	v := f.uniforms[f.uniformIdx]
	if f.uniformIdx < len(f.uniforms)-1 {
		f.uniformIdx++
	}
	return v
}

func (f *fakeStream) FuturePRN(key int64) float64 {
	f.futureCalls++
	return f.futureVal
}
