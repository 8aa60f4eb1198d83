package cmd

import (
	"bytes"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/openmc-go/xscore/xs"
	"github.com/openmc-go/xscore/xs/rng"

	_ "github.com/openmc-go/xscore/xs/broaden"
	_ "github.com/openmc-go/xscore/xs/specfunc"
)

var (
	benchConfigPath   string
	benchMaterialPath string
	benchPoints       int
	benchNuclides     int
	benchSeed         int64
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Sweep synthetic nuclide/material data through the cross-section core",
	Run:   runBench,
}

func init() {
	benchCmd.Flags().StringVar(&benchConfigPath, "config", "", "path to a YAML xs.Config file (defaults to xs.DefaultConfig)")
	benchCmd.Flags().StringVar(&benchMaterialPath, "material", "", "path to a YAML material description (defaults to a generated material)")
	benchCmd.Flags().IntVar(&benchPoints, "points", 2000, "number of log-spaced energy points to sweep")
	benchCmd.Flags().IntVar(&benchNuclides, "nuclides", 4, "number of synthetic nuclides when --material is omitted")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 1, "seed for the synthetic data generator and the RNG stream")
}

// materialSpec is the YAML shape accepted by --material: atom densities for
// a mixture of synthetic nuclides. Real nuclide/multipole data loading is
// out of scope for this tool (spec §1), so one nuclide per listed density is
// fabricated by syntheticNuclide; the file only pins down the mixture.
type materialSpec struct {
	AtomDensities []float64 `yaml:"atom_densities"`
}

func loadMaterialSpec(path string) (*materialSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading material spec: %w", err)
	}
	var spec materialSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing material spec: %w", err)
	}
	if len(spec.AtomDensities) == 0 {
		return nil, fmt.Errorf("material spec must list at least one atom_densities entry")
	}
	return &spec, nil
}

func runBench(cmd *cobra.Command, args []string) {
	cfg := xs.DefaultConfig()
	if benchConfigPath != "" {
		loaded, err := xs.LoadConfig(benchConfigPath)
		if err != nil {
			logrus.Fatalf("loading xs config: %v", err)
		}
		cfg = *loaded
	}

	gen := rand.New(rand.NewSource(benchSeed))

	var stores *xs.Stores
	var mat *xs.Material
	if benchMaterialPath != "" {
		spec, err := loadMaterialSpec(benchMaterialPath)
		if err != nil {
			logrus.Fatalf("loading material spec: %v", err)
		}
		stores, mat = buildSyntheticMaterialFromDensities(gen, spec.AtomDensities, cfg)
	} else {
		stores, mat = buildSyntheticMaterial(gen, benchNuclides, cfg)
	}
	cache := make([]*xs.MicroCacheEntry, len(stores.Nuclides))
	for i := range cache {
		cache[i] = xs.NewMicroCacheEntry()
	}

	energies := logSweep(cfg.EnergyMinNeutron, 2.0e7, benchPoints)
	sqrtKT := math.Sqrt(2.53e-2)
	stream := rng.NewPartitionedStream(benchSeed)
	out := &xs.MaterialCacheEntry{}

	logrus.Infof("sweeping %d energy points across %d synthetic nuclides", len(energies), len(stores.Nuclides))

	hits := 0
	start := time.Now()
	for pass := 0; pass < 2; pass++ {
		for _, e := range energies {
			wasValid := true
			for _, nucIdx := range mat.Nuclides {
				if !cache[nucIdx].Valid(e, sqrtKT, xs.NoSab, 0) {
					wasValid = false
				}
			}
			xs.MaterialXS(mat, stores, cache, out, e, sqrtKT, cfg, stream)
			if wasValid {
				hits++
			}
		}
	}
	elapsed := time.Since(start)

	total := len(energies) * 2
	fmt.Printf("xscore bench: %d evaluations in %s (%.2f ns/eval), %d/%d cache hits\n",
		total, elapsed, float64(elapsed.Nanoseconds())/float64(total), hits, total)
	fmt.Printf("last point: E=%g eV total=%g absorption=%g fission=%g nu_fission=%g\n",
		energies[len(energies)-1], out.Total, out.Absorption, out.Fission, out.NuFission)
	logrus.Info("bench complete.")
}

// logSweep returns n log-uniformly spaced energies in [lo, hi].
func logSweep(lo, hi float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	logLo, logHi := math.Log(lo), math.Log(hi)
	step := (logHi - logLo) / float64(n-1)
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Exp(logLo + step*float64(i))
	}
	return out
}

// buildSyntheticMaterial fabricates a single-temperature, tabulated-only
// material of n nuclides with monotonically increasing energy grids, since
// loading real evaluated nuclear data is out of scope for this tool (spec
// §1's data-loading non-goal): this mirrors the synthetic, generated-table
// exercising the bench subcommand is meant to drive.
func buildSyntheticMaterial(gen *rand.Rand, n int, cfg xs.Config) (*xs.Stores, *xs.Material) {
	if n < 1 {
		n = 1
	}
	densities := make([]float64, n)
	for i := range densities {
		densities[i] = 1e-3 * (1 + gen.Float64())
	}
	return buildSyntheticMaterialFromDensities(gen, densities, cfg)
}

// buildSyntheticMaterialFromDensities fabricates one synthetic nuclide per
// requested atom density, the shared path for both the generated-material
// default and the --material YAML override.
func buildSyntheticMaterialFromDensities(gen *rand.Rand, densities []float64, cfg xs.Config) (*xs.Stores, *xs.Material) {
	n := len(densities)
	nuclides := make([]*xs.Nuclide, n)
	indices := make([]int, n)

	for i := 0; i < n; i++ {
		nuclides[i] = syntheticNuclide(gen, cfg, fmt.Sprintf("Synth%d", i))
		indices[i] = i
	}

	return &xs.Stores{Nuclides: nuclides}, &xs.Material{
		Nuclides:    indices,
		AtomDensity: append([]float64{}, densities...),
	}
}

func syntheticNuclide(gen *rand.Rand, cfg xs.Config, name string) *xs.Nuclide {
	const points = 64
	grid := make([]float64, points)
	logLo, logHi := math.Log(cfg.EnergyMinNeutron), math.Log(2.0e7)
	step := (logHi - logLo) / float64(points-1)
	for i := range grid {
		grid[i] = math.Exp(logLo + step*float64(i))
	}

	total := make([]float64, points)
	absorption := make([]float64, points)
	elastic := make([]float64, points)
	for i, e := range grid {
		total[i] = 5 + 20/math.Sqrt(e) + gen.Float64()
		absorption[i] = 1 + 5/math.Sqrt(e)
		elastic[i] = total[i] - absorption[i]
	}

	maxBucket := syntheticLogBucket(grid[points-1], cfg.EnergyMinNeutron, cfg.LogSpacing)
	gridIndex := make([][2]int, maxBucket+1)
	for b := range gridIndex {
		gridIndex[b] = [2]int{0, points - 2}
	}

	return &xs.Nuclide{
		Name: name,
		KTs:  []float64{2.53e-2},
		Temps: []xs.TempXS{{
			Grid:       grid,
			GridIndex:  gridIndex,
			Total:      total,
			Absorption: absorption,
			Elastic:    elastic,
		}},
		Elastic0KGrid:   grid,
		Elastic0KValues: elastic,
	}
}

// syntheticLogBucket mirrors the evaluation core's internal log-lattice
// bucket formula (spec §4.1) so the synthetic grid_index table this tool
// fabricates has the same shape a real data loader would produce.
func syntheticLogBucket(e, eMin, logSpacing float64) int {
	b := int(math.Floor(math.Log(e/eMin) / logSpacing))
	if b < 0 {
		b = 0
	}
	return b
}
