package xs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNuclideXSTabulatedExactGridPointMatchesTable(t *testing.T) {
	n := newTabulatedNuclide(true)
	cfg := DefaultConfig()
	cfg.TemperatureMethod = TemperatureMethodNearest

	c := NewMicroCacheEntry()
	e := n.Temps[0].Grid[2]
	NuclideXS(c, n, e, 0.159, NoSab, 0, nil, cfg, newFakeStream(), 1)

	assert.InDelta(t, n.Temps[0].Total[2], c.Total, 1e-9)
	assert.InDelta(t, n.Temps[0].Absorption[2], c.Absorption, 1e-9)
	assert.InDelta(t, n.Temps[0].Fission[2], c.Fission, 1e-9)
	assert.False(t, c.UsedMultipole())
}

func TestNuclideXSNonFissionableAlwaysZeroFission(t *testing.T) {
	n := newTabulatedNuclide(false)
	cfg := DefaultConfig()
	c := NewMicroCacheEntry()

	for _, e := range []float64{1e-4, 0.5, 50} {
		NuclideXS(c, n, e, 0.2, NoSab, 0, nil, cfg, newFakeStream(0.3), 1)
		assert.Equal(t, 0.0, c.Fission)
		assert.Equal(t, 0.0, c.NuFission)
	}
}

func TestNuclideXSMultipoleWindowTakesPrecedenceOverTabulated(t *testing.T) {
	n := newMultipoleNuclide(true, NewRMFormalism())
	cfg := DefaultConfig()
	c := NewMicroCacheEntry()

	NuclideXS(c, n, 25.0, 0, NoSab, 0, nil, cfg, newFakeStream(), 1)
	assert.True(t, c.UsedMultipole())
	assert.Equal(t, -1, c.IndexTemp)
	assert.Equal(t, 0, c.IndexGrid)
	assert.Equal(t, 0.0, c.InterpFactor)
}

func TestNuclideXSMultipoleNuclideOutsideWindowFallsBackToTabulated(t *testing.T) {
	n := newMultipoleNuclide(true, NewRMFormalism())
	// give it a tabulated fallback identical in shape to newTabulatedNuclide
	fallback := newTabulatedNuclide(true)
	n.Temps = fallback.Temps
	n.KTs = fallback.KTs

	cfg := DefaultConfig()
	cfg.TemperatureMethod = TemperatureMethodNearest
	c := NewMicroCacheEntry()

	// 200 eV lies above the multipole's EndE of 100
	NuclideXS(c, n, 200, 0.159, NoSab, 0, nil, cfg, newFakeStream(), 1)
	assert.False(t, c.UsedMultipole())
}

func TestNuclideXSMarksCacheEntryValidForItsOwnCallKey(t *testing.T) {
	n := newTabulatedNuclide(true)
	cfg := DefaultConfig()
	cfg.TemperatureMethod = TemperatureMethodInterpolated

	c := NewMicroCacheEntry()
	stream := newFakeStream(0.2)
	e, sqrtKT := 0.5, 0.18

	require.False(t, c.Valid(e, sqrtKT, NoSab, 0))
	NuclideXS(c, n, e, sqrtKT, NoSab, 0, nil, cfg, stream, 3)
	require.Greater(t, stream.uniformCalls, 0, "stochastic temperature selection should draw at least one uniform")

	assert.True(t, c.Valid(e, sqrtKT, NoSab, 0))
	assert.False(t, c.Valid(e, sqrtKT, 1, 0), "a different S(alpha,beta) override key must miss")
}

func TestNuclideXSUrrSkippedOutsideItsEnergyRange(t *testing.T) {
	n := newTabulatedNuclide(true)
	n.Temps[0].Urr = newUrrTable(0)
	cfg := DefaultConfig()
	cfg.TemperatureMethod = TemperatureMethodNearest

	c := NewMicroCacheEntry()
	// the URR table fixture spans [1, 100]; 0.5 eV lies below it
	NuclideXS(c, n, 0.5, 0.159, NoSab, 0, nil, cfg, newFakeStream(), 1)
	assert.False(t, c.UsePTable)
}

func TestNuclideXSUrrAppliesWithinItsEnergyRange(t *testing.T) {
	n := newTabulatedNuclide(true)
	n.Temps[0].Urr = newUrrTable(0)
	cfg := DefaultConfig()
	cfg.TemperatureMethod = TemperatureMethodNearest

	c := NewMicroCacheEntry()
	NuclideXS(c, n, 5.0, 0.159, NoSab, 0, nil, cfg, newFakeStream(), 1)
	assert.True(t, c.UsePTable)
}
