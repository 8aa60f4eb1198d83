package specfunc

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFaddeevaAtOrigin(t *testing.T) {
	w := Faddeeva(complex(0, 0))
	assert.InDelta(t, 1.0, real(w), 1e-6)
	assert.InDelta(t, 0.0, imag(w), 1e-6)
}

func TestFaddeevaPureImaginaryIsReal(t *testing.T) {
	// w(iy) = exp(y^2) erfc(y) is real for real y > 0.
	for _, y := range []float64{0.1, 0.5, 1.0, 3.0} {
		w := Faddeeva(complex(0, y))
		assert.InDelta(t, 0.0, imag(w), 1e-4, "w(i*%g) should be real", y)
		assert.Greater(t, real(w), 0.0)
	}
}

func TestFaddeevaMatchesKnownValue(t *testing.T) {
	// w(1+i) ~ 0.304744 + 0.208219i (standard reference value).
	w := Faddeeva(complex(1, 1))
	assert.InDelta(t, 0.304744, real(w), 1e-3)
	assert.InDelta(t, 0.208219, imag(w), 1e-3)
}

func TestFaddeevaLowerHalfPlaneKnownValue(t *testing.T) {
	// w(-i) = 2*e - w(i) = 2*e - e*erfc(1) ~ 5.008980, a deep lower-half-plane
	// point a near-real-axis sample can't exercise.
	w := Faddeeva(complex(0, -1))
	assert.InDelta(t, 5.008980, real(w), 1e-3)
	assert.InDelta(t, 0.0, imag(w), 1e-3)
}

func TestFaddeevaLowerHalfPlaneSymmetry(t *testing.T) {
	// w(-z) = 2*exp(-z^2) - w(z), so w at a lower-half-plane point must be
	// derivable from its upper-half-plane conjugate via this relation.
	z := complex(0.7, 0.4)
	negZ := complex(-0.7, -0.4)

	got := Faddeeva(negZ)
	want := 2*cmplx.Exp(-z*z) - Faddeeva(z)
	assert.InDelta(t, real(want), real(got), 1e-6)
	assert.InDelta(t, imag(want), imag(got), 1e-6)
}

func TestFaddeevaDerivMatchesFiniteDifference(t *testing.T) {
	z := complex(0.6, 0.3)
	h := 1e-6
	numeric := (Faddeeva(z+complex(h, 0)) - Faddeeva(z-complex(h, 0))) / complex(2*h, 0)
	analytic := FaddeevaDeriv(z)
	assert.InDelta(t, real(numeric), real(analytic), 1e-3)
	assert.InDelta(t, imag(numeric), imag(analytic), 1e-3)
}

func TestFaddeevaSecondDerivMatchesFiniteDifference(t *testing.T) {
	z := complex(0.6, 0.3)
	h := 1e-4
	numeric := (FaddeevaDeriv(z+complex(h, 0)) - FaddeevaDeriv(z-complex(h, 0))) / complex(2*h, 0)
	analytic := FaddeevaSecondDeriv(z)
	assert.InDelta(t, real(numeric), real(analytic), 1e-2)
	assert.InDelta(t, imag(numeric), imag(analytic), 1e-2)
}

func TestFaddeevaAsymptoticLargeArgument(t *testing.T) {
	// for |z| large, w(z) ~ i/(sqrt(pi) z); check the magnitude decays
	// accordingly rather than blowing up.
	z := complex(50, 50)
	w := Faddeeva(z)
	approx := complex(0, 1) / complex(math.Sqrt(math.Pi), 0) / z
	assert.InDelta(t, real(approx), real(w), 1e-5)
	assert.InDelta(t, imag(approx), imag(w), 1e-5)
}
