package xs

import (
	"fmt"
	"math"
)

// MultipoleDerivEval evaluates d(sigma)/dT for the windowed-multipole total,
// absorption, and fission cross sections at (E, sqrtKT), per spec.md §4.8.
// It panics if sqrtKT == 0: the derivative at 0 K is undefined and spec.md
// §7 marks this the one fatal condition in the core. The curve-fit
// polynomial contribution is intentionally omitted (see SPEC_FULL.md §5 and
// spec.md §9's second Open Question).
func MultipoleDerivEval(m *MultipoleArray, e, sqrtKT float64, cfg Config) (dSigmaT, dSigmaA, dSigmaF float64) {
	if sqrtKT == 0 {
		panic("xs: MultipoleDerivEval requested at 0 K; the temperature derivative is undefined there")
	}

	sqrtE := math.Sqrt(e)
	invE := 1 / e

	iWindow := m.window(sqrtE)
	poles := m.poles(iWindow)

	var sigTFactor []complex128
	if len(poles) > 0 {
		sigTFactor = sigTFactors(m, sqrtE)
	}

	dopp := m.SqrtAWR / sqrtKT
	for _, p := range poles {
		z := (complex(sqrtE, 0) - p.EA) * complex(dopp, 0)
		wVal := FaddeevaSecondDerivFunc(z) * complex(-invE*cfg.SqrtPi*0.5, 0)
		dSigmaT += real(m.Formalism.totalFiniteT(p, wVal, sigTFactor[p.L]))
		dSigmaA += real(p.RA * wVal)
		if m.Fissionable {
			dSigmaF += real(p.RF * wVal)
		}
	}
	if !m.Fissionable {
		dSigmaF = 0
	}

	t := sqrtKT * sqrtKT / cfg.KBoltzmann
	scale := -0.5 * m.SqrtAWR / math.Sqrt(cfg.KBoltzmann) * math.Pow(t, -1.5)
	return dSigmaT * scale, dSigmaA * scale, dSigmaF * scale
}

// MustMultipoleDerivEval is a convenience wrapper that turns the fatal 0 K
// panic into a descriptive error instead, for callers (such as the CLI)
// that need to report it rather than abort the process outright.
func MustMultipoleDerivEval(m *MultipoleArray, e, sqrtKT float64, cfg Config) (dSigmaT, dSigmaA, dSigmaF float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	dSigmaT, dSigmaA, dSigmaF = MultipoleDerivEval(m, e, sqrtKT, cfg)
	return
}
