package xs

import "math"

// MultipoleEval evaluates the windowed-multipole total, absorption, and
// fission cross sections at (E, sqrtKT), per spec.md §4.5. sqrtKT == 0
// selects the 0 K asymptotic form; otherwise the finite-temperature
// Faddeeva form is used. Requires FaddeevaFunc and DopplerBroadenFunc to be
// registered (blank-import xs/specfunc and xs/broaden, or set the
// variables directly).
func MultipoleEval(m *MultipoleArray, e, sqrtKT float64, cfg Config) (sigmaT, sigmaA, sigmaF float64) {
	sqrtE := math.Sqrt(e)
	invE := 1 / e

	iWindow := m.window(sqrtE)
	poles := m.poles(iWindow)

	var sigTFactor []complex128
	if len(poles) > 0 {
		sigTFactor = sigTFactors(m, sqrtE)
	}

	cf := m.Curvefit[iWindow-1]
	if sqrtKT != 0 && m.BroadenPoly[iWindow-1] {
		dopp := m.SqrtAWR / sqrtKT
		factors := DopplerBroadenFunc(e, dopp, m.FitOrder)
		for k := 0; k <= m.FitOrder && k < len(factors); k++ {
			sigmaT += cf.T[k] * factors[k]
			sigmaA += cf.A[k] * factors[k]
			sigmaF += cf.F[k] * factors[k]
		}
	} else {
		term := invE
		for k := 0; k <= m.FitOrder; k++ {
			sigmaT += cf.T[k] * term
			sigmaA += cf.A[k] * term
			sigmaF += cf.F[k] * term
			term *= sqrtE
		}
	}

	switch {
	case sqrtKT == 0:
		for _, p := range poles {
			psiChi := complex(0, -1) / (p.EA - complex(sqrtE, 0))
			c := psiChi * complex(invE, 0)
			sigmaT += real(m.Formalism.total0K(p, c, sigTFactor[p.L]))
			sigmaA += real(p.RA * c)
			if m.Fissionable {
				sigmaF += real(p.RF * c)
			}
		}
	default:
		dopp := m.SqrtAWR / sqrtKT
		for _, p := range poles {
			z := (complex(sqrtE, 0) - p.EA) * complex(dopp, 0)
			w := FaddeevaFunc(z) * complex(dopp*invE*cfg.SqrtPi, 0)
			sigmaT += real(m.Formalism.totalFiniteT(p, w, sigTFactor[p.L]))
			sigmaA += real(p.RA * w)
			if m.Fissionable {
				sigmaF += real(p.RF * w)
			}
		}
	}

	if !m.Fissionable {
		sigmaF = 0
	}
	return sigmaT, sigmaA, sigmaF
}
