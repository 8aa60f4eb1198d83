// Package broaden implements the windowed-multipole curve-fit polynomial
// Doppler broadener spec.md §6(e) lists as an external collaborator:
// BroadenPolynomials returns the broadened values of the polynomial terms
// a raw (0 K) curve-fit evaluation would otherwise use unbroadened.
package broaden

import "math"

const sqrtPi = 1.7724538509055159

// erf is math.Erf; aliased so the recursion below reads close to its
// standard derivation.
var erf = math.Erf

// BroadenPolynomials returns, for k = 0..fitOrder, the Doppler-broadened
// value of the raw curve-fit term invE*sqrtE^k at energy E with Doppler
// parameter dopp = sqrtAWR/sqrtkT.
//
// Uses the closed-form recursion for broadening integer powers of sqrt(E)
// against a Maxwellian at temperature T (dopp = sqrt(AWR/(k_B*T))): the
// first two terms are evaluated directly from erf/E and 1/sqrtE (the 1/v
// term, which is Doppler-invariant), the third from the first plus an
// exp(-beta^2) term, and each later term from the three terms before it.
func BroadenPolynomials(E, dopp float64, fitOrder int) []float64 {
	factors := make([]float64, fitOrder+1)
	if len(factors) == 0 {
		return factors
	}

	sqrtE := math.Sqrt(E)
	beta := sqrtE * dopp
	halfInvDopp2 := 0.5 / (dopp * dopp)
	quarterInvDopp4 := halfInvDopp2 * halfInvDopp2

	factors[0] = erf(beta) / E
	if len(factors) == 1 {
		return factors
	}
	factors[1] = 1.0 / sqrtE
	if len(factors) == 2 {
		return factors
	}

	expTerm := math.Exp(-beta*beta) / (beta * sqrtPi)
	factors[2] = factors[0]*(halfInvDopp2+E) + expTerm

	for i := 1; i <= fitOrder-2; i++ {
		factors[i+2] = -factors[i-1]*float64(i-1)*float64(i)*quarterInvDopp4 +
			factors[i+1]*E +
			factors[i]*float64(2*i+1)*halfInvDopp2
	}
	return factors
}
