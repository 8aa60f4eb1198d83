package xs

import "math"

// sigTFactors computes the angular-momentum-dependent complex phase factor
// used by the multipole total cross section, for every l = 1..NumL, per
// spec.md §4.6.
func sigTFactors(m *MultipoleArray, sqrtE float64) []complex128 {
	factors := make([]complex128, m.NumL+1) // 1-based; index 0 unused
	for l := 1; l <= m.NumL; l++ {
		phi := m.PseudoK0RS[l] * sqrtE
		switch l {
		case 1:
			// unchanged
		case 2:
			phi -= math.Atan(phi)
		case 3:
			phi -= math.Atan(3 * phi / (3 - phi*phi))
		case 4:
			phi -= math.Atan(phi * (15 - phi*phi) / (15 - 6*phi*phi))
		}
		sin, cos := math.Sincos(2 * phi)
		factors[l] = complex(cos, -sin)
	}
	return factors
}
