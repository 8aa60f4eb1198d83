package xs

// These package-level variables are the registration points spec.md §6(e)
// calls "consumed" external interfaces: the Faddeeva function and its
// second derivative, and the windowed-multipole curve-fit polynomial
// Doppler broadener. Sibling packages xs/specfunc and xs/broaden bind them
// in an init(), following the same factory-variable pattern as
// sim.NewLatencyModelFunc / sim.NewKVStoreFromConfig. Callers that need the
// kernel to function must blank-import one implementation of each.

// FaddeevaFunc evaluates w(z) = exp(-z^2) erfc(-iz).
var FaddeevaFunc func(z complex128) complex128

// FaddeevaSecondDerivFunc evaluates w''(z).
var FaddeevaSecondDerivFunc func(z complex128) complex128

// DopplerBroadenFunc returns the Doppler-broadened curve-fit polynomial
// factors p_k(E; dopp) for k = 0..fitOrder, given dopp = sqrtAWR/sqrtkT.
var DopplerBroadenFunc func(E, dopp float64, fitOrder int) []float64
