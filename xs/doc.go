// Package xs provides the neutron cross-section evaluation core of a
// continuous-energy Monte Carlo neutron transport engine.
//
// # Reading Guide
//
// Start with these files to understand the evaluation kernel:
//   - types.go: Nuclide, MultipoleArray, SabTable, Material, and the per-particle
//     cache entries that are the only mutable state in this package.
//   - material_xs.go: MaterialXS, the entry point that walks a material's
//     nuclides and accumulates atom-density-weighted macroscopic cross sections.
//   - nuclide_xs.go: NuclideXS, the per-nuclide dispatcher between the
//     multipole and tabulated evaluation paths.
//   - multipole.go, multipole_deriv.go, sigt.go: the windowed-multipole kernel
//     and its temperature derivative.
//   - sab.go: thermal S(alpha,beta) scattering law evaluation.
//   - urr.go: unresolved-resonance probability-table sampling.
//
// # Architecture
//
// xs defines the data model and the evaluation algorithms; two numerical
// primitives are supplied by sibling packages and wired in through
// package-level factory variables, the same registration pattern used
// throughout this codebase for pluggable implementations:
//   - xs/specfunc supplies the Faddeeva function and its second derivative
//     (FaddeevaFunc, FaddeevaSecondDerivFunc).
//   - xs/broaden supplies the windowed-multipole curve-fit polynomial
//     Doppler broadener (DopplerBroadenFunc).
//
// Both are blank-imported by cmd/ and by the xs test files that exercise
// the multipole kernel; production code may import either directly.
//
// The random stream consumed by UrrEval (dedicated URR band sampling,
// correlated across temperatures) is defined by the xs/rng package: an
// external collaborator passed in as an rng.Stream rather than part of the
// kernel it drives.
//
// # Key Interfaces
//
// The extension points are small, single-purpose interfaces:
//   - rng.Stream: stream-switchable, key-addressable random draws.
//   - formalism: MLBW vs Reich-Moore residue combination for the multipole
//     total cross section, dispatched once per MultipoleArray rather than
//     re-tested inside the per-pole loop.
package xs
