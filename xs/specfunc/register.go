// register.go wires xs/specfunc's Faddeeva implementation into the xs
// package's registration variables (FaddeevaFunc, FaddeevaSecondDerivFunc).
// This init() runs when anything imports xs/specfunc, the same pattern
// sim/latency/register.go and sim/kv/register.go use to bind an
// implementation package to the interface-owning package without an import
// cycle.
package specfunc

import "github.com/openmc-go/xscore/xs"

func init() {
	xs.FaddeevaFunc = Faddeeva
	xs.FaddeevaSecondDerivFunc = FaddeevaSecondDeriv
}
