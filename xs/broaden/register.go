// register.go wires xs/broaden's polynomial broadener into the xs package's
// DopplerBroadenFunc registration variable, the same way xs/specfunc wires
// in the Faddeeva function.
package broaden

import "github.com/openmc-go/xscore/xs"

func init() {
	xs.DopplerBroadenFunc = BroadenPolynomials
}
