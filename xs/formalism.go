package xs

// formalism dispatches the one place MLBW and Reich-Moore resonance
// formalisms differ: how the total-channel residues combine with the
// hard-sphere phase factor. Selecting the implementation once per
// MultipoleArray (see NewMLBWFormalism / NewRMFormalism) keeps the per-pole
// loop in MultipoleEval and MultipoleDerivEval free of a formalism switch,
// per spec.md §9's "polymorphism over formalism" design note.
type formalism interface {
	// total0K combines a pole's residues with the 0 K pole term c and the
	// angular-momentum phase factor sigTFactor into the total-channel
	// contribution.
	total0K(p PoleData, c, sigTFactor complex128) complex128
	// totalFiniteT is the same combination using the Doppler-broadened pole
	// term w in place of c.
	totalFiniteT(p PoleData, w, sigTFactor complex128) complex128
}

type mlbwFormalism struct{}
type rmFormalism struct{}

// NewMLBWFormalism returns the Multi-Level Breit-Wigner formalism: the
// total channel carries both the resonant (RT) and competitive (RX)
// residues, and only RT is phase-factored.
func NewMLBWFormalism() formalism { return mlbwFormalism{} }

// NewRMFormalism returns the Reich-Moore formalism: the total channel
// carries only the resonant residue RT, phase-factored.
func NewRMFormalism() formalism { return rmFormalism{} }

func (mlbwFormalism) total0K(p PoleData, c, sigTFactor complex128) complex128 {
	return p.RT*c*sigTFactor + p.RX*c
}

func (mlbwFormalism) totalFiniteT(p PoleData, w, sigTFactor complex128) complex128 {
	return (p.RT*sigTFactor + p.RX) * w
}

func (rmFormalism) total0K(p PoleData, c, sigTFactor complex128) complex128 {
	return p.RT * c * sigTFactor
}

func (rmFormalism) totalFiniteT(p PoleData, w, sigTFactor complex128) complex128 {
	return p.RT * w * sigTFactor
}
