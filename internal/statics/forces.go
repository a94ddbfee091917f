package statics

// Sample is the internal force state at one cross-section x (m).
// V is in kN, M in kN-m.
type Sample struct {
	X float64
	V float64
	M float64
}

// N returns the axial force at the section. Axial behaviour is not modelled,
// so it is always zero.
func (Sample) N() float64 { return 0 }

// EvaluateAt returns shear and moment at x using the left-side free body:
// everything left of the cut, which is RA plus the part of the load with
// position <= x. RB never enters, so V approaches -RB (not zero) as x -> L
// and the jump back to zero happens at the right support itself.
//
// Inputs are assumed to have passed ComputeReactions.
func EvaluateAt(x float64, load Load, r Reactions) Sample {
	v := r.RA
	m := r.RA * x

	switch ld := load.(type) {
	case PointLoad:
		if x >= ld.Position {
			v -= ld.Magnitude
			m -= ld.Magnitude * (x - ld.Position)
		}
	case DistributedLoad:
		v -= ld.Intensity * x
		m -= ld.Intensity * x * x / 2
	}

	return Sample{X: x, V: v, M: m}
}
