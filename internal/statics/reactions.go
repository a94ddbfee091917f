package statics

import "fmt"

// Reactions holds the vertical support forces (kN) at A (x = 0) and B (x = L).
type Reactions struct {
	RA float64
	RB float64
}

// Sum returns RA + RB.
func (r Reactions) Sum() float64 { return r.RA + r.RB }

// Residual is the vertical equilibrium check RA + RB - total. It should be
// zero up to rounding.
func (r Reactions) Residual(total float64) float64 { return r.Sum() - total }

// ComputeReactions solves the two simple-support reactions for a single load.
//
// This is the only place inputs are validated; EvaluateAt and BuildProfile
// trust what comes out of here.
func ComputeReactions(L Span, load Load) (Reactions, error) {
	if err := L.Validate(); err != nil {
		return Reactions{}, err
	}
	if load == nil {
		return Reactions{}, fmt.Errorf("%w: no load given", ErrInvalidInput)
	}
	if err := load.validate(L); err != nil {
		return Reactions{}, err
	}

	span := float64(L)
	switch ld := load.(type) {
	case PointLoad:
		// Moment equilibrium about B gives RA, about A gives RB.
		return Reactions{
			RA: ld.Magnitude * (span - ld.Position) / span,
			RB: ld.Magnitude * ld.Position / span,
		}, nil
	case DistributedLoad:
		half := ld.Intensity * span / 2
		return Reactions{RA: half, RB: half}, nil
	}
	return Reactions{}, fmt.Errorf("%w: unsupported load %T", ErrInvalidInput, load)
}
