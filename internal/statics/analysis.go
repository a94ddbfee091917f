// Package statics evaluates reactions, shear force and bending moment for a
// simply supported beam carrying a single point load or a full-span uniform
// load.
//
// Every function is pure. Callers build a Span and a Load from their current
// inputs, call ComputeReactions (the only validating entry point) and then
// EvaluateAt, BuildProfile or NearestSample as needed:
//
//	load := statics.PointLoad{Magnitude: 10, Position: 4}
//	r, err := statics.ComputeReactions(6, load)
//	if err != nil {
//	    return err
//	}
//	p, _ := statics.BuildProfile(6, load, r, statics.DefaultSamples)
//	s := statics.NearestSample(p, 3.0)
//
// Shear and moment follow the left-side free-body convention. The right
// reaction RB is never included, so V(L-) equals -RB rather than zero.
package statics

// Analysis bundles everything derived from one (span, load) pair.
type Analysis struct {
	Span      Span
	Load      Load
	Reactions Reactions
	Profile   Profile
	Extremes  Extremes

	// Residual is RA + RB minus the total applied load.
	Residual float64
}

// Analyze runs reactions, profile and extremes in one call.
func Analyze(L Span, load Load, n int) (*Analysis, error) {
	r, err := ComputeReactions(L, load)
	if err != nil {
		return nil, err
	}

	p, err := BuildProfile(L, load, r, n)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		Span:      L,
		Load:      load,
		Reactions: r,
		Profile:   p,
		Extremes:  p.Extremes(),
		Residual:  r.Residual(load.Total(L)),
	}, nil
}
