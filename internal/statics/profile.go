package statics

import (
	"fmt"
	"iter"
	"math"
)

// DefaultSamples gives a smooth curve for plotting over typical spans.
const DefaultSamples = 801

// Profile is V(x) and M(x) sampled at evenly spaced sections over [0, L],
// both ends included.
type Profile struct {
	Span    Span
	Samples []Sample
}

// Abscissas yields n evenly spaced positions over [0, L]. The first is
// exactly 0 and the last exactly L. The sequence can be ranged over any
// number of times.
func Abscissas(L Span, n int) iter.Seq2[int, float64] {
	span := float64(L)
	return func(yield func(int, float64) bool) {
		if n < 1 {
			return
		}
		if n == 1 {
			yield(0, 0)
			return
		}
		last := n - 1
		for i := 0; i < n; i++ {
			x := span * float64(i) / float64(last)
			if i == last {
				x = span
			}
			if !yield(i, x) {
				return
			}
		}
	}
}

// Samples lazily evaluates the internal forces at each abscissa.
func Samples(L Span, load Load, r Reactions, n int) iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		for _, x := range Abscissas(L, n) {
			if !yield(EvaluateAt(x, load, r)) {
				return
			}
		}
	}
}

// BuildProfile materializes n samples over [0, L]. Any n >= 2 is valid;
// n = 2 returns just the two support sections.
func BuildProfile(L Span, load Load, r Reactions, n int) (Profile, error) {
	if n < 2 {
		return Profile{}, fmt.Errorf("%w: profile needs at least 2 samples, got %d", ErrInvalidInput, n)
	}

	samples := make([]Sample, 0, n)
	for s := range Samples(L, load, r, n) {
		samples = append(samples, s)
	}
	return Profile{Span: L, Samples: samples}, nil
}

// NearestSample returns the sample whose x is closest to xq. On a tie the
// sample with the smaller index wins. It panics on an empty profile.
func NearestSample(p Profile, xq float64) Sample {
	if len(p.Samples) == 0 {
		panic("statics: NearestSample on empty profile")
	}

	best := 0
	bestDist := math.Abs(p.Samples[0].X - xq)
	for i := 1; i < len(p.Samples); i++ {
		if d := math.Abs(p.Samples[i].X - xq); d < bestDist {
			best, bestDist = i, d
		}
	}
	return p.Samples[best]
}

// Len returns the number of samples.
func (p Profile) Len() int { return len(p.Samples) }

// Xs returns the sample positions as a slice.
func (p Profile) Xs() []float64 {
	return p.column(func(s Sample) float64 { return s.X })
}

// Shear returns V at every sample.
func (p Profile) Shear() []float64 {
	return p.column(func(s Sample) float64 { return s.V })
}

// Moment returns M at every sample.
func (p Profile) Moment() []float64 {
	return p.column(func(s Sample) float64 { return s.M })
}

func (p Profile) column(f func(Sample) float64) []float64 {
	out := make([]float64, len(p.Samples))
	for i, s := range p.Samples {
		out[i] = f(s)
	}
	return out
}

// Extremes summarizes the peak internal forces of a profile.
type Extremes struct {
	MaxAbsShear Sample // sample with the largest |V|
	MaxMoment   Sample // sample with the largest M
	MinMoment   Sample // sample with the smallest M
}

// Extremes scans the profile for peak values. Ties keep the first sample.
func (p Profile) Extremes() Extremes {
	var e Extremes
	if len(p.Samples) == 0 {
		return e
	}

	e.MaxAbsShear = p.Samples[0]
	e.MaxMoment = p.Samples[0]
	e.MinMoment = p.Samples[0]
	for _, s := range p.Samples[1:] {
		if math.Abs(s.V) > math.Abs(e.MaxAbsShear.V) {
			e.MaxAbsShear = s
		}
		if s.M > e.MaxMoment.M {
			e.MaxMoment = s
		}
		if s.M < e.MinMoment.M {
			e.MinMoment = s
		}
	}
	return e
}
