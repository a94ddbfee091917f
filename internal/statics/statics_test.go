package statics

import (
	"errors"
	"math"
	"testing"
)

func TestComputeReactions(t *testing.T) {
	tests := []struct {
		name string
		span Span
		load Load
		want Reactions
	}{
		{"point load at midspan", 6, PointLoad{Magnitude: 10, Position: 3}, Reactions{RA: 5, RB: 5}},
		{"point load off centre", 6, PointLoad{Magnitude: 10, Position: 4}, Reactions{RA: 10.0 * 2 / 6, RB: 10.0 * 4 / 6}},
		{"point load over support A", 6, PointLoad{Magnitude: 10, Position: 0}, Reactions{RA: 10, RB: 0}},
		{"point load over support B", 6, PointLoad{Magnitude: 10, Position: 6}, Reactions{RA: 0, RB: 10}},
		{"zero point load", 6, PointLoad{Magnitude: 0, Position: 2}, Reactions{}},
		{"uniform load", 6, DistributedLoad{Intensity: 2}, Reactions{RA: 6, RB: 6}},
		{"zero uniform load", 4, DistributedLoad{}, Reactions{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeReactions(tt.span, tt.load)
			if err != nil {
				t.Fatalf("ComputeReactions() error = %v", err)
			}
			diff(t, tt.want, got, approx)
		})
	}
}

func TestComputeReactionsEquilibrium(t *testing.T) {
	for _, L := range []Span{0.5, 1, 3.7, 6, 10, 123.4} {
		for _, P := range []float64{0.1, 1, 10, 49.5, 1e4} {
			for _, frac := range []float64{0, 0.1, 0.25, 1.0 / 3, 0.5, 0.77, 1} {
				load := PointLoad{Magnitude: P, Position: frac * float64(L)}
				r, err := ComputeReactions(L, load)
				if err != nil {
					t.Fatalf("L=%v %+v: %v", L, load, err)
				}
				checkEquilibrium(t, r, load.Total(L))
			}
		}
		for _, w := range []float64{0.5, 2, 9.9, 1e3} {
			load := DistributedLoad{Intensity: w}
			r, err := ComputeReactions(L, load)
			if err != nil {
				t.Fatalf("L=%v %+v: %v", L, load, err)
			}
			checkEquilibrium(t, r, load.Total(L))
		}
	}
}

func checkEquilibrium(t *testing.T, r Reactions, total float64) {
	t.Helper()
	if res := math.Abs(r.Residual(total)); res > 1e-9*math.Max(1, math.Abs(total)) {
		t.Errorf("RA+RB=%v, total=%v, residual %g", r.Sum(), total, res)
	}
}

func TestComputeReactionsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		span Span
		load Load
	}{
		{"zero span", 0, PointLoad{Magnitude: 10, Position: 0}},
		{"negative span", -2, DistributedLoad{Intensity: 1}},
		{"NaN span", Span(math.NaN()), DistributedLoad{Intensity: 1}},
		{"infinite span", Span(math.Inf(1)), DistributedLoad{Intensity: 1}},
		{"negative point load", 6, PointLoad{Magnitude: -1, Position: 3}},
		{"negative distributed load", 6, DistributedLoad{Intensity: -0.5}},
		{"position before support A", 6, PointLoad{Magnitude: 10, Position: -0.01}},
		{"position past support B", 6, PointLoad{Magnitude: 10, Position: 6.01}},
		{"NaN position", 6, PointLoad{Magnitude: 10, Position: math.NaN()}},
		{"nil load", 6, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeReactions(tt.span, tt.load)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("ComputeReactions() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func mustReactions(t *testing.T, L Span, load Load) Reactions {
	t.Helper()
	r, err := ComputeReactions(L, load)
	if err != nil {
		t.Fatalf("ComputeReactions(%v, %+v): %v", L, load, err)
	}
	return r
}

func TestEvaluateAtMomentBoundaries(t *testing.T) {
	for _, L := range []Span{1, 2.5, 6, 9.3} {
		for _, frac := range []float64{0, 0.2, 0.5, 2.0 / 3, 1} {
			load := PointLoad{Magnitude: 17.5, Position: frac * float64(L)}
			r := mustReactions(t, L, load)

			if m := EvaluateAt(0, load, r).M; m != 0 {
				t.Errorf("point L=%v a=%v: M(0) = %v, want 0", L, load.Position, m)
			}
			if m := EvaluateAt(float64(L), load, r).M; math.Abs(m) > 1e-9 {
				t.Errorf("point L=%v a=%v: M(L) = %v, want 0", L, load.Position, m)
			}
		}

		load := DistributedLoad{Intensity: 3.3}
		r := mustReactions(t, L, load)
		if m := EvaluateAt(0, load, r).M; m != 0 {
			t.Errorf("uniform L=%v: M(0) = %v, want 0", L, m)
		}
		if m := EvaluateAt(float64(L), load, r).M; m != 0 {
			t.Errorf("uniform L=%v: M(L) = %v, want exactly 0", L, m)
		}
	}
}

func TestEvaluateAtShearJump(t *testing.T) {
	load := PointLoad{Magnitude: 10, Position: 4}
	r := mustReactions(t, 6, load)

	for _, x := range []float64{0, 1, 3.999} {
		if v := EvaluateAt(x, load, r).V; v != r.RA {
			t.Errorf("V(%v) = %v, want RA = %v", x, v, r.RA)
		}
	}
	for _, x := range []float64{4, 4.001, 5, 6} {
		if v := EvaluateAt(x, load, r).V; v != r.RA-load.Magnitude {
			t.Errorf("V(%v) = %v, want RA-P = %v", x, v, r.RA-load.Magnitude)
		}
	}
}

func TestEvaluateAtRightSupportShear(t *testing.T) {
	loads := []Load{
		PointLoad{Magnitude: 10, Position: 3},
		PointLoad{Magnitude: 10, Position: 1.2},
		DistributedLoad{Intensity: 2},
	}
	const L = 6.0
	for _, load := range loads {
		r := mustReactions(t, L, load)
		got := EvaluateAt(L, load, r).V
		if math.Abs(got-(-r.RB)) > 1e-9 {
			t.Errorf("%v: V(L) = %v, want -RB = %v", load.Kind(), got, -r.RB)
		}
		if r.RB != 0 && got == 0 {
			t.Errorf("%v: V(L) returned to zero, RB must not be included", load.Kind())
		}
	}
}

func TestEvaluateAtDistributed(t *testing.T) {
	load := DistributedLoad{Intensity: 2}
	r := mustReactions(t, 6, load)

	want := []Sample{
		{X: 0, V: 6, M: 0},
		{X: 1.5, V: 3, M: 6.75},
		{X: 3, V: 0, M: 9},
		{X: 4.5, V: -3, M: 6.75},
	}
	for _, w := range want {
		diff(t, w, EvaluateAt(w.X, load, r), approx)
	}
	if n := EvaluateAt(2, load, r).N(); n != 0 {
		t.Errorf("N() = %v, want 0", n)
	}
}

func TestAbscissas(t *testing.T) {
	const L = Span(6.1)
	var first []float64
	for _, x := range Abscissas(L, DefaultSamples) {
		first = append(first, x)
	}
	if len(first) != DefaultSamples {
		t.Fatalf("got %d abscissas, want %d", len(first), DefaultSamples)
	}
	if first[0] != 0 || first[len(first)-1] != float64(L) {
		t.Errorf("endpoints = %v, %v; want 0, %v", first[0], first[len(first)-1], float64(L))
	}
	for i := 1; i < len(first); i++ {
		if first[i] <= first[i-1] {
			t.Fatalf("abscissas not increasing at %d: %v <= %v", i, first[i], first[i-1])
		}
	}

	// restartable
	var second []float64
	for _, x := range Abscissas(L, DefaultSamples) {
		second = append(second, x)
	}
	diff(t, first, second)
}

func TestSamplesEarlyStop(t *testing.T) {
	load := DistributedLoad{Intensity: 1}
	r := mustReactions(t, 4, load)

	count := 0
	for range Samples(4, load, r, 100) {
		count++
		if count == 5 {
			break
		}
	}
	if count != 5 {
		t.Errorf("count = %d, want 5", count)
	}
}

func TestBuildProfileTwoSamples(t *testing.T) {
	load := PointLoad{Magnitude: 10, Position: 4}
	r := mustReactions(t, 6, load)

	p, err := BuildProfile(6, load, r, 2)
	if err != nil {
		t.Fatalf("BuildProfile() error = %v", err)
	}
	want := []Sample{
		EvaluateAt(0, load, r),
		EvaluateAt(6, load, r),
	}
	diff(t, want, p.Samples)
	if p.Samples[0].X != 0 || p.Samples[1].X != 6 {
		t.Errorf("xs = %v, want [0 6]", p.Xs())
	}
}

func TestBuildProfileTooFewSamples(t *testing.T) {
	load := DistributedLoad{Intensity: 1}
	r := mustReactions(t, 6, load)
	for _, n := range []int{-1, 0, 1} {
		if _, err := BuildProfile(6, load, r, n); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("BuildProfile(n=%d) error = %v, want ErrInvalidInput", n, err)
		}
	}
}

func TestBuildProfileColumns(t *testing.T) {
	load := DistributedLoad{Intensity: 2}
	r := mustReactions(t, 6, load)
	p, err := BuildProfile(6, load, r, 5)
	if err != nil {
		t.Fatal(err)
	}

	diff(t, []float64{0, 1.5, 3, 4.5, 6}, p.Xs(), approx)
	diff(t, []float64{6, 3, 0, -3, -6}, p.Shear(), approx)
	diff(t, []float64{0, 6.75, 9, 6.75, 0}, p.Moment(), approx)
	if p.Len() != 5 {
		t.Errorf("Len() = %d, want 5", p.Len())
	}
}

func TestNearestSample(t *testing.T) {
	load := PointLoad{Magnitude: 10, Position: 1}
	r := mustReactions(t, 2, load)
	p, err := BuildProfile(2, load, r, 3) // x = 0, 1, 2
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		xq    float64
		wantX float64
	}{
		{0, 0},
		{0.2, 0},
		{0.5, 0}, // tie between 0 and 1
		{0.51, 1},
		{1, 1},
		{1.5, 1}, // tie between 1 and 2
		{1.7, 2},
		{2, 2},
		{-3, 0},
		{10, 2},
	}
	for _, tt := range tests {
		got := NearestSample(p, tt.xq)
		if got.X != tt.wantX {
			t.Errorf("NearestSample(%v).X = %v, want %v", tt.xq, got.X, tt.wantX)
		}
	}
}

func TestNearestSampleMatchesBruteForce(t *testing.T) {
	load := DistributedLoad{Intensity: 2}
	r := mustReactions(t, 6, load)
	p, err := BuildProfile(6, load, r, DefaultSamples)
	if err != nil {
		t.Fatal(err)
	}

	for _, xq := range []float64{0.001, 1.23456, 2.99, 3, 4.00374, 5.9999} {
		got := NearestSample(p, xq)
		for _, s := range p.Samples {
			if math.Abs(s.X-xq) < math.Abs(got.X-xq) {
				t.Errorf("NearestSample(%v) = x %v, but x %v is closer", xq, got.X, s.X)
				break
			}
		}
	}
}

func TestNearestSampleEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on empty profile")
		}
	}()
	NearestSample(Profile{}, 1)
}

func TestAnalyze(t *testing.T) {
	t.Run("point load", func(t *testing.T) {
		a, err := Analyze(6, PointLoad{Magnitude: 10, Position: 3}, DefaultSamples)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, Sample{X: 3, V: -5, M: 15}, a.Extremes.MaxMoment, approx)
		if math.Abs(a.Extremes.MaxAbsShear.V) != 5 {
			t.Errorf("max |V| = %v, want 5", a.Extremes.MaxAbsShear.V)
		}
		if math.Abs(a.Residual) > 1e-12 {
			t.Errorf("residual = %g", a.Residual)
		}
	})

	t.Run("uniform load", func(t *testing.T) {
		a, err := Analyze(6, DistributedLoad{Intensity: 2}, DefaultSamples)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, Sample{X: 3, V: 0, M: 9}, a.Extremes.MaxMoment, approx)
		diff(t, 0.0, a.Extremes.MinMoment.M, approx)
		diff(t, 6.0, math.Abs(a.Extremes.MaxAbsShear.V), approx)
	})

	t.Run("invalid", func(t *testing.T) {
		if _, err := Analyze(-1, DistributedLoad{Intensity: 2}, 10); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("error = %v, want ErrInvalidInput", err)
		}
		if _, err := Analyze(6, DistributedLoad{Intensity: 2}, 1); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("error = %v, want ErrInvalidInput", err)
		}
	})
}

func TestParseLoadKind(t *testing.T) {
	for in, want := range map[string]LoadKind{"point": KindPoint, "P": KindPoint, "distributed": KindDistributed, "w": KindDistributed} {
		got, err := ParseLoadKind(in)
		if err != nil || got != want {
			t.Errorf("ParseLoadKind(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLoadKind("moment"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ParseLoadKind(moment) error = %v", err)
	}
}
