package statics

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned for any span or load that violates the
// simple-beam domain: non-positive span, negative magnitudes, or a point
// load placed off the beam.
var ErrInvalidInput = errors.New("invalid input")

// Span is the beam length L between the two simple supports (m).
type Span float64

// Validate checks that the span is a finite positive length.
func (s Span) Validate() error {
	if math.IsNaN(float64(s)) || math.IsInf(float64(s), 0) || s <= 0 {
		return fmt.Errorf("%w: span length must be positive, got L=%.3f m", ErrInvalidInput, float64(s))
	}
	return nil
}

// LoadKind identifies the load variant.
type LoadKind int

const (
	KindPoint LoadKind = iota
	KindDistributed
)

func (k LoadKind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindDistributed:
		return "distributed"
	default:
		return fmt.Sprintf("LoadKind(%d)", int(k))
	}
}

// ParseLoadKind maps "point" / "distributed" (and the short forms "p" / "w")
// to a LoadKind.
func ParseLoadKind(s string) (LoadKind, error) {
	switch s {
	case "point", "p", "P":
		return KindPoint, nil
	case "distributed", "udl", "w":
		return KindDistributed, nil
	}
	return 0, fmt.Errorf("%w: unknown load type %q (want point or distributed)", ErrInvalidInput, s)
}

// Load is a single downward load acting on the span. It is implemented by
// PointLoad and DistributedLoad only.
type Load interface {
	Kind() LoadKind
	// Total is the resultant downward force on a span of length L (kN).
	Total(L Span) float64
	validate(L Span) error
}

// PointLoad is a concentrated downward force P (kN) at x = a (m).
type PointLoad struct {
	Magnitude float64 // P
	Position  float64 // a
}

func (PointLoad) Kind() LoadKind { return KindPoint }

func (p PointLoad) Total(Span) float64 { return p.Magnitude }

func (p PointLoad) validate(L Span) error {
	if math.IsNaN(p.Magnitude) || p.Magnitude < 0 {
		return fmt.Errorf("%w: point load magnitude must be non-negative, got P=%.3f kN", ErrInvalidInput, p.Magnitude)
	}
	if math.IsNaN(p.Position) || p.Position < 0 || p.Position > float64(L) {
		return fmt.Errorf("%w: point load position a=%.3f m outside [0, %.3f]", ErrInvalidInput, p.Position, float64(L))
	}
	return nil
}

// DistributedLoad is a uniform downward load w (kN/m) over the full span.
type DistributedLoad struct {
	Intensity float64 // w
}

func (DistributedLoad) Kind() LoadKind { return KindDistributed }

func (d DistributedLoad) Total(L Span) float64 { return d.Intensity * float64(L) }

func (d DistributedLoad) validate(Span) error {
	if math.IsNaN(d.Intensity) || d.Intensity < 0 {
		return fmt.Errorf("%w: distributed load intensity must be non-negative, got w=%.3f kN/m", ErrInvalidInput, d.Intensity)
	}
	return nil
}
