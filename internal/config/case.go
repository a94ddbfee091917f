// Package config reads beam case files.
//
// A case file is a small TOML document describing one simply supported beam
// and its single load:
//
//	span = 6.0
//	samples = 801
//	probe = 3.0
//
//	[load]
//	type = "point"
//	magnitude = 10.0
//	position = 3.0
//
// Only structure is checked here. Physical limits (positive span, load on the
// beam) are enforced by statics.ComputeReactions.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/alexiusacademia/gosfd/internal/statics"
)

// Defaults for anything a case file or flag leaves unset.
const (
	DefaultSpan      = 6.0  // m
	DefaultPointLoad = 10.0 // kN
	DefaultUniform   = 2.0  // kN/m
)

// Case is one beam problem.
type Case struct {
	Span    float64  `toml:"span" validate:"required"`
	Samples int      `toml:"samples" validate:"omitempty,min=2"`
	Probe   *float64 `toml:"probe"`
	Load    LoadCase `toml:"load"`
}

// LoadCase describes the single applied load. Position is ignored for
// distributed loads.
type LoadCase struct {
	Type      string   `toml:"type" validate:"required,oneof=point distributed"`
	Magnitude *float64 `toml:"magnitude"`
	Position  *float64 `toml:"position"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadFile decodes and structurally validates a case file.
func LoadFile(path string) (*Case, error) {
	var c Case
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return nil, fmt.Errorf("reading case file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("case file %s: unknown key %q", path, undecoded[0].String())
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("case file %s: %w", path, err)
	}
	return &c, nil
}

// Decode parses a case from TOML text.
func Decode(data string) (*Case, error) {
	var c Case
	if _, err := toml.Decode(data, &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the case structure.
func (c *Case) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", statics.ErrInvalidInput, err)
	}
	return nil
}

// Defaults fills unset fields: 6 m span, P = 10 kN at
// midspan, w = 2 kN/m, 801 samples, probe at midspan.
func (c *Case) Defaults() {
	if c.Span == 0 {
		c.Span = DefaultSpan
	}
	if c.Load.Type == "" {
		c.Load.Type = statics.KindPoint.String()
	}
	if c.Samples == 0 {
		c.Samples = statics.DefaultSamples
	}
	if c.Load.Magnitude == nil {
		m := DefaultPointLoad
		if c.Load.Type == statics.KindDistributed.String() {
			m = DefaultUniform
		}
		c.Load.Magnitude = &m
	}
	if c.Load.Position == nil {
		a := c.Span / 2
		c.Load.Position = &a
	}
	if c.Probe == nil {
		xq := c.Span / 2
		c.Probe = &xq
	}
}

// BeamLoad converts the load section into a statics.Load. Call Defaults
// first; unset values read as zero.
func (c *Case) BeamLoad() (statics.Load, error) {
	kind, err := statics.ParseLoadKind(c.Load.Type)
	if err != nil {
		return nil, err
	}

	magnitude := deref(c.Load.Magnitude)
	switch kind {
	case statics.KindDistributed:
		return statics.DistributedLoad{Intensity: magnitude}, nil
	default:
		return statics.PointLoad{Magnitude: magnitude, Position: deref(c.Load.Position)}, nil
	}
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
