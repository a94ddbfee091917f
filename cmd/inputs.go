package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosfd/internal/config"
	"github.com/alexiusacademia/gosfd/internal/nscp"
	"github.com/alexiusacademia/gosfd/internal/statics"
)

// beamFlags are the inputs shared by every command that solves a beam.
type beamFlags struct {
	casePath  string
	span      float64
	loadType  string
	magnitude float64
	position  float64
	samples   int

	// Unfactored load components; when any is set the governing
	// factored value becomes the load magnitude.
	components nscp.LoadComponents
	simplified bool
}

func (f *beamFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()

	fl.StringVarP(&f.casePath, "case", "c", "", "Beam case file (TOML)")

	// Geometry and load
	fl.Float64VarP(&f.span, "span", "L", config.DefaultSpan, "Span length L (m)")
	fl.StringVarP(&f.loadType, "type", "t", "point", "Load type: point or distributed")
	fl.Float64VarP(&f.magnitude, "load", "P", config.DefaultPointLoad, "Load magnitude: P (kN) for point, w (kN/m) for distributed")
	fl.Float64VarP(&f.position, "position", "a", 0, "Point load position a from support A (m) (default L/2)")
	fl.IntVarP(&f.samples, "samples", "n", statics.DefaultSamples, "Number of sections sampled over [0, L]")

	// Factored load components
	fl.Float64Var(&f.components.Dead, "dead", 0, "Dead load component D")
	fl.Float64Var(&f.components.Live, "live", 0, "Live load component L")
	fl.Float64Var(&f.components.Roof, "roof", 0, "Roof live load component Lr")
	fl.Float64Var(&f.components.Wind, "wind", 0, "Wind load component W")
	fl.Float64Var(&f.components.Earthquake, "earthquake", 0, "Earthquake load component E")
	fl.Float64Var(&f.components.Rain, "rain", 0, "Rain load component R")
	fl.BoolVar(&f.simplified, "simplified", false, "Use gravity-only combinations (1.4D and 1.2D+1.6L)")

	cmd.MarkFlagsMutuallyExclusive("load", "dead")
	cmd.MarkFlagsMutuallyExclusive("load", "live")
}

// resolve merges the case file (if any), explicitly set flags and the
// defaults into one validated case. Flags win over the case file.
func (f *beamFlags) resolve(cmd *cobra.Command) (*config.Case, error) {
	logger := loggerFromContext(cmd.Context())
	fl := cmd.Flags()

	c := &config.Case{}
	if f.casePath != "" {
		loaded, err := config.LoadFile(f.casePath)
		if err != nil {
			return nil, err
		}
		c = loaded
		logger.Debug("loaded case file", "path", f.casePath)
	}

	if fl.Changed("span") || c.Span == 0 {
		c.Span = f.span
	}
	// Defaults would replace an explicit zero, so check the span here.
	if err := statics.Span(c.Span).Validate(); err != nil {
		return nil, err
	}
	if fl.Changed("type") || c.Load.Type == "" {
		kind, err := statics.ParseLoadKind(f.loadType)
		if err != nil {
			return nil, err
		}
		c.Load.Type = kind.String()
	}
	if fl.Changed("load") {
		m := f.magnitude
		c.Load.Magnitude = &m
	}
	if fl.Changed("position") {
		a := f.position
		c.Load.Position = &a
	}
	if fl.Changed("samples") {
		if f.samples < 2 {
			return nil, fmt.Errorf("%w: need at least 2 samples, got %d", statics.ErrInvalidInput, f.samples)
		}
		c.Samples = f.samples
	}

	if !f.components.IsZero() {
		combos := nscp.LoadCombinations
		if f.simplified {
			combos = nscp.SimplifiedCombinations
		}
		u, combo := nscp.Governing(f.components, combos)
		if combo.ID == "" {
			return nil, fmt.Errorf("%w: load components give no positive factored load", statics.ErrInvalidInput)
		}
		c.Load.Magnitude = &u
		logger.Info("factored load", "combination", combo.ID, "formula", combo.Description, "value", u)
	}

	c.Defaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("beam case",
		"span", c.Span,
		"type", c.Load.Type,
		"magnitude", *c.Load.Magnitude,
		"position", *c.Load.Position,
		"samples", c.Samples,
	)
	return c, nil
}

// analyze resolves the inputs and runs the full statics evaluation.
func (f *beamFlags) analyze(cmd *cobra.Command) (*config.Case, *statics.Analysis, error) {
	c, err := f.resolve(cmd)
	if err != nil {
		return nil, nil, err
	}

	load, err := c.BeamLoad()
	if err != nil {
		return nil, nil, err
	}

	a, err := statics.Analyze(statics.Span(c.Span), load, c.Samples)
	if err != nil {
		return nil, nil, err
	}

	loggerFromContext(cmd.Context()).Debug("solved",
		"RA", a.Reactions.RA,
		"RB", a.Reactions.RB,
		"residual", a.Residual,
		"samples", a.Profile.Len(),
	)
	return c, a, nil
}

// describeLoad is the one-line load description used in reports.
func describeLoad(load statics.Load) string {
	switch ld := load.(type) {
	case statics.PointLoad:
		return fmt.Sprintf("Point load P = %.2f kN at a = %.2f m", ld.Magnitude, ld.Position)
	case statics.DistributedLoad:
		return fmt.Sprintf("Uniform load w = %.2f kN/m over full span", ld.Intensity)
	}
	return "none"
}

// totalSymbol names the total load in the equilibrium check.
func totalSymbol(load statics.Load) string {
	if load.Kind() == statics.KindDistributed {
		return "wL"
	}
	return "P"
}
