package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gosfd/internal/statics"
)

// Quantity selects which internal force a diagram shows.
type Quantity int

const (
	Shear Quantity = iota
	Moment
)

// Title is the diagram heading.
func (q Quantity) Title() string {
	if q == Moment {
		return "Bending Moment Diagram M(x)"
	}
	return "Shear Force Diagram V(x)"
}

// Symbol is the axis label, e.g. "V (kN)".
func (q Quantity) Symbol() string {
	if q == Moment {
		return "M (kN-m)"
	}
	return "V (kN)"
}

// Values extracts the quantity from every sample of p.
func (q Quantity) Values(p statics.Profile) []float64 {
	if q == Moment {
		return p.Moment()
	}
	return p.Shear()
}

// ASCIIOptions controls the size of terminal charts.
type ASCIIOptions struct {
	Width  int // plot columns, excluding the axis labels
	Height int // plot rows
}

// DefaultASCIIOptions fits an 80 column terminal.
var DefaultASCIIOptions = ASCIIOptions{Width: 60, Height: 12}

// DrawASCIIDiagram renders V(x) or M(x) as a terminal line chart. The profile
// is resampled to opts.Width columns.
func DrawASCIIDiagram(p statics.Profile, q Quantity, opts ASCIIOptions) string {
	if opts.Width <= 0 {
		opts.Width = DefaultASCIIOptions.Width
	}
	if opts.Height <= 0 {
		opts.Height = DefaultASCIIOptions.Height
	}

	values := q.Values(p)
	lo, hi := bounds(values)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(q.Title())))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", utf8.RuneCountInString(q.Title()))))
	sb.WriteString(asciigraph.Plot(values,
		asciigraph.Width(opts.Width),
		asciigraph.Height(opts.Height),
		asciigraph.LowerBound(math.Min(lo, 0)),
		asciigraph.UpperBound(math.Max(hi, 0)),
		asciigraph.Precision(2),
		asciigraph.Offset(4),
		asciigraph.Caption(fmt.Sprintf("%s over x = 0 … %.2f m", q.Symbol(), float64(p.Span))),
	))
	sb.WriteString("\n")

	return sb.String()
}

func bounds(values []float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// DrawBeamSketch draws the simply supported beam with its load and reactions.
func DrawBeamSketch(L statics.Span, load statics.Load, r statics.Reactions) string {
	var sb strings.Builder

	const beamChars = 40
	pad := "  "

	sb.WriteString("\n")
	switch ld := load.(type) {
	case statics.PointLoad:
		col := 0
		if L > 0 {
			col = int(math.Round(ld.Position / float64(L) * float64(beamChars-1)))
		}
		col = max(0, min(beamChars-1, col))

		label := fmt.Sprintf("P = %.2f kN @ a = %.2f m", ld.Magnitude, ld.Position)
		labelCol := max(0, min(col, beamChars-utf8.RuneCountInString(label)))
		sb.WriteString(pad + " " + strings.Repeat(" ", labelCol) + label + "\n")
		sb.WriteString(pad + " " + strings.Repeat(" ", col) + "│\n")
		sb.WriteString(pad + " " + strings.Repeat(" ", col) + "▼\n")
	case statics.DistributedLoad:
		sb.WriteString(fmt.Sprintf("%s w = %.2f kN/m (uniform)\n", pad, ld.Intensity))
		sb.WriteString(pad + " " + strings.Repeat("↓ ", beamChars/2) + "\n")
	}

	sb.WriteString(pad + " " + strings.Repeat("═", beamChars) + "\n")
	sb.WriteString(pad + " △" + strings.Repeat(" ", beamChars-2) + "○\n")
	sb.WriteString(pad + " A" + strings.Repeat(" ", beamChars-2) + "B\n")

	ra := fmt.Sprintf("RA = %.3f kN", r.RA)
	rb := fmt.Sprintf("RB = %.3f kN", r.RB)
	gap := max(1, beamChars-utf8.RuneCountInString(ra)-utf8.RuneCountInString(rb))
	sb.WriteString(pad + " " + ra + strings.Repeat(" ", gap) + rb + "\n")

	span := fmt.Sprintf(" L = %.2f m ", float64(L))
	arms := max(0, beamChars-2-utf8.RuneCountInString(span))
	left := arms / 2
	sb.WriteString(pad + " ├" + strings.Repeat("─", left) + span + strings.Repeat("─", arms-left) + "┤\n")

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
