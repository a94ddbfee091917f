package diagram

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gosfd/internal/statics"
)

const (
	summarySheet = "Summary"
	profileSheet = "Profile"
)

// ExportWorkbook writes the analysis to an XLSX file: reactions and peak
// values on a Summary sheet, every sample (x, V, M, N) on a Profile sheet.
func ExportWorkbook(a *statics.Analysis, filename string) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(profileSheet); err != nil {
		return err
	}

	summary := [][]any{
		{"Quantity", "Value", "Unit"},
		{"Span L", float64(a.Span), "m"},
		{"Load type", a.Load.Kind().String(), ""},
	}
	switch ld := a.Load.(type) {
	case statics.PointLoad:
		summary = append(summary,
			[]any{"P", ld.Magnitude, "kN"},
			[]any{"a", ld.Position, "m"},
		)
	case statics.DistributedLoad:
		summary = append(summary, []any{"w", ld.Intensity, "kN/m"})
	}
	summary = append(summary,
		[]any{"RA", a.Reactions.RA, "kN"},
		[]any{"RB", a.Reactions.RB, "kN"},
		[]any{"RA + RB - total", a.Residual, "kN"},
		[]any{"max |V|", a.Extremes.MaxAbsShear.V, "kN"},
		[]any{"x at max |V|", a.Extremes.MaxAbsShear.X, "m"},
		[]any{"max M", a.Extremes.MaxMoment.M, "kN-m"},
		[]any{"x at max M", a.Extremes.MaxMoment.X, "m"},
	)
	for i, row := range summary {
		if err := setRow(f, summarySheet, i+1, row); err != nil {
			return err
		}
	}

	if err := setRow(f, profileSheet, 1, []any{"x (m)", "V (kN)", "M (kN-m)", "N (kN)"}); err != nil {
		return err
	}
	for i, s := range a.Profile.Samples {
		if err := setRow(f, profileSheet, i+2, []any{s.X, s.V, s.M, s.N()}); err != nil {
			return err
		}
	}

	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("saving workbook %s: %w", filename, err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
