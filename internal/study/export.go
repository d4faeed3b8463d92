package study

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/okoham/ibeam/internal/cantilever"
)

// Columns is the record schema of a study table, in export order.
var Columns = []string{
	"wmax",
	cantilever.ModeTensionUpper,
	cantilever.ModeTensionLower,
	cantilever.ModeCompressionUpper,
	cantilever.ModeCompressionLower,
	cantilever.ModeLocalBucklingUpper,
	cantilever.ModeLocalBucklingLower,
	cantilever.ModeWebShear,
	cantilever.ModeWebBuckling,
	cantilever.ModeLateralTorsional,
	"Fmax", "mass", "cost", "area",
	"L", "h", "tw", "blf", "tlf", "buf", "tuf",
	"matname",
}

// Values returns the numeric fields of s in Columns order; the trailing
// material name is returned separately.
func Values(s cantilever.Summary) ([]float64, string) {
	v := make([]float64, 0, len(Columns)-1)
	v = append(v, s.WMax)
	v = append(v, s.ReserveFactors.Values()...)
	v = append(v, s.FMax, s.Mass, s.Cost, s.Area, s.L, s.H, s.Tw, s.Blf, s.Tlf, s.Buf, s.Tuf)
	return v, s.MatName
}

// FormatFloat renders a value the way the reference datasets spell
// non-finite numbers ("inf", "-inf", "nan").
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Row returns the record of s as strings in Columns order.
func Row(s cantilever.Summary) []string {
	values, name := Values(s)
	row := make([]string, 0, len(Columns))
	for _, v := range values {
		row = append(row, FormatFloat(v))
	}
	return append(row, name)
}

// Record returns the record of s keyed by column name, with non-finite
// values spelled as strings so that it can be encoded as JSON.
func Record(s cantilever.Summary) map[string]any {
	values, name := Values(s)
	rec := make(map[string]any, len(Columns))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			rec[Columns[i]] = FormatFloat(v)
			continue
		}
		rec[Columns[i]] = v
	}
	rec["matname"] = name
	return rec
}

// WriteCSV writes a header line and one row per summary.
func WriteCSV(w io.Writer, summaries []cantilever.Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for i, s := range summaries {
		if err := cw.Write(Row(s)); err != nil {
			return fmt.Errorf("study: write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
