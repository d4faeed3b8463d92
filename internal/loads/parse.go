// Package loads builds the sets of signed tip loads a cantilever is checked
// against, either from an explicit list or from factored load combinations.
package loads

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Default is the load set of the reference sizing study (N)
var Default = []float64{6000, -10000}

// ErrInvalidLoad is returned for load values that are not finite numbers.
var ErrInvalidLoad = errors.New("loads: invalid load")

// Parse reads a comma or whitespace separated list of signed loads, e.g.
// "6000, -10000".
func Parse(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n'
	})
	out := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLoad, field)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %q is not finite", ErrInvalidLoad, field)
		}
		out = append(out, v)
	}
	return out, nil
}

// Format renders loads the way Parse reads them.
func Format(loads []float64) string {
	parts := make([]string, len(loads))
	for i, v := range loads {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
