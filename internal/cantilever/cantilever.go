// Package cantilever evaluates the static strength and stability of an
// I-section cantilever, clamped at x = 0 and loaded by a transverse point
// force at the free end x = L.
//
// Section properties are derived once at construction. Every other quantity
// is a pure function of the end load, so a *Cantilever can be shared freely
// between goroutines.
package cantilever

import (
	"errors"
	"fmt"

	"github.com/okoham/ibeam/internal/material"
	"github.com/okoham/ibeam/internal/section"
)

// CompressionFace selects which of the two flange face stresses governs the
// flange compression checks.
type CompressionFace int

const (
	// CompressionFaceMax takes the larger (less compressive) face stress,
	// matching the reference result datasets.
	CompressionFaceMax CompressionFace = iota

	// CompressionFaceMin takes the more compressive face stress.
	CompressionFaceMin
)

func (c CompressionFace) String() string {
	switch c {
	case CompressionFaceMax:
		return "max"
	case CompressionFaceMin:
		return "min"
	}
	return fmt.Sprintf("CompressionFace(%d)", int(c))
}

// ParseCompressionFace converts "max" or "min" into a CompressionFace.
func ParseCompressionFace(s string) (CompressionFace, error) {
	switch s {
	case "max", "":
		return CompressionFaceMax, nil
	case "min":
		return CompressionFaceMin, nil
	}
	return 0, fmt.Errorf("cantilever: unknown compression face policy %q", s)
}

// ErrInvalidSpan is returned when the span or the stabiliser spacing is not
// positive and geometry checking is enabled.
var ErrInvalidSpan = errors.New("cantilever: span must be positive")

// Cantilever is a clamped I-section beam with a tip load
type Cantilever struct {
	// Geometry (mm)
	L       float64 // span
	DStab   float64 // spacing of lateral stabilisers
	Section section.Geometry

	Material material.Material
	Props    section.Properties

	compression CompressionFace
	checked     bool
}

// Option configures a Cantilever at construction time.
type Option func(*Cantilever)

// WithStabilizerSpacing sets the distance between lateral stabilisers used
// by the lateral-torsional check. Zero or a negative value keeps the
// default, the full span.
func WithStabilizerSpacing(d float64) Option {
	return func(c *Cantilever) {
		if d > 0 {
			c.DStab = d
		}
	}
}

// WithCompressionFace selects the face stress policy of the flange
// compression checks.
func WithCompressionFace(policy CompressionFace) Option {
	return func(c *Cantilever) {
		c.compression = policy
	}
}

// WithGeometryCheck makes New reject degenerate sections and non-positive
// spans instead of silently evaluating them.
func WithGeometryCheck() Option {
	return func(c *Cantilever) {
		c.checked = true
	}
}

// New creates a cantilever of span l made of the material registered as
// matname. An unknown material name is an error; geometry is accepted as
// given unless WithGeometryCheck is used.
func New(reg *material.Registry, matname string, l float64, g section.Geometry, opts ...Option) (*Cantilever, error) {
	m, err := reg.Lookup(matname)
	if err != nil {
		return nil, err
	}

	c := &Cantilever{
		L:        l,
		DStab:    l,
		Section:  g,
		Material: m,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.checked {
		if !(l > 0) {
			return nil, fmt.Errorf("%w: L=%.2f", ErrInvalidSpan, l)
		}
		if err := g.Validate(); err != nil {
			return nil, err
		}
	}

	c.Props = section.Compute(g)
	return c, nil
}

// CompressionPolicy reports the face stress policy in use.
func (c *Cantilever) CompressionPolicy() CompressionFace {
	return c.compression
}
