package material_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/okoham/ibeam/internal/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_ContainsBuiltins(t *testing.T) {
	reg := material.Default()
	require.Equal(t, []string{"AL2198", "AL7010", "TI64"}, reg.Names())

	m, err := reg.Lookup("AL7010")
	require.NoError(t, err)
	assert.Equal(t, 71000.0, m.E)
	assert.Equal(t, 0.33, m.Nu)
	assert.Equal(t, 515.0, m.Ftu)
	assert.Equal(t, 440.0, m.Fcy)
	assert.Equal(t, 295.0, m.Fsu)
	assert.Equal(t, 2.82e-6, m.Rho)

	for _, name := range reg.Names() {
		m, err := reg.Lookup(name)
		require.NoError(t, err)
		require.NoError(t, m.Validate(), name)
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := material.Default().Lookup("STEEL")
	require.ErrorIs(t, err, material.ErrUnknownMaterial)
	assert.Contains(t, err.Error(), `"STEEL"`)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*material.Material)
	}{
		{"empty name", func(m *material.Material) { m.Name = "" }},
		{"zero modulus", func(m *material.Material) { m.E = 0 }},
		{"negative density", func(m *material.Material) { m.Rho = -1 }},
		{"zero shear allowable", func(m *material.Material) { m.Fsu = 0 }},
		{"nu too large", func(m *material.Material) { m.Nu = 0.5 }},
		{"nu zero", func(m *material.Material) { m.Nu = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := material.AL7010
			tt.mutate(&m)
			require.ErrorIs(t, m.Validate(), material.ErrInvalidMaterial)
		})
	}
}

func TestNewRegistry_Duplicate(t *testing.T) {
	_, err := material.NewRegistry(material.AL7010, material.AL7010)
	require.ErrorIs(t, err, material.ErrDuplicateMaterial)
}

func TestShearModulus(t *testing.T) {
	assert.InDelta(t, 71000/2.66, material.AL7010.G(), 1e-9)
}

func TestLoadFile_Overlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "materials.json")
	content := `[
		{"name": "AL7010", "E": 72000, "nu": 0.33, "ftu": 520, "fty": 460, "fcy": 445, "fsu": 300, "rho": 2.82e-6, "cmat": 6, "cprod": 5},
		{"name": "S355", "E": 210000, "nu": 0.3, "ftu": 490, "fty": 355, "fcy": 355, "fsu": 280, "rho": 7.85e-6, "cmat": 1, "cprod": 2}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	reg, err := material.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, reg.Len())

	al, err := reg.Lookup("AL7010")
	require.NoError(t, err)
	assert.Equal(t, 72000.0, al.E)

	_, err = reg.Lookup("S355")
	require.NoError(t, err)

	// the built-in table is not modified by an overlay
	builtin, err := material.Default().Lookup("AL7010")
	require.NoError(t, err)
	assert.Equal(t, 71000.0, builtin.E)
}

func TestLoadFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name": "X", "E": 1}]`), 0o644))

	_, err := material.LoadFile(path)
	require.ErrorIs(t, err, material.ErrInvalidMaterial)

	_, err = material.LoadFile(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
