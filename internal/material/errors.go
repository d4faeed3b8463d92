package material

import "errors"

var (
	// ErrUnknownMaterial is returned by Lookup for a name not in the registry.
	ErrUnknownMaterial = errors.New("material: unknown material")

	// ErrInvalidMaterial flags a property bundle violating the positivity
	// or Poisson ratio constraints.
	ErrInvalidMaterial = errors.New("material: invalid material")

	// ErrDuplicateMaterial is returned when a registry is built with two
	// entries of the same name.
	ErrDuplicateMaterial = errors.New("material: duplicate material")
)
