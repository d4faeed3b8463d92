package section

import (
	"encoding/json"
	"os"
)

// LoadFromFile loads a section geometry from a JSON file
func LoadFromFile(filepath string) (Geometry, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return Geometry{}, err
	}

	var g Geometry
	if err := json.Unmarshal(data, &g); err != nil {
		return Geometry{}, err
	}

	return g, nil
}
