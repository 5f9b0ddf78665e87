package store

import (
	"fmt"
	"os"

	"drift/internal/domain"
)

// WriteModel writes m as an indented JSON model file.
func WriteModel(path string, m domain.Model) error {
	if err := m.Validate(); err != nil {
		return err
	}
	return writeJSON(path, m)
}

// ReadModel loads and validates a structural model from a JSON file. A model
// without a name takes the file's base name.
func ReadModel(path string) (domain.Model, error) {
	var m domain.Model
	if err := readJSON(path, &m); err != nil {
		if os.IsNotExist(err) {
			return domain.Model{}, fmt.Errorf("model file %s does not exist", path)
		}
		return domain.Model{}, err
	}
	if m.Name == "" {
		m.Name = RecordName(path)
	}
	if err := m.Validate(); err != nil {
		return domain.Model{}, fmt.Errorf("model %s: %w", path, err)
	}
	return m, nil
}
