package surfacemap

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

var errInvalidGrid = errors.New("grid missing or malformed")

// Marshal serializes a bundle. The JSON field order and number formatting
// are deterministic, so equal bundles marshal to identical bytes.
func Marshal(m *SurfaceMaps) ([]byte, error) {
	if err := m.checkComplete(); err != nil {
		return nil, err
	}
	return json.Marshal(m)
}

// Unmarshal deserializes a bundle and rejects incomplete or
// version-mismatched data.
func Unmarshal(data []byte) (*SurfaceMaps, error) {
	var m SurfaceMaps
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding surface maps: %w", err)
	}
	if err := m.checkComplete(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Encode writes a bundle to w.
func Encode(w io.Writer, m *SurfaceMaps) error {
	data, err := Marshal(m)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Decode reads a bundle from r.
func Decode(r io.Reader) (*SurfaceMaps, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading surface maps: %w", err)
	}
	return Unmarshal(data)
}

// Save writes a bundle to a file.
func Save(path string, m *SurfaceMaps) error {
	data, err := Marshal(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing surface maps to %s: %w", path, err)
	}
	return nil
}

// Load reads a bundle from a file.
func Load(path string) (*SurfaceMaps, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading surface maps from %s: %w", path, err)
	}
	return Unmarshal(data)
}
