package surfacemap

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
)

func TestMarshalRoundTripBitIdentical(t *testing.T) {
	p := testPlanet(t, nil)
	m, err := Build(p, testConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	first, err := Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	decoded, err := Unmarshal(first)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	second, err := Marshal(decoded)
	if err != nil {
		t.Fatalf("re-Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("marshal(unmarshal(b)) differs from b")
	}
}

func TestUnmarshalRejectsBadData(t *testing.T) {
	if _, err := Unmarshal([]byte("{not json")); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if _, err := Unmarshal([]byte(`{"version":99}`)); err == nil {
		t.Fatal("expected error for unsupported version")
	}
	if _, err := Unmarshal([]byte(`{"version":1,"projection":"equirectangular","width":4,"height":2}`)); err == nil {
		t.Fatal("expected error for missing grids")
	}
}

func TestUnmarshalRejectsMismatchedGrid(t *testing.T) {
	p := testPlanet(t, nil)
	m, err := Build(p, testConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	shrunk, err := NewGrid[float64](2, 2)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	m.Humidity = shrunk
	b, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	if _, err := Unmarshal(b); err == nil {
		t.Fatal("expected error for humidity grid sized 2x2 inside a larger bundle")
	}
	if _, err := Marshal(m); err == nil {
		t.Fatal("expected Marshal to refuse a bundle with a mismatched grid")
	}
}

func TestSaveLoad(t *testing.T) {
	p := testPlanet(t, nil)
	m, err := Build(p, testConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	path := filepath.Join(t.TempDir(), "maps.json")
	if err := Save(path, m); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.PlanetID != m.PlanetID || loaded.PlanetName != m.PlanetName {
		t.Fatalf("identity changed: %s/%s vs %s/%s",
			loaded.PlanetID, loaded.PlanetName, m.PlanetID, m.PlanetName)
	}
	if loaded.Elevation.At(3, 2) != m.Elevation.At(3, 2) {
		t.Fatal("elevation changed through save/load")
	}
}
