package noise

import (
	"math"
	"math/rand/v2"
	"testing"
)

func spherePoints(n int, seed uint64) [][3]float64 {
	rng := rand.New(rand.NewPCG(seed, 0))
	pts := make([][3]float64, 0, n)
	for len(pts) < n {
		x := rng.Float64()*2 - 1
		y := rng.Float64()*2 - 1
		z := rng.Float64()*2 - 1
		l := math.Sqrt(x*x + y*y + z*z)
		if l < 1e-6 {
			continue
		}
		pts = append(pts, [3]float64{x / l, y / l, z / l})
	}
	return pts
}

func TestFieldDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Frequency = 100
	a := NewField(1337, cfg)
	b := NewField(1337, cfg)
	for _, p := range spherePoints(200, 7) {
		va := a.Sample(p[0], p[1], p[2])
		vb := b.Sample(p[0], p[1], p[2])
		if va != vb {
			t.Fatalf("same seed diverged at %v: %f vs %f", p, va, vb)
		}
	}
}

func TestFieldSeedsIndependent(t *testing.T) {
	cfg := DefaultConfig()
	a := NewField(1, cfg)
	b := NewField(2, cfg)
	same := 0
	pts := spherePoints(200, 11)
	for _, p := range pts {
		if a.Sample(p[0], p[1], p[2]) == b.Sample(p[0], p[1], p[2]) {
			same++
		}
	}
	if same > len(pts)/10 {
		t.Fatalf("different seeds agree on %d/%d points", same, len(pts))
	}
}

func TestFieldBounded(t *testing.T) {
	for _, fractal := range []Fractal{FractalFBM, FractalBillow, FractalRidged} {
		cfg := DefaultConfig()
		cfg.Fractal = fractal
		cfg.Frequency = 100
		cfg.Perturb = 0.3
		f := NewField(99, cfg)
		for _, p := range spherePoints(500, 23) {
			v := f.Sample(p[0], p[1], p[2])
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("fractal %d produced non-finite value at %v", fractal, p)
			}
			if v < -1.01 || v > 1.01 {
				t.Fatalf("fractal %d out of range at %v: %f", fractal, p, v)
			}
			u := f.SampleUnit(p[0], p[1], p[2])
			if u < -0.01 || u > 1.01 {
				t.Fatalf("fractal %d unit sample out of range: %f", fractal, u)
			}
		}
	}
}

func TestDetailFieldBounds(t *testing.T) {
	d := NewDetailField(4242)
	for _, p := range spherePoints(500, 31) {
		v := d.Sample(p[0]*1000, p[1]*1000, p[2]*1000)
		if math.IsNaN(v) || v < -1.5 || v > 1.5 {
			t.Fatalf("detail sample out of range at %v: %f", p, v)
		}
		u := d.SampleUnit(p[0]*1000, p[1]*1000, p[2]*1000)
		if u < 0 || u > 1 {
			t.Fatalf("detail unit sample out of range: %f", u)
		}
	}
}
