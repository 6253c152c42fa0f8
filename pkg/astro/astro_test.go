package astro

import (
	"math"
	"testing"
)

func TestBlackbodyTemperatureEarthlike(t *testing.T) {
	got := BlackbodyTemperature(SolarLuminosity, AU, 0.3)
	if got < 250 || got > 260 {
		t.Fatalf("Earth-like blackbody temperature = %.1f K, want ~255 K", got)
	}
}

func TestBlackbodyTemperatureDegenerate(t *testing.T) {
	if got := BlackbodyTemperature(0, AU, 0.3); got != 0 {
		t.Fatalf("zero luminosity should give 0 K, got %f", got)
	}
	if got := BlackbodyTemperature(SolarLuminosity, 0, 0.3); got != 0 {
		t.Fatalf("zero distance should give 0 K, got %f", got)
	}
}

func TestOrbitalDistanceExtremes(t *testing.T) {
	const a, e = 1.5e11, 0.2
	peri := OrbitalDistance(a, e, 0)
	apo := OrbitalDistance(a, e, math.Pi)
	if math.Abs(peri-PeriapsisDistance(a, e)) > 1 {
		t.Fatalf("distance at anomaly 0 = %g, want periapsis %g", peri, PeriapsisDistance(a, e))
	}
	if math.Abs(apo-ApoapsisDistance(a, e)) > 1 {
		t.Fatalf("distance at anomaly pi = %g, want apoapsis %g", apo, ApoapsisDistance(a, e))
	}
	if peri >= apo {
		t.Fatalf("periapsis %g should be closer than apoapsis %g", peri, apo)
	}
}

func TestSolarDeclinationSolstices(t *testing.T) {
	const tilt = 0.41
	for _, precession := range []float64{0, 0.3, 1.7, 5.9} {
		summer := SummerSolsticeAnomaly(precession)
		winter := WinterSolsticeAnomaly(precession)
		if d := SolarDeclination(tilt, summer, precession); math.Abs(d-tilt) > 1e-12 {
			t.Fatalf("precession %.1f: summer declination = %f, want %f", precession, d, tilt)
		}
		if d := SolarDeclination(tilt, winter, precession); math.Abs(d+tilt) > 1e-12 {
			t.Fatalf("precession %.1f: winter declination = %f, want %f", precession, d, -tilt)
		}
		if diff := math.Abs(WrapAngle(winter - summer)); math.Abs(diff-math.Pi) > 1e-12 {
			t.Fatalf("precession %.1f: solstices should be half an orbit apart, got %f", precession, diff)
		}
	}
}

func TestWrapAngle(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}
	for _, c := range cases {
		if got := WrapAngle(c.in); math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("WrapAngle(%f) = %f, want %f", c.in, got, c.want)
		}
	}
}
