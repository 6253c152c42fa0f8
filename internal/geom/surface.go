// Package geom implements the unit-sphere geometry shared by every other part
// of the engine: conversions between latitude/longitude and direction vectors
// honoring the planet's rotation axis, great-circle distances, and slope
// sampling.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ArcSecond is one second of arc in radians, the step used for slope sampling.
const ArcSecond = math.Pi / (180 * 3600)

// Surface describes a spherical body with an arbitrarily oriented rotation
// axis. The axis quaternion is built once at construction: the axial
// precession is applied first, then the angle of rotation.
type Surface struct {
	Radius          float64
	AxialPrecession float64
	AngleOfRotation float64

	axis    mgl64.Quat
	axisInv mgl64.Quat
}

// NewSurface constructs a Surface with its axis rotation precomputed.
func NewSurface(radius, axialPrecession, angleOfRotation float64) Surface {
	axis := mgl64.QuatRotate(angleOfRotation, mgl64.Vec3{0, 1, 0}).
		Mul(mgl64.QuatRotate(axialPrecession, mgl64.Vec3{0, 0, 1})).
		Normalize()
	return Surface{
		Radius:          radius,
		AxialPrecession: axialPrecession,
		AngleOfRotation: angleOfRotation,
		axis:            axis,
		axisInv:         axis.Inverse(),
	}
}

// LatLonToVector converts a latitude/longitude pair (radians) to a unit
// direction vector in world space.
func (s Surface) LatLonToVector(lat, lon float64) mgl64.Vec3 {
	cosLat := math.Cos(lat)
	local := mgl64.Vec3{
		cosLat * math.Sin(lon),
		math.Sin(lat),
		cosLat * math.Cos(lon),
	}
	return s.axisInv.Rotate(local)
}

// VectorToLat returns the latitude in [-pi/2, pi/2] for a world-space
// direction vector.
func (s Surface) VectorToLat(v mgl64.Vec3) float64 {
	local := s.axis.Rotate(v.Normalize())
	y := local.Y()
	if y > 1 {
		y = 1
	} else if y < -1 {
		y = -1
	}
	return math.Asin(y)
}

// VectorToLon returns the longitude in (-pi, pi] for a world-space direction
// vector. At the poles, where longitude is undefined, it returns 0.
func (s Surface) VectorToLon(v mgl64.Vec3) float64 {
	local := s.axis.Rotate(v.Normalize())
	if local.X() == 0 && local.Z() == 0 {
		return 0
	}
	return math.Atan2(local.X(), local.Z())
}

// GreatCircleDistance returns the surface distance between the two direction
// vectors. The atan2 form stays accurate for both nearby and antipodal
// points, unlike acos of the dot product.
func (s Surface) GreatCircleDistance(a, b mgl64.Vec3) float64 {
	a = a.Normalize()
	b = b.Normalize()
	return s.Radius * math.Atan2(a.Cross(b).Len(), a.Dot(b))
}

// ElevationSampler supplies elevation in meters at a latitude/longitude pair.
type ElevationSampler func(lat, lon float64) float64

// Slope returns the maximum rise-over-run ratio among the four neighbors one
// arc second north, east, south and west of the given coordinate. Latitude
// offsets that cross a pole are reflected; longitude wraps at the
// antimeridian.
func (s Surface) Slope(lat, lon float64, elevAt ElevationSampler) float64 {
	center := elevAt(lat, lon)
	centerVec := s.LatLonToVector(lat, lon)

	offsets := [4][2]float64{
		{ArcSecond, 0},
		{-ArcSecond, 0},
		{0, ArcSecond},
		{0, -ArcSecond},
	}

	var steepest float64
	for _, off := range offsets {
		nLat, nLon := NormalizeLatLon(lat+off[0], lon+off[1])
		run := s.GreatCircleDistance(centerVec, s.LatLonToVector(nLat, nLon))
		if run <= 0 {
			continue
		}
		rise := math.Abs(elevAt(nLat, nLon) - center)
		if ratio := rise / run; ratio > steepest {
			steepest = ratio
		}
	}
	return steepest
}

// NormalizeLatLon reflects latitudes that overshoot a pole back into
// [-pi/2, pi/2] (flipping the longitude to the far meridian) and wraps the
// longitude into (-pi, pi].
func NormalizeLatLon(lat, lon float64) (float64, float64) {
	if lat > math.Pi/2 {
		lat = math.Pi - lat
		lon += math.Pi
	} else if lat < -math.Pi/2 {
		lat = -math.Pi - lat
		lon += math.Pi
	}
	lon = math.Mod(lon, 2*math.Pi)
	if lon > math.Pi {
		lon -= 2 * math.Pi
	} else if lon <= -math.Pi {
		lon += 2 * math.Pi
	}
	return lat, lon
}
