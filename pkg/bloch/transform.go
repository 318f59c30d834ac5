package bloch

import (
	"fmt"
	"math"
)

// Spherical holds ISO 80000-2 spherical coordinates: R is the distance to
// the origin, Theta the inclination angle and Phi the azimuth angle.
type Spherical struct {
	R     float64
	Theta float64
	Phi   float64
}

// FromBlochVector builds the density matrix for a Bloch vector given in
// cartesian coordinates. Only valid for points within the unit ball.
func FromBlochVector(x, y, z float64) Density {
	var d Density
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			d[i][j] = (I[i][j] +
				complex(x, 0)*X[i][j] +
				complex(y, 0)*Y[i][j] +
				complex(z, 0)*Z[i][j]) / 2
		}
	}
	return d
}

// CartesianToDensity is FromBlochVector with a unit-ball check, returning
// an error for points outside the Bloch sphere.
func CartesianToDensity(x, y, z float64) (Density, error) {
	if norm := math.Sqrt(x*x + y*y + z*z); norm > 1+1e-10 {
		return Density{}, fmt.Errorf("point (%g, %g, %g) is outside the unit sphere (norm %g)", x, y, z, norm)
	}
	return FromBlochVector(x, y, z), nil
}

// BlochVector returns the cartesian Bloch vector of a valid single-qubit
// density matrix.
func (d Density) BlochVector() (x, y, z float64) {
	a, b := d[0][0], d[0][1]
	c, e := d[1][0], d[1][1]
	x = real(c + b)
	y = imag(c - b)
	z = real(a - e)
	return x, y, z
}

// CartesianToSpherical converts cartesian coordinates to ISO 80000-2
// spherical coordinates.
func CartesianToSpherical(x, y, z float64) Spherical {
	r := math.Sqrt(x*x + y*y + z*z)
	if r == 0 {
		return Spherical{}
	}
	return Spherical{
		R:     r,
		Theta: math.Acos(z / r),
		Phi:   math.Atan2(y, x),
	}
}

// Cartesian converts spherical coordinates back to cartesian ones.
func (s Spherical) Cartesian() (x, y, z float64) {
	x = s.R * math.Cos(s.Phi) * math.Sin(s.Theta)
	y = s.R * math.Sin(s.Phi) * math.Sin(s.Theta)
	z = s.R * math.Cos(s.Theta)
	return x, y, z
}

// ToSpherical returns the spherical coordinates of the Bloch vector
// represented by the density matrix.
func (d Density) ToSpherical() Spherical {
	return CartesianToSpherical(d.BlochVector())
}

// SphericalToGeographic maps inclination/azimuth angles to geographic
// latitude and longitude in degrees. The north pole (|0>) maps to +90°
// latitude and longitudes are normalized to (-180, 180].
func SphericalToGeographic(theta, phi float64) (lat, lon float64) {
	lat = 90 - theta*180/math.Pi
	lon = phi * 180 / math.Pi
	if lon > 180 {
		lon -= 360
	}
	return lat, lon
}
