package bloch

import (
	"math"
	"testing"
)

const tol = 1e-9

func TestFromBlochVector_PolesAndEquator(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float64
		want    Density
	}{
		{"North pole |0>", 0, 0, 1, Density{{1, 0}, {0, 0}}},
		{"South pole |1>", 0, 0, -1, Density{{0, 0}, {0, 1}}},
		{"Plus state |+>", 1, 0, 0, Density{{0.5, 0.5}, {0.5, 0.5}}},
		{"Maximally mixed", 0, 0, 0, Density{{0.5, 0}, {0, 0.5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromBlochVector(tt.x, tt.y, tt.z)
			for i := 0; i < 2; i++ {
				for j := 0; j < 2; j++ {
					if d := got[i][j] - tt.want[i][j]; math.Hypot(real(d), imag(d)) > tol {
						t.Errorf("FromBlochVector()[%d][%d] = %v, want %v", i, j, got[i][j], tt.want[i][j])
					}
				}
			}
			if !got.Valid(tol) {
				t.Errorf("FromBlochVector() produced an invalid density matrix")
			}
		})
	}
}

func TestBlochVector_RoundTrip(t *testing.T) {
	points := [][3]float64{
		{0, 0, 1},
		{0, 0, -1},
		{1, 0, 0},
		{0, 1, 0},
		{0.3, -0.4, 0.5},
		{-0.1, 0.2, -0.9},
	}

	for _, p := range points {
		d := FromBlochVector(p[0], p[1], p[2])
		x, y, z := d.BlochVector()
		if math.Abs(x-p[0]) > tol || math.Abs(y-p[1]) > tol || math.Abs(z-p[2]) > tol {
			t.Errorf("round trip of %v gave (%g, %g, %g)", p, x, y, z)
		}
	}
}

func TestCartesianToSpherical_RoundTrip(t *testing.T) {
	points := [][3]float64{
		{1, 0, 0},
		{0, 0.5, 0},
		{0.2, -0.3, 0.6},
		{-0.7, 0.1, -0.1},
	}

	for _, p := range points {
		s := CartesianToSpherical(p[0], p[1], p[2])
		x, y, z := s.Cartesian()
		if math.Abs(x-p[0]) > tol || math.Abs(y-p[1]) > tol || math.Abs(z-p[2]) > tol {
			t.Errorf("round trip of %v gave (%g, %g, %g)", p, x, y, z)
		}
	}
}

func TestCartesianToSpherical_Origin(t *testing.T) {
	s := CartesianToSpherical(0, 0, 0)
	if s.R != 0 || s.Theta != 0 || s.Phi != 0 {
		t.Errorf("origin should map to zero spherical coordinates, got %+v", s)
	}
}

func TestCartesianToDensity_RejectsOutsideSphere(t *testing.T) {
	if _, err := CartesianToDensity(1.5, 0, 0); err == nil {
		t.Error("expected an error for a point outside the unit sphere")
	}
	if _, err := CartesianToDensity(0.6, 0.6, 0.3); err != nil {
		t.Errorf("unexpected error for an interior point: %v", err)
	}
}

func TestSphericalToGeographic(t *testing.T) {
	tests := []struct {
		name       string
		theta, phi float64
		lat, lon   float64
	}{
		{"North pole", 0, 0, 90, 0},
		{"South pole", math.Pi, 0, -90, 0},
		{"Equator prime meridian", math.Pi / 2, 0, 0, 0},
		{"Equator east", math.Pi / 2, math.Pi / 2, 0, 90},
		{"Longitude wraps past 180", math.Pi / 2, 1.5 * math.Pi, 0, -90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon := SphericalToGeographic(tt.theta, tt.phi)
			if math.Abs(lat-tt.lat) > tol || math.Abs(lon-tt.lon) > tol {
				t.Errorf("SphericalToGeographic() = (%g, %g), want (%g, %g)", lat, lon, tt.lat, tt.lon)
			}
		})
	}
}
