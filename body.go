package orbits

import "math"

// Body carries the physical properties of a celestial body which matter to
// gravitation: its mass, its equatorial and polar radii and its axial tilt.
// Stored in kilograms, meters and radians.
type Body struct {
	massKg        float64
	radiusEquator float64
	radiusPolar   float64
	axialTilt     float64
}

// NewBody returns a blank body to chain the With setters onto.
func NewBody() Body {
	return Body{}
}

// NewEarth returns home.
func NewEarth() Body {
	return NewBody().
		WithMassKg(EarthMass).
		WithRadiiKm(6378.137, 6356.752).
		WithAxialTiltDeg(23.4392811)
}

// NewSol returns our closest star.
func NewSol() Body {
	return NewBody().
		WithMassKg(SunMass).
		WithRadiiKm(695700, 695700*(1-0.00005))
}

// WithMassKg sets the mass from kilograms.
func (b Body) WithMassKg(m float64) Body {
	b.massKg = m
	return b
}

// WithMassEarths sets the mass from Earth masses.
func (b Body) WithMassEarths(m float64) Body {
	b.massKg = m * EarthMass
	return b
}

// WithRadiusM sets both radii from a single spherical radius in meters.
func (b Body) WithRadiusM(r float64) Body {
	b.radiusEquator = r
	b.radiusPolar = r
	return b
}

// WithRadiusKm sets both radii from a single spherical radius in kilometers.
func (b Body) WithRadiusKm(r float64) Body {
	return b.WithRadiusM(r * 1e3)
}

// WithRadiiKm sets the equatorial and polar radii from kilometers.
func (b Body) WithRadiiKm(equatorial, polar float64) Body {
	b.radiusEquator = equatorial * 1e3
	b.radiusPolar = polar * 1e3
	return b
}

// WithAxialTiltDeg sets the axial tilt from degrees.
func (b Body) WithAxialTiltDeg(tilt float64) Body {
	b.axialTilt = Deg2rad(tilt)
	return b
}

// WithAxialTiltRad sets the axial tilt from radians.
func (b Body) WithAxialTiltRad(tilt float64) Body {
	b.axialTilt = tilt
	return b
}

// MassKg returns the mass in kilograms.
func (b Body) MassKg() float64 { return b.massKg }

// RadiusEquator returns the equatorial radius in meters.
func (b Body) RadiusEquator() float64 { return b.radiusEquator }

// RadiusPolar returns the polar radius in meters.
func (b Body) RadiusPolar() float64 { return b.radiusPolar }

// RadiusAvg returns the mean of the equatorial and polar radii in meters.
func (b Body) RadiusAvg() float64 {
	return (b.radiusEquator + b.radiusPolar) / 2
}

// AxialTilt returns the axial tilt in radians.
func (b Body) AxialTilt() float64 { return b.axialTilt }

// Flattening returns the oblateness (equator-polar)/equator.
func (b Body) Flattening() float64 {
	if b.radiusEquator == 0 {
		return 0
	}
	return (b.radiusEquator - b.radiusPolar) / b.radiusEquator
}

// GM returns the gravitational parameter μ in m³/s².
func (b Body) GM() float64 {
	return b.massKg * G
}

// GravityAt returns the gravitational acceleration in m/s² at the given
// distance from the body center.
func (b Body) GravityAt(distance float64) float64 {
	return b.GM() / (distance * distance)
}

// DistanceOfGravity returns the distance from the body center at which its
// pull has dropped to the given acceleration.
func (b Body) DistanceOfGravity(gravity float64) float64 {
	return math.Sqrt(b.GM() / gravity)
}
