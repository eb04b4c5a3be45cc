package orbits

import "math"

const (
	// G is the universal gravitational constant in m^3/(kg*s^2), CODATA 2018.
	G = 6.6743015e-11
	// AU is the astronomical unit in meters (IAU 2012 Resolution B2).
	AU = 1.495978707e11
	// J2000JD is the Julian date of the J2000 reference epoch.
	J2000JD = 2451545.0
	// EarthMass is the mass of the Earth in kilograms.
	EarthMass = 5.972168e24
	// SunMass is the mass of the Sun in kilograms.
	SunMass = 1.9885e30
)

const secondsPerDay = 86400.0

const (
	eccentricityε = 5e-5                         // 0.00005
	angleε        = (5e-3 / 360) * (2 * math.Pi) // 0.005 degrees
	distanceε     = 2e4                          // 20 km
)

// gravityThreshold is the acceleration in m/s^2 below which a root body is
// considered to no longer hold on to a satellite. Used for the sphere of
// influence of bodies which do not orbit anything.
const gravityThreshold = 5e-7
