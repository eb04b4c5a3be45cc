package orbits

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

// OrbitalElements defines a closed orbit around a parent body via the six
// classical Keplerian elements, the sixth being the mean anomaly at the
// reference epoch. Lengths are stored in meters and angles in radians; the
// With setters convert from the units catalogs usually publish.
type OrbitalElements struct {
	a, e, i, Ω, ω, M0 float64
}

// NewElements returns a blank element set to chain the With setters onto.
func NewElements() OrbitalElements {
	return OrbitalElements{}
}

// NewElementsFromDeg builds an element set from kilometers and degrees, the
// units most published element tables use.
func NewElementsFromDeg(aKm, e, i, Ω, ω, M0 float64) OrbitalElements {
	return NewElements().
		WithSemimajorAxisKm(aKm).
		WithEccentricity(e).
		WithInclinationDeg(i).
		WithLongOfAscNodeDeg(Ω).
		WithArgOfPeriapsisDeg(ω).
		WithMeanAnomalyAtEpochDeg(M0)
}

// WithSemimajorAxisM sets the semimajor axis from meters.
func (el OrbitalElements) WithSemimajorAxisM(a float64) OrbitalElements {
	el.a = a
	return el
}

// WithSemimajorAxisKm sets the semimajor axis from kilometers.
func (el OrbitalElements) WithSemimajorAxisKm(a float64) OrbitalElements {
	el.a = a * 1e3
	return el
}

// WithSemimajorAxisAU sets the semimajor axis from astronomical units.
func (el OrbitalElements) WithSemimajorAxisAU(a float64) OrbitalElements {
	el.a = a * AU
	return el
}

// WithEccentricity sets the eccentricity.
func (el OrbitalElements) WithEccentricity(e float64) OrbitalElements {
	el.e = e
	return el
}

// WithInclinationRad sets the inclination from radians.
func (el OrbitalElements) WithInclinationRad(i float64) OrbitalElements {
	el.i = wrapTau(i)
	return el
}

// WithInclinationDeg sets the inclination from degrees.
func (el OrbitalElements) WithInclinationDeg(i float64) OrbitalElements {
	el.i = Deg2rad(i)
	return el
}

// WithLongOfAscNodeRad sets the longitude of the ascending node from radians.
func (el OrbitalElements) WithLongOfAscNodeRad(Ω float64) OrbitalElements {
	el.Ω = wrapTau(Ω)
	return el
}

// WithLongOfAscNodeDeg sets the longitude of the ascending node from degrees.
func (el OrbitalElements) WithLongOfAscNodeDeg(Ω float64) OrbitalElements {
	el.Ω = Deg2rad(Ω)
	return el
}

// WithArgOfPeriapsisRad sets the argument of periapsis from radians.
func (el OrbitalElements) WithArgOfPeriapsisRad(ω float64) OrbitalElements {
	el.ω = wrapTau(ω)
	return el
}

// WithArgOfPeriapsisDeg sets the argument of periapsis from degrees.
func (el OrbitalElements) WithArgOfPeriapsisDeg(ω float64) OrbitalElements {
	el.ω = Deg2rad(ω)
	return el
}

// WithMeanAnomalyAtEpochRad sets the mean anomaly at epoch from radians.
func (el OrbitalElements) WithMeanAnomalyAtEpochRad(M0 float64) OrbitalElements {
	el.M0 = wrapToPi(M0)
	return el
}

// WithMeanAnomalyAtEpochDeg sets the mean anomaly at epoch from degrees.
func (el OrbitalElements) WithMeanAnomalyAtEpochDeg(M0 float64) OrbitalElements {
	el.M0 = wrapToPi(Deg2rad(M0))
	return el
}

// Elements returns the six elements in meters and radians.
func (el OrbitalElements) Elements() (a, e, i, Ω, ω, M0 float64) {
	return el.a, el.e, el.i, el.Ω, el.ω, el.M0
}

// SemimajorAxis returns the semimajor axis in meters.
func (el OrbitalElements) SemimajorAxis() float64 { return el.a }

// Eccentricity returns the eccentricity.
func (el OrbitalElements) Eccentricity() float64 { return el.e }

// Inclination returns the inclination in radians.
func (el OrbitalElements) Inclination() float64 { return el.i }

// LongOfAscNode returns the longitude of the ascending node in radians.
func (el OrbitalElements) LongOfAscNode() float64 { return el.Ω }

// ArgOfPeriapsis returns the argument of periapsis in radians.
func (el OrbitalElements) ArgOfPeriapsis() float64 { return el.ω }

// MeanAnomalyAtEpoch returns the mean anomaly at the reference epoch in radians.
func (el OrbitalElements) MeanAnomalyAtEpoch() float64 { return el.M0 }

// Tildeω returns the longitude of periapsis.
func (el OrbitalElements) Tildeω() float64 {
	return math.Mod(el.ω+el.Ω, 2*math.Pi)
}

// MeanLongλ returns the mean longitude at epoch.
// NOTE: One should only need this for equatorial orbits.
func (el OrbitalElements) MeanLongλ() float64 {
	return math.Mod(el.ω+el.Ω+el.M0, 2*math.Pi)
}

// MeanArgLatitudeU returns the mean argument of latitude at epoch.
func (el OrbitalElements) MeanArgLatitudeU() float64 {
	return math.Mod(el.M0+el.ω, 2*math.Pi)
}

// SemiParameter returns the semilatus rectum.
func (el OrbitalElements) SemiParameter() float64 {
	return el.a * (1 - el.e*el.e)
}

// SemiminorAxis returns the semiminor axis.
func (el OrbitalElements) SemiminorAxis() float64 {
	return el.a * math.Sqrt(1-el.e*el.e)
}

// Apoapsis returns the apoapsis radius.
func (el OrbitalElements) Apoapsis() float64 {
	return el.a * (1 + el.e)
}

// Periapsis returns the periapsis radius.
func (el OrbitalElements) Periapsis() float64 {
	return el.a * (1 - el.e)
}

// ApoapsisAltitude returns the height of the apoapsis over the parent's
// equatorial radius.
func (el OrbitalElements) ApoapsisAltitude(parent Body) float64 {
	return el.Apoapsis() - parent.RadiusEquator()
}

// PeriapsisAltitude returns the height of the periapsis over the parent's
// equatorial radius.
func (el OrbitalElements) PeriapsisAltitude(parent Body) float64 {
	return el.Periapsis() - parent.RadiusEquator()
}

// Period returns the orbital period in seconds around a primary with
// gravitational parameter μ. Not a time.Duration: the period of an outer
// dwarf planet overflows one.
func (el OrbitalElements) Period(μ float64) float64 {
	return 2 * math.Pi * math.Sqrt(math.Pow(el.a, 3)/μ)
}

// Validate checks that the elements describe a closed orbit which can be
// propagated, i.e. a positive finite semimajor axis and an elliptical
// eccentricity.
func (el OrbitalElements) Validate() error {
	if math.IsNaN(el.a) || math.IsInf(el.a, 0) || el.a <= 0 {
		return ElementsError{Field: "semimajor axis", Value: el.a, Reason: "must be positive and finite"}
	}
	if math.IsNaN(el.e) || el.e < 0 {
		return ElementsError{Field: "eccentricity", Value: el.e, Reason: "must be in [0, 1)"}
	}
	if el.e >= 1 {
		return ElementsError{Field: "eccentricity", Value: el.e, Reason: "parabolic and hyperbolic orbits are not supported"}
	}
	for _, angle := range []struct {
		name  string
		value float64
	}{
		{"inclination", el.i},
		{"longitude of ascending node", el.Ω},
		{"argument of periapsis", el.ω},
		{"mean anomaly at epoch", el.M0},
	} {
		if math.IsNaN(angle.value) || math.IsInf(angle.value, 0) {
			return ElementsError{Field: angle.name, Value: angle.value, Reason: "must be finite"}
		}
	}
	return nil
}

// PositionAtTrue returns the position at true anomaly ν, expressed in the
// frame of the parent body. Near circular and near equatorial orbits fold
// their undefined angles into ν, so every valid element set maps to a finite
// position.
func (el OrbitalElements) PositionAtTrue(ν float64) r3.Vec {
	// Support special orbits.
	i := el.i
	ω := el.ω
	Ω := el.Ω
	if el.e < eccentricityε {
		ω = 0
		if i < angleε {
			// Circular equatorial
			ν += el.ω + el.Ω
			Ω = 0
			i = 0
		} else {
			// Circular inclined
			ν += el.ω
		}
	} else if i < angleε {
		// Elliptical equatorial
		ω = el.Tildeω()
		Ω = 0
		i = 0
	}
	r := RadiusAtTrue(el.a, el.e, ν)
	sinν, cosν := math.Sincos(ν)
	return PerifocalToLocal(r3.Vec{X: r * cosν, Y: r * sinν}, i, ω, Ω)
}

// PositionAtMean runs the mean anomaly through the solver and returns the
// position in the parent frame. On divergence the position of the best
// estimate is returned together with the error.
func (el OrbitalElements) PositionAtMean(M float64, solver KeplerSolver) (r3.Vec, error) {
	E, err := solver.EccentricAnomaly(M, el.e)
	return el.PositionAtTrue(TrueAnomaly(E, el.e)), err
}

// String implements the stringer interface (hence the value receiver)
func (el OrbitalElements) String() string {
	if el.e < eccentricityε {
		// Circular orbit
		if el.i > angleε {
			return fmt.Sprintf("a=%.1f e=%.4f i=%.3f Ω=%.3f u=%.3f", el.a, el.e, Rad2deg(el.i), Rad2deg(el.Ω), Rad2deg(el.MeanArgLatitudeU()))
		}
		// Equatorial
		return fmt.Sprintf("a=%.1f e=%.4f i=%.3f Ω=%.3f λ=%.3f", el.a, el.e, Rad2deg(el.i), Rad2deg(el.Ω), Rad2deg(el.MeanLongλ()))
	}
	return fmt.Sprintf("a=%.1f e=%.4f i=%.3f Ω=%.3f ω=%.3f M0=%.3f", el.a, el.e, Rad2deg(el.i), Rad2deg(el.Ω), Rad2deg(el.ω), Rad2deg(el.M0))
}

// Equals returns whether two element sets describe the same orbit, with a
// free anomaly at epoch. Use StrictlyEquals to also compare the anomaly.
func (el OrbitalElements) Equals(o OrbitalElements) (bool, error) {
	if !scalar.EqualWithinAbs(el.a, o.a, distanceε) {
		return false, errors.New("semi major axis invalid")
	}
	if !scalar.EqualWithinAbs(el.e, o.e, eccentricityε) {
		return false, errors.New("eccentricity invalid")
	}
	if !scalar.EqualWithinAbs(el.i, o.i, angleε) {
		return false, errors.New("inclination invalid")
	}
	if !scalar.EqualWithinAbs(el.Ω, o.Ω, angleε) {
		return false, errors.New("RAAN invalid")
	}
	if el.e < eccentricityε {
		// Circular orbit, the periapsis is undefined.
		if el.i > angleε {
			// Inclined
			if !scalar.EqualWithinAbs(el.MeanArgLatitudeU(), o.MeanArgLatitudeU(), angleε) {
				return false, errors.New("argument of latitude invalid")
			}
		} else {
			// Equatorial
			if !scalar.EqualWithinAbs(el.MeanLongλ(), o.MeanLongλ(), angleε) {
				return false, errors.New("mean longitude invalid")
			}
		}
	} else if !scalar.EqualWithinAbs(el.ω, o.ω, angleε) {
		return false, errors.New("argument of perigee invalid")
	}
	return true, nil
}

// StrictlyEquals returns whether two element sets are identical.
func (el OrbitalElements) StrictlyEquals(o OrbitalElements) (bool, error) {
	// Only check for non circular orbits
	if el.e > eccentricityε && !scalar.EqualWithinAbs(el.M0, o.M0, angleε) {
		return false, errors.New("mean anomaly invalid")
	}
	return el.Equals(o)
}
