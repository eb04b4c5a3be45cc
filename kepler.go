package orbits

import "math"

const (
	defaultTolerance     = 1e-11
	defaultMaxIterations = 24
	bisectionBudget      = 100
	// Above this eccentricity the Newton seed E=M lands too far from the
	// root, so the solver seeds at ±π instead (cf. Vallado chap. 2).
	highEccentricitySeed = 0.8
)

// KeplerSolver iterates Kepler's equation M = E - e·sin(E). The zero value
// uses the stock tolerance and iteration budget; DefaultSolver reads both
// from the orbits configuration file instead.
type KeplerSolver struct {
	Tolerance     float64 // accepted residual |E - e·sin(E) - M|, in radians
	MaxIterations int     // Newton (or Halley) iteration budget
	Halley        bool    // take third order Halley steps instead of Newton
}

// NewKeplerSolver returns a Newton solver with the provided tolerance and
// iteration budget.
func NewKeplerSolver(tolerance float64, maxIterations int) KeplerSolver {
	return KeplerSolver{Tolerance: tolerance, MaxIterations: maxIterations}
}

// DefaultSolver returns the solver set up in the orbits configuration file,
// or NewKeplerSolver(1e-11, 24) when no file overrides it.
func DefaultSolver() KeplerSolver {
	cfg := orbitsConfig()
	return KeplerSolver{Tolerance: cfg.solverTolerance, MaxIterations: cfg.solverMaxIter, Halley: cfg.solverHalley}
}

// EccentricAnomaly solves Kepler's equation for the eccentric anomaly E.
// M may be any angle in radians and is wrapped to (-π, π] first; the returned
// E lies in the same wrap. When the iteration budgets run out before the
// tolerance is met, the best estimate found is returned along with a
// DivergenceError, so callers can still place a body approximately.
// The eccentricity must lie in [0, 1).
func (s KeplerSolver) EccentricAnomaly(M, e float64) (float64, error) {
	if e < 0 || e >= 1 {
		panic("eccentricity must be in [0, 1): parabolic and hyperbolic orbits are not supported")
	}
	M = wrapToPi(M)
	if e < eccentricityε {
		return M, nil
	}
	tol := s.Tolerance
	if tol <= 0 {
		tol = defaultTolerance
	}
	maxIter := s.MaxIterations
	if maxIter <= 0 {
		maxIter = defaultMaxIterations
	}

	E := M
	if e > highEccentricitySeed {
		E = math.Copysign(math.Pi, M)
	}
	best, bestResidual := E, math.Abs(E-e*math.Sin(E)-M)
	iters := 0
	for ; iters < maxIter; iters++ {
		sinE, cosE := math.Sincos(E)
		f := E - e*sinE - M
		if math.Abs(f) < bestResidual {
			best, bestResidual = E, math.Abs(f)
		}
		if math.Abs(f) < tol {
			return E, nil
		}
		fp := 1 - e*cosE
		if fp < 1e-15 {
			break
		}
		if s.Halley {
			den := 2*fp*fp - f*e*sinE
			if math.Abs(den) < 1e-15 {
				break
			}
			E -= 2 * f * fp / den
		} else {
			E -= f / fp
		}
	}
	// Newton ran out of budget or the derivative vanished. The root is
	// bracketed by |E - M| <= e and f is monotonic in E, so bisect.
	lo, hi := M-e, M+e
	for i := 0; i < bisectionBudget; i++ {
		E = (lo + hi) / 2
		f := E - e*math.Sin(E) - M
		if math.Abs(f) < bestResidual {
			best, bestResidual = E, math.Abs(f)
		}
		if math.Abs(f) < tol {
			return E, nil
		}
		if f > 0 {
			hi = E
		} else {
			lo = E
		}
		iters++
	}
	return best, DivergenceError{MeanAnomaly: M, Eccentricity: e, Est: best, Residual: bestResidual, Iterations: iters}
}

// TrueAnomaly converts an eccentric anomaly to the true anomaly through the
// half angle tangent, which stays well conditioned at every point of the
// orbit. For E in (-π, π] the result lies in (-π, π] as well.
func TrueAnomaly(E, e float64) float64 {
	if e < eccentricityε {
		return wrapToPi(E)
	}
	sE2, cE2 := math.Sincos(E / 2)
	return 2 * math.Atan2(math.Sqrt(1+e)*sE2, math.Sqrt(1-e)*cE2)
}

// EccentricFromTrue converts a true anomaly back to the eccentric anomaly.
func EccentricFromTrue(ν, e float64) float64 {
	if e < eccentricityε {
		return wrapToPi(ν)
	}
	sν, cν := math.Sincos(ν)
	return math.Atan2(math.Sqrt(1-e*e)*sν, e+cν)
}

// MeanFromEccentric applies Kepler's equation in the cheap direction.
func MeanFromEccentric(E, e float64) float64 {
	return E - e*math.Sin(E)
}

// TrueAnomalyApprox approximates the true anomaly straight from the mean
// anomaly with the equation of center, skipping the solver entirely. The
// error grows with e³, which is fine for sketching near circular orbits but
// not for navigation.
func TrueAnomalyApprox(M, e float64) float64 {
	M = wrapToPi(M)
	return M + 2*e*math.Sin(M) + 1.25*e*e*math.Sin(2*M)
}

// MeanMotion returns the mean angular rate n = √(μ/a³) in rad/s of an orbit
// with semimajor axis a around a primary of gravitational parameter μ.
func MeanMotion(μ, a float64) float64 {
	return math.Sqrt(μ / (a * a * a))
}

// MeanAnomalyAtTime propagates the epoch mean anomaly M0 by t seconds.
func MeanAnomalyAtTime(M0, μ, a, t float64) float64 {
	return wrapToPi(M0 + MeanMotion(μ, a)*t)
}

// RadiusAt returns the orbital radius at eccentric anomaly E.
func RadiusAt(a, e, E float64) float64 {
	return a * (1 - e*math.Cos(E))
}

// RadiusAtTrue returns the orbital radius at true anomaly ν.
func RadiusAtTrue(a, e, ν float64) float64 {
	return a * (1 - e*e) / (1 + e*math.Cos(ν))
}
