package orbits

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestKeplerCircular(t *testing.T) {
	var solver KeplerSolver
	for M := -3.1; M < 3.1; M += 0.1 {
		E, err := solver.EccentricAnomaly(M, 0)
		if err != nil {
			t.Fatal(err)
		}
		if E != wrapToPi(M) {
			t.Fatalf("E=%f != M=%f for a circular orbit", E, M)
		}
		if ν := TrueAnomaly(E, 0); math.Abs(ν-E) > 1e-12 {
			t.Fatalf("ν=%f != E=%f for a circular orbit", ν, E)
		}
	}
	// Just below the circular cutoff the solver must not iterate either.
	if E, _ := solver.EccentricAnomaly(1.5, eccentricityε/2); E != 1.5 {
		t.Fatalf("E=%f != M below the circular cutoff", E)
	}
}

func TestKeplerResiduals(t *testing.T) {
	for _, solver := range []KeplerSolver{{}, {Halley: true}} {
		for _, e := range []float64{0.001, 0.0549, 0.1, 0.206, 0.3, 0.5, 0.7, 0.747, 0.8, 0.9, 0.967, 0.99, 0.999} {
			for M := -math.Pi + 0.0125; M < math.Pi; M += 0.025 {
				E, err := solver.EccentricAnomaly(M, e)
				if err != nil {
					t.Fatalf("e=%f M=%f: %s", e, M, err)
				}
				if E <= -math.Pi-1e-9 || E > math.Pi+1e-9 {
					t.Fatalf("e=%f M=%f: E=%f out of (-π, π]", e, M, E)
				}
				if resid := math.Abs(E - e*math.Sin(E) - M); resid > 1e-9 {
					t.Fatalf("e=%f M=%f: residual %e", e, M, resid)
				}
			}
		}
	}
}

func TestAnomalyRoundTrips(t *testing.T) {
	var solver KeplerSolver
	for _, e := range []float64{0, 0.01, 0.1, 0.5, 0.9} {
		for M := -math.Pi + 0.0125; M < math.Pi; M += 0.05 {
			E, err := solver.EccentricAnomaly(M, e)
			if err != nil {
				t.Fatal(err)
			}
			ν := TrueAnomaly(E, e)
			if ok, eerr := anglesEqual(EccentricFromTrue(ν, e), E); !ok {
				t.Fatalf("e=%f M=%f: E does not survive the ν round trip: %s", e, M, eerr)
			}
			if !scalar.EqualWithinAbs(wrapToPi(MeanFromEccentric(E, e)), M, 1e-9) {
				t.Fatalf("e=%f M=%f: M does not survive the E round trip", e, M)
			}
		}
	}
}

func TestKeplerDivergence(t *testing.T) {
	solver := KeplerSolver{Tolerance: 1e-32, MaxIterations: 3}
	E, err := solver.EccentricAnomaly(2.5, 0.7)
	if err == nil {
		t.Fatal("a 1e-32 tolerance cannot be met")
	}
	var div DivergenceError
	if !errors.As(err, &div) {
		t.Fatalf("expected a DivergenceError, got %T", err)
	}
	if div.Iterations <= solver.MaxIterations {
		t.Fatalf("expected the bisection budget to be spent too, got %d iterations", div.Iterations)
	}
	if div.Est != E {
		t.Fatal("the error must carry the returned estimate")
	}
	// The best estimate must still be good, it just cannot be that good.
	if math.Abs(E-0.7*math.Sin(E)-2.5) > 1e-9 {
		t.Fatalf("best estimate E=%f is too far off", E)
	}
}

func TestKeplerInvalidEccentricity(t *testing.T) {
	var solver KeplerSolver
	for _, e := range []float64{-0.1, 1.0, 1.5} {
		assertPanic(t, func() { solver.EccentricAnomaly(1, e) })
	}
}

func TestTrueAnomalyApprox(t *testing.T) {
	var solver KeplerSolver
	for _, e := range []float64{0.001, 0.01, 0.05, 0.1} {
		// The equation of center truncates at e², leaving an error of the
		// order of e³.
		lim := 2*e*e*e + 1e-9
		for M := -math.Pi + 0.0125; M < math.Pi; M += 0.05 {
			E, err := solver.EccentricAnomaly(M, e)
			if err != nil {
				t.Fatal(err)
			}
			ν := TrueAnomaly(E, e)
			if diff := math.Abs(wrapToPi(TrueAnomalyApprox(M, e) - ν)); diff > lim {
				t.Fatalf("e=%f M=%f: approximation off by %e (limit %e)", e, M, diff, lim)
			}
		}
	}
}

func TestMeanMotionAndRadii(t *testing.T) {
	gm := SunMass * G
	n := MeanMotion(gm, AU)
	// One astronomical unit gives one year, near enough.
	if !scalar.EqualWithinRel(2*math.Pi/n, 365.25*86400, 1e-3) {
		t.Fatalf("mean motion at 1 AU: %e rad/s", n)
	}
	if ok, err := anglesEqual(MeanAnomalyAtTime(0, gm, AU, math.Pi/n), math.Pi); !ok {
		t.Fatalf("half a period must advance M by π: %s", err)
	}
	a, e := 7500e3, 0.1
	if RadiusAt(a, e, 0) != a*(1-e) {
		t.Fatal("periapsis radius at E=0")
	}
	if RadiusAt(a, e, math.Pi) != a*(1+e) {
		t.Fatal("apoapsis radius at E=π")
	}
	if !scalar.EqualWithinAbs(RadiusAtTrue(a, e, 0), a*(1-e), 1e-6) {
		t.Fatal("periapsis radius at ν=0")
	}
	if !scalar.EqualWithinAbs(RadiusAtTrue(a, e, math.Pi), a*(1+e), 1e-6) {
		t.Fatal("apoapsis radius at ν=π")
	}
}

func TestDefaultSolver(t *testing.T) {
	solver := DefaultSolver()
	if solver.Tolerance != defaultTolerance || solver.MaxIterations != defaultMaxIterations || solver.Halley {
		t.Fatalf("unexpected stock solver %+v", solver)
	}
	custom := NewKeplerSolver(1e-8, 12)
	if custom.Tolerance != 1e-8 || custom.MaxIterations != 12 {
		t.Fatalf("unexpected custom solver %+v", custom)
	}
}
