package orbits

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestAngles(t *testing.T) {
	for i := 0.0; i <= 360; i += 0.5 {
		// Specific tests
		mi := math.Mod(i, 180)
		var expPi float64
		specificCase := false
		switch mi {
		case 0:
			specificCase = true
			expPi = 0
		case 30:
			specificCase = true
			expPi = 1 / 6.
		case 60:
			specificCase = true
			expPi = 1 / 3.
		case 90:
			specificCase = true
			expPi = 1 / 2.
		case 120:
			specificCase = true
			expPi = 2 / 3.
		case 150:
			specificCase = true
			expPi = 5 / 6.
		}
		if specificCase {
			if i >= 180 && i < 360 {
				expPi++
			}
			if !scalar.EqualWithinAbs(Deg2rad(i)/math.Pi, expPi, 1e-10) {
				t.Fatalf("%f deg %f rad %f exp=%f", mi, Deg2rad(i)/math.Pi, Rad2deg(Deg2rad(i)), expPi)
			}
		}

		if ok, _ := anglesEqual(Deg2rad(i), Deg2rad(Rad2deg(Deg2rad(i)))); i < 360 && !ok {
			t.Fatalf("incorrect conversion for %3.2f", i)
		} else if i == 360 && Rad2deg(Deg2rad(i)) != 0 {
			t.Fatalf("incorrect conversion for %3.2f", i)
		}
	}
	if ok, _ := anglesEqual(Deg2rad(1), Deg2rad(Rad2deg(Deg2rad(-359.)))); !ok {
		t.Fatal("incorrect conversion for -359")
	}
	if ok, _ := anglesEqual(Deg2rad(180), Deg2rad(Rad2deg(Deg2rad(-180.)))); !ok {
		t.Fatal("incorrect conversion for -180")
	}
	if ok, _ := anglesEqual(math.Pi/3, Deg2rad(Rad2deg(-5*math.Pi/3))); !ok {
		t.Fatal("incorrect conversion for -pi/3")
	}
}

func TestWrapToPi(t *testing.T) {
	for a := -25.0; a <= 25.0; a += 0.05 {
		w := wrapToPi(a)
		if w <= -math.Pi || w > math.Pi {
			t.Fatalf("wrapToPi(%f)=%f is out of (-π, π]", a, w)
		}
		if !scalar.EqualWithinAbs(math.Sin(w), math.Sin(a), 1e-9) || !scalar.EqualWithinAbs(math.Cos(w), math.Cos(a), 1e-9) {
			t.Fatalf("wrapToPi(%f)=%f is not the same angle", a, w)
		}
	}
	if wrapToPi(0) != 0 {
		t.Fatal("zero must stay zero")
	}
	if wrapToPi(math.Pi) != math.Pi {
		t.Fatal("π must stay π")
	}
	if wrapToPi(-math.Pi) != math.Pi {
		t.Fatal("-π must wrap to π")
	}
}

func TestWrapTau(t *testing.T) {
	for a := -25.0; a <= 25.0; a += 0.05 {
		w := wrapTau(a)
		if w < 0 || w >= 2*math.Pi {
			t.Fatalf("wrapTau(%f)=%f is out of [0, 2π)", a, w)
		}
		if !scalar.EqualWithinAbs(math.Sin(w), math.Sin(a), 1e-9) || !scalar.EqualWithinAbs(math.Cos(w), math.Cos(a), 1e-9) {
			t.Fatalf("wrapTau(%f)=%f is not the same angle", a, w)
		}
	}
	if wrapTau(2*math.Pi) != 0 {
		t.Fatal("2π must wrap to zero")
	}
}

func TestUnitOrZero(t *testing.T) {
	if unitOrZero(r3.Vec{}) != (r3.Vec{}) {
		t.Fatal("zero vector must stay zero")
	}
	u := unitOrZero(r3.Vec{X: 3, Y: 4})
	if !vectorsEqual(u, r3.Vec{X: 0.6, Y: 0.8}) {
		t.Fatalf("invalid unit vector %+v", u)
	}
	u = unitOrZero(r3.Vec{X: -12, Y: 35, Z: 100})
	if !scalar.EqualWithinAbs(r3.Norm(u), 1, 1e-12) {
		t.Fatalf("norm %f != 1", r3.Norm(u))
	}
}
