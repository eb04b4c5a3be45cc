package orbits

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestR1R2R3(t *testing.T) {
	x := math.Pi / 3.0
	s, c := math.Sincos(x)
	r1 := R1(x)
	r2 := R2(x)
	r3m := R3(x)
	// Test items equal to 1.
	if r1.At(0, 0) != r2.At(1, 1) || r1.At(0, 0) != r3m.At(2, 2) || r3m.At(2, 2) != 1 {
		t.Fatal("expected R1.At(0, 0) = R2.At(1, 1) = R3.At(2, 2) = 1\n")
	}
	// Test items equal to 0.
	if r1.At(0, 1) != r1.At(0, 2) || r1.At(1, 0) != r1.At(2, 0) || r1.At(0, 1) != 0 {
		t.Fatal("misplaced zeros in R1\n")
	}
	if r2.At(0, 1) != r2.At(1, 2) || r2.At(1, 0) != r2.At(1, 2) || r2.At(1, 2) != 0 {
		t.Fatal("misplaced zeros in R2\n")
	}
	if r3m.At(2, 0) != r3m.At(2, 1) || r3m.At(0, 2) != r3m.At(1, 2) || r3m.At(1, 2) != 0 {
		t.Fatal("misplaced zeros in R3\n")
	}
	// Test R1.
	if r1.At(1, 1) != r1.At(2, 2) || r1.At(2, 2) != c {
		t.Fatal("expected R1 cosines misplaced\n")
	}
	if r1.At(2, 1) != -r1.At(1, 2) || r1.At(1, 2) != s {
		t.Fatal("expected R1 sines misplaced\n")
	}
	// Test R2.
	if r2.At(0, 0) != r2.At(2, 2) || r2.At(2, 2) != c {
		t.Fatal("expected R2 cosines misplaced\n")
	}
	if r2.At(2, 0) != -r2.At(0, 2) || r2.At(2, 0) != s {
		t.Fatal("expected R2 sines misplaced\n")
	}
	// Test R3.
	if r3m.At(1, 1) != r3m.At(0, 0) || r3m.At(0, 0) != c {
		t.Fatal("expected R3 cosines misplaced\n")
	}
	if r3m.At(0, 1) != -r3m.At(1, 0) || r3m.At(0, 1) != s {
		t.Fatal("expected R3 sines misplaced\n")
	}
}

func TestRot313(t *testing.T) {
	var R1R3, R3R1R3m mat.Dense
	θ1 := math.Pi / 17
	θ2 := math.Pi / 16
	θ3 := math.Pi / 15
	R1R3.Mul(R1(θ2), R3(θ1))
	R3R1R3m.Mul(R3(θ3), &R1R3)
	R3R1R3m.Sub(&R3R1R3m, R3R1R3(θ1, θ2, θ3))
	if !mat.EqualApprox(&R3R1R3m, mat.NewDense(3, 3, nil), 1e-12) {
		t.Logf("\n%+v", mat.Formatted(&R3R1R3m))
		t.Logf("\n%+v", mat.Formatted(R3R1R3(θ1, θ2, θ3)))
		t.Fatal("failed")
	}
}

func TestPerifocalToLocal(t *testing.T) {
	// From Vallado's COE2RV example.
	i := Deg2rad(87.87)
	ω := Deg2rad(53.38)
	Ω := Deg2rad(227.89)
	Rp := PerifocalToLocal(r3.Vec{X: -466.7639, Y: 11447.0219}, i, ω, Ω)
	Re := r3.Vec{X: 6525.368103709379, Y: 6861.531814548294, Z: 6449.118636407358}
	if !vectorsEqual(Re, Rp) {
		t.Fatalf("R conversion failed: %+v", Rp)
	}
	Vp := PerifocalToLocal(r3.Vec{X: -5.996222, Y: 4.753601}, i, ω, Ω)
	Ve := r3.Vec{X: 4.902278620687254, Y: 5.533139558121602, Z: -1.9757104281719946}
	if !vectorsEqual(Ve, Vp) {
		t.Fatalf("V conversion failed: %+v", Vp)
	}
	// Without any rotation the perifocal frame is the local frame.
	v := r3.Vec{X: 1, Y: 2, Z: 3}
	if !vectorsEqual(PerifocalToLocal(v, 0, 0, 0), v) {
		t.Fatal("a zero rotation must not move anything")
	}
	// A quarter turn of argument of periapsis swings x onto y.
	if got := PerifocalToLocal(r3.Vec{X: 1}, 0, math.Pi/2, 0); !vectorsEqual(got, r3.Vec{Y: 1}) {
		t.Fatalf("ω=π/2 moved x̂ to %+v", got)
	}
	// A quarter turn of inclination swings the in-plane y onto z.
	if got := PerifocalToLocal(r3.Vec{Y: 1}, math.Pi/2, 0, 0); !vectorsEqual(got, r3.Vec{Z: 1}) {
		t.Fatalf("i=π/2 moved ŷ to %+v", got)
	}
}

func TestTiltRotation(t *testing.T) {
	// A quarter turn about x̂ takes ŷ to ẑ.
	if got := TiltRotation(math.Pi / 2).Rotate(r3.Vec{Y: 1}); !vectorsEqual(got, r3.Vec{Z: 1}) {
		t.Fatalf("tilt rotation moved ŷ to %+v", got)
	}
	tilt := Deg2rad(23.4392811)
	v := r3.Vec{X: 0.3, Y: -1.2, Z: 0.5}
	back := LocalToEquatorial(EquatorialToLocal(v, tilt), tilt)
	if !vectorsEqual(back, v) {
		t.Fatalf("tilt round trip moved %+v to %+v", v, back)
	}
	if n := r3.Norm(EquatorialToLocal(v, tilt)); math.Abs(n-r3.Norm(v)) > 1e-12 {
		t.Fatalf("tilt rotation changed the norm: %f", n)
	}
}
