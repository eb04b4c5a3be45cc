package orbits

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// PerifocalToLocal expresses a perifocal frame vector in the frame of the
// parent body by applying R3(-Ω)·R1(-i)·R3(-ω).
func PerifocalToLocal(v r3.Vec, i, ω, Ω float64) r3.Vec {
	return MxV33(R3R1R3(-ω, -i, -Ω), v)
}

// R3R1R3 performs a 3-1-3 Euler parameter rotation.
// From Schaub and Junkins (the one in Vallado is wrong... surprinsingly, right? =/)
func R3R1R3(θ1, θ2, θ3 float64) *mat.Dense {
	sθ1, cθ1 := math.Sincos(θ1)
	sθ2, cθ2 := math.Sincos(θ2)
	sθ3, cθ3 := math.Sincos(θ3)
	return mat.NewDense(3, 3, []float64{cθ3*cθ1 - sθ3*cθ2*sθ1, cθ3*sθ1 + sθ3*cθ2*cθ1, sθ3 * sθ2,
		-sθ3*cθ1 - cθ3*cθ2*sθ1, -sθ3*sθ1 + cθ3*cθ2*cθ1, cθ3 * sθ2,
		sθ2 * sθ1, -sθ2 * cθ1, cθ2})
}

// R1 rotation about the 1st axis.
func R1(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R2 rotation about the 2nd axis.
func R2(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a 3x3 matrix with a vector. Note that there is no dimension check!
func MxV33(m *mat.Dense, v r3.Vec) r3.Vec {
	var rVec mat.VecDense
	rVec.MulVec(m, mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	return r3.Vec{X: rVec.AtVec(0), Y: rVec.AtVec(1), Z: rVec.AtVec(2)}
}

// TiltRotation returns the rotation mapping the equatorial frame of a body
// with the given axial tilt to the frame of whatever that body orbits. The
// spin axis leans about the +X axis, so a body's vernal direction is +X.
func TiltRotation(tilt float64) r3.Rotation {
	return r3.NewRotation(tilt, r3.Vec{X: 1})
}

// EquatorialToLocal expresses v, given in the equatorial frame of a body with
// axial tilt tilt, in the frame of that body's parent.
func EquatorialToLocal(v r3.Vec, tilt float64) r3.Vec {
	return TiltRotation(tilt).Rotate(v)
}

// LocalToEquatorial expresses v, given in the frame of the parent, in the
// equatorial frame of a body with axial tilt tilt.
func LocalToEquatorial(v r3.Vec, tilt float64) r3.Vec {
	return r3.NewRotation(-tilt, r3.Vec{X: 1}).Rotate(v)
}
