package geometry

import (
	"errors"
	"fmt"

	"github.com/zeusync/geomkit/pkg/linalg"
	"github.com/zeusync/geomkit/pkg/mathutil"
)

var ErrLengthMismatch = errors.New("barycentric coordinate length does not match vertex count")

// Vector is satisfied by linalg.Vec2, linalg.Vec3 and linalg.Vec4.
type Vector[V any] interface {
	Add(V) V
	Mul(float32) V
}

// Barycentric coordinates are stored leading component first: for a simplex
// with vertices v0..vk the coordinate is (1 - sum(rest), rest...). Degenerate
// simplices are not special-cased; they produce NaN or Inf components.

// BaryCoordScalar returns the coordinate of p on the interval [v0, v1].
func BaryCoordScalar(p, v0, v1 float32) linalg.Vec2 {
	return U2Bary((p - v0) / (v1 - v0))
}

// BaryCoordLine2 projects p onto the line through v0 and v1.
func BaryCoordLine2(p, v0, v1 linalg.Vec2) linalg.Vec2 {
	u := p.Sub(v0).Dot(v1.Sub(v0)) / linalg.DistanceSquared2(v0, v1)
	return U2Bary(u)
}

func BaryCoordLine3(p, v0, v1 linalg.Vec3) linalg.Vec2 {
	u := p.Sub(v0).Dot(v1.Sub(v0)) / linalg.DistanceSquared3(v0, v1)
	return U2Bary(u)
}

// BaryCoordTriangle3 returns (1-u-v, u, v) such that p = (1-u-v)*v0 + u*v1 +
// v*v2 for points in the triangle plane. Points outside the triangle get
// negative components or components above one; callers test the signs.
func BaryCoordTriangle3(p, v0, v1, v2 linalg.Vec3) linalg.Vec3 {
	e0 := v2.Sub(v0)
	e1 := v1.Sub(v0)
	e2 := p.Sub(v0)

	dot00 := e0.Dot(e0)
	dot01 := e0.Dot(e1)
	dot02 := e0.Dot(e2)
	dot11 := e1.Dot(e1)
	dot12 := e1.Dot(e2)

	invDenom := 1 / (dot00*dot11 - dot01*dot01)
	u := (dot00*dot12 - dot01*dot02) * invDenom
	v := (dot11*dot02 - dot01*dot12) * invDenom

	return UV2Bary(u, v)
}

func BaryCoordTriangle2(p, v0, v1, v2 linalg.Vec2) linalg.Vec3 {
	return BaryCoordTriangle3(
		linalg.Vec3FromVec2(p),
		linalg.Vec3FromVec2(v0),
		linalg.Vec3FromVec2(v1),
		linalg.Vec3FromVec2(v2),
	)
}

func InterpolateLineScalar(bc linalg.Vec2, v0, v1 float32) float32 {
	return bc[0]*v0 + bc[1]*v1
}

func InterpolateLine[V Vector[V]](bc linalg.Vec2, v0, v1 V) V {
	return v0.Mul(bc[0]).Add(v1.Mul(bc[1]))
}

func InterpolateTriangleScalar(bc linalg.Vec3, v0, v1, v2 float32) float32 {
	return bc[0]*v0 + bc[1]*v1 + bc[2]*v2
}

func InterpolateTriangle[V Vector[V]](bc linalg.Vec3, v0, v1, v2 V) V {
	return v0.Mul(bc[0]).Add(v1.Mul(bc[1])).Add(v2.Mul(bc[2]))
}

func InterpolateTetraScalar(bc linalg.Vec4, v0, v1, v2, v3 float32) float32 {
	return bc[0]*v0 + bc[1]*v1 + bc[2]*v2 + bc[3]*v3
}

func InterpolateTetra[V Vector[V]](bc linalg.Vec4, v0, v1, v2, v3 V) V {
	return v0.Mul(bc[0]).Add(v1.Mul(bc[1])).Add(v2.Mul(bc[2])).Add(v3.Mul(bc[3]))
}

// Interpolate returns sum(bc[i] * v[i]) for any number of vertices.
func Interpolate[V Vector[V]](bc []float32, v []V) (V, error) {
	var p V
	if len(bc) != len(v) {
		return p, fmt.Errorf("%w: %d weights, %d vertices", ErrLengthMismatch, len(bc), len(v))
	}
	for i := range v {
		p = p.Add(v[i].Mul(bc[i]))
	}
	return p, nil
}

func InterpolateScalars(bc, v []float32) (float32, error) {
	if len(bc) != len(v) {
		return 0, fmt.Errorf("%w: %d weights, %d values", ErrLengthMismatch, len(bc), len(v))
	}
	var p float32
	for i := range v {
		p += bc[i] * v[i]
	}
	return p, nil
}

// ClampLine projects bc onto the closed segment.
func ClampLine(bc linalg.Vec2) linalg.Vec2 {
	return U2Bary(mathutil.Clamp(bc[1], 0, 1))
}

// ClampTriangle projects bc onto the closed triangle: the trailing components
// are clamped to [0, 1] and, if their sum exceeds one, rescaled to sum to one.
func ClampTriangle(bc linalg.Vec3) linalg.Vec3 {
	rest := linalg.Vec2{bc[1], bc[2]}
	rest.Clamp(0, 1)
	if sum := rest[0] + rest[1]; sum > 1 {
		rest = rest.Div(sum)
	}
	return UV2Bary(rest[0], rest[1])
}

// ClampTetra constrains bc to lie inside or on a face of the tetrahedron.
func ClampTetra(bc linalg.Vec4) linalg.Vec4 {
	rest := linalg.Vec3{bc[1], bc[2], bc[3]}
	rest.Clamp(0, 1)
	if sum := rest[0] + rest[1] + rest[2]; sum > 1 {
		rest = rest.Div(sum)
	}
	return UVW2Bary(rest[0], rest[1], rest[2])
}

func U2Bary(u float32) linalg.Vec2 {
	return linalg.Vec2{1 - u, u}
}

func UV2Bary(u, v float32) linalg.Vec3 {
	return linalg.Vec3{1 - u - v, u, v}
}

func UVW2Bary(u, v, w float32) linalg.Vec4 {
	return linalg.Vec4{1 - u - v - w, u, v, w}
}
