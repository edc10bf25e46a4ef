package linalg

import "math"

// Vec3 is a 3-component vector.
type Vec3 [3]float32

var (
	emptyVec3  = Vec3{}
	nanVec3    = SplatVec3(float32(math.NaN()))
	negInfVec3 = SplatVec3(float32(math.Inf(-1)))
	posInfVec3 = SplatVec3(float32(math.Inf(1)))
)

func EmptyVec3() Vec3            { return emptyVec3 }
func NaNVec3() Vec3              { return nanVec3 }
func NegativeInfinityVec3() Vec3 { return negInfVec3 }
func PositiveInfinityVec3() Vec3 { return posInfVec3 }

func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

func SplatVec3(all float32) Vec3 {
	return Vec3{all, all, all}
}

// Vec3FromVec2 widens v with Z = 0.
func Vec3FromVec2(v Vec2) Vec3 {
	return Vec3{v[0], v[1], 0}
}

// Vec3FromVec4 drops W.
func Vec3FromVec4(v Vec4) Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

func (v Vec3) X() float32 { return v[0] }
func (v Vec3) Y() float32 { return v[1] }
func (v Vec3) Z() float32 { return v[2] }

func (v *Vec3) SetX(x float32) { v[0] = x }
func (v *Vec3) SetY(y float32) { v[1] = y }
func (v *Vec3) SetZ(z float32) { v[2] = z }

func (v Vec3) Get(i int) (float32, error) {
	return get(v[:], i)
}

func (v *Vec3) Set(i int, value float32) error {
	return set(v[:], i, value)
}

func (v *Vec3) SetAll(all float32) {
	v[0], v[1], v[2] = all, all, all
}

func (v *Vec3) SetZero() {
	setZero(v[:])
}

func (v Vec3) Copy() Vec3 {
	return v
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func ScaleVec3(s float32, v Vec3) Vec3 {
	return Vec3{s * v[0], s * v[1], s * v[2]}
}

func (v Vec3) Div(s float32) Vec3 {
	return Vec3{v[0] / s, v[1] / s, v[2] / s}
}

func (v Vec3) Dot(w Vec3) float32 {
	return dot(v[:], w[:])
}

func Dot3(a, b Vec3) float32 {
	return a.Dot(b)
}

//	| x  y  z|
//	|ax ay az| = (ay*bz - by*az, az*bx - bz*ax, ax*by - bx*ay)
//	|bx by bz|
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - b[1]*a[2],
		a[2]*b[0] - b[2]*a[0],
		a[0]*b[1] - b[0]*a[1],
	}
}

// Cross32 is Cross(a, b) with b extended by a zero Z.
func Cross32(a Vec3, b Vec2) Vec3 {
	return Vec3{
		-b[1] * a[2],
		a[2] * b[0],
		a[0]*b[1] - b[0]*a[1],
	}
}

// Cross23 is Cross(a, b) with a extended by a zero Z.
func Cross23(a Vec2, b Vec3) Vec3 {
	return Vec3{
		a[1] * b[2],
		-b[2] * a[0],
		a[0]*b[1] - b[0]*a[1],
	}
}

func (v Vec3) Cross(w Vec3) Vec3 {
	return Cross(v, w)
}

func (v Vec3) DistanceSquared(w Vec3) float32 {
	return distanceSquared(v[:], w[:])
}

func (v Vec3) Distance(w Vec3) float32 {
	return distance(v[:], w[:])
}

func DistanceSquared3(a, b Vec3) float32 {
	return a.DistanceSquared(b)
}

func Distance3(a, b Vec3) float32 {
	return a.Distance(b)
}

func (v Vec3) LengthSquared() float32 { return lengthSquared(v[:]) }
func (v Vec3) Length() float32        { return length(v[:]) }

// Normalize scales v to unit length in place.
func (v *Vec3) Normalize() {
	factor := 1 / v.Length()
	v[0] *= factor
	v[1] *= factor
	v[2] *= factor
}

func (v Vec3) Normalized() Vec3 {
	return v.Div(v.Length())
}

func (v *Vec3) Clamp(lower, upper float32) {
	clamp(v[:], lower, upper)
}

func (v Vec3) IsAnyNaN() bool              { return isAnyNaN(v[:]) }
func (v Vec3) IsAnyInfinity() bool         { return isAnyInf(v[:], 0) }
func (v Vec3) IsAnyNegativeInfinity() bool { return isAnyInf(v[:], -1) }
func (v Vec3) IsAnyPositiveInfinity() bool { return isAnyInf(v[:], 1) }

func (v Vec3) String() string {
	return rowString(v[:])
}

func (v Vec3) Render(f PrintFormat) string {
	return format(v[:], f)
}
