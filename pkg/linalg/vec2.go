package linalg

import "math"

// Vec2 is a 2-component vector.
type Vec2 [2]float32

var (
	emptyVec2  = Vec2{}
	nanVec2    = SplatVec2(float32(math.NaN()))
	negInfVec2 = SplatVec2(float32(math.Inf(-1)))
	posInfVec2 = SplatVec2(float32(math.Inf(1)))
)

// EmptyVec2 returns the zero vector.
func EmptyVec2() Vec2 { return emptyVec2 }

// NaNVec2 returns a vector with every component NaN.
func NaNVec2() Vec2 { return nanVec2 }

// NegativeInfinityVec2 returns a vector with every component -Inf.
func NegativeInfinityVec2() Vec2 { return negInfVec2 }

// PositiveInfinityVec2 returns a vector with every component +Inf.
func PositiveInfinityVec2() Vec2 { return posInfVec2 }

func NewVec2(x, y float32) Vec2 {
	return Vec2{x, y}
}

// SplatVec2 sets both components to all.
func SplatVec2(all float32) Vec2 {
	return Vec2{all, all}
}

// Vec2FromVec3 drops Z.
func Vec2FromVec3(v Vec3) Vec2 {
	return Vec2{v[0], v[1]}
}

// Vec2FromVec4 drops Z and W.
func Vec2FromVec4(v Vec4) Vec2 {
	return Vec2{v[0], v[1]}
}

func (v Vec2) X() float32 { return v[0] }
func (v Vec2) Y() float32 { return v[1] }

func (v *Vec2) SetX(x float32) { v[0] = x }
func (v *Vec2) SetY(y float32) { v[1] = y }

// Get returns component i or ErrIndexOutOfRange.
func (v Vec2) Get(i int) (float32, error) {
	return get(v[:], i)
}

// Set writes component i or returns ErrIndexOutOfRange.
func (v *Vec2) Set(i int, value float32) error {
	return set(v[:], i, value)
}

func (v *Vec2) SetAll(all float32) {
	v[0], v[1] = all, all
}

func (v *Vec2) SetZero() {
	setZero(v[:])
}

func (v Vec2) Copy() Vec2 {
	return v
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v[0], -v[1]}
}

func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v[0] + w[0], v[1] + w[1]}
}

func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v[0] - w[0], v[1] - w[1]}
}

func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{v[0] * s, v[1] * s}
}

// ScaleVec2 is s*v.
func ScaleVec2(s float32, v Vec2) Vec2 {
	return Vec2{s * v[0], s * v[1]}
}

func (v Vec2) Div(s float32) Vec2 {
	return Vec2{v[0] / s, v[1] / s}
}

func (v Vec2) Dot(w Vec2) float32 {
	return dot(v[:], w[:])
}

func Dot2(a, b Vec2) float32 {
	return a.Dot(b)
}

// Cross treats both operands as lying in the z=0 plane.
func (v Vec2) Cross(w Vec2) Vec3 {
	return Vec3{0, 0, RotDir(v, w)}
}

// RotDir is the z component of the cross product of a and b. Its sign gives
// the turn direction from a to b: positive is counter-clockwise.
func RotDir(a, b Vec2) float32 {
	return a[0]*b[1] - b[0]*a[1]
}

func (v Vec2) DistanceSquared(w Vec2) float32 {
	return distanceSquared(v[:], w[:])
}

func (v Vec2) Distance(w Vec2) float32 {
	return distance(v[:], w[:])
}

func DistanceSquared2(a, b Vec2) float32 {
	return a.DistanceSquared(b)
}

func Distance2(a, b Vec2) float32 {
	return a.Distance(b)
}

func (v Vec2) LengthSquared() float32 { return lengthSquared(v[:]) }
func (v Vec2) Length() float32        { return length(v[:]) }

// Normalize scales v to unit length in place. A zero or infinite length
// yields NaN components.
func (v *Vec2) Normalize() {
	factor := 1 / v.Length()
	v[0] *= factor
	v[1] *= factor
}

// Normalized returns v divided by its length.
func (v Vec2) Normalized() Vec2 {
	return v.Div(v.Length())
}

// Clamp limits every component to [lower, upper] in place.
func (v *Vec2) Clamp(lower, upper float32) {
	clamp(v[:], lower, upper)
}

func (v Vec2) IsAnyNaN() bool              { return isAnyNaN(v[:]) }
func (v Vec2) IsAnyInfinity() bool         { return isAnyInf(v[:], 0) }
func (v Vec2) IsAnyNegativeInfinity() bool { return isAnyInf(v[:], -1) }
func (v Vec2) IsAnyPositiveInfinity() bool { return isAnyInf(v[:], 1) }

func (v Vec2) String() string {
	return rowString(v[:])
}

// Render formats v in the requested layout.
func (v Vec2) Render(f PrintFormat) string {
	return format(v[:], f)
}
