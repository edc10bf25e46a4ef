package linalg

import "math"

// Vec4 is a 4-component vector. There is no cross product in four dimensions.
type Vec4 [4]float32

var (
	emptyVec4  = Vec4{}
	nanVec4    = SplatVec4(float32(math.NaN()))
	negInfVec4 = SplatVec4(float32(math.Inf(-1)))
	posInfVec4 = SplatVec4(float32(math.Inf(1)))
)

func EmptyVec4() Vec4            { return emptyVec4 }
func NaNVec4() Vec4              { return nanVec4 }
func NegativeInfinityVec4() Vec4 { return negInfVec4 }
func PositiveInfinityVec4() Vec4 { return posInfVec4 }

func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

func SplatVec4(all float32) Vec4 {
	return Vec4{all, all, all, all}
}

// Vec4FromVec2 widens v with Z = W = 0.
func Vec4FromVec2(v Vec2) Vec4 {
	return Vec4{v[0], v[1], 0, 0}
}

// Vec4FromVec3 widens v with W = 0.
func Vec4FromVec3(v Vec3) Vec4 {
	return Vec4{v[0], v[1], v[2], 0}
}

func (v Vec4) X() float32 { return v[0] }
func (v Vec4) Y() float32 { return v[1] }
func (v Vec4) Z() float32 { return v[2] }
func (v Vec4) W() float32 { return v[3] }

func (v *Vec4) SetX(x float32) { v[0] = x }
func (v *Vec4) SetY(y float32) { v[1] = y }
func (v *Vec4) SetZ(z float32) { v[2] = z }
func (v *Vec4) SetW(w float32) { v[3] = w }

func (v Vec4) Get(i int) (float32, error) {
	return get(v[:], i)
}

func (v *Vec4) Set(i int, value float32) error {
	return set(v[:], i, value)
}

func (v *Vec4) SetAll(all float32) {
	v[0], v[1], v[2], v[3] = all, all, all, all
}

func (v *Vec4) SetZero() {
	setZero(v[:])
}

func (v Vec4) Copy() Vec4 {
	return v
}

func (v Vec4) Neg() Vec4 {
	return Vec4{-v[0], -v[1], -v[2], -v[3]}
}

func (v Vec4) Add(w Vec4) Vec4 {
	return Vec4{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

func (v Vec4) Sub(w Vec4) Vec4 {
	return Vec4{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]}
}

func (v Vec4) Mul(s float32) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

func ScaleVec4(s float32, v Vec4) Vec4 {
	return Vec4{s * v[0], s * v[1], s * v[2], s * v[3]}
}

func (v Vec4) Div(s float32) Vec4 {
	return Vec4{v[0] / s, v[1] / s, v[2] / s, v[3] / s}
}

func (v Vec4) Dot(w Vec4) float32 {
	return dot(v[:], w[:])
}

func Dot4(a, b Vec4) float32 {
	return a.Dot(b)
}

func (v Vec4) DistanceSquared(w Vec4) float32 {
	return distanceSquared(v[:], w[:])
}

func (v Vec4) Distance(w Vec4) float32 {
	return distance(v[:], w[:])
}

func DistanceSquared4(a, b Vec4) float32 {
	return a.DistanceSquared(b)
}

func Distance4(a, b Vec4) float32 {
	return a.Distance(b)
}

func (v Vec4) LengthSquared() float32 { return lengthSquared(v[:]) }
func (v Vec4) Length() float32        { return length(v[:]) }

func (v *Vec4) Normalize() {
	factor := 1 / v.Length()
	v[0] *= factor
	v[1] *= factor
	v[2] *= factor
	v[3] *= factor
}

func (v Vec4) Normalized() Vec4 {
	return v.Div(v.Length())
}

func (v *Vec4) Clamp(lower, upper float32) {
	clamp(v[:], lower, upper)
}

func (v Vec4) IsAnyNaN() bool              { return isAnyNaN(v[:]) }
func (v Vec4) IsAnyInfinity() bool         { return isAnyInf(v[:], 0) }
func (v Vec4) IsAnyNegativeInfinity() bool { return isAnyInf(v[:], -1) }
func (v Vec4) IsAnyPositiveInfinity() bool { return isAnyInf(v[:], 1) }

func (v Vec4) String() string {
	return rowString(v[:])
}

func (v Vec4) Render(f PrintFormat) string {
	return format(v[:], f)
}
