package linalg

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/geomkit/pkg/mathutil"
)

const eps = 1e-5

func randVec3(r *rand.Rand) Vec3 {
	return Vec3{r.Float32()*20 - 10, r.Float32()*20 - 10, r.Float32()*20 - 10}
}

func TestVec2_Arithmetic(t *testing.T) {
	a := NewVec2(-1, 3)
	b := NewVec2(1, 2)

	assert.Equal(t, Vec2{-2, 1}, a.Sub(b))
	assert.Equal(t, Vec2{0, 5}, a.Add(b))
	assert.Equal(t, Vec2{1, -3}, a.Neg())
	assert.Equal(t, Vec2{-2, 6}, a.Mul(2))
	assert.Equal(t, Vec2{-2, 6}, ScaleVec2(2, a))
	assert.Equal(t, Vec2{-0.5, 1.5}, a.Div(2))
	assert.Equal(t, float32(5), Dot2(a, b))
	assert.Equal(t, float32(-5), RotDir(a, b))
	assert.Equal(t, Vec3{0, 0, -5}, a.Cross(b))
}

func TestVec_Accessors(t *testing.T) {
	t.Run("Vec2", func(t *testing.T) {
		v := NewVec2(1, 2)
		v.SetX(5)
		v.SetY(6)
		assert.Equal(t, float32(5), v.X())
		assert.Equal(t, float32(6), v.Y())

		require.NoError(t, v.Set(1, 7))
		got, err := v.Get(1)
		require.NoError(t, err)
		assert.Equal(t, float32(7), got)
	})

	t.Run("Vec4", func(t *testing.T) {
		v := NewVec4(1, 2, 3, 4)
		assert.Equal(t, float32(1), v.X())
		assert.Equal(t, float32(2), v.Y())
		assert.Equal(t, float32(3), v.Z())
		assert.Equal(t, float32(4), v.W())
		v.SetW(9)
		got, err := v.Get(3)
		require.NoError(t, err)
		assert.Equal(t, float32(9), got)
	})
}

func TestVec_IndexOutOfRange(t *testing.T) {
	v2 := Vec2{}
	v3 := Vec3{}
	v4 := Vec4{}

	for _, i := range []int{-1, 4, 100} {
		_, err := v4.Get(i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.ErrorIs(t, v4.Set(i, 1), ErrIndexOutOfRange)
	}

	_, err := v2.Get(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.ErrorIs(t, v2.Set(2, 1), ErrIndexOutOfRange)

	_, err = v3.Get(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.ErrorIs(t, v3.Set(-1, 1), ErrIndexOutOfRange)
	assert.Equal(t, Vec3{}, v3)
}

func TestVec_Conversions(t *testing.T) {
	v4 := NewVec4(1, 2, 3, 4)
	assert.Equal(t, Vec2{1, 2}, Vec2FromVec4(v4))
	assert.Equal(t, Vec3{1, 2, 3}, Vec3FromVec4(v4))
	assert.Equal(t, Vec2{1, 2}, Vec2FromVec3(Vec3FromVec4(v4)))

	assert.Equal(t, Vec3{1, 2, 0}, Vec3FromVec2(Vec2{1, 2}))
	assert.Equal(t, Vec4{1, 2, 0, 0}, Vec4FromVec2(Vec2{1, 2}))
	assert.Equal(t, Vec4{1, 2, 3, 0}, Vec4FromVec3(Vec3{1, 2, 3}))
}

func TestVec_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 200; i++ {
		a, b := randVec3(r), randVec3(r)

		sum := a.Add(b).Sub(b)
		for k := range a {
			assert.InDelta(t, a[k], sum[k], 1e-4)
		}
		assert.Equal(t, Dot3(a, b), Dot3(b, a))
		assert.GreaterOrEqual(t, a.Length(), float32(0))

		ab := Cross(a, b)
		assert.Equal(t, ab, Cross(b, a).Neg())
		assert.InDelta(t, 0, Dot3(a, ab), 5e-2)
		assert.InDelta(t, 0, Dot3(b, ab), 5e-2)
	}
}

func TestVec3_MixedCross(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec2{4, 5}

	assert.Equal(t, Cross(a, Vec3FromVec2(b)), Cross32(a, b))
	assert.Equal(t, Cross(Vec3FromVec2(b), a), Cross23(b, a))
	assert.Equal(t, Vec3{0, 0, 1}, Cross(Vec3{1, 0, 0}, Vec3{0, 1, 0}))
}

func TestVec_Distance(t *testing.T) {
	assert.Equal(t, float32(25), DistanceSquared2(Vec2{0, 0}, Vec2{3, 4}))
	assert.Equal(t, float32(5), Distance2(Vec2{0, 0}, Vec2{3, 4}))
	assert.Equal(t, float32(4), DistanceSquared3(Vec3{1, 1, 1}, Vec3{1, 1, 3}))
	assert.Equal(t, float32(2), Distance4(Vec4{}, Vec4{1, 1, 1, 1}))
	assert.Equal(t, float32(4), DistanceSquared4(Vec4{}, Vec4{1, 1, 1, 1}))
	assert.Equal(t, float32(30), Dot4(Vec4{1, 2, 3, 4}, Vec4{1, 2, 3, 4}))
}

func TestVec_Normalize(t *testing.T) {
	t.Run("Unit", func(t *testing.T) {
		v := Vec3{3, 0, 4}
		n := v.Normalized()
		assert.InDelta(t, 1, n.Length(), eps)
		assert.Equal(t, Vec3{3, 0, 4}, v)

		v.Normalize()
		assert.InDelta(t, 0.6, v.X(), eps)
		assert.InDelta(t, 0.8, v.Z(), eps)

		w := Vec4{1, 1, 1, 1}
		w.Normalize()
		assert.InDelta(t, 0.5, w.W(), eps)

		u := Vec2{0, -2}
		assert.Equal(t, Vec2{0, -1}, u.Normalized())
	})

	t.Run("ZeroLengthPropagatesNaN", func(t *testing.T) {
		v := Vec2{}
		v.Normalize()
		assert.True(t, v.IsAnyNaN())
		assert.True(t, Vec4{}.Normalized().IsAnyNaN())
	})

	t.Run("InfiniteLength", func(t *testing.T) {
		v := Vec3{float32(math.Inf(1)), 0, 0}
		assert.True(t, v.Normalized().IsAnyNaN())
	})
}

func TestVec_Clamp(t *testing.T) {
	v := Vec4{-2, 0.5, 3, 1}
	v.Clamp(0, 1)
	assert.Equal(t, Vec4{0, 0.5, 1, 1}, v)

	u := Vec2{-5, 5}
	u.Clamp(-1, 1)
	assert.Equal(t, Vec2{-1, 1}, u)
}

func TestVec_Classification(t *testing.T) {
	inf := float32(math.Inf(1))
	nan := float32(math.NaN())

	v := Vec3{1, nan, 2}
	assert.True(t, v.IsAnyNaN())
	assert.False(t, v.IsAnyInfinity())

	w := Vec3{1, -inf, 2}
	assert.True(t, w.IsAnyInfinity())
	assert.True(t, w.IsAnyNegativeInfinity())
	assert.False(t, w.IsAnyPositiveInfinity())
	assert.False(t, w.IsAnyNaN())

	assert.True(t, PositiveInfinityVec4().IsAnyPositiveInfinity())
	assert.True(t, NegativeInfinityVec2().IsAnyNegativeInfinity())
	assert.False(t, EmptyVec3().IsAnyInfinity())
	assert.True(t, math.IsNaN(float64(Vec2{nan, 0}.Length())))
}

func TestVec_DistinguishedValuesAreCopies(t *testing.T) {
	n := NaNVec2()
	n[0] = 1
	n.SetY(2)
	fresh := NaNVec2()
	assert.True(t, math.IsNaN(float64(fresh[0])))
	assert.True(t, math.IsNaN(float64(fresh[1])))

	e := EmptyVec4()
	e.SetAll(3)
	assert.Equal(t, Vec4{}, EmptyVec4())

	p := PositiveInfinityVec3()
	p.SetZero()
	assert.True(t, PositiveInfinityVec3().IsAnyPositiveInfinity())
}

func TestVec_Render(t *testing.T) {
	v := Vec3{1, -2.5, 10}
	assert.Equal(t, "[1, -2.5, 10]", v.String())
	assert.Equal(t, "[1, -2.5, 10]", v.Render(RowVector))
	assert.Equal(t, "[1   ]\n[-2.5]\n[10  ]", v.Render(ColumnVector))

	assert.Equal(t, "[0.1, 0.2]", Vec2{0.1, 0.2}.String())
	assert.Equal(t, "[NaN, NaN, NaN, NaN]", NaNVec4().String())
	assert.Equal(t, "[+Inf, -Inf]", Vec2{float32(math.Inf(1)), float32(math.Inf(-1))}.String())
}

func TestVec_ComponentHexRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 50; i++ {
		v := Vec2{r.Float32()*2 - 1, r.Float32() * 1000}
		for k, c := range v {
			back, err := mathutil.HexToFloat32(mathutil.Float32ToHex(c))
			require.NoError(t, err)
			assert.Equal(t, math.Float32bits(v[k]), math.Float32bits(back))
		}
	}
}

func TestParsePrintFormat(t *testing.T) {
	f, err := ParsePrintFormat("column")
	require.NoError(t, err)
	assert.Equal(t, ColumnVector, f)
	assert.Equal(t, "column", f.String())

	f, err = ParsePrintFormat("")
	require.NoError(t, err)
	assert.Equal(t, RowVector, f)

	_, err = ParsePrintFormat("diagonal")
	assert.Error(t, err)
}

func BenchmarkVec3_Cross(b *testing.B) {
	x, y := Vec3{1, 2, 3}, Vec3{4, 5, 6}
	for i := 0; i < b.N; i++ {
		x = Cross(x, y).Normalized()
	}
	_ = x
}

func BenchmarkVec4_Dot(b *testing.B) {
	x, y := Vec4{1, 2, 3, 4}, Vec4{4, 5, 6, 7}
	var s float32
	for i := 0; i < b.N; i++ {
		s += x.Dot(y)
	}
	_ = s
}
