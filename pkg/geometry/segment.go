package geometry

import (
	"math"

	"github.com/zeusync/geomkit/pkg/linalg"
)

// Lerp2 returns (1-t)*a + t*b.
func Lerp2(t float32, a, b linalg.Vec2) linalg.Vec2 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// PointSegmentDistanceSquared returns the squared distance from p to the
// closed segment [a, b]. A zero-length segment yields NaN.
func PointSegmentDistanceSquared(p, a, b linalg.Vec2) float32 {
	bc := BaryCoordLine2(p, a, b)
	t := bc[1]
	switch {
	case t <= 0:
		return linalg.DistanceSquared2(p, a)
	case t >= 1:
		return linalg.DistanceSquared2(p, b)
	case t > 0 && t < 1:
		return linalg.DistanceSquared2(p, Lerp2(t, a, b))
	default:
		return t
	}
}

func PointSegmentDistance(p, a, b linalg.Vec2) float32 {
	return float32(math.Sqrt(float64(PointSegmentDistanceSquared(p, a, b))))
}
