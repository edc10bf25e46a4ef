// Package geometry provides a 2D axis-aligned bounding box and barycentric
// coordinate utilities for segments, triangles and tetrahedra.
package geometry

import (
	"errors"
	"fmt"

	"github.com/zeusync/geomkit/pkg/linalg"
	"github.com/zeusync/geomkit/pkg/mathutil"
)

var ErrAxisOutOfRange = errors.New("axis out of range")

// AABB is an axis-aligned box spanned by the Min and Max corners.
//
// An empty box has Min = +Inf and Max = -Inf on every axis, so that adding
// any point to it yields a box containing exactly that point. Methods with a
// pointer receiver modify the box in place.
type AABB struct {
	Min linalg.Vec2
	Max linalg.Vec2
}

// NewAABB returns an empty box.
func NewAABB() AABB {
	var bb AABB
	bb.SetEmpty()
	return bb
}

func NewInfiniteAABB() AABB {
	var bb AABB
	bb.SetInfinity()
	return bb
}

// NewAABBFromPoint returns a degenerate box around p.
func NewAABBFromPoint(p linalg.Vec2) AABB {
	var bb AABB
	bb.Init(p)
	return bb
}

func NewAABBFromCorners(lower, upper linalg.Vec2) AABB {
	return AABB{Min: lower, Max: upper}
}

func (bb *AABB) SetEmpty() {
	bb.Min = linalg.PositiveInfinityVec2()
	bb.Max = linalg.NegativeInfinityVec2()
}

func (bb *AABB) SetInfinity() {
	bb.Min = linalg.NegativeInfinityVec2()
	bb.Max = linalg.PositiveInfinityVec2()
}

// Init collapses the box onto p.
func (bb *AABB) Init(p linalg.Vec2) {
	bb.Min = p
	bb.Max = p
}

// Copy returns an independent box. Vec2 is an array type, so the copy never
// shares storage with bb.
func (bb AABB) Copy() AABB {
	return bb
}

// IsEmpty reports whether Min exceeds Max on any axis.
func (bb AABB) IsEmpty() bool {
	return bb.Min[0] > bb.Max[0] || bb.Min[1] > bb.Max[1]
}

func (bb AABB) Size() linalg.Vec2 {
	return bb.Max.Sub(bb.Min)
}

func (bb *AABB) AddPoint(p linalg.Vec2) {
	for axis := 0; axis < 2; axis++ {
		if p[axis] < bb.Min[axis] {
			bb.Min[axis] = p[axis]
		}
		if p[axis] > bb.Max[axis] {
			bb.Max[axis] = p[axis]
		}
	}
}

func (bb *AABB) AddAABB(other AABB) {
	bb.AddPoint(other.Min)
	bb.AddPoint(other.Max)
}

func checkAxis(axis int) error {
	if axis < 0 || axis > 1 {
		return fmt.Errorf("%w: %d", ErrAxisOutOfRange, axis)
	}
	return nil
}

// OverlapsOnAxis reports whether the closed intervals of both boxes on axis
// intersect.
func (bb AABB) OverlapsOnAxis(other AABB, axis int) (bool, error) {
	if err := checkAxis(axis); err != nil {
		return false, err
	}
	return bb.overlapsOnAxis(other, axis), nil
}

func (bb AABB) overlapsOnAxis(other AABB, axis int) bool {
	if other.Max[axis] < bb.Min[axis] {
		return false
	}
	if other.Min[axis] > bb.Max[axis] {
		return false
	}
	return true
}

// Overlaps reports whether the boxes intersect. Touching edges overlap.
func (bb AABB) Overlaps(other AABB) bool {
	return bb.overlapsOnAxis(other, 0) && bb.overlapsOnAxis(other, 1)
}

// OverlapsExpandedPoint tests the box against the square of half-size radius
// centred on p.
func (bb AABB) OverlapsExpandedPoint(p linalg.Vec2, radius float32) bool {
	for axis := 0; axis < 2; axis++ {
		if p[axis]+radius < bb.Min[axis] {
			return false
		}
		if p[axis]-radius > bb.Max[axis] {
			return false
		}
	}
	return true
}

func (bb AABB) Contains(p linalg.Vec2) bool {
	for axis := 0; axis < 2; axis++ {
		if p[axis] < bb.Min[axis] || p[axis] > bb.Max[axis] {
			return false
		}
	}
	return true
}

func (bb AABB) ContainsAABB(other AABB) bool {
	for axis := 0; axis < 2; axis++ {
		if other.Min[axis] < bb.Min[axis] || other.Max[axis] > bb.Max[axis] {
			return false
		}
	}
	return true
}

// OverlapsCircle reports whether any of the four box vertices lies within
// radius of centre.
//
// Only vertices are tested. A circle crossing an edge between two vertices,
// or lying completely inside the box, is not detected; callers that need an
// exact answer should compare PointDistanceSquared(centre) with radius².
func (bb AABB) OverlapsCircle(centre linalg.Vec2, radius float32) bool {
	radiusSq := radius * radius
	for i := 0; i < 4; i++ {
		if linalg.DistanceSquared2(bb.Vertex(i), centre) <= radiusSq {
			return true
		}
	}
	return false
}

// PointDistanceSquared returns the squared distance from p to the closest
// point of the box, or 0 when p is inside.
func (bb AABB) PointDistanceSquared(p linalg.Vec2) float32 {
	var distSq float32
	for axis := 0; axis < 2; axis++ {
		if p[axis] < bb.Min[axis] {
			distSq += mathutil.Sqr(bb.Min[axis] - p[axis])
		} else if p[axis] > bb.Max[axis] {
			distSq += mathutil.Sqr(p[axis] - bb.Max[axis])
		}
	}
	return distSq
}

// PointDistanceSquaredSigned equals PointDistanceSquared for points outside
// the box. For points inside it returns the negated sum, over both axes, of
// the squared distance to the nearer of the two faces on that axis. The
// interior value is a depth estimate, not a true signed distance.
func (bb AABB) PointDistanceSquaredSigned(p linalg.Vec2) float32 {
	if !bb.Contains(p) {
		return bb.PointDistanceSquared(p)
	}

	var distSq float32
	for axis := 0; axis < 2; axis++ {
		toMin := p[axis] - bb.Min[axis]
		toMax := bb.Max[axis] - p[axis]
		if toMin < toMax {
			distSq -= mathutil.Sqr(toMin)
		} else {
			distSq -= mathutil.Sqr(toMax)
		}
	}
	return distSq
}

// ExtrudeAxis moves Min down and Max up by offset on axis.
func (bb *AABB) ExtrudeAxis(offset float32, axis int) error {
	if err := checkAxis(axis); err != nil {
		return err
	}
	bb.Min[axis] -= offset
	bb.Max[axis] += offset
	return nil
}

func (bb *AABB) Extrude(offset float32) {
	bb.ExtrudeXY(offset, offset)
}

func (bb *AABB) ExtrudeXY(offsetX, offsetY float32) {
	bb.Min[0] -= offsetX
	bb.Max[0] += offsetX
	bb.Min[1] -= offsetY
	bb.Max[1] += offsetY
}

func (bb *AABB) ExtrudeVec(offset linalg.Vec2) {
	bb.Min = bb.Min.Sub(offset)
	bb.Max = bb.Max.Add(offset)
}

// InflateAxis grows the box about its own centroid so that the length along
// axis becomes (1+fraction) times the original. fraction must be >= 0.
func (bb *AABB) InflateAxis(fraction float32, axis int) error {
	if err := checkAxis(axis); err != nil {
		return err
	}
	bb.inflateAxis(fraction, axis)
	return nil
}

func (bb *AABB) inflateAxis(fraction float32, axis int) {
	offset := (bb.Max[axis] - bb.Min[axis]) * 0.5 * fraction
	bb.Min[axis] -= offset
	bb.Max[axis] += offset
}

// Inflate(1) doubles the box about its centroid; Inflate(0) is a no-op.
func (bb *AABB) Inflate(fraction float32) {
	bb.InflateXY(fraction, fraction)
}

func (bb *AABB) InflateXY(fractionX, fractionY float32) {
	bb.inflateAxis(fractionX, 0)
	bb.inflateAxis(fractionY, 1)
}

func (bb *AABB) InflateVec(fraction linalg.Vec2) {
	bb.InflateXY(fraction[0], fraction[1])
}

// ScaleAxis multiplies both corners by factor on axis. Unlike InflateAxis
// this scales about the origin, so an off-centre box also moves.
func (bb *AABB) ScaleAxis(factor float32, axis int) error {
	if err := checkAxis(axis); err != nil {
		return err
	}
	bb.Min[axis] *= factor
	bb.Max[axis] *= factor
	return nil
}

func (bb *AABB) Scale(factor float32) {
	bb.ScaleXY(factor, factor)
}

func (bb *AABB) ScaleXY(factorX, factorY float32) {
	bb.Min[0] *= factorX
	bb.Max[0] *= factorX
	bb.Min[1] *= factorY
	bb.Max[1] *= factorY
}

func (bb *AABB) ScaleVec(factor linalg.Vec2) {
	bb.ScaleXY(factor[0], factor[1])
}

func (bb *AABB) TranslateAxis(offset float32, axis int) error {
	if err := checkAxis(axis); err != nil {
		return err
	}
	bb.Min[axis] += offset
	bb.Max[axis] += offset
	return nil
}

func (bb *AABB) Translate(offset linalg.Vec2) {
	bb.Min = bb.Min.Add(offset)
	bb.Max = bb.Max.Add(offset)
}

func (bb AABB) CentroidAxis(axis int) (float32, error) {
	if err := checkAxis(axis); err != nil {
		return 0, err
	}
	return (bb.Min[axis] + bb.Max[axis]) * 0.5, nil
}

func (bb AABB) Centroid() linalg.Vec2 {
	return bb.Min.Add(bb.Max).Mul(0.5)
}

// Union returns the smallest box enclosing a and b.
func Union(a, b AABB) AABB {
	u := a
	for axis := 0; axis < 2; axis++ {
		if b.Min[axis] < u.Min[axis] {
			u.Min[axis] = b.Min[axis]
		}
		if b.Max[axis] > u.Max[axis] {
			u.Max[axis] = b.Max[axis]
		}
	}
	return u
}

// Intersection returns the overlap of a and b. When the boxes do not overlap
// the result has Min > Max on at least one axis; it is not normalized to an
// empty box, so check Overlaps first.
func Intersection(a, b AABB) AABB {
	in := a
	for axis := 0; axis < 2; axis++ {
		if in.Min[axis] < b.Min[axis] {
			in.Min[axis] = b.Min[axis]
		}
		if in.Max[axis] > b.Max[axis] {
			in.Max[axis] = b.Max[axis]
		}
	}
	return in
}

// Vertex returns corner i in the order Min, (Max.X, Min.Y), Max,
// (Min.X, Max.Y). Indices outside 0..3 yield linalg.NaNVec2.
func (bb AABB) Vertex(i int) linalg.Vec2 {
	switch i {
	case 0:
		return bb.Min
	case 1:
		return linalg.Vec2{bb.Max[0], bb.Min[1]}
	case 2:
		return bb.Max
	case 3:
		return linalg.Vec2{bb.Min[0], bb.Max[1]}
	}
	return linalg.NaNVec2()
}

// EdgeVertex0 returns the first vertex of edge i; edge i runs from vertex i
// to vertex (i+1) mod 4. Indices outside 0..3 yield linalg.NaNVec2.
func (bb AABB) EdgeVertex0(i int) linalg.Vec2 {
	if i < 0 || i > 3 {
		return linalg.NaNVec2()
	}
	return bb.Vertex(i)
}

func (bb AABB) EdgeVertex1(i int) linalg.Vec2 {
	if i < 0 || i > 3 {
		return linalg.NaNVec2()
	}
	return bb.Vertex((i + 1) % 4)
}
