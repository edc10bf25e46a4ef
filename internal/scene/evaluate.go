package scene

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/zeusync/geomkit/internal/observability/log"
	"github.com/zeusync/geomkit/pkg/concurrent"
	"github.com/zeusync/geomkit/pkg/geometry"
	"github.com/zeusync/geomkit/pkg/linalg"
)

const (
	KindOverlaps         = "overlaps"
	KindContains         = "contains"
	KindDistance         = "distance"
	KindSignedDistance   = "signed_distance"
	KindOverlapsCircle   = "overlaps_circle"
	KindCentroid         = "centroid"
	KindUnion            = "union"
	KindIntersection     = "intersection"
	KindInflate          = "inflate"
	KindScale            = "scale"
	KindTranslate        = "translate"
	KindBarycentric      = "barycentric"
	KindClampBarycentric = "clamp_barycentric"
	KindSegmentDistance  = "segment_distance"
)

// Result is the outcome of one query. Value holds a bool, a float32, a
// linalg vector or a geometry.AABB; it is nil when Err is set.
type Result struct {
	ID    string
	Kind  string
	Value any
	Err   error
}

// Render formats the value with f, or the error text when the query failed.
func (r Result) Render(f linalg.PrintFormat) string {
	if r.Err != nil {
		return "error: " + r.Err.Error()
	}
	switch v := r.Value.(type) {
	case bool:
		return strconv.FormatBool(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case linalg.Vec2:
		return v.Render(f)
	case linalg.Vec3:
		return v.Render(f)
	case linalg.Vec4:
		return v.Render(f)
	case geometry.AABB:
		sep := " "
		if f == linalg.ColumnVector {
			sep = "\n"
		}
		return "min " + v.Min.Render(f) + sep + "max " + v.Max.Render(f)
	default:
		return fmt.Sprint(v)
	}
}

// Evaluate runs the scene queries in order. Query failures are reported on
// the matching Result; only cancellation of ctx aborts the run, in which
// case the results gathered so far are returned with ctx's error.
func Evaluate(ctx context.Context, s *Scene, logger log.Log) ([]Result, error) {
	logger = logger.With(log.String("scene", s.Name))
	results := make([]Result, 0, len(s.Queries))

	for _, q := range s.Queries {
		if err := ctx.Err(); err != nil {
			logger.Warn("evaluation cancelled", log.Int("done", len(results)), log.Error(err))
			return results, err
		}

		value, err := s.eval(q)
		res := Result{ID: q.ID, Kind: q.Kind, Value: value, Err: err}
		if err != nil {
			res.Value = nil
			logger.Warn("query failed", log.String("id", q.ID), log.String("kind", q.Kind), log.Error(err))
		} else {
			logger.Debug("query evaluated", log.String("id", q.ID), log.String("kind", q.Kind))
		}
		results = append(results, res)
	}

	return results, nil
}

// EvaluateAll evaluates scenes concurrently with at most workers in flight.
// The returned slice is indexed like scenes.
func EvaluateAll(ctx context.Context, scenes []*Scene, workers int, logger log.Log) ([][]Result, error) {
	return concurrent.ParallelMap(ctx, scenes, workers, func(ctx context.Context, s *Scene) ([]Result, error) {
		return Evaluate(ctx, s, logger)
	})
}

func (s *Scene) box(name string) (geometry.AABB, error) {
	b, ok := s.Boxes[name]
	if !ok {
		return geometry.AABB{}, fmt.Errorf("%w: %q", ErrUnknownBox, name)
	}
	return b.AABB, nil
}

func (s *Scene) boxPair(q QueryConfig) (geometry.AABB, geometry.AABB, error) {
	a, err := s.box(q.Box)
	if err != nil {
		return a, a, err
	}
	b, err := s.box(q.Other)
	return a, b, err
}

func (s *Scene) boxAndPoint(q QueryConfig) (geometry.AABB, linalg.Vec2, error) {
	bb, err := s.box(q.Box)
	if err != nil {
		return bb, linalg.Vec2{}, err
	}
	p, err := toVec2("point", q.Point)
	return bb, p, err
}

func (s *Scene) eval(q QueryConfig) (any, error) {
	switch q.Kind {
	case KindOverlaps:
		a, b, err := s.boxPair(q)
		if err != nil {
			return nil, err
		}
		return a.Overlaps(b), nil

	case KindContains:
		bb, p, err := s.boxAndPoint(q)
		if err != nil {
			return nil, err
		}
		return bb.Contains(p), nil

	case KindDistance:
		bb, p, err := s.boxAndPoint(q)
		if err != nil {
			return nil, err
		}
		return float32(math.Sqrt(float64(bb.PointDistanceSquared(p)))), nil

	case KindSignedDistance:
		bb, p, err := s.boxAndPoint(q)
		if err != nil {
			return nil, err
		}
		d := bb.PointDistanceSquaredSigned(p)
		return float32(math.Copysign(math.Sqrt(math.Abs(float64(d))), float64(d))), nil

	case KindOverlapsCircle:
		bb, p, err := s.boxAndPoint(q)
		if err != nil {
			return nil, err
		}
		return bb.OverlapsCircle(p, q.Radius), nil

	case KindCentroid:
		bb, err := s.box(q.Box)
		if err != nil {
			return nil, err
		}
		return bb.Centroid(), nil

	case KindUnion:
		a, b, err := s.boxPair(q)
		if err != nil {
			return nil, err
		}
		return geometry.Union(a, b), nil

	case KindIntersection:
		a, b, err := s.boxPair(q)
		if err != nil {
			return nil, err
		}
		return geometry.Intersection(a, b), nil

	case KindInflate:
		bb, err := s.box(q.Box)
		if err != nil {
			return nil, err
		}
		bb.Inflate(q.Amount)
		return bb, nil

	case KindScale:
		bb, err := s.box(q.Box)
		if err != nil {
			return nil, err
		}
		bb.Scale(q.Amount)
		return bb, nil

	case KindTranslate:
		bb, err := s.box(q.Box)
		if err != nil {
			return nil, err
		}
		offset, err := toVec2("offset", q.Offset)
		if err != nil {
			return nil, err
		}
		bb.Translate(offset)
		return bb, nil

	case KindBarycentric:
		return barycentric(q)

	case KindClampBarycentric:
		return clampBarycentric(q.Coords)

	case KindSegmentDistance:
		p, err := toVec2("point", q.Point)
		if err != nil {
			return nil, err
		}
		v, err := vertices(q.Vertices)
		if err != nil {
			return nil, err
		}
		if len(v) != 2 {
			return nil, fmt.Errorf("%w: segment needs 2 vertices, got %d", ErrInvalidVector, len(v))
		}
		return geometry.PointSegmentDistance(p, v[0], v[1]), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuery, q.Kind)
	}
}

func vertices(cs [][]float32) ([]linalg.Vec2, error) {
	out := make([]linalg.Vec2, len(cs))
	for i, c := range cs {
		v, err := toVec2(fmt.Sprintf("vertices[%d]", i), c)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func barycentric(q QueryConfig) (any, error) {
	p, err := toVec2("point", q.Point)
	if err != nil {
		return nil, err
	}
	v, err := vertices(q.Vertices)
	if err != nil {
		return nil, err
	}
	switch len(v) {
	case 2:
		return geometry.BaryCoordLine2(p, v[0], v[1]), nil
	case 3:
		return geometry.BaryCoordTriangle2(p, v[0], v[1], v[2]), nil
	default:
		return nil, fmt.Errorf("%w: barycentric needs 2 or 3 vertices, got %d", ErrInvalidVector, len(v))
	}
}

func clampBarycentric(c []float32) (any, error) {
	switch len(c) {
	case 2:
		return geometry.ClampLine(linalg.Vec2{c[0], c[1]}), nil
	case 3:
		return geometry.ClampTriangle(linalg.Vec3{c[0], c[1], c[2]}), nil
	case 4:
		return geometry.ClampTetra(linalg.Vec4{c[0], c[1], c[2], c[3]}), nil
	default:
		return nil, fmt.Errorf("%w: coords has %d components, want 2 to 4", ErrInvalidVector, len(c))
	}
}
