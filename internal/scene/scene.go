package scene

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/zeusync/geomkit/internal/observability/log"
	"github.com/zeusync/geomkit/pkg/geometry"
	"github.com/zeusync/geomkit/pkg/linalg"
)

type Box struct {
	Name string
	geometry.AABB
	// Points is the number of distinct points the box was grown from,
	// zero for boxes declared by corners.
	Points int
}

// Scene is a validated Config ready for evaluation.
type Scene struct {
	Name    string
	Boxes   map[string]Box
	Queries []QueryConfig
}

// PointKey fingerprints p by the exact bits of its components, so -0 and +0
// are distinct and every NaN payload keys separately.
func PointKey(p linalg.Vec2) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(p[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(p[1]))
	return xxhash.Sum64(buf[:])
}

// Build validates c and grows its boxes. Unnamed scenes and queries get a
// generated ID.
func Build(c *Config, logger log.Log) (*Scene, error) {
	if len(c.Queries) == 0 {
		return nil, ErrEmptyScene
	}

	s := &Scene{
		Name:    c.Name,
		Boxes:   make(map[string]Box, len(c.Boxes)),
		Queries: make([]QueryConfig, len(c.Queries)),
	}
	if s.Name == "" {
		s.Name = uuid.NewString()
	}
	logger = logger.With(log.String("scene", s.Name))

	for i, bc := range c.Boxes {
		if bc.Name == "" {
			return nil, fmt.Errorf("box %d: %w: empty name", i, ErrInvalidBox)
		}
		if _, ok := s.Boxes[bc.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateBox, bc.Name)
		}
		box, err := buildBox(bc)
		if err != nil {
			return nil, fmt.Errorf("box %q: %w", bc.Name, err)
		}
		if welded := len(bc.Points) - box.Points; welded > 0 {
			logger.Debug("welded duplicate points", log.String("box", bc.Name), log.Int("count", welded))
		}
		s.Boxes[bc.Name] = box
	}

	copy(s.Queries, c.Queries)
	for i := range s.Queries {
		if s.Queries[i].ID == "" {
			s.Queries[i].ID = uuid.NewString()
		}
	}

	logger.Debug("scene built", log.Int("boxes", len(s.Boxes)), log.Int("queries", len(s.Queries)))
	return s, nil
}

func buildBox(bc BoxConfig) (Box, error) {
	hasCorners := bc.Min != nil || bc.Max != nil
	if hasCorners == (len(bc.Points) > 0) {
		return Box{}, fmt.Errorf("%w: give either min and max or points", ErrInvalidBox)
	}

	if hasCorners {
		lower, err := toVec2("min", bc.Min)
		if err != nil {
			return Box{}, err
		}
		upper, err := toVec2("max", bc.Max)
		if err != nil {
			return Box{}, err
		}
		return Box{Name: bc.Name, AABB: geometry.NewAABBFromCorners(lower, upper)}, nil
	}

	seen := make(map[uint64]struct{}, len(bc.Points))
	bb := geometry.NewAABB()
	for i, c := range bc.Points {
		p, err := toVec2(fmt.Sprintf("points[%d]", i), c)
		if err != nil {
			return Box{}, err
		}
		key := PointKey(p)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		bb.AddPoint(p)
	}
	return Box{Name: bc.Name, AABB: bb, Points: len(seen)}, nil
}
