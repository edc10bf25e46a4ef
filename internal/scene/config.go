// Package scene loads geometry scenes from JSON or YAML and evaluates the
// queries they declare against the vector and bounding box kernel.
package scene

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/geomkit/pkg/linalg"
)

// Config describes a scene in JSON or YAML.
type Config struct {
	Name    string        `json:"name" yaml:"name"`
	Boxes   []BoxConfig   `json:"boxes" yaml:"boxes"`
	Queries []QueryConfig `json:"queries" yaml:"queries"`
}

// BoxConfig declares a box either by its corners or as the hull of a point list.
type BoxConfig struct {
	Name   string      `json:"name" yaml:"name"`
	Min    []float32   `json:"min,omitempty" yaml:"min,omitempty"`
	Max    []float32   `json:"max,omitempty" yaml:"max,omitempty"`
	Points [][]float32 `json:"points,omitempty" yaml:"points,omitempty"`
}

type QueryConfig struct {
	ID       string      `json:"id,omitempty" yaml:"id,omitempty"`
	Kind     string      `json:"kind" yaml:"kind"`
	Box      string      `json:"box,omitempty" yaml:"box,omitempty"`
	Other    string      `json:"other,omitempty" yaml:"other,omitempty"`
	Point    []float32   `json:"point,omitempty" yaml:"point,omitempty"`
	Radius   float32     `json:"radius,omitempty" yaml:"radius,omitempty"`
	Amount   float32     `json:"amount,omitempty" yaml:"amount,omitempty"`
	Offset   []float32   `json:"offset,omitempty" yaml:"offset,omitempty"`
	Vertices [][]float32 `json:"vertices,omitempty" yaml:"vertices,omitempty"`
	Coords   []float32   `json:"coords,omitempty" yaml:"coords,omitempty"`
}

// LoadJSON loads config from JSON reader.
func LoadJSON(r io.Reader) (*Config, error) {
	var c Config
	dec := json.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode scene json: %w", err)
	}
	return &c, nil
}

// LoadYAML loads config from YAML reader.
func LoadYAML(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode scene yaml: %w", err)
	}
	return &c, nil
}

func toVec2(field string, c []float32) (linalg.Vec2, error) {
	if len(c) != 2 {
		return linalg.Vec2{}, fmt.Errorf("%w: %s has %d components, want 2", ErrInvalidVector, field, len(c))
	}
	return linalg.Vec2{c[0], c[1]}, nil
}
