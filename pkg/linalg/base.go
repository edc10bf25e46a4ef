// Package linalg implements fixed-arity float32 vectors.
//
// Vec2, Vec3 and Vec4 are array value types. Arity-agnostic behaviour (indexed
// access, dot products, clamping, classification and text rendering) lives in
// the unexported helpers of this file and operates on a slice view of the
// array, so every exported operation is bound to a concrete arity at compile
// time.
package linalg

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/zeusync/geomkit/pkg/mathutil"
)

var ErrIndexOutOfRange = errors.New("vector index out of range")

// PrintFormat selects how a vector is rendered as text.
type PrintFormat uint8

const (
	// RowVector renders "[v0, v1, ...]".
	RowVector PrintFormat = iota
	// ColumnVector renders one "[v]" line per component.
	ColumnVector
)

func (f PrintFormat) String() string {
	switch f {
	case RowVector:
		return "row"
	case ColumnVector:
		return "column"
	default:
		return "unknown"
	}
}

// ParsePrintFormat accepts "row" or "column".
func ParsePrintFormat(s string) (PrintFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "row":
		return RowVector, nil
	case "column", "col":
		return ColumnVector, nil
	default:
		return RowVector, fmt.Errorf("unknown print format %q", s)
	}
}

func get(v []float32, i int) (float32, error) {
	if i < 0 || i >= len(v) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(v))
	}
	return v[i], nil
}

func set(v []float32, i int, value float32) error {
	if i < 0 || i >= len(v) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(v))
	}
	v[i] = value
	return nil
}

func setZero(v []float32) {
	for i := range v {
		v[i] = 0
	}
}

func clamp(v []float32, lower, upper float32) {
	for i := range v {
		mathutil.ClampSet(&v[i], lower, upper)
	}
}

// dot, distanceSquared and distance expect len(a) == len(b). Callers are the
// typed wrappers below, where the arity is fixed by the array type.
func dot(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func distanceSquared(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func distance(a, b []float32) float32 {
	return float32(math.Sqrt(float64(distanceSquared(a, b))))
}

func lengthSquared(v []float32) float32 {
	return dot(v, v)
}

func length(v []float32) float32 {
	return float32(math.Sqrt(float64(lengthSquared(v))))
}

func isAnyNaN(v []float32) bool {
	for _, c := range v {
		if c != c {
			return true
		}
	}
	return false
}

func isAnyInf(v []float32, sign int) bool {
	for _, c := range v {
		if math.IsInf(float64(c), sign) {
			return true
		}
	}
	return false
}

func formatComponent(c float32) string {
	return strconv.FormatFloat(float64(c), 'g', -1, 32)
}

func format(v []float32, f PrintFormat) string {
	if f == ColumnVector {
		return columnString(v)
	}
	return rowString(v)
}

func rowString(v []float32) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, c := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatComponent(c))
	}
	sb.WriteByte(']')
	return sb.String()
}

func columnString(v []float32) string {
	values := make([]string, len(v))
	width := 0
	for i, c := range v {
		values[i] = formatComponent(c)
		width = max(width, len(values[i]))
	}

	var sb strings.Builder
	for i, s := range values {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		sb.WriteString(s)
		sb.WriteString(strings.Repeat(" ", width-len(s)))
		sb.WriteByte(']')
	}
	return sb.String()
}
