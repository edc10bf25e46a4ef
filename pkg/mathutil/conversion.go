package mathutil

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var ErrInvalidHex = errors.New("invalid hexadecimal float")

// Float32ToHex returns the big-endian bit pattern of value as 8 upper-case hex digits.
func Float32ToHex(value float32) string {
	return fmt.Sprintf("%08X", math.Float32bits(value))
}

// HexToFloat32 is the inverse of Float32ToHex.
func HexToFloat32(s string) (float32, error) {
	bits, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidHex, s, err)
	}
	return math.Float32frombits(uint32(bits)), nil
}

// Float64ToHex returns the big-endian bit pattern of value as 16 upper-case hex digits.
func Float64ToHex(value float64) string {
	return fmt.Sprintf("%016X", math.Float64bits(value))
}

func HexToFloat64(s string) (float64, error) {
	bits, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidHex, s, err)
	}
	return math.Float64frombits(bits), nil
}
