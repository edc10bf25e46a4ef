// Package mathutil holds scalar helpers shared by the vector and geometry
// packages, and exact hexadecimal conversion of IEEE-754 values.
package mathutil

// Clamp returns v limited to [l, u].
func Clamp(v, l, u float32) float32 {
	if v < l {
		return l
	}
	if v > u {
		return u
	}
	return v
}

// ClampSet limits *v to [l, u] in place.
func ClampSet(v *float32, l, u float32) {
	if *v < l {
		*v = l
	} else if *v > u {
		*v = u
	}
}

func Sqr(v float32) float32 {
	return v * v
}
