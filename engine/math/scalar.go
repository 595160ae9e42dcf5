package math

import (
	"golang.org/x/exp/constraints"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_TAU float32 = 6.28318530717958647692
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float32 = 0.5 * K_PI
	/** @brief An approximation of the square root of 2. */
	K_SQRT_TWO float32 = 1.41421356237309504880
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float32 = 180.0 / K_PI
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 1.0 */
	K_FLOAT_EPSILON float32 = 1.19209290e-07
	/** @brief Smallest magnitude treated as a meaningful quantity. */
	K_FLOAT_SMALL float32 = 1.0e-37
)

// Lerp returns the linear interpolation between v0 and v1 at t.
func Lerp(v0, v1, t float32) float32 {
	return (1.0-t)*v0 + t*v1
}

// SmoothStep interpolates between a and b with the 3t²-2t³ remapping of t.
func SmoothStep(a, b, t float32) float32 {
	remap := t * t * (3 - 2*t)
	return Lerp(a, b, remap)
}

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Sgn returns -1, 0 or 1 depending on the sign of x.
func Sgn[T constraints.Signed | constraints.Float](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// IsPOT reports whether x is a power of two.
func IsPOT(x uint32) bool {
	return (x != 0) && (((x - 1) & x) == 0)
}

// NextPOT returns the smallest power of two that is >= x.
func NextPOT(x uint32) uint32 {
	x = x - 1
	x = x | (x >> 1)
	x = x | (x >> 2)
	x = x | (x >> 4)
	x = x | (x >> 8)
	x = x | (x >> 16)
	return x + 1
}

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadToDeg(radians float32) float32 {
	return radians * K_RAD2DEG_MULTIPLIER
}
