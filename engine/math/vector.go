package math

import (
	"github.com/chewxy/math32"
)

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

// ------------------------------------------
// Vector 2
// ------------------------------------------

func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func NewVec2Zero() Vec2 {
	return Vec2{0.0, 0.0}
}

func NewVec2One() Vec2 {
	return Vec2{1.0, 1.0}
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

func (v Vec2) MulScalar(scalar float32) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{v.X / other.X, v.Y / other.Y}
}

func (v Vec2) Negated() Vec2 {
	return Vec2{-v.X, -v.Y}
}

func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

/**
 * @brief Normalizes the vector in place to unit length. Left unchanged when
 * already normalized or when the length is too close to zero.
 */
func (v *Vec2) Normalize() {
	n := v.LengthSquared()
	if n == 1.0 {
		return
	}
	n = math32.Sqrt(n)
	if n < K_FLOAT_EPSILON {
		return
	}
	n = 1.0 / n
	v.X *= n
	v.Y *= n
}

// Normalized returns a normalized copy of the vector, subject to the same
// degenerate-input rules as Normalize.
func (v Vec2) Normalized() Vec2 {
	v.Normalize()
	return v
}

func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vec2) Compare(other Vec2, tolerance float32) bool {
	if math32.Abs(v.X-other.X) > tolerance {
		return false
	}
	if math32.Abs(v.Y-other.Y) > tolerance {
		return false
	}
	return true
}

func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// ------------------------------------------
// Vector 3
// ------------------------------------------

func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

func NewVec3One() Vec3 {
	return Vec3{1.0, 1.0, 1.0}
}

func NewVec3Up() Vec3 {
	return Vec3{0.0, 1.0, 0.0}
}

func NewVec3Down() Vec3 {
	return Vec3{0.0, -1.0, 0.0}
}

func NewVec3Left() Vec3 {
	return Vec3{-1.0, 0.0, 0.0}
}

func NewVec3Right() Vec3 {
	return Vec3{1.0, 0.0, 0.0}
}

func NewVec3Forward() Vec3 {
	return Vec3{0.0, 0.0, -1.0}
}

func NewVec3Back() Vec3 {
	return Vec3{0.0, 0.0, 1.0}
}

func NewVec3FromVec4(vector Vec4) Vec3 {
	return Vec3{vector.X, vector.Y, vector.Z}
}

func (v Vec3) ToVec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

func (v Vec3) MulScalar(scalar float32) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

func (v Vec3) Negated() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (v Vec3) IsZero() bool {
	return v.X == 0.0 && v.Y == 0.0 && v.Z == 0.0
}

func (v Vec3) IsOne() bool {
	return v.X == 1.0 && v.Y == 1.0 && v.Z == 1.0
}

func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

/**
 * @brief Normalizes the vector in place to unit length. A no-op when the
 * squared length is exactly 1 or when the length is below epsilon, so callers
 * must not assume a unit result for near-zero inputs.
 */
func (v *Vec3) Normalize() {
	n := v.LengthSquared()
	if n == 1.0 {
		return
	}
	n = math32.Sqrt(n)
	if n < K_FLOAT_EPSILON {
		return
	}
	n = 1.0 / n
	v.X *= n
	v.Y *= n
	v.Z *= n
}

// Normalized returns a normalized copy of the vector, subject to the same
// degenerate-input rules as Normalize.
func (v Vec3) Normalized() Vec3 {
	v.Normalize()
	return v
}

func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

/**
 * @brief Calculates and returns the cross product of the supplied vectors.
 * The cross product is a new vector which is orthogonal to both provided vectors.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

// Angle returns the angle between the two vectors in radians.
func (v Vec3) Angle(other Vec3) float32 {
	c := v.Cross(other)
	return math32.Atan2(c.Length()+K_FLOAT_SMALL, v.Dot(other))
}

/**
 * @brief Clamps every component to the corresponding [min, max] range.
 * Requires min <= max element-wise.
 */
func (v *Vec3) Clamp(min, max Vec3) {
	v.X = Clamp(v.X, min.X, max.X)
	v.Y = Clamp(v.Y, min.Y, max.Y)
	v.Z = Clamp(v.Z, min.Z, max.Z)
}

func (v Vec3) Clamped(min, max Vec3) Vec3 {
	v.Clamp(min, max)
	return v
}

/**
 * @brief Moves the vector towards target by the exponential response factor
 * dt/(dt+responseTime). A no-op when dt <= 0.
 */
func (v *Vec3) Smooth(target Vec3, elapsedTime, responseTime float32) {
	if elapsedTime > 0 {
		*v = v.Add(target.Sub(*v).MulScalar(elapsedTime / (elapsedTime + responseTime)))
	}
}

// Min returns the smallest component.
func (v Vec3) Min() float32 {
	return math32.Min(v.X, math32.Min(v.Y, v.Z))
}

// Max returns the largest component.
func (v Vec3) Max() float32 {
	return math32.Max(v.X, math32.Max(v.Y, v.Z))
}

func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	if math32.Abs(v.X-other.X) > tolerance {
		return false
	}
	if math32.Abs(v.Y-other.Y) > tolerance {
		return false
	}
	if math32.Abs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

func (v Vec3) DistanceSquared(other Vec3) float32 {
	return v.Sub(other).LengthSquared()
}

func (v Vec3) Lerp(other Vec3, t float32) Vec3 {
	return Vec3{
		Lerp(v.X, other.X, t),
		Lerp(v.Y, other.Y, t),
		Lerp(v.Z, other.Z, t)}
}

// ------------------------------------------
// Vector 4
// ------------------------------------------

func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

func NewVec4Zero() Vec4 {
	return Vec4{0.0, 0.0, 0.0, 0.0}
}

func NewVec4One() Vec4 {
	return Vec4{1.0, 1.0, 1.0, 1.0}
}

func NewVec4FromVec3(v Vec3, w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

func (v Vec4) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

func (v Vec4) Mul(other Vec4) Vec4 {
	return Vec4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

func (v Vec4) MulScalar(scalar float32) Vec4 {
	return Vec4{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

func (v Vec4) Div(other Vec4) Vec4 {
	return Vec4{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

func (v Vec4) Negated() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

func (v Vec4) IsZero() bool {
	return v.X == 0.0 && v.Y == 0.0 && v.Z == 0.0 && v.W == 0.0
}

func (v Vec4) IsOne() bool {
	return v.X == 1.0 && v.Y == 1.0 && v.Z == 1.0 && v.W == 1.0
}

func (v Vec4) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

func (v Vec4) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

func (v *Vec4) Normalize() {
	n := v.LengthSquared()
	if n == 1.0 {
		return
	}
	n = math32.Sqrt(n)
	if n < K_FLOAT_EPSILON {
		return
	}
	n = 1.0 / n
	v.X *= n
	v.Y *= n
	v.Z *= n
	v.W *= n
}

func (v Vec4) Normalized() Vec4 {
	v.Normalize()
	return v
}

func (v Vec4) Dot(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

func (v *Vec4) Clamp(min, max Vec4) {
	v.X = Clamp(v.X, min.X, max.X)
	v.Y = Clamp(v.Y, min.Y, max.Y)
	v.Z = Clamp(v.Z, min.Z, max.Z)
	v.W = Clamp(v.W, min.W, max.W)
}

func (v Vec4) Clamped(min, max Vec4) Vec4 {
	v.Clamp(min, max)
	return v
}

func (v *Vec4) Smooth(target Vec4, elapsedTime, responseTime float32) {
	if elapsedTime > 0 {
		*v = v.Add(target.Sub(*v).MulScalar(elapsedTime / (elapsedTime + responseTime)))
	}
}

func (v Vec4) Min() float32 {
	return math32.Min(math32.Min(v.X, v.Y), math32.Min(v.Z, v.W))
}

func (v Vec4) Max() float32 {
	return math32.Max(math32.Max(v.X, v.Y), math32.Max(v.Z, v.W))
}

func (v Vec4) Compare(other Vec4, tolerance float32) bool {
	if math32.Abs(v.X-other.X) > tolerance {
		return false
	}
	if math32.Abs(v.Y-other.Y) > tolerance {
		return false
	}
	if math32.Abs(v.Z-other.Z) > tolerance {
		return false
	}
	if math32.Abs(v.W-other.W) > tolerance {
		return false
	}
	return true
}

func (v Vec4) Distance(other Vec4) float32 {
	return v.Sub(other).Length()
}

func (v Vec4) DistanceSquared(other Vec4) float32 {
	return v.Sub(other).LengthSquared()
}
