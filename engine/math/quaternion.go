package math

import (
	"github.com/chewxy/math32"
)

/** @brief A quaternion, used to represent rotational orientation. */
type Quaternion struct {
	X float32
	Y float32
	Z float32
	W float32
}

func NewQuatIdentity() Quaternion {
	return Quaternion{0.0, 0.0, 0.0, 1.0}
}

/**
 * @brief Creates a quaternion from the given axis and angle. The axis is
 * normalized first, so it does not need unit length.
 *
 * @param axis The axis of rotation.
 * @param angle The angle of rotation in radians.
 * @return A new quaternion.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float32) Quaternion {
	axis.Normalize()

	halfAngle := angle * 0.5
	sinHalfAngle := math32.Sin(halfAngle)

	return Quaternion{
		X: axis.X * sinHalfAngle,
		Y: axis.Y * sinHalfAngle,
		Z: axis.Z * sinHalfAngle,
		W: math32.Cos(halfAngle),
	}
}

/**
 * @brief Creates a quaternion from Euler angles, applied in the order
 * roll (z), then pitch (x), then yaw (y). All angles are in radians.
 */
func NewQuatFromEuler(pitch, yaw, roll float32) Quaternion {
	halfPitch := pitch * 0.5
	halfYaw := yaw * 0.5
	halfRoll := roll * 0.5

	sp := math32.Sin(halfPitch)
	cp := math32.Cos(halfPitch)
	sy := math32.Sin(halfYaw)
	cy := math32.Cos(halfYaw)
	sr := math32.Sin(halfRoll)
	cr := math32.Cos(halfRoll)

	return Quaternion{
		X: cy*sp*cr + sy*cp*sr,
		Y: sy*cp*cr - cy*sp*sr,
		Z: cy*cp*sr - sy*sp*cr,
		W: cy*cp*cr + sy*sp*sr,
	}
}

// SetRotate overwrites the quaternion with an axis-angle rotation.
func (q *Quaternion) SetRotate(axis Vec3, angle float32) {
	*q = NewQuatFromAxisAngle(axis, angle)
}

func (q Quaternion) Norm() float32 {
	return math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

/**
 * @brief Normalizes the quaternion in place. A no-op when the squared norm
 * is exactly 1 or the norm is too small to divide by.
 */
func (q *Quaternion) Normalize() {
	n := q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
	// Already normalized
	if n == 1.0 {
		return
	}

	n = math32.Sqrt(n)
	if n < K_FLOAT_SMALL {
		return
	}

	n = 1.0 / n
	q.X *= n
	q.Y *= n
	q.Z *= n
	q.W *= n
}

func (q Quaternion) Normalized() Quaternion {
	q.Normalize()
	return q
}

func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

/**
 * @brief Inverts the quaternion in place: the conjugate divided by the
 * squared norm. Returns false, leaving the value untouched, when the norm is
 * too close to zero. Already-unit quaternions take the cheap conjugate path.
 */
func (q *Quaternion) Invert() bool {
	n := q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
	if n == 1.0 {
		q.X = -q.X
		q.Y = -q.Y
		q.Z = -q.Z
		return true
	}

	// Too close to zero
	if n <= K_FLOAT_SMALL {
		return false
	}

	n = 1.0 / n
	q.X = -q.X * n
	q.Y = -q.Y * n
	q.Z = -q.Z * n
	q.W = q.W * n
	return true
}

func (q Quaternion) Inverted() (Quaternion, bool) {
	ok := q.Invert()
	return q, ok
}

/**
 * @brief Multiplies q by other (q * other): the rotation that applies other
 * first, then q.
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

func (q *Quaternion) Multiply(other Quaternion) {
	*q = q.Mul(other)
}

func (q Quaternion) MulScalar(scalar float32) Quaternion {
	return Quaternion{q.X * scalar, q.Y * scalar, q.Z * scalar, q.W * scalar}
}

func (q Quaternion) DivScalar(scalar float32) Quaternion {
	return Quaternion{q.X / scalar, q.Y / scalar, q.Z / scalar, q.W / scalar}
}

func (q Quaternion) Add(other Quaternion) Quaternion {
	return Quaternion{q.X + other.X, q.Y + other.Y, q.Z + other.Z, q.W + other.W}
}

func (q Quaternion) Sub(other Quaternion) Quaternion {
	return Quaternion{q.X - other.X, q.Y - other.Y, q.Z - other.Z, q.W - other.W}
}

// Negate flips all four components. The negated quaternion represents the
// same rotation.
func (q *Quaternion) Negate() {
	q.X = -q.X
	q.Y = -q.Y
	q.Z = -q.Z
	q.W = -q.W
}

func (q Quaternion) Negated() Quaternion {
	q.Negate()
	return q
}

func (q Quaternion) Dot(other Quaternion) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

/**
 * @brief Rotates a vector by the quaternion without building a matrix,
 * using t = 2 * (q.xyz x v), v' = v + w*t + (q.xyz x t). The quaternion is
 * expected to be unit length.
 */
func (q Quaternion) RotateVector(v Vec3) Vec3 {
	qv := Vec3{q.X, q.Y, q.Z}
	t := qv.Cross(v).MulScalar(2.0)
	return v.Add(t.MulScalar(q.W)).Add(qv.Cross(t))
}

/**
 * @brief Extracts the axis and angle of the rotation. The quaternion is
 * normalized first; when the rotation is near identity the xyz part is too
 * small to normalize and is returned as-is, with an angle near zero.
 */
func (q Quaternion) GetRotation() (Vec3, float32) {
	q.Normalize()

	axis := Vec3{q.X, q.Y, q.Z}
	axis.Normalize()

	angle := 2.0 * math32.Acos(Clamp(q.W, -1.0, 1.0))
	return axis, angle
}

// GetEuler returns the pitch (x), yaw (y) and roll (z) angles in radians.
// Pitch saturates at +-pi/2 at the poles.
func (q Quaternion) GetEuler() Vec3 {
	sinPitch := 2.0 * (q.W*q.X - q.Y*q.Z)
	var pitch float32
	if math32.Abs(sinPitch) >= 1.0 {
		pitch = math32.Copysign(K_HALF_PI, sinPitch)
	} else {
		pitch = math32.Asin(sinPitch)
	}

	yaw := math32.Atan2(2.0*(q.W*q.Y+q.X*q.Z), 1.0-2.0*(q.X*q.X+q.Y*q.Y))
	roll := math32.Atan2(2.0*(q.W*q.Z+q.X*q.Y), 1.0-2.0*(q.X*q.X+q.Z*q.Z))

	return Vec3{pitch, yaw, roll}
}

// EulerAngleX returns the pitch component alone.
func (q Quaternion) EulerAngleX() float32 {
	return q.GetEuler().X
}

// EulerAngleY returns the yaw component alone.
func (q Quaternion) EulerAngleY() float32 {
	return q.GetEuler().Y
}

// EulerAngleZ returns the roll component alone.
func (q Quaternion) EulerAngleZ() float32 {
	return q.GetEuler().Z
}

func (q Quaternion) Right() Vec3 {
	return q.RotateVector(NewVec3Right())
}

func (q Quaternion) Up() Vec3 {
	return q.RotateVector(NewVec3Up())
}

func (q Quaternion) Forward() Vec3 {
	return q.RotateVector(NewVec3Forward())
}

/**
 * @brief Linear interpolation between two quaternions; the result is
 * normalized. Cheap and adequate for small angular steps, unlike a true
 * spherical interpolation.
 */
func (q Quaternion) Lerp(other Quaternion, t float32) Quaternion {
	out := Quaternion{
		X: Lerp(q.X, other.X, t),
		Y: Lerp(q.Y, other.Y, t),
		Z: Lerp(q.Z, other.Z, t),
		W: Lerp(q.W, other.W, t),
	}
	out.Normalize()
	return out
}

/**
 * @brief Spherical linear interpolation between two quaternions, following
 * the shortest arc.
 */
func (q Quaternion) Slerp(other Quaternion, percentage float32) Quaternion {
	v0 := q.Normalized()
	v1 := other.Normalized()

	// Compute the cosine of the angle between the two vectors.
	dot := v0.Dot(v1)

	// If the dot product is negative, slerp won't take
	// the shorter path. Note that v1 and -v1 are equivalent when
	// the negation is applied to all four components. Fix by
	// reversing one quaternion.
	if dot < 0.0 {
		v1.X = -v1.X
		v1.Y = -v1.Y
		v1.Z = -v1.Z
		v1.W = -v1.W
		dot = -dot
	}

	const DOT_THRESHOLD float32 = 0.9995
	if dot > DOT_THRESHOLD {
		// If the inputs are too close for comfort, linearly interpolate
		// and normalize the result.
		return v0.Lerp(v1, percentage)
	}

	// Since dot is in range [0, DOT_THRESHOLD], acos is safe
	theta0 := math32.Acos(dot)
	theta := theta0 * percentage
	sinTheta := math32.Sin(theta)
	sinTheta0 := math32.Sin(theta0)

	s0 := math32.Cos(theta) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	return Quaternion{
		X: v0.X*s0 + v1.X*s1,
		Y: v0.Y*s0 + v1.Y*s1,
		Z: v0.Z*s0 + v1.Z*s1,
		W: v0.W*s0 + v1.W*s1,
	}
}

/**
 * @brief Converts the quaternion to an equivalent rotation matrix. The
 * quaternion is normalized first.
 */
func (q Quaternion) ToMat4() Mat4 {
	q.Normalize()

	out_matrix := NewMat4Identity()

	out_matrix.Data[0] = 1.0 - 2.0*q.Y*q.Y - 2.0*q.Z*q.Z
	out_matrix.Data[1] = 2.0*q.X*q.Y + 2.0*q.Z*q.W
	out_matrix.Data[2] = 2.0*q.X*q.Z - 2.0*q.Y*q.W

	out_matrix.Data[4] = 2.0*q.X*q.Y - 2.0*q.Z*q.W
	out_matrix.Data[5] = 1.0 - 2.0*q.X*q.X - 2.0*q.Z*q.Z
	out_matrix.Data[6] = 2.0*q.Y*q.Z + 2.0*q.X*q.W

	out_matrix.Data[8] = 2.0*q.X*q.Z + 2.0*q.Y*q.W
	out_matrix.Data[9] = 2.0*q.Y*q.Z - 2.0*q.X*q.W
	out_matrix.Data[10] = 1.0 - 2.0*q.X*q.X - 2.0*q.Y*q.Y

	return out_matrix
}

func (q Quaternion) Compare(other Quaternion, tolerance float32) bool {
	return math32.Abs(q.X-other.X) <= tolerance &&
		math32.Abs(q.Y-other.Y) <= tolerance &&
		math32.Abs(q.Z-other.Z) <= tolerance &&
		math32.Abs(q.W-other.W) <= tolerance
}
