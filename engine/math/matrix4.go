package math

import (
	"github.com/chewxy/math32"
)

/** @brief a 4x4 matrix, stored column-major, used to represent object transformations. */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

func NewMat4Zero() Mat4 {
	return Mat4{}
}

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[5] = 1.0
	out_matrix.Data[10] = 1.0
	out_matrix.Data[15] = 1.0
	return out_matrix
}

// NewMat4 builds a matrix from row-major arguments (m11 is row 1 column 1),
// stored column-major.
func NewMat4(m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 float32) Mat4 {
	out_matrix := Mat4{}
	out_matrix.Set(m11, m12, m13, m14,
		m21, m22, m23, m24,
		m31, m32, m33, m34,
		m41, m42, m43, m44)
	return out_matrix
}

func (mt *Mat4) Set(m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 float32) {
	mt.Data[0] = m11
	mt.Data[1] = m21
	mt.Data[2] = m31
	mt.Data[3] = m41
	mt.Data[4] = m12
	mt.Data[5] = m22
	mt.Data[6] = m32
	mt.Data[7] = m42
	mt.Data[8] = m13
	mt.Data[9] = m23
	mt.Data[10] = m33
	mt.Data[11] = m43
	mt.Data[12] = m14
	mt.Data[13] = m24
	mt.Data[14] = m34
	mt.Data[15] = m44
}

func (mt *Mat4) SetIdentity() {
	*mt = NewMat4Identity()
}

func (mt *Mat4) SetZero() {
	*mt = Mat4{}
}

/**
 * @brief Creates and returns a look-at matrix, or a matrix looking
 * at target from the perspective of position.
 *
 * @param eye The position of the matrix.
 * @param target The position to "look at".
 * @param up The up vector.
 * @return A matrix looking at target from the perspective of eye.
 */
func NewMat4LookAt(eye, target, up Vec3) Mat4 {
	up.Normalize()

	zaxis := target.Sub(eye)
	zaxis.Normalize()

	xaxis := up.Cross(zaxis)
	xaxis.Normalize()

	yaxis := zaxis.Cross(xaxis)
	yaxis.Normalize()

	out_matrix := Mat4{}
	out_matrix.Data[0] = xaxis.X
	out_matrix.Data[1] = yaxis.X
	out_matrix.Data[2] = zaxis.X
	out_matrix.Data[3] = 0.0

	out_matrix.Data[4] = xaxis.Y
	out_matrix.Data[5] = yaxis.Y
	out_matrix.Data[6] = zaxis.Y
	out_matrix.Data[7] = 0.0

	out_matrix.Data[8] = xaxis.Z
	out_matrix.Data[9] = yaxis.Z
	out_matrix.Data[10] = zaxis.Z
	out_matrix.Data[11] = 0.0

	out_matrix.Data[12] = xaxis.Dot(eye.Negated())
	out_matrix.Data[13] = yaxis.Dot(eye.Negated())
	out_matrix.Data[14] = zaxis.Dot(eye.Negated())
	out_matrix.Data[15] = 1.0

	return out_matrix
}

/**
 * @brief Overwrites the matrix with a perspective projection mapping the near
 * plane to depth 0 and the far plane to depth 1. When fov/2 is a multiple of
 * pi/2 the field of view is invalid and the matrix is left unchanged; this is
 * a defined degenerate case, not an error.
 *
 * @param fieldOfView The vertical field of view in radians.
 * @param aspectRatio The aspect ratio.
 * @param zNearPlane The near clipping plane distance.
 * @param zFarPlane The far clipping plane distance.
 */
func (mt *Mat4) SetPerspective(fieldOfView, aspectRatio, zNearPlane, zFarPlane float32) {
	theta := fieldOfView * 0.5
	if math32.Abs(math32.Mod(theta, K_HALF_PI)) < K_FLOAT_EPSILON {
		// invalid field of view value
		return
	}
	divisor := math32.Tan(theta)
	factor := 1.0 / divisor

	mt.SetZero()

	mt.Data[0] = (1.0 / aspectRatio) * factor
	mt.Data[5] = factor
	mt.Data[10] = zFarPlane / (zFarPlane - zNearPlane)
	mt.Data[11] = 1.0
	mt.Data[14] = -zNearPlane * zFarPlane / (zFarPlane - zNearPlane)
}

// NewMat4Perspective returns a perspective projection matrix, or identity when
// the field of view is invalid.
func NewMat4Perspective(fieldOfView, aspectRatio, zNearPlane, zFarPlane float32) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.SetPerspective(fieldOfView, aspectRatio, zNearPlane, zFarPlane)
	return out_matrix
}

/**
 * @brief Creates and returns an orthographic projection matrix. Typically used to
 * render flat or 2D scenes.
 */
func NewMat4OrthographicOffCenter(left, right, bottom, top, zNearPlane, zFarPlane float32) Mat4 {
	out_matrix := Mat4{}

	out_matrix.Data[0] = 2.0 / (right - left)
	out_matrix.Data[5] = 2.0 / (top - bottom)
	out_matrix.Data[10] = 1.0 / (zFarPlane - zNearPlane)
	out_matrix.Data[12] = (left + right) / (left - right)
	out_matrix.Data[13] = (bottom + top) / (bottom - top)
	out_matrix.Data[14] = zNearPlane / (zNearPlane - zFarPlane)
	out_matrix.Data[15] = 1.0
	return out_matrix
}

func NewMat4OrthographicFromSize(width, height, zNearPlane, zFarPlane float32) Mat4 {
	halfWidth := width / 2.0
	halfHeight := height / 2.0
	return NewMat4OrthographicOffCenter(-halfWidth, halfWidth,
		-halfHeight, halfHeight,
		zNearPlane, zFarPlane)
}

/**
 * @brief Creates a billboard matrix: a rotation that keeps an object at
 * objectPosition facing cameraPosition. When the object and camera are too
 * close together for a meaningful direction, cameraForward is used as a safe
 * fallback target instead.
 */
func NewMat4Billboard(objectPosition, cameraPosition, cameraUp, cameraForward Vec3) Mat4 {
	delta := cameraPosition.Sub(objectPosition)
	isSufficientDelta := delta.LengthSquared() > K_FLOAT_EPSILON

	out_matrix := NewMat4Identity()
	out_matrix.Data[3] = objectPosition.X
	out_matrix.Data[7] = objectPosition.Y
	out_matrix.Data[11] = objectPosition.Z

	target := cameraPosition
	if !isSufficientDelta {
		target = objectPosition.Sub(cameraForward)
	}

	// A billboard is the inverse of a lookAt rotation
	lookAt := NewMat4LookAt(objectPosition, target, cameraUp)
	out_matrix.Data[0] = lookAt.Data[0]
	out_matrix.Data[1] = lookAt.Data[4]
	out_matrix.Data[2] = lookAt.Data[8]
	out_matrix.Data[4] = lookAt.Data[1]
	out_matrix.Data[5] = lookAt.Data[5]
	out_matrix.Data[6] = lookAt.Data[9]
	out_matrix.Data[8] = lookAt.Data[2]
	out_matrix.Data[9] = lookAt.Data[6]
	out_matrix.Data[10] = lookAt.Data[10]
	return out_matrix
}

/**
 * @brief Returns a scale matrix using the provided scale.
 */
func NewMat4Scale(scale Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = scale.X
	out_matrix.Data[5] = scale.Y
	out_matrix.Data[10] = scale.Z
	return out_matrix
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[12] = position.X
	out_matrix.Data[13] = position.Y
	out_matrix.Data[14] = position.Z
	return out_matrix
}

/**
 * @brief Creates a rotation matrix around an arbitrary axis. The axis does not
 * need to be normalized; near-zero axes are used as-is.
 */
func NewMat4Rotation(axis Vec3, angle float32) Mat4 {
	x := axis.X
	y := axis.Y
	z := axis.Z

	// Make sure the input axis is normalized
	n := x*x + y*y + z*z
	if n != 1.0 {
		n = math32.Sqrt(n)
		// Prevent divide too close to zero
		if n >= K_FLOAT_EPSILON {
			n = 1.0 / n
			x *= n
			y *= n
			z *= n
		}
	}

	c := math32.Cos(angle)
	s := math32.Sin(angle)

	t := 1.0 - c
	tx := t * x
	ty := t * y
	tz := t * z
	txy := tx * y
	txz := tx * z
	tyz := ty * z
	sx := s * x
	sy := s * y
	sz := s * z

	out_matrix := Mat4{}
	out_matrix.Data[0] = c + tx*x
	out_matrix.Data[4] = txy - sz
	out_matrix.Data[8] = txz + sy

	out_matrix.Data[1] = txy + sz
	out_matrix.Data[5] = c + ty*y
	out_matrix.Data[9] = tyz - sx

	out_matrix.Data[2] = txz - sy
	out_matrix.Data[6] = tyz + sx
	out_matrix.Data[10] = c + tz*z

	out_matrix.Data[15] = 1.0
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided x angle.
 */
func NewMat4RotationX(angle float32) Mat4 {
	out_matrix := NewMat4Identity()
	c := math32.Cos(angle)
	s := math32.Sin(angle)

	out_matrix.Data[5] = c
	out_matrix.Data[9] = -s
	out_matrix.Data[6] = s
	out_matrix.Data[10] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided y angle.
 */
func NewMat4RotationY(angle float32) Mat4 {
	out_matrix := NewMat4Identity()
	c := math32.Cos(angle)
	s := math32.Sin(angle)

	out_matrix.Data[0] = c
	out_matrix.Data[8] = s
	out_matrix.Data[2] = -s
	out_matrix.Data[10] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided z angle.
 */
func NewMat4RotationZ(angle float32) Mat4 {
	out_matrix := NewMat4Identity()
	c := math32.Cos(angle)
	s := math32.Sin(angle)

	out_matrix.Data[0] = c
	out_matrix.Data[4] = -s
	out_matrix.Data[1] = s
	out_matrix.Data[5] = c
	return out_matrix
}

func (mt Mat4) Add(other Mat4) Mat4 {
	out_matrix := Mat4{}
	for i := 0; i < 16; i++ {
		out_matrix.Data[i] = mt.Data[i] + other.Data[i]
	}
	return out_matrix
}

func (mt Mat4) AddScalar(scalar float32) Mat4 {
	out_matrix := Mat4{}
	for i := 0; i < 16; i++ {
		out_matrix.Data[i] = mt.Data[i] + scalar
	}
	return out_matrix
}

func (mt Mat4) Sub(other Mat4) Mat4 {
	out_matrix := Mat4{}
	for i := 0; i < 16; i++ {
		out_matrix.Data[i] = mt.Data[i] - other.Data[i]
	}
	return out_matrix
}

func (mt Mat4) MulScalar(scalar float32) Mat4 {
	out_matrix := Mat4{}
	for i := 0; i < 16; i++ {
		out_matrix.Data[i] = mt.Data[i] * scalar
	}
	return out_matrix
}

/**
 * @brief Returns the result of multiplying mt and other (mt * other, standard
 * row-by-column composition; not commutative).
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	m1 := &mt.Data
	m2 := &other.Data
	out_matrix := Mat4{}
	o := &out_matrix.Data

	o[0] = m1[0]*m2[0] + m1[4]*m2[1] + m1[8]*m2[2] + m1[12]*m2[3]
	o[1] = m1[1]*m2[0] + m1[5]*m2[1] + m1[9]*m2[2] + m1[13]*m2[3]
	o[2] = m1[2]*m2[0] + m1[6]*m2[1] + m1[10]*m2[2] + m1[14]*m2[3]
	o[3] = m1[3]*m2[0] + m1[7]*m2[1] + m1[11]*m2[2] + m1[15]*m2[3]

	o[4] = m1[0]*m2[4] + m1[4]*m2[5] + m1[8]*m2[6] + m1[12]*m2[7]
	o[5] = m1[1]*m2[4] + m1[5]*m2[5] + m1[9]*m2[6] + m1[13]*m2[7]
	o[6] = m1[2]*m2[4] + m1[6]*m2[5] + m1[10]*m2[6] + m1[14]*m2[7]
	o[7] = m1[3]*m2[4] + m1[7]*m2[5] + m1[11]*m2[6] + m1[15]*m2[7]

	o[8] = m1[0]*m2[8] + m1[4]*m2[9] + m1[8]*m2[10] + m1[12]*m2[11]
	o[9] = m1[1]*m2[8] + m1[5]*m2[9] + m1[9]*m2[10] + m1[13]*m2[11]
	o[10] = m1[2]*m2[8] + m1[6]*m2[9] + m1[10]*m2[10] + m1[14]*m2[11]
	o[11] = m1[3]*m2[8] + m1[7]*m2[9] + m1[11]*m2[10] + m1[15]*m2[11]

	o[12] = m1[0]*m2[12] + m1[4]*m2[13] + m1[8]*m2[14] + m1[12]*m2[15]
	o[13] = m1[1]*m2[12] + m1[5]*m2[13] + m1[9]*m2[14] + m1[13]*m2[15]
	o[14] = m1[2]*m2[12] + m1[6]*m2[13] + m1[10]*m2[14] + m1[14]*m2[15]
	o[15] = m1[3]*m2[12] + m1[7]*m2[13] + m1[11]*m2[14] + m1[15]*m2[15]

	return out_matrix
}

// Multiply replaces the receiver with mt * other.
func (mt *Mat4) Multiply(other Mat4) {
	*mt = mt.Mul(other)
}

/**
 * @brief Computes the determinant through the 2x2-minor cofactor expansion:
 * six "a" minors from the top two rows, six "b" minors from the bottom two.
 */
func (mt Mat4) Determinant() float32 {
	m := &mt.Data

	a0 := m[0]*m[5] - m[1]*m[4]
	a1 := m[0]*m[6] - m[2]*m[4]
	a2 := m[0]*m[7] - m[3]*m[4]
	a3 := m[1]*m[6] - m[2]*m[5]
	a4 := m[1]*m[7] - m[3]*m[5]
	a5 := m[2]*m[7] - m[3]*m[6]
	b0 := m[8]*m[13] - m[9]*m[12]
	b1 := m[8]*m[14] - m[10]*m[12]
	b2 := m[8]*m[15] - m[11]*m[12]
	b3 := m[9]*m[14] - m[10]*m[13]
	b4 := m[9]*m[15] - m[11]*m[13]
	b5 := m[10]*m[15] - m[11]*m[14]

	return a0*b5 - a1*b4 + a2*b3 + a3*b2 - a4*b1 + a5*b0
}

/**
 * @brief Inverts the matrix in place. When the determinant is too close to
 * zero the matrix is left untouched and false is returned; callers that need
 * exactness must check Determinant first.
 */
func (mt *Mat4) Invert() bool {
	inverted, ok := mt.Inverted()
	if !ok {
		return false
	}
	*mt = inverted
	return true
}

// Inverted returns the inverse of the matrix. When the determinant is below
// epsilon the receiver is returned unchanged along with false.
func (mt Mat4) Inverted() (Mat4, bool) {
	m := &mt.Data

	a0 := m[0]*m[5] - m[1]*m[4]
	a1 := m[0]*m[6] - m[2]*m[4]
	a2 := m[0]*m[7] - m[3]*m[4]
	a3 := m[1]*m[6] - m[2]*m[5]
	a4 := m[1]*m[7] - m[3]*m[5]
	a5 := m[2]*m[7] - m[3]*m[6]
	b0 := m[8]*m[13] - m[9]*m[12]
	b1 := m[8]*m[14] - m[10]*m[12]
	b2 := m[8]*m[15] - m[11]*m[12]
	b3 := m[9]*m[14] - m[10]*m[13]
	b4 := m[9]*m[15] - m[11]*m[13]
	b5 := m[10]*m[15] - m[11]*m[14]

	det := a0*b5 - a1*b4 + a2*b3 + a3*b2 - a4*b1 + a5*b0

	// Close to zero, can't invert
	if math32.Abs(det) < K_FLOAT_EPSILON {
		return mt, false
	}

	inverse := Mat4{}
	o := &inverse.Data
	o[0] = m[5]*b5 - m[6]*b4 + m[7]*b3
	o[1] = -m[1]*b5 + m[2]*b4 - m[3]*b3
	o[2] = m[13]*a5 - m[14]*a4 + m[15]*a3
	o[3] = -m[9]*a5 + m[10]*a4 - m[11]*a3

	o[4] = -m[4]*b5 + m[6]*b2 - m[7]*b1
	o[5] = m[0]*b5 - m[2]*b2 + m[3]*b1
	o[6] = -m[12]*a5 + m[14]*a2 - m[15]*a1
	o[7] = m[8]*a5 - m[10]*a2 + m[11]*a1

	o[8] = m[4]*b4 - m[5]*b2 + m[7]*b0
	o[9] = -m[0]*b4 + m[1]*b2 - m[3]*b0
	o[10] = m[12]*a4 - m[13]*a2 + m[15]*a0
	o[11] = -m[8]*a4 + m[9]*a2 - m[11]*a0

	o[12] = -m[4]*b3 + m[5]*b1 - m[6]*b0
	o[13] = m[0]*b3 - m[1]*b1 + m[2]*b0
	o[14] = -m[12]*a3 + m[13]*a1 - m[14]*a0
	o[15] = m[8]*a3 - m[9]*a1 + m[10]*a0

	return inverse.MulScalar(1.0 / det), true
}

func (mt Mat4) IsIdentity() bool {
	return mt == NewMat4Identity()
}

func (mt *Mat4) Negate() {
	for i := 0; i < 16; i++ {
		mt.Data[i] = -mt.Data[i]
	}
}

func (mt Mat4) Negated() Mat4 {
	mt.Negate()
	return mt
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->columns).
 */
func (mt Mat4) Transposed() Mat4 {
	m := &mt.Data
	out_matrix := Mat4{}
	out_matrix.Data = [16]float32{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
	return out_matrix
}

func (mt *Mat4) Transpose() {
	*mt = mt.Transposed()
}

// Rotate composes a rotation about axis into the matrix (mt = mt * R).
func (mt *Mat4) Rotate(axis Vec3, angle float32) {
	mt.Multiply(NewMat4Rotation(axis, angle))
}

func (mt *Mat4) RotateX(angle float32) {
	mt.Multiply(NewMat4RotationX(angle))
}

func (mt *Mat4) RotateY(angle float32) {
	mt.Multiply(NewMat4RotationY(angle))
}

func (mt *Mat4) RotateZ(angle float32) {
	mt.Multiply(NewMat4RotationZ(angle))
}

// Scale composes a scale into the matrix (mt = mt * S).
func (mt *Mat4) Scale(s Vec3) {
	mt.Multiply(NewMat4Scale(s))
}

func (mt *Mat4) ScaleUniform(value float32) {
	mt.Scale(Vec3{value, value, value})
}

// Translate composes a translation into the matrix (mt = mt * T).
func (mt *Mat4) Translate(t Vec3) {
	mt.Multiply(NewMat4Translation(t))
}

/**
 * @brief Transforms the vector treating it as a homogeneous point (w = 1).
 */
func (mt Mat4) TransformPoint(point Vec3) Vec3 {
	t := mt.TransformVec4(Vec4{point.X, point.Y, point.Z, 1.0})
	return t.ToVec3()
}

/**
 * @brief Transforms the vector treating it as a direction (w = 0); the
 * translation part of the matrix is ignored.
 */
func (mt Mat4) TransformVector(vector Vec3) Vec3 {
	t := mt.TransformVec4(Vec4{vector.X, vector.Y, vector.Z, 0.0})
	return t.ToVec3()
}

func (mt Mat4) TransformVec4(vector Vec4) Vec4 {
	m := &mt.Data
	return Vec4{
		vector.X*m[0] + vector.Y*m[4] + vector.Z*m[8] + vector.W*m[12],
		vector.X*m[1] + vector.Y*m[5] + vector.Z*m[9] + vector.W*m[13],
		vector.X*m[2] + vector.Y*m[6] + vector.Z*m[10] + vector.W*m[14],
		vector.X*m[3] + vector.Y*m[7] + vector.Z*m[11] + vector.W*m[15],
	}
}

func (mt Mat4) GetTranslation() Vec3 {
	return Vec3{mt.Data[12], mt.Data[13], mt.Data[14]}
}

func (mt Mat4) GetScale() Vec3 {
	return Vec3{
		Vec3{mt.Data[0], mt.Data[1], mt.Data[2]}.Length(),
		Vec3{mt.Data[4], mt.Data[5], mt.Data[6]}.Length(),
		Vec3{mt.Data[8], mt.Data[9], mt.Data[10]}.Length(),
	}
}

/**
 * @brief Extracts the rotation as a quaternion using the trace method. The
 * scale is divided out first, so the matrix must have non-zero (and ideally
 * uniform) scale on every axis; a zero-scale axis divides by zero.
 */
func (mt Mat4) GetRotation() Quaternion {
	m := &mt.Data
	scale := mt.GetScale()

	m11 := m[0] / scale.X
	m21 := m[1] / scale.X
	m31 := m[2] / scale.X

	m12 := m[4] / scale.Y
	m22 := m[5] / scale.Y
	m32 := m[6] / scale.Y

	m13 := m[8] / scale.Z
	m23 := m[9] / scale.Z
	m33 := m[10] / scale.Z

	result := Quaternion{}
	result.X = math32.Sqrt(math32.Max(0.0, 1+m11-m22-m33)) / 2.0
	result.Y = math32.Sqrt(math32.Max(0.0, 1-m11+m22-m33)) / 2.0
	result.Z = math32.Sqrt(math32.Max(0.0, 1-m11-m22+m33)) / 2.0
	result.W = math32.Sqrt(math32.Max(0.0, 1+m11+m22+m33)) / 2.0

	result.X *= Sgn(result.X * (m32 - m23))
	result.Y *= Sgn(result.Y * (m13 - m31))
	result.Z *= Sgn(result.Z * (m21 - m12))

	result.Normalize()

	return result
}

/**
 * @brief Returns an upward vector relative to the provided matrix.
 */
func (mt Mat4) Up() Vec3 {
	return Vec3{mt.Data[4], mt.Data[5], mt.Data[6]}
}

/**
 * @brief Returns a downward vector relative to the provided matrix.
 */
func (mt Mat4) Down() Vec3 {
	return Vec3{-mt.Data[4], -mt.Data[5], -mt.Data[6]}
}

/**
 * @brief Returns a left vector relative to the provided matrix.
 */
func (mt Mat4) Left() Vec3 {
	return Vec3{-mt.Data[0], -mt.Data[1], -mt.Data[2]}
}

/**
 * @brief Returns a right vector relative to the provided matrix.
 */
func (mt Mat4) Right() Vec3 {
	return Vec3{mt.Data[0], mt.Data[1], mt.Data[2]}
}

/**
 * @brief Returns a forward vector relative to the provided matrix.
 */
func (mt Mat4) Forward() Vec3 {
	return Vec3{-mt.Data[8], -mt.Data[9], -mt.Data[10]}
}

/**
 * @brief Returns a backward vector relative to the provided matrix.
 */
func (mt Mat4) Backward() Vec3 {
	return Vec3{mt.Data[8], mt.Data[9], mt.Data[10]}
}

func (mt Mat4) Compare(other Mat4, tolerance float32) bool {
	for i := 0; i < 16; i++ {
		if math32.Abs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

// Frustum plane extraction (Gribb-Hartmann): each plane is the sum or
// difference of the fourth row of the combined matrix and one other row.

func (mt Mat4) FrustumLeftPlane() (Plane, bool) {
	m := &mt.Data
	return MakeFrustumPlane(m[3]+m[0], m[7]+m[4], m[11]+m[8], m[15]+m[12])
}

func (mt Mat4) FrustumRightPlane() (Plane, bool) {
	m := &mt.Data
	return MakeFrustumPlane(m[3]-m[0], m[7]-m[4], m[11]-m[8], m[15]-m[12])
}

func (mt Mat4) FrustumBottomPlane() (Plane, bool) {
	m := &mt.Data
	return MakeFrustumPlane(m[3]+m[1], m[7]+m[5], m[11]+m[9], m[15]+m[13])
}

func (mt Mat4) FrustumTopPlane() (Plane, bool) {
	m := &mt.Data
	return MakeFrustumPlane(m[3]-m[1], m[7]-m[5], m[11]-m[9], m[15]-m[13])
}

func (mt Mat4) FrustumNearPlane() (Plane, bool) {
	m := &mt.Data
	return MakeFrustumPlane(m[3]+m[2], m[7]+m[6], m[11]+m[10], m[15]+m[14])
}

func (mt Mat4) FrustumFarPlane() (Plane, bool) {
	m := &mt.Data
	return MakeFrustumPlane(m[3]-m[2], m[7]-m[6], m[11]-m[10], m[15]-m[14])
}

/**
 * @brief Composes the six frustum planes of the combined projection matrix
 * into a convex volume, ordered left, right, bottom, top, near, far. Returns
 * false when any plane of the matrix is degenerate.
 */
func (mt Mat4) Frustum() (ConvexVolume, bool) {
	planes := make([]Plane, 0, 6)

	extractors := []func() (Plane, bool){
		mt.FrustumLeftPlane,
		mt.FrustumRightPlane,
		mt.FrustumBottomPlane,
		mt.FrustumTopPlane,
		mt.FrustumNearPlane,
		mt.FrustumFarPlane,
	}

	for _, extract := range extractors {
		plane, ok := extract()
		if !ok {
			return ConvexVolume{}, false
		}
		planes = append(planes, plane)
	}

	return NewConvexVolume(planes), true
}
