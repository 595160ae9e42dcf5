package math

import (
	"github.com/chewxy/math32"
)

/**
 * @brief A 3x3 matrix, stored column-major, used for 2D affine
 * transformations with homogeneous (x, y, 1) points.
 */
type Mat3 struct {
	Data [9]float32
}

func NewMat3Zero() Mat3 {
	return Mat3{}
}

func NewMat3Identity() Mat3 {
	out_matrix := Mat3{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[4] = 1.0
	out_matrix.Data[8] = 1.0
	return out_matrix
}

// NewMat3 builds a matrix from row-major arguments, stored column-major.
func NewMat3(m11, m12, m13,
	m21, m22, m23,
	m31, m32, m33 float32) Mat3 {
	out_matrix := Mat3{}
	out_matrix.Set(m11, m12, m13,
		m21, m22, m23,
		m31, m32, m33)
	return out_matrix
}

func (mt *Mat3) Set(m11, m12, m13,
	m21, m22, m23,
	m31, m32, m33 float32) {
	mt.Data[0] = m11
	mt.Data[1] = m21
	mt.Data[2] = m31
	mt.Data[3] = m12
	mt.Data[4] = m22
	mt.Data[5] = m32
	mt.Data[6] = m13
	mt.Data[7] = m23
	mt.Data[8] = m33
}

func (mt *Mat3) SetIdentity() {
	*mt = NewMat3Identity()
}

func (mt *Mat3) SetZero() {
	*mt = Mat3{}
}

/**
 * @brief Creates a 2D scale matrix.
 */
func NewMat3Scale(scale Vec2) Mat3 {
	out_matrix := NewMat3Identity()
	out_matrix.Data[0] = scale.X
	out_matrix.Data[4] = scale.Y
	return out_matrix
}

/**
 * @brief Creates a 2D rotation matrix for the given angle in radians.
 */
func NewMat3Rotation(angle float32) Mat3 {
	c := math32.Cos(angle)
	s := math32.Sin(angle)

	out_matrix := NewMat3Identity()
	out_matrix.Data[0] = c
	out_matrix.Data[3] = -s
	out_matrix.Data[1] = s
	out_matrix.Data[4] = c
	return out_matrix
}

/**
 * @brief Creates a 2D translation matrix.
 */
func NewMat3Translation(translation Vec2) Mat3 {
	out_matrix := NewMat3Identity()
	out_matrix.Data[6] = translation.X
	out_matrix.Data[7] = translation.Y
	return out_matrix
}

func (mt Mat3) Add(other Mat3) Mat3 {
	out_matrix := Mat3{}
	for i := 0; i < 9; i++ {
		out_matrix.Data[i] = mt.Data[i] + other.Data[i]
	}
	return out_matrix
}

func (mt Mat3) AddScalar(scalar float32) Mat3 {
	out_matrix := Mat3{}
	for i := 0; i < 9; i++ {
		out_matrix.Data[i] = mt.Data[i] + scalar
	}
	return out_matrix
}

func (mt Mat3) Sub(other Mat3) Mat3 {
	out_matrix := Mat3{}
	for i := 0; i < 9; i++ {
		out_matrix.Data[i] = mt.Data[i] - other.Data[i]
	}
	return out_matrix
}

func (mt Mat3) MulScalar(scalar float32) Mat3 {
	out_matrix := Mat3{}
	for i := 0; i < 9; i++ {
		out_matrix.Data[i] = mt.Data[i] * scalar
	}
	return out_matrix
}

func (mt Mat3) Mul(other Mat3) Mat3 {
	m1 := &mt.Data
	m2 := &other.Data
	out_matrix := Mat3{}
	o := &out_matrix.Data

	o[0] = m1[0]*m2[0] + m1[3]*m2[1] + m1[6]*m2[2]
	o[1] = m1[1]*m2[0] + m1[4]*m2[1] + m1[7]*m2[2]
	o[2] = m1[2]*m2[0] + m1[5]*m2[1] + m1[8]*m2[2]

	o[3] = m1[0]*m2[3] + m1[3]*m2[4] + m1[6]*m2[5]
	o[4] = m1[1]*m2[3] + m1[4]*m2[4] + m1[7]*m2[5]
	o[5] = m1[2]*m2[3] + m1[5]*m2[4] + m1[8]*m2[5]

	o[6] = m1[0]*m2[6] + m1[3]*m2[7] + m1[6]*m2[8]
	o[7] = m1[1]*m2[6] + m1[4]*m2[7] + m1[7]*m2[8]
	o[8] = m1[2]*m2[6] + m1[5]*m2[7] + m1[8]*m2[8]

	return out_matrix
}

func (mt *Mat3) Multiply(other Mat3) {
	*mt = mt.Mul(other)
}

func (mt Mat3) Determinant() float32 {
	m := &mt.Data
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[3]*(m[1]*m[8]-m[2]*m[7]) +
		m[6]*(m[1]*m[5]-m[2]*m[4])
}

/**
 * @brief Inverts the matrix in place. When the determinant is too close to
 * zero the matrix is left untouched and false is returned.
 */
func (mt *Mat3) Invert() bool {
	inverted, ok := mt.Inverted()
	if !ok {
		return false
	}
	*mt = inverted
	return true
}

func (mt Mat3) Inverted() (Mat3, bool) {
	det := mt.Determinant()

	// Close to zero, can't invert
	if math32.Abs(det) < K_FLOAT_EPSILON {
		return mt, false
	}

	m := &mt.Data
	inverse := Mat3{}
	o := &inverse.Data
	o[0] = m[4]*m[8] - m[5]*m[7]
	o[1] = m[2]*m[7] - m[1]*m[8]
	o[2] = m[1]*m[5] - m[2]*m[4]
	o[3] = m[5]*m[6] - m[3]*m[8]
	o[4] = m[0]*m[8] - m[2]*m[6]
	o[5] = m[2]*m[3] - m[0]*m[5]
	o[6] = m[3]*m[7] - m[4]*m[6]
	o[7] = m[1]*m[6] - m[0]*m[7]
	o[8] = m[0]*m[4] - m[1]*m[3]

	return inverse.MulScalar(1.0 / det), true
}

func (mt Mat3) IsIdentity() bool {
	return mt == NewMat3Identity()
}

func (mt *Mat3) Negate() {
	for i := 0; i < 9; i++ {
		mt.Data[i] = -mt.Data[i]
	}
}

func (mt Mat3) Negated() Mat3 {
	mt.Negate()
	return mt
}

func (mt Mat3) Transposed() Mat3 {
	m := &mt.Data
	out_matrix := Mat3{}
	out_matrix.Data = [9]float32{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
	return out_matrix
}

func (mt *Mat3) Transpose() {
	*mt = mt.Transposed()
}

func (mt *Mat3) Rotate(angle float32) {
	mt.Multiply(NewMat3Rotation(angle))
}

func (mt *Mat3) Scale(s Vec2) {
	mt.Multiply(NewMat3Scale(s))
}

func (mt *Mat3) ScaleUniform(value float32) {
	mt.Scale(Vec2{value, value})
}

func (mt *Mat3) Translate(t Vec2) {
	mt.Multiply(NewMat3Translation(t))
}

/**
 * @brief Transforms a 2D point with implicit homogeneous coordinate 1, so
 * the translation part applies.
 */
func (mt Mat3) TransformPoint(point Vec2) Vec2 {
	t := mt.TransformVec3(Vec3{point.X, point.Y, 1.0})
	return Vec2{t.X, t.Y}
}

/**
 * @brief Transforms a 2D direction with implicit homogeneous coordinate 0;
 * the translation part is ignored.
 */
func (mt Mat3) TransformVector(vector Vec2) Vec2 {
	t := mt.TransformVec3(Vec3{vector.X, vector.Y, 0.0})
	return Vec2{t.X, t.Y}
}

func (mt Mat3) TransformVec3(vector Vec3) Vec3 {
	m := &mt.Data
	return Vec3{
		vector.X*m[0] + vector.Y*m[3] + vector.Z*m[6],
		vector.X*m[1] + vector.Y*m[4] + vector.Z*m[7],
		vector.X*m[2] + vector.Y*m[5] + vector.Z*m[8],
	}
}

func (mt Mat3) Compare(other Mat3, tolerance float32) bool {
	for i := 0; i < 9; i++ {
		if math32.Abs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}
