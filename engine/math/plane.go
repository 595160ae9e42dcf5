package math

import (
	"github.com/chewxy/math32"
)

/**
 * @brief An infinite plane in 3D space, stored as the coefficients of the
 * implicit equation a*x + b*y + c*z + d = 0. The gradient (A, B, C) points
 * toward the positive half-space.
 */
type Plane struct {
	A float32
	B float32
	C float32
	D float32
}

func NewPlane(a, b, c, d float32) Plane {
	return Plane{A: a, B: b, C: c, D: d}
}

// NewPlaneFromPointNormal builds the plane passing through point with the
// given (not necessarily unit) normal.
func NewPlaneFromPointNormal(point, normal Vec3) Plane {
	return Plane{
		A: normal.X,
		B: normal.Y,
		C: normal.Z,
		D: -normal.Dot(point),
	}
}

func (p Plane) Normal() Vec3 {
	return Vec3{p.A, p.B, p.C}
}

/**
 * @brief Evaluates the plane equation against a homogeneous point:
 * a*x + b*y + c*z + d*w. For a normalized plane and w = 1 this is the signed
 * distance from the point to the plane.
 */
func (p Plane) Dot(point Vec4) float32 {
	return p.A*point.X + p.B*point.Y + p.C*point.Z + p.D*point.W
}

// DotCoord evaluates the plane against a 3D point with implicit w = 1.
func (p Plane) DotCoord(point Vec3) float32 {
	return p.A*point.X + p.B*point.Y + p.C*point.Z + p.D
}

/**
 * @brief Scales all four coefficients so the gradient (a, b, c) becomes unit
 * length. A no-op when the gradient already has unit length or is too close
 * to zero to divide by; a degenerate plane stays degenerate.
 */
func (p *Plane) Normalize() {
	n := p.A*p.A + p.B*p.B + p.C*p.C
	// Already normalized
	if n == 1.0 {
		return
	}

	n = math32.Sqrt(n)
	if n < K_FLOAT_EPSILON {
		return
	}

	n = 1.0 / n
	p.A *= n
	p.B *= n
	p.C *= n
	p.D *= n
}

func (p Plane) Normalized() Plane {
	p.Normalize()
	return p
}

func (p Plane) Compare(other Plane, tolerance float32) bool {
	return math32.Abs(p.A-other.A) <= tolerance &&
		math32.Abs(p.B-other.B) <= tolerance &&
		math32.Abs(p.C-other.C) <= tolerance &&
		math32.Abs(p.D-other.D) <= tolerance
}

/**
 * @brief Builds a normalized plane from raw frustum coefficients. Returns
 * false when the gradient is too small to normalize, which marks the source
 * matrix row combination as degenerate.
 */
func MakeFrustumPlane(a, b, c, d float32) (Plane, bool) {
	n := math32.Sqrt(a*a + b*b + c*c)
	if n < K_FLOAT_EPSILON {
		return Plane{}, false
	}

	n = 1.0 / n
	return Plane{A: a * n, B: b * n, C: c * n, D: d * n}, true
}
