package camera

import (
	"github.com/spaghettifunk/prisma/engine/math"
)

/**
 * @brief A perspective camera: a position and orientation in the world plus
 * the projection parameters. The view matrix is cached and rebuilt only
 * after the position or orientation changes.
 */
type Camera struct {
	position      math.Vec3
	eulerRotation math.Vec3

	viewMatrix math.Mat4
	isDirty    bool

	fov         float32
	aspectRatio float32
	nearClip    float32
	farClip     float32
}

func New(fovRadians, aspectRatio, nearClip, farClip float32) *Camera {
	return &Camera{
		position:    math.NewVec3Zero(),
		viewMatrix:  math.NewMat4Identity(),
		isDirty:     true,
		fov:         fovRadians,
		aspectRatio: aspectRatio,
		nearClip:    nearClip,
		farClip:     farClip,
	}
}

func (c *Camera) Reset() {
	c.position = math.NewVec3Zero()
	c.eulerRotation = math.NewVec3Zero()
	c.isDirty = true
}

func (c *Camera) GetPosition() math.Vec3 {
	return c.position
}

func (c *Camera) SetPosition(position math.Vec3) {
	c.position = position
	c.isDirty = true
}

func (c *Camera) GetEulerRotation() math.Vec3 {
	return c.eulerRotation
}

// SetEulerRotation sets the orientation as pitch, yaw and roll in radians.
func (c *Camera) SetEulerRotation(rotation math.Vec3) {
	c.eulerRotation = rotation
	c.isDirty = true
}

func (c *Camera) SetAspectRatio(aspectRatio float32) {
	c.aspectRatio = aspectRatio
}

/**
 * @brief Returns the view matrix, rebuilding it from position and rotation
 * if needed. The camera looks along its local forward axis.
 */
func (c *Camera) GetView() math.Mat4 {
	if c.isDirty {
		rotation := math.NewQuatFromEuler(c.eulerRotation.X, c.eulerRotation.Y, c.eulerRotation.Z)
		forward := rotation.RotateVector(math.NewVec3(0.0, 0.0, 1.0))
		up := rotation.Up()

		c.viewMatrix = math.NewMat4LookAt(c.position, c.position.Add(forward), up)
		c.isDirty = false
	}
	return c.viewMatrix
}

func (c *Camera) GetProjection() math.Mat4 {
	return math.NewMat4Perspective(c.fov, c.aspectRatio, c.nearClip, c.farClip)
}

// GetViewProjection returns the combined matrix that takes world space
// points to clip space.
func (c *Camera) GetViewProjection() math.Mat4 {
	return c.GetProjection().Mul(c.GetView())
}

/**
 * @brief Extracts the camera frustum as a convex volume in world space.
 * Returns false when the projection parameters are degenerate.
 */
func (c *Camera) GetFrustum() (math.ConvexVolume, bool) {
	return c.GetViewProjection().Frustum()
}

func (c *Camera) Forward() math.Vec3 {
	rotation := math.NewQuatFromEuler(c.eulerRotation.X, c.eulerRotation.Y, c.eulerRotation.Z)
	return rotation.RotateVector(math.NewVec3(0.0, 0.0, 1.0))
}

func (c *Camera) Up() math.Vec3 {
	rotation := math.NewQuatFromEuler(c.eulerRotation.X, c.eulerRotation.Y, c.eulerRotation.Z)
	return rotation.Up()
}

func (c *Camera) Right() math.Vec3 {
	rotation := math.NewQuatFromEuler(c.eulerRotation.X, c.eulerRotation.Y, c.eulerRotation.Z)
	return rotation.Right()
}

// MoveForward translates the camera along its forward axis.
func (c *Camera) MoveForward(amount float32) {
	c.SetPosition(c.position.Add(c.Forward().MulScalar(amount)))
}

// Yaw rotates the camera around its vertical axis.
func (c *Camera) Yaw(amount float32) {
	c.eulerRotation.Y += amount
	c.isDirty = true
}

// Pitch rotates the camera around its horizontal axis.
func (c *Camera) Pitch(amount float32) {
	c.eulerRotation.X += amount
	c.isDirty = true
}
