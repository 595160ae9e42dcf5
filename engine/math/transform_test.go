package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformDefaults(t *testing.T) {
	tr := NewTransform()

	assert.True(t, tr.GetLocal().IsIdentity())
	assert.Equal(t, NewVec3Zero(), tr.Position)
	assert.Equal(t, NewQuatIdentity(), tr.Rotation)
	assert.Equal(t, NewVec3One(), tr.Scale)
}

func TestTransformLocalMatrix(t *testing.T) {
	tr := NewTransformFromPositionRotationScale(
		NewVec3(1.0, 2.0, 3.0),
		NewQuatIdentity(),
		NewVec3(2.0, 2.0, 2.0),
	)

	local := tr.GetLocal()
	p := local.TransformPoint(NewVec3(1.0, 0.0, 0.0))

	assert.True(t, p.Compare(NewVec3(3.0, 2.0, 3.0), 1e-5))
	assert.True(t, local.GetTranslation().Compare(NewVec3(1.0, 2.0, 3.0), 1e-5))
}

func TestTransformDirtyCaching(t *testing.T) {
	tr := NewTransformFromPosition(NewVec3(1.0, 0.0, 0.0))

	first := tr.GetLocal()
	assert.False(t, tr.IsDirty)

	// Without changes the cached matrix is returned
	assert.Equal(t, first, tr.GetLocal())

	tr.Translate(NewVec3(1.0, 0.0, 0.0))
	assert.True(t, tr.IsDirty)
	assert.True(t, tr.GetLocal().GetTranslation().Compare(NewVec3(2.0, 0.0, 0.0), 1e-5))
}

func TestTransformParentChain(t *testing.T) {
	parent := NewTransformFromPosition(NewVec3(0.0, 0.0, 10.0))
	child := NewTransformFromPosition(NewVec3(1.0, 0.0, 0.0))
	child.Parent = parent

	world := child.GetWorld()
	assert.True(t, world.GetTranslation().Compare(NewVec3(1.0, 0.0, 10.0), 1e-5))
}

func TestTransformRotateComposes(t *testing.T) {
	tr := NewTransform()
	tr.Rotate(NewQuatFromAxisAngle(NewVec3Up(), K_HALF_PI))

	p := tr.GetLocal().TransformPoint(NewVec3(1.0, 0.0, 0.0))
	expected := NewQuatFromAxisAngle(NewVec3Up(), K_HALF_PI).RotateVector(NewVec3(1.0, 0.0, 0.0))

	assert.True(t, p.Compare(expected, 1e-5))
}
