package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// unitCubeVolume returns the [-1, 1]^3 cube as six inward-facing planes.
func unitCubeVolume() ConvexVolume {
	return NewConvexVolume([]Plane{
		NewPlane(1.0, 0.0, 0.0, 1.0),
		NewPlane(-1.0, 0.0, 0.0, 1.0),
		NewPlane(0.0, 1.0, 0.0, 1.0),
		NewPlane(0.0, -1.0, 0.0, 1.0),
		NewPlane(0.0, 0.0, 1.0, 1.0),
		NewPlane(0.0, 0.0, -1.0, 1.0),
	})
}

func TestConvexVolumePoint(t *testing.T) {
	cube := unitCubeVolume()

	tests := []struct {
		name   string
		point  Vec3
		inside bool
	}{
		{"center", NewVec3Zero(), true},
		{"on a face", NewVec3(1.0, 0.0, 0.0), true},
		{"corner", NewVec3(1.0, 1.0, 1.0), true},
		{"outside one axis", NewVec3(2.0, 0.0, 0.0), false},
		{"outside all axes", NewVec3(-3.0, 4.0, 9.0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.inside, cube.IsPointInside(tt.point))
		})
	}
}

func TestConvexVolumeSphere(t *testing.T) {
	cube := unitCubeVolume()

	// Contained
	assert.True(t, cube.IsSphereInside(NewVec3Zero(), 0.5))
	// Center outside but surface reaches in
	assert.True(t, cube.IsSphereInside(NewVec3(1.5, 0.0, 0.0), 1.0))
	// Entirely outside
	assert.False(t, cube.IsSphereInside(NewVec3(1.5, 0.0, 0.0), 0.4))
}

func TestConvexVolumeBox(t *testing.T) {
	cube := unitCubeVolume()

	contained := Extents3D{Min: NewVec3(-0.5, -0.5, -0.5), Max: NewVec3(0.5, 0.5, 0.5)}
	straddling := Extents3D{Min: NewVec3(0.5, -0.5, -0.5), Max: NewVec3(1.5, 0.5, 0.5)}
	outside := Extents3D{Min: NewVec3(2.0, 2.0, 2.0), Max: NewVec3(3.0, 3.0, 3.0)}

	assert.True(t, cube.IsBoxInside(contained))
	assert.True(t, cube.IsBoxInside(straddling))
	assert.False(t, cube.IsBoxInside(outside))
}

func TestConvexVolumeEmptyContainsEverything(t *testing.T) {
	empty := NewConvexVolume(nil)

	assert.True(t, empty.IsPointInside(NewVec3(1e6, -1e6, 0.0)))
	assert.True(t, empty.IsSphereInside(NewVec3Zero(), 1.0))
}
