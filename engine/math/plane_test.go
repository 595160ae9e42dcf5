package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaneDotIsSignedDistance(t *testing.T) {
	// The z = 0 plane facing +z
	p := NewPlane(0.0, 0.0, 1.0, 0.0)

	assert.InDelta(t, 5.0, p.Dot(NewVec4(0.0, 0.0, 5.0, 1.0)), 1e-6)
	assert.InDelta(t, -2.0, p.DotCoord(NewVec3(0.0, 0.0, -2.0)), 1e-6)
	assert.InDelta(t, 0.0, p.DotCoord(NewVec3(7.0, 3.0, 0.0)), 1e-6)
}

func TestPlaneNormalize(t *testing.T) {
	p := NewPlane(0.0, 0.0, 2.0, 4.0)
	p.Normalize()

	assert.True(t, p.Compare(NewPlane(0.0, 0.0, 1.0, 2.0), 1e-6))
}

func TestPlaneNormalizeUnitGradientIsUnchanged(t *testing.T) {
	p := NewPlane(0.0, 1.0, 0.0, 123.0)
	p.Normalize()

	assert.Equal(t, NewPlane(0.0, 1.0, 0.0, 123.0), p)
}

func TestPlaneNormalizeDegenerateIsUnchanged(t *testing.T) {
	p := NewPlane(0.0, 0.0, 0.0, 5.0)
	p.Normalize()

	assert.Equal(t, NewPlane(0.0, 0.0, 0.0, 5.0), p)
}

func TestPlaneFromPointNormal(t *testing.T) {
	point := NewVec3(0.0, 3.0, 0.0)
	p := NewPlaneFromPointNormal(point, NewVec3Up())

	assert.InDelta(t, 0.0, p.DotCoord(point), 1e-6)
	assert.InDelta(t, 2.0, p.DotCoord(NewVec3(0.0, 5.0, 0.0)), 1e-6)
}

func TestMakeFrustumPlane(t *testing.T) {
	p, ok := MakeFrustumPlane(0.0, 0.0, 3.0, 6.0)
	require.True(t, ok)
	assert.True(t, p.Compare(NewPlane(0.0, 0.0, 1.0, 2.0), 1e-6))

	_, ok = MakeFrustumPlane(0.0, 0.0, 0.0, 1.0)
	assert.False(t, ok)
}
