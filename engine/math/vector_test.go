package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3.0, 4.0, 0.0)
	v.Normalize()

	assert.InDelta(t, 0.6, v.X, 1e-6)
	assert.InDelta(t, 0.8, v.Y, 1e-6)
	assert.InDelta(t, 0.0, v.Z, 1e-6)
}

func TestVec3NormalizeNearZeroIsUnchanged(t *testing.T) {
	v := NewVec3(1.0e-20, 0.0, 0.0)
	v.Normalize()

	assert.Equal(t, NewVec3(1.0e-20, 0.0, 0.0), v)
}

func TestVec3NormalizeUnitIsUnchanged(t *testing.T) {
	v := NewVec3(0.0, 1.0, 0.0)
	v.Normalize()

	assert.Equal(t, NewVec3(0.0, 1.0, 0.0), v)
}

func TestVec3Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"x cross y is z", NewVec3Right(), NewVec3Up(), NewVec3(0.0, 0.0, 1.0)},
		{"y cross x is minus z", NewVec3Up(), NewVec3Right(), NewVec3(0.0, 0.0, -1.0)},
		{"parallel is zero", NewVec3Right(), NewVec3Right(), NewVec3Zero()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.a.Cross(tt.b).Compare(tt.expected, 1e-6))
		})
	}
}

func TestVec3DotAndLength(t *testing.T) {
	a := NewVec3(1.0, 2.0, 3.0)
	b := NewVec3(4.0, -5.0, 6.0)

	assert.InDelta(t, 12.0, a.Dot(b), 1e-6)
	assert.InDelta(t, 14.0, a.LengthSquared(), 1e-6)
	assert.InDelta(t, 5.0, NewVec3(0.0, 3.0, 4.0).Length(), 1e-6)
}

func TestVec3Lerp(t *testing.T) {
	a := NewVec3Zero()
	b := NewVec3(2.0, 4.0, -6.0)

	mid := a.Lerp(b, 0.5)
	assert.True(t, mid.Compare(NewVec3(1.0, 2.0, -3.0), 1e-6))
	assert.True(t, a.Lerp(b, 0.0).Compare(a, 1e-6))
	assert.True(t, a.Lerp(b, 1.0).Compare(b, 1e-6))
}

func TestVec3Clamp(t *testing.T) {
	v := NewVec3(-2.0, 0.5, 7.0)
	v.Clamp(NewVec3(0.0, 0.0, 0.0), NewVec3(1.0, 1.0, 1.0))

	assert.Equal(t, NewVec3(0.0, 0.5, 1.0), v)
}

func TestVec3SmoothNoElapsedTime(t *testing.T) {
	v := NewVec3(1.0, 1.0, 1.0)
	v.Smooth(NewVec3(10.0, 10.0, 10.0), 0.0, 0.5)

	assert.Equal(t, NewVec3(1.0, 1.0, 1.0), v)
}

func TestVec3SmoothMovesTowardTarget(t *testing.T) {
	v := NewVec3Zero()
	target := NewVec3(10.0, 0.0, 0.0)
	v.Smooth(target, 0.5, 0.5)

	assert.Greater(t, v.X, float32(0.0))
	assert.Less(t, v.X, target.X)
}

func TestVec3Distance(t *testing.T) {
	a := NewVec3(1.0, 0.0, 0.0)
	b := NewVec3(4.0, 4.0, 0.0)

	assert.InDelta(t, 5.0, a.Distance(b), 1e-6)
	assert.InDelta(t, 25.0, a.DistanceSquared(b), 1e-6)
}

func TestVec4Conversions(t *testing.T) {
	v3 := NewVec3(1.0, 2.0, 3.0)
	v4 := NewVec4FromVec3(v3, 4.0)

	assert.Equal(t, NewVec4(1.0, 2.0, 3.0, 4.0), v4)
	assert.Equal(t, v3, v4.ToVec3())
}

func TestVec2Normalize(t *testing.T) {
	v := NewVec2(0.0, 5.0)
	v.Normalize()

	assert.InDelta(t, 0.0, v.X, 1e-6)
	assert.InDelta(t, 1.0, v.Y, 1e-6)
}
