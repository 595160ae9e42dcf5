package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMat3Identity(t *testing.T) {
	identity := NewMat3Identity()
	m := NewMat3Rotation(0.4).Mul(NewMat3Translation(NewVec2(1.0, 2.0)))

	assert.True(t, identity.IsIdentity())
	assert.InDelta(t, 1.0, identity.Determinant(), 1e-6)
	assert.True(t, identity.Mul(m).Compare(m, 1e-6))
}

func TestMat3InvertRoundTrip(t *testing.T) {
	m := NewMat3Translation(NewVec2(3.0, -1.0)).Mul(NewMat3Rotation(0.7)).Mul(NewMat3Scale(NewVec2(2.0, 0.5)))

	inverse, ok := m.Inverted()
	require.True(t, ok)

	assert.True(t, m.Mul(inverse).Compare(NewMat3Identity(), 1e-5))
}

func TestMat3InvertSingular(t *testing.T) {
	m := NewMat3Zero()
	assert.False(t, m.Invert())
	assert.Equal(t, NewMat3Zero(), m)
}

func TestMat3TransformPointVsVector(t *testing.T) {
	m := NewMat3Translation(NewVec2(5.0, -2.0))

	point := m.TransformPoint(NewVec2(1.0, 1.0))
	vector := m.TransformVector(NewVec2(1.0, 1.0))

	assert.True(t, point.Compare(NewVec2(6.0, -1.0), 1e-6))
	assert.True(t, vector.Compare(NewVec2(1.0, 1.0), 1e-6))
}

func TestMat3Rotation(t *testing.T) {
	m := NewMat3Rotation(K_HALF_PI)

	p := m.TransformPoint(NewVec2(1.0, 0.0))
	assert.True(t, p.Compare(NewVec2(0.0, 1.0), 1e-6))
}

func TestMat3Transpose(t *testing.T) {
	m := NewMat3(1, 2, 3,
		4, 5, 6,
		7, 8, 9)

	assert.Equal(t, m, m.Transposed().Transposed())
}
