package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/prisma/engine/math"
	"github.com/spaghettifunk/prisma/engine/texture"
)

func TestNewMaterialDefaults(t *testing.T) {
	m := New()

	assert.NotEmpty(t, m.Name)
	assert.InDelta(t, 1.0, m.DiffuseColor.R, 1e-6)
	assert.InDelta(t, 1.0, m.DiffuseColor.A, 1e-6)
	assert.InDelta(t, 1.0, m.Opacity, 1e-6)
	assert.Nil(t, m.Textures[0])
}

func TestShadeWithoutTexturesReturnsDiffuse(t *testing.T) {
	m := New()

	c := m.Shade(math.NewVec2(0.5, 0.5))
	assert.InDelta(t, 1.0, c.R, 1e-6)
	assert.InDelta(t, 1.0, c.A, 1e-6)
}

func TestShadeModulatesByTexture(t *testing.T) {
	tex := texture.New(texture.PixelFormatRGBA8, 1, 1, false)
	require.NoError(t, tex.SetData([]uint8{128, 255, 0, 255}, 0))

	m := New()
	require.NoError(t, m.SetTexture(0, tex))

	c := m.Shade(math.NewVec2(0.0, 0.0))
	assert.InDelta(t, 128.0/255.0, c.R, 1e-4)
	assert.InDelta(t, 1.0, c.G, 1e-4)
	assert.InDelta(t, 0.0, c.B, 1e-4)
}

func TestShadeAppliesOpacity(t *testing.T) {
	m := New()
	m.Opacity = 0.25

	c := m.Shade(math.NewVec2(0.0, 0.0))
	assert.InDelta(t, 0.25, c.A, 1e-6)
}

func TestSetTextureSlotBounds(t *testing.T) {
	m := New()
	tex := texture.New(texture.PixelFormatR8, 1, 1, false)

	assert.NoError(t, m.SetTexture(0, tex))
	assert.NoError(t, m.SetTexture(1, tex))
	assert.Error(t, m.SetTexture(2, tex))
	assert.Error(t, m.SetTexture(-1, tex))
}
